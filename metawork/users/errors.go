package users

import "errors"

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("user not found")
)
