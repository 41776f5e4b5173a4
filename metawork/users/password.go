package users

import (
	"golang.org/x/crypto/bcrypt"
)

// hashes a raw password with bcrypt at the default cost
func HashPassword(rawPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// checks a raw password against the stored hash. Always false for
// OAuth-only accounts, which have no password hash. bcrypt's comparison
// is constant-time.
func (u *User) VerifyPassword(rawPassword string) bool {
	if u.PasswordHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(rawPassword)) == nil
}
