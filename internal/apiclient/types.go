package apiclient

import "codeberg.org/metawork/server/metawork/users"

// AuthResult is the payload of a successful register or login call
type AuthResult struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

// APIError is a structured error response from the server. Message is
// safe to show directly in the UI.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return e.Code
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User *users.User `json:"user"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
