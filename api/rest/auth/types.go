package auth

import (
	"context"

	"codeberg.org/metawork/server/metawork/users"
)

// UserStore is the slice of the users repository the auth handlers need.
// *users.Repository satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, name, email, rawPassword string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	FindByID(ctx context.Context, userID string) (*users.User, error)
	FindOrCreateByGoogleID(ctx context.Context, googleID, email, name, avatarURL string) (*users.User, error)
}

// RegisterRequest for creating a local account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest for password login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse returned after successful register or login
type AuthResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

// UserResponse wraps user data
type UserResponse struct {
	User *users.User `json:"user"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
