package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents an identity record in the system.
// PasswordHash is empty for accounts created through Google OAuth;
// GoogleID is empty for locally registered accounts. Neither field is
// ever serialized to clients.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	GoogleID     string    `json:"-"`
	AvatarURL    string    `json:"avatar"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
