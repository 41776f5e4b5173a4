package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgres unique_violation
const pgUniqueViolation = "23505"

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates the users table and its indexes if they do not exist.
// Called once at server startup.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure users schema: %w", err)
		}
	}

	return nil
}

// creates a locally registered user. The raw password is hashed before
// it reaches the database; only the hash is persisted. Racing creates
// with the same email are resolved by the unique index, not by locking.
func (r *Repository) Create(ctx context.Context, name, email, rawPassword string) (*User, error) {
	hash, err := HashPassword(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user User

	err = r.db.QueryRow(ctx, queryCreate, name, email, hash).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.GoogleID,
		&user.AvatarURL,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}

		return nil, err
	}

	return &user, nil
}

// finds a user by email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByEmail, email))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByID, userID))
}

// finds a user by Google ID or creates a new one. Idempotent: repeated
// calls with the same Google ID return the same record with profile
// fields refreshed. First sight creates an account with no password.
func (r *Repository) FindOrCreateByGoogleID(ctx context.Context, googleID, email, name, avatarURL string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindOrCreateByGoogleID, name, email, googleID, avatarURL).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.GoogleID,
		&user.AvatarURL,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// google_id conflicts resolve via the upsert, so this can only
			// be the email index: a local account already owns the address
			return nil, ErrDuplicateEmail
		}

		return nil, err
	}

	return &user, nil
}

func (r *Repository) scanOne(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.GoogleID,
		&user.AvatarURL,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}
