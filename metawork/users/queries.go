package users

// the google_id index is partial so any number of local accounts may
// leave it NULL while OAuth accounts stay globally unique.
// One statement per entry: pgx's extended protocol rejects batches.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name          TEXT NOT NULL,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL DEFAULT '',
		google_id     TEXT,
		avatar_url    TEXT NOT NULL DEFAULT '',
		is_verified   BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key
		ON users (email)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS users_google_id_key
		ON users (google_id)
		WHERE google_id IS NOT NULL`,
}

const (
	queryCreate = `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, COALESCE(google_id, ''), avatar_url, is_verified, created_at, updated_at
	`

	queryFindByEmail = `
		SELECT id, name, email, password_hash, COALESCE(google_id, ''), avatar_url, is_verified, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	queryFindByID = `
		SELECT id, name, email, password_hash, COALESCE(google_id, ''), avatar_url, is_verified, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	queryFindOrCreateByGoogleID = `
		INSERT INTO users (name, email, google_id, avatar_url, is_verified)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (google_id) WHERE google_id IS NOT NULL
		DO UPDATE SET
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING id, name, email, password_hash, COALESCE(google_id, ''), avatar_url, is_verified, created_at, updated_at
	`
)
