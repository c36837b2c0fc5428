package store

import (
	"context"
)

// Email carries no unique index: uniqueness is by convention only, and the
// login path treats an ambiguous email match as not found.
const usersMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    name text NOT NULL,
    email text NOT NULL,
    password_hash text NOT NULL,
    role text NOT NULL CHECK (role IN ('user', 'admin')) DEFAULT 'user',
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS users_email_idx
ON users (email);
`

// Migrate applies the users schema. It is idempotent and runs at startup.
func Migrate(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, usersMigration)
	return err
}
