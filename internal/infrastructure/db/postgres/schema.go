package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// EnsureSchema creates the users and objects tables when absent.
// objects.client_id is a weak reference: deleting a user clears the
// assignment instead of cascading into the object rows.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const q = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username VARCHAR(50) UNIQUE NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'client',
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	phone VARCHAR(20),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS objects (
	id SERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	address TEXT,
	budget NUMERIC(12,2) NOT NULL DEFAULT 0,
	spent NUMERIC(12,2) NOT NULL DEFAULT 0,
	client_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
	photo TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SeedAdmin inserts the bootstrap admin account when no account with
// that username exists yet. Safe to run on every startup.
func SeedAdmin(ctx context.Context, db *sql.DB, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	const q = `
INSERT INTO users (username, password_hash, role, status)
VALUES ($1, $2, 'admin', 'active')
ON CONFLICT (username) DO NOTHING`
	if _, err := db.ExecContext(ctx, q, username, string(hash)); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
