package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Alisher1994/dbudget/internal/core/domain"
)

// Postgres error codes surfaced as domain errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// UserRepository persists user accounts in the users table.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, role, status, COALESCE(phone, ''), created_at`

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT id, username, password_hash, role, status, COALESCE(phone, ''), created_at
FROM users WHERE username = $1`

	var u domain.User
	err := r.db.QueryRowContext(ctx, q, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Status, &u.Phone, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u domain.User
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&u.ID, &u.Username, &u.Role, &u.Status, &u.Phone, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// List returns every account, most recently created first. Password
// hashes never leave this query.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.Status, &u.Phone, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (username, password_hash, role, status, phone)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))
RETURNING id, username, role, status, COALESCE(phone, ''), created_at`

	var u domain.User
	err := r.db.QueryRowContext(ctx, q, user.Username, user.PasswordHash, user.Role, user.Status, user.Phone).
		Scan(&u.ID, &u.Username, &u.Role, &u.Status, &u.Phone, &u.CreatedAt)
	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, phone, role, status string) (*domain.User, error) {
	const q = `
UPDATE users SET phone = NULLIF($1, ''), role = $2, status = $3
WHERE id = $4
RETURNING id, username, role, status, COALESCE(phone, ''), created_at`

	var u domain.User
	err := r.db.QueryRowContext(ctx, q, phone, role, status, id).
		Scan(&u.ID, &u.Username, &u.Role, &u.Status, &u.Phone, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

// Delete removes the account row. objects.client_id references are
// cleared by the ON DELETE SET NULL constraint.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// isPQError reports whether err carries the given Postgres error code.
func isPQError(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
