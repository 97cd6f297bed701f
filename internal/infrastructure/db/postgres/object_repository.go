package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Alisher1994/dbudget/internal/core/domain"
	"github.com/Alisher1994/dbudget/internal/core/ports"
)

// ObjectRepository persists construction objects in the objects table.
type ObjectRepository struct {
	db *sql.DB
}

func NewObjectRepository(db *sql.DB) *ObjectRepository {
	return &ObjectRepository{db: db}
}

const objectSelect = `
SELECT o.id, o.name, COALESCE(o.address, ''), o.budget, o.spent,
       o.client_id, COALESCE(u.username, ''), COALESCE(o.photo, ''), o.created_at
FROM objects o
LEFT JOIN users u ON o.client_id = u.id`

// List returns objects with the assigned client's username joined.
// A non-zero filter.ClientID restricts the result set in SQL, so scoped
// callers never receive rows outside their tenancy.
func (r *ObjectRepository) List(ctx context.Context, filter ports.ObjectFilter) ([]*domain.ConstructionObject, error) {
	q := objectSelect
	var args []any
	if filter.ClientID != 0 {
		q += ` WHERE o.client_id = $1`
		args = append(args, filter.ClientID)
	}
	q += ` ORDER BY o.created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}
	defer rows.Close()

	var objects []*domain.ConstructionObject
	for rows.Next() {
		obj, err := scanObject(rows)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate objects: %w", err)
	}
	return objects, nil
}

func (r *ObjectRepository) FindByID(ctx context.Context, id int64) (*domain.ConstructionObject, error) {
	q := objectSelect + ` WHERE o.id = $1`

	obj, err := scanObject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, err
	}
	return obj, nil
}

func (r *ObjectRepository) Create(ctx context.Context, obj *domain.ConstructionObject) (*domain.ConstructionObject, error) {
	const q = `
INSERT INTO objects (name, address, budget, spent, client_id, photo)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''))
RETURNING id, created_at`

	created := *obj
	err := r.db.QueryRowContext(ctx, q,
		obj.Name, obj.Address, obj.Budget, obj.Spent, obj.ClientID, obj.Photo).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isPQError(err, pqForeignKeyViolation) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("insert object: %w", err)
	}
	return r.FindByID(ctx, created.ID)
}

// Update replaces every mutable column of the row in one statement.
func (r *ObjectRepository) Update(ctx context.Context, obj *domain.ConstructionObject) (*domain.ConstructionObject, error) {
	const q = `
UPDATE objects
SET name = $1, address = NULLIF($2, ''), budget = $3, spent = $4,
    client_id = $5, photo = NULLIF($6, '')
WHERE id = $7
RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, q,
		obj.Name, obj.Address, obj.Budget, obj.Spent, obj.ClientID, obj.Photo, obj.ID).
		Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrObjectNotFound
		}
		if isPQError(err, pqForeignKeyViolation) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("update object: %w", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the row. Deleting an absent id is not an error.
func (r *ObjectRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM objects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanObject(row rowScanner) (*domain.ConstructionObject, error) {
	var obj domain.ConstructionObject
	var clientID sql.NullInt64
	err := row.Scan(&obj.ID, &obj.Name, &obj.Address, &obj.Budget, &obj.Spent,
		&clientID, &obj.ClientName, &obj.Photo, &obj.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan object: %w", err)
	}
	if clientID.Valid {
		obj.ClientID = &clientID.Int64
	}
	return &obj, nil
}
