package ports

import (
	"context"

	"github.com/Alisher1994/dbudget/internal/core/domain"
)

// ObjectFilter carries the row-scoping predicate for object queries.
// The service layer derives it from the authorization policy; the
// repository applies it in SQL so unscoped rows never leave the store.
type ObjectFilter struct {
	// ClientID restricts results to objects assigned to this client.
	// Zero means no filter (admin scope).
	ClientID int64
}

// ObjectRepository defines persistence operations for construction objects.
type ObjectRepository interface {
	// List returns objects matching filter with the assigned client's
	// username joined, ordered by creation time, most recent first.
	List(ctx context.Context, filter ObjectFilter) ([]*domain.ConstructionObject, error)
	FindByID(ctx context.Context, id int64) (*domain.ConstructionObject, error)
	// Create inserts the object and returns it with ID and CreatedAt
	// set. A dangling client reference fails with ErrClientNotFound.
	Create(ctx context.Context, obj *domain.ConstructionObject) (*domain.ConstructionObject, error)
	// Update fully replaces name, address, budget, spent, client_id and
	// photo of the given row. ErrObjectNotFound when the row is absent.
	Update(ctx context.Context, obj *domain.ConstructionObject) (*domain.ConstructionObject, error)
	// Delete removes the row. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error
}
