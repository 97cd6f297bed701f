package ports

import (
	"context"

	"github.com/Alisher1994/dbudget/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns all users ordered by creation time, most recent first.
	List(ctx context.Context) ([]*domain.User, error)
	// Create inserts the user and returns it with ID and CreatedAt set.
	// A username collision fails with ErrDuplicateUsername.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces phone, role and status of the given user.
	// Username and password hash are immutable through this path.
	Update(ctx context.Context, id int64, phone, role, status string) (*domain.User, error)
	// Delete removes the user row. Object assignments referencing the
	// user are cleared by the store (ON DELETE SET NULL), not cascaded.
	Delete(ctx context.Context, id int64) error
}
