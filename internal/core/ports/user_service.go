package ports

import (
	"context"

	"github.com/Alisher1994/dbudget/internal/core/domain"
)

// CreateUserInput carries the fields accepted when an admin creates an
// account. Role defaults to client and status to active when empty.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
	Status   string
	Phone    string
}

// UpdateUserInput carries the mutable account fields. Username and
// password cannot be changed through this path.
type UpdateUserInput struct {
	Phone  string
	Role   string
	Status string
}

// UserService defines admin-only use-case operations on accounts.
type UserService interface {
	List(ctx context.Context, identity domain.Identity) ([]*domain.User, error)
	Create(ctx context.Context, identity domain.Identity, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, identity domain.Identity, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, identity domain.Identity, id int64) error
}
