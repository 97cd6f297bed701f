package ports

import (
	"context"

	"github.com/Alisher1994/dbudget/internal/core/domain"
)

// ObjectInput carries all fields accepted on object create and update.
// Update applies it as a full replace: omitted fields overwrite the row
// with their zero values. This mirrors the fixed API contract.
type ObjectInput struct {
	Name     string
	Address  string
	Budget   float64
	Spent    float64
	ClientID *int64
	Photo    string
}

// ObjectView is the read model returned to callers: the stored row plus
// the derived remaining budget.
type ObjectView struct {
	domain.ConstructionObject
	Remaining float64 `json:"remaining"`
}

// StatsResult aggregates the financial totals of the requester's visible
// objects.
type StatsResult struct {
	ObjectCount    int     `json:"object_count"`
	TotalBudget    float64 `json:"total_budget"`
	TotalSpent     float64 `json:"total_spent"`
	TotalRemaining float64 `json:"total_remaining"`
}

// ObjectService defines use-case operations on construction objects.
// Every method enforces the authorization policy before touching the
// repository.
type ObjectService interface {
	List(ctx context.Context, identity domain.Identity) ([]ObjectView, error)
	Get(ctx context.Context, identity domain.Identity, id int64) (*ObjectView, error)
	Create(ctx context.Context, identity domain.Identity, input ObjectInput) (*ObjectView, error)
	Update(ctx context.Context, identity domain.Identity, id int64, input ObjectInput) (*ObjectView, error)
	Delete(ctx context.Context, identity domain.Identity, id int64) error
	Stats(ctx context.Context, identity domain.Identity) (*StatsResult, error)
}
