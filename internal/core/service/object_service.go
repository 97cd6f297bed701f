package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Alisher1994/dbudget/internal/core/authz"
	"github.com/Alisher1994/dbudget/internal/core/domain"
	"github.com/Alisher1994/dbudget/internal/core/ports"
)

// ObjectService implements the object use cases, gated by the
// authorization policy.
type ObjectService struct {
	repo   ports.ObjectRepository
	logger zerolog.Logger
}

func NewObjectService(repo ports.ObjectRepository, logger zerolog.Logger) *ObjectService {
	return &ObjectService{repo: repo, logger: logger}
}

// List returns the objects visible to the identity. Clients only ever
// receive rows assigned to them; the predicate is applied in SQL.
func (s *ObjectService) List(ctx context.Context, identity domain.Identity) ([]ports.ObjectView, error) {
	if err := authz.CanListObjects(identity); err != nil {
		return nil, err
	}

	var filter ports.ObjectFilter
	if clientID, scoped := authz.ObjectScope(identity); scoped {
		filter.ClientID = clientID
	}

	objects, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ObjectView, 0, len(objects))
	for _, obj := range objects {
		views = append(views, toView(obj))
	}
	return views, nil
}

// Get returns a single object. Clients asking for an object they do not
// own get ErrObjectNotFound, never the row and never ErrForbidden.
func (s *ObjectService) Get(ctx context.Context, identity domain.Identity, id int64) (*ports.ObjectView, error) {
	if err := authz.CanListObjects(identity); err != nil {
		return nil, err
	}

	obj, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanReadObject(identity, obj); err != nil {
		return nil, err
	}

	view := toView(obj)
	return &view, nil
}

func (s *ObjectService) Create(ctx context.Context, identity domain.Identity, input ports.ObjectInput) (*ports.ObjectView, error) {
	if err := authz.CanWriteObjects(identity); err != nil {
		return nil, err
	}

	obj := &domain.ConstructionObject{
		Name:     input.Name,
		Address:  input.Address,
		Budget:   nonNegative(input.Budget),
		Spent:    nonNegative(input.Spent),
		ClientID: input.ClientID,
		Photo:    input.Photo,
	}

	created, err := s.repo.Create(ctx, obj)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("object_id", created.ID).Str("name", created.Name).Msg("object created")

	view := toView(created)
	return &view, nil
}

// Update fully replaces the mutable fields of the row. A caller that
// omits a field overwrites it with the zero value; this is the fixed
// API contract, not partial patch.
func (s *ObjectService) Update(ctx context.Context, identity domain.Identity, id int64, input ports.ObjectInput) (*ports.ObjectView, error) {
	if err := authz.CanWriteObjects(identity); err != nil {
		return nil, err
	}

	obj := &domain.ConstructionObject{
		ID:       id,
		Name:     input.Name,
		Address:  input.Address,
		Budget:   nonNegative(input.Budget),
		Spent:    nonNegative(input.Spent),
		ClientID: input.ClientID,
		Photo:    input.Photo,
	}

	updated, err := s.repo.Update(ctx, obj)
	if err != nil {
		return nil, err
	}

	view := toView(updated)
	return &view, nil
}

// Delete removes the object. Deleting an absent id succeeds.
func (s *ObjectService) Delete(ctx context.Context, identity domain.Identity, id int64) error {
	if err := authz.CanWriteObjects(identity); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("object_id", id).Msg("object deleted")
	return nil
}

// Stats aggregates budget totals over the same scoped result set the
// identity would get from List, so clients only ever sum their own rows.
func (s *ObjectService) Stats(ctx context.Context, identity domain.Identity) (*ports.StatsResult, error) {
	views, err := s.List(ctx, identity)
	if err != nil {
		return nil, err
	}

	result := &ports.StatsResult{ObjectCount: len(views)}
	for _, v := range views {
		result.TotalBudget += v.Budget
		result.TotalSpent += v.Spent
		result.TotalRemaining += v.Remaining
	}
	return result, nil
}

func toView(obj *domain.ConstructionObject) ports.ObjectView {
	return ports.ObjectView{ConstructionObject: *obj, Remaining: obj.Remaining()}
}

// nonNegative clamps negative input to zero, matching the budget/spent
// column defaults.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
