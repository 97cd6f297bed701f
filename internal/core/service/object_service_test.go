package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Alisher1994/dbudget/internal/core/domain"
	"github.com/Alisher1994/dbudget/internal/core/ports"
)

type stubObjectRepo struct {
	objects   map[int64]*domain.ConstructionObject
	nextID    int64
	clientIDs map[int64]bool // known user ids for FK checks
	createErr error
}

func newStubObjectRepo() *stubObjectRepo {
	return &stubObjectRepo{
		objects:   make(map[int64]*domain.ConstructionObject),
		nextID:    1,
		clientIDs: make(map[int64]bool),
	}
}

func cloneObject(o *domain.ConstructionObject) *domain.ConstructionObject {
	clone := *o
	if o.ClientID != nil {
		id := *o.ClientID
		clone.ClientID = &id
	}
	return &clone
}

func (r *stubObjectRepo) refValid(clientID *int64) bool {
	return clientID == nil || r.clientIDs[*clientID]
}

func (r *stubObjectRepo) List(_ context.Context, filter ports.ObjectFilter) ([]*domain.ConstructionObject, error) {
	var out []*domain.ConstructionObject
	for _, o := range r.objects {
		if filter.ClientID != 0 && (o.ClientID == nil || *o.ClientID != filter.ClientID) {
			continue
		}
		out = append(out, cloneObject(o))
	}
	return out, nil
}

func (r *stubObjectRepo) FindByID(_ context.Context, id int64) (*domain.ConstructionObject, error) {
	o, ok := r.objects[id]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	return cloneObject(o), nil
}

func (r *stubObjectRepo) Create(_ context.Context, obj *domain.ConstructionObject) (*domain.ConstructionObject, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if !r.refValid(obj.ClientID) {
		return nil, domain.ErrClientNotFound
	}
	o := cloneObject(obj)
	o.ID = r.nextID
	r.nextID++
	o.CreatedAt = time.Now().UTC()
	r.objects[o.ID] = o
	return cloneObject(o), nil
}

func (r *stubObjectRepo) Update(_ context.Context, obj *domain.ConstructionObject) (*domain.ConstructionObject, error) {
	existing, ok := r.objects[obj.ID]
	if !ok {
		return nil, domain.ErrObjectNotFound
	}
	if !r.refValid(obj.ClientID) {
		return nil, domain.ErrClientNotFound
	}
	updated := cloneObject(obj)
	updated.CreatedAt = existing.CreatedAt
	r.objects[obj.ID] = updated
	return cloneObject(updated), nil
}

func (r *stubObjectRepo) Delete(_ context.Context, id int64) error {
	delete(r.objects, id)
	return nil
}

var (
	adminID  = domain.Identity{UserID: 1, Username: "admin", Role: domain.RoleAdmin}
	clientID = domain.Identity{UserID: 7, Username: "ivan", Role: domain.RoleClient}
)

func newObjectService(repo *stubObjectRepo) *ObjectService {
	return NewObjectService(repo, zerolog.Nop())
}

func seedObject(repo *stubObjectRepo, name string, budget, spent float64, owner *int64) *domain.ConstructionObject {
	if owner != nil {
		repo.clientIDs[*owner] = true
	}
	created, _ := repo.Create(context.Background(), &domain.ConstructionObject{
		Name: name, Budget: budget, Spent: spent, ClientID: owner,
	})
	return created
}

func int64p(v int64) *int64 { return &v }

func TestObjectService_List_ScopesClients(t *testing.T) {
	repo := newStubObjectRepo()
	seedObject(repo, "own", 100, 20, int64p(clientID.UserID))
	seedObject(repo, "foreign", 500, 0, int64p(42))
	seedObject(repo, "unassigned", 300, 0, nil)
	svc := newObjectService(repo)

	views, err := svc.List(context.Background(), clientID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 scoped object, got %d", len(views))
	}
	if views[0].Name != "own" {
		t.Fatalf("unexpected object in scope: %s", views[0].Name)
	}

	adminViews, err := svc.List(context.Background(), adminID)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(adminViews) != 3 {
		t.Fatalf("admin expected 3 objects, got %d", len(adminViews))
	}
}

func TestObjectService_List_EmptyScopeIsEmptyList(t *testing.T) {
	repo := newStubObjectRepo()
	seedObject(repo, "foreign", 500, 0, int64p(42))
	svc := newObjectService(repo)

	views, err := svc.List(context.Background(), clientID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected empty list, got %d rows", len(views))
	}
}

func TestObjectService_List_Unauthenticated(t *testing.T) {
	svc := newObjectService(newStubObjectRepo())

	if _, err := svc.List(context.Background(), domain.Identity{}); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestObjectService_Get_ClientCannotSeeForeign(t *testing.T) {
	repo := newStubObjectRepo()
	foreign := seedObject(repo, "foreign", 500, 0, int64p(42))
	svc := newObjectService(repo)

	// Not-found, never forbidden: existence must not leak.
	if _, err := svc.Get(context.Background(), clientID, foreign.ID); err != domain.ErrObjectNotFound {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}

	if _, err := svc.Get(context.Background(), adminID, foreign.ID); err != nil {
		t.Fatalf("admin get failed: %v", err)
	}
}

func TestObjectService_Create_DefaultsAndRemaining(t *testing.T) {
	repo := newStubObjectRepo()
	svc := newObjectService(repo)

	view, err := svc.Create(context.Background(), adminID, ports.ObjectInput{Name: "Site A", Budget: 1000000})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if view.Spent != 0 {
		t.Fatalf("expected spent 0, got %f", view.Spent)
	}
	if view.Remaining != 1000000 {
		t.Fatalf("expected remaining 1000000, got %f", view.Remaining)
	}

	views, err := svc.List(context.Background(), adminID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 || views[0].Name != "Site A" || views[0].Budget != 1000000 {
		t.Fatalf("round trip mismatch: %+v", views)
	}
}

func TestObjectService_Create_ClientForbidden(t *testing.T) {
	svc := newObjectService(newStubObjectRepo())

	if _, err := svc.Create(context.Background(), clientID, ports.ObjectInput{Name: "x"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestObjectService_Create_DanglingClientRef(t *testing.T) {
	repo := newStubObjectRepo()
	svc := newObjectService(repo)

	_, err := svc.Create(context.Background(), adminID, ports.ObjectInput{Name: "x", ClientID: int64p(999)})
	if err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestObjectService_Update_FullReplace(t *testing.T) {
	repo := newStubObjectRepo()
	repo.clientIDs[8] = true
	obj := seedObject(repo, "before", 500, 100, int64p(clientID.UserID))
	svc := newObjectService(repo)

	// Omitted fields (spent, client_id, photo) overwrite with zero values.
	view, err := svc.Update(context.Background(), adminID, obj.ID, ports.ObjectInput{
		Name:   "after",
		Budget: 900,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if view.Name != "after" || view.Budget != 900 || view.Spent != 0 || view.ClientID != nil {
		t.Fatalf("full replace not applied: %+v", view)
	}

	views, _ := svc.List(context.Background(), adminID)
	if len(views) != 1 || views[0].Spent != 0 || views[0].ClientID != nil {
		t.Fatalf("list does not reflect replace: %+v", views)
	}
}

func TestObjectService_Update_ClientForbidden(t *testing.T) {
	repo := newStubObjectRepo()
	obj := seedObject(repo, "own", 100, 0, int64p(clientID.UserID))
	svc := newObjectService(repo)

	// Even objects assigned to the client are read-only for them.
	if _, err := svc.Update(context.Background(), clientID, obj.ID, ports.ObjectInput{Name: "x"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestObjectService_Delete_AbsentIDSucceeds(t *testing.T) {
	svc := newObjectService(newStubObjectRepo())

	if err := svc.Delete(context.Background(), adminID, 12345); err != nil {
		t.Fatalf("deleting absent id should succeed, got %v", err)
	}
	if err := svc.Delete(context.Background(), clientID, 12345); err != domain.ErrForbidden {
		t.Fatalf("client delete: expected ErrForbidden, got %v", err)
	}
}

func TestObjectService_Stats_Scoped(t *testing.T) {
	repo := newStubObjectRepo()
	seedObject(repo, "own1", 1000, 400, int64p(clientID.UserID))
	seedObject(repo, "own2", 500, 100, int64p(clientID.UserID))
	seedObject(repo, "foreign", 9999, 9999, int64p(42))
	svc := newObjectService(repo)

	stats, err := svc.Stats(context.Background(), clientID)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.ObjectCount != 2 {
		t.Fatalf("expected 2 objects, got %d", stats.ObjectCount)
	}
	if stats.TotalBudget != 1500 || stats.TotalSpent != 500 || stats.TotalRemaining != 1000 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
}
