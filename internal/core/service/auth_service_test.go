package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Alisher1994/dbudget/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *stubUserRepo) addUser(username, password, role string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &domain.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.users[username] = u
	return u
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrDuplicateUsername
	}
	u := cloneUser(user)
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now().UTC()
	r.users[u.Username] = u
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, phone, role, status string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			u.Phone, u.Role, u.Status = phone, role, status
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return nil
}

type stubSessionStore struct {
	sessions map[string]domain.Identity
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Identity)}
}

func (s *stubSessionStore) Set(_ context.Context, token string, identity domain.Identity, _ time.Duration) error {
	s.sessions[token] = identity
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (domain.Identity, error) {
	identity, ok := s.sessions[token]
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func newAuthService(repo *stubUserRepo, sessions *stubSessionStore) *AuthService {
	return NewAuthService(repo, sessions, time.Hour, zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.addUser("carol", "s3cret", domain.RoleAdmin)
	sessions := newStubSessionStore()
	svc := newAuthService(repo, sessions)

	token, identity, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token, got empty")
	}
	if identity.Username != "carol" || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	stored, err := sessions.Get(context.Background(), token)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if stored != identity {
		t.Fatalf("stored identity %+v differs from returned %+v", stored, identity)
	}
}

func TestAuthService_Login_WrongPasswordIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	repo.addUser("carol", "s3cret", domain.RoleAdmin)
	svc := newAuthService(repo, newStubSessionStore())

	_, _, wrongPw := svc.Login(context.Background(), "carol", "nope")
	_, _, unknown := svc.Login(context.Background(), "mallory", "nope")

	if wrongPw != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknown)
	}
	// Same error for both failure modes: no username enumeration.
	if wrongPw != unknown {
		t.Fatalf("failure modes distinguishable: %v vs %v", wrongPw, unknown)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubSessionStore())

	if _, _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	repo.addUser("carol", "s3cret", domain.RoleAdmin)
	sessions := newStubSessionStore()
	svc := newAuthService(repo, sessions)

	token, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}

	if _, err := svc.Identify(context.Background(), token); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated after logout, got %v", err)
	}
}

func TestAuthService_Identify(t *testing.T) {
	repo := newStubUserRepo()
	user := repo.addUser("ivan", "pass", domain.RoleClient)
	sessions := newStubSessionStore()
	svc := newAuthService(repo, sessions)

	token, _, err := svc.Login(context.Background(), "ivan", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	identity, err := svc.Identify(context.Background(), token)
	if err != nil {
		t.Fatalf("identify failed: %v", err)
	}
	if identity.UserID != user.ID || identity.Role != domain.RoleClient {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	if _, err := svc.Identify(context.Background(), ""); err != domain.ErrUnauthenticated {
		t.Fatalf("empty token: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.Identify(context.Background(), "bogus"); err != domain.ErrUnauthenticated {
		t.Fatalf("unknown token: expected ErrUnauthenticated, got %v", err)
	}
}
