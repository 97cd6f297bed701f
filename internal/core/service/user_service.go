package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Alisher1994/dbudget/internal/core/authz"
	"github.com/Alisher1994/dbudget/internal/core/domain"
	"github.com/Alisher1994/dbudget/internal/core/ports"
)

// bcryptCost matches the cost the seeded admin account is hashed with.
const bcryptCost = 10

// UserService implements admin-only account management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// List returns all accounts, password hashes excluded by the read model.
func (s *UserService) List(ctx context.Context, identity domain.Identity) ([]*domain.User, error) {
	if err := authz.CanAccessUsers(identity); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, identity domain.Identity, input ports.CreateUserInput) (*domain.User, error) {
	if err := authz.CanAccessUsers(identity); err != nil {
		return nil, err
	}
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	role := input.Role
	if role == "" {
		role = domain.RoleClient
	}
	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !domain.ValidRole(role) || !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		Phone:        input.Phone,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")

	return created, nil
}

// Update replaces phone, role and status. Username and password are not
// mutable through this path.
func (s *UserService) Update(ctx context.Context, identity domain.Identity, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if err := authz.CanAccessUsers(identity); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !domain.ValidRole(input.Role) || !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	return s.repo.Update(ctx, id, input.Phone, input.Role, status)
}

// Delete removes the account. Admins cannot delete their own row, and
// object assignments referencing the user are cleared, not cascaded.
func (s *UserService) Delete(ctx context.Context, identity domain.Identity, id int64) error {
	if err := authz.CanDeleteUser(identity, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
