package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Alisher1994/dbudget/internal/core/domain"
	"github.com/Alisher1994/dbudget/internal/core/ports"
)

// AuthService implements login, logout and session resolution.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, sessionTTL: sessionTTL, logger: logger}
}

// Login validates credentials and creates a session. Unknown username
// and wrong password are indistinguishable to the caller: both return
// ErrInvalidCredentials, so usernames cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.Identity, error) {
	if username == "" || password == "" {
		return "", domain.Identity{}, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.Identity{}, domain.ErrInvalidCredentials
		}
		return "", domain.Identity{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.Identity{}, domain.ErrInvalidCredentials
	}

	identity := domain.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}

	token, err := newSessionToken()
	if err != nil {
		return "", domain.Identity{}, err
	}
	if err := s.sessions.Set(ctx, token, identity, s.sessionTTL); err != nil {
		return "", domain.Identity{}, fmt.Errorf("store session: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("login")

	return token, identity, nil
}

// Logout deletes the session. Logging out twice is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Identify resolves a session token into the identity it carries.
func (s *AuthService) Identify(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return s.sessions.Get(ctx, token)
}

// newSessionToken returns a 256-bit random token, hex encoded.
func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
