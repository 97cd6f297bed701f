package ports

import (
	"context"

	"github.com/Alisher1994/dbudget/internal/core/domain"
)

// AuthService is the authentication gate: it turns credentials into a
// session identity and resolves session tokens back into identities.
type AuthService interface {
	// Login validates credentials and establishes a session. The
	// returned token is the opaque value to set in the session cookie.
	// Unknown username and wrong password both fail with
	// ErrInvalidCredentials, indistinguishably.
	Login(ctx context.Context, username, password string) (string, domain.Identity, error)
	// Logout invalidates the session token. Idempotent.
	Logout(ctx context.Context, token string) error
	// Identify resolves a session token into the identity it carries,
	// or ErrUnauthenticated when the token is absent, unknown or expired.
	Identify(ctx context.Context, token string) (domain.Identity, error)
}
