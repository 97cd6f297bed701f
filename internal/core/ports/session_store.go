package ports

import (
	"context"
	"time"

	"github.com/Alisher1994/dbudget/internal/core/domain"
)

// SessionStore persists session identities keyed by opaque token.
// Implementations own expiry: Get on an expired token behaves exactly
// like Get on an unknown one.
type SessionStore interface {
	Set(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error
	// Get returns the identity for token, or ErrUnauthenticated when
	// the token is unknown or expired.
	Get(ctx context.Context, token string) (domain.Identity, error)
	// Delete removes the session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
