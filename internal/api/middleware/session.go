package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Alisher1994/dbudget/internal/core/domain"
	"github.com/Alisher1994/dbudget/internal/core/ports"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "dbudget_session"

// IdentityKey is the echo context key the resolved identity is stored under.
const IdentityKey = "identity"

// Session resolves the session cookie into an identity and injects it
// into the request context. Requests without a valid session are
// rejected with 401 before reaching any handler.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			identity, err := auth.Identify(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
				}
				return err
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}
