package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Alisher1994/dbudget/internal/api/middleware"
	"github.com/Alisher1994/dbudget/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware
// and performs a fast-fail check before any service call: a zero
// identity means the middleware did not run on this route, which is a
// wiring bug surfaced as 401 rather than an anonymous pass-through.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, _ := c.Get(middleware.IdentityKey).(domain.Identity)
	if identity.IsZero() {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return identity, nil
}
