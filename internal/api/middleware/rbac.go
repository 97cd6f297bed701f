package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Alisher1994/dbudget/internal/core/domain"
)

// RBAC enforces role-based access control on the identity injected by
// Session. The service layer re-checks through the authorization
// policy; this is the fast path that keeps clients off admin routes.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(IdentityKey).(domain.Identity)
			if _, ok := allowed[identity.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
