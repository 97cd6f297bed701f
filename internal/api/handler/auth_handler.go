package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Alisher1994/dbudget/internal/api/metrics"
	"github.com/Alisher1994/dbudget/internal/api/middleware"
	"github.com/Alisher1994/dbudget/internal/core/ports"
)

// AuthHandler handles login, logout and session introspection.
type AuthHandler struct {
	authService  ports.AuthService
	sessionTTL   time.Duration
	cookieSecure bool
}

func NewAuthHandler(authService ports.AuthService, sessionTTL time.Duration, cookieSecure bool) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL, cookieSecure: cookieSecure}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type currentUserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login authenticates a user and establishes a session cookie.
//
// @Summary      Log in with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, identity, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(token, h.sessionTTL))

	return c.JSON(http.StatusOK, loginResponse{Success: true, Role: identity.Role})
}

// Logout destroys the session and clears the cookie. Idempotent: a
// request without a session still succeeds.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(h.sessionCookie("", -time.Second))

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// CurrentUser returns the identity behind the session cookie.
//
// @Summary      Get the logged-in user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  currentUserResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/user [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, currentUserResponse{
		ID:       identity.UserID,
		Username: identity.Username,
		Role:     identity.Role,
	})
}

func (h *AuthHandler) sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
