package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/Alisher1994/dbudget/internal/api/handler"
	"github.com/Alisher1994/dbudget/internal/api/middleware"
	"github.com/Alisher1994/dbudget/internal/core/domain"
	"github.com/Alisher1994/dbudget/internal/core/service"
	"github.com/Alisher1994/dbudget/internal/infrastructure/config"
	"github.com/Alisher1994/dbudget/internal/infrastructure/db/postgres"
	redisstore "github.com/Alisher1994/dbudget/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dbudget"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	objectRepo := postgres.NewObjectRepository(db)
	sessions := redisstore.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessions, cfg.Session.TTL, log)
	objectService := service.NewObjectService(objectRepo, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Session.TTL, cfg.Session.CookieSecure)
	objectHandler := handler.NewObjectHandler(objectService)
	userHandler := handler.NewUserHandler(userService)

	sessionRequired := middleware.Session(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)
	e.GET("/api/user", authHandler.CurrentUser, sessionRequired)

	// --- Object routes ---
	objects := e.Group("/api/objects", sessionRequired)
	objects.GET("", objectHandler.List)
	objects.GET("/:id", objectHandler.Get)
	objects.POST("", objectHandler.Create, adminOnly)
	objects.PUT("/:id", objectHandler.Update, adminOnly)
	objects.DELETE("/:id", objectHandler.Delete, adminOnly)

	e.GET("/api/stats", objectHandler.Stats, sessionRequired)

	// --- User routes (admin only) ---
	users := e.Group("/api/users", sessionRequired, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
