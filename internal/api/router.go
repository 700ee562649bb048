package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/identity-hub/identity-api/internal/api/handler"
	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/ports"
	"github.com/identity-hub/identity-api/internal/core/service"
	"github.com/identity-hub/identity-api/internal/infrastructure/client"
	"github.com/identity-hub/identity-api/internal/infrastructure/config"
	redisstore "github.com/identity-hub/identity-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The user repository, audit dispatcher and audit service are constructed by
// the caller: the repository needs its indexes ensured at startup and the
// dispatcher's worker lifecycle is tied to the process context, not the router.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	userRepo ports.UserRepository,
	audit service.AuditDispatcher,
	auditService ports.AuditService,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	userService := service.NewUserService(userRepo, audit, cfg.AdminKeyHash, log)

	profileClient := client.NewProfileClient(cfg.ProfileFetchDelay, log)
	profileCache := redisstore.NewProfileCache(rdb)
	profileService := service.NewProfileService(profileClient, profileCache, log)

	tokenService := service.NewTokenService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewProfileHandler(profileService)
	tokenHandler := handler.NewTokenHandler(tokenService)
	auditHandler := handler.NewAuditHandler(auditService)

	// --- Versioned API ---
	v := e.Group("/" + domain.APIVersion)
	v.POST("/users", userHandler.Create)
	v.POST("/users/guest", userHandler.CreateGuest)
	v.POST("/users/validate", userHandler.Validate)
	v.GET("/users", userHandler.List)
	v.GET("/users/:id", userHandler.Get)
	v.GET("/users/:id/config", userHandler.GetConfig)
	v.PUT("/users/:id/config", userHandler.SaveConfig)
	v.GET("/users/:id/profile", profileHandler.Get)
	v.GET("/users/:id/events", auditHandler.History)
	v.POST("/tokens", tokenHandler.Issue)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
