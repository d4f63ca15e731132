package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/datathon/handouts-api/docs"
	"github.com/datathon/handouts-api/internal/api/handler"
	"github.com/datathon/handouts-api/internal/api/middleware"
	"github.com/datathon/handouts-api/internal/core/ports"
	"github.com/datathon/handouts-api/internal/core/service"
	redisdb "github.com/datathon/handouts-api/internal/infrastructure/db/redis"
	"github.com/datathon/handouts-api/internal/infrastructure/db/sqlite"
)

// Options carries the dependencies the router wires into handlers.
type Options struct {
	DB       *gorm.DB
	Redis    *redis.Client // optional; nil disables the login throttle
	Verifier ports.CredentialVerifier
	Logger   zerolog.Logger

	JWTSecret        string
	TokenTTL         time.Duration
	LoginMaxAttempts int
	LoginLockTTL     time.Duration
	CORSAllowOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// HTTP metrics live in a per-router registry so several routers can coexist in one process.
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(opts.CORSAllowOrigins),
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "handouts",
		Registerer: reg,
	}))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(opts.DB)
	postRepo := sqlite.NewPostRepository(opts.DB)

	var throttle ports.LoginThrottle
	if opts.Redis != nil {
		throttle = redisdb.NewLoginThrottle(opts.Redis, opts.LoginMaxAttempts, opts.LoginLockTTL)
	}

	authService := service.NewAuthService(userRepo, opts.Verifier, throttle, opts.JWTSecret, opts.TokenTTL, opts.Logger)
	postService := service.NewPostService(postRepo, userRepo, opts.Logger)
	profileService := service.NewProfileService(userRepo, postRepo)

	authHandler := handler.NewAuthHandler(authService, profileService)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(profileService)
	authMiddleware := middleware.Auth(opts.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Post routes ---
	posts := e.Group("/posts")
	posts.POST("/create", postHandler.Create)
	posts.GET("/list", postHandler.List)
	posts.POST("/request/:id", postHandler.Request)

	// --- User routes ---
	e.GET("/users/:id", userHandler.Profile)

	// --- Health probes (no auth required) ---
	checks := map[string]handler.HealthCheck{
		"sqlite": func(ctx context.Context) error { return sqlite.Ping(ctx, opts.DB) },
	}
	if opts.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return opts.Redis.Ping(ctx).Err() }
	}
	healthHandler := handler.NewHealthHandler(checks)

	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{reg, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
