// @title           Datathon Handouts API
// @version         1.0
// @description     Users register and log in, publish posts, list them and mark them as requested.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT returned by /auth/login.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/datathon/handouts-api/internal/api"
	"github.com/datathon/handouts-api/internal/core/service"
	"github.com/datathon/handouts-api/internal/infrastructure/crypto"
	redisdb "github.com/datathon/handouts-api/internal/infrastructure/db/redis"
	"github.com/datathon/handouts-api/internal/infrastructure/db/sqlite"
	"github.com/datathon/handouts-api/internal/pkg/config"
	"github.com/datathon/handouts-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "handouts-api",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// run owns every resource it opens, so deferred cleanup happens before main exits.
func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Connect(ctx, sqlite.Config{
		Path:         cfg.DB.Path,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		BusyTimeout:  cfg.DB.BusyTimeout,
	}, log)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DB.Path, err)
	}
	defer func() {
		if err := sqlite.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := sqlite.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	verifier := crypto.NewBcryptVerifier(bcrypt.DefaultCost)

	if cfg.SeedDemo {
		seeder := service.NewSeeder(sqlite.NewUserRepository(db), sqlite.NewPostRepository(db), verifier, log)
		if _, err := seeder.Seed(ctx); err != nil {
			log.Error().Err(err).Msg("demo seeding failed")
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:        cfg.Redis.Addr,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		}, log)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() { _ = rdb.Close() }()
	} else {
		log.Info().Msg("REDIS_ADDR not set, login throttling disabled")
	}

	e := api.NewRouter(api.Options{
		DB:               db,
		Redis:            rdb,
		Verifier:         verifier,
		Logger:           log,
		JWTSecret:        cfg.JWTSecret,
		TokenTTL:         cfg.TokenTTL,
		LoginMaxAttempts: cfg.Login.MaxAttempts,
		LoginLockTTL:     cfg.Login.LockTTL,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
