// @title           Portfolio API
// @version         1.0
// @description     Projects, users and session endpoints for the developer portfolio.
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and the session token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/devportfolio/portfolio/internal/api"
	"github.com/devportfolio/portfolio/internal/api/handler"
	"github.com/devportfolio/portfolio/internal/core/ports"
	"github.com/devportfolio/portfolio/internal/core/service"
	"github.com/devportfolio/portfolio/internal/infrastructure/db/mongo"
	"github.com/devportfolio/portfolio/internal/infrastructure/db/redis"
	"github.com/devportfolio/portfolio/internal/infrastructure/security"
	"github.com/devportfolio/portfolio/internal/pkg/config"
	"github.com/devportfolio/portfolio/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadServer(ctx, nil)
	if err != nil {
		// The logger level comes from config, so fall back to a default one.
		l := logger.New(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "portfolio-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Server, log zerolog.Logger) error {
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	users := mongo.NewUserRepository(db)
	projects := mongo.NewProjectRepository(db)
	if err := mongo.EnsureIndexes(ctx, users, projects); err != nil {
		return err
	}

	health := map[string]handler.Pinger{
		"mongodb": handler.PingFunc(func(ctx context.Context) error { return client.Ping(ctx, nil) }),
	}

	var revocations ports.RevocationList
	if cfg.Redis.Enabled() {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		revocations = redis.NewRevocationList(rdb)
		health["redis"] = handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		log.Info().Str("addr", cfg.Redis.Addr).Msg("token revocation enabled")
	} else {
		log.Warn().Msg("REDIS_ADDR not set; logout will not revoke tokens")
	}

	tokens, err := security.NewJWTAuthority(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Log:          log,
		Tokens:       tokens,
		Identities:   users,
		Revocations:  revocations,
		Auth:         service.NewAuthService(users, tokens, revocations, log),
		Projects:     service.NewProjectService(projects, log),
		Users:        service.NewUserService(users),
		Health:       health,
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
