package main

import (
	"context"
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"github.com/Marianaberrio/TendenciasBackend/config"
	"github.com/Marianaberrio/TendenciasBackend/db"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/handler"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/password"
	repo "github.com/Marianaberrio/TendenciasBackend/internal/auth/repository/postgres"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/service"
	"github.com/Marianaberrio/TendenciasBackend/pkg/constant"
)

func main() {
	cfg := config.Load()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN, Environment: cfg.Env}); err != nil {
			log.Printf("sentry init failed: %v", err)
		}
	}

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("schema: %v", err)
	}

	hasher, err := password.NewHasher(cfg.ScryptCost)
	if err != nil {
		log.Fatalf("hasher: %v", err)
	}

	repository := repo.NewPostgresRepository(pool, constant.LoginMaxAttempts, constant.LockDuration)
	sessions := service.NewSessionManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenTTL, cfg.RefreshTokenTTL, repository)
	lockout := service.NewLockoutTracker(repository)
	authService := service.NewAuthService(repository, repository, sessions, lockout, hasher, cfg)
	authHandler := handler.NewAuthHandler(authService, sessions, cfg.AdminRegisterSecret)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	log.Printf("listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
