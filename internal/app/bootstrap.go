package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/adisatrio/mindskit/internal/auth"
	"github.com/adisatrio/mindskit/internal/config"
	"github.com/adisatrio/mindskit/internal/middleware"
	"github.com/adisatrio/mindskit/internal/pkg/message"
	"github.com/adisatrio/mindskit/internal/platform/cache"
	"github.com/adisatrio/mindskit/internal/platform/db"
	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
)

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	dbConn, err := db.NewPostgresDB(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(signalCtx, dbConn); err != nil {
		return err
	}

	store, err := cache.NewRedisCache(signalCtx, cfg.Redis)
	if err != nil {
		return err
	}
	defer store.Close()

	securityKey, err := getEnv("KEY")
	if err != nil {
		return err
	}

	creds, err := loadClientCredentials()
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg, securityKey, dbConn, store)
	if err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CORS,
		middleware.CheckContentType,
	}

	apiServer := New(cfg, provider, creds, middlewares)

	if err := apiServer.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return apiServer.Shutdown()
}

func loadClientCredentials() (auth.Credentials, error) {
	clientID, err := getEnv("API_CLIENT_ID")
	if err != nil {
		return auth.Credentials{}, err
	}

	apiKeyHash, err := getEnv("API_KEY_HASH")
	if err != nil {
		return auth.Credentials{}, err
	}

	return auth.Credentials{
		ClientID:   clientID,
		APIKeyHash: apiKeyHash,
	}, nil
}

func getEnv(envVar string) (string, error) {
	val, ok := os.LookupEnv(envVar)
	if !ok {
		return "", fmt.Errorf(message.EnvErrFmt, envVar)
	}
	return val, nil
}
