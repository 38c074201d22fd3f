//go:build integration

package app_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/adisatrio/mindskit/internal/app"
	"github.com/adisatrio/mindskit/internal/auth"
	"github.com/adisatrio/mindskit/internal/config"
	"github.com/adisatrio/mindskit/internal/platform/cache"
	"github.com/adisatrio/mindskit/internal/platform/db"
	"github.com/adisatrio/mindskit/internal/platform/hash"
	"github.com/adisatrio/mindskit/internal/platform/jwt"
	"github.com/adisatrio/mindskit/internal/platform/minds"
	"github.com/adisatrio/mindskit/internal/platform/router"
	"github.com/adisatrio/mindskit/internal/platform/validation"
	"github.com/ferdiebergado/gopherkit/env"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func setupApp(t *testing.T) (*app.App, *config.Config, func()) {
	t.Helper()

	if err := env.Load("../../.env.testing"); err != nil {
		t.Fatalf("load env: %v", err)
	}

	cfg, err := config.Load("../../config.json")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	conn, err := db.NewPostgresDB(ctx, cfg.DB)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}

	if err := db.Migrate(ctx, conn); err != nil {
		t.Fatalf("migrate db: %v", err)
	}

	store, err := cache.NewRedisCache(ctx, cfg.Redis)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}

	agent, err := minds.NewHTTPClient(cfg.Minds)
	if err != nil {
		t.Fatalf("new minds client: %v", err)
	}

	provider := &app.Provider{
		DB:        conn,
		Cache:     store,
		Agent:     agent,
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, "testsecret"),
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, "testsecret"),
		Router:    router.NewGoexpressRouter(),
	}

	creds := auth.Credentials{ClientID: "test-client", APIKeyHash: "$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA"}

	middlewares := []func(http.Handler) http.Handler{}
	api := app.New(cfg, provider, creds, middlewares)

	cleanup := func() {
		conn.Close()
		store.Close()
	}

	return api, cfg, cleanup
}

func TestIntegration_StartAndShutdown(t *testing.T) {
	api, cfg, cleanup := setupApp(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := api.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("server error: %v", err)
		}
	}()

	// Wait briefly for server to start
	time.Sleep(300 * time.Millisecond)

	url := fmt.Sprintf("http://127.0.0.1:%d/livez", cfg.Server.Port)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		t.Fatalf("new http request: %v", err)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Errorf("failed to GET %s: %v", url, err)
	} else {
		if res.StatusCode != http.StatusOK {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
		}
		res.Body.Close()
	}

	if err := api.Shutdown(); err != nil {
		t.Errorf("failed to shutdown app: %v", err)
	}
}
