package app

import (
	"database/sql"
	"fmt"

	"github.com/adisatrio/mindskit/internal/config"
	"github.com/adisatrio/mindskit/internal/platform/cache"
	"github.com/adisatrio/mindskit/internal/platform/hash"
	"github.com/adisatrio/mindskit/internal/platform/jwt"
	"github.com/adisatrio/mindskit/internal/platform/minds"
	"github.com/adisatrio/mindskit/internal/platform/router"
	"github.com/adisatrio/mindskit/internal/platform/validation"
)

type Provider struct {
	DB        *sql.DB
	Cache     cache.Cache
	Agent     minds.Agent
	Signer    jwt.Signer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
}

func newProvider(cfg *config.Config, securityKey string, dbConn *sql.DB, store cache.Cache) (*Provider, error) {
	agent, err := minds.NewHTTPClient(cfg.Minds)
	if err != nil {
		return nil, fmt.Errorf("new minds client: %w", err)
	}

	return &Provider{
		DB:        dbConn,
		Cache:     store,
		Agent:     agent,
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, securityKey),
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Router:    router.NewGoexpressRouter(),
	}, nil
}
