package app

import (
	"github.com/adisatrio/mindskit/internal/auth"
	"github.com/adisatrio/mindskit/internal/config"
	"github.com/adisatrio/mindskit/internal/conversation"
	"github.com/adisatrio/mindskit/internal/middleware"
	"github.com/adisatrio/mindskit/internal/platform/router"
)

func mountRootRoutes(r router.Router, provider *Provider) {
	health := newHealthHandler(provider.DB, provider.Cache)

	r.Get("/", handleRoot)
	r.Get("/livez", health.Live)
	r.Get("/readyz", health.Ready)
}

func mountConversationRoutes(r router.Router, handler *conversation.Handler, provider *Provider, cfg *config.Config) {
	maxBodySize := cfg.Server.MaxBodyBytes

	r.Post("/conversation", handler.Ask,
		middleware.RateLimit(provider.Cache, cfg.RateLimit),
		middleware.DecodePayload[conversation.AskRequest](maxBodySize),
		middleware.ValidateInput[conversation.AskRequest](provider.Validator))

	r.Group("/conversations", func(gr router.Router) {
		gr.Get("/", handler.List)
		gr.Get("/{id}", handler.Find)
	}, auth.RequireToken(provider.Signer))
}

func mountAuthRoutes(r router.Router, handler *auth.Handler, provider *Provider, cfg *config.Config) {
	maxBodySize := cfg.Server.MaxBodyBytes

	r.Group("/auth", func(gr router.Router) {
		gr.Post("/token", handler.IssueToken,
			middleware.DecodePayload[auth.TokenRequest](maxBodySize),
			middleware.ValidateInput[auth.TokenRequest](provider.Validator))
	})
}
