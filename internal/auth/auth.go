package auth

import (
	"time"
)

type Module struct {
	svc     Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(providers *Providers, creds Credentials, ttl time.Duration) *Module {
	svc := NewService(providers, creds, ttl)
	handler := NewHandler(svc)
	return &Module{
		svc:     svc,
		handler: handler,
	}
}
