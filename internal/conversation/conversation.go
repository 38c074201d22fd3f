package conversation

import (
	"time"

	"github.com/adisatrio/mindskit/internal/platform/db"
)

type Module struct {
	repo    Repository
	svc     Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() Service {
	return m.svc
}

func NewModule(dbExec db.Executor, providers *Providers, agentName string, answerTTL time.Duration) *Module {
	repo := NewRepository(dbExec)
	svc := NewService(repo, providers, agentName, answerTTL)
	handler := NewHandler(svc)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: handler,
	}
}
