package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adisatrio/mindskit/internal/pkg/security"
	"github.com/adisatrio/mindskit/internal/platform/cache"
	"github.com/adisatrio/mindskit/internal/platform/minds"
)

var ErrAgentUnavailable = errors.New("conversation service: agent unavailable")

// Repository is the interface for conversation storage.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Conversation, error)
	List(ctx context.Context) ([]Conversation, error)
	Find(ctx context.Context, id string) (*Conversation, error)
}

type CreateParams struct {
	Agent    string
	Question string
	Answer   string
	Cached   bool
}

// Providers holds the external dependencies of the service.
type Providers struct {
	Agent minds.Agent
	Store cache.Cache
}

type service struct {
	repo      Repository
	agent     minds.Agent
	store     cache.Cache
	agentName string
	answerTTL time.Duration
}

var _ Service = (*service)(nil)

func NewService(repo Repository, providers *Providers, agentName string, answerTTL time.Duration) *service {
	return &service{
		repo:      repo,
		agent:     providers.Agent,
		store:     providers.Store,
		agentName: agentName,
		answerTTL: answerTTL,
	}
}

// Ask answers the question through the configured agent. Answers are cached
// by (agent, question) digest; persistence is best-effort so an answered
// question is never lost to a storage hiccup.
func (s *service) Ask(ctx context.Context, question string) (Conversation, error) {
	convo := Conversation{
		Agent:    s.agentName,
		Question: question,
	}

	cacheKey := "answer:" + security.Digest(s.agentName, question)

	answer, cached := s.cachedAnswer(ctx, cacheKey)
	if !cached {
		completion, err := s.agent.Completion(ctx, s.agentName, []minds.QA{{Question: question}})
		if err != nil {
			return convo, fmt.Errorf("%w: ask agent %s: %v", ErrAgentUnavailable, s.agentName, err)
		}
		answer = completion.Content

		if err := s.store.Set(ctx, cacheKey, answer, s.answerTTL); err != nil {
			slog.Warn("failed to cache answer", "reason", err)
		}
	}

	convo.Answer = answer
	convo.Cached = cached

	saved, err := s.repo.Create(ctx, CreateParams{
		Agent:    s.agentName,
		Question: question,
		Answer:   answer,
		Cached:   cached,
	})
	if err != nil {
		slog.Error("failed to persist conversation", "reason", err)
		return convo, nil
	}

	return saved, nil
}

func (s *service) cachedAnswer(ctx context.Context, cacheKey string) (string, bool) {
	answer, err := s.store.Get(ctx, cacheKey)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("answer cache lookup failed", "reason", err)
		}
		return "", false
	}
	return answer, true
}

func (s *service) List(ctx context.Context) ([]Conversation, error) {
	convos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convos, nil
}

func (s *service) Find(ctx context.Context, id string) (*Conversation, error) {
	convo, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return convo, nil
}
