package minds

import (
	"context"
	"errors"
)

type StubAgent struct {
	CompletionFunc func(ctx context.Context, agentName string, messages []QA) (*Completion, error)
}

var _ Agent = (*StubAgent)(nil)

func (a *StubAgent) Completion(ctx context.Context, agentName string, messages []QA) (*Completion, error) {
	if a.CompletionFunc == nil {
		return nil, errors.New("Completion() not implemented by stub")
	}
	return a.CompletionFunc(ctx, agentName, messages)
}
