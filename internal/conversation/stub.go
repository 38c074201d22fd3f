package conversation

import (
	"context"
	"errors"
)

type StubService struct {
	AskFunc  func(ctx context.Context, question string) (Conversation, error)
	ListFunc func(ctx context.Context) ([]Conversation, error)
	FindFunc func(ctx context.Context, id string) (*Conversation, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Ask(ctx context.Context, question string) (Conversation, error) {
	if s.AskFunc == nil {
		return Conversation{}, errors.New("Ask() not implemented by stub")
	}
	return s.AskFunc(ctx, question)
}

func (s *StubService) List(ctx context.Context) ([]Conversation, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, id string) (*Conversation, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

type StubRepo struct {
	CreateFunc func(ctx context.Context, params CreateParams) (Conversation, error)
	ListFunc   func(ctx context.Context) ([]Conversation, error)
	FindFunc   func(ctx context.Context, id string) (*Conversation, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (Conversation, error) {
	if r.CreateFunc == nil {
		return Conversation{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) List(ctx context.Context) ([]Conversation, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Find(ctx context.Context, id string) (*Conversation, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}
