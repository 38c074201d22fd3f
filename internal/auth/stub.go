package auth

import (
	"context"
	"errors"
)

type StubService struct {
	IssueTokenFunc func(ctx context.Context, params IssueTokenParams) (Token, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) IssueToken(ctx context.Context, params IssueTokenParams) (Token, error) {
	if s.IssueTokenFunc == nil {
		return Token{}, errors.New("IssueToken() not implemented by stub")
	}
	return s.IssueTokenFunc(ctx, params)
}
