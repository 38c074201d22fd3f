package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adisatrio/mindskit/internal/platform/hash"
	"github.com/adisatrio/mindskit/internal/platform/jwt"
)

var ErrInvalidClient = errors.New("auth service: invalid client credentials")

// Credentials is the single API client allowed to read conversation history.
// The key is stored as an argon2id hash; the plaintext never reaches the
// server config.
type Credentials struct {
	ClientID   string
	APIKeyHash string
}

// Providers holds the external dependencies of the service.
type Providers struct {
	Hasher hash.Hasher
	Signer jwt.Signer
}

type service struct {
	hasher hash.Hasher
	signer jwt.Signer
	creds  Credentials
	ttl    time.Duration
}

var _ Service = (*service)(nil)

func NewService(providers *Providers, creds Credentials, ttl time.Duration) *service {
	return &service{
		hasher: providers.Hasher,
		signer: providers.Signer,
		creds:  creds,
		ttl:    ttl,
	}
}

type IssueTokenParams struct {
	ClientID string
	APIKey   string
}

func (p *IssueTokenParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("client_id", p.ClientID),
		slog.String("api_key", "*"),
	)
}

// IssueToken exchanges an API key for a short-lived bearer token.
func (s *service) IssueToken(_ context.Context, params IssueTokenParams) (Token, error) {
	if subtle.ConstantTimeCompare([]byte(params.ClientID), []byte(s.creds.ClientID)) != 1 {
		return Token{}, ErrInvalidClient
	}

	ok, err := s.hasher.Verify(params.APIKey, s.creds.APIKeyHash)
	if err != nil {
		return Token{}, fmt.Errorf("verify api key: %w", err)
	}
	if !ok {
		return Token{}, ErrInvalidClient
	}

	signed, err := s.signer.Sign(params.ClientID, []string{"mindskit"}, s.ttl)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}

	return Token{
		AccessToken: signed,
		ExpiresIn:   int64(s.ttl.Seconds()),
	}, nil
}
