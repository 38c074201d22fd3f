package jwt

import (
	"time"
)

// Claims represents the token claims the app cares about.
type Claims struct {
	ClientID string
}

// Signer defines methods for signing and verifying JWT tokens.
type Signer interface {
	Sign(subject string, audience []string, duration time.Duration) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
