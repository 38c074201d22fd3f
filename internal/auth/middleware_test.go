package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adisatrio/mindskit/internal/auth"
	"github.com/adisatrio/mindskit/internal/platform/jwt"
)

func TestRequireToken(t *testing.T) {
	t.Parallel()

	signer := &jwt.StubSigner{
		VerifyFunc: func(tokenString string) (*jwt.Claims, error) {
			if tokenString != "valid-token" {
				return nil, errors.New("invalid token")
			}
			return &jwt.Claims{ClientID: testClientID}, nil
		},
	}

	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantClientID   string
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			wantStatusCode: http.StatusOK,
			wantClientID:   testClientID,
		},
		{
			name:           "missing header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer forged-token",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "missing bearer prefix",
			authHeader:     "valid-token",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				clientID, ok := auth.ClientFromContext(r.Context())
				if !ok {
					t.Error("client missing from request context")
				}
				if clientID != tc.wantClientID {
					t.Errorf("clientID = %q, want: %q", clientID, tc.wantClientID)
				}
				w.WriteHeader(http.StatusOK)
			})

			handler := auth.RequireToken(signer)(next)

			req := httptest.NewRequest(http.MethodGet, "/conversations", http.NoBody)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if got := rec.Result().StatusCode; got != tc.wantStatusCode {
				t.Errorf("res.StatusCode = %d, want: %d", got, tc.wantStatusCode)
			}
		})
	}
}
