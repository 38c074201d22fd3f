package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adisatrio/mindskit/internal/auth"
	"github.com/adisatrio/mindskit/internal/pkg/web"
)

func TestHandler_IssueToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		svc            auth.Service
		wantStatusCode int
		wantToken      string
	}{
		{
			name: "success",
			svc: &auth.StubService{
				IssueTokenFunc: func(_ context.Context, _ auth.IssueTokenParams) (auth.Token, error) {
					return auth.Token{AccessToken: "signed-token", ExpiresIn: 900}, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantToken:      "signed-token",
		},
		{
			name: "invalid credentials",
			svc: &auth.StubService{
				IssueTokenFunc: func(_ context.Context, _ auth.IssueTokenParams) (auth.Token, error) {
					return auth.Token{}, auth.ErrInvalidClient
				},
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "service error",
			svc: &auth.StubService{
				IssueTokenFunc: func(_ context.Context, _ auth.IssueTokenParams) (auth.Token, error) {
					return auth.Token{}, errors.New("boom")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := auth.NewHandler(tc.svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/token", http.NoBody)
			params := auth.TokenRequest{ClientID: testClientID, APIKey: testAPIKey}
			req = req.WithContext(web.NewContextWithParams(req.Context(), params))
			rec := httptest.NewRecorder()

			h.IssueToken(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if got := res.StatusCode; got != tc.wantStatusCode {
				t.Fatalf("res.StatusCode = %d, want: %d", got, tc.wantStatusCode)
			}

			if tc.wantStatusCode != http.StatusOK {
				return
			}

			var decoded web.OKResponse[*auth.Token]
			if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if got := decoded.Data.AccessToken; got != tc.wantToken {
				t.Errorf("decoded.Data.AccessToken = %q, want: %q", got, tc.wantToken)
			}
		})
	}
}

func TestHandler_IssueToken_MissingParams(t *testing.T) {
	t.Parallel()

	h := auth.NewHandler(&auth.StubService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/token", http.NoBody)
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req)

	if got, want := rec.Result().StatusCode, http.StatusBadRequest; got != want {
		t.Errorf("res.StatusCode = %d, want: %d", got, want)
	}
}
