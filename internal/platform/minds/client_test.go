package minds_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adisatrio/mindskit/internal/config"
	"github.com/adisatrio/mindskit/internal/platform/minds"
	timex "github.com/adisatrio/mindskit/internal/pkg/time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *minds.HTTPClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Minds{
		Host:              srv.URL,
		Project:           "mindsdb",
		CompletionTimeout: timex.Duration{Duration: 5 * time.Second},
	}

	client, err := minds.NewHTTPClient(cfg)
	if err != nil {
		t.Fatalf("minds.NewHTTPClient() = %v, want: nil", err)
	}
	return client
}

func TestHTTPClient_Completion(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		wantPath := "/api/projects/mindsdb/agents/ease_agent/completions"
		if r.URL.Path != wantPath {
			t.Errorf("r.URL.Path = %q, want: %q", r.URL.Path, wantPath)
		}
		if r.Method != http.MethodPost {
			t.Errorf("r.Method = %q, want: %q", r.Method, http.MethodPost)
		}

		var req struct {
			Messages []minds.QA `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Question != "what data can I query?" {
			t.Errorf("unexpected messages payload: %+v", req.Messages)
		}
		if req.Messages[0].Answer != nil {
			t.Errorf("req.Messages[0].Answer = %v, want: nil", req.Messages[0].Answer)
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"message":{"content":"You can query the sales table."}}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	messages := []minds.QA{{Question: "what data can I query?"}}
	got, err := client.Completion(context.Background(), "ease_agent", messages)
	if err != nil {
		t.Fatalf("client.Completion() = %v, want: nil", err)
	}

	if want := "You can query the sales table."; got.Content != want {
		t.Errorf("got.Content = %q, want: %q", got.Content, want)
	}
}

func TestHTTPClient_CompletionUpstreamError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "agent not found", http.StatusNotFound)
	})

	_, err := client.Completion(context.Background(), "missing_agent", []minds.QA{{Question: "hi"}})
	if err == nil {
		t.Fatal("client.Completion() = nil, want: error for upstream failure")
	}
}

func TestHTTPClient_CompletionEmptyContent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"message":{"content":""}}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	_, err := client.Completion(context.Background(), "ease_agent", []minds.QA{{Question: "hi"}})
	if !errors.Is(err, minds.ErrNoCompletion) {
		t.Errorf("client.Completion() error = %v, want: %v", err, minds.ErrNoCompletion)
	}
}

func TestNewHTTPClient_InvalidHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host string
	}{
		{"empty host", ""},
		{"malformed host", "not a url"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Minds{Host: tc.host, Project: "mindsdb"}
			if _, err := minds.NewHTTPClient(cfg); err == nil {
				t.Errorf("minds.NewHTTPClient(%q) = nil, want: error", tc.host)
			}
		})
	}
}
