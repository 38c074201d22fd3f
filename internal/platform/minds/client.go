package minds

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/adisatrio/mindskit/internal/config"
)

// HTTPClient talks to the MindsDB server HTTP API.
type HTTPClient struct {
	client  *http.Client
	host    string
	project string
}

var _ Agent = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the MindsDB server at cfg.Host. The host
// is the same base URL the MindsDB SDK connects to, e.g. http://127.0.0.1:47334.
func NewHTTPClient(cfg *config.Minds) (*HTTPClient, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("minds host is empty")
	}

	if _, err := url.ParseRequestURI(cfg.Host); err != nil {
		return nil, fmt.Errorf("parse minds host %s: %w", cfg.Host, err)
	}

	return &HTTPClient{
		client: &http.Client{
			Timeout: cfg.CompletionTimeout.Duration,
		},
		host:    cfg.Host,
		project: cfg.Project,
	}, nil
}

type completionRequest struct {
	Messages []QA `json:"messages"`
}

type completionResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Completion sends the conversation history to the named agent and returns
// its answer.
func (c *HTTPClient) Completion(ctx context.Context, agentName string, messages []QA) (*Completion, error) {
	endpoint := fmt.Sprintf("%s/api/projects/%s/agents/%s/completions",
		c.host, url.PathEscape(c.project), url.PathEscape(agentName))

	body, err := json.Marshal(&completionRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post completion to agent %s: %w", agentName, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("agent %s returned status %d: %s", agentName, res.StatusCode, snippet)
	}

	var decoded completionResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode completion response: %w", err)
	}

	if decoded.Message.Content == "" {
		return nil, ErrNoCompletion
	}

	return &Completion{Content: decoded.Message.Content}, nil
}
