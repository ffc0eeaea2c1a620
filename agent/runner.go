package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Runner produces the agent's reply to a user message within a session.
type Runner interface {
	Run(ctx context.Context, sessionID, message string) (string, error)
}

// HTTPRunner forwards messages to an external agent endpoint and reads the
// reply back. The endpoint receives {"session_id": ..., "message": ...} and
// must answer {"response": ...}.
type HTTPRunner struct {
	URL    string
	Client *http.Client
}

func NewHTTPRunner(url string) *HTTPRunner {
	return &HTTPRunner{
		URL: url,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (r *HTTPRunner) Run(ctx context.Context, sessionID, message string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"session_id": sessionID,
		"message":    message,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode agent request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create agent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("agent request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("agent returned status %d: %s", resp.StatusCode, body)
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode agent response: %w", err)
	}

	return out.Response, nil
}
