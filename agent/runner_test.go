package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPRunnerForwardsMessage(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST but got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected application/json but got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Invalid request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "Hello back"})
	}))
	defer srv.Close()

	runner := NewHTTPRunner(srv.URL)
	reply, err := runner.Run(context.Background(), "abc", "hello")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if reply != "Hello back" {
		t.Errorf("Expected the agent reply but got %q", reply)
	}
	if received["session_id"] != "abc" || received["message"] != "hello" {
		t.Errorf("Unexpected request payload: %v", received)
	}
}

func TestHTTPRunnerUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "agent overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	runner := NewHTTPRunner(srv.URL)
	_, err := runner.Run(context.Background(), "abc", "hello")
	if err == nil {
		t.Fatal("Expected an error for a non-200 response")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("Expected the status code in the error but got %v", err)
	}
}

func TestHTTPRunnerUnreachable(t *testing.T) {
	runner := NewHTTPRunner("http://127.0.0.1:1")
	if _, err := runner.Run(context.Background(), "abc", "hello"); err == nil {
		t.Fatal("Expected an error for an unreachable agent")
	}
}
