package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestComplete_Success(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Hello there!"}}]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, nil)
	out, err := c.Complete(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "Hello there!" {
		t.Fatalf("output = %q", out)
	}

	if gotReq.Model != "gpt-3.5-turbo" || gotReq.MaxTokens != 150 || gotReq.Temperature != 0.7 {
		t.Fatalf("generation parameters not fixed: %+v", gotReq)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Content != "hi" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestComplete_MissingAPIKey(t *testing.T) {
	c := NewClient("", nil)
	if _, err := c.Complete(context.Background(), "hi"); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestComplete_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests"}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, nil)
	_, err := c.Complete(context.Background(), "hi")

	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
	if ue.Status != 429 || ue.Message != "Rate limit reached" {
		t.Fatalf("unexpected upstream error: %+v", ue)
	}
}

func TestComplete_UpstreamStatusRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, nil)
	_, err := c.Complete(context.Background(), "hi")

	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.Status != 502 || ue.Message != "upstream exploded" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestComplete_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, nil)
	if _, err := c.Complete(context.Background(), "hi"); err == nil || !strings.Contains(err.Error(), "parse response") {
		t.Fatalf("err = %v, want parse error", err)
	}
}

func TestComplete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL, nil)
	if _, err := c.Complete(context.Background(), "hi"); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestComplete_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClientWithBaseURL("test-key", srv.URL, nil)
	_, err := c.Complete(context.Background(), "hi")
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		t.Fatalf("transport failure must not look like an upstream status: %v", err)
	}
}
