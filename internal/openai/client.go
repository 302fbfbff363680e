// Package openai implements the one outbound call the chat relay makes:
// a synchronous, non-streaming chat completion against an OpenAI-compatible
// endpoint. No retries, no conversation history.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"

	// Fixed generation parameters; there is no per-request configuration.
	model        = "gpt-3.5-turbo"
	maxTokens    = 150
	temperature  = 0.7
	systemPrompt = "You are a helpful and concise AI assistant."
)

// ErrMissingAPIKey is returned when the relay is asked to complete without
// an upstream credential configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set; chat disabled")

// UpstreamError carries a non-2xx answer from the API so the relay boundary
// can remap it by status code.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openai api error %d: %s", e.Status, e.Message)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Client talks to the chat-completions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient builds a Client against the production endpoint.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	return NewClientWithBaseURL(apiKey, DefaultBaseURL, logger)
}

// NewClientWithBaseURL allows pointing the client at a test server.
func NewClientWithBaseURL(apiKey, baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// Complete sends the user's text as the only turn after the fixed system
// instruction and returns the first completion's text.
//
// Errors: ErrMissingAPIKey when unconfigured, *UpstreamError for any non-2xx
// status, a plain error for transport failures and malformed payloads.
func (c *Client) Complete(ctx context.Context, userMessage string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyJSON))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("upstream error",
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(start)))
		return "", &UpstreamError{Status: resp.StatusCode, Message: upstreamMessage(respBody)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("upstream payload error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("upstream returned no choices")
	}

	c.logger.Debug("completion ok", zap.Duration("elapsed", time.Since(start)))
	return parsed.Choices[0].Message.Content, nil
}

// upstreamMessage digs the human-readable message out of an error body,
// falling back to the raw (truncated) body when it is not the usual
// {"error":{"message":...}} shape.
func upstreamMessage(body []byte) string {
	var e struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	s := string(body)
	if len(s) > 500 {
		s = s[:500]
	}
	if s == "" {
		s = "Unknown error"
	}
	return s
}
