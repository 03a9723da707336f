package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// a single role-tagged turn in a chat completion conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// describes one chat completion call
type CompletionRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int // 0 uses the client default
}

// issues chat completion calls against an upstream provider
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Model() string
}

// a non-2xx response from the upstream provider
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// reports whether err signals upstream throttling (HTTP 429 or a
// rate-limit error body)
func IsRateLimit(err error) bool {
	var apiErr *APIError

	if !errors.As(err, &apiErr) {
		return false
	}

	if apiErr.StatusCode == 429 {
		return true
	}

	return strings.Contains(apiErr.Body, "rate_limit") || strings.Contains(apiErr.Body, "rate limit")
}
