package gateway

import (
	"context"
	"time"

	"codeberg.org/codesage/server/internal/llm"
	"codeberg.org/codesage/server/internal/logger"
)

const (
	// rate-limited calls are retried this many times before failover
	maxRetries = 3

	// backoff delays are 2^(attempt+1) units: 2s, 4s, 8s
	backoffUnit = time.Second
)

// creates an executor from the credential pair; an empty primary
// credential yields an executor that fails every call with
// ErrNotConfigured
func NewExecutor(creds Credentials) *Executor {
	e := &Executor{
		maxRetries:  maxRetries,
		backoffUnit: backoffUnit,
		sleep:       sleepContext,
	}

	if creds.Primary != "" {
		e.primary = llm.NewGroqClient(llm.GroqConfig{APIKey: creds.Primary})
	}

	if creds.Fallback != "" {
		e.fallback = llm.NewGroqClient(llm.GroqConfig{APIKey: creds.Fallback})
	}

	return e
}

// returns the model identifier of the primary client
func (e *Executor) Model() string {
	if e.primary == nil {
		return ""
	}

	return e.primary.Model()
}

// issues one logical request to the upstream provider.
//
// Rate-limit failures are retried with backoff delays of 2, 4 and 8
// units; any other failure propagates immediately. After the primary
// retry budget is exhausted, the fallback credential (if configured)
// gets exactly one attempt with no additional delay. The final failure
// is surfaced as *UpstreamError; extraction of the returned text is
// the caller's concern.
func (e *Executor) Execute(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if e.primary == nil {
		return "", ErrNotConfigured
	}

	req := llm.CompletionRequest{
		SystemPrompt: systemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: userPrompt},
		},
	}

	var lastErr error

	for attempt := 0; attempt < e.maxRetries; attempt++ {
		text, err := e.primary.Complete(ctx, req)
		if err == nil {
			return text, nil
		}

		lastErr = err

		if !llm.IsRateLimit(err) {
			// only throttling is retried or failed over
			return "", &UpstreamError{Last: err}
		}

		delay := e.backoffUnit * (1 << (attempt + 1))

		logger.Warn("upstream rate limited, backing off",
			"attempt", attempt+1,
			"delay", delay,
		)

		if err := e.sleep(ctx, delay); err != nil {
			return "", &UpstreamError{Last: err}
		}
	}

	if e.fallback != nil {
		logger.Info("failing over to secondary credential")

		text, err := e.fallback.Complete(ctx, req)
		if err == nil {
			return text, nil
		}

		lastErr = err
	}

	return "", &UpstreamError{Last: lastErr}
}

// suspends the calling goroutine until the delay elapses or ctx is
// cancelled; other in-flight requests keep making progress
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
