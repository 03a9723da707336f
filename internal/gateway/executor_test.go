package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/codesage/server/internal/llm"
)

type stubResult struct {
	text string
	err  error
}

// implements llm.Completer with a scripted result sequence
type stubCompleter struct {
	results []stubResult
	calls   int
}

func (s *stubCompleter) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	idx := s.calls
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}

	s.calls++

	return s.results[idx].text, s.results[idx].err
}

func (s *stubCompleter) Model() string {
	return "stub-model"
}

func rateLimitErr() error {
	return &llm.APIError{StatusCode: 429, Body: `{"error":{"code":"rate_limit_exceeded"}}`}
}

// builds an executor with a sleep recorder instead of real delays
func newTestExecutor(primary, fallback llm.Completer) (*Executor, *[]time.Duration) {
	var slept []time.Duration

	e := &Executor{
		primary:     primary,
		fallback:    fallback,
		maxRetries:  3,
		backoffUnit: time.Second,
		sleep: func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		},
	}

	return e, &slept
}

func TestExecute_Success(t *testing.T) {
	primary := &stubCompleter{results: []stubResult{{text: "hello"}}}
	e, slept := newTestExecutor(primary, nil)

	text, err := e.Execute(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, 1, primary.calls)
	assert.Empty(t, *slept)
}

func TestExecute_NotConfigured(t *testing.T) {
	e := NewExecutor(Credentials{})

	_, err := e.Execute(context.Background(), "system", "user")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestExecute_BackoffScheduleThenFailover(t *testing.T) {
	primary := &stubCompleter{results: []stubResult{{err: rateLimitErr()}}}
	fallback := &stubCompleter{results: []stubResult{{text: "from fallback"}}}
	e, slept := newTestExecutor(primary, fallback)

	text, err := e.Execute(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "from fallback", text)
	assert.Equal(t, 3, primary.calls, "primary should be attempted exactly three times")
	assert.Equal(t, 1, fallback.calls, "fallback gets exactly one attempt")
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}, *slept)
}

func TestExecute_RateLimitedNoFallback(t *testing.T) {
	primary := &stubCompleter{results: []stubResult{{err: rateLimitErr()}}}
	e, slept := newTestExecutor(primary, nil)

	text, err := e.Execute(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Empty(t, text, "a delivery failure must never return text")

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 3, primary.calls)
	assert.Len(t, *slept, 3)
}

func TestExecute_FallbackAlsoFails(t *testing.T) {
	primary := &stubCompleter{results: []stubResult{{err: rateLimitErr()}}}
	fallback := &stubCompleter{results: []stubResult{{err: &llm.APIError{StatusCode: 500, Body: "boom"}}}}
	e, _ := newTestExecutor(primary, fallback)

	_, err := e.Execute(context.Background(), "system", "user")

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Contains(t, upstreamErr.Error(), "boom", "last error's description is carried")
}

func TestExecute_NonRateLimitNotRetried(t *testing.T) {
	primary := &stubCompleter{results: []stubResult{{err: &llm.APIError{StatusCode: 500, Body: "server error"}}}}
	fallback := &stubCompleter{results: []stubResult{{text: "unused"}}}
	e, slept := newTestExecutor(primary, fallback)

	_, err := e.Execute(context.Background(), "system", "user")

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 1, primary.calls, "non-throttling failures are not retried")
	assert.Equal(t, 0, fallback.calls, "failover is reserved for rate-limit exhaustion")
	assert.Empty(t, *slept)
}

func TestExecute_RecoversAfterOneRetry(t *testing.T) {
	primary := &stubCompleter{results: []stubResult{
		{err: rateLimitErr()},
		{text: "second try"},
	}}
	e, slept := newTestExecutor(primary, nil)

	text, err := e.Execute(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "second try", text)
	assert.Equal(t, []time.Duration{2 * time.Second}, *slept)
}

func TestSleepContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepContext(ctx, time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRateLimit(t *testing.T) {
	assert.True(t, llm.IsRateLimit(rateLimitErr()))
	assert.True(t, llm.IsRateLimit(&llm.APIError{StatusCode: 503, Body: "rate_limit_exceeded, retry soon"}))
	assert.False(t, llm.IsRateLimit(&llm.APIError{StatusCode: 500, Body: "internal"}))
	assert.False(t, llm.IsRateLimit(errors.New("plain error")))
}
