package gateway

import (
	"context"
	"errors"
	"time"

	"codeberg.org/codesage/server/internal/llm"
)

// returned when no primary API credential was configured at startup;
// the executor is permanently unavailable and never attempts network I/O
var ErrNotConfigured = errors.New("upstream gateway not configured: missing primary API credential")

// a delivery failure after all retries and failover were exhausted
type UpstreamError struct {
	Last error
}

func (e *UpstreamError) Error() string {
	return "upstream completion failed: " + e.Last.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Last
}

// ordered credential pair for the upstream provider; built once at
// startup and read-only thereafter
type Credentials struct {
	Primary  string
	Fallback string // optional
}

// waits for the given duration or until ctx is cancelled, whichever
// comes first; injectable so tests can observe the backoff schedule
type sleepFunc func(ctx context.Context, d time.Duration) error

// issues one logical completion call against the upstream provider,
// retrying rate-limit failures with exponential backoff and failing
// over to a secondary credential when the budget is exhausted
type Executor struct {
	primary  llm.Completer
	fallback llm.Completer // nil when no fallback credential

	maxRetries  int
	backoffUnit time.Duration
	sleep       sleepFunc
}
