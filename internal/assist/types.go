package assist

import (
	"context"
	"encoding/json"

	"codeberg.org/codesage/server/internal/extract"
)

// the resilient call layer the service speaks through; satisfied by
// *gateway.Executor
type Gateway interface {
	Execute(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}

// coordinates prompt construction, upstream delivery and output
// extraction for the four assist operations
type Service struct {
	gw Gateway
}

func New(gw Gateway) *Service {
	return &Service{gw: gw}
}

// structured review of one code submission
type ReviewResult struct {
	Review         string                 `json:"review"`
	QualityScore   int                    `json:"quality_score"`
	SeverityCounts extract.SeverityCounts `json:"severity_counts"`
	Language       string                 `json:"language"`
}

// rewritten code plus the full explanation text
type RewriteResult struct {
	Rewrite       string `json:"rewrite"`
	RewrittenCode string `json:"rewritten_code"`
	OriginalCode  string `json:"original_code"`
	Language      string `json:"language"`
}

// flow-graph payload for one code submission; Graph is always valid
// JSON, falling back to a minimal start→code→end graph when the model
// output is unrecoverable
type VisualizeResult struct {
	Graph    json.RawMessage `json:"graph"`
	Language string          `json:"language"`
}

// prose explanation of one code submission
type ExplainResult struct {
	Explanation string `json:"explanation"`
	Language    string `json:"language"`
}
