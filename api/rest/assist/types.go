package assist

import (
	"context"

	"codeberg.org/codesage/server/codesage/history"
	"codeberg.org/codesage/server/internal/assist"
)

// runs the AI operations behind each endpoint
type Assistant interface {
	Review(ctx context.Context, code, language string, focusAreas []string) (*assist.ReviewResult, error)
	Rewrite(ctx context.Context, code, language, instructions string) (*assist.RewriteResult, error)
	Visualize(ctx context.Context, code, language string) (*assist.VisualizeResult, error)
	Explain(ctx context.Context, code, language string) (*assist.ExplainResult, error)
	Model() string
}

// records completed operations for authenticated users
type HistoryRecorder interface {
	Save(ctx context.Context, userID, action, language, code, resultPreview string) (*history.Entry, error)
}

// asks for a code review
type ReviewRequest struct {
	Code       string   `json:"code" binding:"required"`
	Language   string   `json:"language"`
	FocusAreas []string `json:"focus_areas"`
}

// asks for an improved version of the code
type RewriteRequest struct {
	Code         string `json:"code" binding:"required"`
	Language     string `json:"language"`
	Instructions string `json:"instructions"`
}

// asks for an execution flow graph
type VisualizeRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
}

// asks for a beginner-friendly explanation
type ExplainRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
}
