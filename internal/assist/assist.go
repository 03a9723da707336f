package assist

import (
	"context"
	"encoding/json"

	"codeberg.org/codesage/server/internal/extract"
)

// returned verbatim when no graph can be recovered from the model
// output; the frontend renders it as a degenerate three-node flow
var defaultFlowGraph = json.RawMessage(`{
	"nodes": [
		{"id": "start", "label": "Start", "type": "start", "detail": "Program entry"},
		{"id": "code", "label": "Code Block", "type": "operation", "detail": "Main code"},
		{"id": "end", "label": "End", "type": "end", "detail": "Program exit"}
	],
	"links": [
		{"source": "start", "target": "code"},
		{"source": "code", "target": "end"}
	],
	"summary": ["Could not parse code structure. Please try again."]
}`)

// reviews the submitted code and derives the quality score, per-bucket
// severity counts and detected language from the report text; only
// delivery failures surface as errors, extraction misses degrade to
// defaults
func (s *Service) Review(ctx context.Context, code, language string, focusAreas []string) (*ReviewResult, error) {
	report, err := s.gw.Execute(ctx, reviewSystemPrompt, reviewUserPrompt(code, language, focusAreas))
	if err != nil {
		return nil, err
	}

	return &ReviewResult{
		Review:         report,
		QualityScore:   extract.Score(report),
		SeverityCounts: extract.ClassifySeverity(report),
		Language:       extract.DetectedLanguage(report, language),
	}, nil
}

// rewrites the submitted code; RewrittenCode is the first fenced block
// of the response, "" when the model produced none
func (s *Service) Rewrite(ctx context.Context, code, language, instructions string) (*RewriteResult, error) {
	response, err := s.gw.Execute(ctx, rewriteSystemPrompt(language), rewriteUserPrompt(code, language, instructions))
	if err != nil {
		return nil, err
	}

	return &RewriteResult{
		Rewrite:       response,
		RewrittenCode: extract.CodeBlock(response),
		OriginalCode:  code,
		Language:      language,
	}, nil
}

// produces a flow-graph JSON value for the submitted code, recovering
// it from whatever shape the model returned
func (s *Service) Visualize(ctx context.Context, code, language string) (*VisualizeResult, error) {
	response, err := s.gw.Execute(ctx, visualizeSystemPrompt, visualizeUserPrompt(code, language))
	if err != nil {
		return nil, err
	}

	return &VisualizeResult{
		Graph:    extract.RecoverJSON(response, defaultFlowGraph),
		Language: language,
	}, nil
}

// explains the submitted code; the response is relayed as-is
func (s *Service) Explain(ctx context.Context, code, language string) (*ExplainResult, error) {
	response, err := s.gw.Execute(ctx, explainSystemPrompt, explainUserPrompt(code, language))
	if err != nil {
		return nil, err
	}

	return &ExplainResult{
		Explanation: response,
		Language:    language,
	}, nil
}

// returns the upstream model identifier for response metadata
func (s *Service) Model() string {
	return s.gw.Model()
}
