package assist

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// implements Gateway for testing
type mockGateway struct {
	executeFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func (m *mockGateway) Execute(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, systemPrompt, userPrompt)
	}

	return "", nil
}

func (m *mockGateway) Model() string {
	return "mock-model"
}

func TestReview(t *testing.T) {
	report := "## 📊 Overall Quality Score\n**Score: 87/100** — solid\n\n" +
		"## 🔴 Critical Issues\nNo critical issues found.\n\n" +
		"## 🟠 High Priority\n1. **Race on shared map**\n   - **Fix**: guard it\n"

	gw := &mockGateway{
		executeFunc: func(_ context.Context, systemPrompt, userPrompt string) (string, error) {
			if !strings.Contains(systemPrompt, "code reviewer") {
				t.Error("expected review system prompt")
			}

			if !strings.Contains(userPrompt, "print(1)") {
				t.Error("expected submitted code in user prompt")
			}

			if !strings.Contains(userPrompt, "security, best practices") {
				t.Error("expected default focus areas")
			}

			return report, nil
		},
	}

	svc := New(gw)

	result, err := svc.Review(context.Background(), "print(1)", "python", nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.QualityScore != 87 {
		t.Errorf("unexpected score: %d", result.QualityScore)
	}

	if result.SeverityCounts.Critical != 0 || result.SeverityCounts.High != 1 {
		t.Errorf("unexpected severity counts: %+v", result.SeverityCounts)
	}

	if result.Language != "python" {
		t.Errorf("unexpected language: %s", result.Language)
	}

	if result.Review != report {
		t.Error("expected full report to be relayed")
	}
}

func TestReview_DetectedLanguageOverridesClaim(t *testing.T) {
	gw := &mockGateway{
		executeFunc: func(_ context.Context, _, _ string) (string, error) {
			return "**Score: 40/100** — this appears to be Ruby, not Python.", nil
		},
	}

	result, err := New(gw).Review(context.Background(), "puts 1", "python", nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.Language != "ruby" {
		t.Errorf("unexpected language: %s", result.Language)
	}
}

func TestReview_GatewayErrorPropagates(t *testing.T) {
	wantErr := errors.New("upstream down")

	gw := &mockGateway{
		executeFunc: func(_ context.Context, _, _ string) (string, error) {
			return "", wantErr
		},
	}

	_, err := New(gw).Review(context.Background(), "code", "go", nil)

	if !errors.Is(err, wantErr) {
		t.Errorf("expected delivery failure to propagate, got: %v", err)
	}
}

func TestRewrite(t *testing.T) {
	gw := &mockGateway{
		executeFunc: func(_ context.Context, systemPrompt, userPrompt string) (string, error) {
			if !strings.Contains(systemPrompt, "```go") {
				t.Error("expected language tag in rewrite system prompt")
			}

			if !strings.Contains(userPrompt, "make it faster") {
				t.Error("expected extra instructions in user prompt")
			}

			return "## ✨ Rewritten Code\n\n```go\nfunc fast() {}\n```\n\n## 📝 Changes Made\n- **Inlined**: hot path\n", nil
		},
	}

	result, err := New(gw).Rewrite(context.Background(), "func slow() {}", "go", "make it faster")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.RewrittenCode != "func fast() {}" {
		t.Errorf("unexpected rewritten code: %q", result.RewrittenCode)
	}

	if result.OriginalCode != "func slow() {}" {
		t.Errorf("unexpected original code: %q", result.OriginalCode)
	}
}

func TestRewrite_NoFenceYieldsEmptyCode(t *testing.T) {
	gw := &mockGateway{
		executeFunc: func(_ context.Context, _, _ string) (string, error) {
			return "I rewrote it but forgot the fence.", nil
		},
	}

	result, err := New(gw).Rewrite(context.Background(), "x", "python", "")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.RewrittenCode != "" {
		t.Errorf("expected empty rewritten code, got: %q", result.RewrittenCode)
	}
}

func TestVisualize_RecoversFencedGraph(t *testing.T) {
	gw := &mockGateway{
		executeFunc: func(_ context.Context, _, _ string) (string, error) {
			return "```json\n{\"nodes\":[{\"id\":\"a\"}],\"links\":[],\"summary\":[]}\n```", nil
		},
	}

	result, err := New(gw).Visualize(context.Background(), "x = 1", "python")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var graph map[string]any
	if err := json.Unmarshal(result.Graph, &graph); err != nil {
		t.Fatalf("graph is not valid JSON: %v", err)
	}

	if len(graph["nodes"].([]any)) != 1 {
		t.Errorf("unexpected graph: %v", graph)
	}
}

func TestVisualize_FallsBackToDefaultGraph(t *testing.T) {
	gw := &mockGateway{
		executeFunc: func(_ context.Context, _, _ string) (string, error) {
			return "sorry, I cannot draw that", nil
		},
	}

	result, err := New(gw).Visualize(context.Background(), "x = 1", "python")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var graph struct {
		Nodes   []map[string]string `json:"nodes"`
		Summary []string            `json:"summary"`
	}

	if err := json.Unmarshal(result.Graph, &graph); err != nil {
		t.Fatalf("default graph is not valid JSON: %v", err)
	}

	if len(graph.Nodes) != 3 {
		t.Errorf("expected three-node default graph, got %d nodes", len(graph.Nodes))
	}
}

func TestExplain(t *testing.T) {
	gw := &mockGateway{
		executeFunc: func(_ context.Context, systemPrompt, _ string) (string, error) {
			if !strings.Contains(systemPrompt, "programming instructor") {
				t.Error("expected explain system prompt")
			}

			return "## 🎯 Purpose\nIt prints a number.", nil
		},
	}

	result, err := New(gw).Explain(context.Background(), "print(1)", "python")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !strings.Contains(result.Explanation, "It prints a number.") {
		t.Errorf("unexpected explanation: %q", result.Explanation)
	}

	if result.Language != "python" {
		t.Errorf("unexpected language: %s", result.Language)
	}
}
