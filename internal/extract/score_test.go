package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   int
	}{
		{
			name:   "strict pattern",
			report: "**Score: 87/100** — solid",
			want:   87,
		},
		{
			name:   "strict wins over loose",
			report: "3/100 of readers care. **Score: 90/100**",
			want:   90,
		},
		{
			name:   "loose fallback",
			report: "overall this lands around 64/100 in my book",
			want:   64,
		},
		{
			name:   "no pattern uses default",
			report: "nothing numeric to see here",
			want:   DefaultScore,
		},
		{
			name:   "empty input uses default",
			report: "",
			want:   DefaultScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.report))
		})
	}
}

func TestDetectedLanguage(t *testing.T) {
	tests := []struct {
		name    string
		report  string
		claimed string
		want    string
	}{
		{
			name:    "canonical token",
			report:  "This code appears to be Python, not JavaScript.",
			claimed: "javascript",
			want:    "python",
		},
		{
			name:    "symbolic form",
			report:  "the snippet appears to be C++ with templates",
			claimed: "c",
			want:    "c++",
		},
		{
			name:    "alias normalized",
			report:  "appears to be Golang",
			claimed: "python",
			want:    "go",
		},
		{
			name:    "unknown token keeps claim",
			report:  "appears to be Klingon",
			claimed: "python",
			want:    "python",
		},
		{
			name:    "no phrase keeps claim",
			report:  "a fine review with no language remark",
			claimed: "rust",
			want:    "rust",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectedLanguage(tt.report, tt.claimed))
		})
	}
}
