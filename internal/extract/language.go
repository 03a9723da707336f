package extract

import (
	"regexp"
	"strings"
)

var detectedPhrase = regexp.MustCompile(`(?i)appears to be ([A-Za-z+#]+)`)

// canonical forms for language tokens the model may report
var canonicalLanguages = map[string]string{
	"python":     "python",
	"javascript": "javascript",
	"typescript": "typescript",
	"java":       "java",
	"c":          "c",
	"c++":        "c++",
	"cpp":        "c++",
	"c#":         "c#",
	"csharp":     "c#",
	"go":         "go",
	"golang":     "go",
	"rust":       "rust",
	"ruby":       "ruby",
	"php":        "php",
	"swift":      "swift",
	"kotlin":     "kotlin",
	"scala":      "scala",
	"r":          "r",
	"perl":       "perl",
	"haskell":    "haskell",
	"lua":        "lua",
	"sql":        "sql",
	"html":       "html",
	"css":        "css",
	"bash":       "bash",
	"shell":      "shell",
}

// returns the language the report says the code "appears to be", when
// that token is a known language; otherwise the claimed language is
// returned unchanged. Never fails.
func DetectedLanguage(report, claimed string) string {
	match := detectedPhrase.FindStringSubmatch(report)

	if match == nil {
		return claimed
	}

	if canonical, ok := canonicalLanguages[strings.ToLower(match[1])]; ok {
		return canonical
	}

	return claimed
}
