// Package extract turns unreliable model output into typed, bounded
// values. Nothing in this package returns an error: a miss always
// resolves to a well-defined default, because the upstream model's
// formatting cannot be trusted while the handlers need complete values.
package extract

import (
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:\\w+)?\\n(.*?)```")

// returns the trimmed interior of the first triple-backtick fenced
// block, or "" when the text contains none. Only the first block is
// considered.
func CodeBlock(text string) string {
	match := fencedBlock.FindStringSubmatch(text)

	if match == nil {
		return ""
	}

	return strings.TrimSpace(match[1])
}
