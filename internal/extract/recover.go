package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

var jsonFence = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)```")

// recovers a JSON object from model output that was instructed to be
// raw JSON but may arrive fenced or wrapped in prose. The cascade runs
// in order of decreasing confidence:
//
//  1. the whole trimmed text as a JSON object
//  2. the interior of a fenced block (optionally tagged json)
//  3. the greedy span from the first "{" to the last "}"
//
// Only object-shaped results count: a bare scalar like null or 0 is
// valid JSON but useless as a payload, so it falls through. When every
// step fails the caller's fallback is returned, so the result is never
// nil and never an error.
func RecoverJSON(text string, fallback json.RawMessage) json.RawMessage {
	if trimmed := strings.TrimSpace(text); validObject(trimmed) {
		return json.RawMessage(trimmed)
	}

	if match := jsonFence.FindStringSubmatch(text); match != nil {
		if inner := strings.TrimSpace(match[1]); validObject(inner) {
			return json.RawMessage(inner)
		}
	}

	if start := strings.Index(text, "{"); start != -1 {
		if end := strings.LastIndex(text, "}"); end > start {
			span := text[start : end+1]
			if json.Valid([]byte(span)) {
				return json.RawMessage(span)
			}
		}
	}

	return fallback
}

func validObject(s string) bool {
	return strings.HasPrefix(s, "{") && json.Valid([]byte(s))
}
