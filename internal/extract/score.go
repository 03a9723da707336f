package extract

import (
	"regexp"
	"strconv"
)

// used when a report carries no recognizable score
const DefaultScore = 50

var (
	strictScore = regexp.MustCompile(`\*\*Score:\s*(\d+)/100\*\*`)
	looseScore  = regexp.MustCompile(`(\d+)/100`)
)

// pulls the quality score out of a review report: first the strict
// "**Score: N/100**" form the model is instructed to emit, then any
// bare "N/100" occurrence. Returns DefaultScore when neither matches.
func Score(report string) int {
	match := strictScore.FindStringSubmatch(report)

	if match == nil {
		match = looseScore.FindStringSubmatch(report)
	}

	if match == nil {
		return DefaultScore
	}

	score, err := strconv.Atoi(match[1])
	if err != nil {
		return DefaultScore
	}

	return score
}
