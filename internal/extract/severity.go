package extract

import "regexp"

// per-bucket issue counts parsed from a review report; all four keys
// are always present and each count stays within [0, maxIssueCount]
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// counts above this are treated as parser noise and clamped
const maxIssueCount = 20

var severityNames = []string{"critical", "high", "medium", "low"}

// heading line for one severity: optional markdown marker, optional
// colored-circle glyph, the severity name, optional Issues/Priority
// suffix, rest of line
var severityHeadings = func() map[string]*regexp.Regexp {
	headings := make(map[string]*regexp.Regexp, len(severityNames))

	for _, name := range severityNames {
		headings[name] = regexp.MustCompile(
			`(?i)(?:#{1,3}\s*)?(?:🔴|🟠|🟡|🟢)?\s*` + name + `\s*(?:issues?|priority)?[^\n]*\n`,
		)
	}

	return headings
}()

// start of the next recognized section; deliberately loose (a severity
// word mid-sentence ends the section early) to match the established
// boundary policy
var sectionBoundary = regexp.MustCompile(`(?i)(?:#{1,3}\s*)?(?:🔴|🟠|🟡|🟢)?\s*(?:critical|high|medium|low|summary|💡)`)

// issue-count signals, in priority order
var (
	numberedItems = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	boldSpans     = regexp.MustCompile(`\*\*[^*]+\*\*`)
	bulletItems   = regexp.MustCompile(`(?m)^\s*[-*●•]\s+`)
	noIssuesFound = regexp.MustCompile(`(?i)no\s+\w*\s*(?:issues?|problems?)\s+found`)
)

// counts numbered list items, the primary signal
func countNumbered(section string) int {
	return len(numberedItems.FindAllString(section, -1))
}

// counts bold-label pairs; each reported issue carries two bold labels
func countBoldPairs(section string) int {
	return len(boldSpans.FindAllString(section, -1)) / 2
}

// counts bullet markers, the last-resort signal
func countBullets(section string) int {
	return len(bulletItems.FindAllString(section, -1))
}

// heuristically counts reported issues per severity bucket from a
// semi-structured review report. Never fails: an absent section, an
// unparseable section, or a panic while scanning all yield 0 for that
// bucket.
func ClassifySeverity(report string) SeverityCounts {
	if report == "" {
		return SeverityCounts{}
	}

	counts := SeverityCounts{
		Critical: countSeverity(report, "critical"),
		High:     countSeverity(report, "high"),
		Medium:   countSeverity(report, "medium"),
		Low:      countSeverity(report, "low"),
	}

	return counts
}

func countSeverity(report, name string) (count int) {
	// the classifier's contract is to never raise
	defer func() {
		if r := recover(); r != nil {
			count = 0
		}
	}()

	heading := severityHeadings[name].FindStringIndex(report)
	if heading == nil {
		return 0
	}

	section := report[heading[1]:]

	if boundary := sectionBoundary.FindStringIndex(section); boundary != nil {
		section = section[:boundary[0]]
	}

	if section == "" {
		return 0
	}

	count = max(countNumbered(section), countBoldPairs(section))

	if count == 0 {
		count = countBullets(section)
	}

	if count > maxIssueCount {
		count = maxIssueCount
	}

	if noIssuesFound.MatchString(section) {
		count = 0
	}

	return count
}
