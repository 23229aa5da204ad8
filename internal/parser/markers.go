package parser

import (
	"regexp"
	"strings"
)

// Field markers as they appear in LLM output. Each line-anchored marker
// tolerates an optional numeric list prefix ("1. ") and optional bold
// markup around the label, both of which LLMs add inconsistently.
var (
	titleLine    = regexp.MustCompile(`^(?:\d+\.\s*)?(?:\*\*)?Title:(?:\*\*)?\s*(.*)$`)
	scenarioLine = regexp.MustCompile(`^(?:\d+\.\s*)?(?:\*\*)?Scenario:(?:\*\*)?\s*(.*)$`)
	stepsLine    = regexp.MustCompile(`^(?:\d+\.\s*)?(?:\*\*)?Steps(?: to [Rr]eproduce)?:(?:\*\*)?`)
	expectedLine = regexp.MustCompile(`^(?:\d+\.\s*)?(?:\*\*)?Expected Result:(?:\*\*)?\s*(.*)$`)
	actualLine   = regexp.MustCompile(`^(?:\d+\.\s*)?(?:\*\*)?Actual Result:(?:\*\*)?\s*(.*)$`)
	statusLine   = regexp.MustCompile(`^Status:\s*(.*)$`)
	priorityLine = regexp.MustCompile(`^(?:\d+\.\s*)?(?:\*\*)?Priority:(?:\*\*)?\s*(.*)$`)

	// stepItem matches one step with a leading numeric, hyphen or
	// asterisk marker.
	stepItem = regexp.MustCompile(`^\s*(?:\d+\.|-|\*)\s*(.*)$`)

	// extrasLine captures optional fields the prompt does not require
	// but LLMs sometimes emit; they are preserved opaquely.
	extrasLine = regexp.MustCompile(`^(?:\*\*)?(Preconditions?|Test Data|Postconditions?)\s*:(?:\*\*)?\s*(.*)$`)

	// headingLine is a markdown-style heading that switches the default
	// section for subsequently started records.
	headingLine = regexp.MustCompile(`^#+\s*(.*)$`)

	// caseIDPattern identifies conventional test case identifiers such
	// as TC_FUNC_1 used as bare titles.
	caseIDPattern = regexp.MustCompile(`TC_[A-Z]+_\d+`)

	blankSplit = regexp.MustCompile(`\n\s*\n`)
)

// Block-scoped markers: these scan anywhere inside a paragraph block
// rather than anchoring to line starts.
var (
	titleField    = regexp.MustCompile(`Title:[ \t]*([^\n]*)`)
	scenarioField = regexp.MustCompile(`Scenario:[ \t]*([^\n]*)`)
	statusField   = regexp.MustCompile(`\n\s*Status:[ \t]*([^\n]*)`)
	priorityField = regexp.MustCompile(`Priority:[ \t]*([^\n]*)`)

	stepsStart    = regexp.MustCompile(`(?:\*\*)?Steps to [Rr]eproduce:(?:\*\*)?[ \t]*\n`)
	expectedStart = regexp.MustCompile(`Expected Result:[ \t]*`)
	actualStart   = regexp.MustCompile(`Actual Result:[ \t]*`)

	expectedEnd = regexp.MustCompile(`\n\s*(?:\*\*)?(?:Actual Result|Status|Priority):`)
	actualEnd   = regexp.MustCompile(`\n\s*(?:\*\*)?Priority:`)
	stepsEnd    = regexp.MustCompile(`\n\s*(?:\*\*)?Expected Result:`)
)

// cleanField trims whitespace and strips bold markup from a field value.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "**", "")
	return strings.TrimSpace(s)
}

// firstGroup returns the cleaned first capture group of re in text, or
// "" when there is no match.
func firstGroup(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return cleanField(m[1]), true
}

// spanAfter returns the text between the end of the first start match
// and the beginning of the earliest end match that follows it (or the
// end of text when no end marker matches).
func spanAfter(text string, start *regexp.Regexp, ends ...*regexp.Regexp) (string, bool) {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	rest := text[loc[1]:]
	cut := len(rest)
	for _, end := range ends {
		if m := end.FindStringIndex(rest); m != nil && m[0] < cut {
			cut = m[0]
		}
	}
	return rest[:cut], true
}
