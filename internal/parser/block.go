package parser

import (
	"strings"

	"github.com/frherrer/caseweaver/internal/domain"
)

// MinBlockLength is the minimum size of a paragraph block considered a
// candidate test case; anything shorter is treated as noise.
const MinBlockLength = 10

// BlockStrategy extracts test cases from paragraph blocks delimited by
// blank lines. It only applies when the text carries the full
// "Title:" + "Steps to reproduce:" layout the generation prompt asks
// for, so it runs before the more permissive line strategy.
type BlockStrategy struct {
	MinBlockLength int
}

// CanParse reports whether the text looks like the standard block
// layout: a steps marker together with either a title marker or a
// conventional TC_ case identifier.
func (s *BlockStrategy) CanParse(text string) bool {
	if !stepsStart.MatchString(text) {
		return false
	}
	return strings.Contains(text, "Title:") || caseIDPattern.MatchString(text)
}

// Parse splits text on blank lines and extracts one test case per block
// that yields a title. Blocks without a recognizable title are dropped.
func (s *BlockStrategy) Parse(text, defaultSection string) []domain.TestCase {
	minLen := s.MinBlockLength
	if minLen <= 0 {
		minLen = MinBlockLength
	}

	var cases []domain.TestCase
	for _, block := range blankSplit.Split(text, -1) {
		block = strings.TrimSpace(block)
		if len(block) < minLen {
			continue
		}
		if !strings.Contains(block, "Title:") && !caseIDMatchesFirstLine(block) {
			continue
		}

		tc := s.parseBlock(block, defaultSection)
		if tc.Title != "" {
			cases = append(cases, tc)
		}
	}
	return cases
}

func (s *BlockStrategy) parseBlock(block, defaultSection string) domain.TestCase {
	tc := domain.TestCase{Section: defaultSection}

	if title, ok := firstGroup(titleField, block); ok {
		tc.Title = title
	} else if caseIDMatchesFirstLine(block) {
		first, _, _ := strings.Cut(block, "\n")
		tc.Title = cleanField(first)
	}

	if scenario, ok := firstGroup(scenarioField, block); ok {
		tc.Scenario = scenario
	}

	if span, ok := spanAfter(block, stepsStart, stepsEnd); ok {
		tc.Steps = splitSteps(span)
	}

	if span, ok := spanAfter(block, expectedStart, expectedEnd); ok {
		tc.ExpectedResult = cleanField(span)
	}

	if status, ok := firstGroup(statusField, block); ok {
		tc.Status = status
	}

	if span, ok := spanAfter(block, actualStart, actualEnd); ok {
		actual := cleanField(span)
		// An empty Actual Result line directly above Priority leaves the
		// placeholder blank rather than swallowing the next field.
		if actual != "" && !strings.HasPrefix(actual, "Priority:") {
			tc.ActualResult = actual
		}
	}

	if priority, ok := firstGroup(priorityField, block); ok {
		tc.Priority = priority
	}

	return tc
}

// splitSteps breaks a steps span into individual steps on numeric,
// hyphen or asterisk item markers. When no line carries a marker the
// whole span becomes a single step.
func splitSteps(span string) []string {
	span = strings.TrimSpace(span)
	if span == "" {
		return nil
	}

	var steps []string
	for _, line := range strings.Split(span, "\n") {
		m := stepItem.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if step := cleanField(m[1]); step != "" {
			steps = append(steps, step)
		}
	}
	if len(steps) > 0 {
		return steps
	}
	return []string{cleanField(span)}
}

// caseIDMatchesFirstLine reports whether the block opens with a bare
// test case identifier standing in for a Title: marker.
func caseIDMatchesFirstLine(block string) bool {
	first, _, _ := strings.Cut(strings.TrimSpace(block), "\n")
	loc := caseIDPattern.FindStringIndex(strings.TrimSpace(first))
	return loc != nil && loc[0] == 0
}
