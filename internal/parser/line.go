package parser

import (
	"strings"

	"github.com/frherrer/caseweaver/internal/domain"
)

// parseState is the explicit state of the line strategy.
type parseState int

const (
	stateIdle   parseState = iota // no record open yet
	stateFields                   // record open, reading scalar fields
	stateSteps                    // record open, accumulating step lines
)

// LineStrategy extracts test cases line by line. It is the fallback for
// text the block strategy cannot handle: records glued together without
// blank lines, loose markdown decoration, or free text spilling over
// multiple lines after a field marker.
type LineStrategy struct{}

// CanParse always returns true; the line strategy is the last resort.
func (s *LineStrategy) CanParse(string) bool { return true }

// Parse runs the field state machine over every line of text. A Title
// marker opens a record (closing any previous one), a Steps marker
// switches to step accumulation, and unrecognized non-blank lines are
// folded into the most recent open field.
func (s *LineStrategy) Parse(text, defaultSection string) []domain.TestCase {
	var out []domain.TestCase
	section := defaultSection
	state := stateIdle
	var b *caseBuilder

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// Markdown headings update the default section for records
		// started afterwards; the open record keeps its section.
		if m := headingLine.FindStringSubmatch(line); m != nil {
			label := strings.TrimSpace(strings.ReplaceAll(m[1], "#", ""))
			if label == "" {
				label = defaultSection
			}
			section = label
			continue
		}

		if m := titleLine.FindStringSubmatch(line); m != nil {
			if b != nil {
				out = append(out, b.finalize(state))
			}
			b = &caseBuilder{tc: domain.TestCase{Section: section, Title: cleanField(m[1])}}
			state = stateFields
			continue
		}

		if m := scenarioLine.FindStringSubmatch(line); m != nil && b != nil {
			b.setScenario(cleanField(m[1]))
			continue
		}

		if stepsLine.MatchString(line) && b != nil {
			state = stateSteps
			b.steps = nil
			continue
		}

		if state == stateSteps {
			if m := expectedLine.FindStringSubmatch(line); m != nil {
				state = stateFields
				b.commitSteps()
				b.setExpected(cleanField(m[1]))
				continue
			}
			if m := stepItem.FindStringSubmatch(line); m != nil {
				if step := cleanField(m[1]); step != "" {
					b.steps = append(b.steps, step)
				}
				continue
			}
			// Unmarked step text, kept as-is.
			if step := cleanField(line); step != "" {
				b.steps = append(b.steps, step)
			}
			continue
		}

		if m := expectedLine.FindStringSubmatch(line); m != nil && b != nil {
			b.setExpected(cleanField(m[1]))
			continue
		}

		if m := statusLine.FindStringSubmatch(line); m != nil && b != nil {
			b.tc.Status = strings.TrimSpace(m[1])
			continue
		}

		if m := actualLine.FindStringSubmatch(line); m != nil && b != nil {
			b.setActual(cleanField(m[1]))
			continue
		}

		if m := priorityLine.FindStringSubmatch(line); m != nil && b != nil {
			b.setPriority(cleanField(m[1]))
			continue
		}

		if m := extrasLine.FindStringSubmatch(line); m != nil && b != nil {
			b.setExtra(cleanField(m[1]), cleanField(m[2]))
			continue
		}

		if b != nil {
			b.continueLastField(line)
		}
	}

	if b != nil {
		out = append(out, b.finalize(state))
	}
	return out
}

// caseBuilder accumulates one in-progress test case. The has* flags
// track which fields a marker has opened, including empty-valued ones,
// so continuation lines can find the right home.
type caseBuilder struct {
	tc          domain.TestCase
	steps       []string
	hasScenario bool
	hasExpected bool
	hasActual   bool
	hasPriority bool
}

func (b *caseBuilder) setScenario(v string) { b.tc.Scenario = v; b.hasScenario = true }
func (b *caseBuilder) setExpected(v string) { b.tc.ExpectedResult = v; b.hasExpected = true }
func (b *caseBuilder) setActual(v string)   { b.tc.ActualResult = v; b.hasActual = true }
func (b *caseBuilder) setPriority(v string) { b.tc.Priority = v; b.hasPriority = true }

func (b *caseBuilder) setExtra(key, v string) {
	if b.tc.Extras == nil {
		b.tc.Extras = make(map[string]string)
	}
	b.tc.Extras[key] = v
}

func (b *caseBuilder) commitSteps() {
	b.tc.Steps = b.steps
}

// continueLastField appends a marker-less line to the most recently
// opened field. The priority order is a documented convention carried
// over from how the fields close out a record, not a semantic rule.
func (b *caseBuilder) continueLastField(line string) {
	switch {
	case b.hasPriority:
		b.tc.Priority = appendField(b.tc.Priority, line)
	case b.hasActual:
		b.tc.ActualResult = appendField(b.tc.ActualResult, line)
	case b.hasExpected:
		b.tc.ExpectedResult = appendField(b.tc.ExpectedResult, line)
	case b.hasScenario:
		b.tc.Scenario = appendField(b.tc.Scenario, line)
	}
}

// appendField joins a continuation line onto a field with a single
// space, without introducing leading whitespace on empty fields.
func appendField(base, line string) string {
	if base == "" {
		return line
	}
	return base + " " + line
}

func (b *caseBuilder) finalize(state parseState) domain.TestCase {
	if state == stateSteps {
		b.commitSteps()
	}
	return b.tc
}
