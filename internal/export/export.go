// Package export serializes parsed test cases for downstream
// consumers: a CSV table for spreadsheet import and a JSON report
// envelope for persistence handoff.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frherrer/caseweaver/internal/domain"
)

// baseColumns is the fixed leading column order. Extra fields found on
// any record are appended after these, sorted by name.
var baseColumns = []string{
	"Section",
	"Title",
	"Scenario",
	"Steps",
	"Expected Result",
	"Status",
	"Actual Result",
	"Priority",
}

// NumberSteps joins steps into a numbered multi-line string. Numbering
// always restarts at 1 regardless of how the source numbered them.
func NumberSteps(steps []string) string {
	if len(steps) == 0 {
		return ""
	}
	lines := make([]string, len(steps))
	for i, step := range steps {
		lines[i] = fmt.Sprintf("%d. %s", i+1, step)
	}
	return strings.Join(lines, "\n")
}

// Columns returns the header row for the given records: the fixed base
// columns plus any extra field names present, sorted.
func Columns(cases []domain.TestCase) []string {
	extraSet := make(map[string]bool)
	for _, tc := range cases {
		for k := range tc.Extras {
			extraSet[k] = true
		}
	}
	extras := make([]string, 0, len(extraSet))
	for k := range extraSet {
		extras = append(extras, k)
	}
	sort.Strings(extras)
	return append(append([]string{}, baseColumns...), extras...)
}

// Row maps one record onto the given column order, filling missing
// fields with the empty string.
func Row(tc domain.TestCase, columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		switch col {
		case "Section":
			row[i] = tc.Section
		case "Title":
			row[i] = tc.Title
		case "Scenario":
			row[i] = tc.Scenario
		case "Steps":
			row[i] = NumberSteps(tc.Steps)
		case "Expected Result":
			row[i] = tc.ExpectedResult
		case "Status":
			row[i] = tc.Status
		case "Actual Result":
			row[i] = tc.ActualResult
		case "Priority":
			row[i] = tc.Priority
		default:
			row[i] = tc.Extras[col]
		}
	}
	return row
}

// placeholderCase stands in when nothing could be parsed, so the export
// still produces a readable artifact instead of an empty table.
func placeholderCase() domain.TestCase {
	return domain.TestCase{
		Section: "No test cases found",
		Title:   "No test cases could be parsed",
	}
}

// BuildReport wraps parsed records in the envelope downstream
// consumers expect. The status map is keyed by title and starts empty;
// it is filled by reviewers after test execution.
func BuildReport(cases []domain.TestCase, sourceType string, sourceFiles []string) domain.Report {
	return domain.Report{
		ID:           uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		SourceType:   sourceType,
		SourceFiles:  sourceFiles,
		TestData:     cases,
		StatusValues: make(map[string]string),
	}
}
