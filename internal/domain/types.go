package domain

import "time"

// TestCase is a single structured test case extracted from raw text.
// Every field except Title may legitimately be empty; the parser only
// emits a TestCase after seeing a title marker in the source.
type TestCase struct {
	Section        string            `json:"section"`
	Title          string            `json:"title"`
	Scenario       string            `json:"scenario,omitempty"`
	Steps          []string          `json:"steps,omitempty"`
	ExpectedResult string            `json:"expected_result,omitempty"`
	ActualResult   string            `json:"actual_result,omitempty"`
	Status         string            `json:"status,omitempty"`
	Priority       string            `json:"priority,omitempty"`
	Extras         map[string]string `json:"extras,omitempty"` // Preconditions, Test Data, ...
}

// Report is the envelope handed to downstream consumers (persistence,
// spreadsheet export, UI). StatusValues is keyed by test case title and
// starts empty; it is filled by user interaction later, never by the parser.
type Report struct {
	ID           string            `json:"id"`
	GeneratedAt  time.Time         `json:"generated_at"`
	SourceType   string            `json:"source_type"`
	SourceFiles  []string          `json:"source_files,omitempty"`
	TestData     []TestCase        `json:"test_data"`
	StatusValues map[string]string `json:"status_values"`
}

// Sections holds the output of section splitting: content keyed by the
// trimmed TEST TYPE label, plus label order as first seen in the source.
// A duplicate label overwrites the content but keeps its first position.
type Sections struct {
	Order   []string
	Content map[string]string
}

// Empty reports whether no section markers were found.
func (s *Sections) Empty() bool {
	return s == nil || len(s.Order) == 0
}

// Add records a section, preserving first-seen order for duplicate labels.
func (s *Sections) Add(name, content string) {
	if s.Content == nil {
		s.Content = make(map[string]string)
	}
	if _, seen := s.Content[name]; !seen {
		s.Order = append(s.Order, name)
	}
	s.Content[name] = content
}
