package splitter

import (
	"regexp"
	"strings"

	"github.com/frherrer/caseweaver/internal/domain"
)

// sectionMarker matches a TEST TYPE declaration and captures the label up
// to the end of the line. The keyword is stable; the label is free text.
var sectionMarker = regexp.MustCompile(`TEST TYPE:[ \t]*([^\n]+)`)

// Split scans text for TEST TYPE markers and returns the content between
// each marker and the next (or end of text), keyed by the trimmed label.
// When no markers exist the result is empty and the caller should treat
// the whole text as a single unnamed blob.
func Split(text string) *domain.Sections {
	sections := &domain.Sections{}

	matches := sectionMarker.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return sections
	}

	for i, m := range matches {
		name := strings.TrimSpace(text[m[2]:m[3]])
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections.Add(name, strings.TrimSpace(text[start:end]))
	}

	return sections
}
