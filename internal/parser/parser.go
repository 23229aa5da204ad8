// Package parser turns free-form, LLM-generated test case text into
// structured TestCase records. Two strategies are tried in order: a
// block strategy that splits on blank-line paragraph boundaries, and a
// line strategy that runs a field state machine over individual lines.
// Neither strategy ever fails on malformed text; absence of recognized
// markers degrades to smaller or empty output.
package parser

import (
	"github.com/frherrer/caseweaver/internal/domain"
)

// DefaultSection is used for records that carry no section of their own.
const DefaultSection = "General"

// Strategy is one way of extracting test cases from a chunk of text.
type Strategy interface {
	// CanParse is a cheap gate checked before Parse is attempted.
	CanParse(text string) bool
	// Parse extracts test cases, tagging them with defaultSection unless
	// the text overrides it. An empty result is not an error.
	Parse(text, defaultSection string) []domain.TestCase
}

// Parser runs an ordered list of strategies, stopping at the first one
// that produces records.
type Parser struct {
	strategies []Strategy
}

// New creates a Parser with the default strategy order: block mode
// first, line mode as fallback.
func New() *Parser {
	return &Parser{
		strategies: []Strategy{
			&BlockStrategy{MinBlockLength: MinBlockLength},
			&LineStrategy{},
		},
	}
}

// NewWithStrategies creates a Parser with a custom strategy order.
func NewWithStrategies(strategies ...Strategy) *Parser {
	return &Parser{strategies: strategies}
}

// Parse extracts test cases from text. defaultSection tags records that
// have no section of their own; when empty, DefaultSection is used.
// Returns an empty slice when no title marker is found anywhere.
func (p *Parser) Parse(text, defaultSection string) []domain.TestCase {
	if defaultSection == "" {
		defaultSection = DefaultSection
	}
	for _, s := range p.strategies {
		if !s.CanParse(text) {
			continue
		}
		if cases := s.Parse(text, defaultSection); len(cases) > 0 {
			return cases
		}
	}
	return nil
}
