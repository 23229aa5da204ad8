package domain

import "fmt"

// CaseweaverError is the base error type with pipeline context.
type CaseweaverError struct {
	Phase   string // "config", "scan", "ingest", "parse", "export", "template", "write"
	File    string
	Line    int
	Message string
	Cause   error
}

func (e *CaseweaverError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	if e.Line > 0 {
		s += fmt.Sprintf(":%d", e.Line)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

func (e *CaseweaverError) Unwrap() error {
	return e.Cause
}

// NewError creates a new CaseweaverError.
func NewError(phase, file string, line int, message string, cause error) *CaseweaverError {
	return &CaseweaverError{
		Phase:   phase,
		File:    file,
		Line:    line,
		Message: message,
		Cause:   cause,
	}
}
