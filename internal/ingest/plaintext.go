package ingest

import (
	"bytes"
	"strings"
)

// PlaintextFlattener passes raw text through with minimal normalization.
// It acts as the fallback for unknown extensions.
type PlaintextFlattener struct{}

// NewPlaintextFlattener creates a new PlaintextFlattener.
func NewPlaintextFlattener() *PlaintextFlattener {
	return &PlaintextFlattener{}
}

// SupportedExtensions returns the file extensions this flattener handles.
func (f *PlaintextFlattener) SupportedExtensions() []string {
	return []string{".txt", ".text", ".log"}
}

// Flatten strips a UTF-8 BOM and normalizes line endings.
func (f *PlaintextFlattener) Flatten(content []byte) (string, error) {
	content = stripBOM(content)
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	return text, nil
}

func stripBOM(b []byte) []byte {
	bom := []byte{0xEF, 0xBB, 0xBF}
	if len(b) >= 3 && bytes.Equal(b[:3], bom) {
		return b[3:]
	}
	return b
}
