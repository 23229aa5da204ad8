package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/frherrer/caseweaver/internal/domain"
)

// WriteJSON writes the report envelope as indented JSON.
func WriteJSON(w io.Writer, report domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return domain.NewError("export", "", 0, "failed to encode report", err)
	}
	return nil
}

// WriteJSONFile writes the report envelope to path.
func WriteJSONFile(path string, report domain.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return domain.NewError("write", path, 0, "failed to create JSON file", err)
	}
	defer f.Close()

	if err := WriteJSON(f, report); err != nil {
		return domain.NewError("write", path, 0, "failed to write JSON file", err)
	}
	return nil
}
