package export

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/frherrer/caseweaver/internal/domain"
)

// WriteCSV writes records as a CSV table with the fixed column order.
// An empty record set produces a single placeholder row.
func WriteCSV(w io.Writer, cases []domain.TestCase) error {
	if len(cases) == 0 {
		cases = []domain.TestCase{placeholderCase()}
	}

	columns := Columns(cases)
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return domain.NewError("export", "", 0, "failed to write CSV header", err)
	}
	for _, tc := range cases {
		if err := cw.Write(Row(tc, columns)); err != nil {
			return domain.NewError("export", "", 0, "failed to write CSV row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return domain.NewError("export", "", 0, "failed to flush CSV", err)
	}
	return nil
}

// WriteCSVFile writes the CSV table to path.
func WriteCSVFile(path string, cases []domain.TestCase) error {
	f, err := os.Create(path)
	if err != nil {
		return domain.NewError("write", path, 0, "failed to create CSV file", err)
	}
	defer f.Close()

	if err := WriteCSV(f, cases); err != nil {
		return domain.NewError("write", path, 0, "failed to write CSV file", err)
	}
	return nil
}
