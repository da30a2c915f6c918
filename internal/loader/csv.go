package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/preyasha/autofill/internal/docindex"
)

// CSVLoader handles CSV files. The first row is treated as headers; each
// data row becomes one "Header: value" fragment so labeled values stay
// searchable, numbered by row.
type CSVLoader struct{}

func (p *CSVLoader) Load(r io.Reader, filename string) ([]docindex.Fragment, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	headers := records[0]
	var fragments []docindex.Fragment
	for i, row := range records[1:] {
		var text strings.Builder
		for j, cell := range row {
			if j > 0 {
				text.WriteString(", ")
			}
			if j < len(headers) {
				text.WriteString(headers[j] + ": " + cell)
			} else {
				text.WriteString(cell)
			}
		}
		fragments = append(fragments, docindex.Fragment{
			Text:     text.String(),
			Position: docindex.ParagraphAt(i + 1),
		})
	}
	return fragments, nil
}
