// pkg/csvio/reader.go
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"

	"github.com/rawtoready/cleanse/pkg/dataset"
)

// Read decodes CSV into a dataset. The first record is the header. Cell
// values are whitespace-trimmed; empty cells become the missing
// sentinel and cells that parse as numbers become numeric, so a column
// of "1", "2", "3.5" arrives as a numeric column rather than text.
func Read(r io.Reader) (*dataset.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading CSV header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	columns := make([]dataset.Column, len(header))
	for i, name := range header {
		columns[i] = dataset.Column{Name: strings.TrimSpace(name)}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}
		for i := range columns {
			columns[i].Values = append(columns[i].Values, parseCell(record[i]))
		}
	}

	return dataset.New(columns)
}

// parseCell infers the cell kind from its text form
func parseCell(raw string) dataset.Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return dataset.Missing()
	}
	if num, err := cast.ToFloat64E(trimmed); err == nil {
		return dataset.Number(num)
	}
	return dataset.String(trimmed)
}
