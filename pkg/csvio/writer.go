// pkg/csvio/writer.go
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rawtoready/cleanse/pkg/dataset"
)

// Write encodes a dataset as CSV: header row first, then one record
// per row. Missing cells encode as empty fields, numbers in their
// minimal form.
func Write(w io.Writer, ds *dataset.Dataset) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ds.Names()); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	rows := ds.RowCount()
	record := make([]string, ds.ColumnCount())
	for i := 0; i < rows; i++ {
		for j, col := range ds.Columns {
			record[j] = col.Values[i].Text()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV output: %w", err)
	}
	return nil
}
