package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Table is an ordered grid of cells. The column slice fixes both the header
// line and the cell order of every row, so renderers never reorder output.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t Table) validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table needs at least one column")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
	}
	return nil
}

// RenderCSV encodes the table as CSV, header line first.
func RenderCSV(t Table) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}
