package tabular

import (
	"encoding/csv"
	"io"
)

// writeCSV emits one record per row via encoding/csv. The header record
// comes first unless suppressed or absent. Rows are written verbatim: a
// row keeps all its cells here, even ones beyond the declared columns.
func (t *Table) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if !t.skipHeader && len(t.cols) > 0 {
		if err := cw.Write(t.headerTexts()); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := cw.Write(cellTexts(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
