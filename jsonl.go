package tabular

import (
	"encoding/json"
	"io"
)

// writeJSONL emits one JSON value per row. With headers, each row becomes
// an object keying header text to cell, paired positionally: extra cells
// have no key and are dropped, and duplicate header texts collapse with
// the last one winning. Without headers, each row is an array of its
// cells.
func (t *Table) writeJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, row := range t.rows {
		var v any
		if len(t.cols) > 0 {
			obj := make(map[string]string, len(t.cols))
			for i := range min(len(row), len(t.cols)) {
				obj[t.cols[i].header.Text] = row[i].text
			}
			v = obj
		} else {
			v = cellTexts(row)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
