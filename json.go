package tabular

import (
	"encoding/json"
	"io"
)

// tableDoc is the document shape shared by the JSON and YAML exports: the
// declared headers and the stored rows, verbatim. The skip-header flag is
// render configuration, not data, and is not part of the snapshot.
type tableDoc struct {
	Headers []headerDoc `json:"headers,omitempty" yaml:"headers,omitempty"`
	Rows    [][]string  `json:"rows,omitempty" yaml:"rows,omitempty"`
}

type headerDoc struct {
	Text      string `json:"text" yaml:"text"`
	Alignment string `json:"alignment" yaml:"alignment"`
}

func (t *Table) doc() tableDoc {
	var d tableDoc
	if len(t.cols) > 0 {
		d.Headers = make([]headerDoc, len(t.cols))
		for i, c := range t.cols {
			d.Headers[i] = headerDoc{Text: c.header.Text, Alignment: c.header.Alignment.String()}
		}
	}
	if len(t.rows) > 0 {
		d.Rows = make([][]string, len(t.rows))
		for i, row := range t.rows {
			d.Rows[i] = cellTexts(row)
		}
	}
	return d
}

// writeJSON emits the table model as one compact JSON document.
func (t *Table) writeJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(t.doc())
}
