package tabular

import (
	"fmt"
	"io"
	"text/template"
)

// RowData is the value a go-template format executes against, once per
// row. Cells holds the row's cell strings in order, extras included.
// Fields keys each cell by its column's header text, paired positionally:
// cells beyond the declared headers carry no key, and duplicate header
// texts collapse with the last cell winning. Without headers, Fields is
// empty.
type RowData struct {
	Cells  []string
	Fields map[string]string
}

// writeGoTemplate renders each row through the template on its own line.
// The template is parsed once; a parse failure reports before any output.
func (t *Table) writeGoTemplate(w io.Writer, tmplStr string) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, row := range t.rows {
		data := RowData{
			Cells:  cellTexts(row),
			Fields: make(map[string]string, len(t.cols)),
		}
		for i := range min(len(row), len(t.cols)) {
			data.Fields[t.cols[i].header.Text] = row[i].text
		}
		if err := tmpl.Execute(w, data); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
