package tabular

import (
	"fmt"
	"html"
	"io"
)

// writeHTML renders the table as an HTML <table>. The <thead> is omitted
// under the skip-header flag or with no headers. Header alignment carries
// over as text-align styles on both header and data cells; cells beyond
// the declared columns get none. All text is escaped.
func (t *Table) writeHTML(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if !t.skipHeader && len(t.cols) > 0 {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, c := range t.cols {
			if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(c.header.Alignment), html.EscapeString(c.header.Text)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, c := range row {
			style := ""
			if i < len(t.cols) {
				style = alignStyle(t.cols[i].header.Alignment)
			}
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", style, html.EscapeString(c.text)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

// alignStyle returns the inline text-align style for an alignment; left
// is the browser default and gets none.
func alignStyle(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
