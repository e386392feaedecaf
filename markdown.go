package tabular

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders the table as a GitHub-flavored Markdown table. A
// GFM table is structurally headed, so the skip-header flag is ignored
// here and a headless table is an error. Column count is the header
// count: extra row cells are dropped, short rows fill with empty cells.
// Padding uses a floor of 3 (the alignment-marker minimum) and exists for
// source readability only; the rendered alignment comes from the
// separator markers.
func (t *Table) writeMarkdown(w io.Writer) error {
	if len(t.cols) == 0 {
		return fmt.Errorf("%w: format %q requires at least one column header", ErrNoHeader, Markdown)
	}

	widths := make([]int, len(t.cols))
	for i, c := range t.cols {
		widths[i] = max(c.width, 3)
	}

	header := make([]string, len(t.cols))
	for i, c := range t.cols {
		header[i] = alignCell(c.header.Text, widths[i]-c.headerWidth, c.header.Alignment)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | ")); err != nil {
		return err
	}

	sep := make([]string, len(t.cols))
	for i, c := range t.cols {
		switch c.header.Alignment {
		case AlignRight:
			sep[i] = strings.Repeat("-", widths[i]-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", widths[i]-2) + ":"
		default:
			sep[i] = strings.Repeat("-", widths[i])
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range t.rows {
		cells := make([]string, len(t.cols))
		for i := range t.cols {
			var text string
			var cw int
			if i < len(row) {
				text, cw = row[i].text, row[i].width
			}
			cells[i] = alignCell(text, widths[i]-cw, t.cols[i].header.Alignment)
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}
