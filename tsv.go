package tabular

import (
	"fmt"
	"io"
	"strings"
)

// writeTSV emits tab-joined lines: a header line unless suppressed or
// absent, then one line per row, cells verbatim.
func (t *Table) writeTSV(w io.Writer) error {
	if !t.skipHeader && len(t.cols) > 0 {
		if _, err := fmt.Fprintln(w, strings.Join(t.headerTexts(), "\t")); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, strings.Join(cellTexts(row), "\t")); err != nil {
			return err
		}
	}
	return nil
}
