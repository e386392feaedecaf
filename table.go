package tabular

import (
	"io"
	"strings"
)

// column is one declared column: its header, the header text's own visual
// width, and the running maximum width observed across the header and
// every row added so far. Keeping all three in one record makes the
// one-width-slot-per-header invariant structural.
type column struct {
	header      Header
	headerWidth int
	width       int
}

// cell is one stored row cell with the visual width measured at insertion,
// so rendering never re-measures. Extra cells beyond the declared columns
// are stored unmeasured; the text renderer never reaches them.
type cell struct {
	text  string
	width int
}

// Builder is the header-phase view of a table under construction: headers
// may be declared, rows may not. [Builder.EndHeader] and [Builder.Row]
// move the table into row phase, after which headers are frozen; there is
// no way back, and only the row-phase [Table] can render.
//
// A table is built by exactly one owner: construct fully, then render.
// Using a Builder after it has transitioned is unsupported.
type Builder struct {
	cols       []column
	skipHeader bool
}

// New returns an empty table in header phase.
func New() *Builder {
	return &Builder{}
}

// Header appends a left-aligned column header and seeds the new column's
// tracked width to the visual width of text. Any text is a valid header.
//
// Header fails only with [ErrMalformedEscape]; on failure the builder is
// unchanged.
func (b *Builder) Header(text string) error {
	return b.HeaderAligned(text, AlignLeft)
}

// HeaderAligned appends a column header with an explicit alignment. The
// alignment applies to the header line only; data cells are always
// left-aligned.
func (b *Builder) HeaderAligned(text string, align Alignment) error {
	w, err := Width(text)
	if err != nil {
		return err
	}
	b.cols = append(b.cols, column{
		header:      Header{Text: text, Alignment: align},
		headerWidth: w,
		width:       w,
	})
	return nil
}

// SkipHeader suppresses the header line in the text renderer and the
// header record in the CSV and TSV exports. It returns the builder so it
// chains from New.
func (b *Builder) SkipHeader() *Builder {
	b.skipHeader = true
	return b
}

// EndHeader freezes the header set and returns the row-phase view. The
// row list starts empty; column widths carry over unchanged.
func (b *Builder) EndHeader() *Table {
	return &Table{cols: b.cols, skipHeader: b.skipHeader}
}

// Row freezes the header set and adds r as the first row in one atomic
// step: the returned table's row list is initialized to contain exactly
// this row. The result is indistinguishable from EndHeader followed by
// [Table.Row].
//
// Row fails only with [ErrMalformedEscape]; on failure the builder is
// unchanged and no table is returned.
func (b *Builder) Row(r Row) (*Table, error) {
	t := b.EndHeader()
	cells, err := t.measure(r)
	if err != nil {
		return nil, err
	}
	t.grow(cells)
	t.rows = [][]cell{cells}
	return t, nil
}

// Table is the row-phase view: headers are frozen, rows accumulate, and
// the table can render itself. A table with zero rows renders as just its
// header line.
type Table struct {
	cols       []column
	rows       [][]cell
	skipHeader bool
}

// Row appends r and applies the monotonic width update: each paired
// column's tracked width becomes the maximum of itself and the cell's
// visual width, so tracked widths only ever grow. Cells pair with columns
// positionally and the pairing stops at the shorter side — extra cells
// are kept but never rendered as text, and a short row leaves its
// unpaired columns untouched.
//
// Row fails only with [ErrMalformedEscape]; on failure the table is
// unchanged.
func (t *Table) Row(r Row) error {
	cells, err := t.measure(r)
	if err != nil {
		return err
	}
	t.grow(cells)
	t.rows = append(t.rows, cells)
	return nil
}

// measure copies r's cells and measures those that pair with a declared
// column. It does not mutate the table, so a malformed cell anywhere in
// the row leaves no trace.
func (t *Table) measure(r Row) ([]cell, error) {
	cells := make([]cell, len(r.cells))
	for i, text := range r.cells {
		if i >= len(t.cols) {
			cells[i] = cell{text: text}
			continue
		}
		w, err := Width(text)
		if err != nil {
			return nil, err
		}
		cells[i] = cell{text: text, width: w}
	}
	return cells, nil
}

// grow applies the monotonic-max rule for one measured row.
func (t *Table) grow(cells []cell) {
	for i := range min(len(cells), len(t.cols)) {
		if cells[i].width > t.cols[i].width {
			t.cols[i].width = cells[i].width
		}
	}
}

// Headers returns a copy of the declared column headers.
func (t *Table) Headers() []Header {
	out := make([]Header, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.header
	}
	return out
}

// ColumnWidths returns a copy of the tracked column widths: the running
// maximum visual width seen per column. The render-time floor of 8 is not
// applied here.
func (t *Table) ColumnWidths() []int {
	out := make([]int, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.width
	}
	return out
}

// Write renders the table to w as fixed-width text: one header line unless
// suppressed, then one line per row in insertion order. Every field is
// padded to the larger of its column's tracked width and 8, and every
// field, including the last on a line, is followed by a single space.
// Headers pad per their declared alignment; data cells always pad left.
func (t *Table) Write(w io.Writer) error {
	if !t.skipHeader {
		var sb strings.Builder
		for _, c := range t.cols {
			target := max(c.width, minColumnWidth)
			sb.WriteString(alignCell(c.header.Text, target-c.headerWidth, c.header.Alignment))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		var sb strings.Builder
		for i := range min(len(row), len(t.cols)) {
			target := max(t.cols[i].width, minColumnWidth)
			sb.WriteString(alignCell(row[i].text, target-row[i].width, AlignLeft))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// String renders the table as text. Stored content was validated when it
// was added, so String is total.
func (t *Table) String() string {
	var sb strings.Builder
	_ = t.Write(&sb) // strings.Builder writes cannot fail
	return sb.String()
}

// headerTexts returns the declared header labels in order.
func (t *Table) headerTexts() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.header.Text
	}
	return out
}

// cellTexts returns a row's cell strings verbatim, extras included.
func cellTexts(row []cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.text
	}
	return out
}

// alignCell pads s with pad spaces per the alignment: left puts them all
// after the text, right all before, center splits with the smaller half
// first. Non-positive pad returns s unchanged.
func alignCell(s string, pad int, align Alignment) string {
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
