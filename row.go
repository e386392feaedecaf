package tabular

// Row is an ordered sequence of cell strings for one table row. Cells are
// appended left to right and order is preserved. Construction never fails
// and never measures width; a Row may carry more or fewer cells than the
// table declares columns (see [Table.Row] for how mismatches render).
//
// Rows are meant to be built in a single chain:
//
//	tabular.NewRow().Cell("Alice").Cell("20")
//
// Forking a Row value mid-chain is unsupported.
type Row struct {
	cells []string
}

// NewRow returns an empty Row.
func NewRow() Row {
	return Row{}
}

// RowOf returns a Row holding the given cells, in order.
func RowOf(cells ...string) Row {
	return Row{cells: cells}
}

// Cell appends one cell and returns the extended Row.
func (r Row) Cell(text string) Row {
	r.cells = append(r.cells, text)
	return r
}

// Cells appends cells left to right and returns the extended Row.
func (r Row) Cells(texts ...string) Row {
	r.cells = append(r.cells, texts...)
	return r
}
