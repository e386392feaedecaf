package tabular

import "iter"

// RowIter appends every row produced by seq, in order. Each row is applied
// as one [Table.Row] operation: on the first malformed row RowIter stops
// and returns the error, and the rows appended before it remain. The
// monotonic width update runs per row, so a table fed from an iterator is
// indistinguishable from one fed by repeated Row calls.
func (t *Table) RowIter(seq iter.Seq[Row]) error {
	for r := range seq {
		if err := t.Row(r); err != nil {
			return err
		}
	}
	return nil
}

// RowChan appends rows received from ch until it closes.
// It is a thin wrapper around [Table.RowIter]. The table itself is not
// safe for concurrent use: the producer may fill ch from another
// goroutine, but only the caller may touch the table.
func (t *Table) RowChan(ch <-chan Row) error {
	return t.RowIter(chanToIter(ch))
}

func chanToIter(ch <-chan Row) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for r := range ch {
			if !yield(r) {
				return
			}
		}
	}
}
