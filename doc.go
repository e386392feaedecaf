// Package tabular renders tabular data as fixed-width, alignment-aware
// monospaced text for terminal and log output, and re-expresses the same
// table in other formats.
//
// A table is built in two phases, and the phases are separate types, so an
// out-of-phase call does not compile. [New] returns a [Builder], the header
// phase: column headers are declared one at a time, and each seeds its
// column's tracked width with the header text's own visual width.
// [Builder.EndHeader] moves the table into the row phase, a [Table]; so
// does [Builder.Row], which freezes the headers and accepts the first row
// in one step. In row phase, headers are frozen, rows accumulate, and the
// table can render. There is no way back.
//
//	b := tabular.New()
//	if err := b.Header("Name"); err != nil {
//		return err
//	}
//	if err := b.HeaderAligned("Age", tabular.AlignRight); err != nil {
//		return err
//	}
//	t := b.EndHeader()
//	if err := t.Row(tabular.RowOf("Alice", "20")); err != nil {
//		return err
//	}
//	fmt.Print(t)
//
// # Width Measurement
//
// Each column tracks the maximum visual width seen so far across its
// header and every row, and rendering pads to that width with a floor of
// 8. Visual width is terminal columns: escape sequences (terminal color
// codes) count zero, East Asian wide glyphs count two, combining marks
// count zero, typical Latin text counts one per character. Escape
// sequences are only invisible to measurement — rendered output carries
// them through verbatim, so colored cells line up with plain ones.
//
// [Width] exposes the measurement for callers laying out their own text
// next to a table.
//
// # Alignment
//
// A header pads per its declared [Alignment]; the default is [AlignLeft].
// Data cells always pad left, regardless of their column's alignment.
//
// # Export Formats
//
// A row-phase table exports through [Table.Export] and [Table.Marshal]
// with a [Format] constant:
//
//   - [Text] — the fixed-width renderer, same as [Table.Write]
//   - [Markdown] — GitHub-flavored Markdown table with alignment markers
//   - [CSV], [TSV] — delimited records, cells verbatim
//   - [JSON], [YAML] — one document holding headers and rows
//   - [JSONL] — one JSON value per row
//   - [HTML] — a <table> element with text-align styles
//
// Use [GoTemplate] to create a parameterized format that renders each row
// through a Go [text/template], executed against [RowData]:
//
//	t.Export(os.Stdout, tabular.GoTemplate("{{.Fields.Name}} is {{.Fields.Age}}"))
//
// Use [ParseFormat] to convert a CLI flag string into a [Format]. It
// recognizes all static formats and "go-template=<tmpl>" strings:
//
//	f, err := tabular.ParseFormat(flagValue)
//	t.Export(os.Stdout, f)
//
// # Streaming Rows
//
// [Table.RowIter] appends rows from an [iter.Seq]; [Table.RowChan] drains
// a channel. Either way each row lands as one [Table.Row] operation, so
// widths update the same as with direct calls.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMalformedEscape] — input whose escape sequences cannot be parsed;
//     the only error the builder operations return, and a failed operation
//     leaves the table unchanged
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrNoHeader] — Markdown export of a headless table
//   - [ErrInvalidTemplate] — invalid go-template syntax
package tabular
