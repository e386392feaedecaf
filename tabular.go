package tabular

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrMalformedEscape reports input whose terminal escape sequences cannot
	// be parsed: a trailing ESC, an unterminated CSI or OSC sequence, or a
	// control byte inside one. It is the only error the builder operations
	// return; a failed operation leaves the table unchanged.
	ErrMalformedEscape = errors.New("malformed escape sequence")

	// ErrUnsupportedFormat reports an unknown export format string.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNoHeader reports an export format that cannot render a headless
	// table (Markdown tables are structurally headed).
	ErrNoHeader = errors.New("header required")

	// ErrInvalidTemplate reports invalid go-template syntax.
	ErrInvalidTemplate = errors.New("invalid template")
)

// Format represents an export format for a finalized table.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	HTML     Format = "html"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Text, Markdown, CSV, TSV, JSON, JSONL, YAML, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each table row through a Go
// text/template. See [Table.Export] for the data each row presents.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls how header text is padded within its column.
// Data cells are always left-aligned regardless of the column's alignment;
// see [Table.Row].
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the lowercase alignment name. Out-of-range values report
// as "left", matching how the renderer treats them.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Header describes one column: its label and the alignment applied to the
// label on the header line. The zero Alignment is AlignLeft, so a Header
// built from plain text alone is left-aligned.
type Header struct {
	Text      string
	Alignment Alignment
}

// minColumnWidth is the narrowest a rendered column can be. The floor is
// applied at render time; tracked column widths stay unfloored.
const minColumnWidth = 8

// Export renders the table to w in the given format. [Text] routes to the
// fixed-width renderer; every other format re-expresses the same headers
// and rows. Cell text is emitted verbatim in all formats: escape sequences
// are invisible to width measurement but preserved in output.
func (t *Table) Export(w io.Writer, f Format) error {
	switch f {
	case Text:
		return t.Write(w)
	case Markdown:
		return t.writeMarkdown(w)
	case CSV:
		return t.writeCSV(w)
	case TSV:
		return t.writeTSV(w)
	case JSON:
		return t.writeJSON(w)
	case JSONL:
		return t.writeJSONL(w)
	case YAML:
		return t.writeYAML(w)
	case HTML:
		return t.writeHTML(w)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return t.writeGoTemplate(w, tmpl)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders the table in the given format and returns the bytes.
func (t *Table) Marshal(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Export(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
