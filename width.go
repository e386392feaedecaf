package tabular

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const esc = 0x1b

// Width returns the visual width of s in terminal columns. Escape sequences
// contribute nothing; the remaining text is measured per Unicode East Asian
// width rules, so wide glyphs count 2 columns, combining marks count 0, and
// typical Latin text counts 1 per character.
//
// Width fails with [ErrMalformedEscape] when s contains an escape sequence
// it cannot parse. It is a pure function of its input.
func Width(s string) (int, error) {
	stripped, err := stripEscapes(s)
	if err != nil {
		return 0, err
	}
	return runewidth.StringWidth(stripped), nil
}

// stripEscapes removes terminal escape sequences from s, leaving only
// printable text. Sequence bytes are all ASCII, so the scan is byte-wise;
// multi-byte UTF-8 runes pass through untouched.
func stripEscapes(s string) (string, error) {
	i := strings.IndexByte(s, esc)
	if i < 0 {
		return s, nil
	}
	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(s[:i])
	for i < len(s) {
		if s[i] != esc {
			sb.WriteByte(s[i])
			i++
			continue
		}
		n, err := escapeLen(s[i:])
		if err != nil {
			return "", fmt.Errorf("%w at byte %d", err, i)
		}
		i += n
	}
	return sb.String(), nil
}

// escapeLen reports the byte length of the escape sequence at the start of
// s, which begins with ESC.
func escapeLen(s string) (int, error) {
	if len(s) == 1 {
		return 0, fmt.Errorf("%w: trailing ESC", ErrMalformedEscape)
	}
	switch s[1] {
	case '[':
		return csiLen(s)
	case ']':
		return oscLen(s)
	default:
		if s[1] < 0x20 || s[1] > 0x7e {
			return 0, fmt.Errorf("%w: ESC followed by %#x", ErrMalformedEscape, s[1])
		}
		// Two-byte escape (e.g. ESC c, ESC 7).
		return 2, nil
	}
}

// csiLen parses a control sequence: ESC [ then parameter bytes 0x30-0x3f,
// then intermediate bytes 0x20-0x2f, then one final byte 0x40-0x7e.
func csiLen(s string) (int, error) {
	i := 2
	for i < len(s) && s[i] >= 0x30 && s[i] <= 0x3f {
		i++
	}
	for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2f {
		i++
	}
	if i == len(s) {
		return 0, fmt.Errorf("%w: unterminated CSI sequence", ErrMalformedEscape)
	}
	if s[i] < 0x40 || s[i] > 0x7e {
		return 0, fmt.Errorf("%w: CSI sequence contains %#x", ErrMalformedEscape, s[i])
	}
	return i + 1, nil
}

// oscLen parses an operating system command: ESC ] then a payload running
// to BEL or ST (ESC \).
func oscLen(s string) (int, error) {
	for i := 2; i < len(s); i++ {
		switch s[i] {
		case 0x07:
			return i + 1, nil
		case esc:
			if i+1 < len(s) && s[i+1] == '\\' {
				return i + 2, nil
			}
			return 0, fmt.Errorf("%w: unterminated OSC sequence", ErrMalformedEscape)
		}
	}
	return 0, fmt.Errorf("%w: unterminated OSC sequence", ErrMalformedEscape)
}
