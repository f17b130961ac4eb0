package normalize

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// DecodeEscapes interprets backslash escapes embedded in s:
// \uXXXX (with surrogate pairs), \UXXXXXXXX, \xNN, \n, \r, \t, \\, \", \'.
// Unknown escapes such as \d are kept verbatim. If any escape is
// malformed (bad hex, lone surrogate, trailing backslash), s is returned
// unchanged. Text without a backslash is returned as is.
func DecodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	out, ok := decodeEscapes(s)
	if !ok {
		return s
	}

	return out
}

func decodeEscapes(s string) (string, bool) {
	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++

			continue
		}

		if i+1 >= len(s) {
			return "", false
		}

		switch esc := s[i+1]; esc {
		case 'u':
			r, n, ok := decodeUTF16Escape(s[i:])
			if !ok {
				return "", false
			}

			b.WriteRune(r)
			i += n
		case 'U':
			v, ok := parseHex(s[i+2:], 8)
			if !ok || !utf8.ValidRune(rune(v)) {
				return "", false
			}

			b.WriteRune(rune(v))
			i += 10
		case 'x':
			v, ok := parseHex(s[i+2:], 2)
			if !ok {
				return "", false
			}

			b.WriteRune(rune(v))
			i += 4
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case '\\', '"', '\'':
			b.WriteByte(esc)
			i += 2
		default:
			b.WriteByte('\\')
			i++
		}
	}

	return b.String(), true
}

// decodeUTF16Escape decodes a \uXXXX escape at the start of s, joining a
// following \uXXXX low surrogate when the first is a high surrogate.
// It returns the rune and the number of bytes consumed.
func decodeUTF16Escape(s string) (rune, int, bool) {
	v, ok := parseHex(s[2:], 4)
	if !ok {
		return 0, 0, false
	}

	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, 6, true
	}

	if len(s) < 12 || s[6] != '\\' || s[7] != 'u' {
		return 0, 0, false
	}

	lo, ok := parseHex(s[8:], 4)
	if !ok {
		return 0, 0, false
	}

	pair := utf16.DecodeRune(r, rune(lo))
	if pair == utf8.RuneError {
		return 0, 0, false
	}

	return pair, 12, true
}

func parseHex(s string, n int) (uint32, bool) {
	if len(s) < n {
		return 0, false
	}

	var v uint32

	for i := range n {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, false
		}

		v = v<<4 | uint32(d)
	}

	return v, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
