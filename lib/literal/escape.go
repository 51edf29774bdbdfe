package literal

import (
	"strings"
	"unicode/utf8"
)

// escapeTable maps the characters that have a short escape sequence to their mnemonic
var escapeTable = map[rune]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

const hexDigits = "0123456789abcdef"

// Escape wraps text in double quotes and escapes it according to the string value grammar.
// Characters of the escape table get their two character sequence, all other control
// characters below 0x20 become \u00xx. Everything else, non-ASCII text included, is copied.
func Escape(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 2)
	writeEscaped(&sb, text)
	return sb.String()
}

// writeEscaped writes the quoted and escaped form of text to sb
func writeEscaped(sb *strings.Builder, text string) {
	sb.WriteByte('"')
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		// invalid utf-8 is passed through byte by byte
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(text[i])
			i++
			continue
		}

		if mnemonic, ok := escapeTable[r]; ok {
			sb.WriteByte('\\')
			sb.WriteByte(mnemonic)
		} else if r < 0x20 {
			sb.WriteString(`\u00`)
			sb.WriteByte(hexDigits[r>>4])
			sb.WriteByte(hexDigits[r&0xf])
		} else {
			sb.WriteString(text[i : i+size])
		}
		i += size
	}
	sb.WriteByte('"')
}
