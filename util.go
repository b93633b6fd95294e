package esparse

import (
	"fmt"
	"unicode"
)

// Printable returns a printable string for given rune
func Printable(r rune) string {
	if unicode.IsGraphic(r) {
		return fmt.Sprintf("%c", r)
	} else if r < 128 {
		return fmt.Sprintf("0x%02X", r)
	}
	return fmt.Sprintf("%U", r)
}

// IsLineTerminator returns true for the ECMAScript line terminators \n, \r, \u2028 and \u2029.
func IsLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// IsWhitespace returns true for the ECMAScript whitespace characters, excluding line terminators.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\u00A0', '\uFEFF':
		return true
	}
	return 0x80 <= r && unicode.Is(unicode.Zs, r)
}
