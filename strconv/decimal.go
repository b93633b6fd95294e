// Package strconv parses the numeric literal forms of ECMAScript source text.
package strconv

import (
	"strconv"
)

// ParseDecimal parses a decimal number of the form digits [. digits] without sign or exponent.
// It returns the value and the number of bytes consumed, which is zero when b does not start with a decimal.
func ParseDecimal(b []byte) (float64, int) {
	i := 0
	digits := 0
	for i < len(b) && '0' <= b[i] && b[i] <= '9' {
		i++
		digits++
	}
	if i < len(b) && b[i] == '.' {
		j := i + 1
		for j < len(b) && '0' <= b[j] && b[j] <= '9' {
			j++
			digits++
		}
		if digits != 0 {
			i = j
		}
	}
	if digits == 0 {
		return 0, 0
	}
	// only range errors can occur, for which f is +Inf
	f, _ := strconv.ParseFloat(string(b[:i]), 64)
	return f, i
}
