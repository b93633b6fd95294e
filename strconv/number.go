package strconv

import (
	"errors"
	"math"
	"math/big"
	"strconv"
)

// ErrSyntax is returned for malformed numeric literals.
var ErrSyntax = errors.New("invalid numeric literal")

// StripSeparators returns b without numeric separators. It returns b itself when there are none.
func StripSeparators(b []byte) []byte {
	for i, c := range b {
		if c == '_' {
			b2 := make([]byte, i, len(b))
			copy(b2, b[:i])
			for _, c := range b[i+1:] {
				if c != '_' {
					b2 = append(b2, c)
				}
			}
			return b2
		}
	}
	return b
}

// BigInt returns the digits of a BigInt literal, keeping a radix prefix but dropping the n suffix and the separators.
func BigInt(b []byte) string {
	if 0 < len(b) && b[len(b)-1] == 'n' {
		b = b[:len(b)-1]
	}
	return string(StripSeparators(b))
}

// ParseInt parses the digits of an integer in base 2, 8, 10 or 16, rounding to the nearest float64 for values beyond 2^53.
func ParseInt(b []byte, base int) (float64, error) {
	if len(b) == 0 {
		return 0, ErrSyntax
	}
	var n uint64
	for i, c := range b {
		d, ok := digitValue(c)
		if !ok || base <= d {
			return 0, ErrSyntax
		}
		if (math.MaxUint64-uint64(d))/uint64(base) < n {
			return parseBigInt(b[i:], n, base)
		}
		n = n*uint64(base) + uint64(d)
	}
	if n <= 1<<53 {
		return float64(n), nil
	}
	f, _ := new(big.Float).SetUint64(n).Float64()
	return f, nil
}

func parseBigInt(rest []byte, n uint64, base int) (float64, error) {
	i := new(big.Int).SetUint64(n)
	b := big.NewInt(int64(base))
	for _, c := range rest {
		d, ok := digitValue(c)
		if !ok || base <= d {
			return 0, ErrSyntax
		}
		i.Mul(i, b)
		i.Add(i, big.NewInt(int64(d)))
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f, nil
}

func digitValue(c byte) (int, bool) {
	if '0' <= c && c <= '9' {
		return int(c - '0'), true
	} else if 'a' <= c && c <= 'z' {
		return int(c-'a') + 10, true
	} else if 'A' <= c && c <= 'Z' {
		return int(c-'A') + 10, true
	}
	return 0, false
}

// ParseNumber parses a complete NumericLiteral without a BigInt suffix: decimals with fraction and exponent,
// 0x 0o 0b prefixed integers, legacy octal integers such as 017 and non-octal decimals such as 019.
// Numeric separators are permitted.
func ParseNumber(b []byte) (float64, error) {
	b = StripSeparators(b)
	if len(b) == 0 {
		return 0, ErrSyntax
	}
	if 2 < len(b) && b[0] == '0' {
		switch b[1] {
		case 'x', 'X':
			return ParseInt(b[2:], 16)
		case 'o', 'O':
			return ParseInt(b[2:], 8)
		case 'b', 'B':
			return ParseInt(b[2:], 2)
		}
	}
	if 1 < len(b) && b[0] == '0' && '0' <= b[1] && b[1] <= '9' {
		if f, err := ParseInt(b[1:], 8); err == nil {
			return f, nil
		}
	}

	f, n := ParseDecimal(b)
	if n == 0 {
		return 0, ErrSyntax
	} else if n == len(b) {
		return f, nil
	} else if b[n] != 'e' && b[n] != 'E' {
		return 0, ErrSyntax
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f, nil
		}
		return 0, ErrSyntax
	}
	return f, nil
}
