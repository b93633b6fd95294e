package strconv

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		s   string
		num float64
	}{
		{"0", 0},
		{"5", 5},
		{"1_000_000", 1000000},
		{"1.5e3", 1500},
		{"1E-2", 0.01},
		{"5e+1_0", 5e10},
		{".5", 0.5},
		{"0x1F", 31},
		{"0XfF", 255},
		{"0o17", 15},
		{"0b1010", 10},
		{"0b1111_0000", 240},
		{"017", 15},
		{"00", 0},
		{"019", 19},
		{"08.5", 8.5},
		{"0xFFFFFFFFFFFFFFFFF", 295147905179352825856},
		{"0x20000000000001", 9007199254740992},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			num, err := ParseNumber([]byte(tt.s))
			test.Error(t, err)
			test.T(t, num, tt.num)
		})
	}
}

func TestParseNumberError(t *testing.T) {
	tests := []string{
		"",
		"0x",
		"0b102",
		"0o8",
		"1e",
		"abc",
		"1.2.3",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := ParseNumber([]byte(s))
			test.T(t, err, ErrSyntax)
		})
	}
}

func TestParseInt(t *testing.T) {
	num, err := ParseInt([]byte("7fffffffffffffff"), 16)
	test.Error(t, err)
	test.Float(t, num, 9223372036854775807)

	num, err = ParseInt([]byte("123456789012345678901234567890"), 10)
	test.Error(t, err)
	test.Float(t, num, 1.2345678901234568e29)
}

func TestBigInt(t *testing.T) {
	test.String(t, BigInt([]byte("1_000n")), "1000")
	test.String(t, BigInt([]byte("0x1Fn")), "0x1F")
	test.String(t, BigInt([]byte("0n")), "0")
}

func TestStripSeparators(t *testing.T) {
	b := []byte("1234")
	test.T(t, &StripSeparators(b)[0], &b[0], "no copy without separators")
	test.String(t, string(StripSeparators([]byte("1_2_3"))), "123")
}

func FuzzParseNumber(f *testing.F) {
	f.Add("0x1F")
	f.Add("017")
	f.Add("1.5e3")
	f.Fuzz(func(t *testing.T, s string) {
		ParseNumber([]byte(s))
	})
}
