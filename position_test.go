package esparse

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestPosition(t *testing.T) {
	var newlineTests = []struct {
		offset int
		buf    string
		line   int
		col    int
	}{
		{0, "x", 1, 1},
		{1, "xx", 1, 2},
		{2, "x\nx", 2, 1},
		{2, "\n\nx", 3, 1},
		{3, "\nxxx", 2, 3},
		{2, "\r\nx", 2, 1},
		{1, "\rx", 2, 1},
		{4, "x\u2028x", 2, 1},
		{4, "x\u2029x", 2, 1},
		{4, "ééx", 1, 3}, // runes, not bytes

		// edge cases
		{0, "", 1, 1},
		{0, "\n", 1, 1},
		{1, "\r\n", 1, 2},
		{5, "x", 1, 2}, // stop at the end
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			r := bytes.NewBufferString(tt.buf)
			line, col, _ := Position(r, tt.offset)
			test.T(t, line, tt.line, "line")
			test.T(t, col, tt.col, "column")
		})
	}
}

func TestPositionContext(t *testing.T) {
	var newlineTests = []struct {
		offset  int
		buf     string
		context string
	}{
		{10, "01234567890123456789012345678901234567890123456789012345678901234567890123456789", "012345678901234567890123456789012345678901234567890123456..."}, // 80 characters -> 60 characters
		{40, "01234567890123456789012345678901234567890123456789012345678901234567890123456789", "...01234567890123456789012345678901234567890..."},
		{60, "012345678901234567890123456789012345678901234567890123456789012345678901234567890", "...78901234567890123456789012345678901234567890"},
		{60, "012345678901234567890123456789012345678901234567890123456789012345678901234567890123", "...01234567890123456789012345678901234567890123"},
		{60, "0123456789012345678901234567890123456789012345678901234567890123456789012345678901234", "...01234567890123456789012345678901234567890..."},
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			_, _, context := Position(bytes.NewBufferString(tt.buf), tt.offset)
			i := bytes.IndexByte([]byte(context), '\n')
			pointer := context[i+1:]
			context = context[7:i]
			test.T(t, context, tt.context)

			// check if @ is at the offset
			j := bytes.IndexByte([]byte(pointer), '^')
			test.T(t, j-6 < len(context), true, "pointer within context")
		})
	}
}
