package esparse

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Don't implement Bytes() to test for reading through io.Reader.
type ReaderMockup struct {
	r io.Reader
}

func (r *ReaderMockup) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}

////////////////////////////////////////////////////////////////

func TestInput(t *testing.T) {
	var s = `Lorem ipsum dolor sit amet, consectetur adipiscing elit.`
	var z = NewInput(bytes.NewBufferString(s))

	assert.Equal(t, 0, z.Pos(), "buffer must start at position 0")
	assert.Equal(t, byte('L'), z.Peek(0), "first character must be 'L'")
	assert.Equal(t, byte('o'), z.Peek(1), "second character must be 'o'")

	z.Move(1)
	assert.Equal(t, byte('o'), z.Peek(0), "must be 'o' at position 1")
	assert.Equal(t, byte('r'), z.Peek(1), "must be 'r' at position 1")
	z.Rewind(6)
	assert.Equal(t, byte('i'), z.Peek(0), "must be 'i' at position 6")
	assert.Equal(t, byte('p'), z.Peek(1), "must be 'p' at position 7")

	assert.Equal(t, []byte("Lorem "), z.Lexeme(), "buffered string must now read 'Lorem ' when at position 6")
	assert.Equal(t, []byte("Lorem "), z.Shift(), "shift must return the buffered string")
	assert.Equal(t, 0, z.Pos(), "after shifting position must be 0")
	assert.Equal(t, 6, z.Offset(), "offset must stay absolute after shifting")
	assert.Equal(t, byte('i'), z.Peek(0), "must be 'i' at position 0 after shifting")
	assert.Equal(t, byte('p'), z.Peek(1), "must be 'p' at position 1 after shifting")
	assert.Nil(t, z.Err(), "error must be nil at this point")

	z.Move(len(s) - len("Lorem ") - 1)
	assert.Nil(t, z.Err(), "error must be nil just before the end of the buffer")
	z.Move(1)
	assert.Equal(t, io.EOF, z.Err(), "error must be EOF when past the buffer")
	assert.Equal(t, byte(0), z.Peek(0), "must be NULL past the buffer")
	z.Move(-1)
	assert.Nil(t, z.Err(), "error must be nil just before the end of the buffer, even when it has been past the buffer")
	assert.Equal(t, []byte(s), z.Bytes())
}

func TestInputReader(t *testing.T) {
	z := NewInput(&ReaderMockup{bytes.NewBufferString("abc")})
	assert.Equal(t, 3, z.Len())
	assert.Equal(t, byte('c'), z.Peek(2))
	assert.Equal(t, byte(0), z.Peek(3))
}

func TestInputRune(t *testing.T) {
	z := NewInputString("aé\u2028€𝄞")
	r, n := z.PeekRune(0)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, n)
	r, n = z.PeekRune(1)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, n)
	r, n = z.PeekRune(3)
	assert.Equal(t, '\u2028', r)
	assert.Equal(t, 3, n)

	z.Move(1)
	z.MoveRune()
	z.MoveRune()
	z.MoveRune()
	r, n = z.PeekRune(0)
	assert.Equal(t, '𝄞', r)
	assert.Equal(t, 4, n)
	assert.True(t, z.Valid())
}

func TestInputRestore(t *testing.T) {
	b := make([]byte, 3, 4)
	copy(b, "abc")
	b = append(b[:3], 'x')[:3]

	z := NewInputBytes(b)
	assert.Equal(t, byte(0), z.Peek(3))
	z.Restore()
	assert.Equal(t, byte('x'), b[:4][3])
}

func TestInputEmpty(t *testing.T) {
	z := NewInputString("")
	assert.Equal(t, io.EOF, z.Err())
	assert.Equal(t, 0, z.Len())
	assert.Equal(t, 0, len(z.Bytes()))
}
