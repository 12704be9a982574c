package cursor

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAtBounds(t *testing.T) {
	c := New([]byte{0, 1, 2, 3, 4, 5})

	b, err := c.ReadAt(2, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3, 4, 5}, b)

	cases := []struct {
		name      string
		offset, n int
	}{
		{"past end", 3, 4},
		{"offset past end", 7, 0},
		{"negative offset", -1, 1},
		{"negative length", 0, -1},
		{"overflowing length", 1, int(^uint(0) >> 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.ReadAt(tc.offset, tc.n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))
			var rerr RangeError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, 6, rerr.Size)
		})
	}
	assert.Equal(t, 0, c.Offset(), "random access must not move the cursor")
}

func TestTakeAdvances(t *testing.T) {
	c := New([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09})

	v8, err := c.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), v8)

	v16, err := c.U16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0302), v16)

	v32, err := c.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x07060504), v32)
	assert.Equal(t, 7, c.Offset())
	assert.Equal(t, 2, c.Remaining())

	_, err = c.U32()
	require.Error(t, err)
	assert.Equal(t, 7, c.Offset(), "failed read must not move the cursor")

	b, err := c.Take(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x09}, b)
	assert.Equal(t, 0, c.Remaining())
}

func TestTakeRemainingClamps(t *testing.T) {
	c := New([]byte{1, 2, 3})
	require.NoError(t, c.Skip(1))
	assert.Equal(t, []byte{2, 3}, c.TakeRemaining(10))
	assert.Equal(t, []byte{}, c.TakeRemaining(10))
}

func TestGotoAndSkip(t *testing.T) {
	c := New(make([]byte, 4))
	require.NoError(t, c.Goto(4))
	assert.Error(t, c.Goto(5))
	assert.Error(t, c.Skip(1))
	require.NoError(t, c.Goto(1))
	require.NoError(t, c.Skip(3))
	assert.Equal(t, 4, c.Offset())
}

func TestReturnedBytesAreCopies(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	c := New(src)
	b, err := c.Peek(4)
	require.NoError(t, err)
	require.NoError(t, c.PutU8At(0, 0xAA))
	assert.Equal(t, byte(1), b[0])

	out := c.Bytes()
	out[1] = 0xBB
	v, err := c.U8At(1)
	require.NoError(t, err)
	assert.Equal(t, byte(2), v)
}

func TestFloat(t *testing.T) {
	c := Sized(0)
	c.PutF32(1.5)
	c.PutF32(-2)
	require.NoError(t, c.Goto(0))
	a, err := c.F32()
	require.NoError(t, err)
	b, err := c.F32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), a)
	assert.Equal(t, float32(-2), b)
}

func TestWritesGrow(t *testing.T) {
	c := Sized(0)
	c.PutU32(0x04030201)
	c.PutU16(0x0605)
	c.PutU8(0x07)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7}, c.Bytes())

	require.NoError(t, c.PutU16At(10, 0xBBAA))
	assert.Equal(t, 12, c.Len())
	assert.Equal(t, []byte{0, 0, 0, 0xAA, 0xBB}, c.Bytes()[7:])
	assert.Equal(t, 7, c.Offset())

	assert.Error(t, c.WriteAt(-1, []byte{0}))
	assert.Error(t, c.PutU32At(-4, 0))
}

func TestSequentialReads(t *testing.T) {
	c := New([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})
	u8, err := c.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), u8)
	u16, err := c.U16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0302), u16)
	u32, err := c.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x07060504), u32)
	assert.Equal(t, 7, c.Offset())

	_, err = c.U8()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 7, c.Offset())

	// Writing at the end grows a borrowed buffer.
	c.PutU16(0x0908)
	assert.Equal(t, 9, c.Len())
	assert.Equal(t, 9, c.Offset())
}

func TestSetSize(t *testing.T) {
	c := New([]byte{9, 9, 9, 9})
	require.NoError(t, c.Goto(4))
	c.SetSize(2)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.Offset())
	c.SetSize(5)
	assert.Equal(t, []byte{9, 9, 0, 0, 0}, c.Bytes())
}

func TestSwap8(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}
	c := New(data)

	a, err := c.U64At(6)
	require.NoError(t, err)
	b, err := c.U64At(20)
	require.NoError(t, err)

	require.NoError(t, c.Swap8(6, 20))
	got, _ := c.U64At(6)
	assert.Equal(t, b, got)
	got, _ = c.U64At(20)
	assert.Equal(t, a, got)

	require.NoError(t, c.Swap8(6, 20))
	got, _ = c.U64At(6)
	assert.Equal(t, a, got)

	assert.Error(t, c.Swap8(6, 93))
	got, _ = c.U64At(6)
	assert.Equal(t, a, got, "failed swap must leave the buffer untouched")
}

func TestXorAt(t *testing.T) {
	c := New([]byte{0x00, 0x0F, 0xF0, 0xFF})
	require.NoError(t, c.XorAt(1, 2, 0xFF))
	assert.Equal(t, []byte{0x00, 0xF0, 0x0F, 0xFF}, c.Bytes())
	assert.Error(t, c.XorAt(3, 2, 0xFF))
}

func TestReader(t *testing.T) {
	c := New([]byte{1, 2, 3})
	buf := make([]byte, 2)
	n, err := io.ReadFull(c, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = io.ReadFull(c, buf)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	_, err = c.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}
