// Package cursor implements a position-tracking view over a byte buffer.
//
// A Cursor provides bounds-checked reads and writes of little-endian
// fixed-width values and byte ranges. Every codec in this module is built on
// it. Reads that fall outside the buffer fail with a RangeError rather than
// panicking; writes grow the buffer as needed.
//
// Methods suffixed with At operate on an explicit offset and leave the
// position unchanged. The remaining methods operate at the current position
// and advance it.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrOutOfRange is the cause of every RangeError.
var ErrOutOfRange = errors.New("out of range")

// RangeError indicates that an operation addressed bytes outside of the
// buffer.
type RangeError struct {
	// Offset is the first byte of the requested range.
	Offset int
	// Length is the size of the requested range.
	Length int
	// Size is the length of the buffer at the time of the request.
	Size int
}

func (err RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d) exceeds buffer length %d", err.Offset, err.Offset+err.Length, err.Size)
}

func (err RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Cursor is a view over a byte buffer with a current offset.
type Cursor struct {
	buf   []byte
	off   int
	owned bool
}

// New returns a Cursor that reads from b. The buffer is borrowed: writes
// through the Cursor modify b until the buffer has to grow.
func New(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Sized returns a Cursor over a zero-filled buffer of length n.
func Sized(n int) *Cursor {
	if n < 0 {
		n = 0
	}
	return &Cursor{buf: make([]byte, n), owned: true}
}

// Len returns the length of the buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Offset returns the current position.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of bytes between the current position and
// the end of the buffer.
func (c *Cursor) Remaining() int {
	if c.off >= len(c.buf) {
		return 0
	}
	return len(c.buf) - c.off
}

// check verifies that [offset, offset+n) lies within the buffer.
func (c *Cursor) check(offset, n int) error {
	if offset < 0 || n < 0 || offset > len(c.buf) || n > len(c.buf)-offset {
		return RangeError{Offset: offset, Length: n, Size: len(c.buf)}
	}
	return nil
}

// Goto moves the position to offset. The offset may equal the length of the
// buffer, but not exceed it.
func (c *Cursor) Goto(offset int) error {
	if err := c.check(offset, 0); err != nil {
		return err
	}
	c.off = offset
	return nil
}

// Skip advances the position by n bytes.
func (c *Cursor) Skip(n int) error {
	if err := c.check(c.off, n); err != nil {
		return err
	}
	c.off += n
	return nil
}

// ReadAt returns a copy of the n bytes at offset.
func (c *Cursor) ReadAt(offset, n int) ([]byte, error) {
	if err := c.check(offset, n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	copy(b, c.buf[offset:offset+n])
	return b, nil
}

// Peek returns a copy of the next n bytes without advancing.
func (c *Cursor) Peek(n int) ([]byte, error) {
	return c.ReadAt(c.off, n)
}

// Take returns a copy of the next n bytes and advances past them.
func (c *Cursor) Take(n int) ([]byte, error) {
	b, err := c.ReadAt(c.off, n)
	if err != nil {
		return nil, err
	}
	c.off += n
	return b, nil
}

// TakeRemaining is like Take, except that n is clamped to the number of
// remaining bytes. It is meant for trailing data that may be short.
func (c *Cursor) TakeRemaining(n int) []byte {
	if r := c.Remaining(); n > r {
		n = r
	}
	if n <= 0 {
		return []byte{}
	}
	b, _ := c.Take(n)
	return b
}

// Read implements io.Reader. It returns io.EOF once the position reaches the
// end of the buffer.
func (c *Cursor) Read(p []byte) (n int, err error) {
	if c.Remaining() == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n = copy(p, c.buf[c.off:])
	c.off += n
	return n, nil
}

func (c *Cursor) view(offset, n int) ([]byte, error) {
	if err := c.check(offset, n); err != nil {
		return nil, err
	}
	return c.buf[offset : offset+n], nil
}

// U8At returns the byte at offset.
func (c *Cursor) U8At(offset int) (uint8, error) {
	b, err := c.view(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16At returns the little-endian uint16 at offset.
func (c *Cursor) U16At(offset int) (uint16, error) {
	b, err := c.view(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U32At returns the little-endian uint32 at offset.
func (c *Cursor) U32At(offset int) (uint32, error) {
	b, err := c.view(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U64At returns the little-endian uint64 at offset.
func (c *Cursor) U64At(offset int) (uint64, error) {
	b, err := c.view(offset, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// F32At returns the little-endian IEEE 754 float32 at offset.
func (c *Cursor) F32At(offset int) (float32, error) {
	v, err := c.U32At(offset)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// U8 reads a byte and advances past it.
func (c *Cursor) U8() (uint8, error) {
	v, err := c.U8At(c.off)
	if err == nil {
		c.off++
	}
	return v, err
}

// U16 reads a little-endian uint16 and advances past it.
func (c *Cursor) U16() (uint16, error) {
	v, err := c.U16At(c.off)
	if err == nil {
		c.off += 2
	}
	return v, err
}

// U32 reads a little-endian uint32 and advances past it.
func (c *Cursor) U32() (uint32, error) {
	v, err := c.U32At(c.off)
	if err == nil {
		c.off += 4
	}
	return v, err
}

// F32 reads a little-endian float32 and advances past it.
func (c *Cursor) F32() (float32, error) {
	v, err := c.F32At(c.off)
	if err == nil {
		c.off += 4
	}
	return v, err
}

// grow extends the buffer so that it is at least n bytes long.
func (c *Cursor) grow(n int) {
	old := len(c.buf)
	if n <= old {
		return
	}
	// Spare capacity of a borrowed buffer belongs to the caller.
	if c.owned && n <= cap(c.buf) {
		c.buf = c.buf[:n]
		clear(c.buf[old:])
		return
	}
	b := make([]byte, n, n+n/2)
	copy(b, c.buf)
	c.buf = b
	c.owned = true
}

// WriteAt copies b into the buffer at offset, growing the buffer if needed.
// The position is unchanged.
func (c *Cursor) WriteAt(offset int, b []byte) error {
	if offset < 0 {
		return RangeError{Offset: offset, Length: len(b), Size: len(c.buf)}
	}
	c.grow(offset + len(b))
	copy(c.buf[offset:], b)
	return nil
}

// Write implements io.Writer. It writes b at the current position, growing
// the buffer if needed, and advances past it.
func (c *Cursor) Write(b []byte) (n int, err error) {
	if err := c.WriteAt(c.off, b); err != nil {
		return 0, err
	}
	c.off += len(b)
	return len(b), nil
}

// PutU8At writes v at offset, growing the buffer if needed.
func (c *Cursor) PutU8At(offset int, v uint8) error {
	return c.WriteAt(offset, []byte{v})
}

// PutU16At writes v as a little-endian uint16 at offset.
func (c *Cursor) PutU16At(offset int, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return c.WriteAt(offset, b[:])
}

// PutU32At writes v as a little-endian uint32 at offset.
func (c *Cursor) PutU32At(offset int, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return c.WriteAt(offset, b[:])
}

// PutF32At writes v as a little-endian float32 at offset.
func (c *Cursor) PutF32At(offset int, v float32) error {
	return c.PutU32At(offset, math.Float32bits(v))
}

// PutU8 writes v at the position and advances past it. Writes at the
// position never fail, since the position is never negative.
func (c *Cursor) PutU8(v uint8) {
	c.Write([]byte{v})
}

// PutU16 writes v as a little-endian uint16 at the position and advances
// past it.
func (c *Cursor) PutU16(v uint16) {
	c.PutU16At(c.off, v)
	c.off += 2
}

// PutU32 writes v as a little-endian uint32 at the position and advances
// past it.
func (c *Cursor) PutU32(v uint32) {
	c.PutU32At(c.off, v)
	c.off += 4
}

// PutF32 writes v as a little-endian float32 at the position and advances
// past it.
func (c *Cursor) PutF32(v float32) {
	c.PutU32(math.Float32bits(v))
}

// SetSize resizes the buffer to n bytes. New bytes are zero. If the buffer
// shrinks below the position, the position is moved to the new end.
func (c *Cursor) SetSize(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(c.buf) {
		c.grow(n)
		return
	}
	c.buf = c.buf[:n]
	if c.off > n {
		c.off = n
	}
}

// Swap8 exchanges the 8-byte windows at offsets a and b.
func (c *Cursor) Swap8(a, b int) error {
	wa, err := c.view(a, 8)
	if err != nil {
		return err
	}
	wb, err := c.view(b, 8)
	if err != nil {
		return err
	}
	var tmp [8]byte
	copy(tmp[:], wa)
	copy(wa, wb)
	copy(wb, tmp[:])
	return nil
}

// XorAt XORs each of the n bytes at offset with mask.
func (c *Cursor) XorAt(offset, n int, mask byte) error {
	w, err := c.view(offset, n)
	if err != nil {
		return err
	}
	for i := range w {
		w[i] ^= mask
	}
	return nil
}

// Bytes returns a copy of the buffer.
func (c *Cursor) Bytes() []byte {
	b := make([]byte, len(c.buf))
	copy(b, c.buf)
	return b
}
