package event

import (
	"io"
	"log/slog"

	"github.com/anaminus/parse"
	"github.com/xidats/dats"
	"github.com/xidats/dats/cursor"
	"github.com/xidats/dats/errors"
)

// Decoder decodes event files.
type Decoder struct {
	// Logger receives a warning record for every series kept as raw bytes
	// and every other recoverable problem. May be nil.
	Logger *slog.Logger

	// If RawSeries is true, instructions are not decoded, and every series
	// is kept as raw bytes.
	RawSeries bool
}

// Decode decodes an event file from b. Series that could not be decoded are
// returned as raw bytes and reported in warn. If err is non-nil, then f is
// nil.
func (d Decoder) Decode(b []byte) (f *File, warn, err error) {
	c := cursor.New(b)
	fr := parse.NewBinaryReader(c)

	f = &File{}
	if err := f.Header.decode(c, fr); err != nil {
		return nil, nil, err
	}

	f.Blocks = make([]Block, f.Header.BlockCount)
	for i := range f.Blocks {
		ws, err := f.Blocks[i].decode(c, fr, i, d.RawSeries)
		if err != nil {
			return nil, nil, BlockError{Index: i, Cause: err}
		}
		warn = errors.Union(warn, ws)
	}
	errors.List(warn).Log(d.Logger, "event data degraded")
	return f, warn, nil
}

// readError returns the error of a failed read from fr.
func readError(c *cursor.Cursor, fr *parse.BinaryReader) error {
	err := fr.Err()
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return DataError{Offset: int64(c.Offset()), Cause: err}
}

// need fails if fewer than n bytes remain.
func need(c *cursor.Cursor, n int64) error {
	if n > int64(c.Remaining()) {
		return DataError{Offset: int64(c.Offset()), Cause: io.ErrUnexpectedEOF}
	}
	return nil
}

func (h *Header) decode(c *cursor.Cursor, fr *parse.BinaryReader) error {
	if fr.Number(&h.BlockCount) {
		return readError(c, fr)
	}
	if h.BlockCount == 0 || h.BlockCount > MaxBlocks {
		return DataError{Offset: 0, Cause: ErrInvalidBlockCount}
	}
	if err := need(c, int64(h.BlockCount)*4); err != nil {
		return err
	}
	h.BlockSizes = make([]uint32, h.BlockCount)
	for i := range h.BlockSizes {
		if fr.Number(&h.BlockSizes[i]) {
			return readError(c, fr)
		}
		if h.BlockSizes[i] == 0 {
			return DataError{Offset: int64(c.Offset() - 4), Cause: BlockError{Index: i, Cause: ErrInvalidBlockSize}}
		}
	}
	return nil
}

func (b *Block) decode(c *cursor.Cursor, fr *parse.BinaryReader, index int, rawOnly bool) (warns errors.Errors, err error) {
	if fr.Number(&b.ActorNumber) {
		return nil, readError(c, fr)
	}
	if fr.Number(&b.TagCount) {
		return nil, readError(c, fr)
	}
	if err := need(c, int64(b.TagCount)*4); err != nil {
		return nil, err
	}
	b.TagOffsets = make([]uint16, b.TagCount)
	for i := range b.TagOffsets {
		if fr.Number(&b.TagOffsets[i]) {
			return nil, readError(c, fr)
		}
	}
	b.EventExecNums = make([]uint16, b.TagCount)
	for i := range b.EventExecNums {
		if fr.Number(&b.EventExecNums[i]) {
			return nil, readError(c, fr)
		}
	}

	var immedCount uint32
	if fr.Number(&immedCount) {
		return nil, readError(c, fr)
	}
	if err := need(c, int64(immedCount)*4); err != nil {
		return nil, err
	}
	b.ImmedData = make([]uint32, immedCount)
	for i := range b.ImmedData {
		if fr.Number(&b.ImmedData[i]) {
			return nil, readError(c, fr)
		}
	}

	var size uint32
	if fr.Number(&size) {
		return nil, readError(c, fr)
	}
	if size == 0 || int64(size) > int64(c.Remaining()) {
		return nil, DataError{Offset: int64(c.Offset() - 4), Cause: ErrInvalidEventDataSize}
	}
	stream := c.Offset()
	end := stream + int(size)

	lead := end
	if len(b.TagOffsets) > 0 {
		lead = stream + int(b.TagOffsets[0])
	}
	if lead > end {
		return nil, DataError{Offset: int64(lead), Cause: ErrInvalidSeriesBounds}
	}
	if lead > stream {
		b.Leading, _ = c.ReadAt(stream, lead-stream)
	}

	b.Series = make([]Series, len(b.TagOffsets))
	for i := range b.TagOffsets {
		start := stream + int(b.TagOffsets[i])
		stop := end
		if i+1 < len(b.TagOffsets) {
			stop = stream + int(b.TagOffsets[i+1])
		}
		if start > stop || stop > end {
			return nil, DataError{Offset: int64(start), Cause: ErrInvalidSeriesBounds}
		}

		s := &b.Series[i]
		s.ID = b.EventExecNums[i]
		if start == stop {
			s.Kind = PayloadRaw
			continue
		}
		seg, _ := c.ReadAt(start, stop-start)
		if rawOnly {
			s.Kind = PayloadRaw
			s.Raw = seg
			continue
		}
		ops, fb := decodeOpcodes(seg)
		if fb != nil {
			s.Kind = PayloadRaw
			s.Raw = seg
			warns = append(warns, SeriesWarning{
				Block:  index,
				Series: i,
				Offset: start - stream + fb.pos,
				Opcode: fb.opcode,
				Cause:  fb.cause,
			})
			continue
		}
		s.Kind = PayloadOpcodes
		s.Opcodes = ops
	}

	// The stream is padded to a 4-byte boundary. The padding of the last
	// block may be cut short by the end of the file.
	c.Goto(end)
	if pad := c.TakeRemaining(padding(int(size))); !isPadding(pad) {
		warns = append(warns, PaddingWarning{Block: index, Padding: pad})
	}
	return warns, nil
}

// padding returns the number of bytes needed to align n to 4 bytes.
func padding(n int) int {
	return (4 - n%4) % 4
}

func isPadding(b []byte) bool {
	for _, v := range b {
		if v != 0xFF {
			return false
		}
	}
	return true
}

// fallback describes why a series could not be decoded.
type fallback struct {
	pos    int
	opcode byte
	cause  error
}

// decodeOpcodes decodes seg as a sequence of instructions. If the length of
// any instruction cannot be determined, the series is abandoned as a whole,
// since a wrong length desynchronizes every instruction that follows.
func decodeOpcodes(seg []byte) ([]Opcode, *fallback) {
	var ops []Opcode
	for pos := 0; pos < len(seg); {
		opcode := seg[pos]
		size, err := instructionSize(seg[pos:], ops)
		if err != nil {
			return nil, &fallback{pos: pos, opcode: opcode, cause: err}
		}
		params := make(dats.HexBytes, size-1)
		copy(params, seg[pos+1:pos+size])
		op := Opcode{Opcode: dats.HexByte(opcode), Params: params}
		if m, ok := Lookup(opcode); ok {
			op.Description = m.Description
		}
		ops = append(ops, op)
		pos += size
	}
	return ops, nil
}

// instructionSize returns the total size of the instruction at the start of
// rest, which extends to the end of the series. prior holds the
// instructions already decoded in the series.
func instructionSize(rest []byte, prior []Opcode) (int, error) {
	opcode := rest[0]
	if opcode == EmptyOpcode {
		return 0, errEmptyOpcode
	}
	m, ok := Lookup(opcode)
	if !ok {
		return 0, errUnknownOpcode
	}

	var size int
	if len(m.Sizes) == 1 {
		size = m.Sizes[0]
	} else if size = lookahead(rest, m.Sizes); size == 0 {
		if m.Resolver == nil {
			return 0, errAmbiguousSize
		}
		if size, ok = m.Resolver(opcode, rest[1:], prior); !ok {
			return 0, errResolverFailed
		}
	}
	if size < 1 {
		return 0, errInvalidSizeInfo
	}
	if size > len(rest) {
		return 0, errOverrun
	}
	return size, nil
}

// lookahead returns the only candidate size that is followed either by the
// end of the series or by a valid opcode. Returns 0 if no candidate or more
// than one candidate passes.
func lookahead(rest []byte, sizes []int) int {
	found := 0
	for _, size := range sizes {
		if size < 1 || size > len(rest) {
			continue
		}
		if size < len(rest) && !ValidOpcode(rest[size]) {
			continue
		}
		if found != 0 {
			return 0
		}
		found = size
	}
	return found
}
