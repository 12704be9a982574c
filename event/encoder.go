package event

import (
	"github.com/anaminus/parse"
	"github.com/xidats/dats/cursor"
)

// Encoder encodes event files.
type Encoder struct {
	// If RecomputeBlockSizes is true, the header lists the encoded length
	// of each block instead of the sizes stored in the header.
	RecomputeBlockSizes bool
}

// Encode encodes f. The tag offsets of each block are derived from the
// lengths of its series, and the instruction stream is padded with 0xFF to
// a 4-byte boundary.
func (e Encoder) Encode(f *File) (b []byte, err error) {
	if err := e.validate(f); err != nil {
		return nil, err
	}

	blocks := make([][]byte, len(f.Blocks))
	for i := range f.Blocks {
		if blocks[i], err = f.Blocks[i].encode(); err != nil {
			return nil, BlockError{Index: i, Cause: err}
		}
	}

	c := cursor.Sized(0)
	fw := parse.NewBinaryWriter(c)
	if fw.Number(uint32(len(blocks))) {
		return nil, fw.Err()
	}
	for i, block := range blocks {
		size := uint32(len(block))
		if !e.RecomputeBlockSizes {
			size = f.Header.BlockSizes[i]
		}
		if fw.Number(size) {
			return nil, fw.Err()
		}
	}
	for _, block := range blocks {
		if fw.Bytes(block) {
			return nil, fw.Err()
		}
	}
	if _, err := fw.End(); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

func (e Encoder) validate(f *File) error {
	if f == nil {
		return ErrNilFile
	}
	n := len(f.Blocks)
	if n == 0 || n > MaxBlocks {
		return ErrInvalidBlockCount
	}
	if int(f.Header.BlockCount) != n {
		return ErrMismatchedLengths
	}
	if e.RecomputeBlockSizes {
		return nil
	}
	if len(f.Header.BlockSizes) != n {
		return ErrMismatchedLengths
	}
	for i, size := range f.Header.BlockSizes {
		if size == 0 {
			return BlockError{Index: i, Cause: ErrInvalidBlockSize}
		}
	}
	return nil
}

// Validate checks that the lengths and payloads of the block agree.
func (b *Block) Validate() error {
	n := len(b.Series)
	if int(b.TagCount) != n || len(b.TagOffsets) != n || len(b.EventExecNums) != n {
		return ErrMismatchedLengths
	}
	for i, s := range b.Series {
		if s.ID != b.EventExecNums[i] {
			return SeriesError{Index: i, Cause: ErrMismatchedID}
		}
		switch s.Kind {
		case PayloadOpcodes:
			if len(s.Raw) > 0 {
				return SeriesError{Index: i, Cause: ErrInvalidPayload}
			}
		case PayloadRaw:
			if len(s.Opcodes) > 0 {
				return SeriesError{Index: i, Cause: ErrInvalidPayload}
			}
		default:
			return SeriesError{Index: i, Cause: ErrInvalidPayload}
		}
	}
	size := b.streamLen()
	if size == 0 {
		return ErrInvalidEventDataSize
	}
	return nil
}

func (b *Block) encode() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	stream := make([]byte, 0, b.streamLen()+3)
	stream = append(stream, b.Leading...)
	offsets := make([]uint16, len(b.Series))
	for i := range b.Series {
		if len(stream) > 0xFFFF {
			return nil, SeriesError{Index: i, Cause: ErrStreamTooLarge}
		}
		offsets[i] = uint16(len(stream))
		stream = b.Series[i].appendTo(stream)
	}
	size := len(stream)
	for i := padding(size); i > 0; i-- {
		stream = append(stream, 0xFF)
	}

	c := cursor.Sized(0)
	fw := parse.NewBinaryWriter(c)
	if fw.Number(b.ActorNumber) {
		return nil, fw.Err()
	}
	if fw.Number(uint32(len(b.Series))) {
		return nil, fw.Err()
	}
	for _, off := range offsets {
		if fw.Number(off) {
			return nil, fw.Err()
		}
	}
	for _, s := range b.Series {
		if fw.Number(s.ID) {
			return nil, fw.Err()
		}
	}
	if fw.Number(uint32(len(b.ImmedData))) {
		return nil, fw.Err()
	}
	for _, v := range b.ImmedData {
		if fw.Number(v) {
			return nil, fw.Err()
		}
	}
	if fw.Number(uint32(size)) {
		return nil, fw.Err()
	}
	if fw.Bytes(stream) {
		return nil, fw.Err()
	}
	if _, err := fw.End(); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}
