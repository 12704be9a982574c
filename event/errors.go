package event

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// Indicates a block count of zero or greater than MaxBlocks.
	ErrInvalidBlockCount = errors.New("invalid block count")
	// Indicates a block size of zero.
	ErrInvalidBlockSize = errors.New("invalid block size")
	// Indicates an event data size of zero, or one that exceeds the
	// remaining bytes of the file.
	ErrInvalidEventDataSize = errors.New("invalid event data size")
	// Indicates a series whose start lies after its end, or whose end lies
	// outside of the event data.
	ErrInvalidSeriesBounds = errors.New("invalid series bounds")
	// Indicates that the lengths of the lists of a structure disagree.
	ErrMismatchedLengths = errors.New("mismatched lengths")
	// Indicates a series whose ID differs from the exec num of its tag.
	ErrMismatchedID = errors.New("series id does not match event exec num")
	// Indicates a series whose payload does not agree with its kind.
	ErrInvalidPayload = errors.New("invalid series payload")
	// Indicates a series that starts beyond the range of a tag offset.
	ErrStreamTooLarge = errors.New("instruction stream too large")
	// Indicates that a nil file was given to the encoder.
	ErrNilFile = errors.New("nil file")
)

// Causes of a series being kept as raw bytes.
var (
	errEmptyOpcode     = errors.New("reserved opcode 0xFF")
	errUnknownOpcode   = errors.New("unknown opcode")
	errAmbiguousSize   = errors.New("ambiguous instruction size")
	errResolverFailed  = errors.New("size resolver failed")
	errOverrun         = errors.New("instruction overruns series")
	errInvalidSizeInfo = errors.New("invalid size metadata")
)

// DataError wraps an error that occurred at a position in the file.
type DataError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err DataError) Error() string {
	var s strings.Builder
	s.WriteString("data error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err DataError) Unwrap() error {
	return err.Cause
}

// BlockError indicates an error that occurred within a block.
type BlockError struct {
	// Index is the position of the block within the file.
	Index int

	Cause error
}

func (err BlockError) Error() string {
	return fmt.Sprintf("block #%d: %s", err.Index, err.Cause)
}

func (err BlockError) Unwrap() error {
	return err.Cause
}

// SeriesError indicates an error within a series.
type SeriesError struct {
	// Index is the position of the series within the block.
	Index int

	Cause error
}

func (err SeriesError) Error() string {
	return fmt.Sprintf("series #%d: %s", err.Index, err.Cause)
}

func (err SeriesError) Unwrap() error {
	return err.Cause
}

// SeriesWarning reports a series that could not be decoded into
// instructions and was kept as raw bytes instead.
type SeriesWarning struct {
	// Block is the index of the block containing the series.
	Block int
	// Series is the index of the series within the block.
	Series int
	// Offset is the position of the offending instruction, relative to the
	// start of the block's event data.
	Offset int
	// Opcode is the offending opcode byte.
	Opcode byte

	Cause error
}

func (err SeriesWarning) Error() string {
	return fmt.Sprintf("block #%d series #%d: opcode 0x%02X at 0x%04X: %s; kept as raw bytes",
		err.Block, err.Series, err.Opcode, err.Offset, err.Cause)
}

func (err SeriesWarning) Unwrap() error {
	return err.Cause
}

// PaddingWarning reports block padding that does not consist of 0xFF bytes.
type PaddingWarning struct {
	Block   int
	Padding []byte
}

func (err PaddingWarning) Error() string {
	return fmt.Sprintf("block #%d: unexpected padding % 02X", err.Block, err.Padding)
}
