package zone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// Indicates a chunk tag that is not valid text.
	ErrInvalidTag = errors.New("invalid chunk tag")
	// Indicates a packed chunk length below the size of the chunk header,
	// or a body whose length cannot be represented by the packed field.
	ErrInvalidChunkLength = errors.New("invalid chunk length")
	// Indicates a zone model whose mesh offset lies outside of the body.
	ErrInvalidMeshOffset = errors.New("invalid mesh offset")
	// Indicates mesh geometry offsets that are not in ascending order.
	ErrInvalidGeometryOffsets = errors.New("geometry offsets out of order")
	// Indicates an MMB block with an implausible number of models.
	ErrCorruptModelCount = errors.New("corrupt MMB model count")
	// Indicates an MMB block offset list that disagrees with the piece count.
	ErrMismatchedOffsets = errors.New("mismatched MMB block offsets")
	// Indicates a decoded chunk that has no decrypted body to encode.
	ErrMissingBody = errors.New("decoded chunk has no body")
	// Indicates that a nil container was given to the encoder.
	ErrNilContainer = errors.New("nil container")
)

// DataError wraps an error that occurred at a position in a buffer.
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

// ChunkError indicates an error that occurred within a chunk.
type ChunkError struct {
	// Index is the position of the chunk within the container.
	Index int
	// Tag is the four character code of the chunk.
	Tag string

	Cause error
}

func (err ChunkError) Error() string {
	return fmt.Sprintf("chunk #%d (%q): %s", err.Index, err.Tag, err.Cause)
}

func (err ChunkError) Unwrap() error {
	return err.Cause
}

// MeshWarning reports geometry whose offsets do not line up with the data
// read from them.
type MeshWarning struct {
	// Cell is the grid cell of the mesh.
	X, Y int
	// Mesh is the index of the mesh within its grid entry.
	Mesh int
	// Expected is the offset named by the geometry header.
	Expected int
	// Actual is the offset reached after reading the preceding array.
	Actual int
}

func (err MeshWarning) Error() string {
	return fmt.Sprintf("cell (%d, %d) mesh #%d: expected offset 0x%X, got 0x%X", err.X, err.Y, err.Mesh, err.Expected, err.Actual)
}
