package zone

import (
	"bytes"

	"github.com/anaminus/parse"
	"github.com/xidats/dats/cursor"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// maxModels is the largest model count accepted in an MMB block.
const maxModels = 50

// maxBlockOffsets is the number of block offsets that may follow the MMB
// header.
const maxBlockOffsets = 8

const mmbMagic = "MMB"

// MMB is a decoded vertex model.
type MMB struct {
	TopHeader MMBTopHeader `json:"top_header" yaml:"top_header"`
	Header    MMBHeader    `json:"header" yaml:"header"`
	Blocks    []MMBBlock   `json:"blocks" yaml:"blocks"`
}

// MMBTopHeader is the first header of an MMB. It comes in two forms: a
// tagged form starting with "MMB", and a form starting with a length.
type MMBTopHeader struct {
	Tagged bool `json:"tagged" yaml:"tagged"`

	// Fields of the tagged form.
	Type  uint8     `json:"type,omitempty" yaml:"type,omitempty"`
	Next  uint32    `json:"next,omitempty" yaml:"next,omitempty"`
	Words [3]uint32 `json:"words,omitempty" yaml:"words,omitempty,flow"`

	// Fields of the length form.
	Length    uint32 `json:"length,omitempty" yaml:"length,omitempty"`
	D1        uint8  `json:"d1,omitempty" yaml:"d1,omitempty"`
	D3        uint8  `json:"d3,omitempty" yaml:"d3,omitempty"`
	D4        uint8  `json:"d4,omitempty" yaml:"d4,omitempty"`
	D5        uint8  `json:"d5,omitempty" yaml:"d5,omitempty"`
	D6        uint8  `json:"d6,omitempty" yaml:"d6,omitempty"`
	Unknown08 uint32 `json:"unknown_0x08,omitempty" yaml:"unknown_0x08,omitempty"`
	Unknown0C uint32 `json:"unknown_0x0c,omitempty" yaml:"unknown_0x0c,omitempty"`
}

// Size returns the size of the MMB named by the header.
func (h *MMBTopHeader) Size() uint32 {
	if h.Tagged {
		return h.Next * 16
	}
	return h.Length
}

// HasDeltas returns whether vertices carry a delta triple.
func (h *MMBTopHeader) HasDeltas() bool {
	return !h.Tagged && h.D3 == 2
}

// DrawType returns how the indices of each model are assembled.
func (h *MMBTopHeader) DrawType() DrawType {
	if h.Tagged && h.Type == 0 || !h.Tagged && h.D3 == 2 {
		return TriangleList
	}
	return TriangleStrip
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	X1 float32 `json:"x1" yaml:"x1"`
	X2 float32 `json:"x2" yaml:"x2"`
	Y1 float32 `json:"y1" yaml:"y1"`
	Y2 float32 `json:"y2" yaml:"y2"`
	Z1 float32 `json:"z1" yaml:"z1"`
	Z2 float32 `json:"z2" yaml:"z2"`
}

type MMBHeader struct {
	ImageID           string `json:"image_id" yaml:"image_id"`
	Pieces            uint32 `json:"pieces" yaml:"pieces"`
	Bounds            Bounds `json:"bounds" yaml:"bounds"`
	BlockHeaderOffset uint32 `json:"block_header_offset" yaml:"block_header_offset"`
}

type MMBBlock struct {
	Bounds Bounds     `json:"bounds" yaml:"bounds"`
	FaceID uint32     `json:"face_id" yaml:"face_id"`
	Models []MMBModel `json:"models" yaml:"models"`
}

// DrawType indicates how indices are assembled into triangles.
type DrawType string

const (
	TriangleList  DrawType = "triangle_list"
	TriangleStrip DrawType = "triangle_strip"
)

type MMBModel struct {
	DrawType    DrawType    `json:"draw_type" yaml:"draw_type"`
	TextureName string      `json:"texture_name" yaml:"texture_name"`
	Blending    uint16      `json:"blending" yaml:"blending"`
	Vertices    []MMBVertex `json:"vertices" yaml:"vertices"`
	Indices     []uint16    `json:"indices" yaml:"indices,flow"`
}

type MMBVertex struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
	// Delta is present only when the top header calls for it.
	DX float32 `json:"dx,omitempty" yaml:"dx,omitempty"`
	DY float32 `json:"dy,omitempty" yaml:"dy,omitempty"`
	DZ float32 `json:"dz,omitempty" yaml:"dz,omitempty"`
	// Normal.
	HX    float32 `json:"hx" yaml:"hx"`
	HY    float32 `json:"hy" yaml:"hy"`
	HZ    float32 `json:"hz" yaml:"hz"`
	Color uint32  `json:"color" yaml:"color"`
	U     float32 `json:"u" yaml:"u"`
	V     float32 `json:"v" yaml:"v"`
}

// numbers reads each value in order, stopping at the first failure.
func numbers(fr *parse.BinaryReader, values ...interface{}) (failed bool) {
	for _, v := range values {
		if fr.Number(v) {
			return true
		}
	}
	return false
}

func (b *Bounds) fields() []interface{} {
	return []interface{}{&b.X1, &b.X2, &b.Y1, &b.Y2, &b.Z1, &b.Z2}
}

// decodeName decodes a fixed-size Shift-JIS name, which ends at the first
// NUL byte.
func decodeName(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// DecodeMMB decodes the decrypted body of an MMB chunk.
func DecodeMMB(b []byte) (m *MMB, err error) {
	c := cursor.New(b)
	fr := parse.NewBinaryReader(c)
	m = &MMB{}

	if err := m.TopHeader.decode(c, fr); err != nil {
		return nil, err
	}

	h := &m.Header
	name := make([]byte, 16)
	if fr.Bytes(name) {
		return nil, readError(c, fr)
	}
	h.ImageID = decodeName(name)
	if numbers(fr, &h.Pieces) || numbers(fr, h.Bounds.fields()...) || numbers(fr, &h.BlockHeaderOffset) {
		return nil, readError(c, fr)
	}

	offsets, err := m.blockOffsets(c, fr)
	if err != nil {
		return nil, err
	}

	m.Blocks = make([]MMBBlock, len(offsets))
	for i, off := range offsets {
		if err := c.Goto(int(off)); err != nil {
			return nil, DataError{Offset: int64(off), Cause: err}
		}
		if err := m.Blocks[i].decode(c, fr, &m.TopHeader); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (h *MMBTopHeader) decode(c *cursor.Cursor, fr *parse.BinaryReader) error {
	if magic, err := c.Peek(len(mmbMagic)); err == nil && string(magic) == mmbMagic {
		c.Skip(len(mmbMagic))
		h.Tagged = true
		if numbers(fr, &h.Words[0], &h.Words[1], &h.Words[2]) {
			return readError(c, fr)
		}
		h.Type = uint8(h.Words[0] & 0x7F)
		h.Next = h.Words[0] & 0x3FFFFFF
		return nil
	}

	var first uint32
	if numbers(fr, &first, &h.D3, &h.D4, &h.D5, &h.D6, &h.Unknown08, &h.Unknown0C) {
		return readError(c, fr)
	}
	h.Length = first & 0xFFFFFF
	h.D1 = uint8(first >> 24)
	return nil
}

// blockOffsets reads the offsets of the blocks, which follow the header when
// there is more than one block.
func (m *MMB) blockOffsets(c *cursor.Cursor, fr *parse.BinaryReader) ([]uint32, error) {
	h := &m.Header
	current := uint32(c.Offset())

	readList := func(list []uint32) ([]uint32, error) {
		for i := 0; i < maxBlockOffsets; i++ {
			var off uint32
			if fr.Number(&off) {
				return nil, readError(c, fr)
			}
			if off != 0 {
				list = append(list, off)
			}
		}
		return list, nil
	}

	if h.BlockHeaderOffset == 0 {
		if h.Pieces == 0 {
			return []uint32{current}, nil
		}
		return readList(nil)
	}

	list := []uint32{h.BlockHeaderOffset}
	if h.BlockHeaderOffset <= current {
		return list, nil
	}
	list, err := readList(list)
	if err != nil {
		return nil, err
	}
	if len(list) != int(h.Pieces) {
		return nil, DataError{Offset: int64(current), Cause: ErrMismatchedOffsets}
	}
	return list, nil
}

func (blk *MMBBlock) decode(c *cursor.Cursor, fr *parse.BinaryReader, top *MMBTopHeader) error {
	start := c.Offset()
	var count uint32
	if numbers(fr, &count) || numbers(fr, blk.Bounds.fields()...) || numbers(fr, &blk.FaceID) {
		return readError(c, fr)
	}
	if count > maxModels {
		return DataError{Offset: int64(start), Cause: ErrCorruptModelCount}
	}

	drawType := top.DrawType()
	deltas := top.HasDeltas()
	blk.Models = make([]MMBModel, count)
	for i := range blk.Models {
		model := &blk.Models[i]
		model.DrawType = drawType

		name := make([]byte, 16)
		if fr.Bytes(name) {
			return readError(c, fr)
		}
		model.TextureName = decodeName(name)
		var vertexCount uint16
		if numbers(fr, &vertexCount, &model.Blending) {
			return readError(c, fr)
		}

		model.Vertices = make([]MMBVertex, vertexCount)
		for j := range model.Vertices {
			v := &model.Vertices[j]
			if numbers(fr, &v.X, &v.Y, &v.Z) {
				return readError(c, fr)
			}
			if deltas && numbers(fr, &v.DX, &v.DY, &v.DZ) {
				return readError(c, fr)
			}
			if numbers(fr, &v.HX, &v.HY, &v.HZ, &v.Color, &v.U, &v.V) {
				return readError(c, fr)
			}
		}

		var indexCount uint32
		if fr.Number(&indexCount) {
			return readError(c, fr)
		}
		indexCount &= 0xFFFF
		model.Indices = make([]uint16, indexCount)
		for j := range model.Indices {
			var v uint32
			if fr.Number(&v) {
				return readError(c, fr)
			}
			model.Indices[j] = uint16(v & 0xFFFF)
		}
	}
	return nil
}
