package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xidats/dats/cursor"
)

// mmbHeader writes a length form top header and an MMB header to c. The
// header ends at offset 64.
func mmbHeader(c *cursor.Cursor, d3 uint8, pieces, blockHeaderOffset uint32) {
	c.PutU32(0)
	c.PutU8(d3)
	c.PutU8(0x33)
	c.PutU8(0)
	c.PutU8(0)
	c.PutU32(0)
	c.PutU32(0)
	c.Write(sjisName)
	c.PutU32(pieces)
	for i := 0; i < 6; i++ {
		c.PutF32(0)
	}
	c.PutU32(blockHeaderOffset)
}

func TestDecodeMMB(t *testing.T) {
	body := mmbBody()
	m, err := DecodeMMB(body)
	require.NoError(t, err)

	top := m.TopHeader
	assert.False(t, top.Tagged)
	assert.Equal(t, uint32(len(body)), top.Length)
	assert.Equal(t, uint32(len(body)), top.Size())
	assert.Equal(t, uint8(0x05), top.D1)
	assert.Equal(t, uint8(2), top.D3)
	assert.Equal(t, uint8(0x33), top.D4)
	assert.Equal(t, uint32(0x11111111), top.Unknown08)
	assert.Equal(t, uint32(0x22222222), top.Unknown0C)
	assert.True(t, top.HasDeltas())
	assert.Equal(t, TriangleList, top.DrawType())

	assert.Equal(t, "MAP", m.Header.ImageID)
	assert.Equal(t, uint32(0), m.Header.Pieces)
	assert.Equal(t, Bounds{X1: 0, X2: -1, Y1: -2, Y2: -3, Z1: -4, Z2: -5}, m.Header.Bounds)

	require.Len(t, m.Blocks, 1)
	blk := m.Blocks[0]
	assert.Equal(t, Bounds{X1: 0, X2: 1, Y1: 2, Y2: 3, Z1: 4, Z2: 5}, blk.Bounds)
	assert.Equal(t, uint32(0x99), blk.FaceID)
	require.Len(t, blk.Models, 1)

	model := blk.Models[0]
	assert.Equal(t, TriangleList, model.DrawType)
	assert.Equal(t, "テスト", model.TextureName)
	assert.Equal(t, uint16(0x10), model.Blending)
	assert.Equal(t, []MMBVertex{{
		X: 1, Y: 2, Z: 3,
		DX: 0.5, DY: 0.5, DZ: 0.5,
		HX: 0, HY: 1, HZ: 0,
		Color: 0xFF00FF00,
		U:     0.25, V: 0.75,
	}}, model.Vertices)
	assert.Equal(t, []uint16{0, 1, 2}, model.Indices)
}

func TestDecodeMMBTagged(t *testing.T) {
	c := cursor.Sized(0)
	c.Write([]byte("MMB"))
	c.PutU32(0x40 << 7) // type 0
	c.PutU32(0xAAAA)
	c.PutU32(0xBBBB)
	c.Write(sjisName)
	c.PutU32(0)
	for i := 0; i < 6; i++ {
		c.PutF32(0)
	}
	c.PutU32(0)
	writeMMBBlock(c, false, 2)

	m, err := DecodeMMB(c.Bytes())
	require.NoError(t, err)
	top := m.TopHeader
	assert.True(t, top.Tagged)
	assert.Equal(t, uint8(0), top.Type)
	assert.Equal(t, uint32(0x40<<7), top.Next)
	assert.Equal(t, [3]uint32{0x40 << 7, 0xAAAA, 0xBBBB}, top.Words)
	assert.Equal(t, uint32(0x40<<7*16), top.Size())
	assert.False(t, top.HasDeltas())

	require.Len(t, m.Blocks, 1)
	require.Len(t, m.Blocks[0].Models, 2)
	for _, model := range m.Blocks[0].Models {
		assert.Equal(t, TriangleList, model.DrawType)
		require.Len(t, model.Vertices, 1)
		assert.Zero(t, model.Vertices[0].DX)
		assert.Equal(t, float32(1), model.Vertices[0].HY)
		assert.Equal(t, uint32(0xFF00FF00), model.Vertices[0].Color)
	}
}

func TestMMBDrawType(t *testing.T) {
	for _, tt := range []struct {
		top  MMBTopHeader
		want DrawType
	}{
		{MMBTopHeader{Tagged: true, Type: 0}, TriangleList},
		{MMBTopHeader{Tagged: true, Type: 1}, TriangleStrip},
		{MMBTopHeader{D3: 2}, TriangleList},
		{MMBTopHeader{D3: 1}, TriangleStrip},
	} {
		assert.Equal(t, tt.want, tt.top.DrawType(), "%+v", tt.top)
	}
}

func TestMMBBlockOffsets(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		c := cursor.Sized(0)
		mmbHeader(c, 1, 2, 0)
		offsets := []uint32{96, 0, 0, 0, 0, 0, 0, 0}
		for _, off := range offsets {
			c.PutU32(off)
		}
		writeMMBBlock(c, false, 1)
		second := c.Offset()
		writeMMBBlock(c, false, 1)
		c.PutU32At(64+4, uint32(second))

		m, err := DecodeMMB(c.Bytes())
		require.NoError(t, err)
		assert.Len(t, m.Blocks, 2)
		assert.Equal(t, TriangleStrip, m.Blocks[1].Models[0].DrawType)
	})

	t.Run("header offset", func(t *testing.T) {
		c := cursor.Sized(0)
		mmbHeader(c, 1, 2, 96)
		offsets := []uint32{0, 0, 0, 0, 0, 0, 0, 128}
		for _, off := range offsets {
			c.PutU32(off)
		}
		writeMMBBlock(c, false, 0)
		c.SetSize(128)
		c.Goto(128)
		writeMMBBlock(c, false, 0)

		m, err := DecodeMMB(c.Bytes())
		require.NoError(t, err)
		assert.Len(t, m.Blocks, 2)
	})

	t.Run("header offset behind", func(t *testing.T) {
		c := cursor.Sized(0)
		mmbHeader(c, 1, 5, 64)
		writeMMBBlock(c, false, 1)

		m, err := DecodeMMB(c.Bytes())
		require.NoError(t, err)
		assert.Len(t, m.Blocks, 1)
	})

	t.Run("mismatched", func(t *testing.T) {
		c := cursor.Sized(0)
		mmbHeader(c, 1, 3, 96)
		for i := 0; i < 8; i++ {
			c.PutU32(0)
		}
		writeMMBBlock(c, false, 1)

		_, err := DecodeMMB(c.Bytes())
		assert.ErrorIs(t, err, ErrMismatchedOffsets)
	})
}

func TestMMBCorruptModelCount(t *testing.T) {
	c := cursor.Sized(0)
	mmbHeader(c, 2, 0, 0)
	c.PutU32(maxModels + 1)
	for i := 0; i < 7; i++ {
		c.PutU32(0)
	}

	_, err := DecodeMMB(c.Bytes())
	assert.ErrorIs(t, err, ErrCorruptModelCount)

	c = cursor.Sized(0)
	mmbHeader(c, 2, 0, 0)
	writeMMBBlock(c, true, maxModels)
	m, err := DecodeMMB(c.Bytes())
	require.NoError(t, err)
	assert.Len(t, m.Blocks[0].Models, maxModels)
}

func TestMMBTruncated(t *testing.T) {
	body := mmbBody()
	for _, n := range []int{2, 20, 70, len(body) - 30} {
		_, err := DecodeMMB(body[:n])
		assert.Error(t, err, "length %d", n)
	}
}

func TestDecodeName(t *testing.T) {
	assert.Equal(t, "テスト", decodeName(sjisName))
	assert.Equal(t, "abc", decodeName([]byte("abc\x00def")))
	assert.Equal(t, "", decodeName(make([]byte, 16)))
}
