package zone

import (
	"github.com/xidats/dats/cursor"
)

type cell [2]int

// gridFixture locates the parts of a collision grid written by writeGrid.
type gridFixture struct {
	grid   uint32
	width  int
	height int
	// geo is the offset of the geometry header of each populated cell.
	geo map[cell]int
	// vertices is the offset of the vertex array of each populated cell.
	vertices map[cell]int
}

var translate = Matrix{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{10, 20, 30, 1},
}

// writeGrid appends one grid entry per populated cell to c, each holding a
// single mesh with two vertices, one normal and one triangle, followed by
// the grid table.
func writeGrid(c *cursor.Cursor, width, height int, cells map[cell]Matrix) gridFixture {
	fx := gridFixture{width: width, height: height, geo: map[cell]int{}, vertices: map[cell]int{}}
	entries := map[cell]int{}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m, ok := cells[cell{x, y}]
			if !ok {
				continue
			}
			entry := c.Offset()
			vis := entry + 20
			geo := vis + 64
			vo := geo + 16
			no := vo + 24
			to := no + 12
			entries[cell{x, y}] = entry
			fx.geo[cell{x, y}] = geo
			fx.vertices[cell{x, y}] = vo

			c.PutU32(0xAB000000 | uint32(y*width+x))
			c.PutU32(uint32(vis))
			c.PutU32(uint32(geo))
			c.PutU32(0)
			c.PutU32(0)
			for i := range m {
				for j := range m[i] {
					c.PutF32(m[i][j])
				}
			}
			c.PutU32(uint32(vo))
			c.PutU32(uint32(no))
			c.PutU32(uint32(to))
			c.PutU16(1)
			c.PutU16(0x0042)
			for _, v := range []float32{1, 2, 3, 4, 5, 6, 0, 1, 0} {
				c.PutF32(v)
			}
			for _, v := range []uint16{0xC001, 0x4002, 0x8003, 0xFFFF} {
				c.PutU16(v)
			}
		}
	}
	fx.grid = uint32(c.Offset())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.PutU32(uint32(entries[cell{x, y}]))
		}
	}
	return fx
}

// padTo16 grows c to a multiple of 16 bytes.
func padTo16(c *cursor.Cursor) {
	if r := c.Len() % 16; r != 0 {
		c.SetSize(c.Len() + 16 - r)
	}
}

// modelBody returns the decrypted body of a zone model chunk with a 10x10
// collision grid in which cell (1, 0) is populated.
func modelBody(meshOffset uint32) []byte {
	c := cursor.Sized(0x40)
	c.Goto(0x40)
	grid := writeGrid(c, 10, 10, map[cell]Matrix{{1, 0}: translate}).grid
	padTo16(c)

	c.PutU32At(0x00, uint32(c.Len())|0x1B<<24)
	c.PutU32At(0x04, 1|0x12<<24) // one node; key index in the top byte
	c.PutU32At(0x08, meshOffset)
	c.PutU8At(0x0C, 1) // grid width / 10
	c.PutU8At(0x0D, 1) // grid height / 10
	c.PutU8At(0x0E, 4)
	c.PutU8At(0x0F, 5)
	c.PutU32At(0x10, 0x100)
	c.PutU32At(0x14, 0x20+2*0x64)
	c.PutU32At(0x18, 0x1C)
	c.WriteAt(0x1C, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	mesh := []uint32{3, 0x200, 7, 0x300, grid, 0x400, 9}
	for i, v := range mesh {
		c.PutU32At(0x20+i*4, v)
	}
	return c.Bytes()
}

// sjisName is "テスト" in Shift-JIS, padded to 16 bytes.
var sjisName = []byte{0x83, 0x65, 0x83, 0x58, 0x83, 0x67, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

func writeMMBBlock(c *cursor.Cursor, deltas bool, models uint32) {
	c.PutU32(models)
	for i := 0; i < 6; i++ {
		c.PutF32(float32(i))
	}
	c.PutU32(0x99)
	for i := 0; i < int(models); i++ {
		c.Write(sjisName)
		c.PutU16(1)
		c.PutU16(0x10)
		c.PutF32(1)
		c.PutF32(2)
		c.PutF32(3)
		if deltas {
			c.PutF32(0.5)
			c.PutF32(0.5)
			c.PutF32(0.5)
		}
		c.PutF32(0)
		c.PutF32(1)
		c.PutF32(0)
		c.PutU32(0xFF00FF00)
		c.PutF32(0.25)
		c.PutF32(0.75)
		c.PutU32(0xABCD0003)
		c.PutU32(0x00010000)
		c.PutU32(0xFFFF0001)
		c.PutU32(2)
	}
}

// mmbBody returns the decrypted body of an MMB chunk in the length form,
// with vertex deltas and one block of one model. Both MMB ciphers are
// marked as present.
func mmbBody() []byte {
	c := cursor.Sized(0)
	c.PutU32(0)
	c.PutU8(2)    // d3
	c.PutU8(0x33) // d4, key index
	c.PutU8(0)    // d5
	c.PutU8(0)    // d6
	c.PutU32(0x11111111)
	c.PutU32(0x22222222)
	c.Write([]byte("MAP\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"))
	c.PutU32(0)
	for i := 0; i < 6; i++ {
		c.PutF32(float32(-i))
	}
	c.PutU32(0)
	writeMMBBlock(c, true, 1)
	padTo16(c)
	c.PutU32At(0, uint32(c.Len())|0x05<<24)
	return c.Bytes()
}

// frame returns a chunk with the given header fields and stored body.
func frame(tag string, typ, attr uint8, body []byte) []byte {
	c := cursor.Sized(0)
	c.Write([]byte(tag))
	c.PutU32(uint32(typ) | uint32((len(body)+headerSize)>>4)<<7 | uint32(attr)<<28)
	c.PutU32(0x01020304)
	c.PutU32(0x0A0B0C0D)
	c.Write(body)
	return c.Bytes()
}

func encrypted(typ uint8, plain []byte) []byte {
	b := make([]byte, len(plain))
	copy(b, plain)
	if err := Encrypt(typ, b); err != nil {
		panic(err)
	}
	return b
}
