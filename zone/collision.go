package zone

import (
	"github.com/xidats/dats/cursor"
	"github.com/xidats/dats/errors"
)

// IndexMask is applied to every triangle index. The top two bits of each
// stored index are flags.
const IndexMask = 0x3FFF

// pointSize is the size of a stored Point3D.
const pointSize = 12

// CollisionMesh is the collision geometry of a zone, divided into a grid of
// cells. Only cells that hold geometry have an entry.
type CollisionMesh struct {
	GridEntries []GridEntry `json:"grid_entries" yaml:"grid_entries"`
}

// GridEntry is the geometry of one grid cell.
type GridEntry struct {
	X           int         `json:"x" yaml:"x"`
	Y           int         `json:"y" yaml:"y"`
	Info        uint32      `json:"info" yaml:"info"`
	MeshEntries []MeshEntry `json:"mesh_entries" yaml:"mesh_entries"`
}

// MeshEntry is one mesh of a cell, transformed into zone space.
type MeshEntry struct {
	Flags     uint16     `json:"flags" yaml:"flags"`
	Vertices  []Point3D  `json:"vertices" yaml:"vertices,flow"`
	Normals   []Point3D  `json:"normals" yaml:"normals,flow"`
	Triangles []Triangle `json:"triangles" yaml:"triangles,flow"`
}

type Point3D struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// Triangle holds indices into the vertices and normals of a MeshEntry.
type Triangle struct {
	V1     uint32 `json:"v1" yaml:"v1"`
	V2     uint32 `json:"v2" yaml:"v2"`
	V3     uint32 `json:"v3" yaml:"v3"`
	Normal uint32 `json:"normal" yaml:"normal"`
}

// Matrix is a row-major 4x4 transform.
type Matrix [4][4]float32

// Transform applies m to p. The Y axis of the result is negated.
//
// Each product is rounded to float32 before it is summed, so that the result
// does not depend on whether the platform fuses multiply-add.
func (m *Matrix) Transform(p Point3D) Point3D {
	return Point3D{
		X: float32(m[0][0]*p.X) + float32(m[1][0]*p.Y) + float32(m[2][0]*p.Z) + m[3][0],
		Y: -(float32(m[0][1]*p.X) + float32(m[1][1]*p.Y) + float32(m[2][1]*p.Z) + m[3][1]),
		Z: float32(m[0][2]*p.X) + float32(m[1][2]*p.Y) + float32(m[2][2]*p.Z) + m[3][2],
	}
}

// Determinant returns the determinant of the upper-left 3x3 of m.
func (m *Matrix) Determinant() float32 {
	a := float32(m[1][1]*m[2][2]) - float32(m[1][2]*m[2][1])
	b := float32(m[1][2]*m[2][0]) - float32(m[1][0]*m[2][2])
	c := float32(m[1][0]*m[2][1]) - float32(m[1][1]*m[2][0])
	return float32(m[0][0]*a) + float32(m[0][1]*b) + float32(m[0][2]*c)
}

// DecodeCollisionMesh decodes the collision grid of a decrypted zone model
// body. The grid has width by height cells whose entry offsets are stored
// at gridOffset in row-major order. Scanning stops at the first cell whose
// offset lies outside of the body.
func DecodeCollisionMesh(b []byte, gridOffset uint32, width, height uint16) (mesh *CollisionMesh, warn, err error) {
	c := cursor.New(b)
	mesh = &CollisionMesh{}

scan:
	for y := 0; y < int(height); y++ {
		for x := 0; x < int(width); x++ {
			header := int(gridOffset) + (y*int(width)+x)*4
			off, err := c.U32At(header)
			if err != nil {
				break scan
			}
			if off == 0 || int64(off) >= int64(len(b)) {
				continue
			}
			entry, ws, err := decodeGridEntry(c, int(off), x, y)
			if err != nil {
				return nil, nil, err
			}
			warn = errors.Union(warn, ws)
			mesh.GridEntries = append(mesh.GridEntries, entry)
		}
	}
	return mesh, warn, nil
}

func decodeGridEntry(c *cursor.Cursor, off, x, y int) (entry GridEntry, warns errors.Errors, err error) {
	entry = GridEntry{X: x, Y: y}
	if err := c.Goto(off); err != nil {
		return entry, nil, DataError{Offset: int64(off), Cause: err}
	}
	if entry.Info, err = c.U32(); err != nil {
		return entry, nil, DataError{Offset: int64(c.Offset()), Cause: err}
	}

	type geometry struct{ vis, geo uint32 }
	var list []geometry
	for {
		vis, err := c.U32()
		if err != nil {
			return entry, nil, DataError{Offset: int64(c.Offset()), Cause: err}
		}
		if vis == 0 {
			break
		}
		geo, err := c.U32()
		if err != nil {
			return entry, nil, DataError{Offset: int64(c.Offset()), Cause: err}
		}
		if geo == 0 {
			break
		}
		list = append(list, geometry{vis, geo})
	}

	entry.MeshEntries = make([]MeshEntry, len(list))
	for i, g := range list {
		ws, err := entry.MeshEntries[i].decode(c, g.vis, g.geo)
		if err != nil {
			return entry, nil, err
		}
		for _, w := range ws {
			w.X, w.Y, w.Mesh = x, y, i
			warns = append(warns, w)
		}
	}
	return entry, warns, nil
}

func (e *MeshEntry) decode(c *cursor.Cursor, vis, geo uint32) (warns []MeshWarning, err error) {
	var m Matrix
	if err := c.Goto(int(vis)); err != nil {
		return nil, DataError{Offset: int64(vis), Cause: err}
	}
	for i := range m {
		for j := range m[i] {
			if m[i][j], err = c.F32(); err != nil {
				return nil, DataError{Offset: int64(c.Offset()), Cause: err}
			}
		}
	}

	if err := c.Goto(int(geo)); err != nil {
		return nil, DataError{Offset: int64(geo), Cause: err}
	}
	var offsets [3]uint32
	for i := range offsets {
		if offsets[i], err = c.U32(); err != nil {
			return nil, DataError{Offset: int64(c.Offset()), Cause: err}
		}
	}
	vertexOffset, normalOffset, triangleOffset := offsets[0], offsets[1], offsets[2]
	triangleCount, err := c.U16()
	if err != nil {
		return nil, DataError{Offset: int64(c.Offset()), Cause: err}
	}
	if e.Flags, err = c.U16(); err != nil {
		return nil, DataError{Offset: int64(c.Offset()), Cause: err}
	}
	if normalOffset < vertexOffset || triangleOffset < normalOffset {
		return nil, DataError{Offset: int64(geo), Cause: ErrInvalidGeometryOffsets}
	}

	// Counts are implied by the distance between arrays.
	vertexCount := int(normalOffset-vertexOffset) / pointSize
	normalCount := int(triangleOffset-normalOffset) / pointSize

	if e.Vertices, err = readPoints(c, int(vertexOffset), vertexCount); err != nil {
		return nil, err
	}
	for i, p := range e.Vertices {
		e.Vertices[i] = m.Transform(p)
	}
	if c.Offset() != int(normalOffset) {
		warns = append(warns, MeshWarning{Expected: int(normalOffset), Actual: c.Offset()})
	}

	if e.Normals, err = readPoints(c, int(normalOffset), normalCount); err != nil {
		return nil, err
	}
	for i := range e.Normals {
		e.Normals[i].Y = -e.Normals[i].Y
	}
	if c.Offset() != int(triangleOffset) {
		warns = append(warns, MeshWarning{Expected: int(triangleOffset), Actual: c.Offset()})
	}

	// A positive determinant mirrors the geometry, which reverses winding.
	flip := m.Determinant() > 0
	if err := c.Goto(int(triangleOffset)); err != nil {
		return nil, DataError{Offset: int64(triangleOffset), Cause: err}
	}
	if int(triangleCount)*8 > c.Remaining() {
		return nil, DataError{Offset: int64(triangleOffset), Cause: cursor.RangeError{Offset: int(triangleOffset), Length: int(triangleCount) * 8, Size: c.Len()}}
	}
	e.Triangles = make([]Triangle, triangleCount)
	for i := range e.Triangles {
		var v [4]uint32
		for j := range v {
			n, _ := c.U16()
			v[j] = uint32(n & IndexMask)
		}
		t := Triangle{V1: v[0], V2: v[1], V3: v[2], Normal: v[3]}
		if flip {
			t.V1, t.V3 = t.V3, t.V1
		}
		e.Triangles[i] = t
	}
	return warns, nil
}

// readPoints reads n points at offset.
func readPoints(c *cursor.Cursor, offset, n int) ([]Point3D, error) {
	if err := c.Goto(offset); err != nil {
		return nil, DataError{Offset: int64(offset), Cause: err}
	}
	if n*pointSize > c.Remaining() {
		return nil, DataError{Offset: int64(offset), Cause: cursor.RangeError{Offset: offset, Length: n * pointSize, Size: c.Len()}}
	}
	points := make([]Point3D, n)
	for i := range points {
		points[i].X, _ = c.F32()
		points[i].Y, _ = c.F32()
		points[i].Z, _ = c.F32()
	}
	return points, nil
}
