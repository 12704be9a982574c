package zone

import (
	"github.com/anaminus/parse"
	"github.com/xidats/dats"
	"github.com/xidats/dats/cursor"
)

// Offsets within the header of a zone model body.
const (
	modelObjectsStart = 0x20
	modelHeaderEnd    = 0x1C
	objectSize        = 0x64
	shortnameSize     = 0x4C
)

// Model is the decoded body of a zone model chunk.
type Model struct {
	LenAndType       uint32 `json:"len_and_type" yaml:"len_and_type"`
	NodeCountAndUnk  uint32 `json:"node_count_and_unk" yaml:"node_count_and_unk"`
	MeshOffset       uint32 `json:"mesh_offset" yaml:"mesh_offset"`
	GridWidth        uint16 `json:"grid_width" yaml:"grid_width"`
	GridHeight       uint16 `json:"grid_height" yaml:"grid_height"`
	BucketWidth      uint8  `json:"bucket_width" yaml:"bucket_width"`
	BucketHeight     uint8  `json:"bucket_height" yaml:"bucket_height"`
	QuadtreeOffset   uint32 `json:"quadtree_offset" yaml:"quadtree_offset"`
	ObjectsEndOffset uint32 `json:"objects_end_offset" yaml:"objects_end_offset"`
	ShortnameOffset  uint32 `json:"shortname_offset" yaml:"shortname_offset"`

	// UnknownData holds the bytes between the header and the mesh section.
	UnknownData dats.HexBytes `json:"unknown_data" yaml:"unknown_data"`

	MeshModelCount           uint32 `json:"mesh_model_count" yaml:"mesh_model_count"`
	MeshModelData            uint32 `json:"mesh_model_data" yaml:"mesh_model_data"`
	MeshGridBucketListsCount uint32 `json:"mesh_grid_bucket_lists_count" yaml:"mesh_grid_bucket_lists_count"`
	MeshGridBucketLists      uint32 `json:"mesh_grid_bucket_lists" yaml:"mesh_grid_bucket_lists"`
	GridOffset               uint32 `json:"grid_offset" yaml:"grid_offset"`
	MapIDListOffset          uint32 `json:"map_id_list_offset" yaml:"map_id_list_offset"`
	MapIDListCount           uint32 `json:"map_id_list_count" yaml:"map_id_list_count"`

	CollisionMesh *CollisionMesh `json:"collision_mesh" yaml:"collision_mesh"`
}

// NodeCount returns the number of nodes named in the header.
func (m *Model) NodeCount() int {
	return int(m.NodeCountAndUnk & 0xFFFFFF)
}

// ObjectCount returns the number of objects between the header and the
// objects end offset.
func (m *Model) ObjectCount() int {
	if m.ObjectsEndOffset < modelObjectsStart {
		return 0
	}
	return int(m.ObjectsEndOffset-modelObjectsStart) / objectSize
}

// ShortnameCount returns the number of short names between the short name
// offset and the mesh section.
func (m *Model) ShortnameCount() int {
	if m.MeshOffset < m.ShortnameOffset {
		return 0
	}
	return int(m.MeshOffset-m.ShortnameOffset) / shortnameSize
}

// DecodeModel decodes the decrypted body of a zone model chunk, including
// its collision mesh.
func DecodeModel(b []byte) (m *Model, warn, err error) {
	c := cursor.New(b)
	fr := parse.NewBinaryReader(c)
	m = &Model{}

	if fr.Number(&m.LenAndType) {
		return nil, nil, readError(c, fr)
	}
	if fr.Number(&m.NodeCountAndUnk) {
		return nil, nil, readError(c, fr)
	}
	if fr.Number(&m.MeshOffset) {
		return nil, nil, readError(c, fr)
	}
	if m.MeshOffset < modelHeaderEnd || int64(m.MeshOffset) >= int64(len(b)) {
		return nil, nil, DataError{Offset: 8, Cause: ErrInvalidMeshOffset}
	}

	var gw, gh uint8
	if fr.Number(&gw) {
		return nil, nil, readError(c, fr)
	}
	if fr.Number(&gh) {
		return nil, nil, readError(c, fr)
	}
	m.GridWidth = uint16(gw) * 10
	m.GridHeight = uint16(gh) * 10
	if fr.Number(&m.BucketWidth) {
		return nil, nil, readError(c, fr)
	}
	if fr.Number(&m.BucketHeight) {
		return nil, nil, readError(c, fr)
	}
	for _, v := range []*uint32{&m.QuadtreeOffset, &m.ObjectsEndOffset, &m.ShortnameOffset} {
		if fr.Number(v) {
			return nil, nil, readError(c, fr)
		}
	}

	if m.UnknownData, err = c.Take(int(m.MeshOffset) - c.Offset()); err != nil {
		return nil, nil, DataError{Offset: int64(c.Offset()), Cause: err}
	}
	for _, v := range []*uint32{
		&m.MeshModelCount,
		&m.MeshModelData,
		&m.MeshGridBucketListsCount,
		&m.MeshGridBucketLists,
		&m.GridOffset,
		&m.MapIDListOffset,
		&m.MapIDListCount,
	} {
		if fr.Number(v) {
			return nil, nil, readError(c, fr)
		}
	}

	m.CollisionMesh, warn, err = DecodeCollisionMesh(b, m.GridOffset, m.GridWidth, m.GridHeight)
	if err != nil {
		return nil, nil, err
	}
	return m, warn, nil
}
