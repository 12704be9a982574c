// The zone package implements a codec for zone data DAT files.
//
// Zone data is a container of chunks. Each chunk starts with a 16-byte
// header holding a four character tag and a packed type and length word,
// followed by a body. The bodies of zone model and MMB chunks are
// obfuscated, and are decrypted before being decoded into a Model or an MMB.
// Chunks of other types, and chunks that fail to decrypt or decode, are kept
// as their stored bytes.
package zone

import (
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/anaminus/parse"
	"github.com/xidats/dats"
	"github.com/xidats/dats/cursor"
	"github.com/xidats/dats/errors"
)

// Chunk types with a decoder.
const (
	TypeModel uint8 = 0x1C // Zone model, holding the collision mesh.
	TypeMMB   uint8 = 0x2E // Vertex model.
)

// Other chunk types known to appear in zone data.
const (
	TypeImage     uint8 = 0x20
	TypeBone      uint8 = 0x29
	TypeVertex    uint8 = 0x2A
	TypeAnimation uint8 = 0x2B
)

// headerSize is the size of a chunk header.
const headerSize = 16

// minBody is the smallest body that is decrypted and decoded.
const minBody = 8

// Container is a decoded zone data file.
type Container struct {
	Chunks []Chunk `json:"chunks" yaml:"chunks"`
}

// Chunk is a single record of a container.
type Chunk struct {
	// Tag is the four character code of the chunk.
	Tag string `json:"tag" yaml:"tag"`
	// Type is the low 7 bits of the packed header word.
	Type uint8 `json:"type" yaml:"type"`
	// Attr is the top 4 bits of the packed header word.
	Attr uint8 `json:"attr,omitempty" yaml:"attr,omitempty"`

	Unknown08 uint32 `json:"unknown_0x08" yaml:"unknown_0x08"`
	Unknown0C uint32 `json:"unknown_0x0c" yaml:"unknown_0x0c"`

	// Digest is a fingerprint of the stored body.
	Digest string `json:"digest" yaml:"digest"`

	Kind  ChunkKind `json:"kind" yaml:"kind"`
	Model *Model    `json:"model,omitempty" yaml:"model,omitempty"`
	MMB   *MMB      `json:"mmb,omitempty" yaml:"mmb,omitempty"`
	// Data holds the stored body when Kind is KindUnknown.
	Data dats.HexBytes `json:"data,omitempty" yaml:"data,omitempty"`

	// Body is the decrypted body of a decoded chunk. The encoder encrypts
	// it again to produce the stored body. Model and MMB are decoded from
	// Body and are not read by the encoder.
	Body dats.HexBytes `json:"body,omitempty" yaml:"body,omitempty"`
}

// ChunkKind indicates how the body of a chunk was decoded.
type ChunkKind uint8

const (
	KindUnknown ChunkKind = iota
	KindModel
	KindMMB
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindModel:   "model",
	KindMMB:     "mmb",
}

func (k ChunkKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ChunkKind(%d)", uint8(k))
}

func (k ChunkKind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid chunk kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *ChunkKind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = ChunkKind(i)
			return nil
		}
	}
	return fmt.Errorf("invalid chunk kind %q", text)
}

// Length returns the length of the stored body.
func (ch *Chunk) Length() int {
	if ch.Kind == KindUnknown {
		return len(ch.Data)
	}
	return len(ch.Body)
}

// Decoder decodes zone data files.
type Decoder struct {
	// Logger receives a warning record for every chunk that could not be
	// decoded. May be nil.
	Logger *slog.Logger

	// If NoDecode is true, no chunk bodies are decrypted or decoded, and
	// every chunk is returned with KindUnknown.
	NoDecode bool
}

// Decode decodes a container from b. Chunks that could not be decrypted or
// decoded are kept as stored bytes and reported in warn.
func (d Decoder) Decode(b []byte) (ct *Container, warn, err error) {
	c := cursor.New(b)
	fr := parse.NewBinaryReader(c)

	ct = &Container{}
	for i := 0; c.Remaining() > 0; i++ {
		var ch Chunk
		body, err := ch.decodeHeader(c, fr)
		if err != nil {
			return nil, nil, ChunkError{Index: i, Tag: ch.Tag, Cause: err}
		}
		if !d.NoDecode {
			w, err := ch.decodeBody(body)
			for _, cause := range errors.List(errors.Union(err, w)) {
				warn = errors.Union(warn, ChunkError{Index: i, Tag: ch.Tag, Cause: cause})
			}
		}
		ct.Chunks = append(ct.Chunks, ch)
	}
	errors.List(warn).Log(d.Logger, "zone data degraded")
	return ct, warn, nil
}

func readError(c *cursor.Cursor, fr *parse.BinaryReader) error {
	err := fr.Err()
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return DataError{Offset: int64(c.Offset()), Cause: err}
}

// decodeHeader reads the header of a chunk, and returns the stored body.
func (ch *Chunk) decodeHeader(c *cursor.Cursor, fr *parse.BinaryReader) (body []byte, err error) {
	start := c.Offset()
	var tag [4]byte
	if fr.Bytes(tag[:]) {
		return nil, readError(c, fr)
	}
	if !utf8.Valid(tag[:]) {
		return nil, DataError{Offset: int64(start), Cause: ErrInvalidTag}
	}
	ch.Tag = string(tag[:])

	var packed uint32
	if fr.Number(&packed) {
		return nil, readError(c, fr)
	}
	if fr.Number(&ch.Unknown08) {
		return nil, readError(c, fr)
	}
	if fr.Number(&ch.Unknown0C) {
		return nil, readError(c, fr)
	}
	ch.Type = uint8(packed & 0x7F)
	ch.Attr = uint8(packed >> 28)

	length := int((packed&0x0FFFFFFF)>>7)<<4 - headerSize
	if length < 0 {
		return nil, DataError{Offset: int64(start + 4), Cause: ErrInvalidChunkLength}
	}
	if body, err = c.Take(length); err != nil {
		return nil, DataError{Offset: int64(c.Offset()), Cause: err}
	}
	ch.Kind = KindUnknown
	ch.Data = body
	ch.Digest = dats.Digest(body)
	return body, nil
}

// decodeBody decrypts and decodes the stored body according to the type of
// the chunk. If err is non-nil, the chunk is left as KindUnknown with body
// as its data.
func (ch *Chunk) decodeBody(body []byte) (warn, err error) {
	ch.Kind = KindUnknown
	ch.Data = body
	if len(body) < minBody {
		return nil, nil
	}
	switch ch.Type {
	case TypeModel, TypeMMB:
	default:
		return nil, nil
	}

	plain := make([]byte, len(body))
	copy(plain, body)
	if err := Decrypt(ch.Type, plain); err != nil {
		return nil, err
	}

	switch ch.Type {
	case TypeModel:
		m, w, err := DecodeModel(plain)
		if err != nil {
			return nil, err
		}
		ch.Kind = KindModel
		ch.Model = m
		warn = w
	case TypeMMB:
		m, err := DecodeMMB(plain)
		if err != nil {
			return nil, err
		}
		ch.Kind = KindMMB
		ch.MMB = m
	}
	ch.Body = plain
	ch.Data = nil
	return warn, nil
}

// storedBody returns the body as written to a file.
func (ch *Chunk) storedBody() ([]byte, error) {
	if ch.Kind == KindUnknown {
		return ch.Data, nil
	}
	if ch.Body == nil {
		return nil, ErrMissingBody
	}
	b := make([]byte, len(ch.Body))
	copy(b, ch.Body)
	if err := Encrypt(ch.Type, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Encoder encodes zone data files.
type Encoder struct{}

// Encode encodes ct. Decoded chunks are encrypted from their Body, and other
// chunks are written from their Data.
func (e Encoder) Encode(ct *Container) ([]byte, error) {
	if ct == nil {
		return nil, ErrNilContainer
	}
	c := cursor.Sized(0)
	fw := parse.NewBinaryWriter(c)
	for i := range ct.Chunks {
		ch := &ct.Chunks[i]
		if err := ch.encode(fw); err != nil {
			return nil, ChunkError{Index: i, Tag: ch.Tag, Cause: err}
		}
	}
	if _, err := fw.End(); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

func (ch *Chunk) encode(fw *parse.BinaryWriter) error {
	if len(ch.Tag) != 4 || !utf8.ValidString(ch.Tag) {
		return ErrInvalidTag
	}
	body, err := ch.storedBody()
	if err != nil {
		return err
	}
	size := len(body) + headerSize
	if size%16 != 0 || size>>4 >= 1<<21 {
		return ErrInvalidChunkLength
	}
	packed := uint32(ch.Type&0x7F) | uint32(size>>4)<<7 | uint32(ch.Attr&0xF)<<28

	if fw.Bytes([]byte(ch.Tag)) {
		return fw.Err()
	}
	if fw.Number(packed) {
		return fw.Err()
	}
	if fw.Number(ch.Unknown08) {
		return fw.Err()
	}
	if fw.Number(ch.Unknown0C) {
		return fw.Err()
	}
	if fw.Bytes(body) {
		return fw.Err()
	}
	return nil
}
