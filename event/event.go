// The event package implements a decoder and encoder for event DAT files.
//
// An event file holds the bytecode run by the client for cutscenes and NPC
// interactions. The file is divided into blocks, one per actor. Each block
// carries a table of tags pointing into the block's instruction stream,
// where each tag begins a series of instructions.
//
// Instructions are variable length, and the stream does not encode their
// lengths. The decoder derives the length of each instruction from a table
// of opcode metadata, a lookahead heuristic and, for a few opcodes, a
// resolver function. A series that cannot be decoded with confidence is kept
// as raw bytes and reported as a warning, which means any file decodes to a
// value that encodes back to the same bytes.
package event

import (
	"github.com/xidats/dats"
)

// MaxBlocks is the largest block count accepted in a header.
const MaxBlocks = 1024

// PlayerActor is the actor number of blocks that belong to the player or the
// zone rather than to an entity.
const PlayerActor = 0x7FFFFFFF

// File is a decoded event file.
type File struct {
	Header Header  `json:"header" yaml:"header"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Header lists the blocks of a file.
type Header struct {
	BlockCount uint32   `json:"block_count" yaml:"block_count"`
	BlockSizes []uint32 `json:"block_sizes" yaml:"block_sizes"`
}

// Block holds the events of one actor.
type Block struct {
	// ActorNumber is the server id of the entity that owns the block, or
	// PlayerActor.
	ActorNumber uint32 `json:"actor_number" yaml:"actor_number"`
	TagCount    uint32 `json:"tag_count" yaml:"tag_count"`
	// TagOffsets are the offsets of each series within the instruction
	// stream. They are recomputed from the series when encoding.
	TagOffsets    []uint16 `json:"tag_offsets" yaml:"tag_offsets"`
	EventExecNums []uint16 `json:"event_exec_nums" yaml:"event_exec_nums"`
	// ImmedData is a table of constants referenced by instructions, such
	// as item and string ids.
	ImmedData []uint32 `json:"immed_data" yaml:"immed_data"`
	// Leading holds stream bytes that precede the first series.
	Leading dats.HexBytes `json:"leading,omitempty" yaml:"leading,omitempty"`
	Series  []Series      `json:"series" yaml:"series"`
}

// IsPlayer returns whether the block belongs to the player or zone.
func (b *Block) IsPlayer() bool {
	return b.ActorNumber == PlayerActor
}

// streamLen returns the length of the instruction stream of the block,
// excluding padding.
func (b *Block) streamLen() int {
	n := len(b.Leading)
	for _, s := range b.Series {
		n += s.Len()
	}
	return n
}

// Series is the instructions run by one event.
type Series struct {
	// ID is the event number that runs the series.
	ID   uint16      `json:"id" yaml:"id"`
	Kind PayloadKind `json:"kind" yaml:"kind"`
	// Opcodes holds the instructions when Kind is PayloadOpcodes.
	Opcodes []Opcode `json:"opcodes,omitempty" yaml:"opcodes,omitempty"`
	// Raw holds the undecoded bytes when Kind is PayloadRaw.
	Raw dats.HexBytes `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Len returns the number of bytes the series occupies in the stream.
func (s *Series) Len() int {
	if s.Kind == PayloadRaw {
		return len(s.Raw)
	}
	n := 0
	for _, op := range s.Opcodes {
		n += op.Len()
	}
	return n
}

// appendTo appends the encoded series to b.
func (s *Series) appendTo(b []byte) []byte {
	if s.Kind == PayloadRaw {
		return append(b, s.Raw...)
	}
	for _, op := range s.Opcodes {
		if op.IsEmpty() {
			continue
		}
		b = append(b, byte(op.Opcode))
		b = append(b, op.Params...)
	}
	return b
}

// Opcode is a single instruction.
type Opcode struct {
	Opcode dats.HexByte  `json:"opcode" yaml:"opcode"`
	Params dats.HexBytes `json:"params" yaml:"params"`
	// Description is informational only, and is ignored by the encoder.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsValid returns whether the opcode is known to the event VM.
func (op Opcode) IsValid() bool {
	return ValidOpcode(byte(op.Opcode))
}

// IsEmpty returns whether op is the empty instruction, which encodes to
// nothing.
func (op Opcode) IsEmpty() bool {
	return op.Opcode == EmptyOpcode && len(op.Params) == 0
}

// Len returns the encoded length of the instruction.
func (op Opcode) Len() int {
	if op.IsEmpty() {
		return 0
	}
	return 1 + len(op.Params)
}
