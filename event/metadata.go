package event

// MaxOpcode is the highest opcode known to the event VM. Bytes above it do
// not start an instruction.
const MaxOpcode = 0xD9

// EmptyOpcode marks an explicitly empty instruction. An Opcode with this
// value and no parameters encodes to nothing.
const EmptyOpcode = 0xFF

// Resolver determines the total size of an instruction (opcode byte
// included) whose size cannot be derived from Metadata.Sizes alone. data
// holds the bytes following the opcode up to the end of the series, and
// prior holds the instructions already decoded in the same series. ok is
// false if the size cannot be determined.
type Resolver func(opcode byte, data []byte, prior []Opcode) (size int, ok bool)

// Metadata describes an opcode.
type Metadata struct {
	// Description is a human-readable summary of what the opcode does.
	Description string
	// Sizes lists the possible total sizes of the instruction, including
	// the opcode byte.
	Sizes []int
	// Resolver, if non-nil, resolves the size when more than one candidate
	// remains after lookahead.
	Resolver Resolver
}

// ValidOpcode returns whether b is an opcode known to the event VM.
func ValidOpcode(b byte) bool {
	return b <= MaxOpcode
}

// Lookup returns the metadata of an opcode.
func Lookup(opcode byte) (m Metadata, ok bool) {
	if !ValidOpcode(opcode) {
		return Metadata{}, false
	}
	m = opcodeTable[opcode]
	if len(m.Sizes) == 0 {
		return Metadata{}, false
	}
	return m, true
}

// resolveModeByte returns a Resolver that selects a size by the first
// parameter byte.
func resolveModeByte(sizes map[byte]int) Resolver {
	return func(opcode byte, data []byte, prior []Opcode) (int, bool) {
		if len(data) < 1 {
			return 0, false
		}
		size, ok := sizes[data[0]]
		return size, ok
	}
}

// resolveAlternating returns a Resolver for opcodes that are issued in
// pairs within a series, such as a camera lock followed by its release. The
// first of each pair has size first, the second has size second.
func resolveAlternating(opcode byte, first, second int) Resolver {
	return func(_ byte, data []byte, prior []Opcode) (int, bool) {
		n := 0
		for _, op := range prior {
			if byte(op.Opcode) == opcode {
				n++
			}
		}
		if n%2 == 0 {
			return first, true
		}
		return second, true
	}
}

// resolve0x79 reads the look-at mode.
func resolve0x79(opcode byte, data []byte, prior []Opcode) (int, bool) {
	if len(data) < 2 {
		return 0, false
	}
	switch data[0] {
	case 1:
		return 12, true
	case 0, 2:
		return 10, true
	}
	return 0, false
}
