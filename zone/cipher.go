package zone

import (
	"github.com/xidats/dats/cursor"
)

// Chunk bodies are obfuscated by up to three schemes. Each scheme is its own
// inverse, and touches neither its marker bytes nor the bytes its key is
// derived from, so applying a scheme twice restores the body.
//
// Every scheme checks its marker and returns without change when the marker
// is absent. Each function modifies b in place, and checks every range it
// will touch before modifying anything.

// XORSpans applies the span cipher, marked by 0x1B at offset 3. Spans of 16
// to 23 bytes selected by a running key are inverted, then the 16-byte name
// of each node is XORed with 0x55.
func XORSpans(b []byte) error {
	if len(b) < 8 || b[3] != 0x1B {
		return nil
	}
	c := cursor.New(b)
	n, _ := c.U32At(0)
	n &= 0xFFFFFF
	if int(n) > len(b) {
		return DataError{Offset: 0, Cause: cursor.RangeError{Offset: 0, Length: int(n), Size: len(b)}}
	}
	nodes, _ := c.U32At(4)
	nodes &= 0xFFFFFF
	if nodes > 0 {
		last := 32 + (int(nodes)-1)*100
		if err := c.Goto(last); err != nil || c.Remaining() < 16 {
			return DataError{Offset: 4, Cause: cursor.RangeError{Offset: last, Length: 16, Size: len(b)}}
		}
	}

	key := uint32(keyTable[b[7]^0xFF])
	var counter uint32
	for pos := uint32(8); pos < n; {
		span := (key>>4)&7 + 16
		if key&1 == 1 && pos+span < n {
			c.XorAt(int(pos), int(span), 0xFF)
		}
		counter++
		key += counter
		pos += span
	}
	for i := 0; i < int(nodes); i++ {
		c.XorAt(32+i*100, 16, 0x55)
	}
	return nil
}

// XORStream applies the stream cipher, marked by 0x05 at offset 3. Every
// byte from offset 8 to the length at offset 0 is XORed with a byte of a
// running key.
func XORStream(b []byte) error {
	if len(b) < 8 || b[3] != 0x05 {
		return nil
	}
	c := cursor.New(b)
	n, _ := c.U32At(0)
	n &= 0xFFFFFF
	if int(n) > len(b) {
		return DataError{Offset: 0, Cause: cursor.RangeError{Offset: 0, Length: int(n), Size: len(b)}}
	}

	key := uint32(keyTable[b[5]^0xF0])
	var counter uint32
	for pos := 8; pos < int(n); pos++ {
		x := key<<8 | key
		counter++
		key += counter
		// The shift uses the key between its two advances.
		c.XorAt(pos, 1, byte(x>>(key&7)))
		counter++
		key += counter
		key &= 0xFF
	}
	return nil
}

// SwapBlocks applies the block swap, which is present unless offsets 6 and
// 7 both hold 0xFF. The body after offset 8 is split into two halves, and
// corresponding 8-byte blocks of each half are exchanged where a chained
// key selects them.
func SwapBlocks(b []byte) error {
	if len(b) < 8 || (b[6] == 0xFF && b[7] == 0xFF) {
		return nil
	}
	c := cursor.New(b)
	n, _ := c.U32At(0)
	n &= 0xFFFFFF
	if n < 8 {
		return nil
	}
	count := int((n-8)&^0xF) / 2
	if 8+2*count > len(b) {
		return DataError{Offset: 0, Cause: cursor.RangeError{Offset: 8, Length: 2 * count, Size: len(b)}}
	}

	direct := uint32(b[5] ^ 0xF0)
	chained := uint32(keyTable[direct])
	for i := 0; i < count; i += 8 {
		if chained&1 == 1 {
			c.Swap8(8+i, 8+count+i)
		}
		direct += 9
		chained += direct
	}
	return nil
}

// DecryptModel decrypts the body of a zone model chunk in place.
func DecryptModel(b []byte) error {
	return XORSpans(b)
}

// EncryptModel reverses DecryptModel.
func EncryptModel(b []byte) error {
	return XORSpans(b)
}

// DecryptMMB decrypts the body of an MMB chunk in place.
func DecryptMMB(b []byte) error {
	if err := XORStream(b); err != nil {
		return err
	}
	return SwapBlocks(b)
}

// EncryptMMB reverses DecryptMMB.
func EncryptMMB(b []byte) error {
	if err := SwapBlocks(b); err != nil {
		return err
	}
	return XORStream(b)
}

// Decrypt decrypts b in place according to the chunk type. Types without a
// cipher are left unchanged.
func Decrypt(typ uint8, b []byte) error {
	switch typ {
	case TypeModel:
		return DecryptModel(b)
	case TypeMMB:
		return DecryptMMB(b)
	}
	return nil
}

// Encrypt reverses Decrypt.
func Encrypt(typ uint8, b []byte) error {
	switch typ {
	case TypeModel:
		return EncryptModel(b)
	case TypeMMB:
		return EncryptMMB(b)
	}
	return nil
}
