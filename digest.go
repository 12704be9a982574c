package dats

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the size in bytes of a digest returned by Digest.
const DigestSize = 16

// Digest returns a hex-encoded 128-bit BLAKE2b digest of b. It is used to
// identify chunk bodies across files without comparing their content.
func Digest(b []byte) string {
	h, err := blake2b.New(DigestSize, nil)
	if err != nil {
		// Only reachable with an invalid size or key.
		panic(err)
	}
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}
