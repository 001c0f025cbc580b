package frame

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/Neumenon/ttree/ttree"
)

// StateHash computes sha256(ttree.Encode(t)), for use as a frame's Base
// hash so a receiver can confirm it is patching forward from the state
// the sender thinks it is.
func StateHash(t *ttree.Tree) ([32]byte, error) {
	encoded, err := ttree.Encode(t)
	if err != nil {
		return [32]byte{}, err
	}
	return StateHashBytes(encoded), nil
}

// StateHashBytes computes sha256 of already-encoded bytes.
func StateHashBytes(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// VerifyBase reports whether current matches expected.
func VerifyBase(current, expected [32]byte) bool {
	return current == expected
}

// HashToHex renders h as lowercase hex.
func HashToHex(h [32]byte) string {
	return hex.EncodeToString(h[:])
}

// HexToHash parses a 64-character hex string into a 32-byte hash. It
// reports false on any length or digit mismatch rather than returning
// a partially-filled hash.
func HexToHash(s string) ([32]byte, bool) {
	var h [32]byte
	decoded, err := hex.DecodeString(s)
	if err != nil || len(decoded) != len(h) {
		return h, false
	}
	copy(h[:], decoded)
	return h, true
}
