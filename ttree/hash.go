package ttree

import "fmt"

// Hash is a 31-bit field/variant name hash. It is carried in the low 31
// bits of a 32-bit word; a set bit 30 is sign-extended up through bit
// 31 so that Hash behaves as a 31-bit signed integer under ordinary Go
// comparison and map-key use. The on-wire representation is always the
// original 31 bits, unsigned, in 4 bytes — see WriteHashtag.
type Hash int32

// HashName computes the 31-bit field/variant hash of s. The recurrence
// is acc = 223*acc + byte(s[i]) over the bytes of s, carried in 32-bit
// unsigned arithmetic, masked to the low 31 bits, and then sign-extended
// from bit 30. HashName("") is 0. This function is part of the wire
// format's contract and must never change.
func HashName(s string) Hash {
	var acc uint32
	for i := 0; i < len(s); i++ {
		acc = 223*acc + uint32(s[i])
	}
	return signExtend31(acc & 0x7fffffff)
}

// signExtend31 treats the low 31 bits of v as a signed 31-bit integer
// and extends its sign bit (bit 30) up to bit 31.
func signExtend31(v uint32) Hash {
	v &= 0x7fffffff
	if v&0x40000000 != 0 {
		v |= 0x80000000
	}
	return Hash(int32(v))
}

// wireBits returns the raw unsigned 31-bit value that belongs on the
// wire for h, undoing any sign extension.
func (h Hash) wireBits() uint32 {
	return uint32(h) & 0x7fffffff
}

// String renders h as the "#" + 8 lowercase hex digit placeholder used
// by Unhash for names it does not recognize.
func (h Hash) String() string {
	return fmt.Sprintf("#%08x", uint32(h.wireBits()))
}

// Unhash resolves a Hash to the name that produced it. Implementations
// returned by NewUnhash never fail: an unrecognized hash resolves to
// its hex placeholder form. The recorded name is purely informational —
// correctness of decoded data never depends on it.
type Unhash func(h Hash) string

// DefaultUnhash returns the Unhash used when a decode call supplies
// none: every hash resolves to its hex placeholder.
func DefaultUnhash() Unhash {
	return func(h Hash) string { return h.String() }
}

// NewUnhash builds an Unhash from a list of candidate field/variant
// names. Multiple occurrences of the same name are fine; two distinct
// names that hash to the same value are a registration failure,
// reported as a *RegistrationError naming both strings.
func NewUnhash(names []string) (Unhash, error) {
	byHash := make(map[Hash]string, len(names))
	for _, name := range names {
		h := HashName(name)
		if existing, ok := byHash[h]; ok {
			if existing != name {
				return nil, &RegistrationError{NameA: existing, NameB: name, Hash: h}
			}
			continue
		}
		byHash[h] = name
	}
	return func(h Hash) string {
		if name, ok := byHash[h]; ok {
			return name
		}
		return h.String()
	}, nil
}
