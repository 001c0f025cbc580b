package ttree

import "math/big"

// Int128FromBig renders v as 16 raw big-endian, two's-complement bytes
// suitable for the Int128 constructor. It panics if v does not fit in
// 128 bits; callers that accept untrusted magnitudes should check
// v.BitLen() first.
func Int128FromBig(v *big.Int) [16]byte {
	limit := new(big.Int).Lsh(big.NewInt(1), 127)
	if v.Cmp(limit) >= 0 || v.Cmp(new(big.Int).Neg(limit)) < 0 {
		panic("ttree: Int128FromBig: value does not fit in 128 bits")
	}
	var out [16]byte
	if v.Sign() >= 0 {
		v.FillBytes(out[:])
		return out
	}
	// Two's complement: 2^128 + v, which is positive since |v| <= 2^127.
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	mod.Add(mod, v)
	mod.FillBytes(out[:])
	return out
}

// Int128FromInt64 renders v as a 16-byte two's-complement big-endian
// payload, sign-extended.
func Int128FromInt64(v int64) [16]byte {
	return Int128FromBig(big.NewInt(v))
}

// Int128ToBig interprets a 16-byte payload as a two's-complement signed
// big integer.
func Int128ToBig(v [16]byte) *big.Int {
	n := new(big.Int).SetBytes(v[:])
	if v[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		n.Sub(n, mod)
	}
	return n
}
