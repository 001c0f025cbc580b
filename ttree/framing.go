package ttree

// WriteHashtag writes h as a 4-byte, big-endian hashtag: the 31-bit
// wire value of h occupies bits 0-30 of the 4-byte word, and hasArg is
// OR'd into the high bit of the first byte.
func WriteHashtag(buf *Buffer, h Hash, hasArg bool) {
	span := buf.Alloc(4)
	bits := h.wireBits()
	span[0] = byte(bits >> 24)
	span[1] = byte(bits >> 16)
	span[2] = byte(bits >> 8)
	span[3] = byte(bits)
	if hasArg {
		span[0] |= 0x80
	}
}

// ReadHashtag reads a 4-byte hashtag from data at *pos and advances
// *pos by 4. It returns the sign-extended Hash and whether the
// has-argument flag was set.
func ReadHashtag(data []byte, pos *int) (Hash, bool, error) {
	if *pos+4 > len(data) {
		return 0, false, corrupted("hashtag")
	}
	b0, b1, b2, b3 := data[*pos], data[*pos+1], data[*pos+2], data[*pos+3]
	*pos += 4
	hasArg := b0&0x80 != 0
	bits := uint32(b0&0x7f)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
	return signExtend31(bits), hasArg, nil
}

// ReadFieldHashtag is identical to ReadHashtag but additionally requires
// the has-argument bit to be set, since a record field always carries a
// value. It does not return the flag: for a field hashtag it is an
// invariant, not data.
func ReadFieldHashtag(data []byte, pos *int) (Hash, error) {
	start := *pos
	h, hasArg, err := ReadHashtag(data, pos)
	if err != nil {
		return 0, err
	}
	if !hasArg {
		*pos = start
		return 0, corrupted("invalid field hashtag")
	}
	return h, nil
}

// WriteNumtag writes i as a single byte with hasArg packed into the
// high bit. i must be in [0, 127]; a producer supplying a wider value
// has violated the constructor's own invariant, so this fails with
// MalformedInput rather than CorruptedData, which is reserved for
// readers.
func WriteNumtag(buf *Buffer, i uint8, hasArg bool) error {
	if i > 127 {
		return malformed("invalid numtag")
	}
	b := i
	if hasArg {
		b |= 0x80
	}
	buf.AddByte(b)
	return nil
}

// ReadNumtag reads a single numtag byte from data at *pos and advances
// *pos by 1.
func ReadNumtag(data []byte, pos *int) (uint8, bool, error) {
	if *pos+1 > len(data) {
		return 0, false, corrupted("numtag")
	}
	b := data[*pos]
	*pos++
	return b & 0x7f, b&0x80 != 0, nil
}
