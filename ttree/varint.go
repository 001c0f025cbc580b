package ttree

import "encoding/binary"

// WriteUvint appends the LEB128 unsigned varint encoding of u to buf.
func WriteUvint(buf *Buffer, u uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], u)
	buf.AddBytes(tmp[:n])
}

// ReadUvint reads a LEB128 unsigned varint from data starting at *pos
// and advances *pos past it. It fails with CorruptedData if data is
// exhausted before a terminating byte is found.
func ReadUvint(data []byte, pos *int) (uint64, error) {
	u, n := binary.Uvarint(data[*pos:])
	if n <= 0 {
		return 0, corrupted("uvint")
	}
	*pos += n
	return u, nil
}

// WriteSvint appends the zigzag-encoded signed varint encoding of i to
// buf: the sign bit is folded into bit 0 so that small magnitudes
// (positive or negative) both encode short, then the result is written
// with the same LEB128 scheme as WriteUvint.
func WriteSvint(buf *Buffer, i int64) {
	WriteUvint(buf, zigzagEncode(i))
}

// ReadSvint reads a zigzag signed varint from data starting at *pos and
// advances *pos past it.
func ReadSvint(data []byte, pos *int) (int64, error) {
	u, err := ReadUvint(data, pos)
	if err != nil {
		return 0, corrupted("svint")
	}
	return zigzagDecode(u), nil
}

func zigzagEncode(i int64) uint64 {
	return uint64((i << 1) ^ (i >> 63))
}

func zigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
