package ttree

import "math"

// writeInt8 writes the raw byte v.
func writeInt8(buf *Buffer, v uint8) {
	buf.AddByte(v)
}

func readInt8(data []byte, pos *int) (uint8, error) {
	if *pos+1 > len(data) {
		return 0, corrupted("int8")
	}
	v := data[*pos]
	*pos++
	return v, nil
}

// writeInt16 writes v big-endian in 2 bytes.
func writeInt16(buf *Buffer, v uint16) {
	span := buf.Alloc(2)
	span[0] = byte(v >> 8)
	span[1] = byte(v)
}

func readInt16(data []byte, pos *int) (uint16, error) {
	if *pos+2 > len(data) {
		return 0, corrupted("int16")
	}
	v := uint16(data[*pos])<<8 | uint16(data[*pos+1])
	*pos += 2
	return v, nil
}

// writeInt32 writes v big-endian, signed, in 4 bytes.
func writeInt32(buf *Buffer, v int32) {
	span := buf.Alloc(4)
	u := uint32(v)
	span[0] = byte(u >> 24)
	span[1] = byte(u >> 16)
	span[2] = byte(u >> 8)
	span[3] = byte(u)
}

func readInt32(data []byte, pos *int) (int32, error) {
	if *pos+4 > len(data) {
		return 0, corrupted("int32")
	}
	u := uint32(data[*pos])<<24 | uint32(data[*pos+1])<<16 | uint32(data[*pos+2])<<8 | uint32(data[*pos+3])
	*pos += 4
	return int32(u), nil
}

// writeInt64 writes v big-endian, signed, in 8 bytes.
func writeInt64(buf *Buffer, v int64) {
	span := buf.Alloc(8)
	u := uint64(v)
	for i := 0; i < 8; i++ {
		span[i] = byte(u >> uint(56-8*i))
	}
}

func readInt64(data []byte, pos *int) (int64, error) {
	if *pos+8 > len(data) {
		return 0, corrupted("int64")
	}
	var u uint64
	for i := 0; i < 8; i++ {
		u = u<<8 | uint64(data[*pos+i])
	}
	*pos += 8
	return int64(u), nil
}

// writeInt128 writes the 16 raw bytes of v unchanged.
func writeInt128(buf *Buffer, v [16]byte) {
	span := buf.Alloc(16)
	copy(span, v[:])
}

func readInt128(data []byte, pos *int) ([16]byte, error) {
	var v [16]byte
	if *pos+16 > len(data) {
		return v, corrupted("int128")
	}
	copy(v[:], data[*pos:*pos+16])
	*pos += 16
	return v, nil
}

// writeFloat64 writes the IEEE-754 bit pattern of v, big-endian, via an
// int64 bit-cast — never the decimal text of v.
func writeFloat64(buf *Buffer, v float64) {
	writeInt64(buf, int64(math.Float64bits(v)))
}

func readFloat64(data []byte, pos *int) (float64, error) {
	bits, err := readInt64(data, pos)
	if err != nil {
		return 0, corrupted("float64")
	}
	return math.Float64frombits(uint64(bits)), nil
}

// writeString writes uvint(len(s)) followed by the raw bytes of s.
func writeString(buf *Buffer, s []byte) {
	WriteUvint(buf, uint64(len(s)))
	buf.AddBytes(s)
}

func readString(data []byte, pos *int) ([]byte, error) {
	n, err := ReadUvint(data, pos)
	if err != nil {
		return nil, corrupted("string")
	}
	if n > uint64(len(data)-*pos) {
		return nil, corrupted("string")
	}
	s := data[*pos : *pos+int(n)]
	*pos += int(n)
	return s, nil
}

// ============================================================
// Tagged primitive helpers
//
// These let a consumer build custom encodings around individual
// primitives without materialising a Tree, per the format's public
// surface. Each Write* helper emits the primitive's tag byte followed
// by its body; each ReadUntagged* helper reads only the body, for use
// inside a context (array element, table cell) that already knows the
// kind from a shared tag.
// ============================================================

// WriteTaggedInt8 writes a tagged Int8 node.
func WriteTaggedInt8(buf *Buffer, v uint8) {
	buf.AddByte(byte(KindInt8))
	writeInt8(buf, v)
}

// WriteTaggedInt16 writes a tagged Int16 node.
func WriteTaggedInt16(buf *Buffer, v uint16) {
	buf.AddByte(byte(KindInt16))
	writeInt16(buf, v)
}

// WriteTaggedInt32 writes a tagged Int32 node.
func WriteTaggedInt32(buf *Buffer, v int32) {
	buf.AddByte(byte(KindInt32))
	writeInt32(buf, v)
}

// WriteTaggedInt64 writes a tagged Int64 node.
func WriteTaggedInt64(buf *Buffer, v int64) {
	buf.AddByte(byte(KindInt64))
	writeInt64(buf, v)
}

// WriteTaggedFloat64 writes a tagged Float64 node.
func WriteTaggedFloat64(buf *Buffer, v float64) {
	buf.AddByte(byte(KindFloat64))
	writeFloat64(buf, v)
}

// WriteTaggedString writes a tagged String node.
func WriteTaggedString(buf *Buffer, s []byte) {
	buf.AddByte(byte(KindString))
	writeString(buf, s)
}

// ReadUntaggedString reads a String node's body only, for use as an
// array element or table cell whose shared tag is already known to be
// KindString.
func ReadUntaggedString(data []byte, pos *int) ([]byte, error) {
	return readString(data, pos)
}

// ReadUntaggedInt32 reads an Int32 node's body only.
func ReadUntaggedInt32(data []byte, pos *int) (int32, error) {
	return readInt32(data, pos)
}
