package ttree

// Encode writes t in its top-level tagged form and returns the wire
// bytes. There is no envelope: the returned bytes are exactly t's
// encoding, self-delimiting, with nothing before or after it.
func Encode(t *Tree) ([]byte, error) {
	buf := NewBuffer(64)
	if err := WriteTree(buf, true, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTree writes t's body into buf. When tagged is true, t's one-byte
// kind tag is written first; when false, only the body is written, for
// use inside an Array, TupleTable, RecordTable or Matrix whose shared
// tag already identifies the kind.
func WriteTree(buf *Buffer, tagged bool, t *Tree) error {
	if tagged {
		buf.AddByte(byte(t.kind))
	}

	switch t.kind {
	case KindInt8:
		writeInt8(buf, t.i8)
	case KindInt16:
		writeInt16(buf, t.i16)
	case KindInt32:
		writeInt32(buf, t.i32)
	case KindInt64:
		writeInt64(buf, t.i64)
	case KindInt128:
		writeInt128(buf, t.i128)
	case KindFloat64:
		writeFloat64(buf, t.f64)
	case KindUvint:
		WriteUvint(buf, t.uv)
	case KindSvint:
		WriteSvint(buf, t.sv)
	case KindString:
		writeString(buf, t.str)
	case KindArray:
		return writeArray(buf, t)
	case KindTuple:
		return writeTuple(buf, t)
	case KindRecord:
		return writeRecord(buf, t)
	case KindNumVariant:
		return writeNumVariant(buf, t)
	case KindVariant:
		return writeVariant(buf, t)
	case KindTupleTable:
		return writeTupleTable(buf, t)
	case KindRecordTable:
		return writeRecordTable(buf, t)
	case KindMatrix:
		return writeMatrix(buf, t)
	default:
		return malformedf("unknown tree kind %d", uint8(t.kind))
	}
	return nil
}

func writeArray(buf *Buffer, t *Tree) error {
	WriteUvint(buf, uint64(len(t.items)))
	buf.AddByte(byte(t.elem))
	for i, e := range t.items {
		if e.Kind() != t.elem {
			return malformedf("array element %d has kind %s, want %s", i, e.Kind(), t.elem)
		}
		if err := WriteTree(buf, false, e); err != nil {
			return err
		}
	}
	return nil
}

func writeTuple(buf *Buffer, t *Tree) error {
	WriteUvint(buf, uint64(len(t.items)))
	for _, e := range t.items {
		if err := WriteTree(buf, true, e); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(buf *Buffer, t *Tree) error {
	WriteUvint(buf, uint64(len(t.fields)))
	for _, f := range t.fields {
		WriteHashtag(buf, f.Hash, true)
		if err := WriteTree(buf, true, f.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeNumVariant(buf *Buffer, t *Tree) error {
	if err := WriteNumtag(buf, t.numIdx, t.arg != nil); err != nil {
		return err
	}
	if t.arg != nil {
		return WriteTree(buf, true, t.arg)
	}
	return nil
}

func writeVariant(buf *Buffer, t *Tree) error {
	WriteHashtag(buf, t.hash, t.arg != nil)
	if t.arg != nil {
		return WriteTree(buf, true, t.arg)
	}
	return nil
}

