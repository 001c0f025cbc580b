package ttree

// Decode reads one top-level tagged node from data starting at offset
// zero. unhash resolves field/variant hashes to informational names; if
// nil, DefaultUnhash is used, so decoded names are always the hex
// placeholder form. Trailing bytes after the top-level node are not
// consumed; the caller decides what, if anything, they mean.
func Decode(data []byte, unhash Unhash) (*Tree, error) {
	if unhash == nil {
		unhash = DefaultUnhash()
	}
	pos := 0
	t, err := ReadTree(data, &pos, unhash)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ReadTree reads one tag byte from data at *pos, dispatches to the
// matching body reader, and returns the decoded node. Use readBody
// directly (via the untagged helpers in this package) inside a context
// whose tag is already known from a shared array/column header.
func ReadTree(data []byte, pos *int, unhash Unhash) (*Tree, error) {
	if *pos+1 > len(data) {
		return nil, corrupted("tag")
	}
	k, ok := validKind(data[*pos])
	if !ok {
		return nil, corruptedf("invalid tag %#02x", data[*pos])
	}
	*pos++
	return readBody(k, data, pos, unhash)
}

// remaining reports how many bytes are left in data at *pos.
func remaining(data []byte, pos int) int {
	if pos > len(data) {
		return 0
	}
	return len(data) - pos
}

func readBody(k Kind, data []byte, pos *int, unhash Unhash) (*Tree, error) {
	switch k {
	case KindInt8:
		v, err := readInt8(data, pos)
		if err != nil {
			return nil, err
		}
		return Int8(v), nil

	case KindInt16:
		v, err := readInt16(data, pos)
		if err != nil {
			return nil, err
		}
		return Int16(v), nil

	case KindInt32:
		v, err := readInt32(data, pos)
		if err != nil {
			return nil, err
		}
		return Int32(v), nil

	case KindInt64:
		v, err := readInt64(data, pos)
		if err != nil {
			return nil, err
		}
		return Int64(v), nil

	case KindInt128:
		v, err := readInt128(data, pos)
		if err != nil {
			return nil, err
		}
		return Int128(v), nil

	case KindFloat64:
		v, err := readFloat64(data, pos)
		if err != nil {
			return nil, err
		}
		return Float64(v), nil

	case KindUvint:
		v, err := ReadUvint(data, pos)
		if err != nil {
			return nil, err
		}
		return Uvint(v), nil

	case KindSvint:
		v, err := ReadSvint(data, pos)
		if err != nil {
			return nil, err
		}
		return Svint(v), nil

	case KindString:
		v, err := readString(data, pos)
		if err != nil {
			return nil, err
		}
		return StrBytes(v), nil

	case KindArray:
		return readArray(data, pos, unhash)

	case KindTuple:
		return readTuple(data, pos, unhash)

	case KindRecord:
		return readRecord(data, pos, unhash)

	case KindNumVariant:
		return readNumVariant(data, pos, unhash)

	case KindVariant:
		return readVariant(data, pos, unhash)

	case KindTupleTable:
		return readTupleTable(data, pos, unhash)

	case KindRecordTable:
		return readRecordTable(data, pos, unhash)

	case KindMatrix:
		return readMatrix(data, pos, unhash)

	default:
		return nil, corruptedf("invalid tag %#02x", uint8(k))
	}
}

func readCount(data []byte, pos *int) (int, error) {
	n, err := ReadUvint(data, pos)
	if err != nil {
		return 0, err
	}
	// Guard against hostile lengths: even the cheapest element costs at
	// least one byte on the wire, so a declared count that exceeds the
	// remaining buffer can never be satisfied.
	if n > uint64(remaining(data, *pos)) {
		return 0, corrupted("declared length exceeds remaining input")
	}
	return int(n), nil
}

// checkCellBudget guards the tabular readers against a crafted
// rowCount/colCount pair that each individually pass readCount's
// per-field bound but whose product does not: allocating
// rowCount*colCount cells up front, before a single one is read, can
// still blow up memory even though neither factor alone exceeds the
// remaining input. Dividing rather than multiplying avoids overflowing
// the check itself on a hostile pair of large counts.
func checkCellBudget(data []byte, pos int, rowCount, colCount int) error {
	if rowCount == 0 || colCount == 0 {
		return nil
	}
	rem := uint64(remaining(data, pos))
	if uint64(rowCount) > rem/uint64(colCount) {
		return corrupted("declared row/column count exceeds remaining input")
	}
	return nil
}

func readArray(data []byte, pos *int, unhash Unhash) (*Tree, error) {
	n, err := readCount(data, pos)
	if err != nil {
		return nil, corrupted("array length")
	}
	if *pos+1 > len(data) {
		return nil, corrupted("array element tag")
	}
	elem, ok := validKind(data[*pos])
	if !ok {
		return nil, corruptedf("invalid array element tag %#02x", data[*pos])
	}
	*pos++
	items := make([]*Tree, n)
	for i := 0; i < n; i++ {
		e, err := readBody(elem, data, pos, unhash)
		if err != nil {
			return nil, err
		}
		items[i] = e
	}
	return &Tree{kind: KindArray, elem: elem, items: items}, nil
}

func readTuple(data []byte, pos *int, unhash Unhash) (*Tree, error) {
	n, err := readCount(data, pos)
	if err != nil {
		return nil, corrupted("tuple length")
	}
	items := make([]*Tree, n)
	for i := 0; i < n; i++ {
		e, err := ReadTree(data, pos, unhash)
		if err != nil {
			return nil, err
		}
		items[i] = e
	}
	return &Tree{kind: KindTuple, items: items}, nil
}

func readRecord(data []byte, pos *int, unhash Unhash) (*Tree, error) {
	n, err := readCount(data, pos)
	if err != nil {
		return nil, corrupted("record length")
	}
	fields := make([]Field, n)
	for i := 0; i < n; i++ {
		h, err := ReadFieldHashtag(data, pos)
		if err != nil {
			return nil, err
		}
		v, err := ReadTree(data, pos, unhash)
		if err != nil {
			return nil, err
		}
		fields[i] = Field{Name: unhash(h), Hash: h, Value: v}
	}
	return &Tree{kind: KindRecord, fields: fields}, nil
}

func readNumVariant(data []byte, pos *int, unhash Unhash) (*Tree, error) {
	idx, hasArg, err := ReadNumtag(data, pos)
	if err != nil {
		return nil, err
	}
	var arg *Tree
	if hasArg {
		arg, err = ReadTree(data, pos, unhash)
		if err != nil {
			return nil, err
		}
	}
	return &Tree{kind: KindNumVariant, numIdx: idx, arg: arg}, nil
}

func readVariant(data []byte, pos *int, unhash Unhash) (*Tree, error) {
	h, hasArg, err := ReadHashtag(data, pos)
	if err != nil {
		return nil, err
	}
	var arg *Tree
	if hasArg {
		arg, err = ReadTree(data, pos, unhash)
		if err != nil {
			return nil, err
		}
	}
	return &Tree{kind: KindVariant, hash: h, name: unhash(h), arg: arg}, nil
}
