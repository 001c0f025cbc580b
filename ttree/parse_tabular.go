package ttree

// readTupleTable, readRecordTable and readMatrix decode the three
// tabular node kinds, which factor a shared column schema out of the
// header and then read every cell untagged against that schema. They
// live in their own file to mirror the corresponding writers in
// emit_tabular.go: the encoder and decoder must agree exactly on this
// tagged/untagged shift, so it is easiest to audit both directions
// side by side.

func readTupleTable(data []byte, pos *int, unhash Unhash) (*Tree, error) {
	rowCount, err := readCount(data, pos)
	if err != nil {
		return nil, corrupted("tuple_table row count")
	}
	colCount, err := readCount(data, pos)
	if err != nil {
		return nil, corrupted("tuple_table column count")
	}
	if colCount > remaining(data, *pos) {
		return nil, corrupted("tuple_table column tags exceed input")
	}
	colKinds := make([]Kind, colCount)
	for c := 0; c < colCount; c++ {
		k, ok := validKind(data[*pos])
		if !ok {
			return nil, corruptedf("invalid tuple_table column tag %#02x", data[*pos])
		}
		*pos++
		colKinds[c] = k
	}
	if err := checkCellBudget(data, *pos, rowCount, colCount); err != nil {
		return nil, err
	}

	rows := make([][]*Tree, rowCount)
	for r := 0; r < rowCount; r++ {
		row := make([]*Tree, colCount)
		for c := 0; c < colCount; c++ {
			cell, err := readBody(colKinds[c], data, pos, unhash)
			if err != nil {
				return nil, err
			}
			row[c] = cell
		}
		rows[r] = row
	}
	return &Tree{kind: KindTupleTable, colKinds: colKinds, rows: rows}, nil
}

func readRecordTable(data []byte, pos *int, unhash Unhash) (*Tree, error) {
	rowCount, err := readCount(data, pos)
	if err != nil {
		return nil, corrupted("record_table row count")
	}
	colCount, err := readCount(data, pos)
	if err != nil {
		return nil, corrupted("record_table column count")
	}

	header := make([]Column, colCount)
	for c := 0; c < colCount; c++ {
		h, err := ReadFieldHashtag(data, pos)
		if err != nil {
			return nil, err
		}
		if *pos+1 > len(data) {
			return nil, corrupted("record_table column tag")
		}
		k, ok := validKind(data[*pos])
		if !ok {
			return nil, corruptedf("invalid record_table column tag %#02x", data[*pos])
		}
		*pos++
		header[c] = Column{Name: unhash(h), Hash: h, Kind: k}
	}
	if err := checkCellBudget(data, *pos, rowCount, colCount); err != nil {
		return nil, err
	}

	rows := make([][]*Tree, rowCount)
	for r := 0; r < rowCount; r++ {
		row := make([]*Tree, colCount)
		for c := 0; c < colCount; c++ {
			cell, err := readBody(header[c].Kind, data, pos, unhash)
			if err != nil {
				return nil, err
			}
			row[c] = cell
		}
		rows[r] = row
	}
	return &Tree{kind: KindRecordTable, header: header, rows: rows}, nil
}

func readMatrix(data []byte, pos *int, unhash Unhash) (*Tree, error) {
	rowCount, err := readCount(data, pos)
	if err != nil {
		return nil, corrupted("matrix row count")
	}
	colCount, err := readCount(data, pos)
	if err != nil {
		return nil, corrupted("matrix column count")
	}
	if *pos+1 > len(data) {
		return nil, corrupted("matrix element tag")
	}
	elem, ok := validKind(data[*pos])
	if !ok {
		return nil, corruptedf("invalid matrix element tag %#02x", data[*pos])
	}
	*pos++
	if err := checkCellBudget(data, *pos, rowCount, colCount); err != nil {
		return nil, err
	}

	rows := make([][]*Tree, rowCount)
	for r := 0; r < rowCount; r++ {
		row := make([]*Tree, colCount)
		for c := 0; c < colCount; c++ {
			cell, err := readBody(elem, data, pos, unhash)
			if err != nil {
				return nil, err
			}
			row[c] = cell
		}
		rows[r] = row
	}
	return &Tree{kind: KindMatrix, elem: elem, colNum: colCount, rows: rows}, nil
}
