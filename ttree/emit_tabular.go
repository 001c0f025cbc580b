package ttree

// writeTupleTable, writeRecordTable and writeMatrix encode the three
// tabular node kinds. Each factors its column schema (tags alone, or
// name-hash-plus-tag pairs) into a header written once, then writes
// every cell untagged against that shared schema — the compactness the
// tabular kinds exist for. See parse_tabular.go for the matching
// readers; the two files must stay in lockstep on header shape and
// cell tagging.

func writeTupleTable(buf *Buffer, t *Tree) error {
	WriteUvint(buf, uint64(len(t.rows)))
	WriteUvint(buf, uint64(len(t.colKinds)))
	for _, k := range t.colKinds {
		buf.AddByte(byte(k))
	}
	for r, row := range t.rows {
		if len(row) != len(t.colKinds) {
			return malformedf("tuple_table row %d has %d cells, want %d", r, len(row), len(t.colKinds))
		}
		for c, cell := range row {
			if cell.Kind() != t.colKinds[c] {
				return malformedf("tuple_table row %d cell %d has kind %s, want %s", r, c, cell.Kind(), t.colKinds[c])
			}
			if err := WriteTree(buf, false, cell); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRecordTable(buf *Buffer, t *Tree) error {
	WriteUvint(buf, uint64(len(t.rows)))
	WriteUvint(buf, uint64(len(t.header)))
	for _, col := range t.header {
		// A record field always carries a value, so the header hashtag's
		// has-argument bit is unconditionally set.
		WriteHashtag(buf, col.Hash, true)
		buf.AddByte(byte(col.Kind))
	}
	for r, row := range t.rows {
		if len(row) != len(t.header) {
			return malformedf("record_table row %d has %d cells, want %d", r, len(row), len(t.header))
		}
		for c, cell := range row {
			if cell.Kind() != t.header[c].Kind {
				return malformedf("record_table row %d cell %d has kind %s, want %s", r, c, cell.Kind(), t.header[c].Kind)
			}
			if err := WriteTree(buf, false, cell); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMatrix(buf *Buffer, t *Tree) error {
	WriteUvint(buf, uint64(len(t.rows)))
	WriteUvint(buf, uint64(t.colNum))
	buf.AddByte(byte(t.elem))
	for r, row := range t.rows {
		if len(row) != t.colNum {
			return malformedf("matrix row %d has %d cells, want %d", r, len(row), t.colNum)
		}
		for c, cell := range row {
			if cell.Kind() != t.elem {
				return malformedf("matrix row %d cell %d has kind %s, want %s", r, c, cell.Kind(), t.elem)
			}
			if err := WriteTree(buf, false, cell); err != nil {
				return err
			}
		}
	}
	return nil
}
