package ttree

import "testing"

func TestTupleTableRoundTrip(t *testing.T) {
	colKinds := []Kind{KindUvint, KindString}
	rows := [][]*Tree{
		{Uvint(1), Str("one")},
		{Uvint(2), Str("two")},
	}
	tbl, err := TupleTable(colKinds, rows)
	if err != nil {
		t.Fatalf("TupleTable: %v", err)
	}
	encoded, err := Encode(tbl)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	gotCols, gotRows, err := decoded.AsTupleTable()
	if err != nil {
		t.Fatalf("AsTupleTable: %v", err)
	}
	if len(gotCols) != 2 || len(gotRows) != 2 {
		t.Fatalf("shape mismatch: %d cols, %d rows", len(gotCols), len(gotRows))
	}
	v, _ := gotRows[1][1].AsString()
	if string(v) != "two" {
		t.Errorf("gotRows[1][1] = %q, want two", v)
	}
}

func TestTupleTableRejectsRaggedRows(t *testing.T) {
	_, err := TupleTable([]Kind{KindInt8, KindInt8}, [][]*Tree{{Int8(1)}})
	if _, ok := err.(*MalformedInputError); !ok {
		t.Fatalf("expected *MalformedInputError, got %v", err)
	}
}

func TestTupleTableRejectsWrongCellKind(t *testing.T) {
	_, err := TupleTable([]Kind{KindInt8}, [][]*Tree{{Str("nope")}})
	if _, ok := err.(*MalformedInputError); !ok {
		t.Fatalf("expected *MalformedInputError, got %v", err)
	}
}

func TestRecordTableRoundTrip(t *testing.T) {
	header := []Column{
		NewColumn("x", KindInt32),
		NewColumn("y", KindInt32),
	}
	rows := [][]*Tree{
		{Int32(1), Int32(2)},
		{Int32(3), Int32(4)},
	}
	tbl, err := RecordTable(header, rows)
	if err != nil {
		t.Fatalf("RecordTable: %v", err)
	}
	unhash, err := NewUnhash([]string{"x", "y"})
	if err != nil {
		t.Fatalf("NewUnhash: %v", err)
	}
	encoded, err := Encode(tbl)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded, unhash)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	gotHeader, gotRows, err := decoded.AsRecordTable()
	if err != nil {
		t.Fatalf("AsRecordTable: %v", err)
	}
	if gotHeader[0].Name != "x" || gotHeader[1].Name != "y" {
		t.Fatalf("header names not resolved: %+v", gotHeader)
	}
	v, _ := gotRows[1][0].AsInt32()
	if v != 3 {
		t.Errorf("gotRows[1][0] = %d, want 3", v)
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	rows := [][]*Tree{
		{Int8(1), Int8(2), Int8(3)},
		{Int8(4), Int8(5), Int8(6)},
	}
	m, err := Matrix(KindInt8, 3, rows)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	encoded, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	elem, colNum, gotRows, err := decoded.AsMatrix()
	if err != nil {
		t.Fatalf("AsMatrix: %v", err)
	}
	if elem != KindInt8 || colNum != 3 || len(gotRows) != 2 {
		t.Fatalf("shape mismatch: elem=%s colNum=%d rows=%d", elem, colNum, len(gotRows))
	}
}

func TestMatrixRejectsRaggedRows(t *testing.T) {
	_, err := Matrix(KindInt8, 3, [][]*Tree{{Int8(1), Int8(2)}})
	if _, ok := err.(*MalformedInputError); !ok {
		t.Fatalf("expected *MalformedInputError, got %v", err)
	}
}

func TestZeroRowTableEncodesHeaderOnly(t *testing.T) {
	tbl, err := TupleTable([]Kind{KindInt8, KindInt8}, nil)
	if err != nil {
		t.Fatalf("TupleTable: %v", err)
	}
	encoded, err := Encode(tbl)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// tag, row count uvint(0), col count uvint(2), 2 column tags.
	want := []byte{byte(KindTupleTable), 0x00, 0x02, byte(KindInt8), byte(KindInt8)}
	if !equalBytes(encoded, want) {
		t.Errorf("got %#v, want %#v", encoded, want)
	}
	decoded, err := Decode(encoded, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	cols, rows, err := decoded.AsTupleTable()
	if err != nil {
		t.Fatalf("AsTupleTable: %v", err)
	}
	if len(cols) != 2 || len(rows) != 0 {
		t.Errorf("shape mismatch: %d cols, %d rows", len(cols), len(rows))
	}
}

func TestRecordTableHeaderHasArgBitAlwaysSet(t *testing.T) {
	header := []Column{NewColumn("only", KindInt8)}
	tbl, err := RecordTable(header, nil)
	if err != nil {
		t.Fatalf("RecordTable: %v", err)
	}
	encoded, err := Encode(tbl)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// tag, rowcount=0, colcount=1, hashtag(4 bytes, high bit set), col tag.
	if encoded[3]&0x80 == 0 {
		t.Errorf("record_table header hashtag missing has-argument bit: %#02x", encoded[3])
	}
}
