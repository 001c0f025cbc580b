package ttree

import "fmt"

// Tree is a tagged value: exactly one of the seventeen kinds described by
// the Kind registry. Trees are value-like and immutable once
// constructed — build a new one with the constructors below rather than
// mutating an existing Tree in place. There is no sharing, no
// back-reference and no cycle between nodes.
type Tree struct {
	kind Kind

	i8   uint8
	i16  uint16
	i32  int32
	i64  int64
	i128 [16]byte
	f64  float64
	uv   uint64
	sv   int64
	str  []byte

	elem  Kind // Array/Matrix element kind
	items []*Tree

	fields []Field

	numIdx uint8
	hash   Hash
	name   string
	arg    *Tree

	colKinds []Kind
	header   []Column
	rows     [][]*Tree
	colNum   int
}

// Field is a named, hashed value inside a Record.
type Field struct {
	Name  string // Informational; not carried on the wire
	Hash  Hash
	Value *Tree
}

// NewField builds a Field, computing its Hash from Name.
func NewField(name string, v *Tree) Field {
	return Field{Name: name, Hash: HashName(name), Value: v}
}

// Column is one entry in a RecordTable header: a field name/hash paired
// with the shared kind of every cell in that column.
type Column struct {
	Name string
	Hash Hash
	Kind Kind
}

// NewColumn builds a Column, computing its Hash from name.
func NewColumn(name string, kind Kind) Column {
	return Column{Name: name, Hash: HashName(name), Kind: kind}
}

// Kind returns the node's kind.
func (t *Tree) Kind() Kind {
	if t == nil {
		return 0
	}
	return t.kind
}

// ============================================================
// Constructors
// ============================================================

// Int8 constructs an 8-bit unsigned leaf.
func Int8(v uint8) *Tree { return &Tree{kind: KindInt8, i8: v} }

// Int16 constructs a 16-bit unsigned leaf.
func Int16(v uint16) *Tree { return &Tree{kind: KindInt16, i16: v} }

// Int32 constructs a 32-bit signed leaf.
func Int32(v int32) *Tree { return &Tree{kind: KindInt32, i32: v} }

// Int64 constructs a 64-bit signed leaf.
func Int64(v int64) *Tree { return &Tree{kind: KindInt64, i64: v} }

// Int128 constructs an opaque 16-byte leaf.
func Int128(v [16]byte) *Tree { return &Tree{kind: KindInt128, i128: v} }

// Float64 constructs an IEEE-754 double leaf.
func Float64(v float64) *Tree { return &Tree{kind: KindFloat64, f64: v} }

// Uvint constructs an unsigned varint leaf.
func Uvint(v uint64) *Tree { return &Tree{kind: KindUvint, uv: v} }

// Svint constructs a signed (zigzag) varint leaf.
func Svint(v int64) *Tree { return &Tree{kind: KindSvint, sv: v} }

// Str constructs a String leaf from s.
func Str(s string) *Tree { return &Tree{kind: KindString, str: []byte(s)} }

// StrBytes constructs a String leaf from raw bytes. b is copied.
func StrBytes(b []byte) *Tree {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Tree{kind: KindString, str: cp}
}

// Array constructs a homogeneous sequence sharing the element tag elem.
// Every item must report Kind() == elem; otherwise Array fails with
// MalformedInput, since a mismatched element would silently corrupt the
// decode of every element after it.
func Array(elem Kind, items []*Tree) (*Tree, error) {
	for i, it := range items {
		if it.Kind() != elem {
			return nil, malformedf("array element %d has kind %s, want %s", i, it.Kind(), elem)
		}
	}
	return &Tree{kind: KindArray, elem: elem, items: items}, nil
}

// Tuple constructs a heterogeneous, fixed-length sequence.
func Tuple(items []*Tree) *Tree {
	return &Tree{kind: KindTuple, items: items}
}

// Record constructs an unordered set of named fields. Field order is
// preserved for the wire, since the format does not require canonical
// sorting.
func Record(fields []Field) *Tree {
	return &Tree{kind: KindRecord, fields: fields}
}

// Get returns the value of the first field named name, or nil.
func (t *Tree) Get(name string) *Tree {
	return t.GetHash(HashName(name))
}

// GetHash returns the value of the first field with the given hash, or nil.
func (t *Tree) GetHash(h Hash) *Tree {
	if t == nil || t.kind != KindRecord {
		return nil
	}
	for _, f := range t.fields {
		if f.Hash == h {
			return f.Value
		}
	}
	return nil
}

// NumVariant constructs a small integer constructor with an optional
// payload. idx must be in [0, 127].
func NumVariant(idx uint8, arg *Tree) (*Tree, error) {
	if idx > 127 {
		return nil, malformedf("numvariant index %d out of range [0,127]", idx)
	}
	return &Tree{kind: KindNumVariant, numIdx: idx, arg: arg}, nil
}

// Variant constructs a hashed-name constructor with an optional
// payload, computing the hash from name.
func Variant(name string, arg *Tree) *Tree {
	return &Tree{kind: KindVariant, name: name, hash: HashName(name), arg: arg}
}

// VariantHash constructs a Variant from an explicit hash, with name
// carried purely for information (e.g. as resolved by an Unhash).
func VariantHash(hash Hash, name string, arg *Tree) *Tree {
	return &Tree{kind: KindVariant, name: name, hash: hash, arg: arg}
}

// TupleTable constructs a row-major table of heterogeneous tuples that
// share one column schema. Every row must have exactly len(colKinds)
// cells, and cell i of every row must report Kind() == colKinds[i].
func TupleTable(colKinds []Kind, rows [][]*Tree) (*Tree, error) {
	for r, row := range rows {
		if len(row) != len(colKinds) {
			return nil, malformedf("tuple_table row %d has %d cells, want %d", r, len(row), len(colKinds))
		}
		for c, cell := range row {
			if cell.Kind() != colKinds[c] {
				return nil, malformedf("tuple_table row %d cell %d has kind %s, want %s", r, c, cell.Kind(), colKinds[c])
			}
		}
	}
	return &Tree{kind: KindTupleTable, colKinds: append([]Kind(nil), colKinds...), rows: rows}, nil
}

// RecordTable constructs a row-major table of records that share one
// field header. Every row must have exactly len(header) cells, and cell
// i of every row must report Kind() == header[i].Kind.
func RecordTable(header []Column, rows [][]*Tree) (*Tree, error) {
	for r, row := range rows {
		if len(row) != len(header) {
			return nil, malformedf("record_table row %d has %d cells, want %d", r, len(row), len(header))
		}
		for c, cell := range row {
			if cell.Kind() != header[c].Kind {
				return nil, malformedf("record_table row %d cell %d has kind %s, want %s", r, c, cell.Kind(), header[c].Kind)
			}
		}
	}
	return &Tree{kind: KindRecordTable, header: append([]Column(nil), header...), rows: rows}, nil
}

// Matrix constructs a row-major rectangular array of one element kind.
// Every row must have exactly colNum cells, all of kind elem.
func Matrix(elem Kind, colNum int, rows [][]*Tree) (*Tree, error) {
	for r, row := range rows {
		if len(row) != colNum {
			return nil, malformedf("matrix row %d has %d cells, want %d", r, len(row), colNum)
		}
		for c, cell := range row {
			if cell.Kind() != elem {
				return nil, malformedf("matrix row %d cell %d has kind %s, want %s", r, c, cell.Kind(), elem)
			}
		}
	}
	return &Tree{kind: KindMatrix, elem: elem, colNum: colNum, rows: rows}, nil
}

// ============================================================
// Accessors
// ============================================================

func (t *Tree) wantKind(k Kind) error {
	if t == nil {
		return fmt.Errorf("ttree: nil value, want %s", k)
	}
	if t.kind != k {
		return fmt.Errorf("ttree: expected %s, got %s", k, t.kind)
	}
	return nil
}

// AsInt8 returns the Int8 payload.
func (t *Tree) AsInt8() (uint8, error) {
	if err := t.wantKind(KindInt8); err != nil {
		return 0, err
	}
	return t.i8, nil
}

// AsInt16 returns the Int16 payload.
func (t *Tree) AsInt16() (uint16, error) {
	if err := t.wantKind(KindInt16); err != nil {
		return 0, err
	}
	return t.i16, nil
}

// AsInt32 returns the Int32 payload.
func (t *Tree) AsInt32() (int32, error) {
	if err := t.wantKind(KindInt32); err != nil {
		return 0, err
	}
	return t.i32, nil
}

// AsInt64 returns the Int64 payload.
func (t *Tree) AsInt64() (int64, error) {
	if err := t.wantKind(KindInt64); err != nil {
		return 0, err
	}
	return t.i64, nil
}

// AsInt128 returns the raw 16-byte Int128 payload.
func (t *Tree) AsInt128() ([16]byte, error) {
	if err := t.wantKind(KindInt128); err != nil {
		return [16]byte{}, err
	}
	return t.i128, nil
}

// AsFloat64 returns the Float64 payload.
func (t *Tree) AsFloat64() (float64, error) {
	if err := t.wantKind(KindFloat64); err != nil {
		return 0, err
	}
	return t.f64, nil
}

// AsUvint returns the Uvint payload.
func (t *Tree) AsUvint() (uint64, error) {
	if err := t.wantKind(KindUvint); err != nil {
		return 0, err
	}
	return t.uv, nil
}

// AsSvint returns the Svint payload.
func (t *Tree) AsSvint() (int64, error) {
	if err := t.wantKind(KindSvint); err != nil {
		return 0, err
	}
	return t.sv, nil
}

// AsString returns the raw bytes of a String leaf.
func (t *Tree) AsString() ([]byte, error) {
	if err := t.wantKind(KindString); err != nil {
		return nil, err
	}
	return t.str, nil
}

// AsArray returns the element kind and items of an Array.
func (t *Tree) AsArray() (Kind, []*Tree, error) {
	if err := t.wantKind(KindArray); err != nil {
		return 0, nil, err
	}
	return t.elem, t.items, nil
}

// AsTuple returns the items of a Tuple.
func (t *Tree) AsTuple() ([]*Tree, error) {
	if err := t.wantKind(KindTuple); err != nil {
		return nil, err
	}
	return t.items, nil
}

// AsRecord returns the fields of a Record.
func (t *Tree) AsRecord() ([]Field, error) {
	if err := t.wantKind(KindRecord); err != nil {
		return nil, err
	}
	return t.fields, nil
}

// AsNumVariant returns the index and optional payload of a NumVariant.
func (t *Tree) AsNumVariant() (uint8, *Tree, error) {
	if err := t.wantKind(KindNumVariant); err != nil {
		return 0, nil, err
	}
	return t.numIdx, t.arg, nil
}

// AsVariant returns the hash, informational name and optional payload
// of a Variant.
func (t *Tree) AsVariant() (Hash, string, *Tree, error) {
	if err := t.wantKind(KindVariant); err != nil {
		return 0, "", nil, err
	}
	return t.hash, t.name, t.arg, nil
}

// AsTupleTable returns the column kinds and rows of a TupleTable.
func (t *Tree) AsTupleTable() ([]Kind, [][]*Tree, error) {
	if err := t.wantKind(KindTupleTable); err != nil {
		return nil, nil, err
	}
	return t.colKinds, t.rows, nil
}

// AsRecordTable returns the header and rows of a RecordTable.
func (t *Tree) AsRecordTable() ([]Column, [][]*Tree, error) {
	if err := t.wantKind(KindRecordTable); err != nil {
		return nil, nil, err
	}
	return t.header, t.rows, nil
}

// AsMatrix returns the element kind, column count and rows of a Matrix.
func (t *Tree) AsMatrix() (Kind, int, [][]*Tree, error) {
	if err := t.wantKind(KindMatrix); err != nil {
		return 0, 0, nil, err
	}
	return t.elem, t.colNum, t.rows, nil
}
