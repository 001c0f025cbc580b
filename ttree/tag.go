package ttree

import "fmt"

// Kind identifies the wire kind of a Tree node. The byte value of a Kind
// is exactly the tag byte written to the wire for that node when encoded
// tagged; encoder and decoder must never disagree on these values, since
// they are part of the wire contract.
type Kind uint8

const (
	KindInt8        Kind = 1
	KindInt16       Kind = 2
	KindInt32       Kind = 3
	KindInt64       Kind = 4
	KindInt128      Kind = 5
	KindFloat64     Kind = 12
	KindUvint       Kind = 16
	KindSvint       Kind = 17
	KindString      Kind = 18
	KindArray       Kind = 19
	KindTuple       Kind = 20
	KindRecord      Kind = 21
	KindNumVariant  Kind = 22
	KindVariant     Kind = 23
	KindTupleTable  Kind = 24
	KindRecordTable Kind = 25
	KindMatrix      Kind = 26
)

var kindNames = map[Kind]string{
	KindInt8:        "int8",
	KindInt16:       "int16",
	KindInt32:       "int32",
	KindInt64:       "int64",
	KindInt128:      "int128",
	KindFloat64:     "float64",
	KindUvint:       "uvint",
	KindSvint:       "svint",
	KindString:      "string",
	KindArray:       "array",
	KindTuple:       "tuple",
	KindRecord:      "record",
	KindNumVariant:  "numvariant",
	KindVariant:     "variant",
	KindTupleTable:  "tuple_table",
	KindRecordTable: "record_table",
	KindMatrix:      "matrix",
}

// String returns the kind name, e.g. "record_table".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// validKind reports whether b is a registered tag byte.
func validKind(b byte) (Kind, bool) {
	k := Kind(b)
	_, ok := kindNames[k]
	return k, ok
}
