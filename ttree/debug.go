package ttree

import (
	"fmt"
	"strconv"
	"strings"
)

// Debug renders t as a human-readable, non-canonical debug string. It
// is cosmetic only: no decoder ever reads this form back, and its exact
// layout may change between releases without touching the wire format.
func (t *Tree) Debug() string {
	var b strings.Builder
	writeDebug(&b, t)
	return b.String()
}

func writeDebug(b *strings.Builder, t *Tree) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	switch t.kind {
	case KindInt8:
		fmt.Fprintf(b, "i8:%d", t.i8)
	case KindInt16:
		fmt.Fprintf(b, "i16:%d", t.i16)
	case KindInt32:
		fmt.Fprintf(b, "i32:%d", t.i32)
	case KindInt64:
		fmt.Fprintf(b, "i64:%d", t.i64)
	case KindInt128:
		fmt.Fprintf(b, "i128:%x", t.i128)
	case KindFloat64:
		b.WriteString(strconv.FormatFloat(t.f64, 'g', -1, 64))
	case KindUvint:
		fmt.Fprintf(b, "u:%d", t.uv)
	case KindSvint:
		fmt.Fprintf(b, "s:%d", t.sv)
	case KindString:
		b.WriteString(strconv.Quote(string(t.str)))
	case KindArray:
		b.WriteByte('[')
		for i, e := range t.items {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeDebug(b, e)
		}
		b.WriteByte(']')
	case KindTuple:
		b.WriteByte('(')
		for i, e := range t.items {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeDebug(b, e)
		}
		b.WriteByte(')')
	case KindRecord:
		b.WriteByte('{')
		for i, f := range t.fields {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fieldLabel(f.Name, f.Hash))
			b.WriteByte('=')
			writeDebug(b, f.Value)
		}
		b.WriteByte('}')
	case KindNumVariant:
		fmt.Fprintf(b, "#%d", t.numIdx)
		if t.arg != nil {
			b.WriteByte('(')
			writeDebug(b, t.arg)
			b.WriteByte(')')
		}
	case KindVariant:
		b.WriteString(fieldLabel(t.name, t.hash))
		if t.arg != nil {
			b.WriteByte('(')
			writeDebug(b, t.arg)
			b.WriteByte(')')
		}
	case KindTupleTable:
		fmt.Fprintf(b, "tuple_table<%d cols, %d rows>", len(t.colKinds), len(t.rows))
	case KindRecordTable:
		fmt.Fprintf(b, "record_table<%d cols, %d rows>", len(t.header), len(t.rows))
	case KindMatrix:
		fmt.Fprintf(b, "matrix<%d x %d>", len(t.rows), t.colNum)
	default:
		fmt.Fprintf(b, "kind(%d)", uint8(t.kind))
	}
}

func fieldLabel(name string, h Hash) string {
	if name != "" && !strings.HasPrefix(name, "#") {
		return name
	}
	return h.String()
}
