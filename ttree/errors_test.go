package ttree

import "testing"

func TestDecodeInvalidTagFails(t *testing.T) {
	_, err := Decode([]byte{0xfe}, nil)
	if _, ok := err.(*CorruptedDataError); !ok {
		t.Fatalf("expected *CorruptedDataError, got %v", err)
	}
}

func TestDecodeEmptyInputFails(t *testing.T) {
	_, err := Decode(nil, nil)
	if _, ok := err.(*CorruptedDataError); !ok {
		t.Fatalf("expected *CorruptedDataError, got %v", err)
	}
}

func TestDecodeHostileArrayLengthFails(t *testing.T) {
	// tag Array, uvint length = huge, but no bytes follow.
	data := []byte{byte(KindArray), 0xff, 0xff, 0xff, 0xff, 0x0f}
	_, err := Decode(data, nil)
	if _, ok := err.(*CorruptedDataError); !ok {
		t.Fatalf("expected *CorruptedDataError, got %v", err)
	}
}

func TestDecodeFieldHashtagMissingFlagFails(t *testing.T) {
	// A record with length 1, then a hashtag with the high bit clear.
	buf := NewBuffer(16)
	buf.AddByte(byte(KindRecord))
	WriteUvint(buf, 1)
	WriteHashtag(buf, HashName("x"), false) // invalid: fields always have a value
	buf.AddByte(byte(KindInt8))
	buf.AddByte(1)

	_, err := Decode(buf.Bytes(), nil)
	if _, ok := err.(*CorruptedDataError); !ok {
		t.Fatalf("expected *CorruptedDataError, got %v", err)
	}
}

func TestNumVariantIndexOutOfRangeFails(t *testing.T) {
	_, err := NumVariant(200, nil)
	if _, ok := err.(*MalformedInputError); !ok {
		t.Fatalf("expected *MalformedInputError, got %v", err)
	}
}

func TestWriteNumtagOutOfRangeFails(t *testing.T) {
	buf := NewBuffer(4)
	err := WriteNumtag(buf, 128, false)
	if _, ok := err.(*MalformedInputError); !ok {
		t.Fatalf("expected *MalformedInputError, got %v", err)
	}
}

func TestArrayElementKindMismatchFails(t *testing.T) {
	_, err := Array(KindInt8, []*Tree{Int8(1), Str("nope")})
	if _, ok := err.(*MalformedInputError); !ok {
		t.Fatalf("expected *MalformedInputError, got %v", err)
	}
}

func TestDecodeTupleTableHostileCellCountFails(t *testing.T) {
	// rowCount=3 and colCount=3 each individually satisfy readCount's
	// per-field bound (the 3 column tag bytes that follow cover them),
	// but their product (9 cells) leaves no room for any cell data at
	// all: checkCellBudget must catch this even though neither count
	// alone looks hostile.
	buf := NewBuffer(16)
	buf.AddByte(byte(KindTupleTable))
	WriteUvint(buf, 3)
	WriteUvint(buf, 3)
	buf.AddByte(byte(KindInt8))
	buf.AddByte(byte(KindInt8))
	buf.AddByte(byte(KindInt8))

	_, err := Decode(buf.Bytes(), nil)
	if _, ok := err.(*CorruptedDataError); !ok {
		t.Fatalf("expected *CorruptedDataError, got %v", err)
	}
}

func TestDecodeUnknownArrayElementTagFails(t *testing.T) {
	buf := NewBuffer(16)
	buf.AddByte(byte(KindArray))
	WriteUvint(buf, 1)
	buf.AddByte(0xfe) // invalid element tag
	_, err := Decode(buf.Bytes(), nil)
	if _, ok := err.(*CorruptedDataError); !ok {
		t.Fatalf("expected *CorruptedDataError, got %v", err)
	}
}
