package ttree

import "testing"

// These are the literal byte-exact scenarios worked through by hand.
// Scenario 4/5's hash value is the one actually produced by HashName's
// documented recurrence (4845666, 0x49f062) rather than the arithmetic
// slip in some renditions of this example (4862533); see DESIGN.md.

func mustEncode(t *testing.T, tree *Tree) []byte {
	t.Helper()
	b, err := Encode(tree)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return b
}

func TestGoldenUvintZero(t *testing.T) {
	got := mustEncode(t, Uvint(0))
	want := []byte{0x10, 0x00}
	if !equalBytes(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestGoldenInt16(t *testing.T) {
	got := mustEncode(t, Int16(0x0102))
	want := []byte{0x02, 0x01, 0x02}
	if !equalBytes(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestGoldenString(t *testing.T) {
	got := mustEncode(t, Str("ab"))
	want := []byte{0x12, 0x02, 0x61, 0x62}
	if !equalBytes(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestGoldenVariantNoArg(t *testing.T) {
	got := mustEncode(t, Variant("abc", nil))
	want := []byte{0x17, 0x00, 0x49, 0xf0, 0x62}
	if !equalBytes(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestGoldenVariantWithArg(t *testing.T) {
	got := mustEncode(t, Variant("abc", Int8(5)))
	want := []byte{0x17, 0x80, 0x49, 0xf0, 0x62, 0x01, 0x05}
	if !equalBytes(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestGoldenArray(t *testing.T) {
	arr, err := Array(KindInt8, []*Tree{Int8(1), Int8(2), Int8(3)})
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	got := mustEncode(t, arr)
	want := []byte{0x13, 0x03, 0x01, 0x01, 0x02, 0x03}
	if !equalBytes(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestGoldenNumVariantNoArg(t *testing.T) {
	nv, err := NumVariant(3, nil)
	if err != nil {
		t.Fatalf("NumVariant: %v", err)
	}
	got := mustEncode(t, nv)
	want := []byte{0x16, 0x03}
	if !equalBytes(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestGoldenNumVariantWithArg(t *testing.T) {
	nv, err := NumVariant(3, Int8(0))
	if err != nil {
		t.Fatalf("NumVariant: %v", err)
	}
	got := mustEncode(t, nv)
	want := []byte{0x16, 0x83, 0x01, 0x00}
	if !equalBytes(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestTagAgreementAcrossKinds(t *testing.T) {
	trees := []*Tree{
		Int8(1), Int16(1), Int32(1), Int64(1), Float64(1),
		Uvint(1), Svint(1), Str("x"), Tuple(nil), Record(nil),
	}
	for _, tr := range trees {
		encoded := mustEncode(t, tr)
		if Kind(encoded[0]) != tr.Kind() {
			t.Errorf("tag mismatch for %s: first byte %#02x", tr.Kind(), encoded[0])
		}
	}
}
