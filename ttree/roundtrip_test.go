package ttree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, tree *Tree, unhash Unhash) *Tree {
	t.Helper()
	encoded, err := Encode(tree)
	require.NoError(t, err)
	require.Equal(t, byte(tree.Kind()), encoded[0], "tag agreement")
	decoded, err := Decode(encoded, unhash)
	require.NoError(t, err)
	return decoded
}

func TestRoundTripScalars(t *testing.T) {
	unhash := DefaultUnhash()

	got := roundTrip(t, Int8(200), unhash)
	v, err := got.AsInt8()
	require.NoError(t, err)
	require.EqualValues(t, 200, v)

	got = roundTrip(t, Int32(-12345), unhash)
	iv, err := got.AsInt32()
	require.NoError(t, err)
	require.EqualValues(t, -12345, iv)

	got = roundTrip(t, Float64(math.NaN()), unhash)
	fv, err := got.AsFloat64()
	require.NoError(t, err)
	require.True(t, math.IsNaN(fv), "NaN bit pattern must round-trip")

	got = roundTrip(t, Svint(-9999999999), unhash)
	sv, err := got.AsSvint()
	require.NoError(t, err)
	require.EqualValues(t, -9999999999, sv)
}

func TestRoundTripFloatBitExact(t *testing.T) {
	// NaN payloads are not canonicalized: the exact bit pattern must
	// survive, so comparisons here go through math.Float64bits rather
	// than float equality (which treats all NaNs as unequal to
	// themselves and would trivially fail a naive check anyway).
	bits := uint64(0x7ff8000000000001)
	v := math.Float64frombits(bits)
	got := roundTrip(t, Float64(v), DefaultUnhash())
	fv, err := got.AsFloat64()
	require.NoError(t, err)
	require.Equal(t, bits, math.Float64bits(fv))
}

func TestRoundTripArray(t *testing.T) {
	arr, err := Array(KindString, []*Tree{Str("a"), Str("bb"), Str("ccc")})
	require.NoError(t, err)
	got := roundTrip(t, arr, DefaultUnhash())
	elem, items, err := got.AsArray()
	require.NoError(t, err)
	require.Equal(t, KindString, elem)
	require.Len(t, items, 3)
	sv, _ := items[1].AsString()
	require.Equal(t, "bb", string(sv))
}

func TestRoundTripTuple(t *testing.T) {
	tup := Tuple([]*Tree{Int8(1), Str("hi"), Uvint(9)})
	got := roundTrip(t, tup, DefaultUnhash())
	items, err := got.AsTuple()
	require.NoError(t, err)
	require.Len(t, items, 3)
}

func TestRoundTripRecordWithUnhash(t *testing.T) {
	rec := Record([]Field{
		NewField("id", Uvint(42)),
		NewField("label", Str("widget")),
	})
	unhash, err := NewUnhash([]string{"id", "label"})
	require.NoError(t, err)

	got := roundTrip(t, rec, unhash)
	fields, err := got.AsRecord()
	require.NoError(t, err)
	require.Len(t, fields, 2)
	require.Equal(t, "id", fields[0].Name)
	require.Equal(t, "label", fields[1].Name)

	labelVal := got.Get("label")
	require.NotNil(t, labelVal)
	sv, _ := labelVal.AsString()
	require.Equal(t, "widget", string(sv))
}

func TestRoundTripVariantPreservesHash(t *testing.T) {
	v := Variant("Some", Int32(7))
	got := roundTrip(t, v, DefaultUnhash())
	h, name, arg, err := got.AsVariant()
	require.NoError(t, err)
	require.Equal(t, HashName("Some"), h)
	require.Equal(t, HashName("Some").String(), name) // unknown to DefaultUnhash
	iv, _ := arg.AsInt32()
	require.EqualValues(t, 7, iv)
}

func TestRoundTripNestedStructure(t *testing.T) {
	inner := Tuple([]*Tree{Int8(1), Int8(2)})
	arr, err := Array(KindTuple, []*Tree{inner, inner})
	require.NoError(t, err)
	rec := Record([]Field{NewField("pairs", arr)})

	got := roundTrip(t, rec, DefaultUnhash())
	pairs := got.Get("pairs")
	require.NotNil(t, pairs)
	_, items, err := pairs.AsArray()
	require.NoError(t, err)
	require.Len(t, items, 2)
	firstItems, err := items[0].AsTuple()
	require.NoError(t, err)
	require.Len(t, firstItems, 2)
}

func TestRoundTripInt128(t *testing.T) {
	v := Int128FromInt64(-1)
	got := roundTrip(t, Int128(v), DefaultUnhash())
	back, err := got.AsInt128()
	require.NoError(t, err)
	require.Equal(t, v, back)
	require.Equal(t, int64(-1), Int128ToBig(back).Int64())
}
