// Package ttree implements TTREE, a self-describing binary serialization
// format for a tagged tree of typed values.
//
// TTREE is length-prefixed and schema-optional: every node written in
// "tagged" form carries a one-byte kind tag, so a decoder can walk an
// unknown tree without any side-channel schema. Tabular node kinds
// (TupleTable, RecordTable, Matrix) factor a shared column schema out
// of the row data and write cells untagged, which is where the bulk of
// the format's compactness comes from.
//
// # Data model
//
// A Tree is one of seventeen kinds: the fixed-width integers Int8/16/32/64,
// an opaque Int128, Float64, the variable-length Uvint/Svint, String,
// and the recursive Array, Tuple, Record, NumVariant, Variant,
// TupleTable, RecordTable and Matrix. See Kind for the full registry and
// the wire tag assigned to each.
//
// # Field hashing
//
// Record fields and Variant tags are not carried on the wire by name.
// Instead the producer's field name is folded to a 31-bit Hash with
// HashName, and only the hash travels on the wire. Decoding recovers a
// human-readable name via an Unhash function built with NewUnhash;
// names are purely informational; a Hash decodes correctly with no
// Unhash at all.
//
// # Encoding and decoding
//
// Encode writes a Tree in its top-level tagged form. Decode reads one
// top-level node starting at offset zero; trailing bytes are not
// consumed. Both operations are synchronous, single-threaded and
// allocate no shared state, so independent calls over disjoint buffers
// never need coordination.
package ttree
