// bench measures ttree encode/decode throughput against a handful of
// synthetic trees representative of the shapes the format is meant for:
// a flat record, a nested record-of-arrays, a wide record_table, and an
// array of strings.
//
// Output: CSV and a markdown summary, mirroring the shape of the
// codec's own benchmark reports so results are easy to diff over time.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Neumenon/ttree/ttree"
)

type caseResult struct {
	Name          string
	EncodedBytes  int
	EncodeNsPerOp float64
	DecodeNsPerOp float64
}

const iterations = 2000

func main() {
	cases := []struct {
		name string
		tree *ttree.Tree
	}{
		{"flat_record", flatRecord()},
		{"nested_record", nestedRecord()},
		{"record_table_wide", recordTableWide(200)},
		{"array_of_strings", arrayOfStrings(500)},
	}

	var results []caseResult
	for _, c := range cases {
		r, err := benchmark(c.name, c.tree)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", c.name, err)
			continue
		}
		results = append(results, r)
	}

	csvPath := "bench_results.csv"
	if f, err := os.Create(csvPath); err == nil {
		writeCSV(f, results)
		f.Close()
		fmt.Fprintf(os.Stderr, "CSV written to: %s\n", csvPath)
	}

	mdPath := "BENCH.md"
	if f, err := os.Create(mdPath); err == nil {
		writeMarkdown(f, results)
		f.Close()
		fmt.Fprintf(os.Stderr, "Markdown written to: %s\n", mdPath)
	}

	fmt.Println("\n=== SUMMARY ===")
	for _, r := range results {
		fmt.Printf("%-20s %8d bytes  encode %8.1f ns/op  decode %8.1f ns/op\n",
			r.Name, r.EncodedBytes, r.EncodeNsPerOp, r.DecodeNsPerOp)
	}
}

func benchmark(name string, tree *ttree.Tree) (caseResult, error) {
	encoded, err := ttree.Encode(tree)
	if err != nil {
		return caseResult{}, err
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := ttree.Encode(tree); err != nil {
			return caseResult{}, err
		}
	}
	encodeElapsed := time.Since(start)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := ttree.Decode(encoded, nil); err != nil {
			return caseResult{}, err
		}
	}
	decodeElapsed := time.Since(start)

	return caseResult{
		Name:          name,
		EncodedBytes:  len(encoded),
		EncodeNsPerOp: float64(encodeElapsed.Nanoseconds()) / float64(iterations),
		DecodeNsPerOp: float64(decodeElapsed.Nanoseconds()) / float64(iterations),
	}, nil
}

func flatRecord() *ttree.Tree {
	return ttree.Record([]ttree.Field{
		ttree.NewField("id", ttree.Uvint(42)),
		ttree.NewField("name", ttree.Str("widget")),
		ttree.NewField("price", ttree.Float64(19.99)),
		ttree.NewField("active", ttree.Int8(1)),
	})
}

func nestedRecord() *ttree.Tree {
	tags, _ := ttree.Array(ttree.KindString, []*ttree.Tree{
		ttree.Str("a"), ttree.Str("b"), ttree.Str("c"),
	})
	return ttree.Record([]ttree.Field{
		ttree.NewField("root", flatRecord()),
		ttree.NewField("tags", tags),
	})
}

func recordTableWide(rows int) *ttree.Tree {
	header := []ttree.Column{
		ttree.NewColumn("id", ttree.KindUvint),
		ttree.NewColumn("x", ttree.KindFloat64),
		ttree.NewColumn("y", ttree.KindFloat64),
		ttree.NewColumn("label", ttree.KindString),
	}
	data := make([][]*ttree.Tree, rows)
	for i := 0; i < rows; i++ {
		data[i] = []*ttree.Tree{
			ttree.Uvint(uint64(i)),
			ttree.Float64(float64(i) * 1.5),
			ttree.Float64(float64(i) * -0.5),
			ttree.Str(fmt.Sprintf("row-%d", i)),
		}
	}
	tbl, err := ttree.RecordTable(header, data)
	if err != nil {
		panic(err)
	}
	return tbl
}

func arrayOfStrings(n int) *ttree.Tree {
	items := make([]*ttree.Tree, n)
	for i := range items {
		items[i] = ttree.Str(fmt.Sprintf("item-%d", i))
	}
	arr, err := ttree.Array(ttree.KindString, items)
	if err != nil {
		panic(err)
	}
	return arr
}

func writeCSV(w io.Writer, results []caseResult) {
	fmt.Fprintln(w, "name,encoded_bytes,encode_ns_per_op,decode_ns_per_op")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%d,%.1f,%.1f\n", r.Name, r.EncodedBytes, r.EncodeNsPerOp, r.DecodeNsPerOp)
	}
}

func writeMarkdown(w io.Writer, results []caseResult) {
	fmt.Fprintf(w, "# ttree Benchmark Results\n\n")
	fmt.Fprintf(w, "| Case | Encoded Bytes | Encode ns/op | Decode ns/op |\n")
	fmt.Fprintf(w, "|------|---------------|--------------|--------------|\n")
	for _, r := range results {
		fmt.Fprintf(w, "| %s | %d | %.1f | %.1f |\n", r.Name, r.EncodedBytes, r.EncodeNsPerOp, r.DecodeNsPerOp)
	}
}
