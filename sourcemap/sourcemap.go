// Package sourcemap turns the mapping records accumulated on IR nodes into
// a Source Map v3 document.
//
// The printer fills in the destination side of each mapping; the producer
// that built the tree fills in the source side. They arrive as separate
// records on the same node, so Generate pairs them per node: the k-th
// source-only record with the k-th destination-only one, together with any
// record that already carries both sides. Paired records are encoded as the
// base64-VLQ "mappings" string the source-map format requires; sides left
// without a partner are skipped.
package sourcemap

import (
	"encoding/json"
	"slices"

	"github.com/cssckit/cssc/ast"
)

// Map is a Source Map v3 document.
type Map struct {
	Version    int      `json:"version"`
	File       string   `json:"file,omitempty"`
	SourceRoot string   `json:"sourceRoot,omitempty"`
	Sources    []string `json:"sources"`
	Names      []string `json:"names"`
	Mappings   string   `json:"mappings"`
}

// record pairs one source location with one output location.
type record struct {
	dst ast.Location
	src ast.Location
}

// Generate builds a source map for the given forest, attributing all output
// positions to a single logical source file. Ordering is deterministic: by
// destination line, then destination column, then source position.
func Generate(nodes []ast.Node, source string) *Map {
	var records []record

	ast.Walk(nodes, func(n ast.Node, _ *ast.WalkContext) ast.WalkAction {
		var sources, destinations []ast.Location
		for _, m := range ast.NodeMappings(n) {
			switch {
			case m.Source != nil && m.Destination != nil:
				records = append(records, record{
					dst: m.Destination.Start,
					src: m.Source.Start,
				})
			case m.Source != nil:
				sources = append(sources, m.Source.Start)
			case m.Destination != nil:
				destinations = append(destinations, m.Destination.Start)
			}
		}
		for i := 0; i < len(sources) && i < len(destinations); i++ {
			records = append(records, record{dst: destinations[i], src: sources[i]})
		}
		return ast.Continue
	})

	slices.SortFunc(records, compareRecords)

	return &Map{
		Version:  3,
		Sources:  []string{source},
		Names:    []string{},
		Mappings: encodeMappings(records),
	}
}

// JSON serializes the map as a source-map JSON document.
func (m *Map) JSON() ([]byte, error) {
	return json.Marshal(m)
}

func compareRecords(a, b record) int {
	if a.dst.Line != b.dst.Line {
		return a.dst.Line - b.dst.Line
	}
	if a.dst.Column != b.dst.Column {
		return a.dst.Column - b.dst.Column
	}
	if a.src.Line != b.src.Line {
		return a.src.Line - b.src.Line
	}
	return a.src.Column - b.src.Column
}

// encodeMappings renders the records as the semicolon/comma separated
// base64-VLQ segment list of the source-map format. Segments are
// [generated column, source index, source line, source column], each
// delta-encoded against the previous segment. Lines and columns are
// 0-indexed on the wire; IR locations carry 1-indexed lines.
func encodeMappings(records []record) string {
	var (
		buf           []byte
		line          = 1
		prevDstCol    int
		prevSrcLine   int
		prevSrcCol    int
		segmentOnLine bool
	)

	for _, r := range records {
		for line < r.dst.Line {
			buf = append(buf, ';')
			line++
			prevDstCol = 0
			segmentOnLine = false
		}

		if segmentOnLine {
			buf = append(buf, ',')
		}
		segmentOnLine = true

		buf = appendVLQ(buf, r.dst.Column-prevDstCol)
		prevDstCol = r.dst.Column

		// Single source file, so the source index delta is always zero.
		buf = appendVLQ(buf, 0)

		buf = appendVLQ(buf, (r.src.Line-1)-prevSrcLine)
		prevSrcLine = r.src.Line - 1

		buf = appendVLQ(buf, r.src.Column-prevSrcCol)
		prevSrcCol = r.src.Column
	}

	return string(buf)
}

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// appendVLQ appends the signed value in base64 VLQ form: the sign moves to
// the lowest bit, then 5-bit groups from least significant, with bit 6 as
// the continuation marker.
func appendVLQ(dst []byte, v int) []byte {
	u := v << 1
	if v < 0 {
		u = (-v << 1) | 1
	}

	for {
		digit := u & 0x1f
		u >>= 5
		if u != 0 {
			digit |= 0x20
		}
		dst = append(dst, base64Alphabet[digit])
		if u == 0 {
			return dst
		}
	}
}
