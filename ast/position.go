package ast

import "fmt"

// Location represents a single point in a text document, either in the
// logical source or in the generated output. Lines are 1-indexed, columns
// are 0-indexed.
type Location struct {
	Line   int `json:"line"`   // Line number (1-indexed)
	Column int `json:"column"` // Column number (0-indexed)
}

// String returns a human-readable representation of the location.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Range represents a contiguous span between two locations.
type Range struct {
	Start Location `json:"start"`
	End   Location `json:"end"`
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Mapping associates a span in the original input with a span in the
// generated output. Either side may be nil: a node with no known origin has
// no source range, and a node that has not been printed yet has no
// destination range.
//
// Mappings are append-only. A node accumulates one mapping per printing, so
// a node printed across several renders (or duplicated contexts) carries one
// record for each.
type Mapping struct {
	Source      *Range `json:"source,omitempty"`
	Destination *Range `json:"destination,omitempty"`
}
