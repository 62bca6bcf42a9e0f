// Package ast declares the node types of the CSS intermediate representation.
//
// The IR is an ordered forest of rules, declarations, and comments. It is
// produced by an external front end (a utility-class expander, a design-token
// generator, any program that decides which CSS to emit), rewritten in place
// by transform passes using Walk, and serialized by the printer package. The
// node set is closed: every node is a *Rule, a *Declaration, or a *Comment,
// and consumers may type-switch exhaustively over these three.
package ast

// Selector and property literals the printer gives special treatment. They
// are plain strings, not separate node kinds, so the variant set stays
// closed; producers opt into the behavior by using the literal.
const (
	// AtRootSelector marks a rule whose children are withheld from their
	// position and emitted at the top level after all other output.
	AtRootSelector = "@at-root"

	// UtilitiesSelector marks a rule that is transparent in output: its
	// children are emitted at the current depth with no wrapping block.
	UtilitiesSelector = "@tailwind utilities"

	// SortProperty is an ordering-only marker. Declarations carrying it are
	// meaningful to sorting passes but never reach the output.
	SortProperty = "--tw-sort"
)

// Node is the interface implemented by all IR node types.
type Node interface {
	WithMappings

	// Kind returns the wire name of the node's variant: "rule",
	// "declaration", or "comment".
	Kind() string
}

// WithMappings is the interface for nodes that accumulate source/output
// mapping records.
type WithMappings interface {
	AddMapping(...Mapping)
}

// withMappings is an embeddable struct that implements WithMappings.
type withMappings struct {
	Mappings []Mapping
}

func (w *withMappings) AddMapping(m ...Mapping) {
	w.Mappings = append(w.Mappings, m...)
}

// Rule represents either a qualified rule (selector plus a block of child
// nodes) or an at-rule (selector beginning with @). Child order is
// significant and preserved.
type Rule struct {
	withMappings
	Selector string
	Nodes    []Node
}

func (r *Rule) Kind() string { return "rule" }

// Declaration represents a single property: value pair. Important renders
// as a trailing !important. A declaration whose value is empty is a marker
// without output.
type Declaration struct {
	withMappings
	Property  string
	Value     string
	Important bool
}

func (d *Declaration) Kind() string { return "declaration" }

// Comment represents a comment body, without the enclosing /* */ delimiters.
// The body may span multiple lines.
type Comment struct {
	withMappings
	Value string
}

func (c *Comment) Kind() string { return "comment" }

// NodeMappings returns the mapping records accumulated on a node.
func NodeMappings(n Node) []Mapping {
	switch v := n.(type) {
	case *Rule:
		return v.Mappings
	case *Declaration:
		return v.Mappings
	case *Comment:
		return v.Mappings
	default:
		return nil
	}
}
