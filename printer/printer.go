// Package printer serializes the CSS intermediate representation to CSS
// text in a single pass.
//
// Beyond plain block syntax, the printer implements the structural rules the
// code generator relies on: @at-root children are hoisted to the end of the
// output, @tailwind utilities rules are transparent, bodyless at-rules print
// as statements, top-level @property registrations are emitted at most once
// per render, and marker declarations (--tw-sort, empty values) are dropped.
//
// With destination tracking enabled, every emitted node receives one
// appended mapping record pointing at the first character of its first
// output line, which the sourcemap package pairs with the source ranges
// producers attached.
package printer

import (
	"strings"

	"github.com/cssckit/cssc/ast"
)

// IndentWidth is the number of spaces per nesting level.
const IndentWidth = 2

// Printer renders a forest of IR nodes to CSS text.
type Printer struct {
	// TrackDestinations appends a destination mapping to each emitted node.
	// Default: false.
	TrackDestinations bool
}

// Option is a functional option for configuring a Printer.
type Option func(*Printer)

// WithDestinations enables or disables destination mapping records.
func WithDestinations(track bool) Option {
	return func(p *Printer) {
		p.TrackDestinations = track
	}
}

// New creates a new Printer with the given options.
func New(opts ...Option) *Printer {
	p := &Printer{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// renderState is the per-call state of one Print invocation. The @property
// dedup set and the @at-root hoist buffer live here, never at package level,
// so concurrent renders of different trees stay independent and nothing
// leaks across calls.
type renderState struct {
	buf    strings.Builder
	cursor ast.Location
	track  bool

	// seenProperties holds the @property selectors already emitted at depth
	// zero during this render.
	seenProperties map[string]struct{}

	// hoisted collects children of @at-root rules, flushed at depth zero
	// after the main forest.
	hoisted []ast.Node
}

// Print renders the forest to CSS text with 2-space indentation and
// newline-terminated statements. The input tree is not mutated; printing the
// same tree twice produces identical text.
//
// With destination tracking enabled, each emitted node additionally gains
// one mapping record (appended, never reset) whose destination is a
// zero-width range at the node's first output line.
func (p *Printer) Print(nodes []ast.Node) string {
	st := &renderState{
		cursor:         ast.Location{Line: 1, Column: 0},
		track:          p.TrackDestinations,
		seenProperties: make(map[string]struct{}),
	}

	st.renderNodes(nodes, 0)

	// Flush hoisted content at depth zero. Hoisted rules may themselves
	// contain @at-root rules, so drain until no new batches appear.
	for len(st.hoisted) > 0 {
		batch := st.hoisted
		st.hoisted = nil
		st.renderNodes(batch, 0)
	}

	return st.buf.String()
}

func (st *renderState) renderNodes(nodes []ast.Node, depth int) {
	for _, n := range nodes {
		st.renderNode(n, depth)
	}
}

func (st *renderState) renderNode(n ast.Node, depth int) {
	switch node := n.(type) {
	case *ast.Rule:
		st.renderRule(node, depth)
	case *ast.Declaration:
		st.renderDeclaration(node, depth)
	case *ast.Comment:
		st.renderComment(node, depth)
	}
}

func (st *renderState) renderRule(r *ast.Rule, depth int) {
	switch r.Selector {
	case ast.AtRootSelector:
		// Nothing at this position; the children surface after the main
		// forest, in encounter order.
		st.hoisted = append(st.hoisted, r.Nodes...)
		return
	case ast.UtilitiesSelector:
		// Transparent in output: children inline at the current depth.
		st.renderNodes(r.Nodes, depth)
		return
	}

	indent := strings.Repeat(" ", depth*IndentWidth)

	// A bodyless at-rule is a statement, not an empty block.
	if strings.HasPrefix(r.Selector, "@") && len(r.Nodes) == 0 {
		st.record(r, depth)
		st.buf.WriteString(indent)
		st.buf.WriteString(r.Selector)
		st.buf.WriteString(";\n")
		st.advance(1)
		return
	}

	// Top-level custom-property registrations are emitted at most once per
	// render. Nested ones are never deduplicated.
	if depth == 0 && strings.HasPrefix(r.Selector, "@property ") {
		if _, seen := st.seenProperties[r.Selector]; seen {
			return
		}
		st.seenProperties[r.Selector] = struct{}{}
	}

	st.record(r, depth)
	st.buf.WriteString(indent)
	st.buf.WriteString(r.Selector)
	st.buf.WriteString(" {\n")
	st.advance(1)

	st.renderNodes(r.Nodes, depth+1)

	st.buf.WriteString(indent)
	st.buf.WriteString("}\n")
	st.advance(1)
}

func (st *renderState) renderDeclaration(d *ast.Declaration, depth int) {
	// Marker declarations never reach the output.
	if d.Property == ast.SortProperty || d.Value == "" {
		return
	}

	st.record(d, depth)
	st.buf.WriteString(strings.Repeat(" ", depth*IndentWidth))
	st.buf.WriteString(d.Property)
	st.buf.WriteString(": ")
	st.buf.WriteString(d.Value)
	if d.Important {
		st.buf.WriteString("!important")
	}
	st.buf.WriteString(";\n")

	// Multi-line custom-property values shift subsequent output lines.
	st.advance(1 + strings.Count(d.Value, "\n"))
}

func (st *renderState) renderComment(c *ast.Comment, depth int) {
	st.record(c, depth)
	st.buf.WriteString(strings.Repeat(" ", depth*IndentWidth))
	st.buf.WriteString("/*")
	st.buf.WriteString(c.Value)
	st.buf.WriteString("*/\n")
	st.advance(1 + strings.Count(c.Value, "\n"))
}

// record appends a destination-only mapping for the node's first output
// line. The source side stays nil; producers fill it in before or after
// rendering.
func (st *renderState) record(n ast.Node, depth int) {
	if !st.track {
		return
	}

	loc := ast.Location{Line: st.cursor.Line, Column: depth * IndentWidth}
	n.AddMapping(ast.Mapping{
		Destination: &ast.Range{Start: loc, End: loc},
	})
}

// advance moves the output cursor down by the number of physical lines the
// node just emitted.
func (st *renderState) advance(lines int) {
	if !st.track {
		return
	}
	st.cursor.Line += lines
}
