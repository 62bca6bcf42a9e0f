package ast

// WalkAction is the directive a visitor returns to steer the walk.
type WalkAction int

const (
	// Continue descends into the node's children (for rules) and proceeds
	// to the next sibling. It is the zero value, so visitors that have no
	// opinion return it implicitly.
	Continue WalkAction = iota

	// Skip moves to the next sibling without descending into children.
	Skip

	// Stop terminates the entire walk immediately, unwinding all pending
	// ancestor frames.
	Stop
)

// Visitor is invoked once per node in depth-first pre-order. The context is
// only valid for the duration of the call.
type Visitor func(n Node, ctx *WalkContext) WalkAction

// WalkContext exposes the mutation hooks available to a visitor for the
// node currently being visited.
type WalkContext struct {
	nodes    *[]Node
	index    int
	replaced bool
}

// ReplaceWith removes the current node from its containing sequence and
// splices the given nodes in its place, preserving sibling order. Calling it
// with no arguments deletes the node.
//
// After a replacement the walk resumes at the splice point, so every
// inserted node is itself visited (and may trigger further replacement)
// before the walk advances. Termination is the visitor's obligation: a
// visitor that unconditionally replaces a node with itself will spin.
func (ctx *WalkContext) ReplaceWith(repl ...Node) {
	s := *ctx.nodes
	out := make([]Node, 0, len(s)-1+len(repl))
	out = append(out, s[:ctx.index]...)
	out = append(out, repl...)
	out = append(out, s[ctx.index+1:]...)
	*ctx.nodes = out
	ctx.replaced = true
}

// Walk traverses the forest depth-first in pre-order, invoking visit on
// every node including nodes the visitor splices in during the walk. Child
// lists of rules are edited in place; the (possibly respliced) top-level
// forest is returned and should be used by the caller from then on.
//
// Walk does not validate node shapes. The tree invariants (single ownership,
// no cycles) are the caller's contract.
func Walk(nodes []Node, visit Visitor) []Node {
	walk(&nodes, visit)
	return nodes
}

// walk reports false when the visitor requested Stop.
func walk(nodes *[]Node, visit Visitor) bool {
	for i := 0; i < len(*nodes); i++ {
		ctx := &WalkContext{nodes: nodes, index: i}
		action := visit((*nodes)[i], ctx)

		if ctx.replaced {
			if action == Stop {
				return false
			}
			// Rewind so the walk revisits the splice point and sees the
			// inserted nodes.
			i--
			continue
		}

		switch action {
		case Stop:
			return false
		case Skip:
			continue
		}

		if rule, ok := (*nodes)[i].(*Rule); ok {
			if !walk(&rule.Nodes, visit) {
				return false
			}
		}
	}
	return true
}
