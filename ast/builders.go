// Constructor functions for programmatically building IR nodes. Front ends
// that generate CSS from code (utility expanders, token pipelines, template
// compilers) use these instead of filling in struct literals.
package ast

// NewRule creates a Rule with the given selector and children. An optional
// initial mapping sequence may be provided; most producers attach source
// mappings afterwards, or not at all.
//
// Example:
//
//	rule := ast.NewRule(".btn", []ast.Node{
//	    ast.NewDeclaration("color", "red"),
//	})
func NewRule(selector string, nodes []Node, mappings ...Mapping) *Rule {
	return &Rule{
		withMappings: withMappings{Mappings: mappings},
		Selector:     selector,
		Nodes:        nodes,
	}
}

// NewDeclaration creates a Declaration with the given property and value.
// Important always starts false; callers flip it afterwards when needed.
func NewDeclaration(property, value string, mappings ...Mapping) *Declaration {
	return &Declaration{
		withMappings: withMappings{Mappings: mappings},
		Property:     property,
		Value:        value,
	}
}

// NewComment creates a Comment with the given body. The body is emitted
// verbatim between the /* */ delimiters and may contain newlines.
func NewComment(value string, mappings ...Mapping) *Comment {
	return &Comment{
		withMappings: withMappings{Mappings: mappings},
		Value:        value,
	}
}
