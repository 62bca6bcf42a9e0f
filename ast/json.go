package ast

import (
	"encoding/json"
	"fmt"
)

// The IR crosses process boundaries as a kind-discriminated JSON document.
// A front end written in any language emits a forest like
//
//	[{"kind": "rule", "selector": ".a", "nodes": [
//	   {"kind": "declaration", "property": "color", "value": "red"}]}]
//
// and this codec turns it into nodes and back. Mapping records survive the
// round trip, so source ranges attached by a producer reach the source-map
// emitter on the other side.

// jsonNode is the wire shape shared by all three node kinds. Which fields
// are meaningful depends on Kind.
type jsonNode struct {
	Kind      string            `json:"kind"`
	Selector  string            `json:"selector,omitempty"`
	Nodes     []json.RawMessage `json:"nodes,omitempty"`
	Property  string            `json:"property,omitempty"`
	Value     string            `json:"value,omitempty"`
	Important bool              `json:"important,omitempty"`
	Mappings  []Mapping         `json:"mappings,omitempty"`
}

// MarshalForest encodes a forest as a JSON array of kind-discriminated
// node objects.
func MarshalForest(nodes []Node) ([]byte, error) {
	raw, err := marshalNodes(nodes)
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

func marshalNodes(nodes []Node) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(nodes))
	for _, n := range nodes {
		raw, err := marshalNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func marshalNode(n Node) (json.RawMessage, error) {
	wire := jsonNode{Kind: n.Kind()}

	switch v := n.(type) {
	case *Rule:
		wire.Selector = v.Selector
		wire.Mappings = v.Mappings
		children, err := marshalNodes(v.Nodes)
		if err != nil {
			return nil, err
		}
		wire.Nodes = children
	case *Declaration:
		wire.Property = v.Property
		wire.Value = v.Value
		wire.Important = v.Important
		wire.Mappings = v.Mappings
	case *Comment:
		wire.Value = v.Value
		wire.Mappings = v.Mappings
	}

	return json.Marshal(wire)
}

// UnmarshalForest decodes a JSON array of node objects into a forest.
// An object with an unknown kind is an error.
func UnmarshalForest(data []byte) ([]Node, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return unmarshalNodes(raw)
}

func unmarshalNodes(raw []json.RawMessage) ([]Node, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	nodes := make([]Node, 0, len(raw))
	for _, r := range raw {
		n, err := unmarshalNode(r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func unmarshalNode(data json.RawMessage) (Node, error) {
	var wire jsonNode
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}

	switch wire.Kind {
	case "rule":
		children, err := unmarshalNodes(wire.Nodes)
		if err != nil {
			return nil, err
		}
		return NewRule(wire.Selector, children, wire.Mappings...), nil
	case "declaration":
		d := NewDeclaration(wire.Property, wire.Value, wire.Mappings...)
		d.Important = wire.Important
		return d, nil
	case "comment":
		return NewComment(wire.Value, wire.Mappings...), nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", wire.Kind)
	}
}
