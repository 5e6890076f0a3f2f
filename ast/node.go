// Package ast defines the typed syntax tree parser.Parse produces:
// containers that nest children, and leaves that don't. Both sides are
// represented by the same Node type rather than a container/leaf
// interface split, because every consumer (JSON serialization, span
// validation, fixture comparison) needs to walk the tree structurally
// without a type switch at every level.
package ast

import (
	"encoding/json"

	"github.com/wikiforge/ftml/token"
)

// Node is one element of the syntax tree.
type Node struct {
	Element    ElementType
	Attributes map[string]string
	Children   []*Node
	Span       token.Span

	// Value holds the literal text for a Text leaf. Unused otherwise.
	Value string
}

// NewText builds a Text leaf node.
func NewText(value string, span token.Span) *Node {
	return &Node{Element: Text, Value: value, Span: span}
}

// NewLeaf builds a leaf node carrying attributes but no children.
func NewLeaf(el ElementType, attrs map[string]string, span token.Span) *Node {
	return &Node{Element: el, Attributes: attrs, Span: span}
}

// NewContainer builds a container node with the given children.
func NewContainer(el ElementType, attrs map[string]string, children []*Node, span token.Span) *Node {
	return &Node{Element: el, Attributes: attrs, Children: children, Span: span}
}

// AddChild appends a child and widens n's span to cover it, if needed.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
	n.Span = n.Span.Join(child.Span)
}

// jsonNode mirrors the external AST JSON contract:
// {"element":"<tag>","attributes":{...},"children":[...],"span":[s,e]}
// with Text leaves serializing as {"element":"text","value":"..."}.
type jsonNode struct {
	Element    ElementType       `json:"element"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []*Node           `json:"children,omitempty"`
	Span       token.Span        `json:"span"`
	Value      *string           `json:"value,omitempty"`
}

// MarshalJSON implements the stable external AST contract.
func (n *Node) MarshalJSON() ([]byte, error) {
	jn := jsonNode{
		Element:    n.Element,
		Attributes: n.Attributes,
		Children:   n.Children,
		Span:       n.Span,
	}
	if n.Element == Text {
		v := n.Value
		jn.Value = &v
		jn.Attributes = nil
	}
	return json.Marshal(jn)
}

// UnmarshalJSON supports round-tripping fixture trees back into Nodes,
// used by the fixture-corpus comparison harness.
func (n *Node) UnmarshalJSON(data []byte) error {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return err
	}
	n.Element = jn.Element
	n.Attributes = jn.Attributes
	n.Children = jn.Children
	n.Span = jn.Span
	if jn.Value != nil {
		n.Value = *jn.Value
	}
	return nil
}

// SyntaxTree is the top-level parse result: an ordered list of
// top-level nodes (paragraphs and block-level containers/leaves).
type SyntaxTree struct {
	Children []*Node `json:"children"`
}
