// Package parse provides parsing based on EBNF grammars, producing concrete syntax trees.
package parse

import (
	"strings"

	"github.com/dhamidi/aoc/ebnf/lex"
)

// Span represents a range in source code.
type Span struct {
	Start lex.Position
	End   lex.Position
}

// Node represents a node in the concrete syntax tree.
// Leaf nodes have a non-nil Token; interior nodes have Children.
type Node struct {
	Kind     string     // Production name or token kind
	Children []*Node    // Child nodes (nil for terminals)
	Token    *lex.Token // The token (non-nil for terminals)
	Span     Span       // Source span covering this node
}

// IsTerminal returns true if this is a leaf node (token).
func (n *Node) IsTerminal() bool {
	return n.Token != nil
}

// Text returns the source text of this node without skipped tokens.
// For terminals, returns the token literal; for interior nodes, the
// concatenated literals of all leaves.
func (n *Node) Text() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	var sb strings.Builder
	n.Walk(func(leaf *Node) bool {
		if leaf.Token != nil {
			sb.WriteString(leaf.Token.Literal)
		}
		return true
	})
	return sb.String()
}

// Child returns the first direct child of the given kind, or nil.
func (n *Node) Child(kind string) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOf returns all direct children of the given kind.
func (n *Node) ChildrenOf(kind string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// AddChild appends a child node and updates the span.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
	if len(n.Children) == 1 {
		n.Span.Start = child.Span.Start
	}
	n.Span.End = child.Span.End
}

// NewTerminal creates a terminal node from a token.
func NewTerminal(tok lex.Token) *Node {
	return &Node{
		Kind:  tok.Kind,
		Token: &tok,
		Span: Span{
			Start: tok.Position,
			End: lex.Position{
				Filename: tok.Position.Filename,
				Offset:   tok.Position.Offset + len(tok.Literal),
				Line:     tok.Position.Line,
				Column:   tok.Position.Column + len(tok.Literal),
			},
		},
	}
}

// NewNonTerminal creates a non-terminal node.
func NewNonTerminal(kind string) *Node {
	return &Node{
		Kind:     kind,
		Children: make([]*Node, 0),
	}
}
