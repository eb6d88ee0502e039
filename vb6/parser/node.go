package parser

import "strings"

// Error describes why an Error node was produced.
type Error struct {
	Message  string
	Expected []SyntaxKind
	Got      *Token
}

// Node is the uniform tree element. Interior nodes carry children; leaf
// nodes carry the token, trivia included. Every token of the input appears
// exactly once as a leaf, in document order, so Text reproduces the source.
type Node struct {
	Kind     SyntaxKind
	Span     Span
	Children []*Node
	Token    *Token
	Error    *Error
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) IsError() bool {
	return n.Kind == KindError
}

func (n *Node) FirstChildOfKind(kind SyntaxKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind SyntaxKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// ContainsKind reports whether the subtree rooted at n holds a node or
// token of the given kind, n itself included.
func (n *Node) ContainsKind(kind SyntaxKind) bool {
	if n.Kind == kind {
		return true
	}
	for _, child := range n.Children {
		if child.ContainsKind(kind) {
			return true
		}
	}
	return false
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

// Text concatenates the literals of every token below n in document order.
// For the root node this reproduces the parsed source byte for byte.
func (n *Node) Text() string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	if n.Token != nil {
		sb.WriteString(n.Token.Literal)
	}
	for _, child := range n.Children {
		child.writeText(sb)
	}
}

func (n *Node) String() string {
	return n.stringIndent(0, false)
}

func (n *Node) StringWithPositions() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showPositions bool) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix + n.Kind.String()
	if showPositions {
		result += " [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]"
	}
	if n.Token != nil {
		result += " " + n.Token.Literal
	}
	if n.Error != nil {
		result += " ERROR: " + n.Error.Message
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent+1, showPositions)
	}
	return result
}
