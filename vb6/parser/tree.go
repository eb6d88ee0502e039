package parser

// Tree is the result of parsing one source file. It is not modified after
// construction; callers share trees freely across goroutines.
type Tree struct {
	SourceName string
	Root       *Node
}

// Text reproduces the original source byte for byte.
func (t *Tree) Text() string {
	return t.Root.Text()
}

// Dump renders the tree as an indented kind listing with token text, one
// node per line.
func (t *Tree) Dump() string {
	return t.Root.String()
}

// DumpWithPositions is Dump with the span of each node appended.
func (t *Tree) DumpWithPositions() string {
	return t.Root.StringWithPositions()
}
