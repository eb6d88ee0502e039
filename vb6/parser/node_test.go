package parser

import (
	"strings"
	"testing"
)

func TestNodeText(t *testing.T) {
	input := "Dim x As Long ' counter\n"
	tree, _ := FromText("test.bas", input)
	if tree.Root.Text() != input {
		t.Errorf("Text() = %q, want %q", tree.Root.Text(), input)
	}
}

func TestNodeChildLookup(t *testing.T) {
	tree, _ := FromText("test.bas", "Dim a As Long\nDim b As Long\nBeep\n")
	root := tree.Root

	first := root.FirstChildOfKind(KindDimStatement)
	if first == nil {
		t.Fatal("FirstChildOfKind found nothing")
	}
	if !strings.Contains(first.Text(), "a") {
		t.Errorf("FirstChildOfKind returned %q, want the first Dim", first.Text())
	}

	dims := root.ChildrenOfKind(KindDimStatement)
	if len(dims) != 2 {
		t.Errorf("ChildrenOfKind returned %d nodes, want 2", len(dims))
	}

	if root.FirstChildOfKind(KindForStatement) != nil {
		t.Error("FirstChildOfKind found a node that is not there")
	}
}

func TestNodeContainsKind(t *testing.T) {
	tree, _ := FromText("test.bas", "If a Then\n    x = y + 1\nEnd If\n")
	root := tree.Root

	// ContainsKind searches the whole subtree, tokens included.
	if !root.ContainsKind(KindBinaryExpression) {
		t.Error("binary expression not found in subtree")
	}
	if !root.ContainsKind(TokenThen) {
		t.Error("Then token not found in subtree")
	}
	if root.ContainsKind(KindSelectCaseStatement) {
		t.Error("found a kind that is not in the tree")
	}
}

func TestNodeIsError(t *testing.T) {
	tree, diags := FromText("test.bas", ") bad line\n")
	if len(diags) == 0 {
		t.Fatal("expected diagnostics")
	}
	errNode := tree.Root.Children[0].FirstChildOfKind(KindError)
	if errNode == nil {
		// Depending on recovery the Error node may be the statement itself.
		errNode = tree.Root.FirstChildOfKind(KindError)
	}
	if errNode == nil {
		t.Fatalf("no Error node:\n%s", tree.Dump())
	}
	if !errNode.IsError() {
		t.Error("IsError() = false on an Error node")
	}
	if errNode.Error == nil || errNode.Error.Message == "" {
		t.Error("Error node has no message")
	}
}

func TestNodeTokenLiteral(t *testing.T) {
	tree, _ := FromText("test.bas", "Beep\n")
	stmt := tree.Root.Children[0]
	kw := stmt.FirstChildOfKind(TokenBeep)
	if kw == nil {
		t.Fatal("keyword leaf not found")
	}
	if kw.TokenLiteral() != "Beep" {
		t.Errorf("TokenLiteral() = %q, want %q", kw.TokenLiteral(), "Beep")
	}
	if stmt.TokenLiteral() != "" {
		t.Errorf("TokenLiteral() on an interior node = %q, want empty", stmt.TokenLiteral())
	}
}

func TestNodeStringIndentation(t *testing.T) {
	tree, _ := FromText("test.bas", "x = 1\n")
	out := tree.Root.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "Root") {
		t.Errorf("first line = %q, want it to start with Root", lines[0])
	}
	var indented bool
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "  ") {
			indented = true
		}
	}
	if !indented {
		t.Errorf("children are not indented:\n%s", out)
	}
}
