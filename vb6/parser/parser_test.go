package parser

import (
	"encoding/json"
	"strings"
	"testing"
)

func countCategory(diags []Diagnostic, cat DiagnosticCategory) int {
	n := 0
	for _, d := range diags {
		if d.Category == cat {
			n++
		}
	}
	return n
}

func TestParseStatementKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  SyntaxKind
	}{
		{"Dim x As Long\n", KindDimStatement},
		{"Dim i As Integer, total As Long\n", KindDimStatement},
		{"Private counter As Long\n", KindDimStatement},
		{"Public WithEvents conn As Connection\n", KindDimStatement},
		{"Const MAX = 64\n", KindConstStatement},
		{"Private Const GREETING As String = \"hi\"\n", KindConstStatement},
		{"ReDim Preserve arr(1 To 20)\n", KindReDimStatement},
		{"Erase arr\n", KindEraseStatement},
		{"DefInt A-Z\n", KindDefTypeStatement},
		{"Option Explicit\n", KindOptionStatement},
		{"Option Base 1\n", KindOptionStatement},
		{"Attribute VB_Name = \"Module1\"\n", KindAttributeStatement},
		{"Implements IComparable\n", KindImplementsStatement},
		{"Public Event Progress(ByVal pct As Integer)\n", KindEventStatement},
		{"x = 1\n", KindAssignmentStatement},
		{"count& = count& + 1\n", KindAssignmentStatement},
		{"Set obj = New Collection\n", KindSetStatement},
		{"Let x = 2\n", KindLetStatement},
		{"Call DoWork(1, 2)\n", KindCallStatement},
		{"RaiseEvent Progress(50)\n", KindRaiseEventStatement},
		{"Form1.Show\n", KindExpressionStatement},
		{"MsgBox \"hi\", vbOKOnly\n", KindExpressionStatement},
		{"MsgBox \"m\", x = 1\n", KindExpressionStatement},
		{"DoWork items(i), found = True\n", KindExpressionStatement},
		{"matrix(i, j) = value\n", KindAssignmentStatement},
		{"obj.Text = \"hi\"\n", KindAssignmentStatement},
		{"rs!LastName = \"x\"\n", KindAssignmentStatement},
		{"GoTo Cleanup\n", KindGotoStatement},
		{"GoSub 100\n", KindGoSubStatement},
		{"Return\n", KindReturnStatement},
		{"Resume Next\n", KindResumeStatement},
		{"Exit Sub\n", KindExitStatement},
		{"On Error GoTo Fail\n", KindOnErrorStatement},
		{"On Error Resume Next\n", KindOnErrorStatement},
		{"On n GoTo 10, 20, 30\n", KindOnGotoStatement},
		{"Beep\n", KindBeepStatement},
		{"Stop\n", KindStopStatement},
		{"End\n", KindEndStatement},
		{"Unload Me\n", KindUnloadStatement},
		{"Open \"f.txt\" For Input As #1\n", KindOpenStatement},
		{"Close #1\n", KindCloseStatement},
		{"Print #1, \"x\"; y\n", KindPrintStatement},
		{"Line Input #1, s$\n", KindLineInputStatement},
		{"Kill \"temp.dat\"\n", KindKillStatement},
		{"Mid(s, 1, 2) = \"ab\"\n", KindMidStatement},
		{"LSet rec = other\n", KindLSetStatement},
		{"Randomize\n", KindRandomizeStatement},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree, diags := FromText("test.bas", tt.input)
			if len(diags) != 0 {
				t.Errorf("got %d diagnostics, want 0: %v", len(diags), diags)
			}
			if len(tree.Root.Children) == 0 {
				t.Fatal("no statements parsed")
			}
			if got := tree.Root.Children[0].Kind; got != tt.kind {
				t.Errorf("statement kind = %v, want %v", got, tt.kind)
			}
			if tree.Text() != tt.input {
				t.Errorf("round trip mismatch:\ngot  %q\nwant %q", tree.Text(), tt.input)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank lines and comments", "  \n' only a comment\n\n"},
		{"no trailing newline", "Beep"},
		{"colon separators", "x = 1: y = 2: Beep\n"},
		{"line continuation", "total = a _\n  + b _\n  + c\n"},
		{"escaped string", "s = \"he said \"\"hi\"\"\"\n"},
		{"date literal", "d = #1/15/2000#\n"},
		{"radix literals", "v = &HFF00 + &O777&\n"},
		{"type suffixes", "count& = count& + len%\nname$ = \"x\"\n"},
		{"bang access", "v = rs!Name\n"},
		{"crlf endings", "If a Then\r\n    b = 1\r\nEnd If\r\n"},
		{"garbage run", "= = =\n) ) )\n+ , ;\n"},
		{"stray bytes", "x = \x01\xfe + 1\n"},
		{
			"form module",
			`VERSION 5.00
Begin VB.Form frmMain
   Caption         =   "Main"
   ClientHeight    =   3090
   Begin VB.CommandButton cmdGo
      Caption         =   "Go"
   End
End
Attribute VB_Name = "frmMain"
Option Explicit

Private Declare Function GetTickCount Lib "kernel32" () As Long

Private Type Point
    x As Long
    y As Long
End Type

Private Enum Mode
    ModeIdle = 0
    ModeBusy
End Enum

Private Sub Form_Load()
    Dim i As Integer, total As Long
    On Error GoTo Fail
    For i = 1 To 10 Step 2
        total = total + i
    Next i
    Do While total > 0
        total = total \ 2
    Loop
    Select Case total
        Case 0
            Beep
        Case 1 To 5, Is > 100
            total = 0
        Case Else
            total = -1
    End Select
    With Me
        .Caption = "done " & CStr(total)
    End With
    Exit Sub
Fail:
    Resume Next
End Sub
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, _ := FromText("test.frm", tt.input)
			if tree.Text() != tt.input {
				t.Errorf("round trip mismatch:\ngot  %q\nwant %q", tree.Text(), tt.input)
			}
		})
	}
}

// Parsing the reconstructed text again yields the same tree, defects
// included.
func TestParseReconstructedTextIdempotent(t *testing.T) {
	inputs := []string{
		"Option Explicit\n\nSub Demo()\n    If ready Then\n        count = count + 1\n    End If\nEnd Sub\n",
		"Sub Broken()\n    Do\n        x = 1\nEnd Sub\n",
		"= = =\n) bad line\n",
	}
	for _, input := range inputs {
		first, _ := FromText("test.bas", input)
		second, _ := FromText("test.bas", first.Text())

		want, err := json.Marshal(first)
		if err != nil {
			t.Fatalf("marshal first tree: %v", err)
		}
		got, err := json.Marshal(second)
		if err != nil {
			t.Fatalf("marshal second tree: %v", err)
		}
		if string(got) != string(want) {
			t.Errorf("reparse of %q changed the tree:\ngot  %s\nwant %s", input, got, want)
		}
	}
}

func TestParseFormModuleClean(t *testing.T) {
	input := `VERSION 5.00
Begin VB.Form frmMain
   Caption = "Main"
End
Attribute VB_Name = "frmMain"
Option Explicit

Private Sub Form_Load()
    Caption = "ready"
End Sub
`
	tree, diags := FromText("frmMain.frm", input)
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	for _, kind := range []SyntaxKind{
		KindVersionStatement, KindPropertiesBlock, KindAttributeStatement,
		KindOptionStatement, KindSubStatement,
	} {
		if !tree.Root.ContainsKind(kind) {
			t.Errorf("tree is missing a %v node", kind)
		}
	}
}

// A trailing comment belongs to the statement it follows, not to the root.
func TestParseTriviaAttachment(t *testing.T) {
	input := "Beep ' note\n"
	tree, diags := FromText("test.bas", input)
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	if len(tree.Root.Children) != 1 {
		t.Fatalf("got %d root children, want 1", len(tree.Root.Children))
	}
	stmt := tree.Root.Children[0]
	if stmt.Kind != KindBeepStatement {
		t.Errorf("statement kind = %v, want %v", stmt.Kind, KindBeepStatement)
	}
	if !stmt.ContainsKind(TokenComment) {
		t.Error("comment not attached to the statement")
	}
	if tree.Root.FirstChildOfKind(TokenComment) != nil {
		t.Error("comment attached to the root instead of the statement")
	}
	if stmt.Text() != input {
		t.Errorf("statement text = %q, want %q", stmt.Text(), input)
	}
}

func TestParseExpressionShapes(t *testing.T) {
	tests := []struct {
		input string
		kind  SyntaxKind
	}{
		{"x = 42\n", KindLiteralExpression},
		{"x = y\n", KindIdentifierExpression},
		{"x = a + b\n", KindBinaryExpression},
		{"x = -a\n", KindUnaryExpression},
		{"x = Not ok\n", KindUnaryExpression},
		{"x = (a)\n", KindParenthesizedExpression},
		{"x = obj.Value\n", KindMemberAccessExpression},
		{"x = rs!Name\n", KindMemberAccessExpression},
		{"x = arr(0)\n", KindCallExpression},
		{"x = Mid(s, 1, 3)\n", KindCallExpression},
		{"Set x = New Collection\n", KindNewExpression},
		{"x = AddressOf Handler\n", KindAddressOfExpression},
		{"x = TypeOf ctl Is TextBox\n", KindTypeOfExpression},
		{"DoIt x:=1, y:=2\n", KindNamedArgument},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree, diags := FromText("test.bas", tt.input)
			if len(diags) != 0 {
				t.Errorf("got %d diagnostics, want 0: %v", len(diags), diags)
			}
			if !tree.Root.ContainsKind(tt.kind) {
				t.Errorf("tree has no %v node:\n%s", tt.kind, tree.Dump())
			}
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	// Multiplication binds tighter, so the addition sits on top and its
	// right operand is the nested product.
	tree, diags := FromText("test.bas", "x = 2 + 3 * 4\n")
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	stmt := tree.Root.Children[0]
	top := stmt.FirstChildOfKind(KindBinaryExpression)
	if top == nil {
		t.Fatalf("no binary expression:\n%s", tree.Dump())
	}
	nested := top.FirstChildOfKind(KindBinaryExpression)
	if nested == nil {
		t.Fatalf("no nested binary expression:\n%s", tree.Dump())
	}
	if got := strings.TrimSpace(nested.Text()); got != "3 * 4" {
		t.Errorf("nested expression = %q, want %q", got, "3 * 4")
	}
	if top.Children[len(top.Children)-1] != nested {
		t.Error("product is not the right operand of the addition")
	}
}

func TestParsePrecedenceLeftAssociative(t *testing.T) {
	tree, diags := FromText("test.bas", "x = 10 - 4 - 3\n")
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	top := tree.Root.Children[0].FirstChildOfKind(KindBinaryExpression)
	if top == nil {
		t.Fatalf("no binary expression:\n%s", tree.Dump())
	}
	nested := top.FirstChildOfKind(KindBinaryExpression)
	if nested == nil {
		t.Fatalf("subtraction did not nest to the left:\n%s", tree.Dump())
	}
	if got := strings.TrimSpace(nested.Text()); got != "10 - 4" {
		t.Errorf("nested expression = %q, want %q", got, "10 - 4")
	}
	if top.Children[0] != nested {
		t.Error("nested subtraction is not the left operand")
	}
}

func TestParseNotBindsComparison(t *testing.T) {
	// Not a = b reads as Not (a = b).
	tree, diags := FromText("test.bas", "r = Not a = b\n")
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	unary := tree.Root.Children[0].FirstChildOfKind(KindUnaryExpression)
	if unary == nil {
		t.Fatalf("no unary expression:\n%s", tree.Dump())
	}
	if !unary.ContainsKind(KindBinaryExpression) {
		t.Error("comparison not nested under Not")
	}
}

func TestParseSingleLineIf(t *testing.T) {
	tree, diags := FromText("test.bas", "If ok Then x = 1 Else x = 2\n")
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	stmt := tree.Root.Children[0]
	if stmt.Kind != KindIfStatement {
		t.Fatalf("statement kind = %v, want %v", stmt.Kind, KindIfStatement)
	}
	if !stmt.ContainsKind(KindElseClause) {
		t.Error("inline Else clause missing")
	}
	if len(stmt.ChildrenOfKind(KindAssignmentStatement)) != 1 {
		t.Error("inline body not parsed as a statement")
	}
}

// `If x Then Else y = 1` has an empty then-part but is still the
// single-line form; the following lines belong to the surrounding block.
func TestParseSingleLineIfEmptyThen(t *testing.T) {
	tree, diags := FromText("test.bas", "If x Then Else y = 1\nBeep\n")
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	stmt := tree.Root.Children[0]
	if stmt.Kind != KindIfStatement {
		t.Fatalf("statement kind = %v, want %v", stmt.Kind, KindIfStatement)
	}
	clause := stmt.FirstChildOfKind(KindElseClause)
	if clause == nil {
		t.Fatal("inline Else clause missing")
	}
	if len(clause.ChildrenOfKind(KindAssignmentStatement)) != 1 {
		t.Error("Else body not parsed as a statement")
	}
	if len(tree.Root.ChildrenOfKind(KindBeepStatement)) != 1 {
		t.Errorf("next line swallowed by the If:\n%s", tree.Dump())
	}
}

func TestParseBlockIfClauses(t *testing.T) {
	input := `If a Then
    x = 1
ElseIf b Then
    x = 2
Else
    x = 3
End If
`
	tree, diags := FromText("test.bas", input)
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	stmt := tree.Root.Children[0]
	if stmt.FirstChildOfKind(KindElseIfClause) == nil {
		t.Error("ElseIf clause missing")
	}
	if stmt.FirstChildOfKind(KindElseClause) == nil {
		t.Error("Else clause missing")
	}
}

// A block missing its terminator produces exactly one diagnostic and does
// not swallow the enclosing block's End line.
func TestParseMissingEndIf(t *testing.T) {
	input := "Sub Demo()\n    If ready Then\n        count = 1\nEnd Sub\n"
	tree, diags := FromText("test.bas", input)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	if !strings.Contains(diags[0].Message, "End If") {
		t.Errorf("diagnostic = %q, want a missing End If", diags[0].Message)
	}
	sub := tree.Root.Children[0]
	if sub.Kind != KindSubStatement {
		t.Fatalf("statement kind = %v, want %v", sub.Kind, KindSubStatement)
	}
	if !strings.Contains(sub.Text(), "End Sub") {
		t.Error("End Sub was not kept by the procedure")
	}
	if tree.Text() != input {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", tree.Text(), input)
	}
}

func TestParseMissingTerminators(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"do without loop", "Do\n    x = 1\n", "missing Loop"},
		{"while without wend", "Sub S()\nWhile x > 0\n    x = x - 1\nEnd Sub\n", "missing Wend"},
		{"for without next", "For i = 1 To 3\n    y = i\n", "missing Next"},
		{"with without end", "With obj\n    .Value = 1\n", "missing End With"},
		{"select without end", "Select Case n\nCase 1\n    Beep\n", "missing End Select"},
		{"sub without end", "Sub S()\n    x = 1\n", "missing End Sub"},
		{"type without end", "Type T\n    a As Long\n", "missing End Type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, diags := FromText("test.bas", tt.input)
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
			}
			if !strings.Contains(diags[0].Message, tt.message) {
				t.Errorf("diagnostic = %q, want %q", diags[0].Message, tt.message)
			}
			if tree.Text() != tt.input {
				t.Errorf("round trip mismatch:\ngot  %q\nwant %q", tree.Text(), tt.input)
			}
		})
	}
}

func TestParseDanglingTerminator(t *testing.T) {
	tree, diags := FromText("test.bas", "End If\n")
	if countCategory(diags, DiagStructural) != 1 {
		t.Fatalf("got %d structural diagnostics, want 1: %v", len(diags), diags)
	}
	if !tree.Root.ContainsKind(KindError) {
		t.Error("dangling terminator did not become an Error node")
	}
}

func TestParseLabels(t *testing.T) {
	input := "Start:\nGoTo Start\n100\nGoTo 100\n"
	tree, diags := FromText("test.bas", input)
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	labels := tree.Root.ChildrenOfKind(KindLabelStatement)
	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2:\n%s", len(labels), tree.Dump())
	}
}

func TestParseGarbageTerminates(t *testing.T) {
	input := "= = =\n) ) )\n+ , ;\n&&&\n"
	tree, diags := FromText("test.bas", input)
	if len(diags) == 0 {
		t.Error("garbage input produced no diagnostics")
	}
	if tree.Text() != input {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", tree.Text(), input)
	}
	for _, d := range diags {
		if d.Category == DiagExhaustion {
			t.Errorf("unexpected exhaustion diagnostic: %v", d)
		}
	}
}

func TestParseDepthLimit(t *testing.T) {
	input := "x = ((((1))))\n"
	tree, diags := FromText("test.bas", input, WithMaxDepth(4))
	if countCategory(diags, DiagExhaustion) == 0 {
		t.Errorf("no exhaustion diagnostic: %v", diags)
	}
	if tree.Text() != input {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", tree.Text(), input)
	}
}

func TestParseDefaultDepthSuffices(t *testing.T) {
	input := "x = " + strings.Repeat("(", 40) + "1" + strings.Repeat(")", 40) + "\n"
	_, diags := FromText("test.bas", input)
	if len(diags) != 0 {
		t.Errorf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
}

func TestParseKeywordCasing(t *testing.T) {
	input := "if ok then\n    x = 1\nEND IF\n"
	tree, diags := FromText("test.bas", input)
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	if tree.Root.Children[0].Kind != KindIfStatement {
		t.Errorf("statement kind = %v, want %v", tree.Root.Children[0].Kind, KindIfStatement)
	}
	if tree.Text() != input {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", tree.Text(), input)
	}
}

func TestParseProcedures(t *testing.T) {
	tests := []struct {
		input string
		kind  SyntaxKind
	}{
		{"Sub Plain()\nEnd Sub\n", KindSubStatement},
		{"Private Sub Form_Load()\nEnd Sub\n", KindSubStatement},
		{"Public Function Add(a As Long, b As Long) As Long\n    Add = a + b\nEnd Function\n", KindFunctionStatement},
		{"Public Property Get Value() As Long\n    Value = 42\nEnd Property\n", KindPropertyStatement},
		{"Public Property Let Value(ByVal n As Long)\nEnd Property\n", KindPropertyStatement},
		{"Friend Static Sub Cached()\nEnd Sub\n", KindSubStatement},
		{"Sub WithDefaults(Optional ByVal n As Long = 1, ParamArray rest())\nEnd Sub\n", KindSubStatement},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree, diags := FromText("test.bas", tt.input)
			if len(diags) != 0 {
				t.Errorf("got %d diagnostics, want 0: %v", len(diags), diags)
			}
			if tree.Root.Children[0].Kind != tt.kind {
				t.Errorf("statement kind = %v, want %v", tree.Root.Children[0].Kind, tt.kind)
			}
		})
	}
}

func TestParseDeclare(t *testing.T) {
	input := "Private Declare Function GetTickCount Lib \"kernel32\" () As Long\n" +
		"Public Declare Sub Sleep Lib \"kernel32\" Alias \"Sleep\" (ByVal ms As Long)\n"
	tree, diags := FromText("test.bas", input)
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	if got := len(tree.Root.ChildrenOfKind(KindDeclareStatement)); got != 2 {
		t.Errorf("got %d declare statements, want 2", got)
	}
}

func TestParseTypeAndEnumBlocks(t *testing.T) {
	input := `Private Type Rect
    Left As Long
    Top As Long
End Type
Public Enum Color
    Red = 1
    Green
    Blue = &HFF0000
End Enum
`
	tree, diags := FromText("test.bas", input)
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	typeBlock := tree.Root.FirstChildOfKind(KindTypeStatement)
	if typeBlock == nil {
		t.Fatal("no Type block")
	}
	if got := len(typeBlock.ChildrenOfKind(KindDimStatement)); got != 2 {
		t.Errorf("got %d type members, want 2", got)
	}
	enumBlock := tree.Root.FirstChildOfKind(KindEnumStatement)
	if enumBlock == nil {
		t.Fatal("no Enum block")
	}
	if got := len(enumBlock.ChildrenOfKind(KindConstStatement)); got != 3 {
		t.Errorf("got %d enum members, want 3", got)
	}
}

func TestParseSelectCaseClauses(t *testing.T) {
	input := `Select Case n
    Case 0
        Beep
    Case 1 To 5, Is > 100
        x = 1
    Case Else
        x = 2
End Select
`
	tree, diags := FromText("test.bas", input)
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	stmt := tree.Root.Children[0]
	if got := len(stmt.ChildrenOfKind(KindCaseClause)); got != 2 {
		t.Errorf("got %d case clauses, want 2", got)
	}
	if stmt.FirstChildOfKind(KindCaseElseClause) == nil {
		t.Error("Case Else clause missing")
	}
}

func TestFromSource(t *testing.T) {
	tree, err := FromSource("test.bas", "Dim x As Long\nx = 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree == nil {
		t.Fatal("got nil tree")
	}

	tree, err = FromSource("test.bas", "If x Then\n")
	if err == nil {
		t.Fatal("expected an error for a truncated block")
	}
	if tree != nil {
		t.Error("strict parse returned a tree alongside the error")
	}
	if !strings.Contains(err.Error(), "test.bas") {
		t.Errorf("error %q does not name the source", err)
	}
}

func TestTokenizeDriver(t *testing.T) {
	input := "Dim x ' note\n"
	tokens, diags := Tokenize("test.bas", input)
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(diags), diags)
	}
	if tokens[len(tokens)-1].Kind != TokenEOF {
		t.Error("token stream does not end in EOF")
	}
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Literal)
	}
	if sb.String() != input {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", sb.String(), input)
	}
}

func TestDiagnosticsSorted(t *testing.T) {
	// One lexical problem after a structural one; the merged list comes
	// back in source order regardless of which stage found what.
	input := ") = )\nx = \"oops\n"
	_, diags := FromText("test.bas", input)
	if len(diags) < 2 {
		t.Fatalf("got %d diagnostics, want at least 2: %v", len(diags), diags)
	}
	for i := 1; i < len(diags); i++ {
		if diags[i-1].Pos.Offset > diags[i].Pos.Offset {
			t.Errorf("diagnostics out of order: %v before %v", diags[i-1], diags[i])
		}
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Pos:      Position{File: "test.bas", Line: 3, Column: 7},
		Category: DiagStructural,
		Message:  "expected end of statement",
	}
	want := "test.bas:3:7: structural: expected end of statement"
	if d.String() != want {
		t.Errorf("String() = %q, want %q", d.String(), want)
	}
}

func TestTreeDump(t *testing.T) {
	tree, _ := FromText("test.bas", "x = 1\n")
	dump := tree.Dump()
	for _, want := range []string{"Root", "AssignmentStatement", "IdentifierExpression", "LiteralExpression"} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump is missing %q:\n%s", want, dump)
		}
	}
	withPos := tree.DumpWithPositions()
	if !strings.Contains(withPos, "[1:1-") {
		t.Errorf("positional dump has no spans:\n%s", withPos)
	}
}

func TestTreeJSON(t *testing.T) {
	tree, _ := FromText("test.bas", "x = 1\n")
	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"kind":"Root"`, `"kind":"AssignmentStatement"`, `"source":"test.bas"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON is missing %s:\n%s", want, data)
		}
	}
}
