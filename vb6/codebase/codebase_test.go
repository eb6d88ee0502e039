package codebase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/vb6parse/vb6/parser"
)

func TestUpdateFileAndGetFile(t *testing.T) {
	content := "Option Explicit\n\nSub Main()\n    Beep\nEnd Sub\n"

	c := New("/tmp/lsp_test")
	path := "/tmp/lsp_test/Module1.bas"
	c.UpdateFile(path, []byte(content))

	f := c.GetFile(path)
	if f == nil {
		t.Fatal("GetFile returned nil")
	}
	if f.Tree == nil {
		t.Fatal("Tree is nil")
	}
	if len(f.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %d, want 0", len(f.Diagnostics))
	}
	if f.Tree.Text() != content {
		t.Errorf("Tree.Text() = %q, want %q", f.Tree.Text(), content)
	}
}

func TestUpdateFileRecordsDiagnostics(t *testing.T) {
	content := "Sub Main()\n    If x Then\nEnd Sub\n"

	c := New("/tmp/lsp_test")
	path := "/tmp/lsp_test/Broken.bas"
	c.UpdateFile(path, []byte(content))

	f := c.GetFile(path)
	if f == nil {
		t.Fatal("GetFile returned nil")
	}
	if len(f.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %d, want 1", len(f.Diagnostics))
	}
	if f.Diagnostics[0].Category != parser.DiagStructural {
		t.Errorf("Category = %v, want %v", f.Diagnostics[0].Category, parser.DiagStructural)
	}
}

func TestProcedures(t *testing.T) {
	content := "Option Explicit\n\n" +
		"Sub Init()\nEnd Sub\n\n" +
		"Function Area(r As Double) As Double\n    Area = r * r\nEnd Function\n\n" +
		"Property Get Name() As String\n    Name = mName\nEnd Property\n"

	c := New("/tmp/lsp_test")
	path := "/tmp/lsp_test/Shape.cls"
	c.UpdateFile(path, []byte(content))

	procs := c.Procedures(path)
	if len(procs) != 3 {
		t.Fatalf("Procedures = %d, want 3", len(procs))
	}

	want := []struct {
		name string
		kind parser.SyntaxKind
	}{
		{"Init", parser.KindSubStatement},
		{"Area", parser.KindFunctionStatement},
		{"Name", parser.KindPropertyStatement},
	}
	for i, w := range want {
		if procs[i].Name != w.name {
			t.Errorf("procs[%d].Name = %q, want %q", i, procs[i].Name, w.name)
		}
		if procs[i].Kind != w.kind {
			t.Errorf("procs[%d].Kind = %v, want %v", i, procs[i].Kind, w.kind)
		}
	}
	if procs[0].Span.Start.Line != 3 {
		t.Errorf("procs[0] starts at line %d, want 3", procs[0].Span.Start.Line)
	}
}

func TestProceduresUnknownFile(t *testing.T) {
	c := New("/tmp/lsp_test")
	if procs := c.Procedures("/tmp/lsp_test/Missing.bas"); procs != nil {
		t.Errorf("Procedures = %v, want nil", procs)
	}
}

func TestRemoveFile(t *testing.T) {
	c := New("/tmp/lsp_test")
	path := "/tmp/lsp_test/Module1.bas"
	c.UpdateFile(path, []byte("Beep\n"))
	c.RemoveFile(path)

	if f := c.GetFile(path); f != nil {
		t.Errorf("GetFile after RemoveFile = %v, want nil", f)
	}
}

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"Module1.bas", true},
		{"Form1.FRM", true},
		{"Shape.Cls", true},
		{"Widget.ctl", true},
		{"Project1.vbp", false},
		{"readme.txt", false},
	}
	for _, tt := range tests {
		if got := IsSourceFile(tt.path); got != tt.want {
			t.Errorf("IsSourceFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "Module1.bas")
	bad := filepath.Join(dir, "Broken.bas")
	skip := filepath.Join(dir, "notes.txt")
	os.WriteFile(good, []byte("Sub Main()\nEnd Sub\n"), 0644)
	os.WriteFile(bad, []byte("Do\n    x = 1\n"), 0644)
	os.WriteFile(skip, []byte("not code"), 0644)

	c := New(dir)
	if err := c.ScanAll(); err != nil {
		t.Fatalf("ScanAll: %v", err)
	}

	if f := c.GetFile(good); f == nil || len(f.Diagnostics) != 0 {
		t.Errorf("good file: %+v", f)
	}
	if f := c.GetFile(bad); f == nil || len(f.Diagnostics) != 1 {
		t.Errorf("bad file: %+v", f)
	}
	if f := c.GetFile(skip); f != nil {
		t.Errorf("txt file was scanned: %+v", f)
	}
}
