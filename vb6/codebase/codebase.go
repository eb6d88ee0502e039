// Package codebase tracks the parsed state of a VB6 source tree for the
// language server.
package codebase

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/vb6parse/vb6/parser"
)

// sourceExts are the file extensions the codebase considers VB6 source.
var sourceExts = map[string]bool{
	".bas": true,
	".cls": true,
	".frm": true,
	".ctl": true,
}

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path        string
	Content     []byte
	Tree        *parser.Tree
	Diagnostics []parser.Diagnostic
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// IsSourceFile reports whether path has a VB6 source extension.
func IsSourceFile(path string) bool {
	return sourceExts[strings.ToLower(filepath.Ext(path))]
}

func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if IsSourceFile(path) {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

// UpdateFile reparses the file from the given content. Parsing is lenient;
// the resulting tree and diagnostics replace whatever was stored before.
func (c *Codebase) UpdateFile(path string, content []byte) error {
	tree, diags := parser.FromText(filepath.Base(path), string(content))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = &FileInfo{
		Path:        path,
		Content:     content,
		Tree:        tree,
		Diagnostics: diags,
	}
	return nil
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Procedure is one Sub, Function, or Property in a file, for symbol
// listings.
type Procedure struct {
	Name string
	Kind parser.SyntaxKind
	Span parser.Span
}

// Procedures lists the procedures declared at the top level of the file, in
// source order.
func (c *Codebase) Procedures(path string) []Procedure {
	f := c.GetFile(path)
	if f == nil || f.Tree == nil {
		return nil
	}

	var procs []Procedure
	for _, child := range f.Tree.Root.Children {
		switch child.Kind {
		case parser.KindSubStatement, parser.KindFunctionStatement, parser.KindPropertyStatement:
			name := child.FirstChildOfKind(parser.TokenIdentifier)
			if name == nil {
				continue
			}
			procs = append(procs, Procedure{
				Name: name.TokenLiteral(),
				Kind: child.Kind,
				Span: child.Span,
			})
		}
	}
	return procs
}
