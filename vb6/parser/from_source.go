package parser

import (
	"fmt"
	"sort"
)

// FromText parses VB6 source leniently. It always returns a tree covering
// the whole input; everything the parser could not make sense of is in the
// returned diagnostics, in source order.
func FromText(sourceName, source string, opts ...Option) (*Tree, []Diagnostic) {
	lexer := NewLexer([]byte(source), sourceName)
	tokens := lexer.Tokenize()

	p := NewParser(tokens, opts...)
	root := p.ParseRoot()

	diags := append([]Diagnostic{}, lexer.Diagnostics()...)
	diags = append(diags, p.Diagnostics()...)
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Pos.Offset < diags[j].Pos.Offset
	})

	return &Tree{SourceName: sourceName, Root: root}, diags
}

// FromSource parses VB6 source strictly: any diagnostic at all turns into
// an error and no tree is returned.
func FromSource(sourceName, source string, opts ...Option) (*Tree, error) {
	tree, diags := FromText(sourceName, source, opts...)
	if len(diags) > 0 {
		return nil, fmt.Errorf("parse %s: %s", sourceName, diags[0])
	}
	return tree, nil
}

// Tokenize runs only the lexer, returning the gapless token stream and any
// lexical diagnostics.
func Tokenize(sourceName, source string) ([]Token, []Diagnostic) {
	lexer := NewLexer([]byte(source), sourceName)
	tokens := lexer.Tokenize()
	return tokens, lexer.Diagnostics()
}
