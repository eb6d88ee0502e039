package parser

import "fmt"

type DiagnosticCategory int

const (
	// DiagLexical marks problems found while tokenizing, such as an
	// unterminated string literal or an unexpected byte.
	DiagLexical DiagnosticCategory = iota
	// DiagStructural marks problems found while building the tree, such as
	// an unexpected token or a block missing its terminator.
	DiagStructural
	// DiagExhaustion marks a resource limit being hit, currently only the
	// expression recursion depth.
	DiagExhaustion
)

var diagnosticCategoryNames = map[DiagnosticCategory]string{
	DiagLexical:    "lexical",
	DiagStructural: "structural",
	DiagExhaustion: "exhaustion",
}

func (c DiagnosticCategory) String() string {
	if name, ok := diagnosticCategoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Diagnostic reports one problem with the input. Diagnostics are collected,
// never raised: parsing always runs to the end of the input and every
// problem found along the way lands in the list, in source order.
type Diagnostic struct {
	Pos      Position
	Category DiagnosticCategory
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Pos.File, d.Pos.Line, d.Pos.Column, d.Category, d.Message)
}
