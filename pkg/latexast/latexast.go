// Package latexast is the public surface of the LaTeX math-mode
// parsing engine: a one-shot Parse, an incremental Driver, an AST
// Visitor, and symbol-table Resolve (spec.md §6). It mirrors the
// teacher's pkg/dwscript in shape — a thin facade over the internal
// packages that never leaks their import paths to callers.
package latexast

import (
	"github.com/cwbudde/go-latexast/internal/ast"
	"github.com/cwbudde/go-latexast/internal/errors"
	"github.com/cwbudde/go-latexast/internal/parser"
	"github.com/cwbudde/go-latexast/internal/symbols"
)

// Node is the base AST node type (spec.md §3.2).
type Node = ast.Node

// Document is the root node produced by Parse.
type Document = ast.Document

// Visitor receives every node reachable from a Document during a Walk
// (spec.md §6.3, "AST consumer interface").
type Visitor = ast.Visitor

// Issue is one soft diagnostic recorded during a parse (spec.md §7).
type Issue = errors.ParseIssue

// Walk traverses doc's subtree in depth-first order.
func Walk(v Visitor, n Node) { ast.Walk(v, n) }

// Inspect traverses doc's subtree, calling f for every node; returning
// false from f skips that node's children.
func Inspect(n Node, f func(Node) bool) { ast.Inspect(n, f) }

// Resolve looks up a command name in the static symbol table
// (spec.md §6.4, §4.2).
func Resolve(name string) (string, bool) { return symbols.Resolve(name) }

// Parse is the one-shot parse surface (spec.md §6.1): it always
// returns a complete Document, even for malformed input. Diagnostics
// recorded during the parse are discarded; use ParseWithIssues to keep
// them.
func Parse(source string) *Document {
	return parser.New(source).Parse()
}

// ParseWithIssues parses source and also returns every soft diagnostic
// recorded along the way (spec.md §7).
func ParseWithIssues(source string) (*Document, []*Issue) {
	p := parser.New(source)
	doc := p.Parse()
	return doc, p.Issues()
}
