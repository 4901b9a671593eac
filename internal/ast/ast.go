// Package ast defines the Abstract Syntax Tree node types produced by
// the LaTeX math-mode parser (spec.md §3.2). The AST is a closed sum
// type: every node is immutable after construction, owned exclusively
// by its parent, and the tree carries no cycles and no shared
// subtrees (spec.md §3.3 invariant 1, §9 "No cycles").
//
// The node-per-file-group layout and the Node/TokenLiteral/Pos/String
// shape mirror the teacher's internal/ast package; unlike DWScript's
// AST there is no Statement/Expression split here, since spec.md
// describes one closed variant set with no statement-vs-expression
// distinction.
package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/go-latexast/internal/lexer"
)

// Node is the base interface implemented by every AST variant.
type Node interface {
	// TokenLiteral returns the literal of the token this node is
	// anchored to, for debugging and error messages.
	TokenLiteral() string

	// String renders a debug, LaTeX-like representation of the node.
	String() string

	// Pos returns the node's position in the source for diagnostics.
	Pos() lexer.Position

	astNode()
}

// Document is the root node produced by Parse (spec.md §3.2).
type Document struct {
	Children []Node
}

func (d *Document) astNode() {}
func (d *Document) TokenLiteral() string {
	if len(d.Children) > 0 {
		return d.Children[0].TokenLiteral()
	}
	return ""
}
func (d *Document) Pos() lexer.Position {
	if len(d.Children) > 0 {
		return d.Children[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}
func (d *Document) String() string {
	var out bytes.Buffer
	for _, c := range d.Children {
		out.WriteString(c.String())
	}
	return out.String()
}

// Text is a run of ordinary characters (spec.md §3.2).
type Text struct {
	Token   lexer.Token
	Content string
}

func (t *Text) astNode()               {}
func (t *Text) TokenLiteral() string   { return t.Token.Literal }
func (t *Text) Pos() lexer.Position    { return t.Token.Pos }
func (t *Text) String() string         { return t.Content }

// Command is an unresolved or otherwise unspecialized command
// (spec.md §3.2, §4.3 "if still unmatched").
type Command struct {
	Token   lexer.Token
	Name    string
	Args    []Node
	Options []string
}

func (c *Command) astNode()             {}
func (c *Command) TokenLiteral() string { return c.Token.Literal }
func (c *Command) Pos() lexer.Position  { return c.Token.Pos }
func (c *Command) String() string {
	var out bytes.Buffer
	out.WriteString("\\")
	out.WriteString(c.Name)
	for _, opt := range c.Options {
		out.WriteString("[")
		out.WriteString(opt)
		out.WriteString("]")
	}
	for _, a := range c.Args {
		out.WriteString("{")
		out.WriteString(a.String())
		out.WriteString("}")
	}
	return out.String()
}

// Group is a brace-delimited run of nodes, `{ ... }` (spec.md §3.2).
type Group struct {
	Token    lexer.Token // the '{' token
	Children []Node
}

func (g *Group) astNode()             {}
func (g *Group) TokenLiteral() string { return g.Token.Literal }
func (g *Group) Pos() lexer.Position  { return g.Token.Pos }
func (g *Group) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for _, c := range g.Children {
		out.WriteString(c.String())
	}
	out.WriteString("}")
	return out.String()
}

// NewLine represents a `\\` row break. It is a singleton in spirit
// (spec.md §3.2) but constructed per occurrence since the AST is a
// tree with no shared subtrees.
type NewLine struct {
	Token lexer.Token
}

func (n *NewLine) astNode()             {}
func (n *NewLine) TokenLiteral() string { return n.Token.Literal }
func (n *NewLine) Pos() lexer.Position  { return n.Token.Pos }
func (n *NewLine) String() string       { return "\\\\" }

// Symbol is a command resolved to a literal Unicode glyph via the
// symbol table (spec.md §4.2).
type Symbol struct {
	Token   lexer.Token
	Name    string
	Unicode string
}

func (s *Symbol) astNode()             {}
func (s *Symbol) TokenLiteral() string { return s.Token.Literal }
func (s *Symbol) Pos() lexer.Position  { return s.Token.Pos }
func (s *Symbol) String() string       { return s.Unicode }

// Operator is reserved per spec.md §9 ("the source also defines
// Operator but never emits it") and §3.2. No parser path constructs
// one; it exists purely so consumers can type-switch on it safely if
// a future revision starts emitting it.
type Operator struct {
	Token lexer.Token
	Op    string
}

func (o *Operator) astNode()             {}
func (o *Operator) TokenLiteral() string { return o.Token.Literal }
func (o *Operator) Pos() lexer.Position  { return o.Token.Pos }
func (o *Operator) String() string       { return o.Op }

// Comment is a "%"-led line comment, preserved only when the lexer
// runs with lexer.WithPreserveComments(true) (SPEC_FULL.md §5
// supplement; spec.md's tokenizer is silent on "%" entirely).
type Comment struct {
	Token lexer.Token
	Text  string
}

func (c *Comment) astNode()             {}
func (c *Comment) TokenLiteral() string { return c.Token.Literal }
func (c *Comment) Pos() lexer.Position  { return c.Token.Pos }
func (c *Comment) String() string       { return "%" + c.Text }

// joinStrings renders a child slice as a concatenation, the shared
// helper used by Group/Document-like containers across this package.
func joinStrings(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.String())
	}
	return sb.String()
}
