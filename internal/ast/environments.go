package ast

import (
	"strings"

	"github.com/cwbudde/go-latexast/internal/lexer"
)

// Environment is the generic fallback for any `\begin{X}...\end{X}`
// block the parser has no dedicated handler for (spec.md §3.2, §4.3
// "unknown → generic Environment").
type Environment struct {
	Token   lexer.Token
	Name    string
	Content []Node
	Options []string
}

func (e *Environment) astNode()             {}
func (e *Environment) TokenLiteral() string { return e.Token.Literal }
func (e *Environment) Pos() lexer.Position  { return e.Token.Pos }
func (e *Environment) String() string {
	return "\\begin{" + e.Name + "}" + joinStrings(e.Content) + "\\end{" + e.Name + "}"
}

// AlignType distinguishes the `align`/`gather` family's environments
// (spec.md §4.3).
type AlignType int

const (
	AlignAlign AlignType = iota
	AlignAlignStar
	AlignGather
	AlignGatherStar
)

// Aligned implements `align`/`aligned`/`gather`/`gathered`
// (spec.md §3.2, §4.3). Rows are terminated by NewLine, cells by
// Ampersand (spec.md §4.3).
type Aligned struct {
	Token     lexer.Token
	Rows      [][]Node
	AlignType AlignType
}

func (a *Aligned) astNode()             {}
func (a *Aligned) TokenLiteral() string { return a.Token.Literal }
func (a *Aligned) Pos() lexer.Position  { return a.Token.Pos }
func (a *Aligned) String() string       { return renderRows(a.Rows) }

// CasePair is one `lhs & condition` branch of a Cases node.
type CasePair struct {
	Value     Node
	Condition Node // nil if the case has no explicit condition
}

// Cases implements `\begin{cases}...\end{cases}` as
// `(lhs, condition)` pairs split by `&` (spec.md §3.2, §4.3, example
// scenario 6).
type Cases struct {
	Token lexer.Token
	Pairs []CasePair
}

func (c *Cases) astNode()             {}
func (c *Cases) TokenLiteral() string { return c.Token.Literal }
func (c *Cases) Pos() lexer.Position  { return c.Token.Pos }
func (c *Cases) String() string {
	var sb strings.Builder
	sb.WriteString("\\begin{cases}")
	for i, p := range c.Pairs {
		if i > 0 {
			sb.WriteString(" \\\\ ")
		}
		sb.WriteString(p.Value.String())
		if p.Condition != nil {
			sb.WriteString(" & " + p.Condition.String())
		}
	}
	sb.WriteString("\\end{cases}")
	return sb.String()
}

// Split implements `\begin{split}...\end{split}` (spec.md §3.2).
type Split struct {
	Token lexer.Token
	Rows  [][]Node
}

func (s *Split) astNode()             {}
func (s *Split) TokenLiteral() string { return s.Token.Literal }
func (s *Split) Pos() lexer.Position  { return s.Token.Pos }
func (s *Split) String() string       { return renderRows(s.Rows) }

// Multline implements `\begin{multline}...\end{multline}` (spec.md §3.2).
type Multline struct {
	Token lexer.Token
	Lines []Node
}

func (m *Multline) astNode()             {}
func (m *Multline) TokenLiteral() string { return m.Token.Literal }
func (m *Multline) Pos() lexer.Position  { return m.Token.Pos }
func (m *Multline) String() string       { return joinStrings(m.Lines) }

// Eqnarray implements `\begin{eqnarray}...\end{eqnarray}` (spec.md §3.2).
type Eqnarray struct {
	Token lexer.Token
	Rows  [][]Node
}

func (e *Eqnarray) astNode()             {}
func (e *Eqnarray) TokenLiteral() string { return e.Token.Literal }
func (e *Eqnarray) Pos() lexer.Position  { return e.Token.Pos }
func (e *Eqnarray) String() string       { return renderRows(e.Rows) }

// Subequations implements `\begin{subequations}...\end{subequations}`
// (spec.md §3.2).
type Subequations struct {
	Token   lexer.Token
	Content []Node
}

func (s *Subequations) astNode()             {}
func (s *Subequations) TokenLiteral() string { return s.Token.Literal }
func (s *Subequations) Pos() lexer.Position  { return s.Token.Pos }
func (s *Subequations) String() string       { return joinStrings(s.Content) }

func renderRows(rows [][]Node) string {
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(" \\\\ ")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(" & ")
			}
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}
