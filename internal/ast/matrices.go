package ast

import (
	"strings"

	"github.com/cwbudde/go-latexast/internal/lexer"
)

// MatrixKind selects the delimiter pair that wraps a Matrix
// (spec.md §3.2).
type MatrixKind int

const (
	MatrixPlain MatrixKind = iota
	MatrixParen
	MatrixBracket
	MatrixBrace
	MatrixVBar
	MatrixDoubleVBar
)

// Matrix implements \begin{matrix|pmatrix|bmatrix|Bmatrix|vmatrix|
// Vmatrix|smallmatrix}. Rows is non-empty; inner rows may have
// differing lengths — padding is a consumer concern (spec.md §3.3 #3).
type Matrix struct {
	Token   lexer.Token // the \begin token
	Rows    [][]Node
	Kind    MatrixKind
	IsSmall bool
}

func (m *Matrix) astNode()             {}
func (m *Matrix) TokenLiteral() string { return m.Token.Literal }
func (m *Matrix) Pos() lexer.Position  { return m.Token.Pos }
func (m *Matrix) String() string {
	var sb strings.Builder
	for i, row := range m.Rows {
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

// Array implements \begin{array}{alignment} rows... \end{array}
// (spec.md §4.3).
type Array struct {
	Token     lexer.Token
	Rows      [][]Node
	Alignment string
}

func (a *Array) astNode()             {}
func (a *Array) TokenLiteral() string { return a.Token.Literal }
func (a *Array) Pos() lexer.Position  { return a.Token.Pos }
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString("\\begin{array}{" + a.Alignment + "}")
	for i, row := range a.Rows {
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
	sb.WriteString("\\end{array}")
	return sb.String()
}
