package ast

import "github.com/cwbudde/go-latexast/internal/lexer"

// BigOperator implements `\sum`, `\prod`, `\int`, `\oint`, `\bigcup`,
// `\bigcap`, `\bigvee`, `\bigwedge`, `\bigoplus`, `\bigotimes`,
// `\coprod` and their limits (spec.md §3.2, §4.3). Subscript/Superscript
// are attached by the parser's postfix state rather than wrapped in
// Subscript/Superscript nodes (spec.md glossary: "Big operator").
type BigOperator struct {
	Token      lexer.Token
	Op         string
	Subscript  Node // nil if no lower limit was attached
	Superscript Node // nil if no upper limit was attached
}

func (b *BigOperator) astNode()             {}
func (b *BigOperator) TokenLiteral() string { return b.Token.Literal }
func (b *BigOperator) Pos() lexer.Position  { return b.Token.Pos }
func (b *BigOperator) String() string {
	out := b.Op
	if b.Subscript != nil {
		out += "_{" + b.Subscript.String() + "}"
	}
	if b.Superscript != nil {
		out += "^{" + b.Superscript.String() + "}"
	}
	return out
}
