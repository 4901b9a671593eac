package ast

import "github.com/cwbudde/go-latexast/internal/lexer"

// Superscript is the binary `base^exponent` node (spec.md §3.2).
//
// Invariant (spec.md §3.3 #2): Base is never itself a raw *Superscript;
// the parser enforces this when resolving postfix attachment, not this
// type, since the AST itself cannot express a structural constraint
// without breaking the closed-sum-type model.
type Superscript struct {
	Token    lexer.Token // the '^' token
	Base     Node
	Exponent Node
}

func (s *Superscript) astNode()             {}
func (s *Superscript) TokenLiteral() string { return s.Token.Literal }
func (s *Superscript) Pos() lexer.Position  { return s.Base.Pos() }
func (s *Superscript) String() string {
	return s.Base.String() + "^{" + s.Exponent.String() + "}"
}

// Subscript is the binary `base_index` node (spec.md §3.2).
type Subscript struct {
	Token lexer.Token // the '_' token
	Base  Node
	Index Node
}

func (s *Subscript) astNode()             {}
func (s *Subscript) TokenLiteral() string { return s.Token.Literal }
func (s *Subscript) Pos() lexer.Position  { return s.Base.Pos() }
func (s *Subscript) String() string {
	return s.Base.String() + "_{" + s.Index.String() + "}"
}
