package ast

import "github.com/cwbudde/go-latexast/internal/lexer"

// AccentKind enumerates the accent commands of spec.md §3.2.
type AccentKind int

const (
	AccentHat AccentKind = iota
	AccentTilde
	AccentBar
	AccentDot
	AccentDDot
	AccentVec
	AccentOverline
	AccentUnderline
	AccentOverbrace
	AccentUnderbrace
	AccentWideHat
	AccentOverRightArrow
	AccentOverLeftArrow
	AccentCancel
)

// Accent wraps content with a diacritic mark (spec.md §3.2, §4.3).
type Accent struct {
	Token   lexer.Token
	Content Node
	Kind    AccentKind
}

func (a *Accent) astNode()             {}
func (a *Accent) TokenLiteral() string { return a.Token.Literal }
func (a *Accent) Pos() lexer.Position  { return a.Token.Pos }
func (a *Accent) String() string       { return "\\" + a.Token.Literal + "{" + a.Content.String() + "}" }

// ArrowDirection enumerates the directions of an ExtensibleArrow.
type ArrowDirection int

const (
	ArrowRight ArrowDirection = iota
	ArrowLeft
	ArrowBoth
)

// ExtensibleArrow implements `\xrightarrow[below]{above}` and its
// `\xleftarrow`/`\xleftrightarrow` siblings (spec.md §3.2, §4.3).
type ExtensibleArrow struct {
	Token     lexer.Token
	Above     Node
	Below     Node // nil if no subscript argument was given
	Direction ArrowDirection
}

func (e *ExtensibleArrow) astNode()             {}
func (e *ExtensibleArrow) TokenLiteral() string { return e.Token.Literal }
func (e *ExtensibleArrow) Pos() lexer.Position  { return e.Token.Pos }
func (e *ExtensibleArrow) String() string {
	if e.Below != nil {
		return "\\" + e.Token.Literal + "[" + e.Below.String() + "]{" + e.Above.String() + "}"
	}
	return "\\" + e.Token.Literal + "{" + e.Above.String() + "}"
}

// Stack implements `\overset{a}{b}` (Above=a, Below=nil) and
// `\underset{a}{b}` (Above=nil, Below=a), both wrapping Base=b
// (spec.md §4.3).
type Stack struct {
	Token lexer.Token
	Base  Node
	Above Node
	Below Node
}

func (s *Stack) astNode()             {}
func (s *Stack) TokenLiteral() string { return s.Token.Literal }
func (s *Stack) Pos() lexer.Position  { return s.Token.Pos }
func (s *Stack) String() string {
	if s.Above != nil {
		return "\\overset{" + s.Above.String() + "}{" + s.Base.String() + "}"
	}
	return "\\underset{" + s.Below.String() + "}{" + s.Base.String() + "}"
}
