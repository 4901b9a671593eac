package ast

import "github.com/cwbudde/go-latexast/internal/lexer"

// Fraction implements `\frac`, `\dfrac`, `\tfrac`, `\cfrac` (spec.md §4.3).
type Fraction struct {
	Token       lexer.Token
	Numerator   Node
	Denominator Node
}

func (f *Fraction) astNode()             {}
func (f *Fraction) TokenLiteral() string { return f.Token.Literal }
func (f *Fraction) Pos() lexer.Position  { return f.Token.Pos }
func (f *Fraction) String() string {
	return "\\frac{" + f.Numerator.String() + "}{" + f.Denominator.String() + "}"
}

// Root implements `\sqrt{content}` or `\sqrt[index]{content}`
// (spec.md §3.2, §9: Root is a dedicated variant, resolving the spec's
// Open Question about Root vs. Accent).
type Root struct {
	Token   lexer.Token
	Content Node
	Index   Node // nil for a plain square root
}

func (r *Root) astNode()             {}
func (r *Root) TokenLiteral() string { return r.Token.Literal }
func (r *Root) Pos() lexer.Position  { return r.Token.Pos }
func (r *Root) String() string {
	if r.Index != nil {
		return "\\sqrt[" + r.Index.String() + "]{" + r.Content.String() + "}"
	}
	return "\\sqrt{" + r.Content.String() + "}"
}

// BinomialStyle distinguishes \binom/\tbinom/\dbinom.
type BinomialStyle int

const (
	BinomialNormal BinomialStyle = iota
	BinomialText
	BinomialDisplay
)

// Binomial implements `\binom`, `\tbinom`, `\dbinom` (spec.md §4.3).
type Binomial struct {
	Token  lexer.Token
	Top    Node
	Bottom Node
	Style  BinomialStyle
}

func (b *Binomial) astNode()             {}
func (b *Binomial) TokenLiteral() string { return b.Token.Literal }
func (b *Binomial) Pos() lexer.Position  { return b.Token.Pos }
func (b *Binomial) String() string {
	return "\\binom{" + b.Top.String() + "}{" + b.Bottom.String() + "}"
}
