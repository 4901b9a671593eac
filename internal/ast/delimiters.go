package ast

import "github.com/cwbudde/go-latexast/internal/lexer"

// Delimited implements `\left <d> ... \right <d>` (spec.md §3.2).
// Left/Right are single glyphs; "." denotes an invisible delimiter
// (spec.md §3.3 invariant 4).
type Delimited struct {
	Token    lexer.Token // the \left token
	Left     string
	Right    string
	Content  []Node
	Scalable bool
}

func (d *Delimited) astNode()             {}
func (d *Delimited) TokenLiteral() string { return d.Token.Literal }
func (d *Delimited) Pos() lexer.Position  { return d.Token.Pos }
func (d *Delimited) String() string {
	return d.Left + joinStrings(d.Content) + d.Right
}

// DelimiterScale enumerates the four manual delimiter scale factors of
// the `\big`/`\Big`/`\bigg`/`\Bigg` family (spec.md §3.2).
type DelimiterScale float64

const (
	ScaleBig      DelimiterScale = 1.2 // \big
	ScaleBigUpper DelimiterScale = 1.8 // \Big
	ScaleBigg     DelimiterScale = 2.4 // \bigg
	ScaleBiggUpper DelimiterScale = 3.0 // \Bigg
)

// ManualSizedDelimiter implements `\big(`, `\Big[`, `\bigg\{`, `\Bigg|`
// (spec.md §3.2, §4.3).
type ManualSizedDelimiter struct {
	Token lexer.Token
	Glyph string
	Scale DelimiterScale
}

func (m *ManualSizedDelimiter) astNode()             {}
func (m *ManualSizedDelimiter) TokenLiteral() string { return m.Token.Literal }
func (m *ManualSizedDelimiter) Pos() lexer.Position  { return m.Token.Pos }
func (m *ManualSizedDelimiter) String() string       { return m.Glyph }
