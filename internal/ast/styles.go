package ast

import "github.com/cwbudde/go-latexast/internal/lexer"

// StyleKind enumerates font/mode style commands (spec.md §4.3) plus
// the display-style-change modifiers, resolved here as Style kinds
// rather than a dedicated node (spec.md §9 Open Question).
type StyleKind int

const (
	StyleBold StyleKind = iota
	StyleItalic
	StyleRoman
	StyleSansSerif
	StyleTypewriter
	StyleBlackboardBold
	StyleFraktur
	StyleScript
	StyleCalligraphic
	StyleDisplay
	StyleText
	StyleScriptStyle
	StyleScriptScriptStyle
)

// Style implements `\mathbf`, `\boldsymbol`, `\mathit`, `\mathrm`,
// `\mathsf`, `\mathtt`, `\mathbb`, `\mathfrak`, `\mathscr`, `\mathcal`,
// `\textbf`, `\textit`, and `\displaystyle`/`\textstyle`/
// `\scriptstyle`/`\scriptscriptstyle` (spec.md §4.3, §9).
type Style struct {
	Token   lexer.Token
	Content []Node
	Kind    StyleKind
}

func (s *Style) astNode()             {}
func (s *Style) TokenLiteral() string { return s.Token.Literal }
func (s *Style) Pos() lexer.Position  { return s.Token.Pos }
func (s *Style) String() string       { return "\\" + s.Token.Literal + "{" + joinStrings(s.Content) + "}" }

// Color implements `\textcolor{color}{body}`; a bare `\color{name}`
// opens a color scope consuming the rest of the current group
// (spec.md §4.3) and is modeled identically with Content set to the
// remainder of that group.
type Color struct {
	Token   lexer.Token
	Content []Node
	Name    string
}

func (c *Color) astNode()             {}
func (c *Color) TokenLiteral() string { return c.Token.Literal }
func (c *Color) Pos() lexer.Position  { return c.Token.Pos }
func (c *Color) String() string {
	return "\\textcolor{" + c.Name + "}{" + joinStrings(c.Content) + "}"
}

// TextMode implements `\text{...}`; content is raw text, never
// re-parsed as commands (spec.md §4.3).
type TextMode struct {
	Token lexer.Token
	Text  string
}

func (t *TextMode) astNode()             {}
func (t *TextMode) TokenLiteral() string { return t.Token.Literal }
func (t *TextMode) Pos() lexer.Position  { return t.Token.Pos }
func (t *TextMode) String() string       { return "\\text{" + t.Text + "}" }
