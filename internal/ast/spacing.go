package ast

import "github.com/cwbudde/go-latexast/internal/lexer"

// SpaceKind enumerates the fixed-width spacing commands of spec.md §3.2.
type SpaceKind int

const (
	SpaceThin SpaceKind = iota
	SpaceMedium
	SpaceThick
	SpaceQuad
	SpaceQQuad
	SpaceNormal
	SpaceNegativeThin
)

// Space implements `\,` `\:` `\;` `\!` `\quad` `\qquad` (spec.md §4.3).
type Space struct {
	Token lexer.Token
	Kind  SpaceKind
}

func (s *Space) astNode()             {}
func (s *Space) TokenLiteral() string { return s.Token.Literal }
func (s *Space) Pos() lexer.Position  { return s.Token.Pos }
func (s *Space) String() string       { return "\\" + s.Token.Literal }

// HSpace implements `\hspace{dimension}` (spec.md §3.2).
type HSpace struct {
	Token     lexer.Token
	Dimension string
}

func (h *HSpace) astNode()             {}
func (h *HSpace) TokenLiteral() string { return h.Token.Literal }
func (h *HSpace) Pos() lexer.Position  { return h.Token.Pos }
func (h *HSpace) String() string       { return "\\hspace{" + h.Dimension + "}" }
