package parser

import (
	"github.com/cwbudde/go-latexast/internal/ast"
	"github.com/cwbudde/go-latexast/internal/errors"
	"github.com/cwbudde/go-latexast/internal/lexer"
)

// cellStop ends a row/cell segment at '&', '\\', or '\end' (spec.md
// §4.3, "Rows terminated by NewLine, cells by Ampersand").
var cellStop = map[lexer.TokenType]bool{
	lexer.AMPERSAND: true,
	lexer.NEWLINE:   true,
	lexer.END_ENV:   true,
}

// parseEnvironment dispatches a \begin{name} block to its dedicated
// handler, falling back to a generic Environment for anything
// unrecognized (spec.md §4.3).
func (p *Parser) parseEnvironment() ast.Node {
	tok := p.advance() // BEGIN_ENV
	name := tok.Literal

	switch name {
	case "matrix", "pmatrix", "bmatrix", "Bmatrix", "vmatrix", "Vmatrix", "smallmatrix":
		return p.parseMatrix(tok, name)
	case "array":
		return p.parseArray(tok)
	case "cases":
		return p.parseCases(tok)
	case "align", "aligned":
		return p.parseAligned(tok, name, ast.AlignAlign)
	case "align*":
		return p.parseAligned(tok, name, ast.AlignAlignStar)
	case "gather", "gathered":
		return p.parseAligned(tok, name, ast.AlignGather)
	case "gather*":
		return p.parseAligned(tok, name, ast.AlignGatherStar)
	case "split":
		return p.parseSplit(tok)
	case "multline":
		return p.parseMultline(tok)
	case "eqnarray":
		return p.parseEqnarray(tok)
	case "subequations":
		return p.parseSubequations(tok)
	default:
		return p.parseGenericEnvironment(tok, name)
	}
}

// readRows reads row/cell content until a matching \end{name}, EOF, or
// a mismatched \end (closed anyway per spec.md §7 "Mismatched \end").
func (p *Parser) readRows(tok lexer.Token, name string) [][]ast.Node {
	var rows [][]ast.Node
	var row []ast.Node
	for {
		cellStart := p.peek()
		p.rowDepth++
		cellNodes := p.parseContainer(cellStop)
		p.rowDepth--
		row = append(row, wrapCell(cellNodes, cellStart))

		switch p.peek().Type {
		case lexer.AMPERSAND:
			p.advance()
		case lexer.NEWLINE:
			p.advance()
			rows = append(rows, row)
			row = nil
		case lexer.END_ENV:
			end := p.peek()
			if end.Literal != name {
				p.issue(errors.KindMismatchedEnd, end.Pos, "expected \\end{"+name+"}, got \\end{"+end.Literal+"}")
			}
			p.advance()
			rows = append(rows, row)
			return rows
		default: // EOF
			p.issue(errors.KindUnterminatedEnvironment, tok.Pos, "unterminated environment \\begin{"+name+"}")
			rows = append(rows, row)
			return rows
		}
	}
}

func matrixKind(name string) ast.MatrixKind {
	switch name {
	case "pmatrix":
		return ast.MatrixParen
	case "bmatrix":
		return ast.MatrixBracket
	case "Bmatrix":
		return ast.MatrixBrace
	case "vmatrix":
		return ast.MatrixVBar
	case "Vmatrix":
		return ast.MatrixDoubleVBar
	default:
		return ast.MatrixPlain
	}
}

func (p *Parser) parseMatrix(tok lexer.Token, name string) ast.Node {
	rows := p.readRows(tok, name)
	return &ast.Matrix{Token: tok, Rows: rows, Kind: matrixKind(name), IsSmall: name == "smallmatrix"}
}

func (p *Parser) parseArray(tok lexer.Token) ast.Node {
	alignment := ""
	if p.peek().Type == lexer.LBRACE {
		alignment = tokensToRaw(p.readBalancedGroupTokens())
	} else {
		p.issue(errors.KindUnterminatedGroup, tok.Pos, "\\begin{array} requires an {alignment} argument")
	}
	rows := p.readRows(tok, "array")
	return &ast.Array{Token: tok, Rows: rows, Alignment: alignment}
}

// parseCases reads `cases` rows and folds each into a (value,
// condition) pair; a row with no '&' has no explicit condition
// (spec.md §4.3, example scenario for piecewise functions).
func (p *Parser) parseCases(tok lexer.Token) ast.Node {
	rows := p.readRows(tok, "cases")
	pairs := make([]ast.CasePair, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		pair := ast.CasePair{Value: row[0]}
		if len(row) > 1 {
			pair.Condition = row[1]
		}
		pairs = append(pairs, pair)
	}
	return &ast.Cases{Token: tok, Pairs: pairs}
}

func (p *Parser) parseAligned(tok lexer.Token, name string, at ast.AlignType) ast.Node {
	rows := p.readRows(tok, name)
	return &ast.Aligned{Token: tok, Rows: rows, AlignType: at}
}

func (p *Parser) parseSplit(tok lexer.Token) ast.Node {
	rows := p.readRows(tok, "split")
	return &ast.Split{Token: tok, Rows: rows}
}

func (p *Parser) parseMultline(tok lexer.Token) ast.Node {
	rows := p.readRows(tok, "multline")
	lines := make([]ast.Node, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, wrapCell(row, tok))
	}
	return &ast.Multline{Token: tok, Lines: lines}
}

func (p *Parser) parseEqnarray(tok lexer.Token) ast.Node {
	rows := p.readRows(tok, "eqnarray")
	return &ast.Eqnarray{Token: tok, Rows: rows}
}

// parseSubequations reads unstructured content (subequations wraps
// other environments rather than defining its own row/cell grid).
func (p *Parser) parseSubequations(tok lexer.Token) ast.Node {
	content := p.parseContainer(map[lexer.TokenType]bool{lexer.END_ENV: true})
	p.expectEnd(tok, "subequations")
	return &ast.Subequations{Token: tok, Content: content}
}

func (p *Parser) parseGenericEnvironment(tok lexer.Token, name string) ast.Node {
	content := p.parseContainer(map[lexer.TokenType]bool{lexer.END_ENV: true})
	p.expectEnd(tok, name)
	return &ast.Environment{Token: tok, Name: name, Content: content}
}

// expectEnd consumes a trailing \end{name}, reporting a mismatch or an
// unterminated-environment issue as appropriate, without ever leaving
// the cursor stuck (spec.md §7).
func (p *Parser) expectEnd(tok lexer.Token, name string) {
	if p.peek().Type != lexer.END_ENV {
		p.issue(errors.KindUnterminatedEnvironment, tok.Pos, "unterminated \\begin{"+name+"}")
		return
	}
	end := p.peek()
	if end.Literal != name {
		p.issue(errors.KindMismatchedEnd, end.Pos, "expected \\end{"+name+"}, got \\end{"+end.Literal+"}")
	}
	p.advance()
}
