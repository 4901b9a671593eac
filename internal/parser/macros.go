package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-latexast/internal/ast"
	"github.com/cwbudde/go-latexast/internal/errors"
	"github.com/cwbudde/go-latexast/internal/lexer"
	"github.com/cwbudde/go-latexast/internal/macro"
)

// parseNewcommand implements `\newcommand{\name}[arity]{body}`
// (spec.md §4.3, §4.4). It registers into the macro table and emits no
// node into the AST.
func (p *Parser) parseNewcommand(tok lexer.Token) ast.Node {
	name, ok := p.readMacroNameArg()
	if !ok {
		p.issue(errors.KindUnknownCommand, tok.Pos, "\\newcommand requires a command name")
		return nil
	}

	arity := 0
	if n, has := p.readOptionalArityBracket(); has {
		arity = n
	}

	if p.peek().Type != lexer.LBRACE {
		p.issue(errors.KindUnterminatedGroup, tok.Pos, "\\newcommand requires a {body}")
		return nil
	}
	body := p.readBalancedGroupTokens()
	p.macros.Define(name, arity, body)
	return nil
}

// readMacroNameArg accepts both `{\name}` and the bare `\name` form.
func (p *Parser) readMacroNameArg() (string, bool) {
	if p.peek().Type == lexer.LBRACE {
		toks := p.readBalancedGroupTokens()
		for _, t := range toks {
			if t.Type == lexer.COMMAND {
				return t.Literal, true
			}
		}
		return "", false
	}
	if p.peek().Type == lexer.COMMAND {
		return p.advance().Literal, true
	}
	return "", false
}

func (p *Parser) readOptionalArityBracket() (int, bool) {
	if p.peek().Type != lexer.LBRACKET {
		return 0, false
	}
	p.advance()
	raw := strings.TrimSpace(tokensToRaw(p.readUntilRBracket()))
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 9 {
		return 0, false
	}
	return n, true
}

// readMacroArgs reads arity arguments, each a single token or a
// braced group's raw tokens (spec.md §4.4, "each a single token or
// braced group, re-tokenized when needed").
func (p *Parser) readMacroArgs(arity int) [][]lexer.Token {
	args := make([][]lexer.Token, 0, arity)
	for i := 0; i < arity; i++ {
		switch p.peek().Type {
		case lexer.LBRACE:
			args = append(args, p.readBalancedGroupTokens())
		case lexer.EOF:
			return args
		default:
			args = append(args, []lexer.Token{p.advance()})
		}
	}
	return args
}

// expandMacro reads the invocation's arguments, splices the expanded
// body, and re-enters parsing over it as a nested token stream
// (spec.md §4.4, "expansion is lazy and re-enters the ... consumer").
// The common case of a single-node macro body returns that node
// directly; a multi-node body is wrapped in a transparent Group so
// parsePrimary still returns exactly one Node.
func (p *Parser) expandMacro(tok lexer.Token, name string, m macro.Macro, depth int) ast.Node {
	args := p.readMacroArgs(m.Arity)

	if depth >= macro.MaxExpansionDepth {
		p.issue(errors.KindMacroRecursionOverflow, tok.Pos, "\\"+name+" exceeded macro expansion depth")
		return &ast.Command{Token: tok, Name: name}
	}

	res := p.macros.Expand(m, args, depth)
	if res.ArityMismatch {
		p.issue(errors.KindMacroArityMismatch, tok.Pos, "\\"+name+" expected "+strconv.Itoa(m.Arity)+" argument(s)")
	}

	children := p.parseSubTokens(res.Tokens, depth+1)
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return &ast.Group{Token: tok, Children: children}
	}
}

// parseSubTokens temporarily swaps the parser's token cursor onto a
// standalone token sequence (a macro expansion's spliced body) and
// parses it to completion, then restores the outer cursor.
func (p *Parser) parseSubTokens(toks []lexer.Token, depth int) []ast.Node {
	savedToks, savedPos, savedDepth := p.toks, p.pos, p.macroDepth
	p.toks = append(toks, lexer.Token{Type: lexer.EOF})
	p.pos = 0
	p.macroDepth = depth

	nodes := p.parseContainer(map[lexer.TokenType]bool{})

	p.toks, p.pos, p.macroDepth = savedToks, savedPos, savedDepth
	return nodes
}
