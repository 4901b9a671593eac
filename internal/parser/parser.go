// Package parser implements the recursive-descent parser that turns a
// lexer.Token stream into an *ast.Document (spec.md §4.3). It mirrors
// the teacher's internal/parser in shape — a token cursor, a
// dispatch-table-driven primary parser, and a collected-not-returned
// error channel — adapted to a closed math-mode grammar instead of a
// full scripting-language grammar.
package parser

import (
	"github.com/cwbudde/go-latexast/internal/ast"
	"github.com/cwbudde/go-latexast/internal/errors"
	"github.com/cwbudde/go-latexast/internal/lexer"
	"github.com/cwbudde/go-latexast/internal/macro"
)

// Parser consumes a token stream and builds an *ast.Document. It holds
// no reference to the original source text: diagnostics carry
// positions only, and formatting them against source is the caller's
// job (internal/errors.ParseIssue.FormatWithSource).
type Parser struct {
	toks   []lexer.Token
	pos    int
	macros *macro.Table
	issues []*errors.ParseIssue

	// macroDepth tracks nested macro expansion so the recursion cap
	// (spec.md §4.4, §7) applies across nested \newcommand bodies, not
	// just the outermost invocation.
	macroDepth int

	// stopStack mirrors the stop-set of the nearest enclosing
	// parseContainer call, so a bare \color{name} scope (which consumes
	// "the rest of the current group", spec.md §4.3) knows where that
	// group actually ends.
	stopStack []map[lexer.TokenType]bool

	// rowDepth is >0 while parsing an environment row/cell, where
	// whitespace between cells is elided rather than collapsed into a
	// Text(" ") node (spec.md §4.3, "Whitespace(s) ... unless inside an
	// environment row, where it is elided between cells").
	rowDepth int
}

// Option configures a Parser at construction time, mirroring the
// lexer's functional-option pattern.
type Option func(*Parser)

// WithMacros seeds the parser with a pre-populated macro table, for
// callers (e.g. the incremental driver) that persist macro
// definitions across parses.
func WithMacros(t *macro.Table) Option {
	return func(p *Parser) { p.macros = t }
}

// New tokenizes source and returns a Parser ready to produce a
// Document via Parse.
func New(source string, opts ...Option) *Parser {
	toks := lexer.New(source).Tokenize()
	return NewFromTokens(toks, opts...)
}

// NewFromTokens builds a Parser directly from an already-tokenized
// stream, for callers that run the lexer themselves (for example with
// lexer options that New does not pass).
func NewFromTokens(toks []lexer.Token, opts ...Option) *Parser {
	p := &Parser{toks: toks, macros: macro.NewTable()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the parser to completion. It always returns a complete
// Document; soft errors accumulate on Issues() instead of aborting
// (spec.md §7, "parsing always returns a Document").
func (p *Parser) Parse() *ast.Document {
	children := p.parseContainer(map[lexer.TokenType]bool{})
	return &ast.Document{Children: children}
}

// Issues returns every soft diagnostic recorded during the parse.
func (p *Parser) Issues() []*errors.ParseIssue { return p.issues }

// Macros exposes the macro table populated by \newcommand during the
// parse, so callers can persist definitions across incremental steps.
func (p *Parser) Macros() *macro.Table { return p.macros }

func (p *Parser) issue(kind errors.Kind, pos lexer.Position, msg string) {
	p.issues = append(p.issues, &errors.ParseIssue{Kind: kind, Severity: errors.SeverityWarning, Message: msg, Pos: pos})
}

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.toks) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) advance() lexer.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) currentStop() map[lexer.TokenType]bool {
	if len(p.stopStack) == 0 {
		return map[lexer.TokenType]bool{}
	}
	return p.stopStack[len(p.stopStack)-1]
}

// parseContainer parses primaries until EOF or a token in stop is
// reached (left unconsumed, for the caller to inspect), applying
// postfix script-binding to each appended node (spec.md §4.3 "Main
// loop").
func (p *Parser) parseContainer(stop map[lexer.TokenType]bool) []ast.Node {
	p.stopStack = append(p.stopStack, stop)
	defer func() { p.stopStack = p.stopStack[:len(p.stopStack)-1] }()

	var nodes []ast.Node
	for {
		tt := p.peek().Type
		if tt == lexer.EOF || stop[tt] {
			return nodes
		}
		node := p.parsePrimary()
		if node == nil {
			continue
		}
		nodes = append(nodes, p.attachPostfix(node))
	}
}

// attachPostfix implements the postfix register: a Superscript or
// Subscript token immediately following a primary wraps it, and at
// most one token of the opposite kind immediately following that
// wraps again, covering the combined forms `P^A_B` / `P_A^B`
// (spec.md §4.3). For a *ast.BigOperator base, both attachments bind
// into its Subscript/Superscript fields instead of wrapping
// (spec.md §4.3 "Postfix policy for big operators"); a repeated
// occurrence of the same kind overwrites the earlier one ("the later
// wins") and ends the state, as does binding the second kind.
func (p *Parser) attachPostfix(node ast.Node) ast.Node {
	tt := p.peek().Type
	if tt != lexer.SUPERSCRIPT && tt != lexer.SUBSCRIPT {
		return node
	}
	isSup := tt == lexer.SUPERSCRIPT
	tok := p.advance()
	operand := p.readArg()

	if big, ok := node.(*ast.BigOperator); ok {
		repeated := (isSup && big.Superscript != nil) || (!isSup && big.Subscript != nil)
		if isSup {
			big.Superscript = operand
		} else {
			big.Subscript = operand
		}
		if repeated || (big.Subscript != nil && big.Superscript != nil) {
			return node
		}
		if nt := p.peek().Type; nt == lexer.SUPERSCRIPT || nt == lexer.SUBSCRIPT {
			return p.attachPostfix(node)
		}
		return node
	}

	var wrapped ast.Node
	if isSup {
		wrapped = &ast.Superscript{Token: tok, Base: node, Exponent: operand}
	} else {
		wrapped = &ast.Subscript{Token: tok, Base: node, Index: operand}
	}

	if nt := p.peek().Type; (nt == lexer.SUPERSCRIPT && !isSup) || (nt == lexer.SUBSCRIPT && isSup) {
		tok2 := p.advance()
		operand2 := p.readArg()
		if isSup {
			return &ast.Subscript{Token: tok2, Base: wrapped, Index: operand2}
		}
		return &ast.Superscript{Token: tok2, Base: wrapped, Exponent: operand2}
	}
	return wrapped
}

// parsePrimary dispatches on the current token (spec.md §4.3, "Primary
// dispatch"). It always advances at least one token, so a malformed or
// out-of-context structural token (a stray '}' or '\end', say) is
// converted into a literal/diagnostic node rather than stalling the
// loop (spec.md §4.1, "the tokenizer never fails" extended to the
// parser: callers always get a complete Document).
func (p *Parser) parsePrimary() ast.Node {
	tok := p.peek()
	switch tok.Type {
	case lexer.TEXT:
		p.advance()
		return &ast.Text{Token: tok, Content: tok.Literal}
	case lexer.WHITESPACE:
		p.advance()
		if p.rowDepth > 0 {
			return nil
		}
		return &ast.Text{Token: tok, Content: " "}
	case lexer.COMMENT:
		p.advance()
		return &ast.Comment{Token: tok, Text: tok.Literal}
	case lexer.NEWLINE:
		p.advance()
		return &ast.NewLine{Token: tok}
	case lexer.LBRACE:
		return p.parseGroup()
	case lexer.BEGIN_ENV:
		return p.parseEnvironment()
	case lexer.COMMAND:
		return p.parseCommand()
	case lexer.RBRACE:
		p.issue(errors.KindUnterminatedGroup, tok.Pos, "stray '}' with no matching '{'")
		p.advance()
		return &ast.Text{Token: tok, Content: "}"}
	case lexer.END_ENV:
		p.issue(errors.KindMismatchedEnd, tok.Pos, "stray \\end{"+tok.Literal+"} with no matching \\begin")
		p.advance()
		return nil
	case lexer.AMPERSAND:
		p.advance()
		return &ast.Text{Token: tok, Content: "&"}
	case lexer.RBRACKET:
		p.advance()
		return &ast.Text{Token: tok, Content: "]"}
	case lexer.SUPERSCRIPT, lexer.SUBSCRIPT:
		p.issue(errors.KindUnknownCommand, tok.Pos, "stray script operator with no base")
		p.advance()
		return &ast.Text{Token: tok, Content: tok.Literal}
	case lexer.PARAM:
		// A "#N" marker outside macro-body expansion (spec.md §3.4) is
		// not a parameter substitution; render it back as literal text.
		p.advance()
		return &ast.Text{Token: tok, Content: "#" + tok.Literal}
	default:
		p.advance()
		return &ast.Text{Token: tok, Content: tok.Literal}
	}
}

var groupStop = map[lexer.TokenType]bool{lexer.RBRACE: true}

func (p *Parser) parseGroup() ast.Node {
	start := p.advance() // consume LBRACE
	children := p.parseContainer(groupStop)
	if p.peek().Type == lexer.RBRACE {
		p.advance()
	} else {
		p.issue(errors.KindUnterminatedGroup, start.Pos, "unterminated group")
	}
	return &ast.Group{Token: start, Children: children}
}

// readArg reads one command argument: either a braced Group or a
// single primary token (spec.md §4.3 "Argument reading").
func (p *Parser) readArg() ast.Node {
	if p.peek().Type == lexer.LBRACE {
		return p.parseGroup()
	}
	if node := p.parsePrimary(); node != nil {
		return node
	}
	return &ast.Text{Content: ""}
}

// readOptionalBracket reads a `[...]` argument if present.
func (p *Parser) readOptionalBracket() (ast.Node, bool) {
	if p.peek().Type != lexer.LBRACKET {
		return nil, false
	}
	open := p.advance()
	content := p.parseContainer(map[lexer.TokenType]bool{lexer.RBRACKET: true})
	if p.peek().Type == lexer.RBRACKET {
		p.advance()
	} else {
		p.issue(errors.KindUnterminatedGroup, open.Pos, "unterminated optional argument")
	}
	return wrapCell(content, open), true
}

// wrapCell folds a node slice (an environment cell, an optional
// argument's content) down to a single Node: the common single-node
// case returns it directly, an empty cell becomes an empty Text, and
// multiple nodes are wrapped in a transparent Group.
func wrapCell(nodes []ast.Node, tok lexer.Token) ast.Node {
	switch len(nodes) {
	case 0:
		return &ast.Text{Token: tok, Content: ""}
	case 1:
		return nodes[0]
	default:
		return &ast.Group{Token: tok, Children: nodes}
	}
}

// readBalancedGroupTokens consumes a brace-delimited run and returns
// its *raw* tokens (not parsed), for macro bodies and other contexts
// that need the unparsed token sequence.
func (p *Parser) readBalancedGroupTokens() []lexer.Token {
	p.advance() // consume LBRACE
	var toks []lexer.Token
	depth := 1
	for {
		tt := p.peek().Type
		if tt == lexer.EOF {
			return toks
		}
		if tt == lexer.LBRACE {
			depth++
		} else if tt == lexer.RBRACE {
			depth--
			if depth == 0 {
				p.advance()
				return toks
			}
		}
		toks = append(toks, p.advance())
	}
}

// readUntilRBracket consumes raw tokens up to (and including) the next
// RBRACKET, for non-nested `[...]` content such as \newcommand's arity.
func (p *Parser) readUntilRBracket() []lexer.Token {
	var toks []lexer.Token
	for p.peek().Type != lexer.RBRACKET && p.peek().Type != lexer.EOF {
		toks = append(toks, p.advance())
	}
	if p.peek().Type == lexer.RBRACKET {
		p.advance()
	}
	return toks
}

// pushBackText splices a synthetic TEXT token into the stream at the
// current position, used when a delimiter glyph is the first rune of
// a longer Text run (spec.md §4.3, "<d> is ... a single char").
func (p *Parser) pushBackText(s string, pos lexer.Position) {
	if s == "" {
		return
	}
	tok := lexer.Token{Type: lexer.TEXT, Literal: s, Pos: pos}
	rest := make([]lexer.Token, 0, len(p.toks)-p.pos+1)
	rest = append(rest, tok)
	rest = append(rest, p.toks[p.pos:]...)
	p.toks = append(p.toks[:p.pos:p.pos], rest...)
}

// tokensToRaw reconstructs an approximate source rendering of a raw
// token slice, used for \text{...} bodies, array alignment specs, and
// generic command options where no further parsing applies.
func tokensToRaw(toks []lexer.Token) string {
	var out []rune
	for _, t := range toks {
		switch t.Type {
		case lexer.COMMAND:
			out = append(out, '\\')
			out = append(out, []rune(t.Literal)...)
		case lexer.LBRACE:
			out = append(out, '{')
		case lexer.RBRACE:
			out = append(out, '}')
		case lexer.LBRACKET:
			out = append(out, '[')
		case lexer.RBRACKET:
			out = append(out, ']')
		case lexer.SUPERSCRIPT:
			out = append(out, '^')
		case lexer.SUBSCRIPT:
			out = append(out, '_')
		case lexer.AMPERSAND:
			out = append(out, '&')
		case lexer.NEWLINE:
			out = append(out, '\\', '\\')
		case lexer.PARAM:
			out = append(out, '#')
			out = append(out, []rune(t.Literal)...)
		default:
			out = append(out, []rune(t.Literal)...)
		}
	}
	return string(out)
}
