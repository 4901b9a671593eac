package lexer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Lexer is a single-pass, O(n) tokenizer for LaTeX math-mode source.
//
// Like the teacher's Lexer, column positions are rune counts rather than
// byte offsets or display widths: multi-byte runes (combining accents,
// Greek letters typed literally, emoji) each count as one column. This
// keeps position tracking simple and reproducible across platforms.
type Lexer struct {
	input            []rune
	errors           []Error
	position         int
	line             int
	column           int
	preserveComments bool
}

// Error is a recoverable lexer diagnostic. The tokenizer never aborts on
// one (spec.md §4.1: "the tokenizer never fails"); errors are collected
// for callers that want to surface them.
type Error struct {
	Message string
	Pos     Position
}

// Option configures a Lexer at construction time, mirroring the teacher's
// LexerOption functional-option pattern.
type Option func(*Lexer)

// WithPreserveComments makes the lexer emit COMMENT tokens for "%" runs
// instead of silently discarding them. Off by default.
func WithPreserveComments(preserve bool) Option {
	return func(l *Lexer) { l.preserveComments = preserve }
}

// New creates a Lexer over input, NFC-normalizing it first so that
// combining-accent sequences and precomposed characters tokenize
// identically (SPEC_FULL.md §3, "Unicode normalization").
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{
		input:  []rune(norm.NFC.String(input)),
		line:   1,
		column: 1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Errors returns the diagnostics accumulated while scanning.
func (l *Lexer) Errors() []Error { return l.errors }

func (l *Lexer) addError(msg string, pos Position) {
	l.errors = append(l.errors, Error{Message: msg, Pos: pos})
}

func (l *Lexer) atEnd() bool { return l.position >= len(l.input) }

func (l *Lexer) peekRune() rune {
	if l.atEnd() {
		return 0
	}
	return l.input[l.position]
}

func (l *Lexer) peekRuneAt(offset int) rune {
	idx := l.position + offset
	if idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

func (l *Lexer) advance() rune {
	r := l.input[l.position]
	l.position++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.position}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Tokenize runs the scanner to completion and returns the full token
// list, always terminated by exactly one EOF token (spec.md §3.1).
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// Next scans and returns the next token. Callers that want the full
// stream should prefer Tokenize; Next is exposed for incremental/
// streaming consumers.
func (l *Lexer) Next() Token {
	if l.atEnd() {
		return Token{Type: EOF, Pos: l.pos()}
	}

	start := l.pos()
	r := l.peekRune()

	switch {
	case r == '\\':
		return l.scanBackslash(start)
	case r == '{':
		l.advance()
		return Token{Type: LBRACE, Literal: "{", Pos: start}
	case r == '}':
		l.advance()
		return Token{Type: RBRACE, Literal: "}", Pos: start}
	case r == '[':
		l.advance()
		return Token{Type: LBRACKET, Literal: "[", Pos: start}
	case r == ']':
		l.advance()
		return Token{Type: RBRACKET, Literal: "]", Pos: start}
	case r == '^':
		l.advance()
		return Token{Type: SUPERSCRIPT, Literal: "^", Pos: start}
	case r == '_':
		l.advance()
		return Token{Type: SUBSCRIPT, Literal: "_", Pos: start}
	case r == '&':
		l.advance()
		return Token{Type: AMPERSAND, Literal: "&", Pos: start}
	case r == '\n' || r == '\r':
		l.advance()
		return l.Next() // raw line breaks are silent whitespace, never a token
	case r == ' ' || r == '\t':
		return l.scanWhitespace(start)
	case r == '%':
		return l.scanComment(start)
	case r == '#':
		return l.scanHash(start)
	default:
		return l.scanText(start)
	}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	var sb strings.Builder
	for !l.atEnd() && (l.peekRune() == ' ' || l.peekRune() == '\t') {
		sb.WriteRune(l.advance())
	}
	return Token{Type: WHITESPACE, Literal: sb.String(), Pos: start}
}

func (l *Lexer) scanComment(start Position) Token {
	l.advance() // consume '%'
	var sb strings.Builder
	for !l.atEnd() && l.peekRune() != '\n' && l.peekRune() != '\r' {
		sb.WriteRune(l.advance())
	}
	if !l.preserveComments {
		return l.Next()
	}
	return Token{Type: COMMENT, Literal: sb.String(), Pos: start}
}

// isSpecial reports whether r terminates a Text run.
func isSpecial(r rune) bool {
	switch r {
	case '\\', '{', '}', '[', ']', '^', '_', '&', ' ', '\t', '\n', '\r', '%', '#':
		return true
	}
	return false
}

// scanHash handles "#" so that a macro-body positional parameter
// "#1".."#9" tokenizes as its own PARAM token instead of fusing into
// the surrounding Text run (spec.md §3.4, §4.4). A "#" not followed by
// a digit 1-9 is ordinary text and is folded back into a Text token,
// since spec.md never makes "#" special outside that context.
func (l *Lexer) scanHash(start Position) Token {
	l.advance() // consume '#'

	if r := l.peekRune(); r >= '1' && r <= '9' {
		d := l.advance()
		return Token{Type: PARAM, Literal: string(d), Pos: start}
	}

	var sb strings.Builder
	sb.WriteRune('#')
	for !l.atEnd() && !isSpecial(l.peekRune()) {
		sb.WriteRune(l.advance())
	}
	return Token{Type: TEXT, Literal: sb.String(), Pos: start}
}

func (l *Lexer) scanText(start Position) Token {
	var sb strings.Builder
	for !l.atEnd() && !isSpecial(l.peekRune()) {
		sb.WriteRune(l.advance())
	}
	return Token{Type: TEXT, Literal: sb.String(), Pos: start}
}

func (l *Lexer) scanBackslash(start Position) Token {
	l.advance() // consume '\'

	if l.peekRune() == '\\' {
		l.advance()
		return Token{Type: NEWLINE, Literal: "\\\\", Pos: start}
	}

	name := l.scanCommandName()

	if name == "" {
		// \X for a single non-letter character, e.g. \{, \}, \$, \,, \!
		if l.atEnd() {
			l.addError("backslash at end of input", start)
			return Token{Type: ILLEGAL, Literal: "\\", Pos: start}
		}
		ch := l.advance()
		return Token{Type: COMMAND, Literal: string(ch), Pos: start}
	}

	if name == "begin" || name == "end" {
		if tok, ok := l.scanEnvironmentName(name, start); ok {
			return tok
		}
		return Token{Type: COMMAND, Literal: name, Pos: start}
	}

	return Token{Type: COMMAND, Literal: name, Pos: start}
}

// scanCommandName consumes a greedy run of ASCII letters, with an
// optional leading '@' (spec.md §4.1), and returns the name (possibly
// empty).
func (l *Lexer) scanCommandName() string {
	var sb strings.Builder
	if l.peekRune() == '@' {
		sb.WriteRune(l.advance())
	}
	for !l.atEnd() && isLetter(l.peekRune()) {
		sb.WriteRune(l.advance())
	}
	return sb.String()
}

// scanEnvironmentName handles \begin{name} / \end{name}. If the
// required braces are absent it leaves the cursor where it started and
// reports ok=false so the caller falls back to a plain Command token.
func (l *Lexer) scanEnvironmentName(kind string, start Position) (Token, bool) {
	savedPos, savedLine, savedCol := l.position, l.line, l.column

	for !l.atEnd() && (l.peekRune() == ' ' || l.peekRune() == '\t' || l.peekRune() == '\n' || l.peekRune() == '\r') {
		l.advance()
	}
	if l.atEnd() || l.peekRune() != '{' {
		l.position, l.line, l.column = savedPos, savedLine, savedCol
		return Token{}, false
	}
	l.advance() // consume '{'

	var sb strings.Builder
	for !l.atEnd() && l.peekRune() != '}' {
		sb.WriteRune(l.advance())
	}
	if l.atEnd() {
		l.addError("unterminated environment name after \\"+kind, start)
		l.position, l.line, l.column = savedPos, savedLine, savedCol
		return Token{}, false
	}
	l.advance() // consume '}'

	tt := BEGIN_ENV
	if kind == "end" {
		tt = END_ENV
	}
	return Token{Type: tt, Literal: strings.TrimSpace(sb.String()), Pos: start}, true
}
