package lexer

import "testing"

func tokenTypes(toks []Token) []TokenType {
	types := make([]TokenType, len(toks))
	for i, t := range toks {
		types[i] = t.Type
	}
	return types
}

func assertTypes(t *testing.T, got []Token, want ...TokenType) {
	t.Helper()
	gotTypes := tokenTypes(got)
	if len(gotTypes) != len(want) {
		t.Fatalf("token count mismatch: got %v, want %v", gotTypes, want)
	}
	for i, w := range want {
		if gotTypes[i] != w {
			t.Fatalf("token[%d] = %s, want %s (all: %v)", i, gotTypes[i], w, gotTypes)
		}
	}
}

func TestTokenizeSimpleCommand(t *testing.T) {
	toks := New(`\alpha`).Tokenize()
	assertTypes(t, toks, COMMAND, EOF)
	if toks[0].Literal != "alpha" {
		t.Errorf("literal = %q, want alpha", toks[0].Literal)
	}
}

func TestTokenizeOneCharCommand(t *testing.T) {
	toks := New(`\,`).Tokenize()
	assertTypes(t, toks, COMMAND, EOF)
	if toks[0].Literal != "," {
		t.Errorf("literal = %q, want ,", toks[0].Literal)
	}
}

func TestTokenizeDoubleBackslashIsNewline(t *testing.T) {
	toks := New(`a \\ b`).Tokenize()
	assertTypes(t, toks, TEXT, WHITESPACE, NEWLINE, WHITESPACE, TEXT, EOF)
}

func TestTokenizeBeginEnvironment(t *testing.T) {
	toks := New(`\begin{pmatrix}a\end{pmatrix}`).Tokenize()
	assertTypes(t, toks, BEGIN_ENV, TEXT, END_ENV, EOF)
	if toks[0].Literal != "pmatrix" || toks[2].Literal != "pmatrix" {
		t.Errorf("environment names = %q/%q", toks[0].Literal, toks[2].Literal)
	}
}

func TestTokenizeBeginWithoutBraceFallsBackToCommand(t *testing.T) {
	toks := New(`\begin x`).Tokenize()
	assertTypes(t, toks, COMMAND, WHITESPACE, TEXT, EOF)
	if toks[0].Literal != "begin" {
		t.Errorf("literal = %q, want begin", toks[0].Literal)
	}
}

func TestTokenizeStructuralChars(t *testing.T) {
	toks := New(`{x^a_b}[y]&`).Tokenize()
	assertTypes(t, toks,
		LBRACE, TEXT, SUPERSCRIPT, TEXT, SUBSCRIPT, TEXT, RBRACE,
		LBRACKET, TEXT, RBRACKET, AMPERSAND, EOF)
}

func TestTokenizeWhitespaceCoalesced(t *testing.T) {
	toks := New("a   \t b").Tokenize()
	assertTypes(t, toks, TEXT, WHITESPACE, TEXT, EOF)
	if toks[1].Literal != "   \t " {
		t.Errorf("whitespace literal = %q", toks[1].Literal)
	}
}

func TestTokenizeRawNewlineIsSilent(t *testing.T) {
	toks := New("a\nb").Tokenize()
	assertTypes(t, toks, TEXT, TEXT, EOF)
}

func TestTokenizeCommentDefaultSkipped(t *testing.T) {
	toks := New("a % a comment\nb").Tokenize()
	assertTypes(t, toks, TEXT, WHITESPACE, TEXT, EOF)
}

func TestTokenizeCommentPreserved(t *testing.T) {
	toks := New("a % note\nb", WithPreserveComments(true)).Tokenize()
	assertTypes(t, toks, TEXT, WHITESPACE, COMMENT, TEXT, EOF)
	if toks[2].Literal != " note" {
		t.Errorf("comment literal = %q", toks[2].Literal)
	}
}

func TestTokenizeNeverFails(t *testing.T) {
	// The tokenizer must never panic, even on malformed input.
	inputs := []string{`\`, `\begin{`, `{{{{{`, `^^^_`, ""}
	for _, in := range inputs {
		toks := New(in).Tokenize()
		if len(toks) == 0 || toks[len(toks)-1].Type != EOF {
			t.Errorf("input %q: token stream did not terminate with EOF", in)
		}
	}
}

func TestTokenizeAlwaysEndsWithOneEOF(t *testing.T) {
	toks := New(`x + y`).Tokenize()
	eofCount := 0
	for _, tok := range toks {
		if tok.Type == EOF {
			eofCount++
		}
	}
	if eofCount != 1 {
		t.Errorf("expected exactly one EOF token, got %d", eofCount)
	}
	if toks[len(toks)-1].Type != EOF {
		t.Errorf("last token is not EOF")
	}
}

func TestTokenizeParamMarker(t *testing.T) {
	toks := New(`#1`).Tokenize()
	assertTypes(t, toks, PARAM, EOF)
	if toks[0].Literal != "1" {
		t.Errorf("literal = %q, want 1", toks[0].Literal)
	}
}

// TestTokenizeParamMarkerInsideTextRun is the regression this guards:
// a macro parameter embedded in a larger text run, e.g. the body
// `|#1|`, must tokenize as TEXT("|"), PARAM("1"), TEXT("|") rather than
// fusing "#1" into one of the surrounding Text tokens, or the macro
// expander would never see it as a substitution point (spec.md §4.4).
func TestTokenizeParamMarkerInsideTextRun(t *testing.T) {
	toks := New(`|#1|`).Tokenize()
	assertTypes(t, toks, TEXT, PARAM, TEXT, EOF)
	if toks[0].Literal != "|" || toks[1].Literal != "1" || toks[2].Literal != "|" {
		t.Errorf("literals = %q/%q/%q", toks[0].Literal, toks[1].Literal, toks[2].Literal)
	}
}

func TestTokenizeHashWithoutDigitIsText(t *testing.T) {
	toks := New(`#abc`).Tokenize()
	assertTypes(t, toks, TEXT, EOF)
	if toks[0].Literal != "#abc" {
		t.Errorf("literal = %q, want #abc", toks[0].Literal)
	}
}

func TestTokenizeUnicodeColumnsCountRunes(t *testing.T) {
	toks := New(`Δx`).Tokenize()
	// "Δx" is one Text run; EOF follows two runes later, at column 3
	// (a byte count would put it at column 4).
	assertTypes(t, toks, TEXT, EOF)
	if toks[0].Pos.Column != 1 {
		t.Errorf("column = %d, want 1", toks[0].Pos.Column)
	}
	if toks[1].Pos.Column != 3 {
		t.Errorf("EOF column = %d, want 3", toks[1].Pos.Column)
	}
}
