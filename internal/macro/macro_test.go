package macro

import (
	"testing"

	"github.com/cwbudde/go-latexast/internal/lexer"
)

func textTok(s string) lexer.Token {
	return lexer.Token{Type: lexer.TEXT, Literal: s}
}

// paramTok builds a lexer.PARAM token for digit n, the way
// internal/lexer's scanHash tokenizes "#n" inside a macro body.
func paramTok(n int) lexer.Token {
	return lexer.Token{Type: lexer.PARAM, Literal: string(rune('0' + n))}
}

func TestDefineAndLookup(t *testing.T) {
	tbl := NewTable()
	tbl.Define("foo", 1, []lexer.Token{paramTok(1), textTok("bar")})

	m, ok := tbl.Lookup("foo")
	if !ok {
		t.Fatal("expected macro to be defined")
	}
	if m.Arity != 1 {
		t.Fatalf("got arity %d", m.Arity)
	}
	if !tbl.IsDefined("foo") {
		t.Fatal("expected IsDefined true")
	}
	if tbl.IsDefined("nope") {
		t.Fatal("expected IsDefined false for unknown name")
	}
}

func TestDefineOverwritesSilently(t *testing.T) {
	tbl := NewTable()
	tbl.Define("x", 0, []lexer.Token{textTok("a")})
	tbl.Define("x", 2, []lexer.Token{textTok("b")})

	m, _ := tbl.Lookup("x")
	if m.Arity != 2 || m.Body[0].Literal != "b" {
		t.Fatalf("redefinition did not overwrite: %+v", m)
	}
}

func TestExpandSubstitutesPositionalParams(t *testing.T) {
	tbl := NewTable()
	m := Macro{Arity: 2, Body: []lexer.Token{paramTok(1), textTok("+"), paramTok(2)}}
	args := [][]lexer.Token{{textTok("a")}, {textTok("b")}}

	res := tbl.Expand(m, args, 0)
	if res.ArityMismatch {
		t.Fatal("unexpected arity mismatch")
	}
	want := []string{"a", "+", "b"}
	if len(res.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(res.Tokens), len(want))
	}
	for i, tok := range res.Tokens {
		if tok.Literal != want[i] {
			t.Fatalf("token %d: got %q want %q", i, tok.Literal, want[i])
		}
	}
}

func TestExpandArityMismatchLeavesLiteralMarker(t *testing.T) {
	tbl := NewTable()
	m := Macro{Arity: 2, Body: []lexer.Token{paramTok(1), paramTok(2)}}
	args := [][]lexer.Token{{textTok("a")}}

	res := tbl.Expand(m, args, 0)
	if !res.ArityMismatch {
		t.Fatal("expected arity mismatch")
	}
	if res.Tokens[0].Literal != "a" {
		t.Fatalf("got %q", res.Tokens[0].Literal)
	}
	if res.Tokens[1].Literal != "2" || res.Tokens[1].Type != lexer.PARAM {
		t.Fatalf("expected literal #2 marker preserved, got %+v", res.Tokens[1])
	}
}

func TestExpandRecursionCapStopsSubstitution(t *testing.T) {
	tbl := NewTable()
	m := Macro{Arity: 1, Body: []lexer.Token{paramTok(1)}}
	args := [][]lexer.Token{{textTok("a")}}

	res := tbl.Expand(m, args, MaxExpansionDepth)
	if len(res.Tokens) != 1 || res.Tokens[0].Literal != "1" || res.Tokens[0].Type != lexer.PARAM {
		t.Fatalf("expected raw body at cap, got %+v", res.Tokens)
	}
}

func TestExpandArgumentsCopiedByValue(t *testing.T) {
	tbl := NewTable()
	m := Macro{Arity: 1, Body: []lexer.Token{paramTok(1)}}
	arg := []lexer.Token{textTok("a")}
	args := [][]lexer.Token{arg}

	res := tbl.Expand(m, args, 0)
	res.Tokens[0].Literal = "mutated"
	if arg[0].Literal != "a" {
		t.Fatalf("expansion mutated caller's argument slice: %q", arg[0].Literal)
	}
}
