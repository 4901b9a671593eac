package ast

import (
	"testing"

	"github.com/cwbudde/go-latexast/internal/lexer"
)

func tok(lit string) lexer.Token {
	return lexer.Token{Type: lexer.COMMAND, Literal: lit}
}

func TestTextString(t *testing.T) {
	n := &Text{Token: tok("x"), Content: "x"}
	if n.String() != "x" {
		t.Fatalf("got %q", n.String())
	}
	if n.TokenLiteral() != "x" {
		t.Fatalf("got %q", n.TokenLiteral())
	}
}

func TestDocumentJoinsChildren(t *testing.T) {
	doc := &Document{Children: []Node{
		&Text{Token: tok("a"), Content: "a"},
		&Text{Token: tok("b"), Content: "b"},
	}}
	if got := doc.String(); got != "ab" {
		t.Fatalf("got %q", got)
	}
}

func TestSuperscriptSubscriptString(t *testing.T) {
	base := &Text{Content: "x"}
	sup := &Superscript{Token: tok("^"), Base: base, Exponent: &Text{Content: "2"}}
	if got := sup.String(); got != "x^{2}" {
		t.Fatalf("got %q", got)
	}
	sub := &Subscript{Token: tok("_"), Base: base, Index: &Text{Content: "i"}}
	if got := sub.String(); got != "x_{i}" {
		t.Fatalf("got %q", got)
	}
}

func TestFractionString(t *testing.T) {
	f := &Fraction{Token: tok("frac"), Numerator: &Text{Content: "1"}, Denominator: &Text{Content: "2"}}
	if got := f.String(); got != "\\frac{1}{2}" {
		t.Fatalf("got %q", got)
	}
}

func TestRootPlainSqrt(t *testing.T) {
	r := &Root{Token: tok("sqrt"), Content: &Text{Content: "x"}}
	if got := r.String(); got != "\\sqrt{x}" {
		t.Fatalf("got %q", got)
	}
}

func TestRootWithIndex(t *testing.T) {
	r := &Root{Token: tok("sqrt"), Content: &Text{Content: "x"}, Index: &Text{Content: "3"}}
	if got := r.String(); got != "\\sqrt[3]{x}" {
		t.Fatalf("got %q", got)
	}
}

func TestMatrixRowsAndCells(t *testing.T) {
	m := &Matrix{
		Kind: MatrixParen,
		Rows: [][]Node{
			{&Text{Content: "1"}, &Text{Content: "2"}},
			{&Text{Content: "3"}, &Text{Content: "4"}},
		},
	}
	if got := m.String(); got != "1 & 2 \\\\ 3 & 4" {
		t.Fatalf("got %q", got)
	}
}

func TestCasesPairsWithAndWithoutCondition(t *testing.T) {
	c := &Cases{Pairs: []CasePair{
		{Value: &Text{Content: "1"}, Condition: &Text{Content: "x>0"}},
		{Value: &Text{Content: "0"}},
	}}
	got := c.String()
	want := "\\begin{cases}1 & x>0 \\\\ 0\\end{cases}"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDelimitedString(t *testing.T) {
	d := &Delimited{Left: "(", Right: ")", Content: []Node{&Text{Content: "x"}}}
	if got := d.String(); got != "(x)" {
		t.Fatalf("got %q", got)
	}
}

func TestAccentString(t *testing.T) {
	a := &Accent{Token: tok("hat"), Content: &Text{Content: "x"}, Kind: AccentHat}
	if got := a.String(); got != "\\hat{x}" {
		t.Fatalf("got %q", got)
	}
}

func TestStackOversetUnderset(t *testing.T) {
	over := &Stack{Base: &Text{Content: "f"}, Above: &Text{Content: "def"}}
	if got := over.String(); got != "\\overset{def}{f}" {
		t.Fatalf("got %q", got)
	}
	under := &Stack{Base: &Text{Content: "f"}, Below: &Text{Content: "def"}}
	if got := under.String(); got != "\\underset{def}{f}" {
		t.Fatalf("got %q", got)
	}
}

func TestEnvironmentGenericFallback(t *testing.T) {
	e := &Environment{Name: "foo", Content: []Node{&Text{Content: "x"}}}
	if got := e.String(); got != "\\begin{foo}x\\end{foo}" {
		t.Fatalf("got %q", got)
	}
}

func TestBigOperatorWithLimits(t *testing.T) {
	b := &BigOperator{Op: "\\sum", Subscript: &Text{Content: "i=0"}, Superscript: &Text{Content: "n"}}
	if got := b.String(); got != "\\sum_{i=0}^{n}" {
		t.Fatalf("got %q", got)
	}
}

func TestWalkVisitsAllNodes(t *testing.T) {
	doc := &Document{Children: []Node{
		&Fraction{Numerator: &Text{Content: "1"}, Denominator: &Text{Content: "2"}},
		&Cases{Pairs: []CasePair{{Value: &Text{Content: "a"}, Condition: &Text{Content: "b"}}}},
	}}
	var visited int
	Inspect(doc, func(n Node) bool {
		visited++
		return true
	})
	// Document + Fraction + 1 + 2 + Cases + a + b = 7
	if visited != 7 {
		t.Fatalf("got %d visits", visited)
	}
}

func TestWalkStopsDescentWhenVisitorReturnsNil(t *testing.T) {
	doc := &Document{Children: []Node{
		&Fraction{Numerator: &Text{Content: "1"}, Denominator: &Text{Content: "2"}},
	}}
	var visited int
	Inspect(doc, func(n Node) bool {
		visited++
		_, isFraction := n.(*Fraction)
		return !isFraction
	})
	if visited != 2 {
		t.Fatalf("got %d visits, want 2 (Document, Fraction)", visited)
	}
}
