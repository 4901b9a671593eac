package latexast

import (
	"testing"

	"github.com/cwbudde/go-latexast/internal/ast"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestParseScenarios snapshots the debug dump of each concrete scenario
// from spec.md §8, the same way the teacher's interpreter fixture
// suite snapshots interpreter output.
func TestParseScenarios(t *testing.T) {
	scenarios := []struct {
		name   string
		source string
	}{
		{"quadratic_formula", `\frac{-b \pm \sqrt{b^2 - 4ac}}{2a}`},
		{"pmatrix", `\begin{pmatrix} a & b \\ c & d \end{pmatrix}`},
		{"newcommand_blackboard_bold", `\newcommand{\R}{\mathbb{R}} x \in \R`},
		{"sum_with_limits", `\sum_{i=1}^{n} i^2`},
		{"left_right_delimited_fraction", `\left( \frac{a}{b} \right)`},
		{"cases_piecewise", `\begin{cases} x & x \geq 0 \\ -x & x < 0 \end{cases}`},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			doc := Parse(sc.source)
			snaps.MatchSnapshot(t, sc.name, Debug(doc))
		})
	}
}

// TestSymbolResolutionMatchesParseOutput checks the "Symbol resolution"
// testable property of spec.md §8: parsing a bare resolved command
// yields a single Symbol node carrying the table's own answer. Names
// that also satisfy symbols.IsBigOperator are excluded here, since a
// structural handler overrides symbol promotion for those (spec.md
// §4.2) — see TestBigOperatorNamesStillResolveInTheSymbolTable below.
func TestSymbolResolutionMatchesParseOutput(t *testing.T) {
	for _, name := range []string{"alpha", "rightarrow", "leq"} {
		uni, ok := Resolve(name)
		if !ok {
			t.Fatalf("Resolve(%q) reported not found", name)
		}
		doc := Parse(`\` + name)
		if len(doc.Children) != 1 {
			t.Fatalf("%s: got %d children", name, len(doc.Children))
		}
		if doc.Children[0].String() != uni {
			t.Fatalf("%s: got %q, want %q", name, doc.Children[0].String(), uni)
		}
	}
}

// TestBigOperatorNamesStillResolveInTheSymbolTable checks that a
// big-operator command (spec.md glossary: "an operator glyph whose
// following _/^ attach as limits") still resolves through the symbol
// table for consumers that want the raw glyph, even though Parse
// itself promotes it to a *ast.BigOperator instead of a *ast.Symbol.
func TestBigOperatorNamesStillResolveInTheSymbolTable(t *testing.T) {
	uni, ok := Resolve("sum")
	if !ok {
		t.Fatal(`Resolve("sum") reported not found`)
	}
	if uni != "∑" {
		t.Fatalf(`Resolve("sum") = %q, want "∑"`, uni)
	}

	doc := Parse(`\sum`)
	if len(doc.Children) != 1 {
		t.Fatalf("got %d children", len(doc.Children))
	}
	big, ok := doc.Children[0].(*ast.BigOperator)
	if !ok {
		t.Fatalf("got %T, want *ast.BigOperator", doc.Children[0])
	}
	if big.Op != `\sum` {
		t.Fatalf("got Op %q, want %q", big.Op, `\sum`)
	}
}
