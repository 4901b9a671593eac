// Package macro implements the user-macro table and expander that sits
// between the tokenizer and the parser (spec.md §3.4, §4.4): it tracks
// `\newcommand` definitions and splices macro bodies back into the
// token stream with positional parameters substituted.
package macro

import "github.com/cwbudde/go-latexast/internal/lexer"

// MaxExpansionDepth caps recursive macro expansion (spec.md §4.4,
// "recommend 64"). Expansion beyond the cap stops and the remaining
// body is emitted as-is (spec.md §7, "Macro recursion overflow").
const MaxExpansionDepth = 64

// Macro is one `\newcommand` registration: a fixed arity and a token
// sequence in which `#1`..`#9` mark parameter positions.
type Macro struct {
	Arity int
	Body  []lexer.Token
}

// Table is the transient macro table maintained during a single parse
// (spec.md §3.4). It is not safe for concurrent use, matching every
// other stateful type in this module (SPEC_FULL.md §7).
type Table struct {
	macros map[string]Macro
}

// NewTable returns an empty macro table.
func NewTable() *Table {
	return &Table{macros: make(map[string]Macro)}
}

// Define registers or overwrites a macro. Redefinition silently
// replaces the previous entry (spec.md §3.4: "SHOULD overwrite
// silently").
func (t *Table) Define(name string, arity int, body []lexer.Token) {
	t.macros[name] = Macro{Arity: arity, Body: body}
}

// Lookup returns the macro registered under name, if any.
func (t *Table) Lookup(name string) (Macro, bool) {
	m, ok := t.macros[name]
	return m, ok
}

// IsDefined reports whether name has a current macro definition.
func (t *Table) IsDefined(name string) bool {
	_, ok := t.macros[name]
	return ok
}

// ExpandResult is the outcome of expanding one macro invocation.
type ExpandResult struct {
	Tokens       []lexer.Token
	ArityMismatch bool // fewer arguments supplied than the macro's arity
}

// Expand splices a macro's body with `#1..#9` replaced by the
// corresponding entries of args (each itself a token sequence, copied
// by value per spec.md §4.4 "do not share storage with the source
// program"). depth is the caller's current expansion nesting; Expand
// does not recurse itself (the parser re-enters the token stream and
// may call Expand again for nested macros), but it refuses to expand
// once depth has reached MaxExpansionDepth, instead returning the raw
// body untouched (spec.md §7).
func (t *Table) Expand(m Macro, args [][]lexer.Token, depth int) ExpandResult {
	if depth >= MaxExpansionDepth {
		return ExpandResult{Tokens: copyTokens(m.Body)}
	}

	mismatch := len(args) < m.Arity

	out := make([]lexer.Token, 0, len(m.Body))
	for _, tok := range m.Body {
		if idx, ok := paramIndex(tok); ok {
			if idx-1 < len(args) {
				out = append(out, args[idx-1]...)
				continue
			}
			// Arity mismatch: leave the `#i` marker as literal text
			// (spec.md §7 "treat remaining #i as literal text").
			out = append(out, tok)
			continue
		}
		out = append(out, tok)
	}
	return ExpandResult{Tokens: out, ArityMismatch: mismatch}
}

// paramIndex reports whether tok is a `#1`..`#9` parameter marker and,
// if so, its 1-based index. Parameter markers are lexed as a dedicated
// lexer.PARAM token (internal/lexer's scanHash) so that a parameter
// embedded in a larger text run, e.g. `|#1|`, still substitutes
// correctly instead of fusing into an ordinary Text token.
func paramIndex(tok lexer.Token) (int, bool) {
	if tok.Type != lexer.PARAM {
		return 0, false
	}
	if len(tok.Literal) != 1 {
		return 0, false
	}
	d := tok.Literal[0]
	if d < '1' || d > '9' {
		return 0, false
	}
	return int(d - '0'), true
}

func copyTokens(in []lexer.Token) []lexer.Token {
	out := make([]lexer.Token, len(in))
	copy(out, in)
	return out
}
