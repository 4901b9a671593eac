package latexast

import "github.com/alecthomas/repr"

// PrettyPrint renders doc as LaTeX-like source by concatenating each
// node's String(). The output does not always reparse to the same
// tree: Symbol nodes render as their Unicode glyph, Delimited and
// ManualSizedDelimiter render only their glyphs (no \left/\right or
// \big), and Matrix, Aligned, Split, Multline, Eqnarray and
// Subequations render their rows without the surrounding \begin/\end.
// \newcommand definitions are not printed; their expansions are.
func PrettyPrint(doc *Document) string {
	return doc.String()
}

// Debug renders an AST subtree as an indented Go-like structure, for
// CLI inspection and test failure output, using alecthomas/repr.
func Debug(n Node) string {
	return repr.String(n, repr.Indent("  "))
}
