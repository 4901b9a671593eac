package ast

// Visitor receives every node reachable from a Document during a Walk.
// Visit returns a (possibly different) Visitor to use for the node's
// children; returning nil stops descent into that subtree (spec.md §6.3).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order, calling v.Visit for node
// and each of its children, grandchildren, and so on (spec.md §6.3,
// "AST consumer interface"). It mirrors the standard library's
// ast.Walk so callers already familiar with go/ast feel at home.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	v = v.Visit(node)
	if v == nil {
		return
	}

	switch n := node.(type) {
	case *Document:
		walkAll(v, n.Children)
	case *Text, *NewLine, *Symbol, *Operator, *Comment, *TextMode, *ManualSizedDelimiter:
		// leaf nodes, nothing to recurse into
	case *Command:
		walkAll(v, n.Args)
	case *Group:
		walkAll(v, n.Children)
	case *Superscript:
		Walk(v, n.Base)
		Walk(v, n.Exponent)
	case *Subscript:
		Walk(v, n.Base)
		Walk(v, n.Index)
	case *Fraction:
		Walk(v, n.Numerator)
		Walk(v, n.Denominator)
	case *Root:
		if n.Index != nil {
			Walk(v, n.Index)
		}
		Walk(v, n.Content)
	case *Binomial:
		Walk(v, n.Top)
		Walk(v, n.Bottom)
	case *Matrix:
		walkRows(v, n.Rows)
	case *Array:
		walkRows(v, n.Rows)
	case *Space, *HSpace:
		// leaf nodes
	case *Delimited:
		walkAll(v, n.Content)
	case *Accent:
		Walk(v, n.Content)
	case *ExtensibleArrow:
		Walk(v, n.Above)
		if n.Below != nil {
			Walk(v, n.Below)
		}
	case *Stack:
		Walk(v, n.Base)
		if n.Above != nil {
			Walk(v, n.Above)
		}
		if n.Below != nil {
			Walk(v, n.Below)
		}
	case *Style:
		walkAll(v, n.Content)
	case *Color:
		walkAll(v, n.Content)
	case *BigOperator:
		if n.Subscript != nil {
			Walk(v, n.Subscript)
		}
		if n.Superscript != nil {
			Walk(v, n.Superscript)
		}
	case *Environment:
		walkAll(v, n.Content)
	case *Aligned:
		walkRows(v, n.Rows)
	case *Cases:
		for _, p := range n.Pairs {
			Walk(v, p.Value)
			if p.Condition != nil {
				Walk(v, p.Condition)
			}
		}
	case *Split:
		walkRows(v, n.Rows)
	case *Multline:
		walkAll(v, n.Lines)
	case *Eqnarray:
		walkRows(v, n.Rows)
	case *Subequations:
		walkAll(v, n.Content)
	}
}

func walkAll(v Visitor, nodes []Node) {
	for _, n := range nodes {
		Walk(v, n)
	}
}

func walkRows(v Visitor, rows [][]Node) {
	for _, row := range rows {
		walkAll(v, row)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST calling f for each node; f's return value
// controls descent into that node's children, exactly as Walk's
// Visitor.Visit does (spec.md §6.3).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
