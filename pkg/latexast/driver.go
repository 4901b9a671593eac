package latexast

import (
	"github.com/cwbudde/go-latexast/internal/macro"
	"github.com/cwbudde/go-latexast/internal/parser"
)

// Driver is the incremental parsing surface (spec.md §4.5, §6.2). It
// keeps the accumulated source and the document from the most recent
// parse; Append and Replace each do a full reparse of the accumulated
// text, which trivially satisfies the correctness requirement that
// `append` equal a fresh parse of the concatenated input (spec.md §8)
// — the "pure-append fast path" spec.md calls out is an optimization
// this driver does not attempt.
type Driver struct {
	accumulated   string
	lastDocument  *Document
	issues        []*Issue
	persistMacros bool
	macros        *macro.Table
}

// DriverOption configures a Driver at construction time.
type DriverOption func(*Driver)

// WithPersistentMacros keeps \newcommand definitions registered in one
// parse alive across subsequent Append/Replace calls, even if the
// defining text later falls out of the accumulated window. Off by
// default (spec.md §3.4: "scoped to a single parse invocation ...
// unless the driver is configured otherwise").
func WithPersistentMacros() DriverOption {
	return func(d *Driver) { d.persistMacros = true }
}

// NewDriver returns an empty Driver.
func NewDriver(opts ...DriverOption) *Driver {
	d := &Driver{macros: macro.NewTable()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Append concatenates delta onto the accumulated input and reparses.
func (d *Driver) Append(delta string) *Document {
	d.accumulated += delta
	return d.reparse()
}

// Replace discards the accumulated input in favor of s and reparses.
func (d *Driver) Replace(s string) *Document {
	d.accumulated = s
	return d.reparse()
}

// Clear resets the driver to its initial empty state (spec.md §4.5,
// "clear(): set accumulated = ""; lastDocument = Document([])").
func (d *Driver) Clear() {
	d.accumulated = ""
	d.lastDocument = &Document{}
	d.issues = nil
	d.macros = macro.NewTable()
}

// CurrentInput returns the accumulated source text.
func (d *Driver) CurrentInput() string { return d.accumulated }

// CurrentDocument returns the Document produced by the most recent
// parse, or nil if nothing has been parsed yet.
func (d *Driver) CurrentDocument() *Document { return d.lastDocument }

// Issues returns the diagnostics from the most recent parse.
func (d *Driver) Issues() []*Issue { return d.issues }

func (d *Driver) reparse() *Document {
	var opts []parser.Option
	if d.persistMacros {
		opts = append(opts, parser.WithMacros(d.macros))
	}
	p := parser.New(d.accumulated, opts...)
	doc := p.Parse()
	d.lastDocument = doc
	d.issues = p.Issues()
	if d.persistMacros {
		d.macros = p.Macros()
	}
	return doc
}
