// Package errors formats parse diagnostics with source context: a
// line/column header, the offending source line, and a caret pointing
// at the column (ported from the teacher's compiler error formatter).
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-latexast/internal/lexer"
)

// Severity classifies a ParseIssue. Every kind in spec.md §7 is
// non-fatal; Severity exists so a diagnostics sink can still separate
// them from one another for display purposes.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Kind identifies which of the spec's non-fatal error conditions
// (spec.md §7) a ParseIssue reports.
type Kind int

const (
	KindUnterminatedGroup Kind = iota
	KindUnterminatedEnvironment
	KindMismatchedEnd
	KindUnmatchedRight
	KindUnknownCommand
	KindMacroArityMismatch
	KindMacroRecursionOverflow
)

var kindNames = map[Kind]string{
	KindUnterminatedGroup:       "unterminated group",
	KindUnterminatedEnvironment: "unterminated environment",
	KindMismatchedEnd:           "mismatched \\end",
	KindUnmatchedRight:          "unmatched \\right",
	KindUnknownCommand:          "unknown command",
	KindMacroArityMismatch:      "macro arity mismatch",
	KindMacroRecursionOverflow:  "macro recursion overflow",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "issue"
}

// ParseIssue is one soft diagnostic recorded during a parse. Parsing
// never returns a Go error for these; they accumulate on
// Parser.Issues() while Parse still returns a complete Document
// (spec.md §7, "parsing always returns a Document").
type ParseIssue struct {
	Kind     Kind
	Severity Severity
	Message  string
	Pos      lexer.Position
}

// Error implements the error interface so a ParseIssue can be wrapped,
// logged, or compared with errors.Is/As by callers who want to treat
// it like any other Go error, without the parser itself using that path.
func (e *ParseIssue) Error() string {
	return e.Format(false)
}

// Format renders the issue as a single header line: kind, position,
// and message, with no source context (callers that have the source
// text available should prefer FormatWithSource, which also draws a
// caret into the offending line). If color is true, ANSI codes
// highlight the message the same way FormatWithSource highlights its
// caret and message.
func (e *ParseIssue) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s at line %d:%d: ", e.Kind, e.Pos.Line, e.Pos.Column))
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatWithSource renders the issue the same way Format does but with
// the source line and a caret pointing at the column, matching the
// teacher's CompilerError.Format.
func (e *ParseIssue) FormatWithSource(source string, color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s at line %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column))

	line := sourceLine(source, e.Pos.Line)
	if line != "" {
		gutter := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(gutter)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatIssues renders a batch of issues, numbered when there is more
// than one, mirroring the teacher's FormatErrors.
func FormatIssues(issues []*ParseIssue, color bool) string {
	if len(issues) == 0 {
		return ""
	}
	if len(issues) == 1 {
		return issues[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("parse completed with %d issue(s):\n\n", len(issues)))
	for i, issue := range issues {
		sb.WriteString(fmt.Sprintf("[%d of %d] ", i+1, len(issues)))
		sb.WriteString(issue.Format(color))
	}
	return sb.String()
}
