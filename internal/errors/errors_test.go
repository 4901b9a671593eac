package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-latexast/internal/lexer"
)

func TestFormatIncludesKindAndPosition(t *testing.T) {
	issue := &ParseIssue{
		Kind:    KindUnterminatedGroup,
		Message: "missing closing brace",
		Pos:     lexer.Position{Line: 3, Column: 7},
	}
	got := issue.Format(false)
	if !strings.Contains(got, "unterminated group") {
		t.Fatalf("missing kind in output: %q", got)
	}
	if !strings.Contains(got, "3:7") {
		t.Fatalf("missing position in output: %q", got)
	}
}

func TestFormatColorHighlightsMessage(t *testing.T) {
	issue := &ParseIssue{
		Kind:    KindUnterminatedGroup,
		Message: "missing closing brace",
		Pos:     lexer.Position{Line: 1, Column: 1},
	}
	got := issue.Format(true)
	if !strings.Contains(got, "\033[1m") || !strings.Contains(got, "\033[0m") {
		t.Fatalf("expected ANSI highlight codes around the message: %q", got)
	}
}

func TestFormatWithSourcePlacesCaret(t *testing.T) {
	issue := &ParseIssue{
		Kind:    KindMismatchedEnd,
		Message: "stray \\end",
		Pos:     lexer.Position{Line: 2, Column: 3},
	}
	got := issue.FormatWithSource("first\nabc\nthird", false)
	lines := strings.Split(got, "\n")
	var caretLine string
	for _, l := range lines {
		if strings.Contains(l, "^") {
			caretLine = l
		}
	}
	if caretLine == "" {
		t.Fatalf("no caret line found in:\n%s", got)
	}
}

func TestFormatIssuesNumbersMultiple(t *testing.T) {
	issues := []*ParseIssue{
		{Kind: KindUnknownCommand, Message: "a"},
		{Kind: KindUnmatchedRight, Message: "b"},
	}
	got := FormatIssues(issues, false)
	if !strings.Contains(got, "2 issue(s)") {
		t.Fatalf("missing count header: %q", got)
	}
	if !strings.Contains(got, "[1 of 2]") || !strings.Contains(got, "[2 of 2]") {
		t.Fatalf("missing numbering: %q", got)
	}
}

func TestFormatIssuesEmpty(t *testing.T) {
	if got := FormatIssues(nil, false); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestKindString(t *testing.T) {
	if KindMacroRecursionOverflow.String() != "macro recursion overflow" {
		t.Fatalf("got %q", KindMacroRecursionOverflow.String())
	}
}
