package symbols

import "testing"

func TestResolveKnownNames(t *testing.T) {
	cases := map[string]string{
		"alpha": "α",
		"leq":   "≤",
		"in":    "∈",
		"sum":   "∑",
		"infty": "∞",
	}
	for name, want := range cases {
		got, ok := Resolve(name)
		if !ok {
			t.Errorf("Resolve(%q) not found", name)
			continue
		}
		if got != want {
			t.Errorf("Resolve(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestResolveUnknownName(t *testing.T) {
	if _, ok := Resolve("notasymbol"); ok {
		t.Errorf("expected notasymbol to be unresolved")
	}
}

func TestResolveIsCaseSensitive(t *testing.T) {
	if _, ok := Resolve("Alpha"); ok {
		t.Errorf("Alpha should not resolve: lowercase and uppercase Greek are distinct commands")
	}
	if _, ok := Resolve("Gamma"); !ok {
		t.Errorf("Gamma should resolve to uppercase Greek")
	}
}

func TestIsBigOperator(t *testing.T) {
	for _, name := range []string{"sum", "prod", "int", "bigcup"} {
		if !IsBigOperator(name) {
			t.Errorf("%q should be a big operator", name)
		}
	}
	if IsBigOperator("alpha") {
		t.Errorf("alpha should not be a big operator")
	}
}

func TestResolveDelimiter(t *testing.T) {
	cases := map[string]string{
		".":      ".",
		"(":      "(",
		"langle": "⟨",
		"|":      "|",
	}
	for in, want := range cases {
		if got := ResolveDelimiter(in); got != want {
			t.Errorf("ResolveDelimiter(%q) = %q, want %q", in, got, want)
		}
	}
}
