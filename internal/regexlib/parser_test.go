package regexlib

import (
	"errors"
	"testing"
)

func TestParseRender(t *testing.T) {
	cases := map[string]string{
		"":         "",
		"abc":      "abc",
		"a|b":      "a|b",
		"a|":       "a|",
		"(a|b)*":   "(a|b)*",
		"(a)*":     "a*",
		"(ab)c":    "abc",
		"[ab]":     "[ab]",
		"[a-e]":    "[a-e]",
		"[^a]":     "[^a]",
		"[]":       "[]",
		"[^]":      "[^]",
		".":        ".",
		`\d+`:      `\d+`,
		`[0-9]`:    `\d`,
		`\.`:       `\.`,
		`a\*`:      `a\*`,
		"a{3}":     "a{3}",
		"a{2,5}":   "a{2,5}",
		"a{2,}":    "a{2,}",
		"a{0,1}":   "a?",
		"a{1,}":    "a+",
		"x^,-y":    "x^,-y",
		`[\]\-]`:   `[\-\]]`,
		`[.()|*]`:  `[(-*.|]`,
		"(a|b|)c":  "(a|b|)c",
		`\n\t`:     `\n\t`,
		"(|a)b":    "(|a)b",
		"a}":       `a\}`,
		"[a-c][x]": "[a-c]x",
	}
	for in, want := range cases {
		p, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got := p.String(); got != want {
			t.Fatalf("parse %q renders %q want %q", in, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"(a", "a)", "[a", "*a", `\q`, `\`, "a{3,1}", "a{1001}", "[c-a]", `[\d-z]`, "a{",
	} {
		_, err := Parse(in)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Fatalf("parse %q: want SyntaxError, got %v", in, err)
		}
	}
}

func TestParseErrorOffset(t *testing.T) {
	cases := map[string]int{
		"a{3,1}": 1,
		`ab\q`:   2,
		"x[c-a]": 2,
	}
	for in, want := range cases {
		_, err := Parse(in)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Fatalf("parse %q: want SyntaxError, got %v", in, err)
		}
		if serr.Offset != want {
			t.Fatalf("parse %q: offset %d want %d", in, serr.Offset, want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, in := range []string{
		"(a|b)*abb", `\d{3}-\d{4}`, "[^ab]c|", "((a|)b)+", "x(y(z)*)?", "[a-z0-9_]+@[a-z]+\\.com",
	} {
		p := MustParse(in)
		q := MustParse(p.String())
		if !Equivalent(p, q) {
			t.Fatalf("%q renders as %q with a different language", in, p.String())
		}
	}
}
