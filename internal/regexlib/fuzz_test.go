package regexlib

import (
	"strings"
	"testing"
	"unicode/utf8"
)

const maxFuzzPatternLength = 32

func FuzzParseRender(f *testing.F) {
	f.Add("a*b", "aab")
	f.Add("(a|b)*abb", "babb")
	f.Add("[^a-c]+|x?", "zz")
	f.Add(`\d{2}\.`, "42.")
	f.Add("", "")
	f.Add("(|a)(b|)", "a")
	f.Add("a[]|.", "\n")

	f.Fuzz(func(t *testing.T, pattern, input string) {
		if len(pattern) > maxFuzzPatternLength || !utf8.ValidString(pattern) || !utf8.ValidString(input) {
			return
		}
		// bounded repetition unrolls, nested bounds multiply
		if strings.Count(pattern, "{") > 1 {
			return
		}
		p, err := Parse(pattern)
		if err != nil {
			return // Invalid pattern is acceptable.
		}

		q, err := Parse(p.String())
		if err != nil {
			t.Fatalf("%q renders as %q which does not parse: %v", pattern, p, err)
		}
		if !Equivalent(p, q) {
			t.Fatalf("%q renders as %q with a different language", pattern, p)
		}

		synth := ToPattern(p.FSM())
		if p.Matches(input) != synth.Matches(input) {
			t.Fatalf("%q and its synthesis %q disagree on %q", pattern, synth, input)
		}
	})
}
