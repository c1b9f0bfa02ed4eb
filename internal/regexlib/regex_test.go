package regexlib

import (
	"strings"
	"testing"
	"time"

	"greenery/internal/fsm"
)

// ------------------------------------------------------------------- helpers

func acc(t *testing.T, p Pattern, in string, want bool) {
	t.Helper()
	if got := p.Matches(in); got != want {
		t.Fatalf("pattern %q on %q want %v got %v", p, in, want, got)
	}
}

func accFSM(t *testing.T, m *fsm.FSM, in string, want bool) {
	t.Helper()
	got, err := m.Accepts(in)
	if err != nil {
		t.Fatalf("accepts %q: %v", in, err)
	}
	if got != want {
		t.Fatalf("machine on %q want %v got %v", in, want, got)
	}
}

func newRE(t *testing.T, pat string) *Regex {
	t.Helper()
	re, err := New(pat)
	if err != nil {
		t.Fatalf("compile %q: %v", pat, err)
	}
	return re
}

// words lists every string over letters of length up to n.
func words(letters string, n int) []string {
	out := []string{""}
	layer := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range layer {
			for _, r := range letters {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// ------------------------------------------------------------------- algebra

func TestIntersectStarPlus(t *testing.T) {
	p := Intersect(MustParse("a*"), MustParse("a+"))
	acc(t, p, "a", true)
	acc(t, p, "aa", true)
	acc(t, p, "", false)
	if !Equivalent(p, MustParse("a+")) {
		t.Fatalf("a* & a+ gave %q", p)
	}
	if p.String() != "a+" {
		t.Fatalf("a* & a+ renders %q", p)
	}
}

func TestIntersectFSM(t *testing.T) {
	_, ms := CompileAll(MustParse("a*"), MustParse("a+"))
	m := IntersectFSM(ms...)
	accFSM(t, m, "a", true)
	accFSM(t, m, "aaa", true)
	accFSM(t, m, "", false)
	accFSM(t, m, "b", false)
}

func TestUnion(t *testing.T) {
	a, b := MustParse("0|1"), MustParse("2|3")
	p := Alternate(a, b)
	for _, s := range []string{"0", "1", "2", "3"} {
		acc(t, p, s, true)
	}
	acc(t, p, "4", false)
	acc(t, p, "", false)

	_, ms := CompileAll(a, b)
	m := UnionFSM(ms...)
	accFSM(t, m, "3", true)
	accFSM(t, m, "4", false)
	accFSM(t, m, "", false)
}

func TestAlternateDedupes(t *testing.T) {
	p := Alternate(MustParse("a|b"), MustParse("b|c"))
	if p.String() != "a|b|c" {
		t.Fatalf("got %q", p)
	}
	if !Alternate().IsNothing() {
		t.Fatalf("empty alternation should match nothing")
	}
}

func TestConcatenate(t *testing.T) {
	p := Concatenate(MustParse("ab"), MustParse("cd"))
	if p.String() != "abcd" {
		t.Fatalf("got %q", p)
	}
	acc(t, p, "abcd", true)
	for _, s := range []string{"ab", "cd", "abdc", ""} {
		acc(t, p, s, false)
	}

	_, ms := CompileAll(MustParse("ab"), MustParse("cd"))
	m := ConcatenateFSM(ms...)
	accFSM(t, m, "abcd", true)
	accFSM(t, m, "abdc", false)
}

func TestConcatenateDistributes(t *testing.T) {
	p := Concatenate(MustParse("a|b"), MustParse("c|d"))
	if p.String() != "ac|ad|bc|bd" {
		t.Fatalf("got %q", p)
	}
	if !Concatenate().IsEmptyString() {
		t.Fatalf("empty concatenation should match only the empty string")
	}
}

func TestLiteral(t *testing.T) {
	p := Literal("a.b")
	if p.String() != `a\.b` {
		t.Fatalf("got %q", p)
	}
	acc(t, p, "a.b", true)
	acc(t, p, "axb", false)

	q := Concatenate(Literal("x*"), MustParse("y+"))
	acc(t, q, "x*yy", true)
	acc(t, q, "xxy", false)
	if !Literal("").IsEmptyString() {
		t.Fatalf("empty literal should be the empty string")
	}
}

func TestConcatenateGroupsLargeProducts(t *testing.T) {
	left := MustParse("a|b|c|d|e")
	right := MustParse("v|w|x|y|z")
	p := Concatenate(left, right)
	if p.String() != "(a|b|c|d|e)(v|w|x|y|z)" {
		t.Fatalf("got %q", p)
	}
	acc(t, p, "cx", true)
	acc(t, p, "xc", false)
}

func TestBoundedRepeat(t *testing.T) {
	p := MustParse("a{2,3}")
	acc(t, p, "aa", true)
	acc(t, p, "aaa", true)
	acc(t, p, "a", false)
	acc(t, p, "aaaa", false)
}

func TestDisjointIntersection(t *testing.T) {
	p := Intersect(MustParse("a"), MustParse("b"))
	if !p.IsNothing() || p.String() != "[]" {
		t.Fatalf("a & b gave %q", p)
	}
	for _, s := range []string{"", "a", "b", "ab"} {
		acc(t, p, s, false)
	}

	_, ms := CompileAll(MustParse("a"), MustParse("b"))
	m := IntersectFSM(ms...)
	if !m.IsEmpty() {
		t.Fatalf("a & b machine should be empty")
	}
	accFSM(t, m, "", false)
}

func TestIntersectIdentity(t *testing.T) {
	everything := Intersect()
	acc(t, everything, "", true)
	acc(t, everything, "whatever", true)
	p := MustParse("ab*")
	if Intersect(p).String() != "ab*" {
		t.Fatalf("single operand should come back unchanged")
	}
}

func TestComplementReverseDifference(t *testing.T) {
	c := Complement(MustParse("a"))
	acc(t, c, "", true)
	acc(t, c, "a", false)
	acc(t, c, "b", true)
	acc(t, c, "aa", true)

	if r := Reverse(MustParse("abc*")); !Equivalent(r, MustParse("c*ba")) {
		t.Fatalf("reverse gave %q", r)
	}

	d := Difference(MustParse("[a-c]+"), MustParse("a+"))
	acc(t, d, "b", true)
	acc(t, d, "ab", true)
	acc(t, d, "aa", false)
}

func TestWildcardsAgree(t *testing.T) {
	dot, full := MustParse(".*"), MustParse("[^]*")
	acc(t, dot, "ab", true)
	acc(t, dot, "a\nb", false)
	acc(t, full, "a\nb", true)
	if Equivalent(dot, full) {
		t.Fatalf(". must not match newline")
	}
	if !Equivalent(Intersect(dot, full), dot) {
		t.Fatalf(".* & [^]* should be .*")
	}
}

// ------------------------------------------------------------------- synthesis

func TestToPatternRoundTrip(t *testing.T) {
	for _, in := range []string{
		"a*b", "(ab|c)*", "a{2,4}", "[a-c]+d?", "x|y|", "(a|b)*abb",
		".*a.*", `\d{3}-\d{4}`, "[^ab]c", "(a|b)(c|d)*e", "",
	} {
		p := MustParse(in)
		q := ToPattern(p.FSM())
		if !Equivalent(p, q) {
			t.Fatalf("%q synthesised as %q", in, q)
		}
		if r := MustParse(q.String()); !Equivalent(p, r) {
			t.Fatalf("%q: rendering %q does not parse back", in, q)
		}
	}
}

func TestToPatternEmpty(t *testing.T) {
	m := fsm.Nothing(Alphabet(MustParse("a")))
	if p := ToPattern(m); !p.IsNothing() {
		t.Fatalf("empty machine gave %q", p)
	}
}

func TestStrings(t *testing.T) {
	got := strings.Join(MustParse("a*b").Strings(3), ",")
	if got != "b,ab,aab" {
		t.Fatalf("got %q", got)
	}
	if s := MustParse("[]").Strings(3); len(s) != 0 {
		t.Fatalf("empty pattern listed %v", s)
	}
}

// ------------------------------------------------------------------- reduce

func TestReduce(t *testing.T) {
	cases := map[string]string{
		"(a)":       "a",
		"a|b|c":     "[a-c]",
		"a|":        "a?",
		"a+|":       "a*",
		"ab|":       "(ab)?",
		"aa*":       "a+",
		"a*a*":      "a*",
		"aa":        "aa",
		"(a*)*":     "a*",
		"(a?)+":     "a*",
		"a[]|b":     "b",
		"a[]*b":     "ab",
		"(ab)c":     "abc",
		"a|a":       "a",
		"x(a|b|)":   "x[ab]?",
		"a{0}b":     "b",
		"()*a":      "a",
		"(a|b)(c)*": "[ab]c*",
	}
	for in, want := range cases {
		p := MustParse(in)
		got := p.Reduce()
		if got.String() != want {
			t.Fatalf("reduce %q gave %q want %q", in, got, want)
		}
		if !Equivalent(p, got) {
			t.Fatalf("reduce %q changed the language", in)
		}
	}
}

// ------------------------------------------------------------------- matcher

func TestRangeAcrossSurrogates(t *testing.T) {
	p := MustParse("[\uD7FF-\uE000]")
	acc(t, p, "\uD7FF", true)
	acc(t, p, "\uE000", true)
	acc(t, p, "\uFFFD", false)
	acc(t, p, "a", false)
	acc(t, MustParse("[ -\uFFFF]"), "x", true)

	re := newRE(t, "x[\u0100-\uFFFF]")
	if !re.Match("x\uE000") || re.Match("x\u00FF") {
		t.Fatalf("%q matched wrongly", re)
	}
}

func TestLargeAstralRange(t *testing.T) {
	start := time.Now()
	re := newRE(t, "[\U00010000-\U0003FFFF]+")
	for s, want := range map[string]bool{
		"\U00010001":           true,
		"\U0003FFFF\U00020000": true,
		"\U00040000":           false,
		"a":                    false,
	} {
		if re.Match(s) != want {
			t.Fatalf("%q on %q want %v", re, s, want)
		}
	}
	if d := time.Since(start); d > time.Second {
		t.Fatalf("compiling and matching a large range took %v", d)
	}
}

func TestRegexMatch(t *testing.T) {
	re := newRE(t, "a|bc*")
	for s, want := range map[string]bool{"a": true, "bc": true, "bccc": true, "b": true, "ab": false, "": false} {
		if re.Match(s) != want {
			t.Fatalf("%q on %q want %v", re, s, want)
		}
	}
	if re.String() != "a|bc*" {
		t.Fatalf("source lost: %q", re)
	}
}

func TestFindAllCharClass(t *testing.T) {
	re := newRE(t, "[a-c]")
	text := "zabcx"
	m := re.FindAll(text)
	if len(m) != 3 || text[m[0].Start:m[0].End] != "a" || text[m[1].Start:m[1].End] != "b" || text[m[2].Start:m[2].End] != "c" {
		t.Fatalf("unexpected matches %v", m)
	}
}

func TestFindAllLongest(t *testing.T) {
	re := newRE(t, "a+")
	m := re.FindAll("baaab a")
	if len(m) != 2 || m[0] != (Match{1, 4}) || m[1] != (Match{6, 7}) {
		t.Fatalf("unexpected matches %v", m)
	}
	if got := newRE(t, "x*").FindAll("abc"); len(got) != 0 {
		t.Fatalf("empty matches must be skipped, got %v", got)
	}
}

// ------------------------------------------------------------------- properties

func TestAlgebraLaws(t *testing.T) {
	ps := []Pattern{MustParse("a*b"), MustParse("(ab)+"), MustParse("b|")}
	match := func(p Pattern) func(string) bool {
		m := p.FSM()
		return func(s string) bool {
			ok, _ := m.Accepts(s)
			return ok
		}
	}
	for _, a := range ps {
		for _, b := range ps {
			inA, inB := match(a), match(b)
			union, inter := match(Alternate(a, b)), match(Intersect(a, b))
			cat := match(Concatenate(a, b))
			for _, w := range words("ab", 5) {
				if union(w) != (inA(w) || inB(w)) {
					t.Fatalf("%q|%q on %q", a, b, w)
				}
				if inter(w) != (inA(w) && inB(w)) {
					t.Fatalf("%q&%q on %q", a, b, w)
				}
				split := false
				for i := 0; i <= len(w); i++ {
					if inA(w[:i]) && inB(w[i:]) {
						split = true
						break
					}
				}
				if cat(w) != split {
					t.Fatalf("%q.%q on %q", a, b, w)
				}
			}
		}
	}
}
