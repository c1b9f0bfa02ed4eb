// Package charclass implements finite character sets and the partitioning
// of several of them into one shared alphabet of disjoint symbols.
package charclass

import (
	"unicode/utf8"
)

// Class is a set of characters, held as sorted disjoint code point ranges.
// Surrogate code points never occur in Go strings and are never members.
// A class holding utf8.MaxRune is stored negated, as the ranges it excludes,
// so every set has exactly one representation and == is set equality.
type Class struct {
	spans   string // encoded spans, see encode
	negated bool
}

var (
	// None matches no character at all.
	None = Class{}
	// Any matches every character.
	Any = Class{negated: true}
	// Dot is what an unescaped '.' means: everything except a newline.
	Dot = Not('\n')

	Digit    = Range('0', '9')
	NotDigit = Digit.Negate()
	Word     = Range('0', '9').Union(Range('A', 'Z')).Union(Range('a', 'z')).Union(New('_'))
	NotWord  = Word.Negate()
	Space    = New(' ', '\t', '\n', '\r', '\f', '\v')
	NotSpace = Space.Negate()
)

// build returns the class of the given ranges, or of their complement when
// negated is set, in canonical form.
func build(ss []span, negated bool) Class {
	ss = normalize(ss)
	if n := len(ss); n > 0 {
		if _, hi := ss[n-1].split(); hi == utf8.MaxRune {
			ss = complementSpans(ss)
			negated = !negated
		}
	}
	return Class{spans: encode(ss), negated: negated}
}

func singles(rs []rune) []span {
	out := make([]span, len(rs))
	for i, r := range rs {
		out[i] = newSpan(r, r)
	}
	return out
}

// New returns the class holding exactly the given characters.
func New(rs ...rune) Class { return build(singles(rs), false) }

// Not returns the class holding every character except the given ones.
func Not(rs ...rune) Class { return build(singles(rs), true) }

// Range returns the class lo-hi inclusive. An inverted range is empty.
func Range(lo, hi rune) Class {
	if lo > hi {
		return None
	}
	return build([]span{newSpan(lo, hi)}, false)
}

// Negated reports whether c is stored as a complement.
func (c Class) Negated() bool { return c.negated }

// members returns the ranges c actually holds.
func (c Class) members() []span {
	if c.negated {
		return complementSpans(decode(c.spans))
	}
	return decode(c.spans)
}

// Single returns the lone member of an ordinary one-character class.
func (c Class) Single() (rune, bool) {
	if c.negated || len(c.spans) != 8 {
		return 0, false
	}
	lo, hi := spanAt(c.spans, 0).split()
	return lo, lo == hi
}

func (c Class) Contains(r rune) bool {
	return findSpan(c.spans, r) != c.negated
}

func (c Class) IsEmpty() bool { return !c.negated && c.spans == "" }

func (c Class) IsFull() bool { return c.negated && c.spans == "" }

// Negate is exact without rebuilding: a negated class never excludes
// utf8.MaxRune and an ordinary one never holds it.
func (c Class) Negate() Class {
	return Class{spans: c.spans, negated: !c.negated}
}

func (c Class) Union(o Class) Class {
	return build(unionSpans(c.members(), o.members()), false)
}

func (c Class) Intersect(o Class) Class {
	return build(intersectSpans(c.members(), o.members()), false)
}

func (c Class) Difference(o Class) Class { return c.Intersect(o.Negate()) }

// Subset reports whether every character of c is also in o.
func (c Class) Subset(o Class) bool { return c.Difference(o).IsEmpty() }

func (c Class) Disjoint(o Class) bool { return c.Intersect(o).IsEmpty() }

// Sample returns some member of c, preferring letters and digits.
func (c Class) Sample() (rune, bool) {
	if !c.negated {
		if c.spans == "" {
			return 0, false
		}
		lo, _ := spanAt(c.spans, 0).split()
		return lo, true
	}
	for _, pref := range [][2]rune{{'a', 'z'}, {'A', 'Z'}, {'0', '9'}, {' ', '~'}} {
		for r := pref[0]; r <= pref[1]; r++ {
			if c.Contains(r) {
				return r, true
			}
		}
	}
	lo, _ := c.members()[0].split()
	return lo, true
}
