package regexlib

import (
	"strconv"
	"strings"

	"greenery/internal/charclass"
)

// Inf marks an unbounded Multiplier maximum.
const Inf = -1

// Multiplier bounds a repetition: Min..Max copies, Max may be Inf.
type Multiplier struct {
	Min, Max int
}

var (
	One      = Multiplier{1, 1}
	Optional = Multiplier{0, 1}
	Star     = Multiplier{0, Inf}
	Plus     = Multiplier{1, Inf}
)

func (m Multiplier) Bounded() bool { return m.Max != Inf }

func (m Multiplier) String() string {
	switch m {
	case One:
		return ""
	case Optional:
		return "?"
	case Star:
		return "*"
	case Plus:
		return "+"
	}
	switch {
	case m.Min == m.Max:
		return "{" + strconv.Itoa(m.Min) + "}"
	case m.Max == Inf:
		return "{" + strconv.Itoa(m.Min) + ",}"
	default:
		return "{" + strconv.Itoa(m.Min) + "," + strconv.Itoa(m.Max) + "}"
	}
}

// Atom is what a Mult repeats: Chars or Group. The set is closed; every
// switch over atoms handles exactly these two.
type Atom interface {
	atom()
	String() string
}

// Chars is a single character drawn from a class.
type Chars struct {
	Class charclass.Class
}

// Group is a parenthesised sub-pattern.
type Group struct {
	Pattern Pattern
}

func (Chars) atom() {}
func (Group) atom() {}

func (c Chars) String() string { return c.Class.String() }

func (g Group) String() string { return "(" + g.Pattern.String() + ")" }

// Mult is an atom with its repetition bounds.
type Mult struct {
	Atom       Atom
	Multiplier Multiplier
}

// Conc is a sequence of mults. The empty Conc matches the empty string.
type Conc struct {
	Mults []Mult
}

// Pattern is an alternation of concatenations. A Pattern without any Conc
// matches nothing; one holding a single empty Conc matches only "".
type Pattern struct {
	Concs []Conc
}

// Nothing returns the pattern of the empty language.
func Nothing() Pattern { return Pattern{} }

// EmptyString returns the pattern matching only "".
func EmptyString() Pattern { return Pattern{Concs: []Conc{{}}} }

// FromClass returns the pattern matching one character of c.
func FromClass(c charclass.Class) Pattern {
	if c.IsEmpty() {
		return Nothing()
	}
	return Pattern{Concs: []Conc{{Mults: []Mult{{Atom: Chars{c}, Multiplier: One}}}}}
}

// Literal returns the pattern matching exactly s.
func Literal(s string) Pattern {
	var c Conc
	for _, r := range s {
		c.Mults = append(c.Mults, Mult{Atom: Chars{charclass.New(r)}, Multiplier: One})
	}
	return Pattern{Concs: []Conc{c}}
}

// IsNothing reports whether p is syntactically the empty language.
func (p Pattern) IsNothing() bool { return len(p.Concs) == 0 }

// IsEmptyString reports whether p is syntactically the empty string.
func (p Pattern) IsEmptyString() bool {
	return len(p.Concs) == 1 && len(p.Concs[0].Mults) == 0
}

func (p Pattern) String() string {
	if p.IsNothing() {
		return charclass.None.String()
	}
	parts := make([]string, len(p.Concs))
	for i, c := range p.Concs {
		parts[i] = c.String()
	}
	return strings.Join(parts, "|")
}

func (c Conc) String() string {
	var b strings.Builder
	for _, m := range c.Mults {
		b.WriteString(m.String())
	}
	return b.String()
}

func (m Mult) String() string {
	switch a := m.Atom.(type) {
	case Chars:
		return a.String() + m.Multiplier.String()
	case Group:
		if m.Multiplier == One && len(a.Pattern.Concs) == 1 {
			return a.Pattern.String()
		}
		if m.Multiplier != One && isSingleChars(a.Pattern) {
			return a.Pattern.String() + m.Multiplier.String()
		}
		return a.String() + m.Multiplier.String()
	}
	panic("regexlib: unknown atom")
}

// isSingleChars reports whether p is one unrepeated character class.
func isSingleChars(p Pattern) bool {
	if len(p.Concs) != 1 || len(p.Concs[0].Mults) != 1 {
		return false
	}
	m := p.Concs[0].Mults[0]
	_, ok := m.Atom.(Chars)
	return ok && m.Multiplier == One
}

// classes appends every character class mentioned in p.
func (p Pattern) classes(out []charclass.Class) []charclass.Class {
	for _, c := range p.Concs {
		for _, m := range c.Mults {
			switch a := m.Atom.(type) {
			case Chars:
				out = append(out, a.Class)
			case Group:
				out = a.Pattern.classes(out)
			}
		}
	}
	return out
}
