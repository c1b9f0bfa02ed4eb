package regexlib

import (
	"greenery/internal/charclass"
	"greenery/internal/fsm"
)

// MaxCrossBranches bounds the alternatives Concatenate distributes. Above it
// the operands are wrapped in groups instead of multiplied out.
const MaxCrossBranches = 16

// Concatenate returns the pattern matching a string of each operand in turn.
// With no operands it matches only "".
func Concatenate(patterns ...Pattern) Pattern {
	out := EmptyString()
	for _, p := range patterns {
		out = concat(out, p)
	}
	return out
}

func concat(a, b Pattern) Pattern {
	if len(a.Concs)*len(b.Concs) > MaxCrossBranches {
		a, b = grouped(a), grouped(b)
	}
	var out Pattern
	for _, ca := range a.Concs {
		for _, cb := range b.Concs {
			mults := make([]Mult, 0, len(ca.Mults)+len(cb.Mults))
			mults = append(mults, ca.Mults...)
			mults = append(mults, cb.Mults...)
			out.Concs = append(out.Concs, Conc{Mults: mults})
		}
	}
	return dedupe(out)
}

// grouped wraps a multi-branch pattern into a single-branch one.
func grouped(p Pattern) Pattern {
	if len(p.Concs) <= 1 {
		return p
	}
	return Pattern{Concs: []Conc{{Mults: []Mult{{Atom: Group{p}, Multiplier: One}}}}}
}

// Alternate returns the pattern matching a string of any operand. With no
// operands it matches nothing.
func Alternate(patterns ...Pattern) Pattern {
	var out Pattern
	for _, p := range patterns {
		out.Concs = append(out.Concs, p.Concs...)
	}
	return dedupe(out)
}

// dedupe drops repeated branches, keeping the first occurrence.
func dedupe(p Pattern) Pattern {
	seen := make(map[string]bool, len(p.Concs))
	var out Pattern
	for _, c := range p.Concs {
		key := c.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out.Concs = append(out.Concs, c)
	}
	return out
}

// Intersect returns a pattern matching the strings every operand matches.
// It goes through automata: all operands are compiled over one alphabet,
// intersected, and the product is turned back into a pattern. With no
// operands it matches everything.
func Intersect(patterns ...Pattern) Pattern {
	switch len(patterns) {
	case 0:
		return Pattern{Concs: []Conc{{Mults: []Mult{{Atom: Chars{charclass.Any}, Multiplier: Star}}}}}
	case 1:
		return patterns[0]
	}
	_, ms := CompileAll(patterns...)
	return ToPattern(IntersectFSM(ms...))
}

// IntersectFSM folds fsm.Intersect over machines sharing one alphabet.
func IntersectFSM(ms ...*fsm.FSM) *fsm.FSM {
	out := ms[0]
	for _, m := range ms[1:] {
		out = fsm.Intersect(out, m)
	}
	return out
}

// UnionFSM folds fsm.Union over machines sharing one alphabet.
func UnionFSM(ms ...*fsm.FSM) *fsm.FSM {
	out := ms[0]
	for _, m := range ms[1:] {
		out = fsm.Union(out, m)
	}
	return out
}

// ConcatenateFSM folds fsm.Concatenate over machines sharing one alphabet.
func ConcatenateFSM(ms ...*fsm.FSM) *fsm.FSM {
	out := ms[0]
	for _, m := range ms[1:] {
		out = fsm.Concatenate(out, m)
	}
	return out
}

// Difference returns a pattern matching what a matches and b does not.
func Difference(a, b Pattern) Pattern {
	_, ms := CompileAll(a, b)
	return ToPattern(fsm.Difference(ms[0], ms[1]))
}

// Complement returns a pattern matching every string p does not.
func Complement(p Pattern) Pattern {
	return ToPattern(fsm.Complement(p.FSM()))
}

// Reverse returns a pattern matching the reversal of each string p matches.
func Reverse(p Pattern) Pattern {
	return ToPattern(fsm.Reverse(p.FSM()))
}

// Equivalent reports whether a and b match exactly the same strings.
func Equivalent(a, b Pattern) bool {
	_, ms := CompileAll(a, b)
	return fsm.Equivalent(ms[0], ms[1])
}
