package regexlib

import "greenery/internal/charclass"

// Reduce returns an equivalent pattern with redundant structure removed:
// groups that add nothing are inlined, branches that cannot match are
// dropped, single-character branches merge into one class, an empty branch
// becomes '?', and repeats of the same atom are summed. The rewrites are
// applied until the rendering stops changing.
func (p Pattern) Reduce() Pattern {
	s := p.String()
	for {
		q := p.reduce()
		t := q.String()
		if t == s {
			return q
		}
		p, s = q, t
	}
}

func (p Pattern) reduce() Pattern {
	var concs []Conc
	for _, c := range p.Concs {
		rc, ok := c.reduce()
		if !ok {
			continue
		}
		if len(rc.Mults) == 1 && rc.Mults[0].Multiplier == One {
			if g, isGroup := rc.Mults[0].Atom.(Group); isGroup {
				concs = append(concs, g.Pattern.Concs...)
				continue
			}
		}
		concs = append(concs, rc)
	}
	out := dedupe(Pattern{Concs: concs})
	out = mergeChars(out)
	return optionalize(out)
}

// singleClass reports whether c is exactly one unrepeated character class.
func singleClass(c Conc) (charclass.Class, bool) {
	if len(c.Mults) != 1 || c.Mults[0].Multiplier != One {
		return charclass.None, false
	}
	ch, ok := c.Mults[0].Atom.(Chars)
	return ch.Class, ok
}

// mergeChars turns a|[bc]|d into [a-d], at the position of the first one.
func mergeChars(p Pattern) Pattern {
	first, count := -1, 0
	union := charclass.None
	for i, c := range p.Concs {
		if cls, ok := singleClass(c); ok {
			if first < 0 {
				first = i
			}
			union = union.Union(cls)
			count++
		}
	}
	if count < 2 {
		return p
	}
	var out Pattern
	for i, c := range p.Concs {
		if i == first {
			out.Concs = append(out.Concs, Conc{Mults: []Mult{{Atom: Chars{union}, Multiplier: One}}})
			continue
		}
		if _, ok := singleClass(c); ok {
			continue
		}
		out.Concs = append(out.Concs, c)
	}
	return out
}

// optionalize folds an empty branch into the others: a| is a?, a+| is a*.
func optionalize(p Pattern) Pattern {
	var rest []Conc
	hasEmpty := false
	for _, c := range p.Concs {
		if len(c.Mults) == 0 {
			hasEmpty = true
			continue
		}
		rest = append(rest, c)
	}
	if !hasEmpty || len(rest) == 0 {
		return p
	}
	if len(rest) == 1 && len(rest[0].Mults) == 1 {
		m := rest[0].Mults[0]
		switch m.Multiplier.Min {
		case 0:
			return Pattern{Concs: rest}
		case 1:
			m.Multiplier.Min = 0
			return Pattern{Concs: []Conc{{Mults: []Mult{m}}}}
		}
	}
	body := Pattern{Concs: rest}
	return Pattern{Concs: []Conc{{Mults: []Mult{{Atom: Group{body}, Multiplier: Optional}}}}}
}

// reduce returns ok=false when c cannot match anything.
func (c Conc) reduce() (Conc, bool) {
	var mults []Mult
	for _, m := range c.Mults {
		rm, keep, ok := m.reduce()
		if !ok {
			return Conc{}, false
		}
		if !keep {
			continue
		}
		if g, isGroup := rm.Atom.(Group); isGroup && rm.Multiplier == One && len(g.Pattern.Concs) == 1 {
			mults = appendMerged(mults, g.Pattern.Concs[0].Mults...)
			continue
		}
		mults = appendMerged(mults, rm)
	}
	return Conc{Mults: mults}, true
}

// appendMerged appends ms, summing the bounds of a mult into its predecessor
// when both repeat the same atom. Two plain copies are left as they are, so
// aa does not turn into a{2}.
func appendMerged(mults []Mult, ms ...Mult) []Mult {
	for _, m := range ms {
		if n := len(mults); n > 0 {
			last := mults[n-1]
			if last.Atom.String() == m.Atom.String() && (last.Multiplier != One || m.Multiplier != One) {
				if sum, ok := addMultipliers(last.Multiplier, m.Multiplier); ok {
					mults[n-1].Multiplier = sum
					continue
				}
			}
		}
		mults = append(mults, m)
	}
	return mults
}

func addMultipliers(a, b Multiplier) (Multiplier, bool) {
	out := Multiplier{Min: a.Min + b.Min, Max: Inf}
	if a.Bounded() && b.Bounded() {
		out.Max = a.Max + b.Max
		if out.Max > MaxRepeat {
			return Multiplier{}, false
		}
	}
	return out, out.Min <= MaxRepeat
}

// reduce returns keep=false when m matches only "" and ok=false when it
// matches nothing.
func (m Mult) reduce() (out Mult, keep, ok bool) {
	if m.Multiplier.Max == 0 {
		return m, false, true
	}
	switch a := m.Atom.(type) {
	case Chars:
		if a.Class.IsEmpty() {
			return m, false, m.Multiplier.Min == 0
		}
		return m, true, true
	case Group:
		q := a.Pattern.reduce()
		switch {
		case q.IsNothing():
			return m, false, m.Multiplier.Min == 0
		case q.IsEmptyString():
			return m, false, true
		}
		if len(q.Concs) == 1 && len(q.Concs[0].Mults) == 1 {
			inner := q.Concs[0].Mults[0]
			if mul, ok := composeMultipliers(inner.Multiplier, m.Multiplier); ok {
				return Mult{Atom: inner.Atom, Multiplier: mul}, true, true
			}
		}
		return Mult{Atom: Group{q}, Multiplier: m.Multiplier}, true, true
	}
	panic("regexlib: unknown atom")
}

// composeMultipliers gives the multiplier of (x{inner}){outer} when it is
// again a single multiplier on x.
func composeMultipliers(inner, outer Multiplier) (Multiplier, bool) {
	switch {
	case inner == One:
		return outer, true
	case outer == One:
		return inner, true
	}
	simple := func(m Multiplier) bool { return m == Optional || m == Star || m == Plus }
	if !simple(inner) || !simple(outer) {
		return Multiplier{}, false
	}
	if inner == outer {
		return inner, true
	}
	return Star, true
}
