package regexlib

import (
	"greenery/internal/charclass"
	"greenery/internal/fsm"
)

// frag is a partially built NFA piece: its entry state and the states whose
// ε-exits still have to be patched to whatever follows.
type frag struct {
	start int
	outs  []int
}

type builder struct {
	nfa   *fsm.NFA
	alpha *charclass.Alphabet
	syms  map[charclass.Class][]charclass.Symbol
	err   error
}

// Compile converts p into a DFA over alpha. Every class in p must be a union
// of alpha's symbols, which holds whenever alpha came from Alphabet with p
// among its arguments.
func Compile(p Pattern, alpha *charclass.Alphabet) (*fsm.FSM, error) {
	b := &builder{
		nfa:   fsm.NewNFA(alpha),
		alpha: alpha,
		syms:  make(map[charclass.Class][]charclass.Symbol),
	}
	f := b.pattern(p)
	if b.err != nil {
		return nil, b.err
	}
	accept := b.nfa.AddState()
	b.nfa.SetAccept(accept)
	b.patch(f.outs, accept)
	b.nfa.SetStart(f.start)
	return b.nfa.Determinize(), nil
}

// mustCompile is for alphabets built here from the very patterns compiled.
func mustCompile(p Pattern, alpha *charclass.Alphabet) *fsm.FSM {
	m, err := Compile(p, alpha)
	if err != nil {
		panic(err)
	}
	return m
}

func (b *builder) patch(outs []int, to int) {
	for _, s := range outs {
		b.nfa.AddEpsilon(s, to)
	}
}

func (b *builder) pattern(p Pattern) frag {
	f := frag{start: b.nfa.AddState()}
	for _, c := range p.Concs {
		cf := b.conc(c)
		b.nfa.AddEpsilon(f.start, cf.start)
		f.outs = append(f.outs, cf.outs...)
	}
	return f
}

func (b *builder) conc(c Conc) frag {
	s := b.nfa.AddState()
	f := frag{start: s, outs: []int{s}}
	for _, m := range c.Mults {
		mf := b.mult(m)
		b.patch(f.outs, mf.start)
		f.outs = mf.outs
	}
	return f
}

// mult unrolls the mandatory copies, then either loops through a hub state
// for an unbounded maximum or chains optional copies, each of which may be
// the last.
func (b *builder) mult(m Mult) frag {
	s := b.nfa.AddState()
	f := frag{start: s, outs: []int{s}}
	for i := 0; i < m.Multiplier.Min; i++ {
		piece := b.atom(m.Atom)
		b.patch(f.outs, piece.start)
		f.outs = piece.outs
	}
	if !m.Multiplier.Bounded() {
		hub := b.nfa.AddState()
		b.patch(f.outs, hub)
		piece := b.atom(m.Atom)
		b.nfa.AddEpsilon(hub, piece.start)
		b.patch(piece.outs, hub)
		f.outs = []int{hub}
		return f
	}
	exits := f.outs
	cur := f.outs
	for i := m.Multiplier.Min; i < m.Multiplier.Max; i++ {
		piece := b.atom(m.Atom)
		b.patch(cur, piece.start)
		cur = piece.outs
		exits = append(exits, cur...)
	}
	f.outs = exits
	return f
}

func (b *builder) atom(a Atom) frag {
	switch a := a.(type) {
	case Chars:
		s1, s2 := b.nfa.AddState(), b.nfa.AddState()
		for _, sym := range b.symbols(a.Class) {
			b.nfa.AddEdge(s1, sym, s2)
		}
		return frag{start: s1, outs: []int{s2}}
	case Group:
		return b.pattern(a.Pattern)
	}
	panic("regexlib: unknown atom")
}

func (b *builder) symbols(c charclass.Class) []charclass.Symbol {
	if syms, ok := b.syms[c]; ok {
		return syms
	}
	syms, err := b.alpha.Decompose(c)
	if err != nil && b.err == nil {
		b.err = err
	}
	b.syms[c] = syms
	return syms
}
