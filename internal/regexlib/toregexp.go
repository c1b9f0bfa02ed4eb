package regexlib

import (
	"github.com/yourbasic/graph"
	"golang.org/x/exp/slices"

	"greenery/internal/charclass"
	"greenery/internal/fsm"
)

// ToPattern converts a DFA back into a pattern by state elimination over a
// generalised transition graph whose edges carry patterns. A fresh source
// and sink are joined to the machine by ε-edges; live states are then removed
// cheapest first, where the cost of a state is in-degree times out-degree.
func ToPattern(f *fsm.FSM) Pattern {
	m := f.Minimize()
	if m.IsEmpty() {
		return Nothing()
	}
	alpha := m.Alphabet()
	n := m.NumStates()
	src, sink := n, n+1

	e := &elim{
		labels: make(map[[2]int]Pattern),
		out:    graph.New(n + 2),
		in:     graph.New(n + 2),
	}
	var states []int
	for s := 0; s < n; s++ {
		if isDead(m, s) {
			continue
		}
		states = append(states, s)

		// one edge per target, labelled with the union of its symbols
		var targets []int
		byTarget := map[int]charclass.Class{}
		for sym := 0; sym < alpha.Len(); sym++ {
			t := m.Next(s, charclass.Symbol(sym))
			if isDead(m, t) {
				continue
			}
			c, ok := byTarget[t]
			if !ok {
				targets = append(targets, t)
			}
			byTarget[t] = c.Union(alpha.Class(charclass.Symbol(sym)))
		}
		for _, t := range targets {
			e.add(s, t, FromClass(byTarget[t]))
		}
		if m.IsFinal(s) {
			e.add(s, sink, EmptyString())
		}
	}
	e.add(src, m.Initial(), EmptyString())

	for len(states) > 0 {
		best := 0
		for i, s := range states {
			if e.cost(s) < e.cost(states[best]) {
				best = i
			}
		}
		e.eliminate(states[best])
		states = slices.Delete(states, best, best+1)
	}

	p, ok := e.labels[[2]int{src, sink}]
	if !ok {
		return Nothing()
	}
	return p.Reduce()
}

// isDead reports whether s is the oblivion state of a reduced machine.
func isDead(m *fsm.FSM, s int) bool {
	if m.IsFinal(s) {
		return false
	}
	for sym := 0; sym < m.Alphabet().Len(); sym++ {
		if m.Next(s, charclass.Symbol(sym)) != s {
			return false
		}
	}
	return true
}

type elim struct {
	labels  map[[2]int]Pattern
	out, in *graph.Mutable
}

// add puts an edge i -> j, alternating with any label already there.
func (e *elim) add(i, j int, p Pattern) {
	key := [2]int{i, j}
	if old, ok := e.labels[key]; ok {
		e.labels[key] = Alternate(old, p)
		return
	}
	e.labels[key] = p
	e.out.Add(i, j)
	e.in.Add(j, i)
}

func (e *elim) remove(i, j int) {
	delete(e.labels, [2]int{i, j})
	e.out.Delete(i, j)
	e.in.Delete(j, i)
}

func (e *elim) cost(s int) int { return e.in.Degree(s) * e.out.Degree(s) }

// neighbours lists the endpoints of g's edges at s, other than s itself, in
// ascending order.
func neighbours(g *graph.Mutable, s int) []int {
	var out []int
	g.Visit(s, func(w int, _ int64) bool {
		if w != s {
			out = append(out, w)
		}
		return false
	})
	slices.Sort(out)
	return out
}

// eliminate bypasses s: every path i -> s -> j becomes an edge i -> j
// labelled in·loop*·out.
func (e *elim) eliminate(s int) {
	preds, succs := neighbours(e.in, s), neighbours(e.out, s)
	loop, hasLoop := e.labels[[2]int{s, s}]
	mid := EmptyString()
	if hasLoop {
		mid = star(loop)
	}
	for _, i := range preds {
		for _, j := range succs {
			e.add(i, j, seq(e.labels[[2]int{i, s}], mid, e.labels[[2]int{s, j}]))
		}
	}
	for _, i := range preds {
		e.remove(i, s)
	}
	for _, j := range succs {
		e.remove(s, j)
	}
	if hasLoop {
		e.remove(s, s)
	}
}

// seq concatenates without distributing over alternatives; multi-branch
// operands become groups.
func seq(ps ...Pattern) Pattern {
	var c Conc
	for _, p := range ps {
		switch {
		case p.IsNothing():
			return Nothing()
		case len(p.Concs) == 1:
			c.Mults = append(c.Mults, p.Concs[0].Mults...)
		default:
			c.Mults = append(c.Mults, Mult{Atom: Group{p}, Multiplier: One})
		}
	}
	return Pattern{Concs: []Conc{c}}
}

// star returns p*. Empty branches are dropped first since (|x)* is x*.
func star(p Pattern) Pattern {
	var body Pattern
	for _, c := range p.Concs {
		if len(c.Mults) > 0 {
			body.Concs = append(body.Concs, c)
		}
	}
	if body.IsNothing() {
		return EmptyString()
	}
	if len(body.Concs) == 1 && len(body.Concs[0].Mults) == 1 {
		m := body.Concs[0].Mults[0]
		if m.Multiplier.Min <= 1 && (m.Multiplier.Max == 1 || !m.Multiplier.Bounded()) {
			return Pattern{Concs: []Conc{{Mults: []Mult{{Atom: m.Atom, Multiplier: Star}}}}}
		}
	}
	return Pattern{Concs: []Conc{{Mults: []Mult{{Atom: Group{body}, Multiplier: Star}}}}}
}
