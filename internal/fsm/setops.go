package fsm

import "greenery/internal/charclass"

// Product runs a and b in lockstep. A pair state is final when op says so
// for the finality of its two halves.
func Product(a, b *FSM, op func(bool, bool) bool) *FSM {
	mustMatch("product", a, b)
	type pair struct{ i, j int }
	start := pair{a.initial, b.initial}
	ids := map[pair]int{start: 0}
	queue := []pair{start}
	out := &FSM{alphabet: a.alphabet}
	var finals []int
	for i := 0; i < len(queue); i++ {
		p := queue[i]
		if op(a.IsFinal(p.i), b.IsFinal(p.j)) {
			finals = append(finals, i)
		}
		row := make([]int, a.alphabet.Len())
		for sym := range row {
			np := pair{a.trans[p.i][sym], b.trans[p.j][sym]}
			id, ok := ids[np]
			if !ok {
				id = len(queue)
				ids[np] = id
				queue = append(queue, np)
			}
			row[sym] = id
		}
		out.trans = append(out.trans, row)
	}
	out.final = finalSet(len(out.trans), finals)
	return out.Reduce()
}

func Union(a, b *FSM) *FSM { return Product(a, b, func(x, y bool) bool { return x || y }) }

func Intersect(a, b *FSM) *FSM { return Product(a, b, func(x, y bool) bool { return x && y }) }

// Difference accepts what a accepts and b does not.
func Difference(a, b *FSM) *FSM { return Product(a, b, func(x, y bool) bool { return x && !y }) }

func SymmetricDifference(a, b *FSM) *FSM {
	return Product(a, b, func(x, y bool) bool { return x != y })
}

// Complement accepts every string over the alphabet that f rejects. This
// relies on the transition function being total.
func Complement(f *FSM) *FSM {
	out := &FSM{alphabet: f.alphabet, initial: f.initial, trans: f.trans}
	var finals []int
	for s := range f.trans {
		if !f.IsFinal(s) {
			finals = append(finals, s)
		}
	}
	out.final = finalSet(len(f.trans), finals)
	return out.Reduce()
}

// Concatenate accepts every string pq with p accepted by a and q by b. Every
// final state of a gets an ε-move into b's initial state and the result is
// determinised again.
func Concatenate(a, b *FSM) *FSM {
	mustMatch("concatenation", a, b)
	n := NewNFA(a.alphabet)
	oa := n.embed(a)
	ob := n.embed(b)
	n.SetStart(oa + a.initial)
	for _, s := range a.Finals() {
		n.AddEpsilon(oa+s, ob+b.initial)
	}
	for _, s := range b.Finals() {
		n.SetAccept(ob + s)
	}
	return n.Determinize()
}

// Star accepts any number of consecutive strings of f, including none.
func Star(f *FSM) *FSM {
	n := NewNFA(f.alphabet)
	off := n.embed(f)
	start := n.AddState()
	n.SetStart(start)
	n.SetAccept(start)
	n.AddEpsilon(start, off+f.initial)
	for _, s := range f.Finals() {
		n.SetAccept(off + s)
		n.AddEpsilon(off+s, off+f.initial)
	}
	return n.Determinize()
}

// Reverse accepts the reversal of every string f accepts.
func Reverse(f *FSM) *FSM {
	n := NewNFA(f.alphabet)
	for range f.trans {
		n.AddState()
	}
	for s, row := range f.trans {
		for sym, t := range row {
			n.AddEdge(t, charclass.Symbol(sym), s)
		}
	}
	start := n.AddState()
	n.SetStart(start)
	for _, s := range f.Finals() {
		n.AddEpsilon(start, s)
	}
	n.SetAccept(f.initial)
	return n.Determinize()
}

// IsEmpty reports whether f accepts no string at all.
func (f *FSM) IsEmpty() bool {
	return !f.live().Test(uint(f.initial))
}

// Equivalent reports whether a and b accept the same strings.
func Equivalent(a, b *FSM) bool { return SymmetricDifference(a, b).IsEmpty() }

// Subset reports whether every string a accepts is accepted by b.
func Subset(a, b *FSM) bool { return Difference(a, b).IsEmpty() }
