package fsm

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/yourbasic/graph"
)

func (f *FSM) graph() *graph.Mutable {
	g := graph.New(len(f.trans))
	for s, row := range f.trans {
		for _, t := range row {
			g.Add(s, t)
		}
	}
	return g
}

// live returns the states from which some final state can be reached.
func (f *FSM) live() *bitset.BitSet {
	back := graph.Transpose(f.graph())
	live := bitset.New(uint(len(f.trans)))
	for _, s := range f.Finals() {
		if live.Test(uint(s)) {
			continue
		}
		live.Set(uint(s))
		graph.BFS(back, s, func(_, w int, _ int64) {
			live.Set(uint(w))
		})
	}
	return live
}

// Reduce drops unreachable states and folds every dead state into a single
// oblivion state. States are renumbered breadth-first from the initial state
// in symbol order, so equal inputs give identical tables.
func (f *FSM) Reduce() *FSM {
	live := f.live()
	if !live.Test(uint(f.initial)) {
		return Nothing(f.alphabet)
	}

	ids := make([]int, len(f.trans))
	for i := range ids {
		ids[i] = -1
	}
	ids[f.initial] = 0
	order := []int{f.initial}
	for i := 0; i < len(order); i++ {
		for _, t := range f.trans[order[i]] {
			if live.Test(uint(t)) && ids[t] < 0 {
				ids[t] = len(order)
				order = append(order, t)
			}
		}
	}

	oblivion := -1
	out := &FSM{alphabet: f.alphabet, trans: make([][]int, len(order))}
	var finals []int
	for i, s := range order {
		if f.IsFinal(s) {
			finals = append(finals, i)
		}
		row := make([]int, len(f.trans[s]))
		for sym, t := range f.trans[s] {
			if ids[t] >= 0 {
				row[sym] = ids[t]
				continue
			}
			if oblivion < 0 {
				oblivion = len(order)
			}
			row[sym] = oblivion
		}
		out.trans[i] = row
	}
	if oblivion >= 0 {
		out.trans = append(out.trans, loop(f.alphabet.Len(), oblivion))
	}
	out.final = finalSet(len(out.trans), finals)
	return out
}

func finalSet(n int, finals []int) *bitset.BitSet {
	b := bitset.New(uint(n))
	for _, s := range finals {
		b.Set(uint(s))
	}
	return b
}
