package fsm

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"

	"greenery/internal/charclass"
)

type nfaEdge struct {
	sym charclass.Symbol
	to  int
}

// NFA is a nondeterministic automaton with ε-moves, used as the intermediate
// form for compilation, concatenation, closure and reversal.
type NFA struct {
	alphabet *charclass.Alphabet
	start    int
	edges    [][]nfaEdge
	eps      [][]int
	accept   []bool
}

func NewNFA(alphabet *charclass.Alphabet) *NFA {
	return &NFA{alphabet: alphabet}
}

// AddState adds a fresh state and returns its index.
func (n *NFA) AddState() int {
	n.edges = append(n.edges, nil)
	n.eps = append(n.eps, nil)
	n.accept = append(n.accept, false)
	return len(n.accept) - 1
}

func (n *NFA) AddEdge(from int, sym charclass.Symbol, to int) {
	n.edges[from] = append(n.edges[from], nfaEdge{sym: sym, to: to})
}

func (n *NFA) AddEpsilon(from, to int) {
	n.eps[from] = append(n.eps[from], to)
}

func (n *NFA) SetStart(s int) { n.start = s }

func (n *NFA) SetAccept(s int) { n.accept[s] = true }

func (n *NFA) NumStates() int { return len(n.accept) }

// embed copies every state of f into n and returns the offset of f's state 0.
func (n *NFA) embed(f *FSM) int {
	off := n.NumStates()
	for range f.trans {
		n.AddState()
	}
	for s, row := range f.trans {
		for sym, t := range row {
			n.AddEdge(off+s, charclass.Symbol(sym), off+t)
		}
	}
	return off
}

func (n *NFA) closure(set *bitset.BitSet) *bitset.BitSet {
	var stack []int
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		stack = append(stack, int(i))
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.eps[s] {
			if !set.Test(uint(t)) {
				set.Set(uint(t))
				stack = append(stack, t)
			}
		}
	}
	return set
}

func (n *NFA) move(set *bitset.BitSet, sym charclass.Symbol) *bitset.BitSet {
	out := bitset.New(uint(n.NumStates()))
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		for _, e := range n.edges[i] {
			if e.sym == sym {
				out.Set(uint(e.to))
			}
		}
	}
	return out
}

func (n *NFA) accepting(set *bitset.BitSet) bool {
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if n.accept[i] {
			return true
		}
	}
	return false
}

// setKey identifies a state set. All sets of one construction share a length,
// so equal sets yield equal keys.
func setKey(b *bitset.BitSet) string {
	words := b.Bytes()
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[8*i:], w)
	}
	return string(buf)
}

// Determinize runs the subset construction. The empty state set becomes an
// ordinary non-final state, so the result is complete; it is then reduced.
func (n *NFA) Determinize() *FSM {
	init := bitset.New(uint(n.NumStates()))
	if n.NumStates() > 0 {
		init.Set(uint(n.start))
	}
	init = n.closure(init)

	ids := map[string]int{setKey(init): 0}
	queue := []*bitset.BitSet{init}
	f := &FSM{alphabet: n.alphabet}
	var finals []int
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		if n.accepting(cur) {
			finals = append(finals, i)
		}
		row := make([]int, n.alphabet.Len())
		for sym := range row {
			next := n.closure(n.move(cur, charclass.Symbol(sym)))
			key := setKey(next)
			id, ok := ids[key]
			if !ok {
				id = len(queue)
				ids[key] = id
				queue = append(queue, next)
			}
			row[sym] = id
		}
		f.trans = append(f.trans, row)
	}
	f.final = finalSet(len(f.trans), finals)
	return f.Reduce()
}
