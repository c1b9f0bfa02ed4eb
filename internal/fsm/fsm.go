// Package fsm implements complete deterministic finite automata over a
// charclass.Alphabet together with the usual closure operations on them.
package fsm

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"greenery/internal/charclass"
)

var ErrIncomplete = errors.New("fsm: transition table is not total")

// FSM is a complete DFA. States are 0..NumStates()-1 and every state has
// exactly one successor per alphabet symbol. Values are never modified after
// construction; operations return new machines.
type FSM struct {
	alphabet *charclass.Alphabet
	initial  int
	final    *bitset.BitSet
	trans    [][]int // trans[state][symbol]
}

// New validates and wraps a transition table. trans[s][sym] is the successor
// of state s on symbol sym.
func New(alphabet *charclass.Alphabet, initial int, finals []int, trans [][]int) (*FSM, error) {
	n := len(trans)
	if initial < 0 || initial >= n {
		return nil, fmt.Errorf("%w: initial state %d of %d", ErrIncomplete, initial, n)
	}
	f := &FSM{
		alphabet: alphabet,
		initial:  initial,
		final:    bitset.New(uint(n)),
		trans:    make([][]int, n),
	}
	for s, row := range trans {
		if len(row) != alphabet.Len() {
			return nil, fmt.Errorf("%w: state %d has %d transitions for %d symbols", ErrIncomplete, s, len(row), alphabet.Len())
		}
		for sym, t := range row {
			if t < 0 || t >= n {
				return nil, fmt.Errorf("%w: state %d symbol %d goes to %d", ErrIncomplete, s, sym, t)
			}
		}
		f.trans[s] = append([]int(nil), row...)
	}
	for _, s := range finals {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: final state %d of %d", ErrIncomplete, s, n)
		}
		f.final.Set(uint(s))
	}
	return f, nil
}

// Nothing accepts no string.
func Nothing(alphabet *charclass.Alphabet) *FSM {
	return &FSM{
		alphabet: alphabet,
		final:    bitset.New(1),
		trans:    [][]int{loop(alphabet.Len(), 0)},
	}
}

// Epsilon accepts only the empty string.
func Epsilon(alphabet *charclass.Alphabet) *FSM {
	f := &FSM{
		alphabet: alphabet,
		final:    bitset.New(2),
		trans:    [][]int{loop(alphabet.Len(), 1), loop(alphabet.Len(), 1)},
	}
	f.final.Set(0)
	return f
}

// Everything accepts every string over the alphabet.
func Everything(alphabet *charclass.Alphabet) *FSM {
	f := &FSM{
		alphabet: alphabet,
		final:    bitset.New(1),
		trans:    [][]int{loop(alphabet.Len(), 0)},
	}
	f.final.Set(0)
	return f
}

func loop(n, to int) []int {
	row := make([]int, n)
	for i := range row {
		row[i] = to
	}
	return row
}

func (f *FSM) Alphabet() *charclass.Alphabet { return f.alphabet }

func (f *FSM) Initial() int { return f.initial }

func (f *FSM) NumStates() int { return len(f.trans) }

func (f *FSM) IsFinal(s int) bool { return f.final.Test(uint(s)) }

// Next returns the successor of s on sym.
func (f *FSM) Next(s int, sym charclass.Symbol) int { return f.trans[s][sym] }

// Finals lists the accepting states in increasing order.
func (f *FSM) Finals() []int {
	var out []int
	for i, ok := f.final.NextSet(0); ok; i, ok = f.final.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// mustMatch panics when two machines do not share an alphabet. Callers are
// expected to compile every operand against one partition.
func mustMatch(op string, a, b *FSM) {
	if !a.alphabet.Equal(b.alphabet) {
		panic(fmt.Sprintf("fsm: %s of machines over different alphabets %v and %v", op, a.alphabet, b.alphabet))
	}
}
