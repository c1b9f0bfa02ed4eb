package fsm

import (
	"fmt"

	"greenery/internal/charclass"
)

// UnknownSymbolError reports a character that no alphabet symbol covers.
// It is distinct from a rejection, which is an ordinary result.
type UnknownSymbolError struct {
	Char rune
	Pos  int // index of the character, counted in characters
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("fsm: character %q at position %d is not in the alphabet", e.Char, e.Pos)
}

// Accepts reports whether f accepts s. Characters outside every symbol fall
// back to the catch-all symbol; without one they are an error.
func (f *FSM) Accepts(s string) (bool, error) {
	state := f.initial
	pos := 0
	for _, r := range s {
		sym, ok := f.alphabet.SymbolOf(r)
		if !ok {
			return false, &UnknownSymbolError{Char: r, Pos: pos}
		}
		state = f.trans[state][sym]
		pos++
	}
	return f.IsFinal(state), nil
}

// AcceptsSymbols runs f over a string already mapped to symbols.
func (f *FSM) AcceptsSymbols(word []charclass.Symbol) bool {
	state := f.initial
	for _, sym := range word {
		state = f.trans[state][sym]
	}
	return f.IsFinal(state)
}

// Strings lists up to limit accepted symbol strings, shortest first and in
// symbol order among strings of equal length.
func (f *FSM) Strings(limit int) [][]charclass.Symbol {
	live := f.live()
	if limit <= 0 || !live.Test(uint(f.initial)) {
		return nil
	}
	type item struct {
		state int
		word  []charclass.Symbol
	}
	var out [][]charclass.Symbol
	queue := []item{{state: f.initial}}
	for len(queue) > 0 && len(out) < limit {
		it := queue[0]
		queue = queue[1:]
		if f.IsFinal(it.state) {
			out = append(out, it.word)
		}
		for sym, t := range f.trans[it.state] {
			if !live.Test(uint(t)) {
				continue
			}
			w := make([]charclass.Symbol, len(it.word)+1)
			copy(w, it.word)
			w[len(it.word)] = charclass.Symbol(sym)
			queue = append(queue, item{state: t, word: w})
		}
	}
	return out
}

// Example spells a symbol string with one representative character per
// symbol.
func (f *FSM) Example(word []charclass.Symbol) string {
	rs := make([]rune, len(word))
	for i, sym := range word {
		rs[i], _ = f.alphabet.Class(sym).Sample()
	}
	return string(rs)
}
