package regexlib

import (
	"unicode/utf8"

	"greenery/internal/fsm"
)

// Regex is a parsed pattern together with its minimal DFA over the
// pattern's own alphabet.
type Regex struct {
	source  string
	pattern Pattern
	dfa     *fsm.FSM
	dead    []bool
}

// New parses text and compiles it.
func New(text string) (*Regex, error) {
	p, err := Parse(text)
	if err != nil {
		return nil, err
	}
	dfa := p.FSM().Minimize()
	dead := make([]bool, dfa.NumStates())
	for s := range dead {
		dead[s] = isDead(dfa, s)
	}
	return &Regex{source: text, pattern: p, dfa: dfa, dead: dead}, nil
}

// MustNew is like New but panics on malformed text.
func MustNew(text string) *Regex {
	r, err := New(text)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Regex) String() string { return r.source }

func (r *Regex) Pattern() Pattern { return r.pattern }

func (r *Regex) FSM() *fsm.FSM { return r.dfa }

// Match reports whether the whole of s is matched.
func (r *Regex) Match(s string) bool {
	ok, _ := r.dfa.Accepts(s)
	return ok
}

// Match is a matched span of the input, in bytes.
type Match struct {
	Start, End int
}

// FindAll returns the leftmost-longest non-empty matches in text, without
// overlaps.
func (r *Regex) FindAll(text string) []Match {
	var out []Match
	for i := 0; i < len(text); {
		if n := r.longest(text[i:]); n > 0 {
			out = append(out, Match{Start: i, End: i + n})
			i += n
			continue
		}
		_, sz := utf8.DecodeRuneInString(text[i:])
		i += sz
	}
	return out
}

// longest returns the byte length of the longest accepted prefix of s.
func (r *Regex) longest(s string) int {
	state := r.dfa.Initial()
	best := 0
	alpha := r.dfa.Alphabet()
	for pos, c := range s {
		sym, ok := alpha.SymbolOf(c)
		if !ok {
			break
		}
		state = r.dfa.Next(state, sym)
		if r.dead[state] {
			break
		}
		if r.dfa.IsFinal(state) {
			best = pos + utf8.RuneLen(c)
		}
	}
	return best
}

// FSM compiles p over its own alphabet, which always has a catch-all symbol.
func (p Pattern) FSM() *fsm.FSM {
	return mustCompile(p, Alphabet(p))
}

// Matches reports whether p matches all of s.
func (p Pattern) Matches(s string) bool {
	ok, _ := p.FSM().Accepts(s)
	return ok
}

// Strings lists up to limit strings p matches, shortest first, using one
// representative character per alphabet symbol.
func (p Pattern) Strings(limit int) []string {
	m := p.FSM()
	words := m.Strings(limit)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = m.Example(w)
	}
	return out
}
