package charclass

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// Symbol indexes one class of an Alphabet.
type Symbol int

var (
	ErrEmptySymbol      = errors.New("charclass: alphabet symbol matches no character")
	ErrOverlap          = errors.New("charclass: alphabet symbols overlap")
	ErrMultipleCatchAll = errors.New("charclass: alphabet has more than one negated symbol")
	ErrNotRepresentable = errors.New("charclass: class straddles an alphabet symbol")
)

// Alphabet is a list of pairwise disjoint, non-empty classes. At most one of
// them is negated; that one is the catch-all symbol standing for every
// character the others do not name.
type Alphabet struct {
	classes  []Class
	lookup   []entry // ordered by span, disjoint
	catchAll Symbol
}

// entry maps one range of characters to the ordinary symbol holding it.
type entry struct {
	span span
	sym  Symbol
}

// Partition computes the coarsest alphabet under which each of the given
// classes is a union of symbols. Two characters share a symbol exactly when
// every class either holds both or neither. The last symbol is always the
// catch-all for characters no class mentions.
//
// Work is proportional to the number of range boundaries, not to the number
// of characters the classes hold.
func Partition(classes ...Class) *Alphabet {
	var all []span
	for _, c := range classes {
		all = append(all, decode(c.spans)...)
	}
	var cuts []rune
	for _, s := range all {
		lo, hi := s.split()
		cuts = append(cuts, lo, hi+1)
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)
	mentioned := normalize(all)

	a := &Alphabet{}
	groups := make(map[string]Symbol)
	var members [][]span
	sig := make([]byte, len(classes))
	k := 0
	for _, m := range mentioned {
		lo, hi := m.split()
		for lo <= hi {
			for k < len(cuts) && cuts[k] <= lo {
				k++
			}
			end := hi
			if k < len(cuts) && cuts[k]-1 < end {
				end = cuts[k] - 1
			}
			// every class is uniform on lo-end
			for i, c := range classes {
				sig[i] = '0'
				if c.Contains(lo) {
					sig[i] = '1'
				}
			}
			sym, ok := groups[string(sig)]
			if !ok {
				sym = Symbol(len(members))
				groups[string(sig)] = sym
				members = append(members, nil)
			}
			members[sym] = append(members[sym], newSpan(lo, end))
			a.lookup = append(a.lookup, entry{newSpan(lo, end), sym})
			lo = end + 1
		}
	}

	for _, m := range members {
		a.classes = append(a.classes, build(m, false))
	}
	a.catchAll = Symbol(len(a.classes))
	a.classes = append(a.classes, build(mentioned, true))
	return a
}

// NewAlphabet builds an alphabet from explicit symbol classes, in order.
func NewAlphabet(classes ...Class) (*Alphabet, error) {
	a := &Alphabet{
		classes:  slices.Clone(classes),
		catchAll: -1,
	}
	for i, c := range a.classes {
		if c.IsEmpty() {
			return nil, fmt.Errorf("%w: symbol %d", ErrEmptySymbol, i)
		}
		for j := 0; j < i; j++ {
			if !c.Disjoint(a.classes[j]) {
				return nil, fmt.Errorf("%w: %v and %v", ErrOverlap, a.classes[j], c)
			}
		}
		if c.Negated() {
			if a.catchAll >= 0 {
				return nil, ErrMultipleCatchAll
			}
			a.catchAll = Symbol(i)
			continue
		}
		for _, s := range decode(c.spans) {
			a.lookup = append(a.lookup, entry{s, Symbol(i)})
		}
	}
	sort.Slice(a.lookup, func(i, j int) bool { return a.lookup[i].span < a.lookup[j].span })
	return a, nil
}

func (a *Alphabet) Len() int { return len(a.classes) }

// Class returns the characters symbol s stands for.
func (a *Alphabet) Class(s Symbol) Class { return a.classes[s] }

// CatchAll returns the negated symbol, if the alphabet has one.
func (a *Alphabet) CatchAll() (Symbol, bool) {
	return a.catchAll, a.catchAll >= 0
}

// SymbolOf maps a character to its symbol.
func (a *Alphabet) SymbolOf(r rune) (Symbol, bool) {
	i := sort.Search(len(a.lookup), func(i int) bool {
		_, hi := a.lookup[i].span.split()
		return hi >= r
	})
	if i < len(a.lookup) {
		if lo, _ := a.lookup[i].span.split(); lo <= r {
			return a.lookup[i].sym, true
		}
	}
	if a.catchAll >= 0 && a.classes[a.catchAll].Contains(r) {
		return a.catchAll, true
	}
	return 0, false
}

// Decompose returns the symbols whose union is c. It fails when some symbol
// is only partly inside c, which means the alphabet was not partitioned with
// c among its inputs.
func (a *Alphabet) Decompose(c Class) ([]Symbol, error) {
	var out []Symbol
	for i, sc := range a.classes {
		switch {
		case sc.Subset(c):
			out = append(out, Symbol(i))
		case !sc.Disjoint(c):
			return nil, fmt.Errorf("%w: %v against %v", ErrNotRepresentable, c, sc)
		}
	}
	return out, nil
}

// Union returns the class covered by the given symbols.
func (a *Alphabet) Union(syms []Symbol) Class {
	out := None
	for _, s := range syms {
		out = out.Union(a.classes[s])
	}
	return out
}

func (a *Alphabet) Equal(o *Alphabet) bool {
	if a == o {
		return true
	}
	return a.catchAll == o.catchAll && slices.Equal(a.classes, o.classes)
}

func (a *Alphabet) String() string {
	parts := make([]string, len(a.classes))
	for i, c := range a.classes {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
