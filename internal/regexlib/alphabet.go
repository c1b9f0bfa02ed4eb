package regexlib

import (
	"greenery/internal/charclass"
	"greenery/internal/fsm"
)

// Alphabet partitions the classes of all given patterns into one shared
// alphabet. Patterns that are going to be combined must be compiled against
// the same alphabet.
func Alphabet(patterns ...Pattern) *charclass.Alphabet {
	var all []charclass.Class
	for _, p := range patterns {
		all = p.classes(all)
	}
	seen := make(map[charclass.Class]bool, len(all))
	uniq := all[:0]
	for _, c := range all {
		if !seen[c] {
			seen[c] = true
			uniq = append(uniq, c)
		}
	}
	return charclass.Partition(uniq...)
}

// CompileAll compiles each pattern against their common alphabet.
func CompileAll(patterns ...Pattern) (*charclass.Alphabet, []*fsm.FSM) {
	alpha := Alphabet(patterns...)
	out := make([]*fsm.FSM, len(patterns))
	for i, p := range patterns {
		out[i] = mustCompile(p, alpha)
	}
	return alpha, out
}
