package fsm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"greenery/internal/charclass"
)

// WriteDOT writes a Graphviz digraph of f to w. Parallel transitions are
// merged into one edge labelled with the union of their classes.
func (f *FSM) WriteDOT(w io.Writer, name string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", strconv.Quote(name))
	fmt.Fprintln(&b, "    rankdir=LR;")
	for s, row := range f.trans {
		shape := "circle"
		if f.IsFinal(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    q%d [shape=%s];\n", s, shape)

		var targets []int
		labels := map[int][]charclass.Symbol{}
		for sym, t := range row {
			if _, ok := labels[t]; !ok {
				targets = append(targets, t)
			}
			labels[t] = append(labels[t], charclass.Symbol(sym))
		}
		for _, t := range targets {
			label := f.alphabet.Union(labels[t]).String()
			fmt.Fprintf(&b, "    q%d -> q%d [label=%s];\n", s, t, strconv.Quote(label))
		}
	}
	fmt.Fprintf(&b, "    _start [shape=point]; _start -> q%d;\n", f.initial)
	fmt.Fprintln(&b, "}")
	_, err := io.WriteString(w, b.String())
	return err
}

// Table returns f's transition table as text: a header naming the symbols
// and one row per state. The initial state is marked with '*'.
func (f *FSM) Table() (header []string, rows [][]string) {
	header = []string{"state", "final"}
	for sym := 0; sym < f.alphabet.Len(); sym++ {
		header = append(header, f.alphabet.Class(charclass.Symbol(sym)).String())
	}
	for s, row := range f.trans {
		name := strconv.Itoa(s)
		if s == f.initial {
			name = "*" + name
		}
		line := []string{name, strconv.FormatBool(f.IsFinal(s))}
		for _, t := range row {
			line = append(line, strconv.Itoa(t))
		}
		rows = append(rows, line)
	}
	return header, rows
}
