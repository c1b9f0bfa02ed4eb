package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"

	"greenery/internal/fsm"
	"greenery/internal/regexlib"
)

// composite is one combination of all the input regexes.
type composite struct {
	label   string
	pattern regexlib.Pattern
	machine *fsm.FSM
}

// build combines the patterns three ways. The machines come from folding the
// automaton operations over a shared alphabet; the patterns come from the
// pattern algebra, so the two can be checked against each other.
func build(patterns []regexlib.Pattern, minimize bool) []composite {
	_, ms := regexlib.CompileAll(patterns...)
	out := []composite{
		{"Intersection", regexlib.Intersect(patterns...), regexlib.IntersectFSM(ms...)},
		{"Union", regexlib.Alternate(patterns...).Reduce(), regexlib.UnionFSM(ms...)},
		{"Concatenation", regexlib.Concatenate(patterns...).Reduce(), regexlib.ConcatenateFSM(ms...)},
	}
	if minimize {
		for i := range out {
			out[i].machine = out[i].machine.Minimize()
		}
	}
	return out
}

func parseAll(texts []string) ([]regexlib.Pattern, error) {
	out := make([]regexlib.Pattern, len(texts))
	for i, text := range texts {
		p, err := regexlib.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("regex %q: %w", text, err)
		}
		out[i] = p
	}
	return out, nil
}

// splitTests separates the regexes from the test strings following "--".
func splitTests(args []string) (regexes, tests []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func printTable(w io.Writer, m *fsm.FSM) error {
	header, rows := m.Table()
	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func report(w io.Writer, cs []composite, line string) {
	fmt.Fprintf(w, "Testing w/: %q\n", line)
	for _, c := range cs {
		var result interface{}
		ok, err := c.machine.Accepts(line)
		if err != nil {
			result = err
		} else {
			result = ok
		}
		fmt.Fprintf(w, "%-20s: %-20s: %v\n", c.label, c.pattern, result)
	}
}

func writeDOT(dir string, cs []composite) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, c := range cs {
		path := filepath.Join(dir, strings.ToLower(c.label)+".dot")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := c.machine.WriteDOT(f, c.label); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
