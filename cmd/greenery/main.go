package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

func main() {
	log.SetFlags(0)
	verbose := flag.Bool("v", false, "print the transition table of each machine")
	interactive := flag.Bool("i", false, "read test strings from stdin until an empty line")
	timing := flag.Bool("t", false, "time building the compositions")
	dotDir := flag.String("dot", "", "write one DOT graph per machine into this directory")
	minimize := flag.Bool("min", false, "minimise the machines before printing")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] [-i] [-t] [-min] [-dot dir] regex [...] [-- test ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	texts, tests := splitTests(flag.Args())
	if len(texts) < 1 {
		fmt.Fprintln(os.Stderr, "Please supply several regexes to compute their intersection, union and concatenation.")
		fmt.Fprintln(os.Stderr, `E.g. "19.*" "\d{4}-\d{2}-\d{2}"`)
		flag.Usage()
		os.Exit(1)
	}

	patterns, err := parseAll(texts)
	if err != nil {
		log.Fatal(err)
	}

	if *timing {
		const rep, num = 3, 10
		best := time.Duration(-1)
		for r := 0; r < rep; r++ {
			start := time.Now()
			for n := 0; n < num; n++ {
				build(patterns, *minimize)
			}
			if d := time.Since(start); best < 0 || d < best {
				best = d
			}
		}
		fmt.Printf("%.3f ms/build avg\n", float64(best.Microseconds())/1000/num)
	}

	cs := build(patterns, *minimize)
	if *verbose {
		diag := log.New(os.Stderr, "greenery: ", 0)
		alpha := cs[0].machine.Alphabet()
		diag.Printf("alphabet: %d symbols %v", alpha.Len(), alpha)
		for _, c := range cs {
			diag.Printf("%s: %d states", c.label, c.machine.NumStates())
		}
	}
	for _, c := range cs {
		fmt.Printf("%-20s: %s\n", c.label, c.pattern)
		if *verbose {
			if err := printTable(os.Stdout, c.machine); err != nil {
				log.Fatalf("table: %v", err)
			}
		}
	}

	if *dotDir != "" {
		if err := writeDOT(*dotDir, cs); err != nil {
			log.Fatalf("dot: %v", err)
		}
	}

	switch {
	case len(tests) > 0:
		for _, line := range tests {
			report(os.Stdout, cs, line)
		}
	case *interactive:
		if err := readLines(os.Stdin, func(line string) { report(os.Stdout, cs, line) }); err != nil {
			log.Fatal(err)
		}
	}
}

// readLines feeds each line to do until an empty line or end of input. On a
// terminal it prompts with promptui.
func readLines(in *os.File, do func(string)) error {
	if isatty.IsTerminal(in.Fd()) {
		for {
			prompt := promptui.Prompt{Label: "-->"}
			line, err := prompt.Run()
			if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
				return nil
			}
			if err != nil {
				return err
			}
			if line == "" {
				return nil
			}
			do(line)
		}
	}
	return scanLines(in, do)
}

func scanLines(in io.Reader, do func(string)) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if sc.Text() == "" {
			return nil
		}
		do(sc.Text())
	}
	return sc.Err()
}
