package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitTests(t *testing.T) {
	re, tests := splitTests([]string{"a*", "b", "--", "x", "--"})
	if strings.Join(re, " ") != "a* b" || strings.Join(tests, " ") != "x --" {
		t.Fatalf("got %v / %v", re, tests)
	}
	re, tests = splitTests([]string{"a"})
	if len(re) != 1 || tests != nil {
		t.Fatalf("got %v / %v", re, tests)
	}
}

func TestBuildReport(t *testing.T) {
	ps, err := parseAll([]string{"a*", "a+"})
	if err != nil {
		t.Fatal(err)
	}
	cs := build(ps, true)
	if len(cs) != 3 || cs[0].label != "Intersection" || cs[0].pattern.String() != "a+" {
		t.Fatalf("unexpected compositions %v", cs)
	}

	var buf bytes.Buffer
	report(&buf, cs, "aa")
	want := `Testing w/: "aa"
Intersection        : a+                  : true
Union               : a*|a+               : true
Concatenation       : a+                  : true
`
	if buf.String() != want {
		t.Fatalf("report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrintTable(t *testing.T) {
	ps, err := parseAll([]string{"ab"})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := printTable(&buf, build(ps, true)[0].machine); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(strings.ToLower(out), "state") || !strings.Contains(out, "*") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

func TestParseAllError(t *testing.T) {
	if _, err := parseAll([]string{"a", "(b"}); err == nil || !strings.Contains(err.Error(), `"(b"`) {
		t.Fatalf("want error naming the bad regex, got %v", err)
	}
}

func TestScanLinesStopsAtBlank(t *testing.T) {
	var got []string
	err := scanLines(strings.NewReader("ab\ncd\n\nef\n"), func(s string) { got = append(got, s) })
	if err != nil || strings.Join(got, ",") != "ab,cd" {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestWriteDOT(t *testing.T) {
	ps, _ := parseAll([]string{"ab"})
	dir := t.TempDir()
	if err := writeDOT(dir, build(ps, false)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "union.dot"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("digraph")) {
		t.Fatalf("unexpected dot output %q", data)
	}
}
