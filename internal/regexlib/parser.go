package regexlib

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"greenery/internal/charclass"
)

// MaxRepeat caps the bounds of a {m,n} repetition; bounded repetition is
// unrolled during compilation.
const MaxRepeat = 1000

// SyntaxError reports malformed regex text.
type SyntaxError struct {
	Offset int // byte offset into the source
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regexlib: syntax error at offset %d: %s", e.Offset, e.Msg)
}

var parser = participle.MustBuild[altNode](
	participle.Lexer(regexLexer),
	participle.UseLookahead(2),
)

// Parse converts regex text into a Pattern.
func Parse(text string) (Pattern, error) {
	if text == "" {
		return EmptyString(), nil
	}
	root, err := parser.ParseString("", text)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return Pattern{}, &SyntaxError{Offset: perr.Position().Offset, Msg: perr.Message()}
		}
		return Pattern{}, &SyntaxError{Msg: err.Error()}
	}
	return root.pattern()
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) Pattern {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func syntaxErrorf(pos lexer.Position, format string, args ...interface{}) error {
	return &SyntaxError{Offset: pos.Offset, Msg: fmt.Sprintf(format, args...)}
}

/* ----------------------- grammar nodes -> Pattern ----------------------- */

func (n *altNode) pattern() (Pattern, error) {
	var p Pattern
	conc, err := n.Head.conc()
	if err != nil {
		return Pattern{}, err
	}
	p.Concs = append(p.Concs, conc)
	for _, b := range n.Tail {
		conc, err := b.Conc.conc()
		if err != nil {
			return Pattern{}, err
		}
		p.Concs = append(p.Concs, conc)
	}
	return p, nil
}

// conc accepts a nil receiver, which stands for an empty alternative.
func (n *concNode) conc() (Conc, error) {
	var c Conc
	if n == nil {
		return c, nil
	}
	for _, m := range n.Mults {
		mult, err := m.mult()
		if err != nil {
			return Conc{}, err
		}
		c.Mults = append(c.Mults, mult)
	}
	return c, nil
}

func (n *multNode) mult() (Mult, error) {
	atom, err := n.Atom.atom()
	if err != nil {
		return Mult{}, err
	}
	m := Mult{Atom: atom, Multiplier: One}
	if n.Bound != nil {
		if m.Multiplier, err = n.Bound.multiplier(); err != nil {
			return Mult{}, err
		}
	}
	return m, nil
}

func (n *multiplierNode) multiplier() (Multiplier, error) {
	switch n.Op {
	case "*":
		return Star, nil
	case "+":
		return Plus, nil
	case "?":
		return Optional, nil
	}
	min, err := repeatBound(n.Pos, n.Min)
	if err != nil {
		return Multiplier{}, err
	}
	max := min
	if n.Comma {
		max = Inf
		if len(n.Max) > 0 {
			if max, err = repeatBound(n.Pos, n.Max); err != nil {
				return Multiplier{}, err
			}
		}
	}
	if max != Inf && max < min {
		return Multiplier{}, syntaxErrorf(n.Pos, "invalid repetition bounds {%d,%d}", min, max)
	}
	return Multiplier{Min: min, Max: max}, nil
}

func repeatBound(pos lexer.Position, digits []string) (int, error) {
	v, err := strconv.Atoi(strings.Join(digits, ""))
	if err != nil || v > MaxRepeat {
		return 0, syntaxErrorf(pos, "repetition bound %s exceeds %d", strings.Join(digits, ""), MaxRepeat)
	}
	return v, nil
}

func (n *atomNode) atom() (Atom, error) {
	switch {
	case n.Group != nil:
		if n.Group.Body == nil {
			return Group{EmptyString()}, nil
		}
		p, err := n.Group.Body.pattern()
		if err != nil {
			return nil, err
		}
		return Group{p}, nil
	case n.Class != nil:
		c, err := n.Class.class()
		if err != nil {
			return nil, err
		}
		return Chars{c}, nil
	case n.Escape != "":
		c, err := escape(n.Pos, n.Escape)
		if err != nil {
			return nil, err
		}
		return Chars{c}, nil
	case n.Dot:
		return Chars{charclass.Dot}, nil
	default:
		return Chars{charclass.New([]rune(n.Literal)...)}, nil
	}
}

func escape(pos lexer.Position, tok string) (charclass.Class, error) {
	r := []rune(tok)[1]
	c, ok := charclass.Escape(r)
	if !ok {
		return charclass.None, syntaxErrorf(pos, "invalid escape %s", tok)
	}
	return c, nil
}

func (n *classNode) class() (charclass.Class, error) {
	out := charclass.None
	for _, it := range n.Items {
		c, err := it.class()
		if err != nil {
			return charclass.None, err
		}
		out = out.Union(c)
	}
	if n.Negate {
		out = out.Negate()
	}
	return out, nil
}

func (n *classItem) class() (charclass.Class, error) {
	from, err := n.From.class()
	if err != nil || n.To == nil {
		return from, err
	}
	to, err := n.To.class()
	if err != nil {
		return charclass.None, err
	}
	lo, hi := single(from), single(to)
	if lo < 0 || hi < 0 {
		return charclass.None, syntaxErrorf(n.Pos, "invalid range endpoint")
	}
	if lo > hi {
		return charclass.None, syntaxErrorf(n.Pos, "invalid range %c-%c", lo, hi)
	}
	return charclass.Range(lo, hi), nil
}

func (n *classChar) class() (charclass.Class, error) {
	if n.Escape != "" {
		return escape(n.Pos, n.Escape)
	}
	return charclass.New([]rune(n.Char)...), nil
}

// single returns the lone member of c, or -1.
func single(c charclass.Class) rune {
	if r, ok := c.Single(); ok {
		return r
	}
	return -1
}
