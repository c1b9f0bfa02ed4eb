package charclass

import (
	"strings"
)

// shorthands maps classes with a dedicated notation to it.
var shorthands = map[Class]string{
	None:     "[]",
	Any:      "[^]",
	Dot:      ".",
	Digit:    `\d`,
	NotDigit: `\D`,
	Word:     `\w`,
	NotWord:  `\W`,
	Space:    `\s`,
	NotSpace: `\S`,
}

// letterEscapes are the backslash escapes that are not plain punctuation.
var letterEscapes = map[rune]Class{
	'd': Digit,
	'D': NotDigit,
	'w': Word,
	'W': NotWord,
	's': Space,
	'S': NotSpace,
	'n': New('\n'),
	't': New('\t'),
	'r': New('\r'),
	'f': New('\f'),
	'v': New('\v'),
}

var controlNames = map[rune]string{
	'\n': `\n`,
	'\t': `\t`,
	'\r': `\r`,
	'\f': `\f`,
	'\v': `\v`,
}

// Escape resolves the character following a backslash. Letters and digits
// without a meaning are rejected; any other character stands for itself.
func Escape(r rune) (Class, bool) {
	if c, ok := letterEscapes[r]; ok {
		return c, true
	}
	if r < 0x80 && (r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
		return None, false
	}
	return New(r), true
}

// EscapeLiteral renders r so that it parses back as that single character
// outside brackets.
func EscapeLiteral(r rune) string {
	if s, ok := controlNames[r]; ok {
		return s
	}
	if strings.ContainsRune(`\()|*+?{}[].`, r) {
		return `\` + string(r)
	}
	return string(r)
}

func escapeInClass(r rune) string {
	if s, ok := controlNames[r]; ok {
		return s
	}
	if strings.ContainsRune(`\[]^-`, r) {
		return `\` + string(r)
	}
	return string(r)
}

// String renders c in regular expression notation.
func (c Class) String() string {
	if s, ok := shorthands[c]; ok {
		return s
	}
	if r, ok := c.Single(); ok {
		return EscapeLiteral(r)
	}
	var b strings.Builder
	b.WriteByte('[')
	if c.negated {
		b.WriteByte('^')
	}
	for _, s := range decode(c.spans) {
		lo, hi := s.split()
		if hi-lo >= 2 {
			b.WriteString(escapeInClass(lo))
			b.WriteByte('-')
			b.WriteString(escapeInClass(hi))
			continue
		}
		for r := lo; r <= hi; r++ {
			b.WriteString(escapeInClass(r))
		}
	}
	b.WriteByte(']')
	return b.String()
}
