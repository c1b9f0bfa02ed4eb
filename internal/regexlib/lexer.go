package regexlib

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// regexLexer splits a pattern into single-character tokens. Rules are tried
// in order, so a backslash always starts an Escape and a lone trailing
// backslash matches no rule at all.
var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escape", Pattern: `\\(?s:.)`},
	{Name: "Digit", Pattern: `[0-9]`},
	{Name: "Punct", Pattern: `[()|*+?{}\[\]^,.\-]`},
	{Name: "Char", Pattern: `[^\\]`},
})
