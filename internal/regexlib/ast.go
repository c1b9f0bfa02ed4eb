package regexlib

import "github.com/alecthomas/participle/v2/lexer"

// Grammar nodes. An empty alternative or an empty group is a nil child,
// since participle will not capture a node that consumed no tokens.
//
//	Pattern       := Concatenation ( '|' Concatenation )*
//	Concatenation := Mult*
//	Mult          := Atom Multiplier?
//	Atom          := '(' Pattern ')' | '[' '^'? Item* ']' | Escape | '.' | literal
//	Multiplier    := '*' | '+' | '?' | '{' INT ( ',' INT? )? '}'

type altNode struct {
	Pos  lexer.Position
	Head *concNode     `parser:"@@?"`
	Tail []*branchNode `parser:"@@*"`
}

type branchNode struct {
	Pos  lexer.Position
	Bar  string    `parser:"@'|'"`
	Conc *concNode `parser:"@@?"`
}

type concNode struct {
	Mults []*multNode `parser:"@@+"`
}

type multNode struct {
	Pos   lexer.Position
	Atom  *atomNode       `parser:"@@"`
	Bound *multiplierNode `parser:"@@?"`
}

type atomNode struct {
	Pos     lexer.Position
	Group   *groupNode `parser:"  @@"`
	Class   *classNode `parser:"| @@"`
	Escape  string     `parser:"| @Escape"`
	Dot     bool       `parser:"| @'.'"`
	Literal string     `parser:"| @(Char | Digit | ',' | '-' | '}' | ']' | '^')"`
}

type groupNode struct {
	Pos  lexer.Position
	Open string   `parser:"@'('"`
	Body *altNode `parser:"@@? ')'"`
}

type classNode struct {
	Pos    lexer.Position
	Open   string       `parser:"@'['"`
	Negate bool         `parser:"@'^'?"`
	Items  []*classItem `parser:"@@* ']'"`
}

type classItem struct {
	Pos  lexer.Position
	From *classChar `parser:"@@"`
	To   *classChar `parser:"( '-' @@ )?"`
}

type classChar struct {
	Pos    lexer.Position
	Escape string `parser:"  @Escape"`
	Char   string `parser:"| @(Char | Digit | '(' | ')' | '|' | '*' | '+' | '?' | '{' | '}' | '[' | '^' | ',' | '.' | '-')"`
}

type multiplierNode struct {
	Pos   lexer.Position
	Op    string   `parser:"  @('*' | '+' | '?')"`
	Min   []string `parser:"| '{' @Digit+"`
	Comma bool     `parser:"  ( @','"`
	Max   []string `parser:"    @Digit* )? '}'"`
}
