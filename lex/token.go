/*
Package lex segments a source regex string into a linear token sequence.

The recognized tokens are fixed by the concrete syntax: a single alphanumeric
character is a Symbol, '|' is Union, '*' is Star, '(' / ')' are LParen/RParen,
and the end of input produces a single End token. Whitespace is skipped
between tokens and never appears in a lexeme. Tokenization is all-or-nothing:
the first illegal character aborts with a LexicalError.
*/
package lex

import (
	"fmt"

	"github.com/npillmayer/rexfa"
)

// Kind tags a Token with its lexical category.
type Kind int

const (
	// Symbol is a single alphanumeric input character.
	Symbol Kind = iota
	// Union is the '|' alternation operator.
	Union
	// Star is the '*' closure operator.
	Star
	// LParen is '('.
	LParen
	// RParen is ')'.
	RParen
	// End marks the end of input; exactly one is produced per tokenization.
	End
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Symbol:
		return "Symbol"
	case Union:
		return "Union"
	case Star:
		return "Star"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case End:
		return "End"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is an immutable tagged record: a kind, the matched lexeme (empty for
// End), and the zero-based byte offset of the lexeme's first character in
// the original source.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    rexfa.Pos
}

// String renders a token the way tracer() debug lines quote it.
func (t Token) String() string {
	if t.Kind == End {
		return fmt.Sprintf("<End@%d>", int(t.Pos))
	}
	return fmt.Sprintf("<%s %q@%d>", t.Kind, t.Lexeme, int(t.Pos))
}
