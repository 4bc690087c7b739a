package rexfa

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Pos is a zero-based byte offset into a source regex string. It is the
// position type shared by lex.Token, parse.SyntaxError and lex.LexicalError,
// so that every diagnostic in the pipeline can point at the same coordinate
// space without each package inventing its own.
type Pos int

// String renders a position as "offset 7"; diagnostics quote it as
// "at offset 7".
func (p Pos) String() string {
	return fmt.Sprintf("offset %d", int(p))
}

// Alphabet is the set of concrete input symbols occurring in a regex. It
// never contains ε, '|', '*', '(' or ')' — see automaton/nfa.Build.
type Alphabet map[byte]struct{}

// Contains reports whether c is a member of the alphabet.
func (a Alphabet) Contains(c byte) bool {
	_, ok := a[c]
	return ok
}

// Sorted returns the alphabet's symbols in ascending order, giving callers
// (subset construction, tests) a deterministic iteration order.
func (a Alphabet) Sorted() []byte {
	out := make([]byte, 0, len(a))
	for c := range a {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// IsAlphanumeric reports whether c is a legal regex symbol character
// (ASCII letter or digit). This is the only input-symbol class the core
// supports; see the module's Non-goals.
func IsAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
