/*
Package rexfa compiles a small regular-expression syntax into finite
automata and simulates them against candidate strings.

The pipeline is strictly linear and each stage is pure:

	string → tokens → AST → NFA → (optionally) DFA → accept/reject(string)

Package structure:

■ lex: Package lex segments a source string into a token sequence.

■ ast: Package ast defines the four-shape syntax tree produced by the parser.

■ parse: Package parse is a recursive-descent parser honoring union/concat/star
precedence.

■ automaton/nfa: Package nfa builds a Thompson nondeterministic automaton from
an AST and simulates it.

■ automaton/dfa: Package dfa determinizes an NFA via subset construction and
simulates the result.

■ compile: Package compile wires the stages above into a single entry point
and maps stage errors to CompilationError.

The base package contains data types shared across all of the above.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rexfa
