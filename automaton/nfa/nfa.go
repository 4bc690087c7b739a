/*
Package nfa builds a Thompson-construction nondeterministic finite automaton
from an ast.Node tree and simulates it against candidate strings.

States are dense integers assigned from an arena, in the order fragments are
minted during a post-order walk of the AST — this makes construction
deterministic and test-comparable, though it is not required for
correctness. Every Thompson-built NFA has exactly one start state and
exactly one accepting state, and the accepting state has no outgoing
transitions.
*/
package nfa

import (
	"fmt"

	"github.com/npillmayer/rexfa"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexfa.nfa'.
func tracer() tracing.Trace {
	return tracing.Select("rexfa.nfa")
}

// StateID is a dense, zero-based state identifier, unique within one NFA.
type StateID int

// transition is a single (symbol-or-ε, target) edge. A zero-valued Symbol
// with onEpsilon set denotes ε; this is kept internal, never exposed.
type transition struct {
	onEpsilon bool
	symbol    byte
	to        StateID
}

// State is one NFA state: an identifier plus its outgoing transitions. An
// accepting state (the unique one in a Thompson NFA) has no outgoing
// transitions, by invariant.
type State struct {
	ID    StateID
	edges []transition
}

// Transitions returns the target states of the outgoing non-ε edges on the
// given symbol.
func (s State) Transitions(symbol byte) []StateID {
	var out []StateID
	for _, e := range s.edges {
		if !e.onEpsilon && e.symbol == symbol {
			out = append(out, e.to)
		}
	}
	return out
}

// EpsilonTransitions returns the states reachable from s by a single
// ε-transition.
func (s State) EpsilonTransitions() []StateID {
	var out []StateID
	for _, e := range s.edges {
		if e.onEpsilon {
			out = append(out, e.to)
		}
	}
	return out
}

// NFA is the tuple (Q, Σ, δ, q0, F) of spec §3: a dense state arena, the
// alphabet derived from the AST's Symbol leaves, a single start state, and
// (for Thompson-built NFAs) a single accepting state.
type NFA struct {
	states   []State
	start    StateID
	accept   StateID
	alphabet rexfa.Alphabet
}

// Start returns the NFA's single start state.
func (n *NFA) Start() StateID { return n.start }

// Accept returns the NFA's single accepting state.
func (n *NFA) Accept() StateID { return n.accept }

// Alphabet returns the set of concrete input symbols occurring in the
// source AST; it never contains ε or a metacharacter.
func (n *NFA) Alphabet() rexfa.Alphabet { return n.alphabet }

// NumStates returns |Q|.
func (n *NFA) NumStates() int { return len(n.states) }

// State returns the state identified by id. Panics if id is out of range,
// which can only happen on a caller bug (ids are only ever handed out by
// this package).
func (n *NFA) State(id StateID) State { return n.states[id] }

// IsAccepting reports whether id is the NFA's accepting state.
func (n *NFA) IsAccepting(id StateID) bool { return id == n.accept }

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states=%d, start=%d, accept=%d, Σ=%v}",
		len(n.states), n.start, n.accept, n.alphabet.Sorted())
}

// --- construction arena, used only by Build (thompson.go) ------------------

// builder mints states into a growable arena and records edges as they are
// added, in the style of the teacher's state()/edge() constructors.
type builder struct {
	states []State
}

func newBuilder() *builder {
	return &builder{states: make([]State, 0, 16)}
}

// newState mints a fresh state with the next dense ID.
func (b *builder) newState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{ID: id})
	tracer().Debugf("minted state %d", id)
	return id
}

func (b *builder) addEpsilon(from, to StateID) {
	b.states[from].edges = append(b.states[from].edges, transition{onEpsilon: true, to: to})
}

func (b *builder) addSymbol(from StateID, symbol byte, to StateID) {
	b.states[from].edges = append(b.states[from].edges, transition{symbol: symbol, to: to})
}
