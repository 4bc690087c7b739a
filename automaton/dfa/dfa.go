/*
Package dfa determinizes an NFA via the subset (powerset) construction and
simulates the resulting deterministic automaton.

A DFA state corresponds to a subset of NFA states; subsets are canonicalized
as their sorted NFA-state-ID sequence, per spec §4.5/§9. No minimization is
performed — two subset-equivalent DFAs produced from equal NFAs must have
identical state counts on identical inputs (spec §4.5's determinism
requirement).
*/
package dfa

import (
	"fmt"

	"github.com/npillmayer/rexfa"
	"github.com/npillmayer/rexfa/automaton/nfa"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexfa.dfa'.
func tracer() tracing.Trace {
	return tracing.Select("rexfa.dfa")
}

// StateID is a dense, zero-based DFA state identifier, unique within one DFA.
type StateID int

// State is one DFA state: its transition table (total on reachable symbols;
// a missing entry means "reject"), whether it is accepting, and — for
// debugging only, not part of the public contract (spec §3) — the sorted
// NFA state subset it was built from.
type State struct {
	ID        StateID
	Trans     map[byte]StateID
	accepting bool
	nfaStates []nfa.StateID
}

// NFAStates returns the sorted NFA-state subset this DFA state was built
// from. This is debugging/introspection surface only; spec §3 explicitly
// does not require it to be part of the public contract, but does require
// it be recoverable.
func (s State) NFAStates() []nfa.StateID { return s.nfaStates }

// DFA is the tuple (Q', Σ, δ', q0', F') of spec §3.
type DFA struct {
	states   []State
	start    StateID
	alphabet rexfa.Alphabet
}

// Start returns the DFA's start state.
func (d *DFA) Start() StateID { return d.start }

// NumStates returns |Q'|.
func (d *DFA) NumStates() int { return len(d.states) }

// State returns the state identified by id.
func (d *DFA) State(id StateID) State { return d.states[id] }

// IsAccepting reports whether id is an accepting state.
func (d *DFA) IsAccepting(id StateID) bool { return d.states[id].accepting }

// Alphabet returns Σ, the same alphabet as the source NFA's.
func (d *DFA) Alphabet() rexfa.Alphabet { return d.alphabet }

func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states=%d, start=%d, Σ=%v}", len(d.states), d.start, d.alphabet.Sorted())
}
