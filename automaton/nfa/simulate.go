package nfa

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/rexfa/internal/fp"
)

// stateIDComparator orders StateIDs ascending, matching the teacher's
// stateComparator in lr/tables.go (there comparing *CFSMState.ID).
func stateIDComparator(a, b interface{}) int {
	return utils.IntComparator(int(a.(StateID)), int(b.(StateID)))
}

func newStateSet(ids ...StateID) *treeset.Set {
	s := treeset.NewWith(stateIDComparator)
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// EpsilonClosure computes the smallest set of states containing states that
// is closed under ε-transitions: a stack-based worklist traversal with a
// visited marker (the treeset itself doubles as the visited set, since
// membership is checked before a state is pushed for expansion), matching
// spec §4.4's contract. It terminates because the state graph is finite.
func (n *NFA) EpsilonClosure(states []StateID) []StateID {
	closure := newStateSet(states...)
	frontier := append([]StateID(nil), states...)
	for len(frontier) > 0 {
		s := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, next := range n.states[s].EpsilonTransitions() {
			if !closure.Contains(next) {
				closure.Add(next)
				frontier = append(frontier, next)
			}
		}
	}
	return toStateIDs(closure)
}

// Move returns the set of states reachable from any state in states by a
// single non-ε transition on symbol — Move(S, c) in spec §9's Glossary.
func (n *NFA) Move(states []StateID, symbol byte) []StateID {
	out := newStateSet()
	for _, s := range states {
		for _, next := range n.states[s].Transitions(symbol) {
			out.Add(next)
		}
	}
	return toStateIDs(out)
}

// toStateIDs drains a treeset in ascending order (the order its comparator
// imposes) into a plain slice, giving every caller a deterministic subset
// representation to canonicalize on.
func toStateIDs(s *treeset.Set) []StateID {
	vals := s.Values()
	out := make([]StateID, len(vals))
	for i, v := range vals {
		out[i] = v.(StateID)
	}
	return out
}

// IntersectsAccept reports whether states contains the NFA's accepting
// state.
func (n *NFA) IntersectsAccept(states []StateID) bool {
	return fp.Any(states, func(s StateID) bool { return s == n.accept })
}

// Simulate decides whether input is in the language of n. It maintains a
// current set of states, initialized to the ε-closure of {start}; for each
// input character it computes move(current, c) then its ε-closure and
// replaces current with the result. It accepts iff the final current set
// intersects the accepting states.
//
// Characters outside the alphabet simply produce an empty move set, which
// correctly propagates to rejection — no error is ever returned.
func (n *NFA) Simulate(input string) bool {
	current := n.EpsilonClosure([]StateID{n.start})
	tracer().Debugf("simulate: start closure = %v", current)
	for i := 0; i < len(input); i++ {
		c := input[i]
		moved := n.Move(current, c)
		current = n.EpsilonClosure(moved)
		tracer().Debugf("simulate: after %q, current = %v", c, current)
		if len(current) == 0 {
			break
		}
	}
	accept := n.IntersectsAccept(current)
	tracer().Infof("simulate(%q) = %v", input, accept)
	return accept
}

// Simulate is a package-level convenience matching the operation table in
// spec §6: simulate_nfa(NFA, input) -> bool.
func Simulate(n *NFA, input string) bool {
	return n.Simulate(input)
}
