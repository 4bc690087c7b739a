package dfa

import (
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/rexfa/automaton/nfa"
	"golang.org/x/exp/slices"
)

// subsetRecord pairs a DFA state's canonical NFA-state subset with its
// assigned StateID, the same role the teacher's CFSMState.items /
// findStateByItems pairing plays for LR item sets in lr/tables.go.
type subsetRecord struct {
	canonical []nfa.StateID
	id        StateID
}

// subsetTable canonicalizes NFA-state subsets to DFA state IDs. The lookup
// key is a structhash digest of the sorted subset (spec §9: "represent each
// subset as a sorted sequence... use this as the lookup key"); because a
// hash is not a proof of equality, every hit is confirmed against the
// stored canonical slice before being trusted — subsets whose hashes collide
// share one bucket and are told apart by that comparison, never a wrong
// match.
type subsetTable struct {
	byHash map[string][]subsetRecord
}

func newSubsetTable() *subsetTable {
	return &subsetTable{byHash: make(map[string][]subsetRecord)}
}

func canonicalKey(sorted []nfa.StateID) string {
	h, err := structhash.Hash(sorted, 1)
	if err != nil {
		// structhash.Hash only fails on unhashable types; []nfa.StateID
		// is always hashable, so this path is unreachable in practice.
		panic("dfa: unable to hash NFA state subset: " + err.Error())
	}
	return h
}

// find returns the StateID previously assigned to this exact subset, if any.
func (t *subsetTable) find(sorted []nfa.StateID) (StateID, bool) {
	for _, rec := range t.byHash[canonicalKey(sorted)] {
		if slices.Equal(rec.canonical, sorted) {
			return rec.id, true
		}
	}
	return 0, false
}

func (t *subsetTable) insert(sorted []nfa.StateID, id StateID) {
	key := canonicalKey(sorted)
	t.byHash[key] = append(t.byHash[key], subsetRecord{canonical: sorted, id: id})
}

// FromNFA determinizes n via the subset construction (spec §4.5):
//
//  1. the DFA start state represents ε-closure({n.Start()});
//  2. a worklist of unprocessed DFA states is drained FIFO;
//  3. for each unprocessed state and each symbol in Σ, T = ε-closure(move(S, c))
//     is computed; if T is empty the transition is omitted (implicit reject),
//     otherwise a DFA state for T is looked up or created and the transition
//     is recorded;
//  4. a DFA state is accepting iff its subset intersects the NFA's accepting
//     set.
//
// Iteration over Σ is in ascending byte order and the worklist is processed
// FIFO (insertion order), so the constructed DFA is stable across runs —
// the same determinism property spec §4.5 requires of the teacher's CFSM
// construction in lr/tables.go (buildCFSM), on which this is directly
// modeled: addState/findStateByItems/addEdge there become insert/find/the
// Trans-table write here.
func FromNFA(n *nfa.NFA) *DFA {
	table := newSubsetTable()
	d := &DFA{alphabet: n.Alphabet()}
	symbols := n.Alphabet().Sorted()

	startClosure := n.EpsilonClosure([]nfa.StateID{n.Start()})
	d.start = d.addState(table, n, startClosure)

	worklist := arraylist.New()
	worklist.Add(d.start)

	for !worklist.Empty() {
		v, _ := worklist.Get(0)
		worklist.Remove(0)
		s := v.(StateID)
		subset := d.states[s].nfaStates
		for _, c := range symbols {
			moved := n.Move(subset, c)
			closure := n.EpsilonClosure(moved)
			if len(closure) == 0 {
				continue // implicit reject: no transition recorded
			}
			target, existed := table.find(closure)
			if !existed {
				target = d.addState(table, n, closure)
				worklist.Add(target)
			}
			d.states[s].Trans[c] = target
			tracer().Debugf("dfa state %d --%q--> %d", s, c, target)
		}
	}
	tracer().Infof("built DFA: %s", d)
	return d
}

// addState mints a fresh DFA state for subset (already an ε-closure), wires
// it into table for future dedup, and marks it accepting iff the subset
// contains the NFA's accepting state.
func (d *DFA) addState(table *subsetTable, n *nfa.NFA, subset []nfa.StateID) StateID {
	id := StateID(len(d.states))
	d.states = append(d.states, State{
		ID:        id,
		Trans:     make(map[byte]StateID),
		accepting: n.IntersectsAccept(subset),
		nfaStates: subset,
	})
	table.insert(subset, id)
	return id
}
