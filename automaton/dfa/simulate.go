package dfa

// Simulate decides whether input is in the language of d. Starting at the
// start state, it consumes input one character at a time: if a transition
// exists on the current character it advances, otherwise it rejects
// immediately (spec §4.6). Characters outside Σ necessarily have no
// transition and so reject the same way.
func (d *DFA) Simulate(input string) bool {
	state := d.start
	for i := 0; i < len(input); i++ {
		next, ok := d.states[state].Trans[input[i]]
		if !ok {
			return false
		}
		state = next
	}
	return d.IsAccepting(state)
}

// Simulate is a package-level convenience matching spec §6's operation
// table: simulate_dfa(DFA, input) -> bool.
func Simulate(d *DFA, input string) bool {
	return d.Simulate(input)
}
