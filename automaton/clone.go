package automaton

// Clone returns a deep copy of a, safe to mutate independently (e.g. via
// a fresh Builder reusing its states) without aliasing a's arena.
//
// Grounded on automata/DeepCopy.java's contract (spec.md §4.4, §9), but
// the arena-of-integer-IDs representation here makes the classic
// visited-set-keyed-by-identity problem moot: states are plain values in
// a slice, transitions already reference other states purely by integer
// index, and cycles (common in repeat/alternation constructions) never
// cause recursion because copying is a single linear pass over the
// slice — there is no pointer graph to walk.
func (a *Automaton) Clone() *Automaton {
	states := make([]State, len(a.states))
	for i, s := range a.states {
		states[i] = State{
			Transitions: append([]Transition(nil), s.Transitions...),
			Final:       s.Final,
			Payloads:    append([]any(nil), s.Payloads...),
		}
	}
	return &Automaton{
		states:        states,
		start:         a.start,
		deterministic: a.deterministic,
	}
}
