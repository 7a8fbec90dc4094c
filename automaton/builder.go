package automaton

import "github.com/coregx/byteseek/bytematcher"

// Builder constructs an Automaton incrementally: states and transitions
// are mutable while building, then frozen by Build (spec.md §3: "a
// mutable-at-build-time but frozen-after-compile list of outgoing
// transitions").
type Builder struct {
	states []State
	start  StateID
}

// NewBuilder returns a Builder with a single start state (state 0).
func NewBuilder() *Builder {
	b := &Builder{}
	b.start = b.NewState()
	return b
}

// NewState allocates a fresh, non-final state with no transitions and
// returns its ID.
func (b *Builder) NewState() StateID {
	b.states = append(b.states, State{})
	return StateID(len(b.states) - 1)
}

// Start returns the builder's start state ID.
func (b *Builder) Start() StateID { return b.start }

// SetStart overrides the start state (used when composing automaton
// fragments, e.g. concatenation threading a new start through).
func (b *Builder) SetStart(id StateID) { b.start = id }

// AddTransition adds an edge from -> to, taken when a byte satisfies m.
func (b *Builder) AddTransition(from StateID, m bytematcher.Matcher, to StateID) {
	b.states[from].Transitions = append(b.states[from].Transitions, Transition{
		Matcher: m,
		Target:  to,
	})
}

// SetFinal marks id as an accepting state.
func (b *Builder) SetFinal(id StateID) {
	b.states[id].Final = true
}

// AddPayload attaches a value to id's final-state payload list, implying
// SetFinal.
func (b *Builder) AddPayload(id StateID, payload any) {
	b.states[id].Final = true
	b.states[id].Payloads = append(b.states[id].Payloads, payload)
}

// NumStates returns the number of states allocated so far.
func (b *Builder) NumStates() int { return len(b.states) }

// Build freezes the builder into an immutable Automaton. deterministic
// should be true only when the caller guarantees every state's
// transitions have pairwise-disjoint matchers (true for tries built
// byte-by-byte and for Determinize's output).
func (b *Builder) Build(deterministic bool) *Automaton {
	return &Automaton{
		states:        b.states,
		start:         b.start,
		deterministic: deterministic,
	}
}
