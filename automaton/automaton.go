// Package automaton implements the state/transition graph underlying
// spec.md §3/§4.4 C5: a directed graph of States linked by Transitions,
// each Transition carrying a ByteMatcher and a target State. The same
// type serves as both NFA (a byte may have several outgoing transitions
// whose matchers accept it) and DFA (Determinize collapses that down to
// one target per byte) — the spec.md distinction is a property of the
// graph, not a different Go type.
//
// Grounded on nfa/builder.go and nfa/nfa.go's arena-of-states design
// (states are plain structs in a slice, transitions hold integer target
// IDs, never pointers) and internal/sparse for state-set bookkeeping
// during subset construction — both kept from the teacher, generalized
// here from regexp/syntax-specific position automata to general
// byte-transition graphs carrying arbitrary payloads at final states
// (needed by multisequence's generalTrie, spec.md §4.3).
package automaton

import (
	"github.com/coregx/byteseek/bytematcher"
)

// StateID identifies a state within an Automaton's arena.
type StateID int32

// InvalidState is never a valid StateID.
const InvalidState StateID = -1

// Transition is one outgoing edge: take it when the current byte
// satisfies Matcher.
type Transition struct {
	Matcher bytematcher.Matcher
	Target  StateID
}

// State is one node in the automaton graph.
type State struct {
	Transitions []Transition
	Final       bool
	// Payloads holds values associated with a final state — e.g. the
	// sequence.Matcher(s) that end there, for the trie multi-sequence
	// matcher (spec.md §4.3's "final states carry the set of sequences
	// that end there").
	Payloads []any
}

// Automaton is an immutable, arena-indexed state graph. Build it with a
// Builder; once Build() returns, an Automaton is never mutated again
// (spec.md §1 Non-goals: "concurrent mutation of a matcher after
// construction").
type Automaton struct {
	states        []State
	start         StateID
	deterministic bool
}

// NumStates returns the number of states in the arena.
func (a *Automaton) NumStates() int { return len(a.states) }

// Start returns the automaton's start state.
func (a *Automaton) Start() StateID { return a.start }

// IsFinal reports whether id is an accepting state.
func (a *Automaton) IsFinal(id StateID) bool { return a.states[id].Final }

// Transitions returns id's outgoing transitions.
func (a *Automaton) Transitions(id StateID) []Transition { return a.states[id].Transitions }

// Payloads returns the values associated with id (only meaningful when
// IsFinal(id) is true).
func (a *Automaton) Payloads(id StateID) []any { return a.states[id].Payloads }

// Deterministic reports whether every state's transitions are guaranteed
// to have disjoint matchers (the result of Determinize, or a trie built
// that way from the start).
func (a *Automaton) Deterministic() bool { return a.deterministic }

// Step returns every state reachable from id on byte b. For a
// deterministic automaton this has at most one element.
func (a *Automaton) Step(id StateID, b byte) []StateID {
	var targets []StateID
	for _, t := range a.states[id].Transitions {
		if t.Matcher.Matches(b) {
			targets = append(targets, t.Target)
		}
	}
	return targets
}

// StepDeterministic returns the single state reachable from id on byte b,
// or InvalidState if none (or more than one, which indicates a's
// transitions are not actually disjoint — a builder bug, not a runtime
// condition callers need to recover from).
func (a *Automaton) StepDeterministic(id StateID, b byte) StateID {
	targets := a.Step(id, b)
	if len(targets) != 1 {
		return InvalidState
	}
	return targets[0]
}
