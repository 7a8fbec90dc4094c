package automaton

import (
	"testing"

	"github.com/coregx/byteseek/bytematcher"
)

func buildABC() *Automaton {
	g := NewGlushkovBuilder()
	a := g.Symbol(bytematcher.One('a'))
	b := g.Symbol(bytematcher.One('b'))
	c := g.Symbol(bytematcher.One('c'))
	abc := g.Concat(g.Concat(a, b), c)
	return g.Finish(abc)
}

func TestGlushkovConcatMatchesLiteral(t *testing.T) {
	auto := buildABC()
	state := auto.Start()
	for _, c := range []byte("abc") {
		next := auto.StepDeterministic(state, c)
		if next == InvalidState {
			t.Fatalf("no transition on %q from state %d", c, state)
		}
		state = next
	}
	if !auto.IsFinal(state) {
		t.Fatal("expected final state after consuming \"abc\"")
	}
}

func TestGlushkovStarMatchesZeroOrMore(t *testing.T) {
	g := NewGlushkovBuilder()
	a := g.Star(g.Symbol(bytematcher.One('a')))
	auto := g.Finish(a)

	if !auto.IsFinal(auto.Start()) {
		t.Fatal("star of a symbol should be nullable (final at start)")
	}
	state := auto.Start()
	for i := 0; i < 5; i++ {
		state = auto.StepDeterministic(state, 'a')
		if state == InvalidState {
			t.Fatalf("expected 'a' to loop back at repetition %d", i)
		}
		if !auto.IsFinal(state) {
			t.Fatalf("star should be final after every repetition (iteration %d)", i)
		}
	}
}

func TestGlushkovUnionMatchesEitherBranch(t *testing.T) {
	g := NewGlushkovBuilder()
	cat := g.Concat(g.Symbol(bytematcher.One('c')), g.Symbol(bytematcher.One('a')))
	cat = g.Concat(cat, g.Symbol(bytematcher.One('t')))
	dog := g.Concat(g.Symbol(bytematcher.One('d')), g.Symbol(bytematcher.One('o')))
	dog = g.Concat(dog, g.Symbol(bytematcher.One('g')))
	alt := g.Union(cat, dog)
	auto := g.Finish(alt)

	for _, word := range []string{"cat", "dog"} {
		states := []StateID{auto.Start()}
		for _, c := range []byte(word) {
			var next []StateID
			for _, s := range states {
				next = append(next, auto.Step(s, c)...)
			}
			states = next
			if len(states) == 0 {
				t.Fatalf("word %q: no states reachable", word)
			}
		}
		finalReached := false
		for _, s := range states {
			if auto.IsFinal(s) {
				finalReached = true
			}
		}
		if !finalReached {
			t.Fatalf("word %q should reach a final state", word)
		}
	}
}

func TestDeterminize(t *testing.T) {
	auto := buildABC()
	dfa := auto.Determinize()
	if !dfa.Deterministic() {
		t.Fatal("Determinize should mark the result deterministic")
	}
	state := dfa.Start()
	for _, c := range []byte("abc") {
		state = dfa.StepDeterministic(state, c)
		if state == InvalidState {
			t.Fatalf("no deterministic transition on %q", c)
		}
	}
	if !dfa.IsFinal(state) {
		t.Fatal("expected DFA to accept \"abc\"")
	}
}

func TestClonePreservesStructure(t *testing.T) {
	auto := buildABC()
	clone := auto.Clone()
	if clone.NumStates() != auto.NumStates() {
		t.Fatalf("clone NumStates = %d, want %d", clone.NumStates(), auto.NumStates())
	}
	state := clone.Start()
	for _, c := range []byte("abc") {
		state = clone.StepDeterministic(state, c)
		if state == InvalidState {
			t.Fatalf("clone lost transition on %q", c)
		}
	}
	if !clone.IsFinal(state) {
		t.Fatal("clone should still accept \"abc\"")
	}
}
