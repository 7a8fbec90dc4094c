package automaton

import "github.com/coregx/byteseek/bytematcher"

// GlushkovBuilder builds a Glushkov (position) automaton: one state per
// symbol occurrence plus the shared start state, with no epsilon
// transitions — exactly the construction spec.md §4.4/§9 calls for.
//
// Each combinator (Symbol, Concat, Union, Star, Plus, Optional) operates
// on Fragments: a symbol occurrence's entry points (First) and exit
// points (Last), plus whether it can match the empty string (Nullable).
// Edges between positions are added lazily by Concat/Star/Plus, once the
// follow relationship between two fragments is known — this is what
// keeps the automaton free of epsilon transitions, at the cost of
// needing the symbol table (symbolOf) to look up a target position's
// matcher when wiring a new predecessor to it.
type GlushkovBuilder struct {
	b        *Builder
	symbolOf map[StateID]bytematcher.Matcher
}

// NewGlushkovBuilder returns a builder ready to accept Symbol calls.
func NewGlushkovBuilder() *GlushkovBuilder {
	return &GlushkovBuilder{
		b:        NewBuilder(),
		symbolOf: make(map[StateID]bytematcher.Matcher),
	}
}

// Fragment is a sub-automaton under construction: its entry positions
// (First), exit positions (Last), and whether it accepts the empty
// string (Nullable).
type Fragment struct {
	Nullable bool
	First    []StateID
	Last     []StateID
}

// Symbol returns a fragment for a single ByteMatcher occurrence.
func (g *GlushkovBuilder) Symbol(m bytematcher.Matcher) Fragment {
	q := g.b.NewState()
	g.symbolOf[q] = m
	return Fragment{First: []StateID{q}, Last: []StateID{q}}
}

// Concat returns the fragment for left followed by right, wiring an edge
// from every exit position of left to every entry position of right.
func (g *GlushkovBuilder) Concat(left, right Fragment) Fragment {
	for _, p := range left.Last {
		for _, q := range right.First {
			g.b.AddTransition(p, g.symbolOf[q], q)
		}
	}
	first := left.First
	if left.Nullable {
		first = unionIDs(left.First, right.First)
	}
	last := right.Last
	if right.Nullable {
		last = unionIDs(left.Last, right.Last)
	}
	return Fragment{Nullable: left.Nullable && right.Nullable, First: first, Last: last}
}

// Union returns the fragment for an alternation of branches: no new edges
// are needed, only a union of entry/exit positions.
func (g *GlushkovBuilder) Union(branches ...Fragment) Fragment {
	out := Fragment{}
	for _, f := range branches {
		out.Nullable = out.Nullable || f.Nullable
		out.First = unionIDs(out.First, f.First)
		out.Last = unionIDs(out.Last, f.Last)
	}
	return out
}

// Star returns the fragment for zero-or-more repetitions of inner
// (MANY), adding loop-back edges from every exit position to every
// entry position.
func (g *GlushkovBuilder) Star(inner Fragment) Fragment {
	g.loopBack(inner)
	return Fragment{Nullable: true, First: inner.First, Last: inner.Last}
}

// Plus returns the fragment for one-or-more repetitions of inner
// (ONE_TO_MANY): same loop-back edges as Star, but nullability is
// inherited from inner rather than forced true.
func (g *GlushkovBuilder) Plus(inner Fragment) Fragment {
	g.loopBack(inner)
	return Fragment{Nullable: inner.Nullable, First: inner.First, Last: inner.Last}
}

// Optional returns the fragment for zero-or-one occurrences of inner.
func (g *GlushkovBuilder) Optional(inner Fragment) Fragment {
	return Fragment{Nullable: true, First: inner.First, Last: inner.Last}
}

func (g *GlushkovBuilder) loopBack(inner Fragment) {
	for _, p := range inner.Last {
		for _, q := range inner.First {
			g.b.AddTransition(p, g.symbolOf[q], q)
		}
	}
}

// Finish wires the shared start state to top's entry positions and marks
// top's exit positions (plus the start state, if top is nullable) as
// final, then freezes the automaton. top must be the fragment for the
// whole pattern.
func (g *GlushkovBuilder) Finish(top Fragment) *Automaton {
	start := g.b.Start()
	for _, q := range top.First {
		g.b.AddTransition(start, g.symbolOf[q], q)
	}
	for _, q := range top.Last {
		g.b.SetFinal(q)
	}
	if top.Nullable {
		g.b.SetFinal(start)
	}
	return g.b.Build(false)
}

func unionIDs(a, b []StateID) []StateID {
	seen := make(map[StateID]bool, len(a)+len(b))
	out := make([]StateID, 0, len(a)+len(b))
	for _, id := range a {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range b {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
