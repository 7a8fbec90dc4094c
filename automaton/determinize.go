package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/internal/sparse"
)

// Determinize runs the standard subset construction (spec.md §4.4) over
// a, producing an equivalent deterministic Automaton: every DFA state
// corresponds to a set of NFA states, and two DFA states are the same
// state exactly when their NFA subsets are equal (the deduplication
// invariant spec.md calls out explicitly).
//
// Grounded on nfa/composite_dfa.go's buildDFASubsetConstruction, adapted
// from that file's byte-equivalence-class table to direct iteration over
// all 256 byte values: a's alphabet is already bytes, so there is no
// class-reduction step to perform first, only the worklist/subset-keying
// loop itself.
func (a *Automaton) Determinize() *Automaton {
	b := NewBuilder()
	// Builder starts with one state (its own start, unused here); we
	// reuse builder.start as the DFA's start and discard the spare.
	startSet := closureIsNoop([]StateID{a.start})
	key := subsetKey(startSet)

	dfaOf := map[string]StateID{key: b.Start()}
	worklist := []subsetWork{{id: b.Start(), nfaSet: startSet}}

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		final := false
		var payloads []any
		for _, s := range item.nfaSet {
			if a.IsFinal(s) {
				final = true
				payloads = append(payloads, a.Payloads(s)...)
			}
		}
		if final {
			b.states[item.id].Final = true
			b.states[item.id].Payloads = payloads
		}

		for byteVal := 0; byteVal < 256; byteVal++ {
			v := byte(byteVal)
			next := stepSet(a, item.nfaSet, v)
			if len(next) == 0 {
				continue
			}
			nk := subsetKey(next)
			target, ok := dfaOf[nk]
			if !ok {
				target = b.NewState()
				dfaOf[nk] = target
				worklist = append(worklist, subsetWork{id: target, nfaSet: next})
			}
			b.AddTransition(item.id, bytematcher.One(v), target)
		}
	}

	return b.Build(true)
}

type subsetWork struct {
	id     StateID
	nfaSet []StateID
}

// stepSet computes the set of NFA states reachable from any state in set
// on byte v, deduplicated via a sparse set keyed by state ID.
func stepSet(a *Automaton, set []StateID, v byte) []StateID {
	seen := sparse.NewSeen(a.NumStates())
	var out []StateID
	for _, s := range set {
		for _, t := range a.Step(s, v) {
			if seen.Insert(int(t)) {
				out = append(out, t)
			}
		}
	}
	return out
}

// closureIsNoop exists because this automaton package's NFAs (built via
// GlushkovBuilder) carry no epsilon transitions, so the epsilon-closure
// step classic subset construction needs is the identity function here.
// Kept as a named no-op rather than inlined so a future epsilon-bearing
// NFA source only needs to change this one function.
func closureIsNoop(set []StateID) []StateID {
	return append([]StateID(nil), set...)
}

// subsetKey canonicalizes a set of StateIDs into a map key, realizing
// spec.md's "deduplication invariant for DFA states is equality of the
// NFA subset".
func subsetKey(set []StateID) string {
	sorted := append([]StateID(nil), set...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ",")
}
