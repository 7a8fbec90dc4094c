package multisequence

import (
	"github.com/coregx/byteseek/automaton"
	"github.com/coregx/byteseek/sequence"
)

// generalTrie backs MultiSequenceMatcher over sequences that are not all
// literal byte strings (e.g. a case-insensitive string, whose positions
// hold 2-byte Sets, mixed into the same pattern set as plain literals).
//
// Grounded directly on spec.md §4.3: "iterate over the contributing
// sequences; for each, walk from the initial state, creating transitions
// for each required byte and attaching the sequence to the terminal
// state". Built on automaton.Builder rather than GlushkovBuilder, since a
// trie has no repetition/alternation fragment algebra to thread through —
// it is one linear chain of transitions per sequence, all starting at the
// shared start state. Sequences are not given a chance to share prefix
// states here (unlike a classic byte trie), because sharing would require
// comparing two bytematcher.Matcher values for equality, which spec.md's
// data model does not define; the resulting automaton is a non-deterministic
// bundle of chains rather than a true trie, matched by following every
// reachable state at once (the same technique automaton.Step already
// supports for Glushkov NFAs).
type generalTrie struct {
	auto   *automaton.Automaton
	start  automaton.StateID
	minLen int
	maxLen int
}

func newGeneralTrie(sequences []sequence.Matcher, minLen, maxLen int) *generalTrie {
	b := automaton.NewBuilder()
	start := b.Start()
	for _, s := range sequences {
		cur := start
		for i := 0; i < s.Len(); i++ {
			next := b.NewState()
			b.AddTransition(cur, s.MatcherAt(i), next)
			cur = next
		}
		b.AddPayload(cur, s)
	}
	auto := b.Build(false)
	return &generalTrie{auto: auto, start: auto.Start(), minLen: minLen, maxLen: maxLen}
}

func (t *generalTrie) MinLen() int { return t.minLen }
func (t *generalTrie) MaxLen() int { return t.maxLen }

// FirstMatch walks every chain abreast from the start state, consuming
// bytes from source starting at pos, and returns the first sequence found
// attached to a final state reached along the way — per spec.md §4.3,
// stopping "when there is no next transition for the current byte [or]
// when the input is exhausted".
func (t *generalTrie) FirstMatch(source []byte, pos int) (Match, bool) {
	if pos+t.minLen > len(source) {
		return Match{}, false
	}
	states := []automaton.StateID{t.start}
	depth := 0
	for {
		for _, s := range states {
			if t.auto.IsFinal(s) {
				for _, p := range t.auto.Payloads(s) {
					return Match{Pos: pos, Seq: p.(sequence.Matcher)}, true
				}
			}
		}
		if pos+depth >= len(source) {
			return Match{}, false
		}
		b := source[pos+depth]
		var next []automaton.StateID
		for _, s := range states {
			next = append(next, t.auto.Step(s, b)...)
		}
		if len(next) == 0 {
			return Match{}, false
		}
		states = next
		depth++
	}
}

// AllMatches walks the same chains as FirstMatch but keeps going past the
// first hit, collecting every sequence attached to a final state reached
// along the way (shorter sequences that are prefixes of longer ones in
// the same pattern set all surface here).
func (t *generalTrie) AllMatches(source []byte, pos int) []Match {
	if pos+t.minLen > len(source) {
		return nil
	}
	var out []Match
	states := []automaton.StateID{t.start}
	depth := 0
	for {
		for _, s := range states {
			if t.auto.IsFinal(s) {
				for _, p := range t.auto.Payloads(s) {
					out = append(out, Match{Pos: pos, Seq: p.(sequence.Matcher)})
				}
			}
		}
		if pos+depth >= len(source) {
			return out
		}
		b := source[pos+depth]
		var next []automaton.StateID
		for _, s := range states {
			next = append(next, t.auto.Step(s, b)...)
		}
		if len(next) == 0 {
			return out
		}
		states = next
		depth++
	}
}
