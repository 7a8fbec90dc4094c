package search

import (
	"github.com/coregx/byteseek/multisequence"
	"github.com/coregx/byteseek/sequence"
)

// SetHorspoolSearcher generalizes Horspool to a set of sequences sharing a
// minimum length m (spec.md §4.6.3), verifying candidates through a
// multisequence.Matcher trie.
type SetHorspoolSearcher struct {
	multi         multisequence.Matcher
	minLen        int
	forwardShift  *ShiftTable
	backwardShift *ShiftTable
}

// NewSetHorspool builds a Set-Horspool searcher over sequences.
func NewSetHorspool(sequences []sequence.Matcher) (*SetHorspoolSearcher, error) {
	return NewSetHorspoolWithConfig(sequences, DefaultConfig())
}

// NewSetHorspoolWithConfig builds a Set-Horspool searcher using cfg's cache
// policy for both shift tables.
func NewSetHorspoolWithConfig(sequences []sequence.Matcher, cfg Config) (*SetHorspoolSearcher, error) {
	multi, err := multisequence.Build(sequences)
	if err != nil {
		return nil, err
	}
	m := multi.MinLen()
	forwardShift := newShiftTableWithPolicy(func() *[256]int { return buildSetHorspoolShift(sequences, m) }, cfg.CachePolicy)
	backwardShift := newShiftTableWithPolicy(func() *[256]int { return buildSetHorspoolBackwardShift(sequences, m) }, cfg.CachePolicy)
	return &SetHorspoolSearcher{multi: multi, minLen: m, forwardShift: forwardShift, backwardShift: backwardShift}, nil
}

// buildSetHorspoolShift implements spec.md §4.6.3: default m; for each
// sequence s and position i in [0, m-2] (within the shared minimum
// length m, excluding the final shared position so every entry stays
// positive), shift[b] = min(shift[b], m-1-i) for every b accepted at i.
func buildSetHorspoolShift(sequences []sequence.Matcher, m int) *[256]int {
	var t [256]int
	for i := range t {
		t[i] = m
	}
	for _, s := range sequences {
		for i := 0; i < m-1; i++ {
			v := m - 1 - i
			for _, b := range s.MatcherAt(i).MatchingBytes() {
				if v < t[b] {
					t[b] = v
				}
			}
		}
	}
	return &t
}

// buildSetHorspoolBackwardShift mirrors buildSetHorspoolShift for backward
// scanning: default m; for each sequence s and position i in [1, m-1]
// (excluding position 0 so every entry stays positive), shift[b] =
// min(shift[b], i) for every b accepted at i.
func buildSetHorspoolBackwardShift(sequences []sequence.Matcher, m int) *[256]int {
	var t [256]int
	for i := range t {
		t[i] = m
	}
	for _, s := range sequences {
		for i := 1; i < m; i++ {
			for _, b := range s.MatcherAt(i).MatchingBytes() {
				if i < t[b] {
					t[b] = i
				}
			}
		}
	}
	return &t
}

// SetForwardIter iterates forward hits for a SetHorspoolSearcher.
type SetForwardIter struct {
	s      *SetHorspoolSearcher
	source []byte
	pos    int
	limit  int
}

// Forward returns an iterator reporting every multisequence.Match starting
// in [from, min(to, len(source))-minLen], ascending by position; matches
// at the same position are emitted together before the loop advances
// (spec.md §4.6.5's "all matches at the same position" contract).
func (s *SetHorspoolSearcher) Forward(source []byte, from, to int) *SetForwardIter {
	if to > len(source) {
		to = len(source)
	}
	return &SetForwardIter{s: s, source: source, pos: from, limit: to}
}

// Next returns the next candidate's full match list, or ok=false when the
// search is exhausted. Callers interested in only the first match at each
// position should take matches[0].
func (it *SetForwardIter) Next() (matches []multisequence.Match, ok bool) {
	m := it.s.minLen
	for it.pos+m <= it.limit {
		p := it.pos
		last := it.source[p+m-1]
		all := it.s.multi.AllMatches(it.source, p)
		it.pos += it.s.forwardShift.At(last)
		if len(all) > 0 {
			return all, true
		}
	}
	return nil, false
}

// ForwardAll drains a fresh Forward iterator to completion, flattening all
// per-position matches into one ascending slice.
func (s *SetHorspoolSearcher) ForwardAll(source []byte, from, to int) []multisequence.Match {
	var out []multisequence.Match
	it := s.Forward(source, from, to)
	for {
		ms, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, ms...)
	}
	return out
}

// SetBackwardIter mirrors SetForwardIter, descending.
type SetBackwardIter struct {
	s      *SetHorspoolSearcher
	source []byte
	pos    int
}

// Backward returns an iterator reporting every multisequence.Match starting
// at or before from, descending to 0 (spec.md:136's blanket "every §4.6
// searcher honours forward and backward directions" requirement).
func (s *SetHorspoolSearcher) Backward(source []byte, from int) *SetBackwardIter {
	return &SetBackwardIter{s: s, source: source, pos: from}
}

// Next returns the next candidate's full match list (descending), or
// ok=false when the search is exhausted.
func (it *SetBackwardIter) Next() (matches []multisequence.Match, ok bool) {
	m := it.s.minLen
	for it.pos >= 0 {
		p := it.pos
		if p+m > len(it.source) {
			it.pos--
			continue
		}
		first := it.source[p]
		all := it.s.multi.AllMatches(it.source, p)
		it.pos -= it.s.backwardShift.At(first)
		if len(all) > 0 {
			return all, true
		}
	}
	return nil, false
}

// BackwardAll drains a fresh Backward iterator to completion, flattening all
// per-position matches into one descending slice.
func (s *SetHorspoolSearcher) BackwardAll(source []byte, from int) []multisequence.Match {
	var out []multisequence.Match
	it := s.Backward(source, from)
	for {
		ms, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, ms...)
	}
	return out
}
