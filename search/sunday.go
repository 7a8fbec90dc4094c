package search

import "github.com/coregx/byteseek/sequence"

// SundaySearcher implements the Sunday Quick Search algorithm for a single
// sequence.Matcher (spec.md §4.6.2): like Horspool, but it looks one byte
// past the pattern end, which lets the shift table discard alignments
// Horspool's in-window lookup cannot.
type SundaySearcher struct {
	seq   sequence.Matcher
	shift *ShiftTable
}

// NewSunday builds a Sunday searcher for seq.
func NewSunday(seq sequence.Matcher) *SundaySearcher {
	m := seq.Len()
	return &SundaySearcher{
		seq:   seq,
		shift: newShiftTable(func() *[256]int { return buildSundayShift(seq, m) }),
	}
}

// buildSundayShift implements spec.md §4.6.2: default m+1; for i in
// [0, m], shift[b] = min(shift[b], m-i) for every b accepted at position
// i.
func buildSundayShift(seq sequence.Matcher, m int) *[256]int {
	var t [256]int
	for i := range t {
		t[i] = m + 1
	}
	for i := 0; i <= m-1; i++ {
		v := m - i
		for _, b := range seq.MatcherAt(i).MatchingBytes() {
			if v < t[b] {
				t[b] = v
			}
		}
	}
	return &t
}

// SundayForwardIter iterates forward match positions for a SundaySearcher.
type SundayForwardIter struct {
	s      *SundaySearcher
	source []byte
	pos    int
	limit  int
}

// Forward returns an iterator reporting positions in [from, min(to,
// len(source))-m] where seq matches, ascending. Sunday requires one byte
// of look-ahead past the pattern end, so the shift lookup is guarded by a
// bounds check before reading source[pos+m].
func (s *SundaySearcher) Forward(source []byte, from, to int) *SundayForwardIter {
	if to > len(source) {
		to = len(source)
	}
	return &SundayForwardIter{s: s, source: source, pos: from, limit: to}
}

// Next returns the next match position, or ok=false when the search is
// exhausted.
func (it *SundayForwardIter) Next() (pos int, ok bool) {
	m := it.s.seq.Len()
	n := len(it.source)
	for it.pos+m <= it.limit {
		p := it.pos
		matched := it.s.seq.MatchesNoCheck(it.source, p)
		if p+m >= n {
			// No look-ahead byte available: this is the last possible
			// alignment, so the loop ends after reporting or rejecting it.
			it.pos = it.limit
		} else {
			it.pos += it.s.shift.At(it.source[p+m])
		}
		if matched {
			return p, true
		}
	}
	return 0, false
}

// ForwardAll drains a fresh Forward iterator to completion.
func (s *SundaySearcher) ForwardAll(source []byte, from, to int) []int {
	var out []int
	it := s.Forward(source, from, to)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}
