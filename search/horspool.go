package search

import "github.com/coregx/byteseek/sequence"

// HorspoolSearcher implements Boyer-Moore-Horspool search for a single
// sequence.Matcher (spec.md §4.6.1).
type HorspoolSearcher struct {
	seq           sequence.Matcher
	forwardShift  *ShiftTable
	backwardShift *ShiftTable
	finalFlag     bool
}

// NewHorspool builds a forward+backward Horspool searcher for seq.
func NewHorspool(seq sequence.Matcher) *HorspoolSearcher {
	return newHorspool(seq, false)
}

// NewHorspoolFinalFlag builds a Horspool searcher using the "FinalFlag"
// reordering from spec.md §4.6.1: a full Matches check only runs when the
// looked-up byte is among those accepted at the sequence's final
// position. Correctness is identical to NewHorspool; it only changes when
// the (already required) full check is skipped.
func NewHorspoolFinalFlag(seq sequence.Matcher) *HorspoolSearcher {
	return newHorspool(seq, true)
}

func newHorspool(seq sequence.Matcher, finalFlag bool) *HorspoolSearcher {
	return newHorspoolWithConfig(seq, finalFlag, DefaultConfig())
}

// NewHorspoolWithConfig builds a Horspool searcher using cfg's cache
// policy, e.g. CacheEager to pay the shift-table build cost up front.
func NewHorspoolWithConfig(seq sequence.Matcher, cfg Config) *HorspoolSearcher {
	return newHorspoolWithConfig(seq, false, cfg)
}

func newHorspoolWithConfig(seq sequence.Matcher, finalFlag bool, cfg Config) *HorspoolSearcher {
	m := seq.Len()
	return &HorspoolSearcher{
		seq:           seq,
		forwardShift:  newShiftTableWithPolicy(func() *[256]int { return buildForwardShift(seq, m) }, cfg.CachePolicy),
		backwardShift: newShiftTableWithPolicy(func() *[256]int { return buildBackwardShift(seq, m) }, cfg.CachePolicy),
		finalFlag:     finalFlag,
	}
}

// buildForwardShift implements spec.md §4.6.1's forward table: default m;
// for i in [0, m-2], shift[b] = min(shift[b], m-1-i) for every b accepted
// at position i. Position m-1 is deliberately excluded so every entry
// stays >= 1 (property 7 of spec.md §8), matching scenario S7 exactly.
func buildForwardShift(seq sequence.Matcher, m int) *[256]int {
	var t [256]int
	for i := range t {
		t[i] = m
	}
	for i := 0; i < m-1; i++ {
		v := m - 1 - i
		for _, b := range seq.MatcherAt(i).MatchingBytes() {
			if v < t[b] {
				t[b] = v
			}
		}
	}
	return &t
}

// buildBackwardShift mirrors buildForwardShift: default m; for i in
// [1, m-1], shift[b] = min(shift[b], i) for every b accepted at position
// i. Position 0 is excluded so every entry stays >= 1.
func buildBackwardShift(seq sequence.Matcher, m int) *[256]int {
	var t [256]int
	for i := range t {
		t[i] = m
	}
	for i := 1; i < m; i++ {
		for _, b := range seq.MatcherAt(i).MatchingBytes() {
			if i < t[b] {
				t[b] = i
			}
		}
	}
	return &t
}

func (h *HorspoolSearcher) finalByteCouldMatch(b byte) bool {
	if !h.finalFlag {
		return true
	}
	return h.seq.MatcherAt(h.seq.Len() - 1).Matches(b)
}

// ForwardIter is a stateful, restartable-only-by-construction iterator
// over forward match positions (spec.md §9's coroutine/iterator note).
type ForwardIter struct {
	h      *HorspoolSearcher
	source []byte
	pos    int
	limit  int
}

// Forward returns an iterator reporting positions in [from, min(to,
// len(source))-m] where seq matches, ascending.
func (h *HorspoolSearcher) Forward(source []byte, from, to int) *ForwardIter {
	if to > len(source) {
		to = len(source)
	}
	return &ForwardIter{h: h, source: source, pos: from, limit: to}
}

// Next returns the next match position, or ok=false when the search is
// exhausted.
func (it *ForwardIter) Next() (pos int, ok bool) {
	m := it.h.seq.Len()
	for it.pos+m <= it.limit {
		p := it.pos
		last := it.source[p+m-1]
		matched := it.h.finalByteCouldMatch(last) && it.h.seq.MatchesNoCheck(it.source, p)
		it.pos += it.h.forwardShift.At(last)
		if matched {
			return p, true
		}
	}
	return 0, false
}

// BackwardIter mirrors ForwardIter, descending.
type BackwardIter struct {
	h      *HorspoolSearcher
	source []byte
	pos    int
}

// Backward returns an iterator reporting positions <= from where seq
// matches, descending to 0.
func (h *HorspoolSearcher) Backward(source []byte, from int) *BackwardIter {
	return &BackwardIter{h: h, source: source, pos: from}
}

// Next returns the next match position (descending), or ok=false when the
// search is exhausted.
func (it *BackwardIter) Next() (pos int, ok bool) {
	m := it.h.seq.Len()
	for it.pos >= 0 {
		p := it.pos
		first := it.source[p]
		matched := it.h.seq.MatchesNoCheck(it.source, p)
		it.pos -= it.h.backwardShift.At(first)
		if matched {
			return p, true
		}
	}
	return 0, false
}

// ForwardAll drains a fresh Forward iterator to completion — a
// convenience wrapper for callers that don't need laziness.
func (h *HorspoolSearcher) ForwardAll(source []byte, from, to int) []int {
	var out []int
	it := h.Forward(source, from, to)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}
