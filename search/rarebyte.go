package search

import (
	"github.com/coregx/byteseek/sequence"
	"github.com/coregx/byteseek/simd"
)

// RareByteSearcher accelerates a literal sequence.Matcher by scanning for
// its rarest byte with simd.Memchr instead of stepping through the shift
// table one alignment at a time. It only applies to sequences whose every
// position accepts exactly one byte (MatchingBytes() singleton) — anything
// with a set, range or bitmask falls outside the rare-byte heuristic and
// should use HorspoolSearcher instead.
type RareByteSearcher struct {
	seq       sequence.Matcher
	rareByte  byte
	rareIndex int
}

// NewRareByte builds a rare-byte searcher over seq, or returns ok=false if
// seq is not a fully literal sequence (every position a singleton byte).
func NewRareByte(seq sequence.Matcher) (*RareByteSearcher, bool) {
	lit := make([]byte, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		bs := seq.MatcherAt(i).MatchingBytes()
		if len(bs) != 1 {
			return nil, false
		}
		lit[i] = bs[0]
	}
	rareByte, rareIndex := simd.RarestByte(lit)
	return &RareByteSearcher{seq: seq, rareByte: rareByte, rareIndex: rareIndex}, true
}

// RareByteForwardIter iterates forward hits for a RareByteSearcher.
type RareByteForwardIter struct {
	r      *RareByteSearcher
	source []byte
	pos    int
	limit  int
}

// Forward returns an iterator over positions in [from, min(to,
// len(source))-m] where seq matches, ascending.
func (r *RareByteSearcher) Forward(source []byte, from, to int) *RareByteForwardIter {
	if to > len(source) {
		to = len(source)
	}
	return &RareByteForwardIter{r: r, source: source, pos: from, limit: to}
}

// Next returns the next match position, or ok=false when the search is
// exhausted. Each step uses simd.Memchr to jump straight to the next
// occurrence of the sequence's rarest byte, anchoring the candidate
// alignment at that byte's index within the sequence before verifying the
// full match.
func (it *RareByteForwardIter) Next() (pos int, ok bool) {
	m := it.r.seq.Len()
	for {
		if it.pos+m > it.limit {
			return 0, false
		}
		scanFrom := it.pos + it.r.rareIndex
		if scanFrom >= len(it.source) {
			return 0, false
		}
		window := it.source[scanFrom:]
		rel := simd.Memchr(window, it.r.rareByte)
		if rel < 0 {
			return 0, false
		}
		candidate := scanFrom + rel - it.r.rareIndex
		it.pos = candidate + 1
		if candidate+m > it.limit {
			return 0, false
		}
		if it.r.seq.MatchesNoCheck(it.source, candidate) {
			return candidate, true
		}
	}
}

// ForwardAll drains a fresh Forward iterator to completion.
func (r *RareByteSearcher) ForwardAll(source []byte, from, to int) []int {
	var out []int
	it := r.Forward(source, from, to)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}
