package search

import (
	"github.com/coregx/byteseek/multisequence"
	"github.com/coregx/byteseek/sequence"
)

// NaiveSequenceSearcher walks every candidate position calling Matches
// directly, with no shift table. It is the correctness oracle for
// property 9 of spec.md §8: "running the naive searcher and any
// optimised searcher on the same input must produce identical position
// sequences."
type NaiveSequenceSearcher struct {
	seq sequence.Matcher
}

// NewNaiveSequence wraps seq for oracle search.
func NewNaiveSequence(seq sequence.Matcher) *NaiveSequenceSearcher {
	return &NaiveSequenceSearcher{seq: seq}
}

// ForwardAll returns every position in [from, min(to, len(source))-Len())
// where seq matches, ascending.
func (n *NaiveSequenceSearcher) ForwardAll(source []byte, from, to int) []int {
	m := n.seq.Len()
	if to > len(source) {
		to = len(source)
	}
	var out []int
	for p := from; p+m <= to; p++ {
		if n.seq.MatchesNoCheck(source, p) {
			out = append(out, p)
		}
	}
	return out
}

// BackwardAll returns every position in [0, from] where seq matches,
// descending.
func (n *NaiveSequenceSearcher) BackwardAll(source []byte, from int) []int {
	m := n.seq.Len()
	var out []int
	for p := from; p >= 0; p-- {
		if p+m <= len(source) && n.seq.MatchesNoCheck(source, p) {
			out = append(out, p)
		}
	}
	return out
}

// NaiveMultiSearcher is the multi-pattern analogue of
// NaiveSequenceSearcher, used as the oracle for SetHorspoolSearcher and
// WuManberSearcher.
type NaiveMultiSearcher struct {
	multi  multisequence.Matcher
	minLen int
}

// NewNaiveMulti wraps multi for oracle search.
func NewNaiveMulti(multi multisequence.Matcher) *NaiveMultiSearcher {
	return &NaiveMultiSearcher{multi: multi, minLen: multi.MinLen()}
}

// ForwardAll returns every multisequence.Match starting in [from,
// min(to, len(source))-minLen], ascending by position, all matches at a
// position grouped together.
func (n *NaiveMultiSearcher) ForwardAll(source []byte, from, to int) []multisequence.Match {
	if to > len(source) {
		to = len(source)
	}
	var out []multisequence.Match
	for p := from; p+n.minLen <= to; p++ {
		out = append(out, n.multi.AllMatches(source, p)...)
	}
	return out
}
