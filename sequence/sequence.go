// Package sequence implements SequenceMatcher (spec.md §3/§4.2 C2): an
// ordered, fixed-length sequence of bytematcher.Matcher values, matched
// against a buffer, a window.Reader, or repeated/reversed/sliced into new
// views over the same backing storage.
//
// Grounded on literal/seq.go's Literal/Seq byte-sequence operations
// (prefix/suffix slicing, concatenation) from the teacher, generalized
// here from a filtering-only primitive into a full matching primitive,
// plus the window-spanning match algorithm from spec.md §4.2 which the
// teacher's in-memory-only literals have no analogue for.
package sequence

import (
	"github.com/coregx/byteseek/byteseekerr"
	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/window"
)

// Matcher is an ordered sequence of bytematcher.Matcher values of fixed
// length n >= 1.
type Matcher interface {
	// Len returns n, the sequence length.
	Len() int

	// MatcherAt returns the ByteMatcher at position i, 0 <= i < Len().
	// Panics if i is out of range (an index accessor, per spec.md §7
	// IndexOutOfBounds is a call-site failure).
	MatcherAt(i int) bytematcher.Matcher

	// Matches reports whether the sequence matches buf at pos, bounds
	// checking first: out-of-range pos is a mismatch (false), not an error.
	Matches(buf []byte, pos int) bool

	// MatchesNoCheck matches buf at pos without a bounds check; pos+Len()
	// must not exceed len(buf) or behaviour is undefined (caller's
	// responsibility, per spec.md §7).
	MatchesNoCheck(buf []byte, pos int) bool

	// MatchesReader matches starting at absolute position pos in r,
	// transparently spanning window boundaries.
	MatchesReader(r window.Reader, pos int64) (bool, error)

	// Subsequence returns a view over [begin, end), sharing backing
	// storage with the receiver. end defaults to Len() when called via
	// SubsequenceFrom.
	Subsequence(begin, end int) (Matcher, error)

	// Reverse returns a view matching the same bytes in reverse order.
	Reverse() Matcher

	// Repeat returns a sequence equivalent to k concatenated copies of
	// the receiver. Repeat(1) returns the receiver itself.
	Repeat(k int) (Matcher, error)

	// ToRegex renders the sequence as pattern syntax (spec.md §6).
	ToRegex(pretty bool) string
}

// New builds a Matcher from an ordered slice of ByteMatchers. When every
// element is a OneByte matcher, the result degenerates to the
// byte-string fast path (spec.md §4.2).
func New(matchers []bytematcher.Matcher) (Matcher, error) {
	if len(matchers) == 0 {
		return nil, byteseekerr.NewArgumentError("sequence must have length >= 1")
	}
	if allOneByte(matchers) {
		bytes := make([]byte, len(matchers))
		for i, m := range matchers {
			bytes[i] = oneByteValue(m)
		}
		return NewByteSequence(bytes), nil
	}
	return newGeneral(matchers), nil
}

func allOneByte(matchers []bytematcher.Matcher) bool {
	for _, m := range matchers {
		if m.Kind() != bytematcher.KindOneByte {
			return false
		}
	}
	return true
}

func oneByteValue(m bytematcher.Matcher) byte {
	// KindOneByte matches exactly one byte; find it via MatchingBytes
	// rather than reaching into bytematcher internals.
	bytes := m.MatchingBytes()
	return bytes[0]
}

// matchesReaderGeneric implements the window-spanning match algorithm
// from spec.md §4.2 in terms of MatcherAt, shared by both concrete
// sequence types: obtain the window containing pos, match against it up
// to its end (or until the sequence is fully consumed), then repeat from
// the next unconsumed absolute position until done or a window is
// unavailable.
func matchesReaderGeneric(m Matcher, r window.Reader, pos int64) (bool, error) {
	n := m.Len()
	consumed := 0
	for consumed < n {
		w, err := r.Window(pos + int64(consumed))
		if err != nil {
			return false, err
		}
		if w == nil {
			return false, nil
		}
		abs := pos + int64(consumed)
		limit := w.Start + int64(w.Length)
		for abs < limit && consumed < n {
			b := w.Array[abs-w.Start]
			if !m.MatcherAt(consumed).Matches(b) {
				return false, nil
			}
			consumed++
			abs++
		}
	}
	return true, nil
}
