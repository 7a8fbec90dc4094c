// Package multisequence implements MultiSequenceMatcher (spec.md §3/§4.3
// C3): a set of SequenceMatchers queryable by absolute position, able to
// report either the first matching sequence or all of them.
//
// Internally this is backed by a trie of byte transitions, as spec.md
// requires. Two backends share the Matcher interface:
//
//   - literalTrie wraps the teacher's own multi-pattern dependency,
//     github.com/coregx/ahocorasick, for the common case where every
//     contributing sequence is a literal byte string (spec.md §4.5's
//     CASE_SENSITIVE_STRING compiled alternatives). This is the "wire it,
//     don't reimplement it" path.
//   - generalTrie builds a true byte-transition trie over arbitrary
//     sequence.Matcher values (so a set-valued position — e.g. from a
//     case-insensitive string, or a [...] class inside one branch of the
//     alternation — still participates correctly), grounded directly on
//     spec.md §4.3's construction/matching algorithm and built on the
//     automaton package's arena.
//
// Build picks literalTrie whenever every sequence degenerates to a
// *sequence.ByteSequence, and generalTrie otherwise.
package multisequence

import (
	"github.com/coregx/byteseek/byteseekerr"
	"github.com/coregx/byteseek/sequence"
)

// Match is one MultiSequenceMatcher hit: the absolute position at which
// some contributing sequence aligns, and which sequence it was.
type Match struct {
	Pos int
	Seq sequence.Matcher
}

// Matcher is a set of SequenceMatchers queryable by absolute position.
type Matcher interface {
	// MinLen returns the minimum length across all contributing sequences.
	MinLen() int

	// MaxLen returns the maximum length across all contributing sequences.
	MaxLen() int

	// FirstMatch returns the first contributing sequence that matches at
	// pos, or ok=false if none does.
	FirstMatch(source []byte, pos int) (m Match, ok bool)

	// AllMatches returns every contributing sequence that matches at pos,
	// in no particular guaranteed order.
	AllMatches(source []byte, pos int) []Match
}

// Build constructs a Matcher over sequences. sequences must be non-empty.
func Build(sequences []sequence.Matcher) (Matcher, error) {
	if len(sequences) == 0 {
		return nil, byteseekerr.NewArgumentError("multisequence matcher needs at least one sequence")
	}
	minLen, maxLen := sequences[0].Len(), sequences[0].Len()
	allLiteral := true
	for _, s := range sequences {
		if s.Len() < minLen {
			minLen = s.Len()
		}
		if s.Len() > maxLen {
			maxLen = s.Len()
		}
		if _, ok := s.(*sequence.ByteSequence); !ok {
			allLiteral = false
		}
	}

	if allLiteral {
		m, err := newLiteralTrie(sequences, minLen, maxLen)
		if err == nil {
			return m, nil
		}
		// Fall through to the general trie if the ahocorasick backend
		// rejects the pattern set (e.g. duplicate/empty literal) rather
		// than failing the whole compile.
	}
	return newGeneralTrie(sequences, minLen, maxLen), nil
}
