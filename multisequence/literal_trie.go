package multisequence

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/byteseek/sequence"
)

// literalTrie backs MultiSequenceMatcher with the teacher's own
// third-party dependency, github.com/coregx/ahocorasick, whenever every
// contributing sequence is a literal byte string. The automaton already
// performs the byte-trie walk with failure links that spec.md §4.3
// describes; this type only adapts its (start, end) hits back into
// spec.md's position + matching-sequence shape, and filters results down
// to those whose start aligns with the queried position (ahocorasick
// reports matches ending at or after pos, not just ones starting at pos).
type literalTrie struct {
	automaton *ahocorasick.Automaton
	bySeq     map[int]sequence.Matcher // pattern index -> originating sequence
	minLen    int
	maxLen    int
}

func newLiteralTrie(sequences []sequence.Matcher, minLen, maxLen int) (*literalTrie, error) {
	builder := ahocorasick.NewBuilder()
	bySeq := make(map[int]sequence.Matcher, len(sequences))
	for i, s := range sequences {
		lit := s.(*sequence.ByteSequence)
		pattern := make([]byte, lit.Len())
		for j := 0; j < lit.Len(); j++ {
			pattern[j] = lit.MatcherAt(j).MatchingBytes()[0]
		}
		builder.AddPattern(pattern)
		bySeq[i] = s
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &literalTrie{automaton: automaton, bySeq: bySeq, minLen: minLen, maxLen: maxLen}, nil
}

func (t *literalTrie) MinLen() int { return t.minLen }
func (t *literalTrie) MaxLen() int { return t.maxLen }

// FirstMatch asks the automaton for the next match at or after pos; since
// ahocorasick reports the leftmost match, a hit whose Start equals pos is
// exactly spec.md §4.3's "start from the initial state at p" query.
func (t *literalTrie) FirstMatch(source []byte, pos int) (Match, bool) {
	if pos+t.minLen > len(source) {
		return Match{}, false
	}
	m := t.automaton.Find(source, pos)
	if m == nil || m.Start != pos {
		return Match{}, false
	}
	return Match{Pos: pos, Seq: t.bySeq[m.PatternID]}, true
}

// AllMatches checks every contributing sequence directly rather than
// relying on the automaton's single-match-per-query API, since more than
// one literal can start at the same position (one a prefix of another).
// This is the verification step a Set-Horspool searcher calls once per
// surviving candidate alignment, so its cost is bounded by the number of
// patterns rather than the haystack length.
func (t *literalTrie) AllMatches(source []byte, pos int) []Match {
	if pos+t.minLen > len(source) {
		return nil
	}
	var out []Match
	for _, s := range t.bySeq {
		if s.Matches(source, pos) {
			out = append(out, Match{Pos: pos, Seq: s})
		}
	}
	return out
}
