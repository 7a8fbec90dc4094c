package search

import (
	"github.com/coregx/byteseek/multisequence"
	"github.com/coregx/byteseek/sequence"
)

// WuManberSearcher implements Wu-Manber multi-pattern search (spec.md
// §4.6.4): a hash of the last BlockSize bytes of the candidate alignment
// drives the shift table, instead of a single byte as in Set-Horspool.
type WuManberSearcher struct {
	multi         multisequence.Matcher
	minLen        int
	blockSize     int
	shift         map[uint32]int
	backwardShift map[uint32]int
	defShift      int
	finalFlag     bool
	sequences     []sequence.Matcher
}

// NewWuManber builds a Wu-Manber searcher over sequences, picking a block
// size of 2 or 3 bytes depending on the shared minimum length, per
// spec.md §4.6.4 ("typically 2 or 3 depending on pattern set size").
func NewWuManber(sequences []sequence.Matcher) (*WuManberSearcher, error) {
	return newWuManber(sequences, false, DefaultConfig())
}

// NewWuManberFinalFlag builds a Wu-Manber searcher using the same
// "FinalFlag" reordering NewHorspoolFinalFlag applies to single-sequence
// Horspool (spec.md §4.6.4's note that the FinalFlag optimization
// generalizes to every §4.6 searcher): a full AllMatches check only runs
// when the window's last byte is among those accepted at some sequence's
// final position. Correctness is identical to NewWuManber; it only
// changes when the (already required) full check is skipped.
func NewWuManberFinalFlag(sequences []sequence.Matcher) (*WuManberSearcher, error) {
	return newWuManber(sequences, true, DefaultConfig())
}

// NewWuManberWithConfig builds a Wu-Manber searcher using cfg's block-size
// override (if nonzero) and cache policy for both shift tables.
func NewWuManberWithConfig(sequences []sequence.Matcher, cfg Config) (*WuManberSearcher, error) {
	return newWuManber(sequences, false, cfg)
}

func newWuManber(sequences []sequence.Matcher, finalFlag bool, cfg Config) (*WuManberSearcher, error) {
	multi, err := multisequence.Build(sequences)
	if err != nil {
		return nil, err
	}
	m := multi.MinLen()
	b := cfg.WuManberBlockSize
	if b <= 0 {
		b = blockSizeFor(m, len(sequences))
	}
	if b > m {
		b = m
	}
	// Wu-Manber's block-hash maps have no ShiftTable-style lazy wrapper —
	// building them is a single pass over already-compiled sequences, cheap
	// enough that cfg.CachePolicy's eager/lazy distinction (which matters
	// for ShiftTable's per-byte-array build in Horspool/Set-Horspool) has
	// nothing to defer here.
	shift := buildWuManberShift(sequences, m, b)
	backwardShift := buildWuManberBackwardShift(sequences, m, b)
	return &WuManberSearcher{
		multi:         multi,
		minLen:        m,
		blockSize:     b,
		shift:         shift,
		backwardShift: backwardShift,
		defShift:      m - b + 1,
		finalFlag:     finalFlag,
		sequences:     sequences,
	}, nil
}

// finalByteCouldMatch reports whether b is accepted at the final shared
// position of at least one contributing sequence. Only consulted when
// finalFlag is set.
func (w *WuManberSearcher) finalByteCouldMatch(b byte) bool {
	if !w.finalFlag {
		return true
	}
	for _, s := range w.sequences {
		if s.MatcherAt(w.minLen - 1).Matches(b) {
			return true
		}
	}
	return false
}

func blockSizeFor(minLen, numSequences int) int {
	switch {
	case minLen >= 3 && numSequences <= 64:
		return 3
	case minLen >= 2:
		return 2
	default:
		return 1
	}
}

// buildWuManberShift computes shift[hash(block)] = min distance needed to
// bring some occurrence of block (at any non-final block position shared
// across all sequences) into alignment with the end of the m-byte window,
// mirroring Horspool's generalization from single bytes to B-byte blocks.
// Positions whose accepted-byte sets are not singletons are expanded by
// cartesian product (bounded: B <= 3 and per-position sets are typically
// small literal/case-fold alternatives).
func buildWuManberShift(sequences []sequence.Matcher, m, b int) map[uint32]int {
	shift := make(map[uint32]int)
	for _, s := range sequences {
		for i := 0; i < m-b; i++ {
			for _, block := range blockCombos(s, i, b) {
				h := hashBlock(block)
				v := m - b - i
				if cur, ok := shift[h]; !ok || v < cur {
					shift[h] = v
				}
			}
		}
	}
	return shift
}

func blockCombos(s sequence.Matcher, start, b int) [][]byte {
	product := [][]byte{{}}
	for i := 0; i < b; i++ {
		bytes := s.MatcherAt(start + i).MatchingBytes()
		next := make([][]byte, 0, len(product)*len(bytes))
		for _, prefix := range product {
			for _, v := range bytes {
				blk := make([]byte, len(prefix)+1)
				copy(blk, prefix)
				blk[len(prefix)] = v
				next = append(next, blk)
			}
		}
		product = next
	}
	return product
}

// buildWuManberBackwardShift mirrors buildWuManberShift for backward
// scanning: for each sequence s and block position i in [1, m-b] (bytes
// [i, i+b)), shift[hash(block)] = min(shift[hash], i). Position 0 is
// excluded so every entry stays positive, matching Horspool's backward
// shift exclusion of the final position.
func buildWuManberBackwardShift(sequences []sequence.Matcher, m, b int) map[uint32]int {
	shift := make(map[uint32]int)
	for _, s := range sequences {
		for i := 1; i <= m-b; i++ {
			for _, block := range blockCombos(s, i, b) {
				h := hashBlock(block)
				if cur, ok := shift[h]; !ok || i < cur {
					shift[h] = i
				}
			}
		}
	}
	return shift
}

func hashBlock(block []byte) uint32 {
	var h uint32
	for _, b := range block {
		h = h*131 + uint32(b)
	}
	return h
}

// WuManberForwardIter iterates forward hits for a WuManberSearcher.
type WuManberForwardIter struct {
	w      *WuManberSearcher
	source []byte
	pos    int
	limit  int
}

// Forward returns an iterator reporting every multisequence.Match starting
// in [from, min(to, len(source))-minLen], ascending.
func (w *WuManberSearcher) Forward(source []byte, from, to int) *WuManberForwardIter {
	if to > len(source) {
		to = len(source)
	}
	return &WuManberForwardIter{w: w, source: source, pos: from, limit: to}
}

// Next returns the next candidate's full match list, or ok=false when the
// search is exhausted.
func (it *WuManberForwardIter) Next() (matches []multisequence.Match, ok bool) {
	m := it.w.minLen
	b := it.w.blockSize
	for it.pos+m <= it.limit {
		p := it.pos
		block := it.source[p+m-b : p+m]
		last := it.source[p+m-1]
		var all []multisequence.Match
		if it.w.finalByteCouldMatch(last) {
			all = it.w.multi.AllMatches(it.source, p)
		}
		v, found := it.w.shift[hashBlock(block)]
		if !found {
			v = it.w.defShift
		}
		it.pos += v
		if len(all) > 0 {
			return all, true
		}
	}
	return nil, false
}

// ForwardAll drains a fresh Forward iterator to completion.
func (w *WuManberSearcher) ForwardAll(source []byte, from, to int) []multisequence.Match {
	var out []multisequence.Match
	it := w.Forward(source, from, to)
	for {
		ms, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, ms...)
	}
	return out
}

// WuManberBackwardIter mirrors WuManberForwardIter, descending.
type WuManberBackwardIter struct {
	w      *WuManberSearcher
	source []byte
	pos    int
}

// Backward returns an iterator reporting every multisequence.Match starting
// at or before from, descending to 0 (spec.md:136's blanket "every §4.6
// searcher honours forward and backward directions" requirement).
func (w *WuManberSearcher) Backward(source []byte, from int) *WuManberBackwardIter {
	return &WuManberBackwardIter{w: w, source: source, pos: from}
}

// Next returns the next candidate's full match list (descending), or
// ok=false when the search is exhausted.
func (it *WuManberBackwardIter) Next() (matches []multisequence.Match, ok bool) {
	m := it.w.minLen
	b := it.w.blockSize
	for it.pos >= 0 {
		p := it.pos
		if p+m > len(it.source) {
			it.pos--
			continue
		}
		block := it.source[p : p+b]
		all := it.w.multi.AllMatches(it.source, p)
		v, found := it.w.backwardShift[hashBlock(block)]
		if !found {
			v = it.w.defShift
		}
		it.pos -= v
		if len(all) > 0 {
			return all, true
		}
	}
	return nil, false
}

// BackwardAll drains a fresh Backward iterator to completion, flattening all
// per-position matches into one descending slice.
func (w *WuManberSearcher) BackwardAll(source []byte, from int) []multisequence.Match {
	var out []multisequence.Match
	it := w.Backward(source, from)
	for {
		ms, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, ms...)
	}
	return out
}
