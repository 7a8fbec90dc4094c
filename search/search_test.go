package search

import (
	"testing"

	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/multisequence"
	"github.com/coregx/byteseek/sequence"
)

func literalSeq(t *testing.T, s string) sequence.Matcher {
	t.Helper()
	return sequence.NewByteSequence([]byte(s))
}

// S1: Pattern 'Here' vs "xHereHerey": forward reports 1, 5; backward from
// end reports 5 then 1.
func TestHorspoolScenarioS1(t *testing.T) {
	seq := literalSeq(t, "Here")
	source := []byte("xHereHerey")
	h := NewHorspool(seq)

	got := h.ForwardAll(source, 0, len(source))
	want := []int{1, 5}
	if !equalInts(got, want) {
		t.Fatalf("forward = %v, want %v", got, want)
	}

	var backward []int
	it := h.Backward(source, len(source)-seq.Len())
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		backward = append(backward, p)
	}
	wantBackward := []int{5, 1}
	if !equalInts(backward, wantBackward) {
		t.Fatalf("backward = %v, want %v", backward, wantBackward)
	}
}

// S2: Pattern [09 0a 0d 20] (whitespace set) vs "a b\tc\nd": positions 1, 3, 5.
func TestHorspoolScenarioS2(t *testing.T) {
	whitespace := bytematcher.NewSet([]byte{0x09, 0x0a, 0x0d, 0x20})
	seq, err := sequence.New([]bytematcher.Matcher{whitespace})
	if err != nil {
		t.Fatalf("sequence.New: %v", err)
	}
	source := []byte("a b\tc\nd")
	h := NewHorspool(seq)
	got := h.ForwardAll(source, 0, len(source))
	want := []int{1, 3, 5}
	if !equalInts(got, want) {
		t.Fatalf("forward = %v, want %v", got, want)
	}
}

// S3: Pattern &0F against {0x0F, 0x1F, 0x7F, 0xF0, 0xFF, 0x00}: matches
// indices 0, 1, 2, 4.
func TestNaiveScenarioS3(t *testing.T) {
	allBits := bytematcher.AllBits(0x0f)
	seq, err := sequence.New([]bytematcher.Matcher{allBits})
	if err != nil {
		t.Fatalf("sequence.New: %v", err)
	}
	source := []byte{0x0f, 0x1f, 0x7f, 0xf0, 0xff, 0x00}
	n := NewNaiveSequence(seq)
	got := n.ForwardAll(source, 0, len(source))
	want := []int{0, 1, 2, 4}
	if !equalInts(got, want) {
		t.Fatalf("forward = %v, want %v", got, want)
	}
}

// S4: Multi-sequence trie {"Mid", "and"} vs "Midsommer and" using
// all_matches at each position: reports (0,"Mid") and (10,"and").
func TestSetHorspoolScenarioS4(t *testing.T) {
	mid := literalSeq(t, "Mid")
	and := literalSeq(t, "and")
	s, err := NewSetHorspool([]sequence.Matcher{mid, and})
	if err != nil {
		t.Fatalf("NewSetHorspool: %v", err)
	}
	source := []byte("Midsommer and")
	all := s.ForwardAll(source, 0, len(source))
	if len(all) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(all), all)
	}
	if all[0].Pos != 0 || all[1].Pos != 10 {
		t.Fatalf("got positions %d, %d, want 0, 10", all[0].Pos, all[1].Pos)
	}
}

// S5: Case-insensitive string `HtMl` vs "xhtmlHTMLhTmL": forward-all
// reports positions 1, 5, 9.
func TestHorspoolScenarioS5(t *testing.T) {
	matchers := make([]bytematcher.Matcher, len("HtMl"))
	for i, c := range []byte("HtMl") {
		lo, hi := caseFold(c)
		matchers[i] = bytematcher.NewSet([]byte{lo, hi})
	}
	seq, err := sequence.New(matchers)
	if err != nil {
		t.Fatalf("sequence.New: %v", err)
	}
	source := []byte("xhtmlHTMLhTmL")
	h := NewHorspool(seq)
	got := h.ForwardAll(source, 0, len(source))
	want := []int{1, 5, 9}
	if !equalInts(got, want) {
		t.Fatalf("forward = %v, want %v", got, want)
	}
}

func caseFold(c byte) (byte, byte) {
	if c >= 'a' && c <= 'z' {
		return c, c - 'a' + 'A'
	}
	if c >= 'A' && c <= 'Z' {
		return c, c - 'A' + 'a'
	}
	return c, c
}

// S6: WindowReader-equivalent byte array "AAAAAAAGutenberg" with pattern
// 'Gutenberg': forward search reports 7.
func TestHorspoolScenarioS6(t *testing.T) {
	seq := literalSeq(t, "Gutenberg")
	source := []byte("AAAAAAAGutenberg")
	h := NewHorspool(seq)
	got := h.ForwardAll(source, 0, len(source))
	want := []int{7}
	if !equalInts(got, want) {
		t.Fatalf("forward = %v, want %v", got, want)
	}
}

// S7: Horspool shift table for pattern 'abc' (m=3): default entries = 3;
// shift[0x61]=2, shift[0x62]=1, shift[0x63]=3.
func TestHorspoolScenarioS7(t *testing.T) {
	seq := literalSeq(t, "abc")
	h := NewHorspool(seq)
	if got := h.forwardShift.At('d'); got != 3 {
		t.Fatalf("default shift = %d, want 3", got)
	}
	if got := h.forwardShift.At('a'); got != 2 {
		t.Fatalf("shift['a'] = %d, want 2", got)
	}
	if got := h.forwardShift.At('b'); got != 1 {
		t.Fatalf("shift['b'] = %d, want 1", got)
	}
	if got := h.forwardShift.At('c'); got != 3 {
		t.Fatalf("shift['c'] = %d, want 3 (final position excluded)", got)
	}
}

func TestShiftTableAllEntriesPositive(t *testing.T) {
	seq := literalSeq(t, "abcdefgh")
	h := NewHorspool(seq)
	min, _, _ := h.forwardShift.Stats()
	if min <= 0 {
		t.Fatalf("min forward shift = %d, want > 0", min)
	}
	min, _, _ = h.backwardShift.Stats()
	if min <= 0 {
		t.Fatalf("min backward shift = %d, want > 0", min)
	}
}

func TestSundayMatchesHorspoolOnLiteral(t *testing.T) {
	seq := literalSeq(t, "Here")
	source := []byte("xHereHerey")
	h := NewHorspool(seq)
	s := NewSunday(seq)
	hGot := h.ForwardAll(source, 0, len(source))
	sGot := s.ForwardAll(source, 0, len(source))
	if !equalInts(hGot, sGot) {
		t.Fatalf("Sunday = %v, Horspool = %v, want equal", sGot, hGot)
	}
}

func TestHorspoolFinalFlagMatchesPlain(t *testing.T) {
	seq := literalSeq(t, "needle")
	source := []byte("a haystack with a needle buried inside, needle again")
	plain := NewHorspool(seq).ForwardAll(source, 0, len(source))
	flagged := NewHorspoolFinalFlag(seq).ForwardAll(source, 0, len(source))
	if !equalInts(plain, flagged) {
		t.Fatalf("FinalFlag = %v, plain = %v, want equal", flagged, plain)
	}
}

func TestNaiveOracleAgreesWithHorspoolRandomish(t *testing.T) {
	seq := literalSeq(t, "abab")
	source := []byte("ababababcababdabab")
	naive := NewNaiveSequence(seq).ForwardAll(source, 0, len(source))
	horspool := NewHorspool(seq).ForwardAll(source, 0, len(source))
	if !equalInts(naive, horspool) {
		t.Fatalf("naive = %v, horspool = %v, want equal (property 9)", naive, horspool)
	}
}

func TestWuManberAgreesWithSetHorspool(t *testing.T) {
	seqs := []sequence.Matcher{literalSeq(t, "cat"), literalSeq(t, "dog"), literalSeq(t, "catfish")}
	source := []byte("the catfish chased the dog while a cat watched")

	sh, err := NewSetHorspool(seqs)
	if err != nil {
		t.Fatalf("NewSetHorspool: %v", err)
	}
	wm, err := NewWuManber(seqs)
	if err != nil {
		t.Fatalf("NewWuManber: %v", err)
	}
	shGot := positionsOf(sh.ForwardAll(source, 0, len(source)))
	wmGot := positionsOf(wm.ForwardAll(source, 0, len(source)))
	if !equalInts(shGot, wmGot) {
		t.Fatalf("WuManber positions = %v, SetHorspool positions = %v, want equal", wmGot, shGot)
	}
}

func TestNaiveMultiOracleAgreesWithSetHorspool(t *testing.T) {
	seqs := []sequence.Matcher{literalSeq(t, "Mid"), literalSeq(t, "and")}
	source := []byte("Midsommer and Mid and")

	multi, err := multisequence.Build(seqs)
	if err != nil {
		t.Fatalf("multisequence.Build: %v", err)
	}
	naiveGot := positionsOf(NewNaiveMulti(multi).ForwardAll(source, 0, len(source)))

	sh, err := NewSetHorspool(seqs)
	if err != nil {
		t.Fatalf("NewSetHorspool: %v", err)
	}
	shGot := positionsOf(sh.ForwardAll(source, 0, len(source)))
	if !equalInts(naiveGot, shGot) {
		t.Fatalf("SetHorspool positions = %v, naive positions = %v, want equal (property 9)", shGot, naiveGot)
	}
}

func positionsOf(matches []multisequence.Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Pos
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// reverseInts returns a reversed copy, for comparing a descending Backward
// scan against an ascending Forward scan over the same source.
func reverseInts(a []int) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}
	return out
}

func TestSetHorspoolBackwardAgreesWithForward(t *testing.T) {
	mid := literalSeq(t, "Mid")
	and := literalSeq(t, "and")
	s, err := NewSetHorspool([]sequence.Matcher{mid, and})
	if err != nil {
		t.Fatalf("NewSetHorspool: %v", err)
	}
	source := []byte("Midsommer and")
	forward := positionsOf(s.ForwardAll(source, 0, len(source)))
	backward := positionsOf(s.BackwardAll(source, len(source)-1))
	if !equalInts(forward, reverseInts(backward)) {
		t.Fatalf("backward = %v, forward = %v (reversed should match)", backward, forward)
	}
}

func TestWuManberBackwardAgreesWithForward(t *testing.T) {
	seqs := []sequence.Matcher{literalSeq(t, "cat"), literalSeq(t, "dog"), literalSeq(t, "catfish")}
	source := []byte("the catfish chased the dog while a cat watched")
	wm, err := NewWuManber(seqs)
	if err != nil {
		t.Fatalf("NewWuManber: %v", err)
	}
	forward := positionsOf(wm.ForwardAll(source, 0, len(source)))
	backward := positionsOf(wm.BackwardAll(source, len(source)-1))
	if !equalInts(forward, reverseInts(backward)) {
		t.Fatalf("backward = %v, forward = %v (reversed should match)", backward, forward)
	}
}

func TestWuManberFinalFlagMatchesPlain(t *testing.T) {
	seqs := []sequence.Matcher{literalSeq(t, "cat"), literalSeq(t, "dog"), literalSeq(t, "catfish")}
	source := []byte("the catfish chased the dog while a cat watched")
	wm, err := NewWuManber(seqs)
	if err != nil {
		t.Fatalf("NewWuManber: %v", err)
	}
	wmFlag, err := NewWuManberFinalFlag(seqs)
	if err != nil {
		t.Fatalf("NewWuManberFinalFlag: %v", err)
	}
	plain := positionsOf(wm.ForwardAll(source, 0, len(source)))
	flagged := positionsOf(wmFlag.ForwardAll(source, 0, len(source)))
	if !equalInts(plain, flagged) {
		t.Fatalf("FinalFlag = %v, plain = %v, want equal", flagged, plain)
	}
}
