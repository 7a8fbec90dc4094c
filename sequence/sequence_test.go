package sequence

import (
	"testing"

	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/window"
)

func TestByteSequenceMatches(t *testing.T) {
	s := NewByteSequence([]byte("Here"))
	buf := []byte("xHereHerey")
	if !s.Matches(buf, 1) {
		t.Error("expected match at 1")
	}
	if !s.Matches(buf, 5) {
		t.Error("expected match at 5")
	}
	if s.Matches(buf, 0) {
		t.Error("expected no match at 0")
	}
	if s.Matches(buf, 7) { // out of bounds (7+4=11 > 10)
		t.Error("expected no match (out of bounds) at 7")
	}
}

func TestByteSequenceReverseInvolution(t *testing.T) {
	s := NewByteSequence([]byte("abcdef"))
	rev := s.Reverse()
	back := rev.Reverse()
	buf := []byte("abcdef")
	if !back.Matches(buf, 0) {
		t.Error("double-reverse should match the original bytes")
	}
	revBuf := []byte("fedcba")
	if !rev.Matches(revBuf, 0) {
		t.Error("reverse should match the byte-reversed buffer")
	}
}

func TestByteSequenceSubsequence(t *testing.T) {
	s := NewByteSequence([]byte("abcdefgh"))
	sub, err := s.Subsequence(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", sub.Len())
	}
	if !sub.Matches([]byte("cde"), 0) {
		t.Error("subsequence(2,5) of \"abcdefgh\" should match \"cde\"")
	}
}

func TestByteSequenceRepeat(t *testing.T) {
	s := NewByteSequence([]byte("ab"))
	rep, err := s.Repeat(3)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", rep.Len())
	}
	if !rep.Matches([]byte("ababab"), 0) {
		t.Error("repeat(3) of \"ab\" should match \"ababab\"")
	}
}

func TestGeneralSequenceCaseInsensitive(t *testing.T) {
	// HtMl, case-insensitive.
	matchers := make([]bytematcher.Matcher, 4)
	letters := "HtMl"
	for i, c := range letters {
		lower := byte(c | 0x20)
		upper := byte(c &^ 0x20)
		matchers[i] = bytematcher.NewSet([]byte{lower, upper})
	}
	s, err := New(matchers)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*ByteSequence); ok {
		t.Fatal("case-insensitive sequence should not degenerate to ByteSequence")
	}
	for _, candidate := range []string{"html", "HTML", "hTmL", "HtMl"} {
		if !s.Matches([]byte(candidate), 0) {
			t.Errorf("expected %q to match case-insensitive HtMl", candidate)
		}
	}
	if s.Matches([]byte("xtml"), 0) {
		t.Error("expected \"xtml\" not to match")
	}
}

func TestNewDegeneratesToByteSequence(t *testing.T) {
	matchers := []bytematcher.Matcher{bytematcher.One('a'), bytematcher.One('b')}
	s, err := New(matchers)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*ByteSequence); !ok {
		t.Fatal("all-OneByte sequence should degenerate to ByteSequence")
	}
}

// S6 from spec.md §8: a match that crosses a WindowReader boundary must
// behave identically to a contiguous buffer match.
func TestMatchesReaderAcrossWindowBoundary(t *testing.T) {
	data := []byte("AAAAAAAGutenberg") // 16 bytes, window size 8 -> boundary at 8
	r, err := newTestWindowReader(data, 8)
	if err != nil {
		t.Fatal(err)
	}
	s := NewByteSequence([]byte("Gutenberg"))
	ok, err := s.MatchesReader(r, 7)
	if err != nil || !ok {
		t.Fatalf("MatchesReader(7) = %v, %v, want true, nil", ok, err)
	}
	ok, err = s.MatchesReader(r, 6)
	if err != nil || ok {
		t.Fatalf("MatchesReader(6) = %v, %v, want false, nil", ok, err)
	}
}

func TestMatchesReaderEveryBoundaryPlacement(t *testing.T) {
	pattern := "Gutenberg"
	for windowSize := 1; windowSize <= len(pattern)+2; windowSize++ {
		data := []byte("xx" + pattern + "yy")
		r, err := newTestWindowReader(data, windowSize)
		if err != nil {
			t.Fatal(err)
		}
		s := NewByteSequence([]byte(pattern))
		ok, err := s.MatchesReader(r, 2)
		if err != nil || !ok {
			t.Errorf("windowSize=%d: MatchesReader(2) = %v, %v, want true, nil", windowSize, ok, err)
		}
	}
}

func newTestWindowReader(data []byte, blockSize int) (window.Reader, error) {
	return newFixedReader(data, blockSize), nil
}
