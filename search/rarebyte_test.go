package search

import (
	"testing"

	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/sequence"
)

func TestRareByteAgreesWithHorspoolOnLiteral(t *testing.T) {
	seq := literalSeq(t, "Gutenberg")
	source := []byte("AAAAAAAGutenbergAAAAGutenbergA")

	h := NewHorspool(seq).ForwardAll(source, 0, len(source))
	r, ok := NewRareByte(seq)
	if !ok {
		t.Fatalf("NewRareByte: expected literal sequence to qualify")
	}
	got := r.ForwardAll(source, 0, len(source))
	if !equalInts(h, got) {
		t.Fatalf("RareByte = %v, Horspool = %v, want equal", got, h)
	}
}

func TestRareByteRejectsNonLiteral(t *testing.T) {
	set := bytematcher.NewSet([]byte{0x09, 0x0a, 0x0d, 0x20})
	seq, err := sequence.New([]bytematcher.Matcher{set})
	if err != nil {
		t.Fatalf("sequence.New: %v", err)
	}
	if _, ok := NewRareByte(seq); ok {
		t.Fatalf("NewRareByte: expected a set-valued sequence to be rejected")
	}
}

func TestRareByteScenarioS1(t *testing.T) {
	seq := literalSeq(t, "Here")
	source := []byte("xHereHerey")
	r, ok := NewRareByte(seq)
	if !ok {
		t.Fatalf("NewRareByte: expected literal sequence to qualify")
	}
	got := r.ForwardAll(source, 0, len(source))
	want := []int{1, 5}
	if !equalInts(got, want) {
		t.Fatalf("forward = %v, want %v", got, want)
	}
}
