package parser

import "testing"

func mustParse(t *testing.T, pattern string) *Node {
	t.Helper()
	n, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return n
}

func TestParseHexByte(t *testing.T) {
	n := mustParse(t, "4d")
	if n.Kind != KindByte || n.Byte != 0x4d {
		t.Fatalf("got %+v, want KindByte 0x4d", n)
	}
}

func TestParseAny(t *testing.T) {
	n := mustParse(t, ".")
	if n.Kind != KindAny {
		t.Fatalf("got %+v, want KindAny", n)
	}
}

func TestParseCaseSensitiveString(t *testing.T) {
	n := mustParse(t, "'Here'")
	if n.Kind != KindCaseSensitiveString || n.Str != "Here" {
		t.Fatalf("got %+v, want CASE_SENSITIVE_STRING \"Here\"", n)
	}
}

func TestParseCaseInsensitiveString(t *testing.T) {
	n := mustParse(t, "`HtMl`")
	if n.Kind != KindCaseInsensitiveString || n.Str != "HtMl" {
		t.Fatalf("got %+v, want CASE_INSENSITIVE_STRING \"HtMl\"", n)
	}
}

func TestParseBitmasks(t *testing.T) {
	n := mustParse(t, "&0f")
	if n.Kind != KindAllBitmask || n.Mask != 0x0f {
		t.Fatalf("got %+v, want AllBitmask 0x0f", n)
	}
	n = mustParse(t, "~0f")
	if n.Kind != KindAnyBitmask || n.Mask != 0x0f {
		t.Fatalf("got %+v, want AnyBitmask 0x0f", n)
	}
}

func TestParseSet(t *testing.T) {
	n := mustParse(t, "[09 0a 0d 20]")
	if n.Kind != KindSet || n.Inverted {
		t.Fatalf("got %+v, want non-inverted KindSet", n)
	}
	want := []byte{0x09, 0x0a, 0x0d, 0x20}
	if len(n.Children) != len(want) {
		t.Fatalf("got %d children, want %d", len(n.Children), len(want))
	}
	for i, w := range want {
		if n.Children[i].Kind != KindByte || n.Children[i].Byte != w {
			t.Fatalf("child %d = %+v, want byte %02x", i, n.Children[i], w)
		}
	}
}

func TestParseInvertedSetWithRange(t *testing.T) {
	n := mustParse(t, "[^41-5a]")
	if n.Kind != KindSet || !n.Inverted {
		t.Fatalf("got %+v, want inverted KindSet", n)
	}
	if len(n.Children) != 1 || n.Children[0].Kind != KindRange {
		t.Fatalf("got %+v, want one KindRange child", n.Children)
	}
	if n.Children[0].Lo != 0x41 || n.Children[0].Hi != 0x5a {
		t.Fatalf("got range [%02x,%02x], want [41,5a]", n.Children[0].Lo, n.Children[0].Hi)
	}
}

func TestParseQuantifiers(t *testing.T) {
	cases := []struct {
		pattern string
		kind    Kind
	}{
		{"41?", KindOptional},
		{"41*", KindMany},
		{"41+", KindOneToMany},
	}
	for _, c := range cases {
		n := mustParse(t, c.pattern)
		if n.Kind != c.kind {
			t.Fatalf("Parse(%q) kind = %v, want %v", c.pattern, n.Kind, c.kind)
		}
		if n.Child().Kind != KindByte || n.Child().Byte != 0x41 {
			t.Fatalf("Parse(%q) child = %+v, want byte 0x41", c.pattern, n.Child())
		}
	}
}

func TestParseRepeatBounds(t *testing.T) {
	n := mustParse(t, "41{3}")
	if n.Kind != KindRepeat || n.Min != 3 || n.Max != 3 {
		t.Fatalf("got %+v, want Repeat{3,3}", n)
	}
	n = mustParse(t, "41{2,5}")
	if n.Kind != KindRepeat || n.Min != 2 || n.Max != 5 {
		t.Fatalf("got %+v, want Repeat{2,5}", n)
	}
	n = mustParse(t, "41{2,*}")
	if n.Kind != KindRepeat || n.Min != 2 || n.Max != -1 {
		t.Fatalf("got %+v, want Repeat{2,-1}", n)
	}
}

func TestParseRepeatBoundsInvalid(t *testing.T) {
	if _, err := Parse("41{5,2}"); err == nil {
		t.Fatal("expected error for max < min")
	}
}

func TestParseRepeatBoundTooLarge(t *testing.T) {
	if _, err := Parse("41{4294967296}"); err == nil {
		t.Fatal("expected error for a repeat bound beyond uint32 range")
	}
}

func TestParseAlternationAndGrouping(t *testing.T) {
	n := mustParse(t, "('cat' | 'dog')")
	if n.Kind != KindAlt || len(n.Children) != 2 {
		t.Fatalf("got %+v, want 2-branch KindAlt", n)
	}
}

func TestParseSequence(t *testing.T) {
	n := mustParse(t, "41 42 43")
	if n.Kind != KindSequence || len(n.Children) != 3 {
		t.Fatalf("got %+v, want 3-element KindSequence", n)
	}
}

func TestParseCommentsAndWhitespace(t *testing.T) {
	n := mustParse(t, "41 # a byte\n42")
	if n.Kind != KindSequence || len(n.Children) != 2 {
		t.Fatalf("got %+v, want 2-element sequence (comment stripped)", n)
	}
}

func TestParseBackslashShorthand(t *testing.T) {
	n := mustParse(t, `\d`)
	if n.Kind != KindRange || n.Lo != 0x30 || n.Hi != 0x39 {
		t.Fatalf("got %+v, want digit range", n)
	}
	n = mustParse(t, `\D`)
	if n.Kind != KindSet || !n.Inverted {
		t.Fatalf("got %+v, want inverted set for \\D", n)
	}
}

func TestParseEmptySetIsError(t *testing.T) {
	if _, err := Parse("[]"); err == nil {
		t.Fatal("expected error for empty set")
	}
}

func TestParseUnterminatedSetIsError(t *testing.T) {
	if _, err := Parse("[09"); err == nil {
		t.Fatal("expected error for unterminated set")
	}
}

func TestParseTrailingGarbageIsError(t *testing.T) {
	if _, err := Parse("41 )"); err == nil {
		t.Fatal("expected error for unmatched ')'")
	}
}
