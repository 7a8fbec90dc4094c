package compiler

import (
	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/parser"
	"github.com/coregx/byteseek/sequence"
)

// isSequenceCompilable reports whether n (and every descendant) can be
// expressed as a fixed-length SequenceMatcher: no ALT/MANY/ONE_TO_MANY/
// OPTIONAL anywhere, and any REPEAT has equal Min and Max (spec.md §4.5:
// "for variable bounds, produce an automaton").
func isSequenceCompilable(n *parser.Node) bool {
	switch n.Kind {
	case parser.KindByte, parser.KindAny, parser.KindAllBitmask, parser.KindAnyBitmask, parser.KindRange, parser.KindSet:
		return true
	case parser.KindCaseSensitiveString, parser.KindCaseInsensitiveString:
		return true
	case parser.KindSequence:
		for _, c := range n.Children {
			if !isSequenceCompilable(c) {
				return false
			}
		}
		return true
	case parser.KindRepeat:
		return n.Min == n.Max && isSequenceCompilable(n.Child())
	default:
		return false
	}
}

// compileSequence builds a sequence.Matcher from an isSequenceCompilable
// node, by flattening every descendant down to a single []bytematcher.Matcher
// and handing it to sequence.New.
func compileSequence(n *parser.Node) (sequence.Matcher, error) {
	matchers, err := appendSequenceMatchers(nil, n)
	if err != nil {
		return nil, err
	}
	return sequence.New(matchers)
}

func appendSequenceMatchers(out []bytematcher.Matcher, n *parser.Node) ([]bytematcher.Matcher, error) {
	switch n.Kind {
	case parser.KindByte, parser.KindAny, parser.KindAllBitmask, parser.KindAnyBitmask, parser.KindRange, parser.KindSet:
		m, err := compileByteMatcher(n)
		if err != nil {
			return nil, err
		}
		return append(out, m), nil
	case parser.KindCaseSensitiveString:
		for i := 0; i < len(n.Str); i++ {
			out = append(out, bytematcher.One(n.Str[i]))
		}
		return out, nil
	case parser.KindCaseInsensitiveString:
		for i := 0; i < len(n.Str); i++ {
			out = append(out, caseInsensitiveMatcher(n.Str[i]))
		}
		return out, nil
	case parser.KindSequence:
		for _, c := range n.Children {
			var err error
			out, err = appendSequenceMatchers(out, c)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case parser.KindRepeat:
		if n.Min != n.Max {
			return nil, compileErrorf(n, "variable-bound repeat cannot compile to a fixed-length sequence")
		}
		for i := 0; i < n.Min; i++ {
			var err error
			out, err = appendSequenceMatchers(out, n.Child())
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return nil, compileErrorf(n, "node requires automaton construction, not a fixed-length sequence")
	}
}

// caseInsensitiveMatcher implements spec.md §4.5's CASE_INSENSITIVE_STRING
// row: an ASCII letter becomes the 2-byte {lower, upper} set, anything else
// stays a literal OneByte.
func caseInsensitiveMatcher(c byte) bytematcher.Matcher {
	switch {
	case c >= 'a' && c <= 'z':
		return bytematcher.NewSet([]byte{c, c - 'a' + 'A'})
	case c >= 'A' && c <= 'Z':
		return bytematcher.NewSet([]byte{c, c - 'A' + 'a'})
	default:
		return bytematcher.One(c)
	}
}
