package compiler

import (
	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/parser"
)

// isAtomicByteNode reports whether n compiles directly to a single
// bytematcher.Matcher with no sequence or automaton structure.
func isAtomicByteNode(n *parser.Node) bool {
	switch n.Kind {
	case parser.KindByte, parser.KindAny, parser.KindAllBitmask, parser.KindAnyBitmask, parser.KindRange, parser.KindSet:
		return true
	default:
		return false
	}
}

// compileByteMatcher implements spec.md §4.5's BYTE/ALL_BITMASK/ANY_BITMASK/
// ANY/SET/INVERTED_SET/RANGE rows.
func compileByteMatcher(n *parser.Node) (bytematcher.Matcher, error) {
	switch n.Kind {
	case parser.KindByte:
		return bytematcher.One(n.Byte), nil
	case parser.KindAny:
		return bytematcher.Any(), nil
	case parser.KindAllBitmask:
		return bytematcher.AllBits(n.Mask), nil
	case parser.KindAnyBitmask:
		return bytematcher.AnyBits(n.Mask), nil
	case parser.KindRange:
		return bytematcher.NewRange(n.Lo, n.Hi), nil
	case parser.KindSet:
		var members []byte
		for _, c := range n.Children {
			cm, err := compileByteMatcher(c)
			if err != nil {
				return bytematcher.Matcher{}, err
			}
			members = append(members, cm.MatchingBytes()...)
		}
		set := bytematcher.FromSet(members)
		if n.Inverted {
			set = bytematcher.Invert(set)
		}
		return set, nil
	default:
		return bytematcher.Matcher{}, compileErrorf(n, "not a byte-level node")
	}
}
