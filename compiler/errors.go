package compiler

import (
	"fmt"

	"github.com/coregx/byteseek/byteseekerr"
	"github.com/coregx/byteseek/parser"
)

func compileErrorf(n *parser.Node, format string, args ...any) error {
	return &byteseekerr.CompileError{Node: nodeName(n), Message: fmt.Sprintf(format, args...)}
}

func nodeName(n *parser.Node) string {
	switch n.Kind {
	case parser.KindByte:
		return "BYTE"
	case parser.KindAny:
		return "ANY"
	case parser.KindAllBitmask:
		return "ALL_BITMASK"
	case parser.KindAnyBitmask:
		return "ANY_BITMASK"
	case parser.KindRange:
		return "RANGE"
	case parser.KindSet:
		if n.Inverted {
			return "INVERTED_SET"
		}
		return "SET"
	case parser.KindCaseSensitiveString:
		return "CASE_SENSITIVE_STRING"
	case parser.KindCaseInsensitiveString:
		return "CASE_INSENSITIVE_STRING"
	case parser.KindSequence:
		return "SEQUENCE"
	case parser.KindRepeat:
		return "REPEAT"
	case parser.KindAlt:
		return "ALT"
	case parser.KindMany:
		return "MANY"
	case parser.KindOneToMany:
		return "ONE_TO_MANY"
	case parser.KindOptional:
		return "OPTIONAL"
	default:
		return "UNKNOWN"
	}
}
