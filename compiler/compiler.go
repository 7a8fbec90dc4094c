// Package compiler implements C6 (spec.md §3/§4.5): turning a parser.Node
// pattern tree into an immutable matcher. Three targets exist depending on
// what the node needs, per spec.md's table:
//
//   - a bytematcher.Matcher, for the byte-level node kinds (BYTE,
//     ALL_BITMASK, ANY_BITMASK, ANY, SET, INVERTED_SET, RANGE);
//   - a sequence.Matcher, for fixed-length concatenations (strings,
//     SEQUENCE, fixed-count REPEAT) built entirely from byte-level nodes;
//   - an automaton.Automaton, for anything needing Glushkov construction
//     (ALT, MANY, ONE_TO_MANY, OPTIONAL, variable-bound REPEAT, or any of
//     those nested inside a SEQUENCE/REPEAT).
//
// Grounded on nfa/compile.go's node-kind dispatch (a function per AST node
// kind, recursing into children), retargeted from regexp/syntax.Regexp
// onto this package's own parser.Node kinds.
package compiler

import (
	"github.com/coregx/byteseek/automaton"
	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/parser"
	"github.com/coregx/byteseek/sequence"
)

// ResultKind identifies which field of Result is populated.
type ResultKind int

const (
	// ResultMatcher means Result.Matcher holds the compiled output.
	ResultMatcher ResultKind = iota
	// ResultSequence means Result.Sequence holds the compiled output.
	ResultSequence
	// ResultAutomaton means Result.Automaton holds the compiled output.
	ResultAutomaton
)

// Result is the output of Compile: exactly one of Matcher, Sequence, or
// Automaton is valid, selected by Kind.
type Result struct {
	Kind      ResultKind
	Matcher   bytematcher.Matcher
	Sequence  sequence.Matcher
	Automaton *automaton.Automaton
}

// Compile converts a parse tree node into the cheapest matcher
// representation that expresses it: a single ByteMatcher when possible,
// otherwise a SequenceMatcher, otherwise an Automaton.
func Compile(n *parser.Node) (Result, error) {
	if isAtomicByteNode(n) {
		m, err := compileByteMatcher(n)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultMatcher, Matcher: m}, nil
	}
	if isSequenceCompilable(n) {
		s, err := compileSequence(n)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultSequence, Sequence: s}, nil
	}
	a, err := compileAutomaton(n)
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: ResultAutomaton, Automaton: a}, nil
}

// CompileMatcher compiles n, requiring the result to be a single
// ByteMatcher; any other node kind is a Compile error.
func CompileMatcher(n *parser.Node) (bytematcher.Matcher, error) {
	return compileByteMatcher(n)
}

// CompileSequence compiles n, requiring the result to be a SequenceMatcher;
// any node kind needing an automaton is a Compile error.
func CompileSequence(n *parser.Node) (sequence.Matcher, error) {
	if !isSequenceCompilable(n) {
		return nil, compileErrorf(n, "node requires automaton construction, not a fixed-length sequence")
	}
	return compileSequence(n)
}

// CompileAutomaton compiles n via Glushkov construction (spec.md §4.4),
// using DefaultConfig's MaxAutomatonStates limit.
func CompileAutomaton(n *parser.Node) (*automaton.Automaton, error) {
	return compileAutomaton(n)
}

// CompileAutomatonWithConfig is CompileAutomaton with an explicit Config,
// rejecting a pattern whose Glushkov construction allocates more than
// cfg.MaxAutomatonStates states.
func CompileAutomatonWithConfig(n *parser.Node, cfg Config) (*automaton.Automaton, error) {
	return compileAutomatonWithConfig(n, cfg)
}
