package compiler

import (
	"github.com/coregx/byteseek/byteseekerr"
	"github.com/coregx/byteseek/multisequence"
	"github.com/coregx/byteseek/parser"
	"github.com/coregx/byteseek/sequence"
)

// CompileMulti compiles each of nodes into a sequence.Matcher and builds a
// multisequence.Matcher trie over them (spec.md §4.3), for callers (e.g.
// cmd/byteseek's multi-pattern mode) that need to search for several
// patterns in one pass rather than compiling and running one searcher per
// pattern. Every node must be sequence-compilable; anything needing
// automaton construction (ALT, MANY, ...) is a Compile error here — use
// CompileAutomaton for that node individually instead.
func CompileMulti(nodes []*parser.Node) (multisequence.Matcher, error) {
	return CompileMultiWithConfig(nodes, DefaultConfig())
}

// CompileMultiWithConfig is CompileMulti with an explicit Config, rejecting
// a pattern set whose compiled sequences sum to more than cfg.MaxTrieSize
// bytes before handing them to multisequence.Build.
func CompileMultiWithConfig(nodes []*parser.Node, cfg Config) (multisequence.Matcher, error) {
	if len(nodes) == 0 {
		return nil, byteseekerr.NewArgumentError("CompileMulti needs at least one pattern")
	}
	seqs := make([]sequence.Matcher, len(nodes))
	total := 0
	for i, n := range nodes {
		s, err := CompileSequence(n)
		if err != nil {
			return nil, err
		}
		seqs[i] = s
		total += s.Len()
	}
	if cfg.MaxTrieSize > 0 && total > cfg.MaxTrieSize {
		return nil, compileErrorf(nodes[0], "pattern set exceeds MaxTrieSize (%d > %d total bytes)", total, cfg.MaxTrieSize)
	}
	return multisequence.Build(seqs)
}
