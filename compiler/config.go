package compiler

// Config controls compiler-time limits, grounded on meta.Config's
// Config-struct-with-DefaultConfig shape (meta/config.go), generalized
// from regex-strategy/determinization limits to this package's own
// compile-time blowup risks: Glushkov automaton state count and
// multi-pattern trie size.
type Config struct {
	// MaxAutomatonStates caps the number of states CompileAutomatonWithConfig
	// (and CompileMultiWithConfig's generalTrie fallback, via automaton.Builder)
	// may allocate for one pattern tree. Guards against the same
	// exponential-state-count risk meta.Config.DeterminizationLimit guards
	// against in the teacher — a deeply nested MANY/REPEAT(n..m) pattern
	// expands to one Glushkov position per symbol occurrence, and an
	// attacker- or typo-supplied REPEAT bound should fail compilation
	// cleanly rather than exhaust memory.
	// Default: 10000.
	MaxAutomatonStates int

	// MaxTrieSize caps the total compiled length (bytes summed across every
	// sequence.Matcher) CompileMultiWithConfig will hand to
	// multisequence.Build. An attacker- or typo-supplied pattern list with
	// many long literals builds a trie proportional to that sum.
	// Default: 100000.
	MaxTrieSize int
}

// DefaultConfig returns a Config with sensible defaults for compiling
// individual patterns and small-to-moderate multi-pattern sets.
func DefaultConfig() Config {
	return Config{
		MaxAutomatonStates: 10000,
		MaxTrieSize:        100000,
	}
}
