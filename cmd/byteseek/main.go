// Command byteseek is a minimal driver over the parser/compiler/search
// packages (spec.md §2 places command-line tooling out of core scope, but
// the repo still needs a driver/example binary — SPEC_FULL.md §6).
//
// Usage:
//
//	byteseek -pattern '<pattern text>' [-pattern '<another>' ...] [-backward] [-all] file...
//
// A single -pattern searches with Horspool; two or more literal -pattern
// flags are compiled into a multisequence.Matcher trie and searched with
// Set-Horspool, reporting which pattern matched at each offset. With no
// files, it reads stdin. Matching offsets are printed as "file:offset" (or
// "stdin:offset"), mirroring the teacher's own top-level usage examples
// (regex.go's doc comment) and the pack's grep-style CLIs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/compiler"
	"github.com/coregx/byteseek/multisequence"
	"github.com/coregx/byteseek/parser"
	"github.com/coregx/byteseek/search"
	"github.com/coregx/byteseek/sequence"
	"github.com/coregx/byteseek/window"
)

// patternList collects repeated -pattern flags, the idiom the pack's
// grep-style CLIs (funkybooboo-codecrafters-grep-go) use for a
// possibly-repeated flag.Value.
type patternList []string

func (p *patternList) String() string { return strings.Join(*p, ",") }
func (p *patternList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var patterns patternList
	flag.Var(&patterns, "pattern", "pattern text (spec.md §6 syntax), repeatable; 2+ builds a multi-pattern search")
	backward := flag.Bool("backward", false, "search backward from the end of each file")
	all := flag.Bool("all", false, "report every match (default reports only the first)")
	flag.Parse()

	if len(patterns) == 0 {
		log.Fatal("byteseek: at least one -pattern is required")
	}

	files := flag.Args()
	var run func(label string, data []byte) bool
	if len(patterns) == 1 {
		result := compileOne(patterns[0])
		run = func(label string, data []byte) bool { return searchOne(label, data, result, *backward, *all) }
	} else {
		s := compileMulti(patterns)
		run = func(label string, data []byte) bool { return searchMulti(label, data, s, *backward, *all) }
	}

	found := false
	if len(files) == 0 {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			log.Fatalf("byteseek: reading stdin: %v", err)
		}
		if run("stdin", data) {
			found = true
		}
	} else {
		for _, path := range files {
			data, err := readFile(path)
			if err != nil {
				log.Fatalf("byteseek: %v", err)
			}
			if run(path, data) {
				found = true
			}
		}
	}

	if found {
		os.Exit(0)
	}
	os.Exit(1)
}

func compileOne(pattern string) compiler.Result {
	node, err := parser.Parse(pattern)
	if err != nil {
		log.Fatalf("byteseek: %v", err)
	}
	result, err := compiler.Compile(node)
	if err != nil {
		log.Fatalf("byteseek: %v", err)
	}
	return result
}

// compileMulti parses and compiles every pattern into a sequence.Matcher
// and builds the Set-Horspool trie over them (spec.md §4.3/§4.6.3); any
// pattern needing automaton construction (ALT, MANY, ...) is rejected here
// since this CLI's multi-pattern mode only drives Set-Horspool.
func compileMulti(patterns []string) *search.SetHorspoolSearcher {
	nodes := make([]*parser.Node, len(patterns))
	for i, p := range patterns {
		node, err := parser.Parse(p)
		if err != nil {
			log.Fatalf("byteseek: %v", err)
		}
		nodes[i] = node
	}
	// CompileMulti builds (and discards) a multisequence.Matcher purely to
	// run its MaxTrieSize gate before committing to Set-Horspool, which
	// builds its own multisequence.Matcher internally from the same
	// sequence.Matcher values (see newSetHorspoolFromMulti).
	if _, err := compiler.CompileMulti(nodes); err != nil {
		log.Fatalf("byteseek: %v", err)
	}
	s, err := newSetHorspoolFromMulti(nodes)
	if err != nil {
		log.Fatalf("byteseek: %v", err)
	}
	return s
}

// newSetHorspoolFromMulti re-compiles each node into a sequence.Matcher
// (CompileMulti already validated they all compile and fit MaxTrieSize) and
// builds a search.SetHorspoolSearcher, since SetHorspoolSearcher builds its
// own multisequence.Matcher internally from sequence.Matcher values rather
// than accepting a pre-built trie.
func newSetHorspoolFromMulti(nodes []*parser.Node) (*search.SetHorspoolSearcher, error) {
	seqs := make([]sequence.Matcher, len(nodes))
	for i, n := range nodes {
		s, err := compiler.CompileSequence(n)
		if err != nil {
			return nil, err
		}
		seqs[i] = s
	}
	return search.NewSetHorspool(seqs)
}

// readFile loads path's full contents through a window.FileReader,
// exercising the WindowReader abstraction (spec.md §3 C4) even though the
// search package itself matches over a contiguous byte slice.
func readFile(path string) ([]byte, error) {
	r, err := window.NewFileReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	length, err := r.Length()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, length)
	for pos := int64(0); pos < length; {
		w, err := r.Window(pos)
		if err != nil {
			return nil, err
		}
		if w == nil {
			break
		}
		out = append(out, w.Array[:w.Length]...)
		pos += int64(w.Length)
	}
	return out, nil
}

// searchOne picks the cheapest applicable searcher for result (Horspool for
// a single sequence.Matcher or bytematcher.Matcher; see asSequence) and
// prints every reported offset, returning whether anything matched.
func searchOne(label string, data []byte, result compiler.Result, backward, all bool) bool {
	seq, err := asSequence(result)
	if err != nil {
		log.Fatalf("byteseek: %v", err)
	}

	if backward {
		h := search.NewHorspool(seq)
		it := h.Backward(data, len(data)-seq.Len())
		return printPositions(label, it.Next, all)
	}

	h := search.NewHorspool(seq)
	it := h.Forward(data, 0, len(data))
	return printPositions(label, it.Next, all)
}

// searchMulti drives Set-Horspool over s, printing each reported offset
// alongside which pattern matched there.
func searchMulti(label string, data []byte, s *search.SetHorspoolSearcher, backward, all bool) bool {
	found := false
	report := func(matches []multisequence.Match) {
		found = true
		for _, m := range matches {
			fmt.Printf("%s:%d (len %d)\n", label, m.Pos, m.Seq.Len())
		}
	}

	if backward {
		it := s.Backward(data, len(data)-1)
		for {
			matches, ok := it.Next()
			if !ok {
				break
			}
			report(matches)
			if !all {
				break
			}
		}
		return found
	}

	it := s.Forward(data, 0, len(data))
	for {
		matches, ok := it.Next()
		if !ok {
			break
		}
		report(matches)
		if !all {
			break
		}
	}
	return found
}

func printPositions(label string, next func() (int, bool), all bool) bool {
	found := false
	for {
		pos, ok := next()
		if !ok {
			break
		}
		found = true
		fmt.Printf("%s:%d\n", label, pos)
		if !all {
			break
		}
	}
	return found
}

// asSequence adapts a compiler.Result to a sequence.Matcher; automaton
// results (ALT/MANY/ONE_TO_MANY/OPTIONAL/variable-bound REPEAT) are not
// searchable by this CLI's static Horspool/Set-Horspool selection.
func asSequence(result compiler.Result) (sequence.Matcher, error) {
	switch result.Kind {
	case compiler.ResultSequence:
		return result.Sequence, nil
	case compiler.ResultMatcher:
		return sequence.New([]bytematcher.Matcher{result.Matcher})
	default:
		return nil, fmt.Errorf("pattern requires automaton matching, not supported by this CLI")
	}
}
