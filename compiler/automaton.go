package compiler

import (
	"github.com/coregx/byteseek/automaton"
	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/parser"
)

// compileAutomaton builds an automaton.Automaton for a node needing
// Glushkov construction (spec.md §4.5's ALT/MANY/ONE_TO_MANY/OPTIONAL row,
// plus any variable-bound REPEAT or SEQUENCE containing one of those),
// using DefaultConfig's limits.
func compileAutomaton(n *parser.Node) (*automaton.Automaton, error) {
	return compileAutomatonWithConfig(n, DefaultConfig())
}

func compileAutomatonWithConfig(n *parser.Node, cfg Config) (*automaton.Automaton, error) {
	g := automaton.NewGlushkovBuilder()
	top, err := compileFragment(g, n)
	if err != nil {
		return nil, err
	}
	a := g.Finish(top)
	if cfg.MaxAutomatonStates > 0 && a.NumStates() > cfg.MaxAutomatonStates {
		return nil, compileErrorf(n, "automaton exceeds MaxAutomatonStates (%d > %d)", a.NumStates(), cfg.MaxAutomatonStates)
	}
	return a, nil
}

// compileFragment recursively lowers n into a Glushkov Fragment, sharing g
// across the whole tree so every symbol occurrence lands in the same
// automaton.
func compileFragment(g *automaton.GlushkovBuilder, n *parser.Node) (automaton.Fragment, error) {
	switch n.Kind {
	case parser.KindByte, parser.KindAny, parser.KindAllBitmask, parser.KindAnyBitmask, parser.KindRange, parser.KindSet:
		m, err := compileByteMatcher(n)
		if err != nil {
			return automaton.Fragment{}, err
		}
		return g.Symbol(m), nil

	case parser.KindCaseSensitiveString:
		return stringFragment(g, n, func(c byte) bytematcher.Matcher { return bytematcher.One(c) })

	case parser.KindCaseInsensitiveString:
		return stringFragment(g, n, caseInsensitiveMatcher)

	case parser.KindSequence:
		if len(n.Children) == 0 {
			return automaton.Fragment{}, compileErrorf(n, "empty sequence")
		}
		frag, err := compileFragment(g, n.Children[0])
		if err != nil {
			return automaton.Fragment{}, err
		}
		for _, c := range n.Children[1:] {
			next, err := compileFragment(g, c)
			if err != nil {
				return automaton.Fragment{}, err
			}
			frag = g.Concat(frag, next)
		}
		return frag, nil

	case parser.KindRepeat:
		return compileRepeatFragment(g, n)

	case parser.KindAlt:
		if len(n.Children) == 0 {
			return automaton.Fragment{}, compileErrorf(n, "empty alternation")
		}
		branches := make([]automaton.Fragment, len(n.Children))
		for i, c := range n.Children {
			f, err := compileFragment(g, c)
			if err != nil {
				return automaton.Fragment{}, err
			}
			branches[i] = f
		}
		return g.Union(branches...), nil

	case parser.KindMany:
		inner, err := compileFragment(g, n.Child())
		if err != nil {
			return automaton.Fragment{}, err
		}
		return g.Star(inner), nil

	case parser.KindOneToMany:
		inner, err := compileFragment(g, n.Child())
		if err != nil {
			return automaton.Fragment{}, err
		}
		return g.Plus(inner), nil

	case parser.KindOptional:
		inner, err := compileFragment(g, n.Child())
		if err != nil {
			return automaton.Fragment{}, err
		}
		return g.Optional(inner), nil

	default:
		return automaton.Fragment{}, compileErrorf(n, "unsupported node kind")
	}
}

func stringFragment(g *automaton.GlushkovBuilder, n *parser.Node, matcherFor func(byte) bytematcher.Matcher) (automaton.Fragment, error) {
	if n.Str == "" {
		return automaton.Fragment{}, compileErrorf(n, "empty string")
	}
	frag := g.Symbol(matcherFor(n.Str[0]))
	for i := 1; i < len(n.Str); i++ {
		frag = g.Concat(frag, g.Symbol(matcherFor(n.Str[i])))
	}
	return frag, nil
}

// compileRepeatFragment implements REPEAT(n, child) / REPEAT(n..m, child) /
// REPEAT(n..*, child) by re-invoking compileFragment once per mandatory or
// optional copy, per spec.md §4.5 and the design decision recorded in
// DESIGN.md to avoid a generic fragment-duplication primitive in the
// automaton package: each call allocates fresh positions naturally, which
// is exactly what a Glushkov automaton requires (no two occurrences of the
// same symbol may share a position).
func compileRepeatFragment(g *automaton.GlushkovBuilder, n *parser.Node) (automaton.Fragment, error) {
	child := n.Child()

	if n.Max == -1 {
		if n.Min == 0 {
			inner, err := compileFragment(g, child)
			if err != nil {
				return automaton.Fragment{}, err
			}
			return g.Star(inner), nil
		}
		var frag automaton.Fragment
		for i := 0; i < n.Min-1; i++ {
			inner, err := compileFragment(g, child)
			if err != nil {
				return automaton.Fragment{}, err
			}
			if i == 0 {
				frag = inner
			} else {
				frag = g.Concat(frag, inner)
			}
		}
		last, err := compileFragment(g, child)
		if err != nil {
			return automaton.Fragment{}, err
		}
		plus := g.Plus(last)
		if n.Min == 1 {
			return plus, nil
		}
		return g.Concat(frag, plus), nil
	}

	if n.Min == 0 && n.Max == 0 {
		return automaton.Fragment{}, compileErrorf(n, "repeat of zero matches has no automaton fragment")
	}

	var frag automaton.Fragment
	has := false
	for i := 0; i < n.Min; i++ {
		inner, err := compileFragment(g, child)
		if err != nil {
			return automaton.Fragment{}, err
		}
		if !has {
			frag, has = inner, true
		} else {
			frag = g.Concat(frag, inner)
		}
	}
	for i := 0; i < n.Max-n.Min; i++ {
		inner, err := compileFragment(g, child)
		if err != nil {
			return automaton.Fragment{}, err
		}
		opt := g.Optional(inner)
		if !has {
			frag, has = opt, true
		} else {
			frag = g.Concat(frag, opt)
		}
	}
	return frag, nil
}
