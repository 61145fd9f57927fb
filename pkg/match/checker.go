// Package match implements the backtracking matcher: walking a decoded
// trust schema against a name to find every accepting node, and deciding
// whether a packet name's signer is permitted to sign under a key name.
package match

import (
	"github.com/ndnlvs/lvs/pkg/model"
	"github.com/ndnlvs/lvs/pkg/userfn"
	"github.com/pion/logging"
)

// Checker evaluates names against one decoded schema using a fixed set of
// registered user functions.
type Checker struct {
	model   *model.LvsModel
	fns     map[string]userfn.Fn
	symbols map[model.TagId]string
	log     logging.LeveledLogger
}

// Option configures a Checker constructed by New.
type Option func(*Checker)

// WithLoggerFactory has the Checker log each edge descent and backtrack at
// Trace level, off by default, using a logger built from lf.
func WithLoggerFactory(lf logging.LoggerFactory) Option {
	return func(c *Checker) {
		c.log = lf.NewLogger("match")
	}
}

// New builds a Checker. fns supplies the implementations for every
// user-function name the schema's constraints may call; a schema that
// calls a name missing from fns fails the match with ErrUndefinedFunction
// only when that constraint is actually evaluated.
func New(m *model.LvsModel, fns map[string]userfn.Fn, opts ...Option) *Checker {
	symbols := make(map[model.TagId]string, len(m.Symbols))
	for _, s := range m.Symbols {
		symbols[s.Tag] = s.Ident
	}
	c := &Checker{model: m, fns: fns, symbols: symbols}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is one accepting match: the rule names attached to the node
// reached, and the named bindings collected along the way.
type Result struct {
	Node     model.NodeId
	RuleName []string
	Bindings map[string]model.Component
}

// MatchIterator enumerates every accepting node a name reaches, skipping
// nodes with no rule name (structural-only nodes along the way).
type MatchIterator struct {
	inner   *Iterator
	model   *model.LvsModel
	symbols map[model.TagId]string
}

// Match returns an iterator over every node with a non-empty rule name
// that name reaches in the schema's automaton.
func (c *Checker) Match(name model.Name) *MatchIterator {
	return &MatchIterator{
		inner:   newIterator(c.model, name, nil, c.fns, c.log),
		model:   c.model,
		symbols: c.symbols,
	}
}

// Next advances to the next accepting node, or returns ok == false when
// the walk is exhausted.
func (mi *MatchIterator) Next() (Result, bool, error) {
	for {
		ok, err := mi.inner.Next()
		if err != nil {
			return Result{}, false, err
		}
		if !ok {
			return Result{}, false, nil
		}
		node := &mi.model.Nodes[mi.inner.Node()]
		if len(node.RuleName) == 0 {
			continue
		}
		return Result{
			Node:     mi.inner.Node(),
			RuleName: node.RuleName,
			Bindings: mi.inner.Bindings().clone().names(mi.symbols),
		}, true, nil
	}
}

// Check reports whether pktName may legally be signed by a key named
// keyName: some node pktName matches must list, in its sign_cons, a node
// keyName matches when seeded with pktName's own bindings.
func (c *Checker) Check(pktName, keyName model.Name) (bool, error) {
	pktIter := newIterator(c.model, pktName, nil, c.fns, c.log)
	for {
		ok, err := pktIter.Next()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		pktNode := &c.model.Nodes[pktIter.Node()]

		keyIter := newIterator(c.model, keyName, pktIter.Bindings(), c.fns, c.log)
		for {
			kok, kerr := keyIter.Next()
			if kerr != nil {
				return false, kerr
			}
			if !kok {
				break
			}
			for _, signer := range pktNode.SignCons {
				if signer == keyIter.Node() {
					return true, nil
				}
			}
		}
	}
}
