package ast

import "ember/internal/token"

// Pat is the closed set of pattern forms accepted by let, for, match and
// select positions.
type Pat interface {
	Node
	patNode()
}

// PatIgnore is the wildcard `_`.
type PatIgnore struct {
	Underscore token.Token
}

func (p *PatIgnore) Span() token.Span { return p.Underscore.Span }
func (p *PatIgnore) patNode()         {}

// PatPath binds a name or matches a path.
type PatPath struct {
	Path *Path
}

func (p *PatPath) Span() token.Span { return p.Path.Span() }
func (p *PatPath) patNode()         {}

type PatLit struct {
	Lit Lit
}

func (p *PatLit) Span() token.Span { return p.Lit.Span() }
func (p *PatLit) patNode()         {}

type PatTuple struct {
	Open   token.Token
	Items  []Pat
	Commas []token.Token
	Close  token.Token
}

func (p *PatTuple) Span() token.Span { return p.Open.Span.Join(p.Close.Span) }
func (p *PatTuple) patNode()         {}
