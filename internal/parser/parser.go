// Package parser turns a token stream into a typed expression tree.
//
// Parsing is two-phase: a recursive-descent dispatcher handles primary and
// prefix forms, a postfix chain resolver extends the result while chainable,
// and a precedence climber folds binary operators. Two context flags are
// threaded by value through every recursive call: brace eagerness (may a bare
// `{` after a path open an object literal?) and binary eagerness (should
// trailing binary operators be consumed here?).
package parser

import (
	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/token"
)

type Parser struct {
	toks []token.Token
	pos  int
}

func New(l *lexer.Lexer) *Parser {
	return FromTokens(l.Tokens())
}

// FromTokens builds a parser over an already-lexed token sequence. A trailing
// EOF token is appended if missing.
func FromTokens(toks []token.Token) *Parser {
	if n := len(toks); n == 0 || toks[n-1].Kind != token.EOF {
		var span token.Span
		var pos token.Position
		if n > 0 {
			span = token.Span{Start: toks[n-1].Span.End, End: toks[n-1].Span.End}
			pos = toks[n-1].Pos
		}
		toks = append(toks, token.Token{Kind: token.EOF, Span: span, Pos: pos})
	}
	return &Parser{toks: toks}
}

// nth peeks n tokens ahead without consuming.
func (p *Parser) nth(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) next() token.Token {
	tok := p.nth(0)
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) isEOF() bool {
	return p.nth(0).Kind == token.EOF
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.nth(0)
	if tok.Kind != kind {
		return token.Token{}, diag.At(diag.TokenMismatch, tok,
			"expected %s, got %s (%q)", kind, tok.Kind, tok.Lexeme)
	}
	return p.next(), nil
}

func errUnexpected(tok token.Token) error {
	return diag.At(diag.TokenMismatch, tok, "unexpected %s (%q)", tok.Kind, tok.Lexeme)
}

// ExpectEOF fails unless the whole input has been consumed.
func (p *Parser) ExpectEOF() error {
	if !p.isEOF() {
		tok := p.nth(0)
		return diag.At(diag.TokenMismatch, tok,
			"expected end of input, got %s (%q)", tok.Kind, tok.Lexeme)
	}
	return nil
}
