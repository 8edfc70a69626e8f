package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

func (p *Parser) parsePath() (*ast.Path, error) {
	first, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	path := &ast.Path{First: first}
	for p.nth(0).Kind == token.ColonColon {
		sep := p.next()
		ident, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		path.Rest = append(path.Rest, &ast.PathSegment{Sep: sep, Ident: ident})
	}
	return path, nil
}

func (p *Parser) parsePat() (ast.Pat, error) {
	tok := p.nth(0)
	switch tok.Kind {
	case token.Ident:
		if tok.Lexeme == "_" {
			return &ast.PatIgnore{Underscore: p.next()}, nil
		}
		path, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		return &ast.PatPath{Path: path}, nil
	case token.LParen:
		open := p.next()
		out := &ast.PatTuple{Open: open}
		for p.nth(0).Kind != token.RParen && !p.isEOF() {
			item, err := p.parsePat()
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, item)
			if p.nth(0).Kind != token.Comma {
				break
			}
			out.Commas = append(out.Commas, p.next())
		}
		close, err := p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		out.Close = close
		return out, nil
	case token.Int, token.Float, token.Str, token.ByteStr,
		token.Char, token.Byte, token.True, token.False:
		lit, err := p.parseLit()
		if err != nil {
			return nil, err
		}
		return &ast.PatLit{Lit: lit}, nil
	}
	return nil, diag.At(diag.TokenMismatch, tok,
		"expected pattern, got %s (%q)", tok.Kind, tok.Lexeme)
}

// parseAttributes consumes the leading run of `#[...]` annotations.
func (p *Parser) parseAttributes() ([]*ast.Attribute, error) {
	var attrs []*ast.Attribute
	for p.nth(0).Kind == token.Pound && p.nth(1).Kind == token.LBracket {
		hash := p.next()
		open := p.next()
		path, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		input, close, err := p.collectBalanced(token.LBracket, token.RBracket)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, &ast.Attribute{
			Hash: hash, Open: open, Path: path, Input: input, Close: close,
		})
	}
	return attrs, nil
}

func (p *Parser) parseMacroCall(attrs []*ast.Attribute, path *ast.Path) (*ast.MacroCall, error) {
	bang, err := p.expect(token.Bang)
	if err != nil {
		return nil, err
	}
	open := p.nth(0)
	var closeKind token.Kind
	switch open.Kind {
	case token.LParen:
		closeKind = token.RParen
	case token.LBracket:
		closeKind = token.RBracket
	case token.LBrace:
		closeKind = token.RBrace
	default:
		return nil, diag.At(diag.TokenMismatch, open,
			"expected macro delimiter, got %s (%q)", open.Kind, open.Lexeme)
	}
	p.next()
	input, close, err := p.collectBalanced(open.Kind, closeKind)
	if err != nil {
		return nil, err
	}
	return &ast.MacroCall{
		Attrs: attrs, Path: path, Bang: bang,
		Open: open, Input: input, Close: close,
	}, nil
}

// collectBalanced gathers raw tokens up to the close matching an already
// consumed open delimiter, tracking nesting of the same delimiter pair.
func (p *Parser) collectBalanced(openKind, closeKind token.Kind) ([]token.Token, token.Token, error) {
	var input []token.Token
	depth := 0
	for {
		tok := p.nth(0)
		if tok.Kind == token.EOF {
			return nil, token.Token{}, diag.At(diag.TokenMismatch, tok,
				"expected %s, got end of input", closeKind)
		}
		switch tok.Kind {
		case openKind:
			depth++
		case closeKind:
			if depth == 0 {
				return input, p.next(), nil
			}
			depth--
		}
		input = append(input, p.next())
	}
}
