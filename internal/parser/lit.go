package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// litPeek reports whether the next token(s) open a literal form.
func litPeek(k0, k1 token.Kind) bool {
	switch k0 {
	case token.Int, token.Float, token.Str, token.ByteStr,
		token.Char, token.Byte, token.True, token.False,
		token.TemplatePart, token.InterpStart, token.TemplateEnd,
		token.LBracket:
		return true
	case token.Pound:
		return k1 == token.LBrace
	}
	return false
}

func (p *Parser) parseLit() (ast.Lit, error) {
	switch p.nth(0).Kind {
	case token.Int, token.Float:
		return &ast.LitNumber{Tok: p.next()}, nil
	case token.True, token.False:
		return &ast.LitBool{Tok: p.next()}, nil
	case token.Str:
		return &ast.LitStr{Tok: p.next()}, nil
	case token.ByteStr:
		return &ast.LitByteStr{Tok: p.next()}, nil
	case token.Char:
		return &ast.LitChar{Tok: p.next()}, nil
	case token.Byte:
		return &ast.LitByte{Tok: p.next()}, nil
	case token.TemplatePart, token.InterpStart, token.TemplateEnd:
		return p.parseTemplate()
	case token.LBracket:
		return p.parseVec()
	case token.Pound:
		pound := p.next()
		return p.parseObjectBody(ast.ObjectIdent{Pound: &pound})
	}
	return nil, errUnexpected(p.nth(0))
}

func (p *Parser) parseTemplate() (*ast.LitTemplate, error) {
	out := &ast.LitTemplate{}
	for {
		switch p.nth(0).Kind {
		case token.TemplatePart:
			out.Parts = append(out.Parts, &ast.TemplateText{Tok: p.next()})
		case token.InterpStart:
			start := p.next()
			expr, err := p.parseWith(true, true)
			if err != nil {
				return nil, err
			}
			end, err := p.expect(token.InterpEnd)
			if err != nil {
				return nil, err
			}
			out.Parts = append(out.Parts, &ast.TemplateInterp{Start: start, Expr: expr, End: end})
		case token.TemplateEnd:
			out.End = p.next()
			return out, nil
		default:
			return nil, errUnexpected(p.nth(0))
		}
	}
}

func (p *Parser) parseVec() (*ast.LitVec, error) {
	open := p.next()
	out := &ast.LitVec{Open: open}
	for p.nth(0).Kind != token.RBracket && !p.isEOF() {
		item, err := p.parseWith(true, true)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
		if p.nth(0).Kind != token.Comma {
			break
		}
		out.Commas = append(out.Commas, p.next())
	}
	close, err := p.expect(token.RBracket)
	if err != nil {
		return nil, err
	}
	out.Close = close
	return out, nil
}

// parseObjectBody parses `{ key: value, .. }` after the object ident. Keys
// are identifiers or string literals; `key` alone is shorthand for binding
// the name in scope.
func (p *Parser) parseObjectBody(ident ast.ObjectIdent) (*ast.LitObject, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	out := &ast.LitObject{Ident: ident, Open: open}
	for p.nth(0).Kind != token.RBrace && !p.isEOF() {
		key := p.nth(0)
		if key.Kind != token.Ident && key.Kind != token.Str {
			return nil, diag.At(diag.TokenMismatch, key,
				"expected object key, got %s (%q)", key.Kind, key.Lexeme)
		}
		field := &ast.ObjectField{Key: p.next()}
		if p.nth(0).Kind == token.Colon {
			colon := p.next()
			field.Colon = &colon
			field.Value, err = p.parseWith(true, true)
			if err != nil {
				return nil, err
			}
		}
		if p.nth(0).Kind == token.Comma {
			comma := p.next()
			field.Comma = &comma
		} else if p.nth(0).Kind != token.RBrace {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
		out.Fields = append(out.Fields, field)
	}
	out.Close, err = p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// parseCallArgs wraps expr into a call, migrating its attributes outward.
func (p *Parser) parseCallArgs(expr ast.Expr) (*ast.ExprCall, error) {
	open := p.next()
	out := &ast.ExprCall{
		Attrs: ast.TakeAttributes(expr),
		Func:  expr,
		Open:  open,
	}
	for p.nth(0).Kind != token.RParen && !p.isEOF() {
		arg, err := p.parseWith(true, true)
		if err != nil {
			return nil, err
		}
		out.Args = append(out.Args, arg)
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
}
