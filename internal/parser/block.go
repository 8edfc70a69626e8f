package parser

import (
	"ember/internal/ast"
	"ember/internal/token"
)

// ParseBlock parses a brace-delimited block from the current position.
func (p *Parser) ParseBlock() (*ast.Block, error) {
	return p.parseBlock()
}

// parseBlock parses `{ stmt* }`. Expressions that need a trailing semicolon
// must have one unless they close the block; block-bodied forms may omit it.
// Function items are parsed here rather than in expression dispatch and never
// take a separator.
func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Open: open}
	for p.nth(0).Kind != token.RBrace && !p.isEOF() {
		attrs, err := p.parseAttributes()
		if err != nil {
			return nil, err
		}
		var expr ast.Expr
		if p.nth(0).Kind == token.Fn {
			expr, err = p.parseItemFn(attrs)
		} else {
			expr, err = p.parseWithAttrs(attrs, true, true)
		}
		if err != nil {
			return nil, err
		}
		stmt := &ast.Stmt{Expr: expr}
		if p.nth(0).Kind == token.Semicolon {
			semi := p.next()
			stmt.Semi = &semi
		} else if _, isItem := expr.(*ast.ItemFn); !isItem &&
			ast.NeedsSemi(expr) && p.nth(0).Kind != token.RBrace {
			if _, err := p.expect(token.Semicolon); err != nil {
				return nil, err
			}
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	close, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	block.Close = close
	return block, nil
}

func (p *Parser) parseItemFn(attrs []*ast.Attribute) (*ast.ItemFn, error) {
	fn := p.next()
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	open, err := p.expect(token.LParen)
	if err != nil {
		return nil, err
	}
	out := &ast.ItemFn{Attrs: attrs, Fn: fn, Name: name, Open: open}
	for p.nth(0).Kind != token.RParen && !p.isEOF() {
		param, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		out.Params = append(out.Params, param)
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
	out.Body, err = p.parseBlock()
	if err != nil {
		return nil, err
	}
	return out, nil
}
