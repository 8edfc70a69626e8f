package parser

import (
	"ember/internal/ast"
	"ember/internal/token"
)

func (p *Parser) parseExprIf(attrs []*ast.Attribute) (*ast.ExprIf, error) {
	ifTok := p.next()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	out := &ast.ExprIf{Attrs: attrs, If: ifTok, Cond: cond, Then: then}
	for p.nth(0).Kind == token.Else {
		elseTok := p.next()
		if p.nth(0).Kind == token.If {
			ifTok := p.next()
			cond, err := p.parseCondition()
			if err != nil {
				return nil, err
			}
			block, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			out.ElseIfs = append(out.ElseIfs, &ast.ExprElseIf{
				Else: elseTok, If: ifTok, Cond: cond, Block: block,
			})
			continue
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		out.Else = &ast.ExprElse{Else: elseTok, Block: block}
		break
	}
	return out, nil
}

func (p *Parser) parseExprWhile(attrs []*ast.Attribute, label *ast.LoopLabel) (*ast.ExprWhile, error) {
	whileTok := p.next()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ExprWhile{Attrs: attrs, Label: label, While: whileTok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseExprLoop(attrs []*ast.Attribute, label *ast.LoopLabel) (*ast.ExprLoop, error) {
	loopTok := p.next()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ExprLoop{Attrs: attrs, Label: label, Loop: loopTok, Body: body}, nil
}

func (p *Parser) parseExprFor(attrs []*ast.Attribute, label *ast.LoopLabel) (*ast.ExprFor, error) {
	forTok := p.next()
	pat, err := p.parsePat()
	if err != nil {
		return nil, err
	}
	inTok, err := p.expect(token.In)
	if err != nil {
		return nil, err
	}
	iter, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ExprFor{
		Attrs: attrs, Label: label, For: forTok,
		Pat: pat, In: inTok, Iter: iter, Body: body,
	}, nil
}

// parseExprLet parses `let pat = init`. The initializer is parsed without
// brace eagerness since let regularly heads the condition of an if.
func (p *Parser) parseExprLet(attrs []*ast.Attribute) (*ast.ExprLet, error) {
	letTok := p.next()
	pat, err := p.parsePat()
	if err != nil {
		return nil, err
	}
	eq, err := p.expect(token.Assign)
	if err != nil {
		return nil, err
	}
	init, err := p.parseWith(false, true)
	if err != nil {
		return nil, err
	}
	return &ast.ExprLet{Attrs: attrs, Let: letTok, Pat: pat, Eq: eq, Init: init}, nil
}

func (p *Parser) parseExprMatch(attrs []*ast.Attribute) (*ast.ExprMatch, error) {
	matchTok := p.next()
	subject, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	out := &ast.ExprMatch{Attrs: attrs, Match: matchTok, Subject: subject, Open: open}
	for p.nth(0).Kind != token.RBrace && !p.isEOF() {
		arm := &ast.MatchArm{}
		arm.Pat, err = p.parsePat()
		if err != nil {
			return nil, err
		}
		if p.nth(0).Kind == token.If {
			ifTok := p.next()
			cond, err := p.parseWith(true, true)
			if err != nil {
				return nil, err
			}
			arm.Guard = &ast.MatchGuard{If: ifTok, Cond: cond}
		}
		arm.Arrow, err = p.expect(token.Arrow)
		if err != nil {
			return nil, err
		}
		arm.Body, err = p.parseWith(true, true)
		if err != nil {
			return nil, err
		}
		if p.nth(0).Kind == token.Comma {
			comma := p.next()
			arm.Comma = &comma
		} else if p.nth(0).Kind != token.RBrace && ast.NeedsSemi(arm.Body) {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
		out.Arms = append(out.Arms, arm)
	}
	out.Close, err = p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) parseExprSelect(attrs []*ast.Attribute) (*ast.ExprSelect, error) {
	selectTok := p.next()
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	out := &ast.ExprSelect{Attrs: attrs, Select: selectTok, Open: open}
	for p.nth(0).Kind != token.RBrace && !p.isEOF() {
		arm := &ast.SelectArm{}
		if p.nth(0).Kind == token.Default {
			def := p.next()
			arm.Default = &def
		} else {
			arm.Pat, err = p.parsePat()
			if err != nil {
				return nil, err
			}
			arm.Eq, err = p.expect(token.Assign)
			if err != nil {
				return nil, err
			}
			arm.Value, err = p.parseWith(true, true)
			if err != nil {
				return nil, err
			}
		}
		arm.Arrow, err = p.expect(token.Arrow)
		if err != nil {
			return nil, err
		}
		arm.Body, err = p.parseWith(true, true)
		if err != nil {
			return nil, err
		}
		if p.nth(0).Kind == token.Comma {
			comma := p.next()
			arm.Comma = &comma
		} else if p.nth(0).Kind != token.RBrace && ast.NeedsSemi(arm.Body) {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
		out.Arms = append(out.Arms, arm)
	}
	out.Close, err = p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) parseExprClosure(attrs []*ast.Attribute, async *token.Token) (*ast.ExprClosure, error) {
	args := &ast.ClosureArgs{}
	if p.nth(0).Kind == token.OrOr {
		oror := p.next()
		args.OrOr = &oror
	} else {
		open := p.next()
		args.Open = open
		for p.nth(0).Kind != token.Pipe && !p.isEOF() {
			pat, err := p.parsePat()
			if err != nil {
				return nil, err
			}
			args.Items = append(args.Items, pat)
			if p.nth(0).Kind != token.Comma {
				break
			}
			args.Commas = append(args.Commas, p.next())
		}
		close, err := p.expect(token.Pipe)
		if err != nil {
			return nil, err
		}
		args.Close = close
	}
	body, err := p.parseWith(true, true)
	if err != nil {
		return nil, err
	}
	return &ast.ExprClosure{Attrs: attrs, Async: async, Args: args, Body: body}, nil
}

func (p *Parser) parseExprBreak(attrs []*ast.Attribute) (*ast.ExprBreak, error) {
	breakTok := p.next()
	out := &ast.ExprBreak{Attrs: attrs, Break: breakTok}
	if p.nth(0).Kind == token.Label {
		lab := p.next()
		out.Label = &lab
	} else if exprPeek(p.nth(0).Kind, p.nth(1).Kind) {
		value, err := p.parseWith(true, true)
		if err != nil {
			return nil, err
		}
		out.Value = value
	}
	return out, nil
}

func (p *Parser) parseExprYield(attrs []*ast.Attribute) (*ast.ExprYield, error) {
	yieldTok := p.next()
	out := &ast.ExprYield{Attrs: attrs, Yield: yieldTok}
	if exprPeek(p.nth(0).Kind, p.nth(1).Kind) {
		value, err := p.parseWith(true, true)
		if err != nil {
			return nil, err
		}
		out.Value = value
	}
	return out, nil
}

func (p *Parser) parseExprReturn(attrs []*ast.Attribute) (*ast.ExprReturn, error) {
	returnTok := p.next()
	out := &ast.ExprReturn{Attrs: attrs, Return: returnTok}
	if exprPeek(p.nth(0).Kind, p.nth(1).Kind) {
		value, err := p.parseWith(true, true)
		if err != nil {
			return nil, err
		}
		out.Value = value
	}
	return out, nil
}

func (p *Parser) parseExprBlock(attrs []*ast.Attribute, async *token.Token) (*ast.ExprBlock, error) {
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ExprBlock{Attrs: attrs, Async: async, Block: block}, nil
}

// parseExprUnary binds the operator to the base and postfix chain of its
// operand only, so `-a.b * c` groups as `(-a.b) * c`.
func (p *Parser) parseExprUnary(attrs []*ast.Attribute, eagerBrace bool) (*ast.ExprUnary, error) {
	opTok := p.next()
	op, ok := ast.UnOpFromToken(opTok.Kind)
	if !ok {
		return nil, errUnexpected(opTok)
	}
	var none []*ast.Attribute
	operand, err := p.parseBase(&none, eagerBrace)
	if err != nil {
		return nil, err
	}
	operand, err = p.parseChain(operand)
	if err != nil {
		return nil, err
	}
	return &ast.ExprUnary{Attrs: attrs, OpTok: opTok, Op: op, Operand: operand}, nil
}

// exprPeek reports whether the next token(s) can start an expression. Used
// where a value is optional, as after break, yield and return.
func exprPeek(k0, k1 token.Kind) bool {
	switch k0 {
	case token.Ident, token.Label, token.Pound,
		token.Bang, token.Minus, token.Amp, token.Star,
		token.Pipe, token.OrOr, token.Async, token.Select,
		token.While, token.Loop, token.For, token.Let,
		token.If, token.Match, token.Break, token.Yield, token.Return,
		token.LParen, token.LBracket, token.LBrace:
		if k0 == token.Label {
			return k1 == token.Colon
		}
		return true
	}
	return litPeek(k0, k1)
}
