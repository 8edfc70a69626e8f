package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// ParseExpr parses one expression with both ambiguity flags eager. Trailing
// input is left for the caller; use ExpectEOF to require full consumption.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.parseWith(true, true)
}

func (p *Parser) parseWith(eagerBrace, eagerBinary bool) (ast.Expr, error) {
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	return p.parseWithAttrs(attrs, eagerBrace, eagerBinary)
}

// parseWithAttrs runs the full pipeline over pre-parsed attributes: base form,
// postfix chain, then binary climbing if eager. Attributes left unclaimed by
// the base form are only rejected here, after the whole expression has been
// consumed, so the error spans the attribute list in front of a node kind
// that cannot carry one.
func (p *Parser) parseWithAttrs(attrs []*ast.Attribute, eagerBrace, eagerBinary bool) (ast.Expr, error) {
	expr, err := p.parseBase(&attrs, eagerBrace)
	if err != nil {
		return nil, err
	}
	expr, err = p.parseChain(expr)
	if err != nil {
		return nil, err
	}
	if eagerBinary {
		expr, err = p.parseBinary(expr, 0, eagerBrace)
		if err != nil {
			return nil, err
		}
	}
	if len(attrs) > 0 {
		span := attrs[0].Span().Join(attrs[len(attrs)-1].Span())
		return nil, diag.New(diag.AttributesNotSupported, span, attrs[0].Hash.Pos,
			"attributes are not supported in this position")
	}
	return expr, nil
}

// parseCondition parses the scrutinee of if, while, for and match. A bare `{`
// after a path must open the construct body, never an object literal, so
// brace eagerness is off. Binary climbing is deferred to an explicit call.
func (p *Parser) parseCondition() (ast.Expr, error) {
	expr, err := p.parseWith(false, false)
	if err != nil {
		return nil, err
	}
	return p.parseBinary(expr, 0, false)
}

func takeAttrs(attrs *[]*ast.Attribute) []*ast.Attribute {
	out := *attrs
	*attrs = nil
	return out
}

// parseBase parses a primary or prefix form. Forms that carry attributes take
// them out of attrs; anything left behind is rejected by parseWithAttrs.
func (p *Parser) parseBase(attrs *[]*ast.Attribute, eagerBrace bool) (ast.Expr, error) {
	var label *ast.LoopLabel
	if p.nth(0).Kind == token.Label && p.nth(1).Kind == token.Colon {
		lab := p.next()
		colon := p.next()
		label = &ast.LoopLabel{Label: ast.Label{Token: lab}, Colon: colon}
	}

	var async *token.Token
	if p.nth(0).Kind == token.Async {
		tok := p.next()
		async = &tok
	}

	var expr ast.Expr
	var err error
	switch p.nth(0).Kind {
	case token.Ident:
		path, perr := p.parsePath()
		if perr != nil {
			return nil, perr
		}
		expr, err = p.parseWithMetaPath(attrs, path, eagerBrace)
	case token.Int, token.Float, token.Str, token.ByteStr,
		token.Char, token.Byte, token.True, token.False,
		token.TemplatePart, token.InterpStart, token.TemplateEnd,
		token.LBracket, token.Pound:
		var lit ast.Lit
		lit, err = p.parseLit()
		if err == nil {
			expr = &ast.ExprLit{Attrs: takeAttrs(attrs), Lit: lit}
		}
	case token.Pipe, token.OrOr:
		expr, err = p.parseExprClosure(takeAttrs(attrs), async)
		async = nil
	case token.Select:
		expr, err = p.parseExprSelect(takeAttrs(attrs))
	case token.Bang, token.Minus, token.Amp, token.Star:
		expr, err = p.parseExprUnary(takeAttrs(attrs), eagerBrace)
	case token.While:
		expr, err = p.parseExprWhile(takeAttrs(attrs), label)
		label = nil
	case token.Loop:
		expr, err = p.parseExprLoop(takeAttrs(attrs), label)
		label = nil
	case token.For:
		expr, err = p.parseExprFor(takeAttrs(attrs), label)
		label = nil
	case token.Let:
		expr, err = p.parseExprLet(takeAttrs(attrs))
	case token.If:
		expr, err = p.parseExprIf(takeAttrs(attrs))
	case token.Match:
		expr, err = p.parseExprMatch(takeAttrs(attrs))
	case token.LParen:
		expr, err = p.parseOpenParen(attrs)
	case token.LBrace:
		expr, err = p.parseExprBlock(takeAttrs(attrs), async)
		async = nil
	case token.Break:
		expr, err = p.parseExprBreak(takeAttrs(attrs))
	case token.Yield:
		expr, err = p.parseExprYield(takeAttrs(attrs))
	case token.Return:
		expr, err = p.parseExprReturn(takeAttrs(attrs))
	default:
		tok := p.nth(0)
		return nil, diag.At(diag.ExpectedExpression, tok,
			"expected expression, got %s (%q)", tok.Kind, tok.Lexeme)
	}
	if err != nil {
		return nil, err
	}
	if label != nil {
		return nil, diag.New(diag.UnsupportedLabel, label.Span(), label.Label.Token.Pos,
			"labels are not supported for this expression")
	}
	if async != nil {
		return nil, diag.At(diag.UnsupportedAsync, *async,
			"async is not supported for this expression")
	}
	return expr, nil
}

// parseWithMetaPath resolves what follows an already-parsed path: a named
// object literal when braces are eager, a macro call on `!`, or the path
// itself.
func (p *Parser) parseWithMetaPath(attrs *[]*ast.Attribute, path *ast.Path, eagerBrace bool) (ast.Expr, error) {
	if eagerBrace && p.nth(0).Kind == token.LBrace {
		lit, err := p.parseObjectBody(ast.ObjectIdent{Path: path})
		if err != nil {
			return nil, err
		}
		return &ast.ExprLit{Attrs: takeAttrs(attrs), Lit: lit}, nil
	}
	if p.nth(0).Kind == token.Bang {
		return p.parseMacroCall(takeAttrs(attrs), path)
	}
	return path, nil
}

// parseOpenParen disambiguates `()` unit, `(expr)` group and `(a, b)` tuple.
func (p *Parser) parseOpenParen(attrs *[]*ast.Attribute) (ast.Expr, error) {
	if p.nth(1).Kind == token.RParen {
		open := p.next()
		close := p.next()
		return &ast.ExprLit{
			Attrs: takeAttrs(attrs),
			Lit:   &ast.LitUnit{Open: open, Close: close},
		}, nil
	}
	open := p.next()
	inner, err := p.parseWith(true, true)
	if err != nil {
		return nil, err
	}
	if p.nth(0).Kind == token.RParen {
		close := p.next()
		return &ast.ExprGroup{Attrs: takeAttrs(attrs), Open: open, Inner: inner, Close: close}, nil
	}
	tuple := &ast.LitTuple{Open: open, Items: []ast.Expr{inner}}
	for p.nth(0).Kind == token.Comma {
		tuple.Commas = append(tuple.Commas, p.next())
		if p.nth(0).Kind == token.RParen {
			break
		}
		item, err := p.parseWith(true, true)
		if err != nil {
			return nil, err
		}
		tuple.Items = append(tuple.Items, item)
	}
	close, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}
	tuple.Close = close
	return &ast.ExprLit{Attrs: takeAttrs(attrs), Lit: tuple}, nil
}

// parseChain extends expr with postfix steps. Index and call require the base
// to be chainable; `?` and `=` apply regardless. Every wrap migrates the
// attributes of the wrapped node onto the new outer node.
func (p *Parser) parseChain(expr ast.Expr) (ast.Expr, error) {
	for {
		switch p.nth(0).Kind {
		case token.LBracket:
			if !ast.IsChainable(expr) {
				return expr, nil
			}
			open := p.next()
			index, err := p.parseWith(true, true)
			if err != nil {
				return nil, err
			}
			close, err := p.expect(token.RBracket)
			if err != nil {
				return nil, err
			}
			expr = &ast.ExprIndex{
				Attrs:  ast.TakeAttributes(expr),
				Target: expr,
				Open:   open,
				Index:  index,
				Close:  close,
			}

		case token.LParen:
			if !ast.IsChainable(expr) {
				return expr, nil
			}
			call, err := p.parseCallArgs(expr)
			if err != nil {
				return nil, err
			}
			expr = call

		case token.Question:
			q := p.next()
			expr = &ast.ExprTry{
				Attrs:    ast.TakeAttributes(expr),
				Target:   expr,
				Question: q,
			}

		case token.Assign:
			eq := p.next()
			rhs, err := p.parseWith(true, true)
			if err != nil {
				return nil, err
			}
			expr = &ast.ExprAssign{
				Attrs: ast.TakeAttributes(expr),
				LHS:   expr,
				Eq:    eq,
				RHS:   rhs,
			}

		case token.Dot:
			dot := p.next()
			if p.nth(0).Kind == token.Await {
				await := p.next()
				expr = &ast.ExprAwait{
					Attrs:  ast.TakeAttributes(expr),
					Target: expr,
					Dot:    dot,
					Await:  await,
				}
				continue
			}
			field, err := p.parseFieldName()
			if err != nil {
				return nil, err
			}
			expr = &ast.ExprFieldAccess{
				Attrs:  ast.TakeAttributes(expr),
				Target: expr,
				Dot:    dot,
				Field:  field,
			}

		default:
			return expr, nil
		}
	}
}

// parseFieldName parses what follows `.` in a field access and classifies it.
// The member is parsed as a full base expression first: a single-segment path
// names a field, an unattributed number selects a tuple slot, anything else
// cannot be accessed as a field.
func (p *Parser) parseFieldName() (token.Token, error) {
	var none []*ast.Attribute
	member, err := p.parseBase(&none, false)
	if err != nil {
		return token.Token{}, err
	}
	switch m := member.(type) {
	case *ast.Path:
		if ident, ok := m.TryAsIdent(); ok {
			return ident, nil
		}
	case *ast.ExprLit:
		if num, ok := m.Lit.(*ast.LitNumber); ok && len(m.Attrs) == 0 {
			return num.Tok, nil
		}
	}
	return token.Token{}, diag.New(diag.UnsupportedFieldAccess, member.Span(),
		positionOf(member), "cannot access a field through this expression")
}

func positionOf(expr ast.Expr) token.Position {
	toks := ast.Tokens(expr)
	if len(toks) > 0 {
		return toks[0].Pos
	}
	return token.Position{}
}

// parseBinary climbs binary operators whose precedence exceeds min. Equal
// precedence among the non-associative comparison group is rejected and must
// be parenthesized. Binary nodes never carry attributes themselves.
func (p *Parser) parseBinary(lhs ast.Expr, min int, eagerBrace bool) (ast.Expr, error) {
	level, ok := peekBinOp(p)
	if !ok {
		return lhs, nil
	}
	for level.prec >= min {
		t1, t2 := p.consumeBinOp(level)
		rhs, err := p.parseWith(eagerBrace, false)
		if err != nil {
			return nil, err
		}
		lookahead, lok := peekBinOp(p)
		for lok {
			if lookahead.prec > level.prec {
				rhs, err = p.parseBinary(rhs, level.prec+1, eagerBrace)
				if err != nil {
					return nil, err
				}
				lookahead, lok = peekBinOp(p)
				continue
			}
			if lookahead.prec == level.prec && !level.op.IsAssoc() {
				span := lhs.Span().Join(rhs.Span())
				return nil, diag.New(diag.PrecedenceGroupRequired, span, t1.Pos,
					"comparison operators cannot be chained, use parentheses")
			}
			break
		}
		lhs = &ast.ExprBinary{LHS: lhs, T1: t1, T2: t2, Op: level.op, RHS: rhs}
		if !lok {
			break
		}
		level = lookahead
	}
	return lhs, nil
}

type binLevel struct {
	op    ast.BinOp
	width int
	prec  int
}

func peekBinOp(p *Parser) (binLevel, bool) {
	op, width, ok := ast.BinOpFromTokens(p.nth(0).Kind, p.nth(1).Kind)
	if !ok {
		return binLevel{}, false
	}
	return binLevel{op: op, width: width, prec: op.Precedence()}, true
}

func (p *Parser) consumeBinOp(level binLevel) (t1, t2 token.Token) {
	t1 = p.next()
	if level.width == 2 {
		t2 = p.next()
	}
	return t1, t2
}
