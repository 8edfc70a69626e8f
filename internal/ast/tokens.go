package ast

import "ember/internal/token"

// Tokens re-serializes an expression back into the token sequence it was
// parsed from, in source order. Parsing a valid expression and re-serializing
// it reproduces the input token for token.
func Tokens(e Expr) []token.Token {
	var out []token.Token
	appendExpr(&out, e)
	return out
}

func appendExpr(out *[]token.Token, e Expr) {
	switch e := e.(type) {
	case *Path:
		appendPath(out, e)
	case *ItemFn:
		appendAttrs(out, e.Attrs)
		*out = append(*out, e.Fn, e.Name, e.Open)
		for i, p := range e.Params {
			*out = append(*out, p)
			if i < len(e.Commas) {
				*out = append(*out, e.Commas[i])
			}
		}
		*out = append(*out, e.Close)
		appendBlock(out, e.Body)
	case *ExprAssign:
		appendAttrs(out, e.Attrs)
		appendExpr(out, e.LHS)
		*out = append(*out, e.Eq)
		appendExpr(out, e.RHS)
	case *ExprWhile:
		appendAttrs(out, e.Attrs)
		appendLoopLabel(out, e.Label)
		*out = append(*out, e.While)
		appendExpr(out, e.Cond)
		appendBlock(out, e.Body)
	case *ExprLoop:
		appendAttrs(out, e.Attrs)
		appendLoopLabel(out, e.Label)
		*out = append(*out, e.Loop)
		appendBlock(out, e.Body)
	case *ExprFor:
		appendAttrs(out, e.Attrs)
		appendLoopLabel(out, e.Label)
		*out = append(*out, e.For)
		appendPat(out, e.Pat)
		*out = append(*out, e.In)
		appendExpr(out, e.Iter)
		appendBlock(out, e.Body)
	case *ExprLet:
		appendAttrs(out, e.Attrs)
		*out = append(*out, e.Let)
		appendPat(out, e.Pat)
		*out = append(*out, e.Eq)
		appendExpr(out, e.Init)
	case *ExprIf:
		appendAttrs(out, e.Attrs)
		*out = append(*out, e.If)
		appendExpr(out, e.Cond)
		appendBlock(out, e.Then)
		for _, ei := range e.ElseIfs {
			*out = append(*out, ei.Else, ei.If)
			appendExpr(out, ei.Cond)
			appendBlock(out, ei.Block)
		}
		if e.Else != nil {
			*out = append(*out, e.Else.Else)
			appendBlock(out, e.Else.Block)
		}
	case *ExprMatch:
		appendAttrs(out, e.Attrs)
		*out = append(*out, e.Match)
		appendExpr(out, e.Subject)
		*out = append(*out, e.Open)
		for _, arm := range e.Arms {
			appendPat(out, arm.Pat)
			if arm.Guard != nil {
				*out = append(*out, arm.Guard.If)
				appendExpr(out, arm.Guard.Cond)
			}
			*out = append(*out, arm.Arrow)
			appendExpr(out, arm.Body)
			if arm.Comma != nil {
				*out = append(*out, *arm.Comma)
			}
		}
		*out = append(*out, e.Close)
	case *ExprCall:
		appendAttrs(out, e.Attrs)
		appendExpr(out, e.Func)
		*out = append(*out, e.Open)
		for i, arg := range e.Args {
			appendExpr(out, arg)
			if i < len(e.Commas) {
				*out = append(*out, e.Commas[i])
			}
		}
		*out = append(*out, e.Close)
	case *MacroCall:
		appendAttrs(out, e.Attrs)
		appendPath(out, e.Path)
		*out = append(*out, e.Bang, e.Open)
		*out = append(*out, e.Input...)
		*out = append(*out, e.Close)
	case *ExprFieldAccess:
		appendAttrs(out, e.Attrs)
		appendExpr(out, e.Target)
		*out = append(*out, e.Dot, e.Field)
	case *ExprGroup:
		appendAttrs(out, e.Attrs)
		*out = append(*out, e.Open)
		appendExpr(out, e.Inner)
		*out = append(*out, e.Close)
	case *ExprBinary:
		appendAttrs(out, e.Attrs)
		appendExpr(out, e.LHS)
		*out = append(*out, e.T1)
		if e.Op == BinOpIsNot {
			*out = append(*out, e.T2)
		}
		appendExpr(out, e.RHS)
	case *ExprUnary:
		appendAttrs(out, e.Attrs)
		*out = append(*out, e.OpTok)
		appendExpr(out, e.Operand)
	case *ExprIndex:
		appendAttrs(out, e.Attrs)
		appendExpr(out, e.Target)
		*out = append(*out, e.Open)
		appendExpr(out, e.Index)
		*out = append(*out, e.Close)
	case *ExprBreak:
		appendAttrs(out, e.Attrs)
		*out = append(*out, e.Break)
		if e.Label != nil {
			*out = append(*out, *e.Label)
		}
		if e.Value != nil {
			appendExpr(out, e.Value)
		}
	case *ExprYield:
		appendAttrs(out, e.Attrs)
		*out = append(*out, e.Yield)
		if e.Value != nil {
			appendExpr(out, e.Value)
		}
	case *ExprBlock:
		appendAttrs(out, e.Attrs)
		if e.Async != nil {
			*out = append(*out, *e.Async)
		}
		appendBlock(out, e.Block)
	case *ExprReturn:
		appendAttrs(out, e.Attrs)
		*out = append(*out, e.Return)
		if e.Value != nil {
			appendExpr(out, e.Value)
		}
	case *ExprAwait:
		appendAttrs(out, e.Attrs)
		appendExpr(out, e.Target)
		*out = append(*out, e.Dot, e.Await)
	case *ExprTry:
		appendAttrs(out, e.Attrs)
		appendExpr(out, e.Target)
		*out = append(*out, e.Question)
	case *ExprSelect:
		appendAttrs(out, e.Attrs)
		*out = append(*out, e.Select, e.Open)
		for _, arm := range e.Arms {
			if arm.Default != nil {
				*out = append(*out, *arm.Default)
			} else {
				appendPat(out, arm.Pat)
				*out = append(*out, arm.Eq)
				appendExpr(out, arm.Value)
			}
			*out = append(*out, arm.Arrow)
			appendExpr(out, arm.Body)
			if arm.Comma != nil {
				*out = append(*out, *arm.Comma)
			}
		}
		*out = append(*out, e.Close)
	case *ExprClosure:
		appendAttrs(out, e.Attrs)
		if e.Async != nil {
			*out = append(*out, *e.Async)
		}
		if e.Args.OrOr != nil {
			*out = append(*out, *e.Args.OrOr)
		} else {
			*out = append(*out, e.Args.Open)
			for i, p := range e.Args.Items {
				appendPat(out, p)
				if i < len(e.Args.Commas) {
					*out = append(*out, e.Args.Commas[i])
				}
			}
			*out = append(*out, e.Args.Close)
		}
		appendExpr(out, e.Body)
	case *ExprLit:
		appendAttrs(out, e.Attrs)
		appendLit(out, e.Lit)
	}
}

func appendAttrs(out *[]token.Token, attrs []*Attribute) {
	for _, a := range attrs {
		*out = append(*out, a.Hash, a.Open)
		appendPath(out, a.Path)
		*out = append(*out, a.Input...)
		*out = append(*out, a.Close)
	}
}

func appendPath(out *[]token.Token, p *Path) {
	*out = append(*out, p.First)
	for _, seg := range p.Rest {
		*out = append(*out, seg.Sep, seg.Ident)
	}
}

func appendLoopLabel(out *[]token.Token, l *LoopLabel) {
	if l != nil {
		*out = append(*out, l.Label.Token, l.Colon)
	}
}

func appendBlock(out *[]token.Token, b *Block) {
	*out = append(*out, b.Open)
	for _, st := range b.Stmts {
		appendExpr(out, st.Expr)
		if st.Semi != nil {
			*out = append(*out, *st.Semi)
		}
	}
	*out = append(*out, b.Close)
}

func appendPat(out *[]token.Token, p Pat) {
	switch p := p.(type) {
	case *PatIgnore:
		*out = append(*out, p.Underscore)
	case *PatPath:
		appendPath(out, p.Path)
	case *PatLit:
		appendLit(out, p.Lit)
	case *PatTuple:
		*out = append(*out, p.Open)
		for i, item := range p.Items {
			appendPat(out, item)
			if i < len(p.Commas) {
				*out = append(*out, p.Commas[i])
			}
		}
		*out = append(*out, p.Close)
	}
}

func appendLit(out *[]token.Token, l Lit) {
	switch l := l.(type) {
	case *LitBool:
		*out = append(*out, l.Tok)
	case *LitNumber:
		*out = append(*out, l.Tok)
	case *LitStr:
		*out = append(*out, l.Tok)
	case *LitByteStr:
		*out = append(*out, l.Tok)
	case *LitChar:
		*out = append(*out, l.Tok)
	case *LitByte:
		*out = append(*out, l.Tok)
	case *LitUnit:
		*out = append(*out, l.Open, l.Close)
	case *LitTuple:
		*out = append(*out, l.Open)
		for i, item := range l.Items {
			appendExpr(out, item)
			if i < len(l.Commas) {
				*out = append(*out, l.Commas[i])
			}
		}
		*out = append(*out, l.Close)
	case *LitVec:
		*out = append(*out, l.Open)
		for i, item := range l.Items {
			appendExpr(out, item)
			if i < len(l.Commas) {
				*out = append(*out, l.Commas[i])
			}
		}
		*out = append(*out, l.Close)
	case *LitObject:
		if l.Ident.Pound != nil {
			*out = append(*out, *l.Ident.Pound)
		} else {
			appendPath(out, l.Ident.Path)
		}
		*out = append(*out, l.Open)
		for _, f := range l.Fields {
			*out = append(*out, f.Key)
			if f.Colon != nil {
				*out = append(*out, *f.Colon)
				appendExpr(out, f.Value)
			}
			if f.Comma != nil {
				*out = append(*out, *f.Comma)
			}
		}
		*out = append(*out, l.Close)
	case *LitTemplate:
		for _, part := range l.Parts {
			switch part := part.(type) {
			case *TemplateText:
				*out = append(*out, part.Tok)
			case *TemplateInterp:
				*out = append(*out, part.Start)
				appendExpr(out, part.Expr)
				*out = append(*out, part.End)
			}
		}
		*out = append(*out, l.End)
	}
}
