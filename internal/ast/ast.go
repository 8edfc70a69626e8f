package ast

import "ember/internal/token"

// Basic interfaces

type Node interface {
	Span() token.Span
}

// Expr is the closed set of expression variants. Capability queries over the
// set (NeedsSemi, IsChainable, Attributes, TakeAttributes) live in caps.go as
// exhaustive type switches.
type Expr interface {
	Node
	exprNode()
}

// Attribute is a leading `#[...]` annotation. The input token stream between
// the brackets is kept verbatim; interpreting it is a later concern.
type Attribute struct {
	Hash  token.Token
	Open  token.Token
	Path  *Path
	Input []token.Token
	Close token.Token
}

func (a *Attribute) Span() token.Span {
	return a.Hash.Span.Join(a.Close.Span)
}

func spanWithAttrs(attrs []*Attribute, span token.Span) token.Span {
	if len(attrs) > 0 {
		return attrs[0].Span().Join(span)
	}
	return span
}

// Path is a `::`-separated reference like `foo`, `foo::bar::baz`. Paths carry
// no attributes and double as the path-reference expression variant.
type Path struct {
	First token.Token
	Rest  []*PathSegment
}

type PathSegment struct {
	Sep   token.Token
	Ident token.Token
}

func (p *Path) Span() token.Span {
	span := p.First.Span
	if n := len(p.Rest); n > 0 {
		span = span.Join(p.Rest[n-1].Ident.Span)
	}
	return span
}

func (p *Path) exprNode() {}

// TryAsIdent returns the single identifier token of a one-segment path.
func (p *Path) TryAsIdent() (token.Token, bool) {
	if len(p.Rest) == 0 {
		return p.First, true
	}
	return token.Token{}, false
}

// LoopLabel is the `'name :` prefix accepted by loop forms.
type LoopLabel struct {
	Label Label
	Colon token.Token
}

func (l *LoopLabel) Span() token.Span {
	return l.Label.Token.Span.Join(l.Colon.Span)
}

// Block is a brace-delimited statement container.
type Block struct {
	Open  token.Token
	Stmts []*Stmt
	Close token.Token
}

func (b *Block) Span() token.Span {
	return b.Open.Span.Join(b.Close.Span)
}

// Stmt is a block entry: one expression plus its optional trailing semicolon.
type Stmt struct {
	Expr Expr
	Semi *token.Token
}

func (s *Stmt) Span() token.Span {
	span := s.Expr.Span()
	if s.Semi != nil {
		span = span.Join(s.Semi.Span)
	}
	return span
}

// ItemFn is a function declaration appearing in expression position inside a
// block. It owns its attribute store; the expression-level capability queries
// delegate to it.
type ItemFn struct {
	Attrs  []*Attribute
	Fn     token.Token
	Name   token.Token
	Open   token.Token
	Params []token.Token
	Commas []token.Token
	Close  token.Token
	Body   *Block
}

func (i *ItemFn) Span() token.Span {
	return spanWithAttrs(i.Attrs, i.Fn.Span.Join(i.Body.Span()))
}

func (i *ItemFn) exprNode() {}

type ExprAssign struct {
	Attrs []*Attribute
	LHS   Expr
	Eq    token.Token
	RHS   Expr
}

func (e *ExprAssign) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.LHS.Span().Join(e.RHS.Span()))
}

func (e *ExprAssign) exprNode() {}

type ExprWhile struct {
	Attrs []*Attribute
	Label *LoopLabel
	While token.Token
	Cond  Expr
	Body  *Block
}

func (e *ExprWhile) Span() token.Span {
	span := e.While.Span.Join(e.Body.Span())
	if e.Label != nil {
		span = e.Label.Span().Join(span)
	}
	return spanWithAttrs(e.Attrs, span)
}

func (e *ExprWhile) exprNode() {}

type ExprLoop struct {
	Attrs []*Attribute
	Label *LoopLabel
	Loop  token.Token
	Body  *Block
}

func (e *ExprLoop) Span() token.Span {
	span := e.Loop.Span.Join(e.Body.Span())
	if e.Label != nil {
		span = e.Label.Span().Join(span)
	}
	return spanWithAttrs(e.Attrs, span)
}

func (e *ExprLoop) exprNode() {}

type ExprFor struct {
	Attrs []*Attribute
	Label *LoopLabel
	For   token.Token
	Pat   Pat
	In    token.Token
	Iter  Expr
	Body  *Block
}

func (e *ExprFor) Span() token.Span {
	span := e.For.Span.Join(e.Body.Span())
	if e.Label != nil {
		span = e.Label.Span().Join(span)
	}
	return spanWithAttrs(e.Attrs, span)
}

func (e *ExprFor) exprNode() {}

type ExprLet struct {
	Attrs []*Attribute
	Let   token.Token
	Pat   Pat
	Eq    token.Token
	Init  Expr
}

func (e *ExprLet) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Let.Span.Join(e.Init.Span()))
}

func (e *ExprLet) exprNode() {}

type ExprIf struct {
	Attrs   []*Attribute
	If      token.Token
	Cond    Expr
	Then    *Block
	ElseIfs []*ExprElseIf
	Else    *ExprElse
}

type ExprElseIf struct {
	Else  token.Token
	If    token.Token
	Cond  Expr
	Block *Block
}

func (e *ExprElseIf) Span() token.Span {
	return e.Else.Span.Join(e.Block.Span())
}

type ExprElse struct {
	Else  token.Token
	Block *Block
}

func (e *ExprElse) Span() token.Span {
	return e.Else.Span.Join(e.Block.Span())
}

func (e *ExprIf) Span() token.Span {
	span := e.If.Span.Join(e.Then.Span())
	if n := len(e.ElseIfs); n > 0 {
		span = span.Join(e.ElseIfs[n-1].Span())
	}
	if e.Else != nil {
		span = span.Join(e.Else.Span())
	}
	return spanWithAttrs(e.Attrs, span)
}

func (e *ExprIf) exprNode() {}

type ExprMatch struct {
	Attrs   []*Attribute
	Match   token.Token
	Subject Expr
	Open    token.Token
	Arms    []*MatchArm
	Close   token.Token
}

type MatchArm struct {
	Pat   Pat
	Guard *MatchGuard
	Arrow token.Token
	Body  Expr
	Comma *token.Token
}

type MatchGuard struct {
	If   token.Token
	Cond Expr
}

func (e *ExprMatch) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Match.Span.Join(e.Close.Span))
}

func (e *ExprMatch) exprNode() {}

type ExprCall struct {
	Attrs  []*Attribute
	Func   Expr
	Open   token.Token
	Args   []Expr
	Commas []token.Token
	Close  token.Token
}

func (e *ExprCall) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Func.Span().Join(e.Close.Span))
}

func (e *ExprCall) exprNode() {}

// MacroCall is `path!( token stream )`. The input is kept verbatim for a
// later expansion stage.
type MacroCall struct {
	Attrs []*Attribute
	Path  *Path
	Bang  token.Token
	Open  token.Token
	Input []token.Token
	Close token.Token
}

func (e *MacroCall) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Path.Span().Join(e.Close.Span))
}

func (e *MacroCall) exprNode() {}

// ExprFieldAccess is `target.field`, where Field is either a plain identifier
// or an integer tuple index.
type ExprFieldAccess struct {
	Attrs  []*Attribute
	Target Expr
	Dot    token.Token
	Field  token.Token
}

func (e *ExprFieldAccess) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Target.Span().Join(e.Field.Span))
}

func (e *ExprFieldAccess) exprNode() {}

type ExprGroup struct {
	Attrs []*Attribute
	Open  token.Token
	Inner Expr
	Close token.Token
}

func (e *ExprGroup) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Open.Span.Join(e.Close.Span))
}

func (e *ExprGroup) exprNode() {}

// ExprBinary carries the operator token(s): T2 is the zero token unless the
// operator occupies two token positions (`is not`).
type ExprBinary struct {
	Attrs []*Attribute
	LHS   Expr
	T1    token.Token
	T2    token.Token
	Op    BinOp
	RHS   Expr
}

func (e *ExprBinary) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.LHS.Span().Join(e.RHS.Span()))
}

func (e *ExprBinary) exprNode() {}

type ExprUnary struct {
	Attrs   []*Attribute
	OpTok   token.Token
	Op      UnOp
	Operand Expr
}

func (e *ExprUnary) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.OpTok.Span.Join(e.Operand.Span()))
}

func (e *ExprUnary) exprNode() {}

type ExprIndex struct {
	Attrs  []*Attribute
	Target Expr
	Open   token.Token
	Index  Expr
	Close  token.Token
}

func (e *ExprIndex) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Target.Span().Join(e.Close.Span))
}

func (e *ExprIndex) exprNode() {}

type ExprBreak struct {
	Attrs []*Attribute
	Break token.Token
	Label *token.Token
	Value Expr
}

func (e *ExprBreak) Span() token.Span {
	span := e.Break.Span
	if e.Label != nil {
		span = span.Join(e.Label.Span)
	}
	if e.Value != nil {
		span = span.Join(e.Value.Span())
	}
	return spanWithAttrs(e.Attrs, span)
}

func (e *ExprBreak) exprNode() {}

type ExprYield struct {
	Attrs []*Attribute
	Yield token.Token
	Value Expr
}

func (e *ExprYield) Span() token.Span {
	span := e.Yield.Span
	if e.Value != nil {
		span = span.Join(e.Value.Span())
	}
	return spanWithAttrs(e.Attrs, span)
}

func (e *ExprYield) exprNode() {}

type ExprBlock struct {
	Attrs []*Attribute
	Async *token.Token
	Block *Block
}

func (e *ExprBlock) Span() token.Span {
	span := e.Block.Span()
	if e.Async != nil {
		span = e.Async.Span.Join(span)
	}
	return spanWithAttrs(e.Attrs, span)
}

func (e *ExprBlock) exprNode() {}

type ExprReturn struct {
	Attrs  []*Attribute
	Return token.Token
	Value  Expr
}

func (e *ExprReturn) Span() token.Span {
	span := e.Return.Span
	if e.Value != nil {
		span = span.Join(e.Value.Span())
	}
	return spanWithAttrs(e.Attrs, span)
}

func (e *ExprReturn) exprNode() {}

type ExprAwait struct {
	Attrs  []*Attribute
	Target Expr
	Dot    token.Token
	Await  token.Token
}

func (e *ExprAwait) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Target.Span().Join(e.Await.Span))
}

func (e *ExprAwait) exprNode() {}

type ExprTry struct {
	Attrs    []*Attribute
	Target   Expr
	Question token.Token
}

func (e *ExprTry) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Target.Span().Join(e.Question.Span))
}

func (e *ExprTry) exprNode() {}

type ExprSelect struct {
	Attrs  []*Attribute
	Select token.Token
	Open   token.Token
	Arms   []*SelectArm
	Close  token.Token
}

// SelectArm is `pat = expr => body` or `default => body`.
type SelectArm struct {
	Default *token.Token
	Pat     Pat
	Eq      token.Token
	Value   Expr
	Arrow   token.Token
	Body    Expr
	Comma   *token.Token
}

func (e *ExprSelect) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Select.Span.Join(e.Close.Span))
}

func (e *ExprSelect) exprNode() {}

type ExprClosure struct {
	Attrs []*Attribute
	Async *token.Token
	Args  *ClosureArgs
	Body  Expr
}

// ClosureArgs is either an empty `||` (OrOr set) or `| a, b |`.
type ClosureArgs struct {
	OrOr   *token.Token
	Open   token.Token
	Items  []Pat
	Commas []token.Token
	Close  token.Token
}

func (a *ClosureArgs) Span() token.Span {
	if a.OrOr != nil {
		return a.OrOr.Span
	}
	return a.Open.Span.Join(a.Close.Span)
}

func (e *ExprClosure) Span() token.Span {
	span := e.Args.Span().Join(e.Body.Span())
	if e.Async != nil {
		span = e.Async.Span.Join(span)
	}
	return spanWithAttrs(e.Attrs, span)
}

func (e *ExprClosure) exprNode() {}

type ExprLit struct {
	Attrs []*Attribute
	Lit   Lit
}

func (e *ExprLit) Span() token.Span {
	return spanWithAttrs(e.Attrs, e.Lit.Span())
}

func (e *ExprLit) exprNode() {}
