package ast

import "ember/internal/token"

// Lit is the closed set of literal forms.
type Lit interface {
	Node
	litNode()
}

type LitBool struct {
	Tok token.Token
}

func (l *LitBool) Span() token.Span { return l.Tok.Span }
func (l *LitBool) litNode()         {}

// LitNumber covers integer and floating-point tokens.
type LitNumber struct {
	Tok token.Token
}

func (l *LitNumber) Span() token.Span { return l.Tok.Span }
func (l *LitNumber) litNode()         {}

type LitStr struct {
	Tok token.Token
}

func (l *LitStr) Span() token.Span { return l.Tok.Span }
func (l *LitStr) litNode()         {}

type LitByteStr struct {
	Tok token.Token
}

func (l *LitByteStr) Span() token.Span { return l.Tok.Span }
func (l *LitByteStr) litNode()         {}

type LitChar struct {
	Tok token.Token
}

func (l *LitChar) Span() token.Span { return l.Tok.Span }
func (l *LitChar) litNode()         {}

type LitByte struct {
	Tok token.Token
}

func (l *LitByte) Span() token.Span { return l.Tok.Span }
func (l *LitByte) litNode()         {}

// LitUnit is the empty `()`.
type LitUnit struct {
	Open  token.Token
	Close token.Token
}

func (l *LitUnit) Span() token.Span { return l.Open.Span.Join(l.Close.Span) }
func (l *LitUnit) litNode()         {}

type LitTuple struct {
	Open   token.Token
	Items  []Expr
	Commas []token.Token
	Close  token.Token
}

func (l *LitTuple) Span() token.Span { return l.Open.Span.Join(l.Close.Span) }
func (l *LitTuple) litNode()         {}

type LitVec struct {
	Open   token.Token
	Items  []Expr
	Commas []token.Token
	Close  token.Token
}

func (l *LitVec) Span() token.Span { return l.Open.Span.Join(l.Close.Span) }
func (l *LitVec) litNode()         {}

// LitObject is `#{ .. }` (anonymous) or `Path { .. }` (named, eager-brace
// gated at the parse site).
type LitObject struct {
	Ident  ObjectIdent
	Open   token.Token
	Fields []*ObjectField
	Close  token.Token
}

// ObjectIdent keys an object literal: a `#` for anonymous objects or a path
// for named ones.
type ObjectIdent struct {
	Pound *token.Token
	Path  *Path
}

func (o ObjectIdent) Span() token.Span {
	if o.Pound != nil {
		return o.Pound.Span
	}
	return o.Path.Span()
}

// ObjectField is `key: value` or the shorthand `key`.
type ObjectField struct {
	Key   token.Token
	Colon *token.Token
	Value Expr
	Comma *token.Token
}

func (l *LitObject) Span() token.Span {
	return l.Ident.Span().Join(l.Close.Span)
}

func (l *LitObject) litNode() {}

// LitTemplate is a backquoted template string with interpolations.
type LitTemplate struct {
	Parts []TemplatePart
	End   token.Token
}

func (l *LitTemplate) Span() token.Span {
	if len(l.Parts) == 0 {
		return l.End.Span
	}
	return l.Parts[0].Span().Join(l.End.Span)
}

func (l *LitTemplate) litNode() {}

type TemplatePart interface {
	Node
	templatePart()
}

type TemplateText struct {
	Tok token.Token
}

func (t *TemplateText) Span() token.Span { return t.Tok.Span }
func (t *TemplateText) templatePart()    {}

type TemplateInterp struct {
	Start token.Token
	Expr  Expr
	End   token.Token
}

func (t *TemplateInterp) Span() token.Span { return t.Start.Span.Join(t.End.Span) }
func (t *TemplateInterp) templatePart()    {}
