// Package diag defines the structured error surface shared by the lexer,
// parser and resolution helpers. Every failure carries a span pointing at the
// offending token or sub-expression and a kind from a closed taxonomy, so
// callers can react to the kind while users get a positioned message.
package diag

import (
	"fmt"

	"ember/internal/token"
)

type Kind int

const (
	// ExpectedExpression means no dispatch branch matched the lookahead token.
	ExpectedExpression Kind = iota + 1
	// TokenMismatch means a specific expected token kind was not found.
	TokenMismatch
	// UnsupportedLabel means a leading label was consumed but the following
	// construct does not accept one.
	UnsupportedLabel
	// UnsupportedAsync means a leading async marker was consumed but the
	// following construct does not accept one.
	UnsupportedAsync
	// UnsupportedFieldAccess means the token after '.' is neither a plain
	// identifier nor a tuple index.
	UnsupportedFieldAccess
	// PrecedenceGroupRequired means an ambiguous same-precedence chain of
	// non-associative operators must be parenthesized.
	PrecedenceGroupRequired
	// AttributesNotSupported means attributes were supplied in a context
	// that forbids them.
	AttributesNotSupported
	// BadSlice means a span did not resolve to source text.
	BadSlice
	// BadSyntheticID means a synthetic id was not registered in storage.
	BadSyntheticID
)

func (k Kind) String() string {
	switch k {
	case ExpectedExpression:
		return "ExpectedExpression"
	case TokenMismatch:
		return "TokenMismatch"
	case UnsupportedLabel:
		return "UnsupportedLabel"
	case UnsupportedAsync:
		return "UnsupportedAsync"
	case UnsupportedFieldAccess:
		return "UnsupportedFieldAccess"
	case PrecedenceGroupRequired:
		return "PrecedenceGroupRequired"
	case AttributesNotSupported:
		return "AttributesNotSupported"
	case BadSlice:
		return "BadSlice"
	case BadSyntheticID:
		return "BadSyntheticID"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Error struct {
	Kind Kind
	Span token.Span
	Pos  token.Position
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// New builds an error located at span/pos.
func New(kind Kind, span token.Span, pos token.Position, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Span: span,
		Pos:  pos,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// At builds an error located at a token.
func At(kind Kind, tok token.Token, format string, args ...interface{}) *Error {
	return New(kind, tok.Span, tok.Pos, format, args...)
}
