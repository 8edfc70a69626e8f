package ast

// Capability queries over the expression variants. Each switch is exhaustive
// over the closed set; an unknown variant is a programming error.

// NeedsSemi reports whether an expression must be followed by a semicolon
// when used as a non-trailing block statement. It is a pure function of the
// variant tag.
func NeedsSemi(e Expr) bool {
	switch e.(type) {
	case *ExprWhile:
		return false
	case *ExprLoop:
		return false
	case *ExprFor:
		return false
	case *ExprIf:
		return false
	case *ExprMatch:
		return false
	case *ExprBlock:
		return false
	case *ExprSelect:
		return false
	default:
		return true
	}
}

// IsChainable reports whether postfix chain steps may wrap the expression.
// Loop forms are never chainable targets.
func IsChainable(e Expr) bool {
	switch e.(type) {
	case *ExprWhile:
		return false
	case *ExprLoop:
		return false
	case *ExprFor:
		return false
	default:
		return true
	}
}

// Attributes returns a read-only view of the attribute list of an expression.
// Paths carry no attributes; items delegate to their own store.
func Attributes(e Expr) []*Attribute {
	switch e := e.(type) {
	case *Path:
		return nil
	case *ItemFn:
		return e.Attrs
	case *ExprAssign:
		return e.Attrs
	case *ExprWhile:
		return e.Attrs
	case *ExprLoop:
		return e.Attrs
	case *ExprFor:
		return e.Attrs
	case *ExprLet:
		return e.Attrs
	case *ExprIf:
		return e.Attrs
	case *ExprMatch:
		return e.Attrs
	case *ExprCall:
		return e.Attrs
	case *MacroCall:
		return e.Attrs
	case *ExprFieldAccess:
		return e.Attrs
	case *ExprGroup:
		return e.Attrs
	case *ExprBinary:
		return e.Attrs
	case *ExprUnary:
		return e.Attrs
	case *ExprIndex:
		return e.Attrs
	case *ExprBreak:
		return e.Attrs
	case *ExprYield:
		return e.Attrs
	case *ExprBlock:
		return e.Attrs
	case *ExprReturn:
		return e.Attrs
	case *ExprAwait:
		return e.Attrs
	case *ExprTry:
		return e.Attrs
	case *ExprSelect:
		return e.Attrs
	case *ExprClosure:
		return e.Attrs
	case *ExprLit:
		return e.Attrs
	default:
		return nil
	}
}

// TakeAttributes transfers ownership of the attribute list to the caller,
// leaving the node's list empty. Nothing else of the node is touched.
func TakeAttributes(e Expr) []*Attribute {
	switch e := e.(type) {
	case *Path:
		return nil
	case *ItemFn:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprAssign:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprWhile:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprLoop:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprFor:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprLet:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprIf:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprMatch:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprCall:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *MacroCall:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprFieldAccess:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprGroup:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprBinary:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprUnary:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprIndex:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprBreak:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprYield:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprBlock:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprReturn:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprAwait:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprTry:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprSelect:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprClosure:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	case *ExprLit:
		attrs := e.Attrs
		e.Attrs = nil
		return attrs
	default:
		return nil
	}
}
