package ast

import "ember/internal/token"

// BinOp identifies a binary operator together with its precedence and
// associativity, used by the precedence climber.
type BinOp int

const (
	BinOpOr BinOp = iota + 1 // ||
	BinOpAnd                 // &&

	BinOpEq    // ==
	BinOpNeq   // !=
	BinOpLt    // <
	BinOpGt    // >
	BinOpLte   // <=
	BinOpGte   // >=
	BinOpIs    // is
	BinOpIsNot // is not

	BinOpBitOr  // |
	BinOpBitXor // ^
	BinOpBitAnd // &

	BinOpShl // <<
	BinOpShr // >>

	BinOpAdd // +
	BinOpSub // -

	BinOpMul // *
	BinOpDiv // /
	BinOpRem // %
)

func (op BinOp) String() string {
	switch op {
	case BinOpOr:
		return "||"
	case BinOpAnd:
		return "&&"
	case BinOpEq:
		return "=="
	case BinOpNeq:
		return "!="
	case BinOpLt:
		return "<"
	case BinOpGt:
		return ">"
	case BinOpLte:
		return "<="
	case BinOpGte:
		return ">="
	case BinOpIs:
		return "is"
	case BinOpIsNot:
		return "is not"
	case BinOpBitOr:
		return "|"
	case BinOpBitXor:
		return "^"
	case BinOpBitAnd:
		return "&"
	case BinOpShl:
		return "<<"
	case BinOpShr:
		return ">>"
	case BinOpAdd:
		return "+"
	case BinOpSub:
		return "-"
	case BinOpMul:
		return "*"
	case BinOpDiv:
		return "/"
	case BinOpRem:
		return "%"
	default:
		return "BinOp(?)"
	}
}

// Precedence returns the binding power of the operator. Higher binds tighter.
func (op BinOp) Precedence() int {
	switch op {
	case BinOpOr:
		return 1
	case BinOpAnd:
		return 2
	case BinOpEq, BinOpNeq, BinOpLt, BinOpGt, BinOpLte, BinOpGte, BinOpIs, BinOpIsNot:
		return 3
	case BinOpBitOr:
		return 4
	case BinOpBitXor:
		return 5
	case BinOpBitAnd:
		return 6
	case BinOpShl, BinOpShr:
		return 7
	case BinOpAdd, BinOpSub:
		return 8
	case BinOpMul, BinOpDiv, BinOpRem:
		return 9
	default:
		return 0
	}
}

// IsAssoc reports whether chains of the operator at equal precedence may be
// combined without explicit grouping. Comparison-group operators are
// deliberately non-associative; mixing them requires parentheses.
func (op BinOp) IsAssoc() bool {
	switch op {
	case BinOpEq, BinOpNeq, BinOpLt, BinOpGt, BinOpLte, BinOpGte, BinOpIs, BinOpIsNot:
		return false
	default:
		return true
	}
}

// BinOpFromTokens inspects up to two lookahead token kinds and returns the
// operator they denote, along with how many tokens it occupies (1 or 2).
func BinOpFromTokens(k1, k2 token.Kind) (BinOp, int, bool) {
	switch k1 {
	case token.OrOr:
		return BinOpOr, 1, true
	case token.AndAnd:
		return BinOpAnd, 1, true
	case token.Eq:
		return BinOpEq, 1, true
	case token.NotEq:
		return BinOpNeq, 1, true
	case token.Lt:
		return BinOpLt, 1, true
	case token.Gt:
		return BinOpGt, 1, true
	case token.LtEq:
		return BinOpLte, 1, true
	case token.GtEq:
		return BinOpGte, 1, true
	case token.Is:
		if k2 == token.Not {
			return BinOpIsNot, 2, true
		}
		return BinOpIs, 1, true
	case token.Pipe:
		return BinOpBitOr, 1, true
	case token.Caret:
		return BinOpBitXor, 1, true
	case token.Amp:
		return BinOpBitAnd, 1, true
	case token.Shl:
		return BinOpShl, 1, true
	case token.Shr:
		return BinOpShr, 1, true
	case token.Plus:
		return BinOpAdd, 1, true
	case token.Minus:
		return BinOpSub, 1, true
	case token.Star:
		return BinOpMul, 1, true
	case token.Slash:
		return BinOpDiv, 1, true
	case token.Percent:
		return BinOpRem, 1, true
	default:
		return 0, 0, false
	}
}

// UnOp identifies a prefix operator.
type UnOp int

const (
	UnOpNot   UnOp = iota + 1 // !
	UnOpNeg                   // -
	UnOpRef                   // &
	UnOpDeref                 // *
)

func (op UnOp) String() string {
	switch op {
	case UnOpNot:
		return "!"
	case UnOpNeg:
		return "-"
	case UnOpRef:
		return "&"
	case UnOpDeref:
		return "*"
	default:
		return "UnOp(?)"
	}
}

// UnOpFromToken maps a prefix token kind to its operator.
func UnOpFromToken(k token.Kind) (UnOp, bool) {
	switch k {
	case token.Bang:
		return UnOpNot, true
	case token.Minus:
		return UnOpNeg, true
	case token.Amp:
		return UnOpRef, true
	case token.Star:
		return UnOpDeref, true
	default:
		return 0, false
	}
}
