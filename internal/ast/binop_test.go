package ast_test

import (
	"testing"

	"ember/internal/ast"
	"ember/internal/token"
)

func TestPrecedenceOrdering(t *testing.T) {
	ordered := [][]ast.BinOp{
		{ast.BinOpOr},
		{ast.BinOpAnd},
		{ast.BinOpEq, ast.BinOpNeq, ast.BinOpLt, ast.BinOpGt, ast.BinOpLte, ast.BinOpGte, ast.BinOpIs, ast.BinOpIsNot},
		{ast.BinOpBitOr},
		{ast.BinOpBitXor},
		{ast.BinOpBitAnd},
		{ast.BinOpShl, ast.BinOpShr},
		{ast.BinOpAdd, ast.BinOpSub},
		{ast.BinOpMul, ast.BinOpDiv, ast.BinOpRem},
	}
	prev := 0
	for _, group := range ordered {
		prec := group[0].Precedence()
		if prec <= prev {
			t.Fatalf("group starting with %s has precedence %d, want above %d", group[0], prec, prev)
		}
		for _, op := range group[1:] {
			if op.Precedence() != prec {
				t.Errorf("%s precedence = %d, want %d", op, op.Precedence(), prec)
			}
		}
		prev = prec
	}
}

func TestComparisonGroupNonAssociative(t *testing.T) {
	for _, op := range []ast.BinOp{
		ast.BinOpEq, ast.BinOpNeq, ast.BinOpLt, ast.BinOpGt,
		ast.BinOpLte, ast.BinOpGte, ast.BinOpIs, ast.BinOpIsNot,
	} {
		if op.IsAssoc() {
			t.Errorf("%s should not be associative", op)
		}
	}
	for _, op := range []ast.BinOp{ast.BinOpAdd, ast.BinOpMul, ast.BinOpAnd, ast.BinOpShl} {
		if !op.IsAssoc() {
			t.Errorf("%s should be associative", op)
		}
	}
}

func TestBinOpFromTokens(t *testing.T) {
	tests := []struct {
		k1, k2 token.Kind
		op     ast.BinOp
		width  int
	}{
		{token.Plus, token.Int, ast.BinOpAdd, 1},
		{token.Is, token.Ident, ast.BinOpIs, 1},
		{token.Is, token.Not, ast.BinOpIsNot, 2},
		{token.OrOr, token.Ident, ast.BinOpOr, 1},
		{token.Pipe, token.Ident, ast.BinOpBitOr, 1},
	}
	for _, tt := range tests {
		op, width, ok := ast.BinOpFromTokens(tt.k1, tt.k2)
		if !ok || op != tt.op || width != tt.width {
			t.Errorf("BinOpFromTokens(%s, %s) = %s/%d/%v, want %s/%d", tt.k1, tt.k2, op, width, ok, tt.op, tt.width)
		}
	}
	if _, _, ok := ast.BinOpFromTokens(token.Dot, token.Ident); ok {
		t.Error("Dot should not be a binary operator")
	}
}
