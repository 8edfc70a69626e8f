package ast_test

import (
	"testing"

	"ember/internal/ast"
	"ember/internal/token"
)

func TestNeedsSemi(t *testing.T) {
	noSemi := []ast.Expr{
		&ast.ExprWhile{},
		&ast.ExprLoop{},
		&ast.ExprFor{},
		&ast.ExprIf{},
		&ast.ExprMatch{},
		&ast.ExprBlock{},
		&ast.ExprSelect{},
	}
	for _, e := range noSemi {
		if ast.NeedsSemi(e) {
			t.Errorf("%T should not need a semicolon", e)
		}
	}
	needSemi := []ast.Expr{
		&ast.ExprLit{},
		&ast.ExprCall{},
		&ast.ExprBreak{},
		&ast.ExprReturn{},
		&ast.ExprClosure{},
		&ast.Path{},
	}
	for _, e := range needSemi {
		if !ast.NeedsSemi(e) {
			t.Errorf("%T should need a semicolon", e)
		}
	}
}

func TestIsChainable(t *testing.T) {
	for _, e := range []ast.Expr{&ast.ExprWhile{}, &ast.ExprLoop{}, &ast.ExprFor{}} {
		if ast.IsChainable(e) {
			t.Errorf("%T should not be chainable", e)
		}
	}
	for _, e := range []ast.Expr{&ast.ExprIf{}, &ast.ExprCall{}, &ast.ExprLit{}, &ast.Path{}} {
		if !ast.IsChainable(e) {
			t.Errorf("%T should be chainable", e)
		}
	}
}

func TestTakeAttributes(t *testing.T) {
	attrs := []*ast.Attribute{{Hash: token.Token{Kind: token.Pound}}}
	e := &ast.ExprBreak{Attrs: attrs}
	taken := ast.TakeAttributes(e)
	if len(taken) != 1 {
		t.Fatalf("taken = %d attributes, want 1", len(taken))
	}
	if len(e.Attrs) != 0 {
		t.Fatalf("node kept %d attributes after take", len(e.Attrs))
	}
	if len(ast.TakeAttributes(e)) != 0 {
		t.Fatal("second take should be empty")
	}
}

func TestPathCarriesNoAttributes(t *testing.T) {
	p := &ast.Path{First: token.Token{Kind: token.Ident, Lexeme: "x"}}
	if ast.Attributes(p) != nil {
		t.Fatal("paths must not report attributes")
	}
	if ast.TakeAttributes(p) != nil {
		t.Fatal("paths must not yield attributes")
	}
}
