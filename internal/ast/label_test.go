package ast_test

import (
	"errors"
	"testing"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

func TestLabelResolveFromSource(t *testing.T) {
	src := source.New("test", "'outer: loop { }")
	lab := ast.Label{Token: token.Token{
		Kind:   token.Label,
		Lexeme: "outer",
		Span:   token.Span{Start: 0, End: 6},
	}}
	got, err := lab.Resolve(source.NewStorage(), src)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "outer" {
		t.Fatalf("resolve = %q, want %q", got, "outer")
	}
}

func TestLabelResolveSynthetic(t *testing.T) {
	storage := source.NewStorage()
	id := storage.InternString("gen")
	lab := ast.Label{Token: token.Token{Kind: token.Label, Synthetic: id}}
	got, err := lab.Resolve(storage, source.New("test", ""))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "gen" {
		t.Fatalf("resolve = %q, want %q", got, "gen")
	}
}

func TestLabelResolveBadSyntheticID(t *testing.T) {
	lab := ast.Label{Token: token.Token{Kind: token.Label, Synthetic: 99}}
	_, err := lab.Resolve(source.NewStorage(), source.New("test", ""))
	var de *diag.Error
	if !errors.As(err, &de) || de.Kind != diag.BadSyntheticID {
		t.Fatalf("err = %v, want BadSyntheticID", err)
	}
}

func TestLabelResolveBadSlice(t *testing.T) {
	lab := ast.Label{Token: token.Token{
		Kind: token.Label,
		Span: token.Span{Start: 5, End: 50},
	}}
	_, err := lab.Resolve(source.NewStorage(), source.New("test", "short"))
	var de *diag.Error
	if !errors.As(err, &de) || de.Kind != diag.BadSlice {
		t.Fatalf("err = %v, want BadSlice", err)
	}
}
