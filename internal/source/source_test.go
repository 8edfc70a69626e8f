package source_test

import (
	"testing"

	"ember/internal/source"
	"ember/internal/token"
)

func TestSlice(t *testing.T) {
	src := source.New("test", "let x = 1")
	got, ok := src.Slice(token.Span{Start: 4, End: 5})
	if !ok || got != "x" {
		t.Fatalf("slice = %q/%v, want %q", got, ok, "x")
	}
	if _, ok := src.Slice(token.Span{Start: 4, End: 50}); ok {
		t.Fatal("out-of-range slice should fail")
	}
	if _, ok := src.Slice(token.Span{Start: 5, End: 4}); ok {
		t.Fatal("inverted slice should fail")
	}
}

func TestStorageIntern(t *testing.T) {
	st := source.NewStorage()
	a := st.InternString("loop")
	b := st.InternString("label")
	if a != 1 {
		t.Fatalf("first id = %d, want 1", a)
	}
	if b == a {
		t.Fatal("distinct strings must get distinct ids")
	}
	if again := st.InternString("loop"); again != a {
		t.Fatalf("re-intern = %d, want %d", again, a)
	}
	got, ok := st.GetString(b)
	if !ok || got != "label" {
		t.Fatalf("get = %q/%v, want %q", got, ok, "label")
	}
	if _, ok := st.GetString(42); ok {
		t.Fatal("unknown id should miss")
	}
}
