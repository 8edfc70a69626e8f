package cache_test

import (
	"testing"

	"ember/internal/cache"
)

func TestParseCaches(t *testing.T) {
	c, err := cache.New(4)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := c.Parse("1 + 2 * 3"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
	if _, err := c.Parse("1 + 2 * 3"); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Fatalf("stats = %d/%d, want 1 hit, 1 miss", hits, misses)
	}
}

func TestParseErrorNotCached(t *testing.T) {
	c, err := cache.New(4)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := c.Parse("1 +"); err == nil {
		t.Fatal("expected parse error")
	}
	if c.Len() != 0 {
		t.Fatalf("len = %d, want 0", c.Len())
	}
	if _, err := c.Parse("1 +"); err == nil {
		t.Fatal("expected parse error on retry")
	}
	_, misses := c.Stats()
	if misses != 2 {
		t.Fatalf("misses = %d, want 2", misses)
	}
}

func TestKeyFor(t *testing.T) {
	if cache.KeyFor("a") == cache.KeyFor("b") {
		t.Fatal("distinct inputs must hash differently")
	}
	if cache.KeyFor("a") != cache.KeyFor("a") {
		t.Fatal("hashing must be deterministic")
	}
}

func TestEviction(t *testing.T) {
	c, err := cache.New(2)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for _, input := range []string{"1", "2", "3"} {
		if _, err := c.Parse(input); err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
}
