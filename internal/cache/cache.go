// Package cache memoizes parsed expressions keyed by a digest of the source
// text, for hosts that re-evaluate the same snippets repeatedly.
package cache

import (
	"errors"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/crypto/blake2b"

	"ember/internal/ast"
	"ember/internal/lexer"
	"ember/internal/parser"
)

// Key is the content digest a cached expression is stored under.
type Key [blake2b.Size256]byte

func KeyFor(text string) Key {
	return blake2b.Sum256([]byte(text))
}

type Cache struct {
	entries *lru.Cache
	hits    uint64
	misses  uint64
}

func New(size int) (*Cache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

func (c *Cache) Get(text string) (ast.Expr, bool) {
	if v, ok := c.entries.Get(KeyFor(text)); ok {
		atomic.AddUint64(&c.hits, 1)
		return v.(ast.Expr), true
	}
	atomic.AddUint64(&c.misses, 1)
	return nil, false
}

func (c *Cache) Put(text string, expr ast.Expr) {
	c.entries.Add(KeyFor(text), expr)
}

// Parse returns the cached expression for text, lexing and parsing it on a
// miss. Only successful full parses are stored.
func (c *Cache) Parse(text string) (ast.Expr, error) {
	if expr, ok := c.Get(text); ok {
		return expr, nil
	}
	l := lexer.New(text)
	p := parser.New(l)
	if errs := l.Errors(); len(errs) > 0 {
		return nil, errors.New(strings.Join(errs, "; "))
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectEOF(); err != nil {
		return nil, err
	}
	c.Put(text, expr)
	return expr, nil
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}
