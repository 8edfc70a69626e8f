package ast

import (
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// Label names a loop, like `'outer`. The token never owns its text: it is
// resolved on demand from the source (the span minus the leading quote) or,
// for synthetic labels, from the storage table.
type Label struct {
	Token token.Token
}

func (l Label) Span() token.Span { return l.Token.Span }

// Resolve produces the label text without the leading quote.
func (l Label) Resolve(storage *source.Storage, src *source.Source) (string, error) {
	if id := l.Token.Synthetic; id != 0 {
		text, ok := storage.GetString(id)
		if !ok {
			return "", diag.At(diag.BadSyntheticID, l.Token, "bad synthetic id %d for ident", id)
		}
		return text, nil
	}

	text, ok := src.Slice(l.Token.Span.TrimStart(1))
	if !ok {
		return "", diag.At(diag.BadSlice, l.Token, "label span out of range")
	}
	return text, nil
}
