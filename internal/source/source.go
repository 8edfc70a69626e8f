package source

import "ember/internal/token"

// Source holds the text of a single input and answers span lookups.
type Source struct {
	name string
	text string
}

func New(name, text string) *Source {
	return &Source{name: name, text: text}
}

func (s *Source) Name() string { return s.name }

func (s *Source) Text() string { return s.text }

func (s *Source) Len() int { return len(s.text) }

// Slice returns the text covered by span. The second return value is false
// if the span falls outside the source.
func (s *Source) Slice(span token.Span) (string, bool) {
	if span.Start < 0 || span.End < span.Start || span.End > len(s.text) {
		return "", false
	}
	return s.text[span.Start:span.End], true
}
