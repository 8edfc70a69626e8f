package token

import "fmt"

type Kind int

const (
	Illegal Kind = iota
	EOF

	Ident        // Identifier
	Label        // Loop label ('name)
	Int          // Integer literal
	Float        // Floating-point literal
	Str          // String literal ("...")
	ByteStr      // Byte string literal (b"...")
	Char         // Character literal ('a')
	Byte         // Byte literal (b'a')
	TemplatePart // Template string segment (for interpolation)
	InterpStart  // ${
	InterpEnd    // closing } of an interpolation
	TemplateEnd  // end of a template string

	// Keywords
	If
	Else
	While
	Loop
	For
	In
	Let
	Match
	Break
	Yield
	Return
	Await
	Async
	Select
	Default
	True
	False
	Is
	Not
	Fn

	// Operators
	Assign // =

	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %

	Bang  // !
	Amp   // &
	Caret // ^
	Shl   // <<
	Shr   // >>

	AndAnd // &&
	OrOr   // ||

	Eq    // ==
	NotEq // !=
	Lt    // <
	LtEq  // <=
	Gt    // >
	GtEq  // >=

	// Symbols
	Pipe       // |
	Comma      // ,
	Semicolon  // ;
	Dot        // .
	Colon      // :
	ColonColon // ::
	Arrow      // =>
	Pound      // #

	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
	Question // ?
)

// Span is a half-open byte range into the source text.
type Span struct {
	Start int
	End   int
}

// Join returns the smallest span covering both s and other.
func (s Span) Join(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

// TrimStart drops n bytes from the front of the span.
func (s Span) TrimStart(n int) Span {
	start := s.Start + n
	if start > s.End {
		start = s.End
	}
	return Span{Start: start, End: s.End}
}

func (s Span) Len() int { return s.End - s.Start }

type Position struct {
	Line   int
	Column int
}

type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span
	Pos    Position

	// Synthetic is a storage id for tokens whose text was generated at
	// parse time rather than sliced from the source. Zero means the token
	// text lives in the source.
	Synthetic int
}

func (k Kind) String() string {
	switch k {
	case Illegal:
		return "Illegal"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Label:
		return "Label"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Str:
		return "Str"
	case ByteStr:
		return "ByteStr"
	case Char:
		return "Char"
	case Byte:
		return "Byte"
	case TemplatePart:
		return "TemplatePart"
	case InterpStart:
		return "InterpStart"
	case InterpEnd:
		return "InterpEnd"
	case TemplateEnd:
		return "TemplateEnd"
	case If:
		return "If"
	case Else:
		return "Else"
	case While:
		return "While"
	case Loop:
		return "Loop"
	case For:
		return "For"
	case In:
		return "In"
	case Let:
		return "Let"
	case Match:
		return "Match"
	case Break:
		return "Break"
	case Yield:
		return "Yield"
	case Return:
		return "Return"
	case Await:
		return "Await"
	case Async:
		return "Async"
	case Select:
		return "Select"
	case Default:
		return "Default"
	case True:
		return "True"
	case False:
		return "False"
	case Is:
		return "Is"
	case Not:
		return "Not"
	case Fn:
		return "Fn"
	case Assign:
		return "Assign"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case Percent:
		return "Percent"
	case Bang:
		return "Bang"
	case Amp:
		return "Amp"
	case Caret:
		return "Caret"
	case Shl:
		return "Shl"
	case Shr:
		return "Shr"
	case AndAnd:
		return "AndAnd"
	case OrOr:
		return "OrOr"
	case Eq:
		return "Eq"
	case NotEq:
		return "NotEq"
	case Lt:
		return "Lt"
	case LtEq:
		return "LtEq"
	case Gt:
		return "Gt"
	case GtEq:
		return "GtEq"
	case Pipe:
		return "Pipe"
	case Comma:
		return "Comma"
	case Semicolon:
		return "Semicolon"
	case Dot:
		return "Dot"
	case Colon:
		return "Colon"
	case ColonColon:
		return "ColonColon"
	case Arrow:
		return "Arrow"
	case Pound:
		return "Pound"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Question:
		return "Question"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var keywords = map[string]Kind{
	"if":      If,
	"else":    Else,
	"while":   While,
	"loop":    Loop,
	"for":     For,
	"in":      In,
	"let":     Let,
	"match":   Match,
	"break":   Break,
	"yield":   Yield,
	"return":  Return,
	"await":   Await,
	"async":   Async,
	"select":  Select,
	"default": Default,
	"true":    True,
	"false":   False,
	"is":      Is,
	"not":     Not,
	"fn":      Fn,
}

func LookupIdent(lit string) Kind {
	if kind, ok := keywords[lit]; ok {
		return kind
	}
	return Ident
}
