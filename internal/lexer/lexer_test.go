package lexer_test

import (
	"testing"

	"ember/internal/lexer"
	"ember/internal/token"
)

type want struct {
	kind   token.Kind
	lexeme string
}

func lex(t *testing.T, input string) []token.Token {
	t.Helper()
	l := lexer.New(input)
	toks := l.Tokens()
	if errs := l.Errors(); len(errs) > 0 {
		t.Fatalf("lex %q: %v", input, errs)
	}
	return toks
}

func check(t *testing.T, input string, wants []want) {
	t.Helper()
	toks := lex(t, input)
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("lex %q: missing EOF", input)
	}
	toks = toks[:len(toks)-1]
	if len(toks) != len(wants) {
		t.Fatalf("lex %q: got %d tokens, want %d: %v", input, len(toks), len(wants), toks)
	}
	for i, w := range wants {
		if toks[i].Kind != w.kind {
			t.Errorf("lex %q: token %d kind = %s, want %s", input, i, toks[i].Kind, w.kind)
		}
		if toks[i].Lexeme != w.lexeme {
			t.Errorf("lex %q: token %d lexeme = %q, want %q", input, i, toks[i].Lexeme, w.lexeme)
		}
	}
}

func TestOperators(t *testing.T) {
	check(t, ":: == != <= >= << >> && || => = < > | & ^ ?", []want{
		{token.ColonColon, "::"},
		{token.Eq, "=="},
		{token.NotEq, "!="},
		{token.LtEq, "<="},
		{token.GtEq, ">="},
		{token.Shl, "<<"},
		{token.Shr, ">>"},
		{token.AndAnd, "&&"},
		{token.OrOr, "||"},
		{token.Arrow, "=>"},
		{token.Assign, "="},
		{token.Lt, "<"},
		{token.Gt, ">"},
		{token.Pipe, "|"},
		{token.Amp, "&"},
		{token.Caret, "^"},
		{token.Question, "?"},
	})
}

func TestKeywords(t *testing.T) {
	check(t, "if else while loop for in let match break yield return await async select default true false is not fn", []want{
		{token.If, "if"},
		{token.Else, "else"},
		{token.While, "while"},
		{token.Loop, "loop"},
		{token.For, "for"},
		{token.In, "in"},
		{token.Let, "let"},
		{token.Match, "match"},
		{token.Break, "break"},
		{token.Yield, "yield"},
		{token.Return, "return"},
		{token.Await, "await"},
		{token.Async, "async"},
		{token.Select, "select"},
		{token.Default, "default"},
		{token.True, "true"},
		{token.False, "false"},
		{token.Is, "is"},
		{token.Not, "not"},
		{token.Fn, "fn"},
	})
}

func TestNumbers(t *testing.T) {
	check(t, "42 1_000 0xFF 0o77 0b1010 3.14 1e9 2.5e-3", []want{
		{token.Int, "42"},
		{token.Int, "1_000"},
		{token.Int, "0xFF"},
		{token.Int, "0o77"},
		{token.Int, "0b1010"},
		{token.Float, "3.14"},
		{token.Float, "1e9"},
		{token.Float, "2.5e-3"},
	})
}

func TestStringsAndChars(t *testing.T) {
	check(t, `"hello" "a\nb" 'x' '\t' b"raw" b'z'`, []want{
		{token.Str, "hello"},
		{token.Str, "a\nb"},
		{token.Char, "x"},
		{token.Char, "\t"},
		{token.ByteStr, "raw"},
		{token.Byte, "z"},
	})
}

func TestLabels(t *testing.T) {
	check(t, "'outer: loop { break 'outer }", []want{
		{token.Label, "outer"},
		{token.Colon, ":"},
		{token.Loop, "loop"},
		{token.LBrace, "{"},
		{token.Break, "break"},
		{token.Label, "outer"},
		{token.RBrace, "}"},
	})
}

func TestLabelSpanIncludesQuote(t *testing.T) {
	toks := lex(t, "'outer")
	if len(toks) != 2 || toks[0].Kind != token.Label {
		t.Fatalf("tokens = %v", toks)
	}
	want := token.Span{Start: 0, End: 6}
	if toks[0].Span != want {
		t.Fatalf("span = %v, want %v", toks[0].Span, want)
	}
}

func TestTemplate(t *testing.T) {
	check(t, "`a ${x + 1} b`", []want{
		{token.TemplatePart, "a "},
		{token.InterpStart, "${"},
		{token.Ident, "x"},
		{token.Plus, "+"},
		{token.Int, "1"},
		{token.InterpEnd, "}"},
		{token.TemplatePart, " b"},
		{token.TemplateEnd, ""},
	})
}

func TestEmptyTemplate(t *testing.T) {
	check(t, "``", []want{
		{token.TemplateEnd, ""},
	})
}

func TestComments(t *testing.T) {
	check(t, "a // trailing\nb /* inline */ c", []want{
		{token.Ident, "a"},
		{token.Ident, "b"},
		{token.Ident, "c"},
	})
}

func TestPositions(t *testing.T) {
	toks := lex(t, "a\n  b")
	if toks[0].Pos.Line != 1 {
		t.Errorf("a line = %d, want 1", toks[0].Pos.Line)
	}
	if toks[1].Pos.Line != 2 || toks[1].Pos.Column != 3 {
		t.Errorf("b pos = %d:%d, want 2:3", toks[1].Pos.Line, toks[1].Pos.Column)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := lexer.New(`"abc`)
	l.Tokens()
	if len(l.Errors()) == 0 {
		t.Fatal("expected lex error for unterminated string")
	}
}

func TestNestedTemplateRejected(t *testing.T) {
	l := lexer.New("`a ${`b`}`")
	l.Tokens()
	if len(l.Errors()) == 0 {
		t.Fatal("expected lex error for nested template")
	}
}
