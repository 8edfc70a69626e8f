package parser_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/parser"
	"ember/internal/token"
)

func parse(t *testing.T, input string) ast.Expr {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	if errs := l.Errors(); len(errs) > 0 {
		t.Fatalf("lex %q: %v", input, errs)
	}
	expr, err := p.ParseExpr()
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	if err := p.ExpectEOF(); err != nil {
		t.Fatalf("parse %q: trailing input: %v", input, err)
	}
	return expr
}

func parseErr(t *testing.T, input string) *diag.Error {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	expr, err := p.ParseExpr()
	if err == nil {
		err = p.ExpectEOF()
	}
	if err == nil {
		t.Fatalf("parse %q: expected error, got %s", input, ast.Dump(expr))
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("parse %q: error %v is not structured", input, err)
	}
	return de
}

func TestBinaryPrecedence(t *testing.T) {
	expr := parse(t, "1 + 2 * 3")
	bin, ok := expr.(*ast.ExprBinary)
	if !ok || bin.Op != ast.BinOpAdd {
		t.Fatalf("expected outer +, got %s", ast.Dump(expr))
	}
	rhs, ok := bin.RHS.(*ast.ExprBinary)
	if !ok || rhs.Op != ast.BinOpMul {
		t.Fatalf("expected * to bind tighter, got %s", ast.Dump(expr))
	}
}

func TestBinaryLeftAssociative(t *testing.T) {
	expr := parse(t, "1 - 2 - 3")
	bin, ok := expr.(*ast.ExprBinary)
	if !ok || bin.Op != ast.BinOpSub {
		t.Fatalf("expected outer -, got %s", ast.Dump(expr))
	}
	if _, ok := bin.LHS.(*ast.ExprBinary); !ok {
		t.Fatalf("expected left-nested -, got %s", ast.Dump(expr))
	}
	if _, ok := bin.RHS.(*ast.ExprBinary); ok {
		t.Fatalf("expected flat right operand, got %s", ast.Dump(expr))
	}
}

func TestComparisonChainRejected(t *testing.T) {
	for _, input := range []string{
		"a == b == c",
		"a < b <= c",
		"a is b is not c",
	} {
		de := parseErr(t, input)
		if de.Kind != diag.PrecedenceGroupRequired {
			t.Errorf("parse %q: kind = %s, want PrecedenceGroupRequired", input, de.Kind)
		}
	}
	// Explicit grouping resolves the ambiguity.
	parse(t, "(a == b) == c")
	parse(t, "a == (b == c)")
}

func TestIsNotOperator(t *testing.T) {
	expr := parse(t, "a is not b")
	bin, ok := expr.(*ast.ExprBinary)
	if !ok || bin.Op != ast.BinOpIsNot {
		t.Fatalf("expected is-not, got %s", ast.Dump(expr))
	}
	if bin.T1.Kind != token.Is || bin.T2.Kind != token.Not {
		t.Fatalf("operator tokens = %s %s", bin.T1.Kind, bin.T2.Kind)
	}
}

func TestUnaryBindsBeforeBinary(t *testing.T) {
	expr := parse(t, "-a * b")
	bin, ok := expr.(*ast.ExprBinary)
	if !ok || bin.Op != ast.BinOpMul {
		t.Fatalf("expected outer *, got %s", ast.Dump(expr))
	}
	un, ok := bin.LHS.(*ast.ExprUnary)
	if !ok || un.Op != ast.UnOpNeg {
		t.Fatalf("expected negated left operand, got %s", ast.Dump(expr))
	}
}

func TestPostfixChain(t *testing.T) {
	expr := parse(t, "foo.bar[0](1, 2)?")
	try, ok := expr.(*ast.ExprTry)
	if !ok {
		t.Fatalf("expected try, got %s", ast.Dump(expr))
	}
	call, ok := try.Target.(*ast.ExprCall)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("expected call with two args, got %s", ast.Dump(expr))
	}
	index, ok := call.Func.(*ast.ExprIndex)
	if !ok {
		t.Fatalf("expected index, got %s", ast.Dump(expr))
	}
	field, ok := index.Target.(*ast.ExprFieldAccess)
	if !ok || field.Field.Lexeme != "bar" {
		t.Fatalf("expected field access on foo, got %s", ast.Dump(expr))
	}
}

func TestAwaitChain(t *testing.T) {
	expr := parse(t, "fetch().await?")
	try, ok := expr.(*ast.ExprTry)
	if !ok {
		t.Fatalf("expected try, got %s", ast.Dump(expr))
	}
	if _, ok := try.Target.(*ast.ExprAwait); !ok {
		t.Fatalf("expected await under try, got %s", ast.Dump(expr))
	}
}

func TestAssign(t *testing.T) {
	expr := parse(t, "a = b = c")
	outer, ok := expr.(*ast.ExprAssign)
	if !ok {
		t.Fatalf("expected assign, got %s", ast.Dump(expr))
	}
	if _, ok := outer.RHS.(*ast.ExprAssign); !ok {
		t.Fatalf("expected right-nested assign, got %s", ast.Dump(expr))
	}
}

func TestTupleIndexField(t *testing.T) {
	expr := parse(t, "pair.0 + 2")
	bin, ok := expr.(*ast.ExprBinary)
	if !ok || bin.Op != ast.BinOpAdd {
		t.Fatalf("expected outer +, got %s", ast.Dump(expr))
	}
	field, ok := bin.LHS.(*ast.ExprFieldAccess)
	if !ok || field.Field.Kind != token.Int {
		t.Fatalf("expected tuple index field, got %s", ast.Dump(expr))
	}
}

func TestUnsupportedFieldAccess(t *testing.T) {
	de := parseErr(t, "foo.(bar)")
	if de.Kind != diag.UnsupportedFieldAccess {
		t.Fatalf("kind = %s, want UnsupportedFieldAccess", de.Kind)
	}
}

func TestLoopsNotChainable(t *testing.T) {
	// The bracket and paren open new statements rather than indexing or
	// calling the loop.
	for _, tt := range []struct {
		input string
	}{
		{"{ for x in xs {} [0] }"},
		{"{ while x {} (1) }"},
		{"{ loop {} [0] }"},
	} {
		expr := parse(t, tt.input)
		block, ok := expr.(*ast.ExprBlock)
		if !ok {
			t.Fatalf("parse %q: expected block, got %s", tt.input, ast.Dump(expr))
		}
		if len(block.Block.Stmts) != 2 {
			t.Fatalf("parse %q: expected 2 statements, got %s", tt.input, ast.Dump(expr))
		}
	}
}

func TestChainAppliesToLoopResultViaGroup(t *testing.T) {
	expr := parse(t, "(loop {})[0]")
	if _, ok := expr.(*ast.ExprIndex); !ok {
		t.Fatalf("expected index over grouped loop, got %s", ast.Dump(expr))
	}
}

func TestBraceEagerness(t *testing.T) {
	// At expression level a trailing brace opens an object literal.
	expr := parse(t, "x { a: 1 }")
	lit, ok := expr.(*ast.ExprLit)
	if !ok {
		t.Fatalf("expected object literal, got %s", ast.Dump(expr))
	}
	obj, ok := lit.Lit.(*ast.LitObject)
	if !ok || obj.Ident.Path == nil {
		t.Fatalf("expected named object literal, got %s", ast.Dump(expr))
	}

	// In condition position the brace opens the construct body instead.
	cond := parse(t, "if x { a() }")
	ifExpr, ok := cond.(*ast.ExprIf)
	if !ok {
		t.Fatalf("expected if, got %s", ast.Dump(cond))
	}
	if _, ok := ifExpr.Cond.(*ast.Path); !ok {
		t.Fatalf("expected bare path condition, got %s", ast.Dump(cond))
	}
	if len(ifExpr.Then.Stmts) != 1 {
		t.Fatalf("expected body statement, got %s", ast.Dump(cond))
	}
}

func TestConditionStillClimbsBinary(t *testing.T) {
	expr := parse(t, "while a < b { }")
	while, ok := expr.(*ast.ExprWhile)
	if !ok {
		t.Fatalf("expected while, got %s", ast.Dump(expr))
	}
	if bin, ok := while.Cond.(*ast.ExprBinary); !ok || bin.Op != ast.BinOpLt {
		t.Fatalf("expected < condition, got %s", ast.Dump(expr))
	}
}

func TestLoopLabels(t *testing.T) {
	expr := parse(t, "'outer: while x { break 'outer }")
	while, ok := expr.(*ast.ExprWhile)
	if !ok || while.Label == nil {
		t.Fatalf("expected labelled while, got %s", ast.Dump(expr))
	}
	if while.Label.Label.Token.Lexeme != "outer" {
		t.Fatalf("label = %q", while.Label.Label.Token.Lexeme)
	}
	brk, ok := while.Body.Stmts[0].Expr.(*ast.ExprBreak)
	if !ok || brk.Label == nil {
		t.Fatalf("expected labelled break, got %s", ast.Dump(expr))
	}
}

func TestUnsupportedLabel(t *testing.T) {
	de := parseErr(t, "'bad: 5")
	if de.Kind != diag.UnsupportedLabel {
		t.Fatalf("kind = %s, want UnsupportedLabel", de.Kind)
	}
}

func TestAsync(t *testing.T) {
	expr := parse(t, "async { }")
	block, ok := expr.(*ast.ExprBlock)
	if !ok || block.Async == nil {
		t.Fatalf("expected async block, got %s", ast.Dump(expr))
	}
	closure := parse(t, "async |x| x").(*ast.ExprClosure)
	if closure.Async == nil {
		t.Fatalf("expected async closure")
	}
	de := parseErr(t, "async 5")
	if de.Kind != diag.UnsupportedAsync {
		t.Fatalf("kind = %s, want UnsupportedAsync", de.Kind)
	}
}

func TestAttributesOnConstructs(t *testing.T) {
	expr := parse(t, "#[cfg(test)] if x { }")
	if attrs := ast.Attributes(expr); len(attrs) != 1 {
		t.Fatalf("expected one attribute, got %s", ast.Dump(expr))
	}
}

func TestAttributesMigrateOutward(t *testing.T) {
	expr := parse(t, "#[a] (x)?")
	try, ok := expr.(*ast.ExprTry)
	if !ok {
		t.Fatalf("expected try, got %s", ast.Dump(expr))
	}
	if len(try.Attrs) != 1 {
		t.Fatalf("expected attribute on outer node, got %s", ast.Dump(expr))
	}
	if inner := ast.Attributes(try.Target); len(inner) != 0 {
		t.Fatalf("inner node kept %d attributes", len(inner))
	}
}

func TestAttributesNotSupported(t *testing.T) {
	de := parseErr(t, "#[a] foo")
	if de.Kind != diag.AttributesNotSupported {
		t.Fatalf("kind = %s, want AttributesNotSupported", de.Kind)
	}
	want := token.Span{Start: 0, End: 4}
	if de.Span != want {
		t.Fatalf("span = %v, want %v", de.Span, want)
	}
	// Rejection happens after the full expression has been consumed.
	de = parseErr(t, "#[a] foo + bar")
	if de.Kind != diag.AttributesNotSupported {
		t.Fatalf("kind = %s, want AttributesNotSupported", de.Kind)
	}
}

func TestBlockSemicolons(t *testing.T) {
	parse(t, "{ 1; 2 }")
	parse(t, "{ if a { } 2 }")
	parse(t, "{ 1 }")
	de := parseErr(t, "{ 1 2 }")
	if de.Kind != diag.TokenMismatch {
		t.Fatalf("kind = %s, want TokenMismatch", de.Kind)
	}
}

func TestMatch(t *testing.T) {
	expr := parse(t, `match n { 0 => "zero", n if n < 0 => "neg", _ => "pos" }`)
	m, ok := expr.(*ast.ExprMatch)
	if !ok || len(m.Arms) != 3 {
		t.Fatalf("expected 3 arms, got %s", ast.Dump(expr))
	}
	if m.Arms[1].Guard == nil {
		t.Fatalf("expected guard on second arm, got %s", ast.Dump(expr))
	}
}

func TestSelect(t *testing.T) {
	expr := parse(t, "select { v = first => v, default => 0 }")
	sel, ok := expr.(*ast.ExprSelect)
	if !ok || len(sel.Arms) != 2 {
		t.Fatalf("expected 2 arms, got %s", ast.Dump(expr))
	}
	if sel.Arms[1].Default == nil {
		t.Fatalf("expected default arm, got %s", ast.Dump(expr))
	}
}

func TestMacroCall(t *testing.T) {
	expr := parse(t, "fmt::args!(1, 2 + 3)")
	mc, ok := expr.(*ast.MacroCall)
	if !ok {
		t.Fatalf("expected macro call, got %s", ast.Dump(expr))
	}
	if len(mc.Input) != 5 {
		t.Fatalf("input tokens = %d, want 5", len(mc.Input))
	}
}

func TestTemplate(t *testing.T) {
	expr := parse(t, "`sum: ${a + b}`")
	lit, ok := expr.(*ast.ExprLit)
	if !ok {
		t.Fatalf("expected literal, got %s", ast.Dump(expr))
	}
	tmpl, ok := lit.Lit.(*ast.LitTemplate)
	if !ok || len(tmpl.Parts) != 2 {
		t.Fatalf("expected text and interpolation, got %s", ast.Dump(expr))
	}
	interp, ok := tmpl.Parts[1].(*ast.TemplateInterp)
	if !ok {
		t.Fatalf("expected interpolation part, got %s", ast.Dump(expr))
	}
	if _, ok := interp.Expr.(*ast.ExprBinary); !ok {
		t.Fatalf("expected binary inside interpolation, got %s", ast.Dump(expr))
	}
}

func TestExpectedExpression(t *testing.T) {
	for _, input := range []string{"+", "1 +", ", 1"} {
		de := parseErr(t, input)
		if de.Kind != diag.ExpectedExpression {
			t.Errorf("parse %q: kind = %s, want ExpectedExpression", input, de.Kind)
		}
	}
}

func TestSpanUnion(t *testing.T) {
	input := "#[a] (x)?"
	expr := parse(t, input)
	want := token.Span{Start: 0, End: len(input)}
	if got := expr.Span(); got != want {
		t.Fatalf("span = %v, want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"1 + 2 * 3",
		"a is not b",
		"foo.bar[0](1, 2)?",
		"'outer: loop { break 'outer }",
		"if a == b { 1 } else if c { 2 } else { 3 }",
		`match n { 0 => "zero", _ => n }`,
		"#{ a: 1, b }",
		"Point { x: 1, y: 2 }",
		"[1, 2, 3]",
		"(1, 2)",
		"()",
		"(1 + 2)",
		"|a, b| a + b",
		"|| 1",
		"async { x.await }",
		"select { v = first => v, default => 0 }",
		"`sum: ${a + b}`",
		"let (a, b) = pair",
		"foo!{ 1 2 3 }",
		"#[cfg(test)] while x { yield; return 1; }",
		"{ fn add(a, b) { a + b } add(1, 2) }",
		"b\"bytes\" ",
		"x = y",
		"*ptr + &val",
	}
	for _, input := range inputs {
		l := lexer.New(input)
		toks := l.Tokens()
		if errs := l.Errors(); len(errs) > 0 {
			t.Fatalf("lex %q: %v", input, errs)
		}
		p := parser.FromTokens(toks)
		expr, err := p.ParseExpr()
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if err := p.ExpectEOF(); err != nil {
			t.Fatalf("parse %q: trailing input: %v", input, err)
		}
		want := toks[:len(toks)-1] // strip EOF
		if diff := cmp.Diff(want, ast.Tokens(expr)); diff != "" {
			t.Errorf("round trip %q mismatch (-want +got):\n%s", input, diff)
		}
	}
}
