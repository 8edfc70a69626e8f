package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump returns a human-readable representation of the expression tree.
func Dump(node Node) string {
	var sb strings.Builder
	fprintNode(&sb, node, 0)
	return sb.String()
}

func fprintNode(w io.Writer, n Node, indent int) {
	if n == nil {
		return
	}

	ind := strings.Repeat("  ", indent)

	switch n := n.(type) {
	case *Path:
		fmt.Fprintf(w, "%sPath %s\n", ind, pathString(n))

	case *ItemFn:
		fmt.Fprintf(w, "%sItemFn name=%s params=%d\n", ind, n.Name.Lexeme, len(n.Params))
		fprintNode(w, n.Body, indent+1)

	case *ExprAssign:
		fmt.Fprintf(w, "%sAssign\n", ind)
		fprintNode(w, n.LHS, indent+1)
		fprintNode(w, n.RHS, indent+1)

	case *ExprWhile:
		fmt.Fprintf(w, "%sWhile%s\n", ind, labelSuffix(n.Label))
		fprintNode(w, n.Cond, indent+1)
		fprintNode(w, n.Body, indent+1)

	case *ExprLoop:
		fmt.Fprintf(w, "%sLoop%s\n", ind, labelSuffix(n.Label))
		fprintNode(w, n.Body, indent+1)

	case *ExprFor:
		fmt.Fprintf(w, "%sFor%s\n", ind, labelSuffix(n.Label))
		fprintNode(w, n.Pat, indent+1)
		fprintNode(w, n.Iter, indent+1)
		fprintNode(w, n.Body, indent+1)

	case *ExprLet:
		fmt.Fprintf(w, "%sLet\n", ind)
		fprintNode(w, n.Pat, indent+1)
		fprintNode(w, n.Init, indent+1)

	case *ExprIf:
		fmt.Fprintf(w, "%sIf\n", ind)
		fprintNode(w, n.Cond, indent+1)
		fprintNode(w, n.Then, indent+1)
		for _, ei := range n.ElseIfs {
			fmt.Fprintf(w, "%s  ElseIf\n", ind)
			fprintNode(w, ei.Cond, indent+2)
			fprintNode(w, ei.Block, indent+2)
		}
		if n.Else != nil {
			fmt.Fprintf(w, "%s  Else\n", ind)
			fprintNode(w, n.Else.Block, indent+2)
		}

	case *ExprMatch:
		fmt.Fprintf(w, "%sMatch arms=%d\n", ind, len(n.Arms))
		fprintNode(w, n.Subject, indent+1)
		for _, arm := range n.Arms {
			fmt.Fprintf(w, "%s  Arm\n", ind)
			fprintNode(w, arm.Pat, indent+2)
			if arm.Guard != nil {
				fmt.Fprintf(w, "%s    Guard\n", ind)
				fprintNode(w, arm.Guard.Cond, indent+3)
			}
			fprintNode(w, arm.Body, indent+2)
		}

	case *ExprCall:
		fmt.Fprintf(w, "%sCall args=%d\n", ind, len(n.Args))
		fprintNode(w, n.Func, indent+1)
		for _, arg := range n.Args {
			fprintNode(w, arg, indent+1)
		}

	case *MacroCall:
		fmt.Fprintf(w, "%sMacroCall path=%s input=%d\n", ind, pathString(n.Path), len(n.Input))

	case *ExprFieldAccess:
		fmt.Fprintf(w, "%sFieldAccess field=%s\n", ind, n.Field.Lexeme)
		fprintNode(w, n.Target, indent+1)

	case *ExprGroup:
		fmt.Fprintf(w, "%sGroup\n", ind)
		fprintNode(w, n.Inner, indent+1)

	case *ExprBinary:
		fmt.Fprintf(w, "%sBinary op=%q\n", ind, n.Op.String())
		fprintNode(w, n.LHS, indent+1)
		fprintNode(w, n.RHS, indent+1)

	case *ExprUnary:
		fmt.Fprintf(w, "%sUnary op=%q\n", ind, n.Op.String())
		fprintNode(w, n.Operand, indent+1)

	case *ExprIndex:
		fmt.Fprintf(w, "%sIndex\n", ind)
		fprintNode(w, n.Target, indent+1)
		fprintNode(w, n.Index, indent+1)

	case *ExprBreak:
		suffix := ""
		if n.Label != nil {
			suffix = " label=" + n.Label.Lexeme
		}
		fmt.Fprintf(w, "%sBreak%s\n", ind, suffix)
		if n.Value != nil {
			fprintNode(w, n.Value, indent+1)
		}

	case *ExprYield:
		fmt.Fprintf(w, "%sYield\n", ind)
		if n.Value != nil {
			fprintNode(w, n.Value, indent+1)
		}

	case *ExprBlock:
		asyncStr := ""
		if n.Async != nil {
			asyncStr = " async"
		}
		fmt.Fprintf(w, "%sBlockExpr%s\n", ind, asyncStr)
		fprintNode(w, n.Block, indent+1)

	case *ExprReturn:
		fmt.Fprintf(w, "%sReturn\n", ind)
		if n.Value != nil {
			fprintNode(w, n.Value, indent+1)
		}

	case *ExprAwait:
		fmt.Fprintf(w, "%sAwait\n", ind)
		fprintNode(w, n.Target, indent+1)

	case *ExprTry:
		fmt.Fprintf(w, "%sTry\n", ind)
		fprintNode(w, n.Target, indent+1)

	case *ExprSelect:
		fmt.Fprintf(w, "%sSelect arms=%d\n", ind, len(n.Arms))
		for _, arm := range n.Arms {
			if arm.Default != nil {
				fmt.Fprintf(w, "%s  DefaultArm\n", ind)
			} else {
				fmt.Fprintf(w, "%s  Arm\n", ind)
				fprintNode(w, arm.Pat, indent+2)
				fprintNode(w, arm.Value, indent+2)
			}
			fprintNode(w, arm.Body, indent+2)
		}

	case *ExprClosure:
		asyncStr := ""
		if n.Async != nil {
			asyncStr = " async"
		}
		fmt.Fprintf(w, "%sClosure%s args=%d\n", ind, asyncStr, len(n.Args.Items))
		for _, p := range n.Args.Items {
			fprintNode(w, p, indent+1)
		}
		fprintNode(w, n.Body, indent+1)

	case *ExprLit:
		fprintNode(w, n.Lit, indent)

	case *Block:
		fmt.Fprintf(w, "%sBlock stmts=%d\n", ind, len(n.Stmts))
		for _, st := range n.Stmts {
			fprintNode(w, st.Expr, indent+1)
		}

	case *LitBool:
		fmt.Fprintf(w, "%sLitBool %s\n", ind, n.Tok.Lexeme)
	case *LitNumber:
		fmt.Fprintf(w, "%sLitNumber %s\n", ind, n.Tok.Lexeme)
	case *LitStr:
		fmt.Fprintf(w, "%sLitStr %q\n", ind, n.Tok.Lexeme)
	case *LitByteStr:
		fmt.Fprintf(w, "%sLitByteStr %q\n", ind, n.Tok.Lexeme)
	case *LitChar:
		fmt.Fprintf(w, "%sLitChar %q\n", ind, n.Tok.Lexeme)
	case *LitByte:
		fmt.Fprintf(w, "%sLitByte %q\n", ind, n.Tok.Lexeme)
	case *LitUnit:
		fmt.Fprintf(w, "%sLitUnit\n", ind)
	case *LitTuple:
		fmt.Fprintf(w, "%sLitTuple items=%d\n", ind, len(n.Items))
		for _, item := range n.Items {
			fprintNode(w, item, indent+1)
		}
	case *LitVec:
		fmt.Fprintf(w, "%sLitVec items=%d\n", ind, len(n.Items))
		for _, item := range n.Items {
			fprintNode(w, item, indent+1)
		}
	case *LitObject:
		key := "#"
		if n.Ident.Path != nil {
			key = pathString(n.Ident.Path)
		}
		fmt.Fprintf(w, "%sLitObject ident=%s fields=%d\n", ind, key, len(n.Fields))
		for _, f := range n.Fields {
			fmt.Fprintf(w, "%s  Field key=%s\n", ind, f.Key.Lexeme)
			if f.Value != nil {
				fprintNode(w, f.Value, indent+2)
			}
		}
	case *LitTemplate:
		fmt.Fprintf(w, "%sLitTemplate parts=%d\n", ind, len(n.Parts))
		for _, part := range n.Parts {
			switch part := part.(type) {
			case *TemplateText:
				fmt.Fprintf(w, "%s  Text %q\n", ind, part.Tok.Lexeme)
			case *TemplateInterp:
				fmt.Fprintf(w, "%s  Interp\n", ind)
				fprintNode(w, part.Expr, indent+2)
			}
		}

	case *PatIgnore:
		fmt.Fprintf(w, "%sPatIgnore\n", ind)
	case *PatPath:
		fmt.Fprintf(w, "%sPatPath %s\n", ind, pathString(n.Path))
	case *PatLit:
		fmt.Fprintf(w, "%sPatLit\n", ind)
		fprintNode(w, n.Lit, indent+1)
	case *PatTuple:
		fmt.Fprintf(w, "%sPatTuple items=%d\n", ind, len(n.Items))
		for _, item := range n.Items {
			fprintNode(w, item, indent+1)
		}

	default:
		fmt.Fprintf(w, "%s%T\n", ind, n)
	}
}

func pathString(p *Path) string {
	var sb strings.Builder
	sb.WriteString(p.First.Lexeme)
	for _, seg := range p.Rest {
		sb.WriteString("::")
		sb.WriteString(seg.Ident.Lexeme)
	}
	return sb.String()
}

func labelSuffix(l *LoopLabel) string {
	if l == nil {
		return ""
	}
	return " label=" + l.Label.Token.Lexeme
}
