package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	cli "gopkg.in/urfave/cli.v1"

	"ember/internal/ast"
	"ember/internal/cache"
	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/parser"
)

var version = "0.1.0"

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	app := cli.NewApp()
	app.Name = "ember"
	app.Version = version
	app.Usage = "parse and inspect ember expressions"
	app.Commands = []cli.Command{
		parseCommand,
		tokensCommand,
		opsCommand,
		batchCommand,
	}
	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

var parseCommand = cli.Command{
	Name:      "parse",
	Usage:     "parse one expression and dump its tree",
	ArgsUsage: "[expression]",
	Action:    runParse,
}

func runParse(ctx *cli.Context) error {
	input, err := readInput(ctx)
	if err != nil {
		return err
	}
	l := lexer.New(input)
	p := parser.New(l)
	if errs := l.Errors(); len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	expr, err := p.ParseExpr()
	if err == nil {
		err = p.ExpectEOF()
	}
	if err != nil {
		var de *diag.Error
		if errors.As(err, &de) {
			return fmt.Errorf("%s: %v", de.Kind, de)
		}
		return err
	}
	fmt.Print(ast.Dump(expr))
	return nil
}

var tokensCommand = cli.Command{
	Name:      "tokens",
	Usage:     "lex one expression and list its tokens",
	ArgsUsage: "[expression]",
	Action:    runTokens,
}

func runTokens(ctx *cli.Context) error {
	input, err := readInput(ctx)
	if err != nil {
		return err
	}
	l := lexer.New(input)
	toks := l.Tokens()
	if errs := l.Errors(); len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Kind", "Lexeme", "Span", "Position"})
	for _, tok := range toks {
		table.Append([]string{
			tok.Kind.String(),
			tok.Lexeme,
			fmt.Sprintf("%d..%d", tok.Span.Start, tok.Span.End),
			fmt.Sprintf("%d:%d", tok.Pos.Line, tok.Pos.Column),
		})
	}
	table.Render()
	fmt.Printf("%s tokens\n", humanize.Comma(int64(len(toks))))
	return nil
}

var opsCommand = cli.Command{
	Name:   "ops",
	Usage:  "show the binary operator table",
	Action: runOps,
}

func runOps(ctx *cli.Context) error {
	ops := []ast.BinOp{
		ast.BinOpOr, ast.BinOpAnd,
		ast.BinOpEq, ast.BinOpNeq, ast.BinOpLt, ast.BinOpGt,
		ast.BinOpLte, ast.BinOpGte, ast.BinOpIs, ast.BinOpIsNot,
		ast.BinOpBitOr, ast.BinOpBitXor, ast.BinOpBitAnd,
		ast.BinOpShl, ast.BinOpShr,
		ast.BinOpAdd, ast.BinOpSub,
		ast.BinOpMul, ast.BinOpDiv, ast.BinOpRem,
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Operator", "Precedence", "Associative"})
	for _, op := range ops {
		table.Append([]string{
			op.String(),
			strconv.Itoa(op.Precedence()),
			strconv.FormatBool(op.IsAssoc()),
		})
	}
	table.Render()
	return nil
}

var batchCommand = cli.Command{
	Name:      "batch",
	Usage:     "parse expressions line by line through the parse cache",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "cache-size",
			Usage: "maximum number of cached expressions",
			Value: 256,
		},
	},
	Action: runBatch,
}

func runBatch(ctx *cli.Context) error {
	in := os.Stdin
	if ctx.NArg() > 0 {
		f, err := os.Open(ctx.Args().First())
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	c, err := cache.New(ctx.Int("cache-size"))
	if err != nil {
		return err
	}
	var parsed, failed int64
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := c.Parse(line); err != nil {
			failed++
			color.New(color.FgYellow).Fprintf(os.Stderr, "%s: %v\n", line, err)
			continue
		}
		parsed++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	hits, misses := c.Stats()
	fmt.Printf("parsed %s, failed %s, cache hits %s, misses %s\n",
		humanize.Comma(parsed), humanize.Comma(failed),
		humanize.Comma(int64(hits)), humanize.Comma(int64(misses)))
	return nil
}

func readInput(ctx *cli.Context) (string, error) {
	if ctx.NArg() > 0 {
		return strings.Join(ctx.Args(), " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
