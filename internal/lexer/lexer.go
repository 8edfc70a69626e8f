package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"ember/internal/token"
)

type Lexer struct {
	input string

	pos   int // byte offset of the next rune
	start int // byte offset of l.ch

	ch   rune
	line int
	col  int

	pending     []token.Token
	inTemplate  bool
	inInterp    bool
	interpDepth int
	templatePos token.Position
	templateOff int
	errors      []string
}

func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// Tokens drains the lexer into a slice, including the trailing EOF token.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	if l.inInterp {
		return l.nextInterpToken()
	}

	if l.inTemplate {
		return l.nextTemplateToken()
	}

	l.skipWhitespaceAndComments()
	return l.lexToken()
}

func (l *Lexer) lexToken() token.Token {
	pos := token.Position{Line: l.line, Column: l.col}
	start := l.start

	ch := l.ch

	// EOF
	if ch == 0 {
		return token.Token{
			Kind: token.EOF,
			Span: token.Span{Start: start, End: start},
			Pos:  pos,
		}
	}

	// Numbers
	if isDigit(ch) {
		kind, lit := l.readNumber()
		return token.Token{
			Kind:   kind,
			Lexeme: lit,
			Span:   token.Span{Start: start, End: l.start},
			Pos:    pos,
		}
	}

	// Byte literals: b'x' and byte strings: b"..."
	if ch == 'b' && l.peekChar() == '"' {
		l.readChar() // consume 'b'
		l.readChar() // consume opening quote
		lit, ok := l.readQuoted('"')
		if !ok {
			return token.Token{Kind: token.Illegal, Span: token.Span{Start: start, End: l.start}, Pos: pos}
		}
		return token.Token{
			Kind:   token.ByteStr,
			Lexeme: lit,
			Span:   token.Span{Start: start, End: l.start},
			Pos:    pos,
		}
	}
	if ch == 'b' && l.peekChar() == '\'' {
		l.readChar() // consume 'b'
		l.readChar() // consume opening quote
		lit, ok := l.readQuoted('\'')
		if !ok {
			return token.Token{Kind: token.Illegal, Span: token.Span{Start: start, End: l.start}, Pos: pos}
		}
		return token.Token{
			Kind:   token.Byte,
			Lexeme: lit,
			Span:   token.Span{Start: start, End: l.start},
			Pos:    pos,
		}
	}

	// Identifiers / keywords
	if isLetter(ch) {
		lit := l.readIdentifier()
		kind := token.LookupIdent(lit)
		return token.Token{
			Kind:   kind,
			Lexeme: lit,
			Span:   token.Span{Start: start, End: l.start},
			Pos:    pos,
		}
	}

	// Strings
	if ch == '"' {
		l.readChar() // consume opening quote
		lit, ok := l.readQuoted('"')
		if !ok {
			return token.Token{Kind: token.Illegal, Span: token.Span{Start: start, End: l.start}, Pos: pos}
		}
		return token.Token{
			Kind:   token.Str,
			Lexeme: lit,
			Span:   token.Span{Start: start, End: l.start},
			Pos:    pos,
		}
	}

	// Character literals and labels both start with a quote: 'a' is a char,
	// 'name (no closing quote) is a label.
	if ch == '\'' {
		return l.lexCharOrLabel(start, pos)
	}

	// Template strings
	if ch == '`' {
		l.inTemplate = true
		l.templatePos = pos
		l.templateOff = start
		l.readChar() // consume opening backquote
		return l.nextTemplateToken()
	}

	kind, lexeme := l.lexOperator()
	return token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Span:   token.Span{Start: start, End: l.start},
		Pos:    pos,
	}
}

// lexOperator consumes one operator or delimiter, fusing two-character
// forms. The caller builds the token around it.
func (l *Lexer) lexOperator() (token.Kind, string) {
	var kind token.Kind
	var lexeme string

	switch l.ch {
	case ';':
		kind = token.Semicolon
		lexeme = ";"
	case ',':
		kind = token.Comma
		lexeme = ","
	case '.':
		kind = token.Dot
		lexeme = "."
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			kind = token.ColonColon
			lexeme = "::"
		} else {
			kind = token.Colon
			lexeme = ":"
		}
	case '#':
		kind = token.Pound
		lexeme = "#"
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			kind = token.OrOr
			lexeme = "||"
		} else {
			kind = token.Pipe
			lexeme = "|"
		}
	case '(':
		kind = token.LParen
		lexeme = "("
	case ')':
		kind = token.RParen
		lexeme = ")"
	case '{':
		kind = token.LBrace
		lexeme = "{"
	case '}':
		kind = token.RBrace
		lexeme = "}"
	case '[':
		kind = token.LBracket
		lexeme = "["
	case ']':
		kind = token.RBracket
		lexeme = "]"
	case '?':
		kind = token.Question
		lexeme = "?"
	case '+':
		kind = token.Plus
		lexeme = "+"
	case '-':
		kind = token.Minus
		lexeme = "-"
	case '*':
		kind = token.Star
		lexeme = "*"
	case '/':
		kind = token.Slash
		lexeme = "/"
	case '%':
		kind = token.Percent
		lexeme = "%"
	case '^':
		kind = token.Caret
		lexeme = "^"
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			kind = token.NotEq
			lexeme = "!="
		} else {
			kind = token.Bang
			lexeme = "!"
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			kind = token.AndAnd
			lexeme = "&&"
		} else {
			kind = token.Amp
			lexeme = "&"
		}
	case '=':
		switch l.peekChar() {
		case '=':
			l.readChar()
			kind = token.Eq
			lexeme = "=="
		case '>':
			l.readChar()
			kind = token.Arrow
			lexeme = "=>"
		default:
			kind = token.Assign
			lexeme = "="
		}
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			kind = token.LtEq
			lexeme = "<="
		case '<':
			l.readChar()
			kind = token.Shl
			lexeme = "<<"
		default:
			kind = token.Lt
			lexeme = "<"
		}
	case '>':
		switch l.peekChar() {
		case '=':
			l.readChar()
			kind = token.GtEq
			lexeme = ">="
		case '>':
			l.readChar()
			kind = token.Shr
			lexeme = ">>"
		default:
			kind = token.Gt
			lexeme = ">"
		}
	default:
		kind = token.Illegal
		lexeme = string(l.ch)
	}

	l.readChar()
	return kind, lexeme
}

// Helpers

func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
		l.start = len(l.input)
		return
	}

	r, width := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch = r
	l.start = l.pos
	l.pos += width

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for unicode.IsSpace(l.ch) {
			l.readChar()
		}

		if l.ch == '/' {
			switch l.peekChar() {
			case '/':
				l.readChar() // '/'
				l.readChar() // second '/'
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
				continue
			case '*':
				l.readChar() // '/'
				l.readChar() // '*'
				for {
					if l.ch == 0 {
						// EOF inside comment
						return
					}
					if l.ch == '*' && l.peekChar() == '/' {
						l.readChar() // '*'
						l.readChar() // '/'
						break
					}
					l.readChar()
				}
				continue
			}
		}

		break
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.start
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.start]
}

func (l *Lexer) readNumber() (token.Kind, string) {
	start := l.start

	if l.ch == '0' {
		switch l.peekChar() {
		case 'x', 'X':
			l.readChar()
			l.readChar()
			for isHexDigit(l.ch) || l.ch == '_' {
				l.readChar()
			}
			return token.Int, l.input[start:l.start]
		case 'o', 'O':
			l.readChar()
			l.readChar()
			for (l.ch >= '0' && l.ch <= '7') || l.ch == '_' {
				l.readChar()
			}
			return token.Int, l.input[start:l.start]
		case 'b', 'B':
			l.readChar()
			l.readChar()
			for l.ch == '0' || l.ch == '1' || l.ch == '_' {
				l.readChar()
			}
			return token.Int, l.input[start:l.start]
		}
	}

	kind := token.Int
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		kind = token.Float
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		kind = token.Float
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return kind, l.input[start:l.start]
}

// lexCharOrLabel disambiguates 'a' (char) from 'name (label). A label is a
// quote followed by identifier characters with no closing quote.
func (l *Lexer) lexCharOrLabel(start int, pos token.Position) token.Token {
	l.readChar() // consume opening quote

	if l.ch == '\\' {
		escPos := token.Position{Line: l.line, Column: l.col}
		l.readChar()
		r, ok := l.readEscape(escPos)
		if !ok {
			return token.Token{Kind: token.Illegal, Span: token.Span{Start: start, End: l.start}, Pos: pos}
		}
		l.readChar()
		if l.ch != '\'' {
			l.errorf(pos, "unterminated character literal")
			return token.Token{Kind: token.Illegal, Span: token.Span{Start: start, End: l.start}, Pos: pos}
		}
		l.readChar() // consume closing quote
		return token.Token{
			Kind:   token.Char,
			Lexeme: string(r),
			Span:   token.Span{Start: start, End: l.start},
			Pos:    pos,
		}
	}

	if isLetter(l.ch) || isDigit(l.ch) {
		identStart := l.start
		for isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		name := l.input[identStart:l.start]

		if l.ch == '\'' {
			l.readChar() // consume closing quote
			if utf8.RuneCountInString(name) != 1 {
				l.errorf(pos, "character literal must contain exactly one character")
				return token.Token{Kind: token.Illegal, Span: token.Span{Start: start, End: l.start}, Pos: pos}
			}
			return token.Token{
				Kind:   token.Char,
				Lexeme: name,
				Span:   token.Span{Start: start, End: l.start},
				Pos:    pos,
			}
		}

		return token.Token{
			Kind:   token.Label,
			Lexeme: name,
			Span:   token.Span{Start: start, End: l.start},
			Pos:    pos,
		}
	}

	// Non-identifier char like '+'
	r := l.ch
	l.readChar()
	if l.ch != '\'' {
		l.errorf(pos, "unterminated character literal")
		return token.Token{Kind: token.Illegal, Span: token.Span{Start: start, End: l.start}, Pos: pos}
	}
	l.readChar() // consume closing quote
	return token.Token{
		Kind:   token.Char,
		Lexeme: string(r),
		Span:   token.Span{Start: start, End: l.start},
		Pos:    pos,
	}
}

func (l *Lexer) nextTemplateToken() token.Token {
	startPos := l.templatePos
	startOff := l.start
	var sb []rune

	for {
		if l.ch == 0 {
			l.errorf(startPos, "unterminated template string")
			l.inTemplate = false
			return token.Token{Kind: token.Illegal, Span: token.Span{Start: l.templateOff, End: l.start}, Pos: startPos}
		}
		if l.ch == '`' {
			end := l.start
			l.readChar() // consume closing backquote
			l.inTemplate = false
			endTok := token.Token{
				Kind: token.TemplateEnd,
				Span: token.Span{Start: end, End: l.start},
				Pos:  startPos,
			}
			if len(sb) > 0 {
				l.pending = append(l.pending, endTok)
				return token.Token{
					Kind:   token.TemplatePart,
					Lexeme: string(sb),
					Span:   token.Span{Start: startOff, End: end},
					Pos:    startPos,
				}
			}
			return endTok
		}
		if l.ch == '$' && l.peekChar() == '{' {
			interpOff := l.start
			l.readChar() // consume '$'
			l.readChar() // consume '{'
			l.inInterp = true
			l.interpDepth = 1
			interpTok := token.Token{
				Kind:   token.InterpStart,
				Lexeme: "${",
				Span:   token.Span{Start: interpOff, End: l.start},
				Pos:    startPos,
			}
			if len(sb) > 0 {
				l.pending = append(l.pending, interpTok)
				return token.Token{
					Kind:   token.TemplatePart,
					Lexeme: string(sb),
					Span:   token.Span{Start: startOff, End: interpOff},
					Pos:    startPos,
				}
			}
			return interpTok
		}
		if l.ch == '\\' {
			escPos := token.Position{Line: l.line, Column: l.col}
			l.readChar()
			r, ok := l.readEscape(escPos)
			if !ok {
				return token.Token{Kind: token.Illegal, Span: token.Span{Start: l.start, End: l.start}, Pos: escPos}
			}
			sb = append(sb, r)
			l.readChar()
			continue
		}
		sb = append(sb, l.ch)
		l.readChar()
	}
}

func (l *Lexer) nextInterpToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := token.Position{Line: l.line, Column: l.col}
	start := l.start
	ch := l.ch

	if ch == 0 {
		l.errorf(pos, "unterminated interpolation")
		l.inInterp = false
		return token.Token{Kind: token.Illegal, Span: token.Span{Start: start, End: start}, Pos: pos}
	}
	if ch == '{' {
		l.interpDepth++
		l.readChar()
		return token.Token{Kind: token.LBrace, Lexeme: "{", Span: token.Span{Start: start, End: l.start}, Pos: pos}
	}
	if ch == '}' {
		if l.interpDepth == 1 {
			l.readChar()
			l.inInterp = false
			return token.Token{Kind: token.InterpEnd, Lexeme: "}", Span: token.Span{Start: start, End: l.start}, Pos: pos}
		}
		l.interpDepth--
		l.readChar()
		return token.Token{Kind: token.RBrace, Lexeme: "}", Span: token.Span{Start: start, End: l.start}, Pos: pos}
	}

	// No nested templates inside interpolation
	if ch == '`' {
		l.errorf(pos, "nested template string")
		l.readChar()
		return token.Token{Kind: token.Illegal, Span: token.Span{Start: start, End: l.start}, Pos: pos}
	}

	return l.lexToken()
}

func (l *Lexer) readQuoted(delimiter rune) (string, bool) {
	startPos := token.Position{Line: l.line, Column: l.col}
	var sb []rune
	for {
		if l.ch == 0 || l.ch == '\n' {
			l.errorf(startPos, "unterminated string literal")
			return "", false
		}
		if l.ch == delimiter {
			l.readChar()
			return string(sb), true
		}
		if l.ch == '\\' {
			escPos := token.Position{Line: l.line, Column: l.col}
			l.readChar()
			r, ok := l.readEscape(escPos)
			if !ok {
				return "", false
			}
			sb = append(sb, r)
			l.readChar()
			continue
		}
		sb = append(sb, l.ch)
		l.readChar()
	}
}

func (l *Lexer) readEscape(pos token.Position) (rune, bool) {
	switch l.ch {
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	case '`':
		return '`', true
	case '$':
		return '$', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case 'u':
		return l.readHexEscape(pos, 4)
	case 'x':
		return l.readHexEscape(pos, 2)
	default:
		l.errorf(pos, "invalid escape sequence")
		return 0, false
	}
}

func (l *Lexer) readHexEscape(pos token.Position, count int) (rune, bool) {
	var val rune
	for i := 0; i < count; i++ {
		l.readChar()
		ch := l.ch
		if ch == 0 {
			l.errorf(pos, "unterminated escape sequence")
			return 0, false
		}
		v, ok := hexValue(ch)
		if !ok {
			l.errorf(pos, "invalid hex escape")
			return 0, false
		}
		val = val*16 + v
	}
	return val, true
}

func hexValue(ch rune) (rune, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}

func (l *Lexer) errorf(pos token.Position, msg string) {
	l.errors = append(l.errors, formatError(pos, msg))
}

func formatError(pos token.Position, msg string) string {
	return fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, msg)
}

func (l *Lexer) Errors() []string {
	return l.errors
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	if ch > utf8.RuneSelf {
		return false
	}
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	_, ok := hexValue(ch)
	return ok
}
