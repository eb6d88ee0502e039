package parser

import (
	"fmt"
	"strings"
)

// Lexer turns VB6 source into a gapless token stream: every byte of input
// lands in exactly one token, trivia included, so the stream reproduces the
// input when the literals are concatenated. The lexer never stops early;
// bytes it cannot classify become Illegal tokens with a lexical diagnostic.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
	diags  []Diagnostic
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// Diagnostics returns the lexical diagnostics collected so far.
func (l *Lexer) Diagnostics() []Diagnostic {
	return l.diags
}

func (l *Lexer) errorf(pos Position, format string, args ...any) {
	l.diags = append(l.diags, Diagnostic{
		Pos:      pos,
		Category: DiagLexical,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if ch == ' ' || ch == '\t' {
		return l.scanWhitespace(startPos)
	}

	if ch == '\r' || ch == '\n' {
		return l.scanNewline(startPos)
	}

	if ch == '\'' {
		return l.scanLineComment(startPos)
	}

	if ch == '_' {
		return l.scanLineContinuation(startPos)
	}

	if ch == '"' {
		return l.scanStringLiteral(startPos)
	}

	if ch == '#' {
		return l.scanDateLiteral(startPos)
	}

	if ch == '&' && isRadixPrefix(l.peekN(1)) && isRadixDigit(l.peekN(1), l.peekN(2)) {
		return l.scanRadixLiteral(startPos)
	}

	if isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))) {
		return l.scanNumber(startPos)
	}

	if isLetter(ch) {
		return l.scanIdentOrKeyword(startPos)
	}

	return l.scanOperator(startPos)
}

// Tokenize drains the lexer into a slice ending in the EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for l.peek() == ' ' || l.peek() == '\t' {
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

// scanNewline consumes one line ending. \r\n counts as a single token.
func (l *Lexer) scanNewline(start Position) Token {
	if l.peek() == '\r' && l.peekN(1) == '\n' {
		l.advanceN(2)
	} else {
		l.advance()
	}
	return l.token(TokenNewline, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '\n' && l.peek() != '\r' {
		l.advance()
	}
	return l.token(TokenComment, start)
}

// scanRemComment is entered from scanIdentOrKeyword once the word "Rem" has
// been consumed; it extends the token to the end of the line.
func (l *Lexer) scanRemComment(start Position) Token {
	for l.peek() != 0 && l.peek() != '\n' && l.peek() != '\r' {
		l.advance()
	}
	return l.token(TokenRemComment, start)
}

// scanLineContinuation handles the `_` at the end of a logical line. The
// underscore, any trailing blanks, and the line ending form one trivia token
// so the following physical line continues the current statement. A lone
// underscore anywhere else is its own token.
func (l *Lexer) scanLineContinuation(start Position) Token {
	i := l.pos + 1
	for i < len(l.input) && (l.input[i] == ' ' || l.input[i] == '\t') {
		i++
	}
	if i < len(l.input) && (l.input[i] == '\r' || l.input[i] == '\n') {
		l.advanceN(i - l.pos)
		if l.peek() == '\r' && l.peekN(1) == '\n' {
			l.advanceN(2)
		} else {
			l.advance()
		}
		return l.token(TokenLineContinuation, start)
	}
	l.advance()
	return l.token(TokenUnderscore, start)
}

func (l *Lexer) scanStringLiteral(start Position) Token {
	l.advance()
	for {
		ch := l.peek()
		if ch == 0 || ch == '\n' || ch == '\r' {
			l.errorf(start, "unterminated string literal")
			break
		}
		if ch == '"' {
			if l.peekN(1) == '"' {
				l.advanceN(2)
				continue
			}
			l.advance()
			break
		}
		l.advance()
	}
	return l.token(TokenStringLiteral, start)
}

// scanDateLiteral recognizes `#...#` on a single line. The characters
// between the markers are restricted to the date alphabet so that file
// number syntax like `Print #1, x` falls back to a lone Octothorpe token.
func (l *Lexer) scanDateLiteral(start Position) Token {
	i := l.pos + 1
	for i < len(l.input) && isDateChar(l.input[i]) {
		i++
	}
	if i > l.pos+1 && i < len(l.input) && l.input[i] == '#' {
		l.advanceN(i - l.pos + 1)
		return l.token(TokenDateLiteral, start)
	}
	l.advance()
	return l.token(TokenOctothorpe, start)
}

func (l *Lexer) scanRadixLiteral(start Position) Token {
	prefix := l.peekN(1)
	l.advanceN(2)
	if prefix == 'h' || prefix == 'H' {
		for isHexDigit(l.peek()) {
			l.advance()
		}
	} else {
		for l.peek() >= '0' && l.peek() <= '7' {
			l.advance()
		}
	}
	kind := TokenIntegerLiteral
	if l.peek() == '&' {
		l.advance()
		kind = TokenLongLiteral
	}
	return l.token(kind, start)
}

func (l *Lexer) scanNumber(start Position) Token {
	hasFraction := false
	hasExponent := false

	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekN(1)) {
		hasFraction = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	ch := l.peek()
	if (ch == 'e' || ch == 'E' || ch == 'd' || ch == 'D') &&
		(isDigit(l.peekN(1)) || ((l.peekN(1) == '+' || l.peekN(1) == '-') && isDigit(l.peekN(2)))) {
		hasExponent = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	var kind SyntaxKind
	switch l.peek() {
	case '%':
		l.advance()
		kind = TokenIntegerLiteral
	case '&':
		l.advance()
		kind = TokenLongLiteral
	case '!':
		l.advance()
		kind = TokenSingleLiteral
	case '#':
		l.advance()
		kind = TokenDoubleLiteral
	case '@':
		l.advance()
		kind = TokenDecimalLiteral
	default:
		if hasFraction || hasExponent {
			kind = TokenSingleLiteral
		} else {
			kind = TokenIntegerLiteral
		}
	}
	return l.token(kind, start)
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for isLetterOrDigit(l.peek()) {
		l.advance()
	}
	literal := string(l.input[start.Offset:l.pos])

	if strings.EqualFold(literal, "rem") {
		return l.scanRemComment(start)
	}

	return l.token(LookupKeyword(literal), start)
}

func (l *Lexer) scanOperator(start Position) Token {
	ch := l.peek()

	switch ch {
	case '<':
		if l.peekN(1) == '>' {
			l.advanceN(2)
			return l.token(TokenNE, start)
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenLE, start)
		}
		l.advance()
		return l.token(TokenLT, start)
	case '>':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenGE, start)
		}
		l.advance()
		return l.token(TokenGT, start)
	case '=':
		l.advance()
		return l.token(TokenEQ, start)
	case '+':
		l.advance()
		return l.token(TokenPlus, start)
	case '-':
		l.advance()
		return l.token(TokenMinus, start)
	case '*':
		l.advance()
		return l.token(TokenStar, start)
	case '/':
		l.advance()
		return l.token(TokenSlash, start)
	case '\\':
		l.advance()
		return l.token(TokenBackslash, start)
	case '^':
		l.advance()
		return l.token(TokenCaret, start)
	case '&':
		l.advance()
		return l.token(TokenAmpersand, start)
	case '.':
		l.advance()
		return l.token(TokenDot, start)
	case ',':
		l.advance()
		return l.token(TokenComma, start)
	case ':':
		l.advance()
		return l.token(TokenColon, start)
	case ';':
		l.advance()
		return l.token(TokenSemicolon, start)
	case '(':
		l.advance()
		return l.token(TokenLParen, start)
	case ')':
		l.advance()
		return l.token(TokenRParen, start)
	case '[':
		l.advance()
		return l.token(TokenLBracket, start)
	case ']':
		l.advance()
		return l.token(TokenRBracket, start)
	case '{':
		l.advance()
		return l.token(TokenLBrace, start)
	case '}':
		l.advance()
		return l.token(TokenRBrace, start)
	case '!':
		l.advance()
		return l.token(TokenBang, start)
	case '$':
		l.advance()
		return l.token(TokenDollar, start)
	case '%':
		l.advance()
		return l.token(TokenPercent, start)
	case '@':
		l.advance()
		return l.token(TokenAt, start)
	}

	l.advance()
	tok := l.token(TokenIllegal, start)
	l.errorf(start, "unexpected character %q", tok.Literal)
	return tok
}

func (l *Lexer) token(kind SyntaxKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isDateChar(ch byte) bool {
	return isLetterOrDigit(ch) || ch == ' ' || ch == '/' || ch == '-' || ch == ':' || ch == ',' || ch == '.'
}

func isRadixPrefix(ch byte) bool {
	return ch == 'h' || ch == 'H' || ch == 'o' || ch == 'O'
}

func isRadixDigit(prefix, ch byte) bool {
	if prefix == 'h' || prefix == 'H' {
		return isHexDigit(ch)
	}
	return ch >= '0' && ch <= '7'
}
