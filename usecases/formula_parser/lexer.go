package formula_parser

import (
	"unicode/utf8"
)

// Lexer turns a formula into a flat stream of tokens. Whitespace is discarded.
type Lexer struct {
	source  string
	tokens  []Token
	start   int // byte offset of current token start
	current int // byte offset of current position
}

func NewLexer(source string) *Lexer {
	return &Lexer{
		source: source,
		tokens: make([]Token, 0, len(source)/2+1),
	}
}

// Tokenize scans the formula text. It fails with a *LexError on the first character
// that can not start or continue a token.
func Tokenize(source string) ([]Token, error) {
	return NewLexer(source).Tokenize()
}

func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.current
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	return l.tokens, nil
}

func (l *Lexer) scanToken() error {
	c := l.advance()

	switch {
	case c == ' ' || c == '\t':
		return nil
	case isDigit(c):
		return l.scanNumber()
	case c == '.':
		if !isDigit(l.peek()) {
			return l.errorAt(l.start)
		}
		return l.scanNumber()
	case isIdentifierStart(c):
		for isIdentifierPart(l.peek()) {
			l.advance()
		}
		l.emit(TOKEN_IDENTIFIER)
		return nil
	}

	switch c {
	case '+', '-', '*', '/':
		l.emit(TOKEN_OPERATOR)
	case '(':
		l.emit(TOKEN_LPAREN)
	case ')':
		l.emit(TOKEN_RPAREN)
	case ',':
		l.emit(TOKEN_COMMA)
	case '>', '<':
		l.match('=')
		l.emit(TOKEN_COMPARISON)
	case '=', '!':
		// a lone '=' or '!' is not an operator
		if !l.match('=') {
			return l.errorAt(l.start)
		}
		l.emit(TOKEN_COMPARISON)
	default:
		return l.errorAt(l.start)
	}
	return nil
}

// scanNumber reads the rest of \d+(\.\d+)? or \.\d+ once its first character is consumed.
func (l *Lexer) scanNumber() error {
	sawDot := l.source[l.start] == '.'
	for isDigit(l.peek()) {
		l.advance()
	}
	if !sawDot && l.peek() == '.' {
		if !isDigit(l.peekNext()) {
			// "12." has no fractional digits
			return l.errorAt(l.current)
		}
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	l.emit(TOKEN_NUMBER)
	return nil
}

func (l *Lexer) emit(tokenType TokenType) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Literal:  l.source[l.start:l.current],
		Position: l.start,
	})
}

func (l *Lexer) errorAt(position int) error {
	r, _ := utf8.DecodeRuneInString(l.source[position:])
	return &LexError{Position: position, Char: r}
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}
