package formula_parser

import (
	"fmt"

	"github.com/checkmarble/marble-kpi/models/ast"
)

// LexError is returned by Tokenize when the formula contains a character that can not
// start any token.
type LexError struct {
	Position int
	Char     rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character '%c' at position %d", e.Char, e.Position)
}

func (e *LexError) Unwrap() error { return ast.ErrUnexpectedCharacter }

func (e *LexError) Is(target error) bool { return target == ast.ErrLexical }

func (e *LexError) ErrorPosition() int { return e.Position }

// SyntaxError is returned by the parser. Token is empty when the formula ended too early.
type SyntaxError struct {
	Position int
	Token    string
	Cause    error
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("syntax error at position %d: %s", e.Position, e.Cause.Error())
	}
	return fmt.Sprintf("syntax error at position %d near '%s': %s", e.Position, e.Token, e.Cause.Error())
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

func (e *SyntaxError) Is(target error) bool { return target == ast.ErrSyntax }

func (e *SyntaxError) ErrorPosition() int { return e.Position }

func newSyntaxError(token Token, cause error) *SyntaxError {
	return &SyntaxError{Position: token.Position, Token: token.Literal, Cause: cause}
}
