package ast

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Parse related errors. Every lexer failure is an ErrLexical, every parser failure an ErrSyntax.
var (
	ErrLexical               = errors.New("lexical error")
	ErrSyntax                = errors.New("syntax error")
	ErrEmptyFormula          = errors.New("formula is empty")
	ErrUnexpectedCharacter   = errors.New("unexpected character")
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrUnexpectedEnd         = errors.New("unexpected end of expression")
	ErrUnmatchedParenthesis  = errors.New("unmatched parenthesis")
	ErrUnknownFunction       = errors.New("unknown function")
	ErrWrongNumberOfArgument = errors.New("wrong number of arguments")
)

// Evaluation related errors
var (
	ErrUnknownVariable   = errors.New("unknown variable")
	ErrRuntimeExpression = errors.New("runtime expression error")
)

// UnknownVariableError is returned when a formula references a name that is not a key
// of the variable map. A key present with a null value is not an error.
type UnknownVariableError struct {
	Name string
	// Closest known variable name, empty when nothing is close enough.
	Suggestion string
}

func (e UnknownVariableError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown variable '%s' (did you mean '%s'?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown variable '%s'", e.Name)
}

func (e UnknownVariableError) Is(target error) bool {
	return target == ErrUnknownVariable
}

// PositionedError is implemented by errors that can point at the offending place in the formula text.
type PositionedError interface {
	error
	ErrorPosition() int
}
