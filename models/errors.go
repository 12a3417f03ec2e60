package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors
var (
	// BadParameterError is the family of every error caused by an invalid user input
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is returned when an input file or a referenced object does not exist
	NotFoundError = errors.New("not found")
)

// Formula related errors
var (
	ErrInvalidFormula = errors.Wrap(BadParameterError, "invalid formula")
)

// Input related errors
var (
	ErrInvalidKpiDefinition = errors.Wrap(BadParameterError, "invalid kpi definition")
	ErrInvalidKpiInput      = errors.Wrap(BadParameterError, "invalid kpi input")
)

// MarkInvalidFormula keeps the cause of err inspectable with errors.As, and makes both
// errors.Is(err, ErrInvalidFormula) and errors.Is(err, BadParameterError) hold, with the
// standard library errors package as well as with cockroachdb/errors.
func MarkInvalidFormula(err error) error {
	if err == nil {
		return nil
	}
	return invalidFormulaError{cause: err}
}

type invalidFormulaError struct {
	cause error
}

func (e invalidFormulaError) Error() string {
	return e.cause.Error()
}

func (e invalidFormulaError) Unwrap() []error {
	return []error{e.cause, ErrInvalidFormula}
}
