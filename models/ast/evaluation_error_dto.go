package ast

import (
	"errors"
)

type EvaluationErrorDto struct {
	EvaluationError string  `json:"error"`
	Message         string  `json:"message"`
	Position        *int    `json:"position,omitempty"`
	VariableName    *string `json:"variable_name,omitempty"`
	Suggestion      *string `json:"suggestion,omitempty"`
}

type errorAndCode struct {
	err  error
	code string
}

var evaluationErrorDtoMap = []errorAndCode{
	// Validation related errors
	{ErrEmptyFormula, "EMPTY_FORMULA"},
	{ErrLexical, "LEX_ERROR"},
	{ErrUnknownFunction, "UNKNOWN_FUNCTION"},
	{ErrWrongNumberOfArgument, "WRONG_NUMBER_OF_ARGUMENTS"},
	{ErrUnmatchedParenthesis, "UNMATCHED_PARENTHESIS"},
	{ErrUnexpectedEnd, "UNEXPECTED_END"},
	{ErrSyntax, "SYNTAX_ERROR"}, // after the more specific syntax errors, which are all ErrSyntax too

	// Evaluation related errors
	{ErrUnknownVariable, "UNKNOWN_VARIABLE"},
	{ErrRuntimeExpression, "RUNTIME_EXPRESSION_ERROR"},
}

func AdaptEvaluationErrorDto(err error) EvaluationErrorDto {
	if err == nil {
		return EvaluationErrorDto{
			EvaluationError: "UNEXPECTED_ERROR",
			Message:         "Internal Error: err is not supposed to be nil",
		}
	}

	dto := EvaluationErrorDto{
		Message: err.Error(),
	}

	var positionedError PositionedError
	if errors.As(err, &positionedError) {
		position := positionedError.ErrorPosition()
		dto.Position = &position
	}

	var unknownVariableError UnknownVariableError
	if errors.As(err, &unknownVariableError) {
		dto.VariableName = &unknownVariableError.Name
		if unknownVariableError.Suggestion != "" {
			dto.Suggestion = &unknownVariableError.Suggestion
		}
	}

	// find the corresponding error code
	for _, errorAndCode := range evaluationErrorDtoMap {
		if errors.Is(err, errorAndCode.err) {
			dto.EvaluationError = errorAndCode.code
			return dto
		}
	}

	dto.EvaluationError = "UNEXPECTED_ERROR"
	return dto
}
