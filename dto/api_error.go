package dto

import (
	"github.com/cockroachdb/errors"

	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/models/ast"
)

type APIErrorResponse struct {
	Message   string                  `json:"message"`
	ErrorCode ErrorCode               `json:"error_code"`
	Details   *ast.EvaluationErrorDto `json:"details,omitempty"`
}

type ErrorCode string

const (
	// formula related
	InvalidFormula ErrorCode = "invalid_formula"

	// input related
	InvalidInput ErrorCode = "invalid_input"
	NotFound     ErrorCode = "not_found"

	// general
	InternalError ErrorCode = "internal_error"
)

func AdaptAPIErrorResponse(err error) APIErrorResponse {
	response := APIErrorResponse{Message: err.Error()}
	switch {
	case errors.Is(err, models.ErrInvalidFormula):
		response.ErrorCode = InvalidFormula
		details := ast.AdaptEvaluationErrorDto(err)
		response.Details = &details
	case errors.Is(err, models.NotFoundError):
		response.ErrorCode = NotFound
	case errors.Is(err, models.BadParameterError):
		response.ErrorCode = InvalidInput
	default:
		response.ErrorCode = InternalError
	}
	return response
}
