package evaluate

import (
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"

	"github.com/checkmarble/marble-kpi/models/ast"
)

func helperComparison(t *testing.T, f ast.Function, left, right float64, expected bool) {
	t.Helper()
	r, errs := NewComparison(f).Evaluate(ast.Arguments{Args: []null.Float{null.FloatFrom(left), null.FloatFrom(right)}})
	assert.Empty(t, errs)
	assert.Equal(t, null.FloatFrom(boolToFloat(expected)), r)
}

func TestComparison_greater(t *testing.T) {
	helperComparison(t, ast.FUNC_GREATER, 2, 1, true)
	helperComparison(t, ast.FUNC_GREATER, 1, 2, false)
	helperComparison(t, ast.FUNC_GREATER, 1, 1, false)
}

func TestComparison_greater_or_equal(t *testing.T) {
	helperComparison(t, ast.FUNC_GREATER_OR_EQUAL, 2, 1, true)
	helperComparison(t, ast.FUNC_GREATER_OR_EQUAL, 1, 2, false)
	helperComparison(t, ast.FUNC_GREATER_OR_EQUAL, 1, 1, true)
}

func TestComparison_less(t *testing.T) {
	helperComparison(t, ast.FUNC_LESS, 2, 1, false)
	helperComparison(t, ast.FUNC_LESS, 1, 2, true)
	helperComparison(t, ast.FUNC_LESS, 1, 1, false)
}

func TestComparison_less_or_equal(t *testing.T) {
	helperComparison(t, ast.FUNC_LESS_OR_EQUAL, 2, 1, false)
	helperComparison(t, ast.FUNC_LESS_OR_EQUAL, 1, 2, true)
	helperComparison(t, ast.FUNC_LESS_OR_EQUAL, 1, 1, true)
}

func TestComparison_equal_and_not_equal(t *testing.T) {
	helperComparison(t, ast.FUNC_EQUAL, 1.5, 1.5, true)
	helperComparison(t, ast.FUNC_EQUAL, 1.5, 2, false)
	helperComparison(t, ast.FUNC_NOT_EQUAL, 1.5, 1.5, false)
	helperComparison(t, ast.FUNC_NOT_EQUAL, -1, 1, true)
}

func TestComparison_null_operand(t *testing.T) {
	r, errs := NewComparison(ast.FUNC_GREATER).Evaluate(ast.Arguments{Args: []null.Float{{}, null.FloatFrom(1)}})
	assert.Empty(t, errs)
	assert.False(t, r.Valid)
}

func TestComparison_wrongnumber_of_argument(t *testing.T) {
	_, errs := NewComparison(ast.FUNC_GREATER).Evaluate(ast.Arguments{Args: []null.Float{{}}})
	if assert.Len(t, errs, 1) {
		assert.ErrorIs(t, errs[0], ast.ErrWrongNumberOfArgument)
	}
}

func TestComparison_unsupported_function(t *testing.T) {
	_, errs := NewComparison(ast.FUNC_ADD).Evaluate(ast.Arguments{Args: []null.Float{null.FloatFrom(1), null.FloatFrom(1)}})
	if assert.Len(t, errs, 1) {
		assert.ErrorIs(t, errs[0], ast.ErrRuntimeExpression)
	}
}
