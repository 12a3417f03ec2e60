package evaluate

import (
	"fmt"

	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/models/ast"
)

// Comparison returns 1 when the comparison holds and 0 otherwise, so that its result
// can be used in arithmetic or as the condition of an IF.
type Comparison struct {
	Function ast.Function
}

func NewComparison(f ast.Function) Comparison {
	return Comparison{
		Function: f,
	}
}

func (f Comparison) Evaluate(arguments ast.Arguments) (null.Float, []error) {
	left, right, err := leftAndRight(arguments.Args)
	if err != nil {
		return MakeEvaluateError(err)
	}

	if !left.Valid || !right.Valid {
		return MakeEvaluateNull()
	}

	result, err := f.comparisonFunction(left.Float64, right.Float64)
	if err != nil {
		return MakeEvaluateError(err)
	}
	return MakeEvaluateResult(boolToFloat(result))
}

func (f Comparison) comparisonFunction(l, r float64) (bool, error) {
	switch f.Function {
	case ast.FUNC_GREATER:
		return l > r, nil
	case ast.FUNC_GREATER_OR_EQUAL:
		return l >= r, nil
	case ast.FUNC_LESS:
		return l < r, nil
	case ast.FUNC_LESS_OR_EQUAL:
		return l <= r, nil
	case ast.FUNC_EQUAL:
		return l == r, nil
	case ast.FUNC_NOT_EQUAL:
		return l != r, nil
	default:
		return false, fmt.Errorf("Comparison does not support %s function %w",
			f.Function.DebugString(), ast.ErrRuntimeExpression)
	}
}
