package evaluate

import (
	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/models/ast"
)

// ArithmeticDivide returns null, not an error, when dividing by zero: a metric like
// "Cost / Conversions" simply has no value on a day without conversions.
type ArithmeticDivide struct{}

func (f ArithmeticDivide) Evaluate(arguments ast.Arguments) (null.Float, []error) {
	left, right, err := leftAndRight(arguments.Args)
	if err != nil {
		return MakeEvaluateError(err)
	}

	if !left.Valid || !right.Valid || right.Float64 == 0 {
		return MakeEvaluateNull()
	}

	return MakeEvaluateResult(left.Float64 / right.Float64)
}
