package evaluate

import (
	"fmt"

	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/models/ast"
	"github.com/checkmarble/marble-kpi/pure_utils"
)

// AggregatorEvaluator implements SUM, AVG, MIN and MAX. Contrary to the operators, it does
// not propagate nulls: null arguments are skipped, and the result is null only when every
// argument is null.
type AggregatorEvaluator struct {
	Function ast.Function
}

func NewAggregator(f ast.Function) AggregatorEvaluator {
	return AggregatorEvaluator{
		Function: f,
	}
}

func (a AggregatorEvaluator) Evaluate(arguments ast.Arguments) (null.Float, []error) {
	if len(arguments.Args) == 0 {
		return MakeEvaluateError(fmt.Errorf("%s expects at least 1 operand, got 0 %w",
			a.Function.DebugString(), ast.ErrWrongNumberOfArgument))
	}

	values := pure_utils.Filter(arguments.Args, func(v null.Float) bool { return v.Valid })
	if len(values) == 0 {
		return MakeEvaluateNull()
	}

	switch a.Function {
	case ast.FUNC_SUM:
		return MakeEvaluateResult(sum(values))
	case ast.FUNC_AVG:
		return MakeEvaluateResult(sum(values) / float64(len(values)))
	case ast.FUNC_MIN:
		result := values[0].Float64
		for _, v := range values[1:] {
			result = min(result, v.Float64)
		}
		return MakeEvaluateResult(result)
	case ast.FUNC_MAX:
		result := values[0].Float64
		for _, v := range values[1:] {
			result = max(result, v.Float64)
		}
		return MakeEvaluateResult(result)
	default:
		return MakeEvaluateError(fmt.Errorf("aggregation %s not supported %w",
			a.Function.DebugString(), ast.ErrRuntimeExpression))
	}
}

func sum(values []null.Float) float64 {
	total := 0.0
	for _, v := range values {
		total += v.Float64
	}
	return total
}
