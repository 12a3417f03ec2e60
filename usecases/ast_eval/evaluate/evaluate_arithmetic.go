package evaluate

import (
	"fmt"

	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/models/ast"
)

type Arithmetic struct {
	Function ast.Function
}

func NewArithmetic(f ast.Function) Arithmetic {
	return Arithmetic{
		Function: f,
	}
}

func (f Arithmetic) Evaluate(arguments ast.Arguments) (null.Float, []error) {
	left, right, err := leftAndRight(arguments.Args)
	if err != nil {
		return MakeEvaluateError(err)
	}

	if !left.Valid || !right.Valid {
		return MakeEvaluateNull()
	}

	return arithmeticEval(f.Function, left.Float64, right.Float64)
}

func arithmeticEval(function ast.Function, l, r float64) (null.Float, []error) {
	switch function {
	case ast.FUNC_ADD:
		return MakeEvaluateResult(l + r)
	case ast.FUNC_SUBTRACT:
		return MakeEvaluateResult(l - r)
	case ast.FUNC_MULTIPLY:
		return MakeEvaluateResult(l * r)
	default:
		return MakeEvaluateError(fmt.Errorf("Arithmetic does not support %s function %w",
			function.DebugString(), ast.ErrRuntimeExpression))
	}
}

type UnaryMinus struct{}

func (f UnaryMinus) Evaluate(arguments ast.Arguments) (null.Float, []error) {
	if err := verifyNumberOfArguments(arguments.Args, 1); err != nil {
		return MakeEvaluateError(err)
	}

	operand := arguments.Args[0]
	if !operand.Valid {
		return MakeEvaluateNull()
	}
	return MakeEvaluateResult(-operand.Float64)
}
