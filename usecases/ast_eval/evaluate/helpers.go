package evaluate

import (
	"fmt"

	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/models/ast"
)

func leftAndRight(args []null.Float) (null.Float, null.Float, error) {
	if err := verifyNumberOfArguments(args, 2); err != nil {
		return null.Float{}, null.Float{}, err
	}
	return args[0], args[1], nil
}

func verifyNumberOfArguments(args []null.Float, requiredNumberOfArguments int) error {
	numberOfOperands := len(args)
	if numberOfOperands != requiredNumberOfArguments {
		return fmt.Errorf(
			"expects %d operands, got %d %w",
			requiredNumberOfArguments, numberOfOperands, ast.ErrWrongNumberOfArgument,
		)
	}
	return nil
}

func MakeEvaluateResult(result float64, errs ...error) (null.Float, []error) {
	return null.FloatFrom(result), filterNilErrors(errs...)
}

// MakeEvaluateNull is the result of a computation that has no value for this row, which is not an error.
func MakeEvaluateNull() (null.Float, []error) {
	return null.Float{}, nil
}

func MakeEvaluateError(err error) (null.Float, []error) {
	return null.Float{}, []error{err}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func filterNilErrors(errs ...error) []error {
	result := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			result = append(result, err)
		}
	}
	return result
}
