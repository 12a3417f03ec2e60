package ast_eval

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/models/ast"
	"github.com/checkmarble/marble-kpi/pure_utils"
	"github.com/checkmarble/marble-kpi/usecases/ast_eval/evaluate"
)

// AstEvaluationEnvironment holds the function evaluators and the variables of one evaluation.
// The function registry is built once and only read afterwards, so environments derived
// with WithVariables can be used concurrently.
type AstEvaluationEnvironment struct {
	availableFunctions map[ast.Function]evaluate.Evaluator
	variables          map[string]null.Float
}

func (environment *AstEvaluationEnvironment) AddEvaluator(function ast.Function, evaluator evaluate.Evaluator) {
	if _, ok := environment.availableFunctions[function]; ok {
		panic(fmt.Sprintf("function '%s' is already registered", function.DebugString()))
	}
	environment.availableFunctions[function] = evaluator
}

func (environment AstEvaluationEnvironment) GetEvaluator(function ast.Function) (evaluate.Evaluator, error) {
	if funcClass, ok := environment.availableFunctions[function]; ok {
		return funcClass, nil
	}
	return nil, errors.Wrapf(ast.ErrUnknownFunction, "function '%s' is not available", function.DebugString())
}

// WithVariables returns a copy of the environment reading its variables from the given map.
// The map is not copied and must not be modified during the evaluation.
func (environment AstEvaluationEnvironment) WithVariables(variables map[string]null.Float) AstEvaluationEnvironment {
	environment.variables = variables
	return environment
}

// ReadVariable returns the value of a variable. A variable present with a null value is valid,
// only a missing key is an error.
func (environment AstEvaluationEnvironment) ReadVariable(name string) (null.Float, error) {
	if value, ok := environment.variables[name]; ok {
		return value, nil
	}

	known := make([]string, 0, len(environment.variables))
	for key := range environment.variables {
		known = append(known, key)
	}
	slices.Sort(known)

	return null.Float{}, ast.UnknownVariableError{
		Name:       name,
		Suggestion: pure_utils.ClosestMatch(name, known),
	}
}

func NewAstEvaluationEnvironment() AstEvaluationEnvironment {
	environment := AstEvaluationEnvironment{
		availableFunctions: make(map[ast.Function]evaluate.Evaluator),
	}

	environment.AddEvaluator(ast.FUNC_UNARY_MINUS, evaluate.UnaryMinus{})
	environment.AddEvaluator(ast.FUNC_ADD, evaluate.NewArithmetic(ast.FUNC_ADD))
	environment.AddEvaluator(ast.FUNC_SUBTRACT, evaluate.NewArithmetic(ast.FUNC_SUBTRACT))
	environment.AddEvaluator(ast.FUNC_MULTIPLY, evaluate.NewArithmetic(ast.FUNC_MULTIPLY))
	environment.AddEvaluator(ast.FUNC_DIVIDE, evaluate.ArithmeticDivide{})
	environment.AddEvaluator(ast.FUNC_GREATER, evaluate.NewComparison(ast.FUNC_GREATER))
	environment.AddEvaluator(ast.FUNC_GREATER_OR_EQUAL,
		evaluate.NewComparison(ast.FUNC_GREATER_OR_EQUAL))
	environment.AddEvaluator(ast.FUNC_LESS, evaluate.NewComparison(ast.FUNC_LESS))
	environment.AddEvaluator(ast.FUNC_LESS_OR_EQUAL,
		evaluate.NewComparison(ast.FUNC_LESS_OR_EQUAL))
	environment.AddEvaluator(ast.FUNC_EQUAL, evaluate.NewComparison(ast.FUNC_EQUAL))
	environment.AddEvaluator(ast.FUNC_NOT_EQUAL, evaluate.NewComparison(ast.FUNC_NOT_EQUAL))
	environment.AddEvaluator(ast.FUNC_SUM, evaluate.NewAggregator(ast.FUNC_SUM))
	environment.AddEvaluator(ast.FUNC_AVG, evaluate.NewAggregator(ast.FUNC_AVG))
	environment.AddEvaluator(ast.FUNC_MIN, evaluate.NewAggregator(ast.FUNC_MIN))
	environment.AddEvaluator(ast.FUNC_MAX, evaluate.NewAggregator(ast.FUNC_MAX))
	return environment
}
