package ast_eval

import (
	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/models/ast"
	"github.com/checkmarble/marble-kpi/pure_utils"
)

// EvaluateAst walks the tree and returns the evaluation of every node. The tree is only read.
// The boolean is false as soon as one node failed, in which case the evaluation stops.
func EvaluateAst(environment AstEvaluationEnvironment, node ast.Node) (ast.NodeEvaluation, bool) {
	// Early exit for leaves, because they have no children.
	switch node.Function {
	case ast.FUNC_CONSTANT:
		value, ok := node.ConstantValue()
		if !ok {
			return failedEvaluation(node, errors.Wrapf(ast.ErrRuntimeExpression,
				"constant %v is not a number", node.Constant))
		}
		return ast.NodeEvaluation{Function: node.Function, ReturnValue: null.FloatFrom(value)}, true

	case ast.FUNC_VARIABLE:
		name, ok := node.VariableName()
		if !ok {
			return failedEvaluation(node, errors.Wrapf(ast.ErrRuntimeExpression,
				"variable name %v is not a string", node.Constant))
		}
		value, err := environment.ReadVariable(name)
		if err != nil {
			return failedEvaluation(node, err)
		}
		return ast.NodeEvaluation{Function: node.Function, ReturnValue: value}, true

	case ast.FUNC_IF:
		return evaluateIf(environment, node)
	}

	evaluator, err := environment.GetEvaluator(node.Function)
	if err != nil {
		return failedEvaluation(node, err)
	}

	childEvaluationFail := false
	childEvaluationNull := false
	// Aggregates see every argument, other operators stop at the first null operand.
	stopOnNull := !node.Function.IsAggregate()

	evalChild := func(child ast.Node) ast.NodeEvaluation {
		if childEvaluationFail || childEvaluationNull {
			return ast.NodeEvaluation{Function: child.Function, Skipped: true}
		}
		childEval, ok := EvaluateAst(environment, child)
		if !ok {
			childEvaluationFail = true
		} else if stopOnNull && !childEval.ReturnValue.Valid {
			childEvaluationNull = true
		}
		return childEval
	}

	// eval each child
	evaluation := ast.NodeEvaluation{
		Function: node.Function,
		Children: pure_utils.Map(node.Children, evalChild),
	}

	if childEvaluationFail {
		// an error occured in at least one of the children. Stop the evaluation.
		return evaluation, false
	}

	if childEvaluationNull {
		evaluation.Errors = make([]error, 0)
		return evaluation, true
	}

	getReturnValue := func(e ast.NodeEvaluation) null.Float { return e.ReturnValue }
	arguments := ast.Arguments{
		Args: pure_utils.Map(evaluation.Children, getReturnValue),
	}

	evaluation.ReturnValue, evaluation.Errors = evaluator.Evaluate(arguments)

	if evaluation.Errors == nil {
		// Assign an empty array to indicate that the evaluation occured.
		evaluation.Errors = make([]error, 0)
	}

	ok := len(evaluation.Errors) == 0

	if !ok {
		// Operator is supposed to return null when an error is present.
		evaluation.ReturnValue = null.Float{}
	}

	return evaluation, ok
}

// evaluateIf only evaluates the branch that is taken. A null condition makes the whole IF null
// without evaluating any branch. Any non zero condition, negative included, is true.
func evaluateIf(environment AstEvaluationEnvironment, node ast.Node) (ast.NodeEvaluation, bool) {
	if len(node.Children) != 3 {
		return failedEvaluation(node, errors.Wrapf(ast.ErrWrongNumberOfArgument,
			"IF expects 3 operands, got %d", len(node.Children)))
	}

	evaluation := ast.NodeEvaluation{
		Function: node.Function,
		Errors:   make([]error, 0),
		Children: make([]ast.NodeEvaluation, 3),
	}
	for i, child := range node.Children {
		evaluation.Children[i] = ast.NodeEvaluation{Function: child.Function, Skipped: true}
	}

	condition, ok := EvaluateAst(environment, node.Children[0])
	evaluation.Children[0] = condition
	if !ok {
		return evaluation, false
	}
	if !condition.ReturnValue.Valid {
		return evaluation, true
	}

	taken := 2
	if condition.ReturnValue.Float64 != 0 {
		taken = 1
	}

	branch, ok := EvaluateAst(environment, node.Children[taken])
	evaluation.Children[taken] = branch
	if !ok {
		return evaluation, false
	}
	evaluation.ReturnValue = branch.ReturnValue
	return evaluation, true
}

func failedEvaluation(node ast.Node, err error) (ast.NodeEvaluation, bool) {
	return ast.NodeEvaluation{
		Function: node.Function,
		Errors:   []error{err},
	}, false
}
