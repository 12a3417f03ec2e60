package ast_eval

import (
	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/models/ast"
)

// EvaluateAstExpression evaluates a formula down to its value. The returned error is the
// first error met while walking the tree.
func EvaluateAstExpression(environment AstEvaluationEnvironment, node ast.Node) (null.Float, error) {
	evaluation, ok := EvaluateAst(environment, node)
	if !ok {
		return null.Float{}, evaluation.FirstError()
	}
	return evaluation.ReturnValue, nil
}
