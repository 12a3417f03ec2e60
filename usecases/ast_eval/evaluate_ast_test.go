package ast_eval

import (
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmarble/marble-kpi/models/ast"
	"github.com/checkmarble/marble-kpi/usecases/formula_parser"
)

func helperEvaluate(t *testing.T, formula string, variables map[string]null.Float) (null.Float, error) {
	t.Helper()
	node, err := formula_parser.Parse(formula)
	require.NoError(t, err, formula)
	return EvaluateAstExpression(NewAstEvaluationEnvironment().WithVariables(variables), node)
}

func helperEvaluateValue(t *testing.T, formula string, variables map[string]null.Float, expected null.Float) {
	t.Helper()
	result, err := helperEvaluate(t, formula, variables)
	require.NoError(t, err, formula)
	assert.Equal(t, expected, result, formula)
}

func TestEvaluateAst_arithmetic(t *testing.T) {
	helperEvaluateValue(t, "2 + 3 * 4", nil, null.FloatFrom(14))
	helperEvaluateValue(t, "(2 + 3) * 4", nil, null.FloatFrom(20))
	helperEvaluateValue(t, "10 - 4 - 3", nil, null.FloatFrom(3))
	helperEvaluateValue(t, "8 / 4 / 2", nil, null.FloatFrom(1))
	helperEvaluateValue(t, "-3 * 2", nil, null.FloatFrom(-6))
	helperEvaluateValue(t, ".5 + 1.25", nil, null.FloatFrom(1.75))
}

func TestEvaluateAst_variables(t *testing.T) {
	variables := map[string]null.Float{
		"Revenue": null.FloatFrom(5000),
		"COGS":    null.FloatFrom(2000),
		"Cost":    null.FloatFrom(1000),
	}
	helperEvaluateValue(t, "(Revenue - COGS) / Cost", variables, null.FloatFrom(3))
}

func TestEvaluateAst_ast_reuse(t *testing.T) {
	node, err := formula_parser.Parse("Cost / Conversions")
	require.NoError(t, err)
	before := node.String()

	environment := NewAstEvaluationEnvironment()
	rows := []map[string]null.Float{
		{"Cost": null.FloatFrom(1000), "Conversions": null.FloatFrom(50)},
		{"Cost": null.FloatFrom(500), "Conversions": null.FloatFrom(25)},
		{"Cost": null.FloatFrom(2000), "Conversions": null.FloatFrom(100)},
	}
	for _, row := range rows {
		result, err := EvaluateAstExpression(environment.WithVariables(row), node)
		require.NoError(t, err)
		assert.Equal(t, null.FloatFrom(20), result)
	}
	assert.Equal(t, before, node.String())
}

func TestEvaluateAst_null_propagation(t *testing.T) {
	variables := map[string]null.Float{
		"Cost":    null.FloatFrom(100),
		"Revenue": {},
	}
	helperEvaluateValue(t, "Cost + Revenue", variables, null.Float{})
	helperEvaluateValue(t, "-Revenue", variables, null.Float{})
	helperEvaluateValue(t, "Revenue > 0", variables, null.Float{})
	helperEvaluateValue(t, "(Cost + Revenue) * 0", variables, null.Float{})
}

func TestEvaluateAst_aggregates_skip_nulls(t *testing.T) {
	helperEvaluateValue(t, "SUM(A, B, C)", map[string]null.Float{
		"A": null.FloatFrom(10), "B": {}, "C": null.FloatFrom(30),
	}, null.FloatFrom(40))
	helperEvaluateValue(t, "SUM(A, B)", map[string]null.Float{"A": {}, "B": {}}, null.Float{})
	helperEvaluateValue(t, "AVG(A, B, 1 / 0)", map[string]null.Float{
		"A": null.FloatFrom(2), "B": null.FloatFrom(4),
	}, null.FloatFrom(3))
}

func TestEvaluateAst_division_by_zero(t *testing.T) {
	helperEvaluateValue(t, "Cost / Conversions", map[string]null.Float{
		"Cost": null.FloatFrom(1000), "Conversions": null.FloatFrom(0),
	}, null.Float{})
}

func TestEvaluateAst_comparisons_are_numbers(t *testing.T) {
	helperEvaluateValue(t, "(3 > 2) + (2 > 3)", nil, null.FloatFrom(1))
	helperEvaluateValue(t, "2 == 2", nil, null.FloatFrom(1))
	helperEvaluateValue(t, "2 != 2", nil, null.FloatFrom(0))
}

func TestEvaluateAst_if(t *testing.T) {
	variables := map[string]null.Float{"Cost": null.FloatFrom(0), "Revenue": null.FloatFrom(5000)}
	helperEvaluateValue(t, "IF(Cost > 0, Revenue / Cost, 0)", variables, null.FloatFrom(0))

	variables["Cost"] = null.FloatFrom(1000)
	helperEvaluateValue(t, "IF(Cost > 0, Revenue / Cost, 0)", variables, null.FloatFrom(5))

	// negative conditions are true
	helperEvaluateValue(t, "IF(-1, 10, 20)", nil, null.FloatFrom(10))
	helperEvaluateValue(t, "IF(0, 10, 20)", nil, null.FloatFrom(20))
}

func TestEvaluateAst_if_is_lazy(t *testing.T) {
	// the branch not taken may reference a variable that does not exist
	helperEvaluateValue(t, "IF(1, 10, Missing)", nil, null.FloatFrom(10))

	// a null condition evaluates no branch at all
	helperEvaluateValue(t, "IF(Flag, Missing, Other)", map[string]null.Float{"Flag": {}}, null.Float{})
}

func TestEvaluateAst_if_marks_skipped_branch(t *testing.T) {
	node, err := formula_parser.Parse("IF(1 > 0, 2, 3)")
	require.NoError(t, err)

	evaluation, ok := EvaluateAst(NewAstEvaluationEnvironment(), node)
	require.True(t, ok)
	assert.Equal(t, null.FloatFrom(2), evaluation.ReturnValue)
	assert.False(t, evaluation.Children[1].Skipped)
	assert.True(t, evaluation.Children[2].Skipped)
}

func TestEvaluateAst_unknown_variable(t *testing.T) {
	_, err := helperEvaluate(t, "Unknown + 1", map[string]null.Float{})
	assert.ErrorIs(t, err, ast.ErrUnknownVariable)

	var unknownVariableError ast.UnknownVariableError
	require.ErrorAs(t, err, &unknownVariableError)
	assert.Equal(t, "Unknown", unknownVariableError.Name)
	assert.Empty(t, unknownVariableError.Suggestion)
}

func TestEvaluateAst_unknown_variable_suggestion(t *testing.T) {
	_, err := helperEvaluate(t, "Revenu / Cost", map[string]null.Float{
		"Revenue": null.FloatFrom(1), "Cost": null.FloatFrom(1),
	})

	var unknownVariableError ast.UnknownVariableError
	require.ErrorAs(t, err, &unknownVariableError)
	assert.Equal(t, "Revenue", unknownVariableError.Suggestion)
}

func TestEvaluateAst_null_operand_stops_evaluation(t *testing.T) {
	variables := map[string]null.Float{"A": {}}
	formulas := []string{"A + Missing", "A > Missing", "-A * Missing", "A / Missing", "A - 1 / 0"}
	for _, formula := range formulas {
		helperEvaluateValue(t, formula, variables, null.Float{})
	}

	// the right operand is evaluated when the left one is not null
	_, err := helperEvaluate(t, "Missing + A", variables)
	assert.ErrorIs(t, err, ast.ErrUnknownVariable)

	// aggregates keep evaluating every argument
	_, err = helperEvaluate(t, "SUM(A, Missing)", variables)
	assert.ErrorIs(t, err, ast.ErrUnknownVariable)
}

func TestEvaluateAst_null_operand_marks_skipped(t *testing.T) {
	node, err := formula_parser.Parse("A * (B + 1)")
	require.NoError(t, err)

	evaluation, ok := EvaluateAst(NewAstEvaluationEnvironment().WithVariables(map[string]null.Float{"A": {}}), node)
	require.True(t, ok)
	assert.False(t, evaluation.ReturnValue.Valid)
	assert.Empty(t, evaluation.Errors)
	require.Len(t, evaluation.Children, 2)
	assert.False(t, evaluation.Children[0].Skipped)
	assert.True(t, evaluation.Children[1].Skipped)
	assert.Empty(t, evaluation.Children[1].Children)
}

func TestEvaluateAst_unregistered_function(t *testing.T) {
	node := ast.NewNodeCall(ast.FUNC_UNKNOWN, ast.NewNodeConstant(1))
	_, err := EvaluateAstExpression(NewAstEvaluationEnvironment(), node)
	assert.ErrorIs(t, err, ast.ErrUnknownFunction)
}
