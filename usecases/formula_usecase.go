package usecases

import (
	"context"
	"log/slog"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/hashicorp/go-set/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/models/ast"
	"github.com/checkmarble/marble-kpi/pure_utils"
	"github.com/checkmarble/marble-kpi/usecases/ast_eval"
	"github.com/checkmarble/marble-kpi/usecases/formula_parser"
	"github.com/checkmarble/marble-kpi/utils"
)

// FormulaUsecase parses formulas once and evaluates them against any number of variable maps.
// Parsed trees are cached by formula text. It is safe for concurrent use.
type FormulaUsecase struct {
	environment ast_eval.AstEvaluationEnvironment
	cache       *lru.Cache[string, ast.Node]
}

func NewFormulaUsecase(environment ast_eval.AstEvaluationEnvironment, cacheSize int) FormulaUsecase {
	if cacheSize <= 0 {
		cacheSize = DEFAULT_FORMULA_CACHE_SIZE
	}
	cache, err := lru.New[string, ast.Node](cacheSize)
	if err != nil {
		// only returned for a non positive size
		panic(err)
	}
	return FormulaUsecase{environment: environment, cache: cache}
}

// ParseFormula returns the tree of a formula. Every error returned is marked as a models.BadParameterError.
func (usecase FormulaUsecase) ParseFormula(ctx context.Context, text string) (ast.Node, error) {
	logger := utils.LoggerFromContext(ctx)

	if node, ok := usecase.cache.Get(text); ok {
		logger.DebugContext(ctx, "formula parse cache hit", slog.String("formula", text))
		utils.MetricFormulaParseCount.WithLabelValues("cached").Inc()
		return node, nil
	}

	node, err := formula_parser.Parse(text)
	if err != nil {
		utils.MetricFormulaParseCount.WithLabelValues("error").Inc()
		return ast.Node{}, models.MarkInvalidFormula(err)
	}

	utils.MetricFormulaParseCount.WithLabelValues("parsed").Inc()
	usecase.cache.Add(text, node)
	return node, nil
}

// EvaluateAst computes the value of an already parsed formula. A null result is not an error.
func (usecase FormulaUsecase) EvaluateAst(ctx context.Context, node ast.Node, variables map[string]null.Float) (null.Float, error) {
	value, err := ast_eval.EvaluateAstExpression(usecase.environment.WithVariables(variables), node)
	if err != nil {
		utils.MetricFormulaEvaluationCount.WithLabelValues("error").Inc()
		if errors.Is(err, ast.ErrUnknownVariable) {
			return null.Float{}, models.MarkInvalidFormula(err)
		}
		return null.Float{}, errors.Wrap(err, "error evaluating formula")
	}

	if value.Valid {
		utils.MetricFormulaEvaluationCount.WithLabelValues("value").Inc()
	} else {
		utils.MetricFormulaEvaluationCount.WithLabelValues("null").Inc()
	}
	return value, nil
}

func (usecase FormulaUsecase) EvaluateFormula(ctx context.Context, text string, variables map[string]null.Float) (null.Float, error) {
	node, err := usecase.ParseFormula(ctx, text)
	if err != nil {
		return null.Float{}, err
	}
	return usecase.EvaluateAst(ctx, node, variables)
}

// ValidateFormula checks that a formula parses and only references known columns, before a
// metric configuration is saved. The first unknown name (in lexical order) is reported with the
// closest known column as a suggestion.
func (usecase FormulaUsecase) ValidateFormula(ctx context.Context, text string, knownVariables []string) (ast.Node, error) {
	node, err := usecase.ParseFormula(ctx, text)
	if err != nil {
		return ast.Node{}, err
	}

	knownSet := set.From(knownVariables)
	unknown := pure_utils.Filter(node.SortedVariables(), func(name string) bool {
		return !knownSet.Contains(name)
	})
	if len(unknown) == 0 {
		return node, nil
	}

	known := slices.Clone(knownVariables)
	slices.Sort(known)
	return ast.Node{}, models.MarkInvalidFormula(ast.UnknownVariableError{
		Name:       unknown[0],
		Suggestion: pure_utils.ClosestMatch(unknown[0], known),
	})
}

// ExplainFormula evaluates a formula and returns the value of every sub-expression.
// Evaluation errors are reported inside the tree, only parse errors are returned.
func (usecase FormulaUsecase) ExplainFormula(ctx context.Context, text string, variables map[string]null.Float) (ast.NodeEvaluationWithDefinitionDto, error) {
	node, err := usecase.ParseFormula(ctx, text)
	if err != nil {
		return ast.NodeEvaluationWithDefinitionDto{}, err
	}

	evaluation, _ := ast_eval.EvaluateAst(usecase.environment.WithVariables(variables), node)
	return ast.MergeAstTrees(node, ast.AdaptNodeEvaluationDto(evaluation)), nil
}

// PreviewFormula evaluates one formula against sample rows. The formula is parsed once.
func (usecase FormulaUsecase) PreviewFormula(ctx context.Context, name, text string, rows []models.KpiRow) ([]models.KpiRowResult, error) {
	node, err := usecase.ParseFormula(ctx, text)
	if err != nil {
		return nil, err
	}

	return pure_utils.MapErr(rows, func(row models.KpiRow) (models.KpiRowResult, error) {
		value, err := usecase.EvaluateAst(ctx, node, row.Variables)
		if err != nil {
			return models.KpiRowResult{}, errors.Wrapf(err, "row %s", row.Date)
		}
		return models.KpiRowResult{Date: row.Date, KpiName: name, Value: value}, nil
	})
}
