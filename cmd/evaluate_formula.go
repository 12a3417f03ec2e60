package cmd

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/checkmarble/marble-kpi/dto"
	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/pure_utils"
	"github.com/checkmarble/marble-kpi/utils"
)

type EvaluateFormulaArgs struct {
	Formula   string
	Variables string
	Decimals  int
	Explain   bool
}

// RunEvaluateFormula evaluates a single formula against variables given as "Cost=100,Revenue=null".
func RunEvaluateFormula(compiledConfig CompiledConfig, config CliConfig, args EvaluateFormulaArgs, out io.Writer) error {
	scope := utils.CommandScope{Command: "evaluate_formula", Formula: args.Formula}
	return run(compiledConfig, config, scope, out, func(rt commandRuntime) error {
		variables, err := ParseVariablesFlag(args.Variables)
		if err != nil {
			return err
		}

		formulaUsecase := rt.usecases.NewFormulaUsecase()
		if args.Explain {
			explanation, err := formulaUsecase.ExplainFormula(rt.ctx, args.Formula, variables)
			if err != nil {
				return err
			}
			return writeJson(rt.out, explanation)
		}

		value, err := formulaUsecase.EvaluateFormula(rt.ctx, args.Formula, variables)
		if err != nil {
			return err
		}
		return writeJson(rt.out, dto.AdaptFormulaResultDto(args.Formula, value, args.Decimals, rt.config.language()))
	})
}

// ParseVariablesFlag reads "name=value" pairs separated by commas. "null" or an empty value is a null variable.
func ParseVariablesFlag(flag string) (map[string]null.Float, error) {
	variables := make(map[string]null.Float)
	if strings.TrimSpace(flag) == "" {
		return variables, nil
	}

	for _, pair := range strings.Split(flag, ",") {
		name, rawValue, found := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, errors.Wrapf(models.ErrInvalidKpiInput, "'%s' is not a name=value pair", pair)
		}
		if _, duplicate := variables[name]; duplicate {
			return nil, errors.Wrapf(models.ErrInvalidKpiInput, "variable %s is set twice", name)
		}
		value, err := pure_utils.ParseNullFloat(rawValue)
		if err != nil {
			return nil, errors.Wrap(models.ErrInvalidKpiInput, err.Error())
		}
		variables[name] = value
	}
	return variables, nil
}
