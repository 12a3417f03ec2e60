package cmd

import (
	"io"
	"log/slog"

	"github.com/checkmarble/marble-kpi/dto"
	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/pure_utils"
	"github.com/checkmarble/marble-kpi/usecases"
	"github.com/checkmarble/marble-kpi/utils"
)

type EvaluateKpisArgs struct {
	KpisPath string
	RowsPath string
	// Also run the anomaly detection over the computed KPIs
	Highlights bool
}

type evaluateKpisOutput struct {
	Results    []dto.KpiRowResultDto `json:"results"`
	Highlights []dto.HighlightDto    `json:"highlights,omitempty"`
}

func RunEvaluateKpis(compiledConfig CompiledConfig, config CliConfig, args EvaluateKpisArgs, out io.Writer) error {
	scope := utils.CommandScope{Command: "evaluate_kpis", Input: args.KpisPath + "," + args.RowsPath}
	return run(compiledConfig, config, scope, out, func(rt commandRuntime) error {
		logger := utils.LoggerFromContext(rt.ctx)

		definitions, err := rt.repositories.KpiDefinitionRepository.ListKpiDefinitions(rt.ctx, args.KpisPath)
		if err != nil {
			return err
		}
		rows, err := rt.repositories.KpiSeriesRepository.ListKpiRows(rt.ctx, args.RowsPath)
		if err != nil {
			return err
		}
		logger.InfoContext(rt.ctx, "evaluating kpis",
			slog.Int("definitions", len(definitions)), slog.Int("rows", len(rows)))

		kpiUsecase := rt.usecases.NewKpiUsecase()
		results, err := kpiUsecase.EvaluateKpis(rt.ctx, definitions, rows)
		if err != nil {
			return err
		}

		decimals := make(map[string]int, len(definitions))
		for _, definition := range definitions {
			decimals[definition.Name] = definition.Decimals
		}
		output := evaluateKpisOutput{
			Results: pure_utils.Map(results, func(result models.KpiRowResult) dto.KpiRowResultDto {
				return dto.AdaptKpiRowResultDto(result, decimals[result.KpiName], rt.config.language())
			}),
		}

		if args.Highlights {
			series := pure_utils.Map(definitions, func(definition models.KpiDefinition) models.KpiSeries {
				return usecases.KpiSeries(definition.Name, results)
			})
			highlights, err := rt.usecases.NewKpiHighlightsUsecase().DetectAllHighlights(rt.ctx, series)
			if err != nil {
				return err
			}
			output.Highlights = pure_utils.Map(highlights, dto.AdaptHighlightDto)
		}

		return writeJson(rt.out, output)
	})
}
