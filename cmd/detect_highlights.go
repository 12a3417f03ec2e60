package cmd

import (
	"io"
	"log/slog"

	"github.com/checkmarble/marble-kpi/dto"
	"github.com/checkmarble/marble-kpi/pure_utils"
	"github.com/checkmarble/marble-kpi/utils"
)

func RunDetectHighlights(compiledConfig CompiledConfig, config CliConfig, seriesPath string, out io.Writer) error {
	scope := utils.CommandScope{Command: "detect_highlights", Input: seriesPath}
	return run(compiledConfig, config, scope, out, func(rt commandRuntime) error {
		metrics, err := rt.repositories.KpiSeriesRepository.ListKpiSeries(rt.ctx, seriesPath)
		if err != nil {
			return err
		}

		highlights, err := rt.usecases.NewKpiHighlightsUsecase().DetectAllHighlights(rt.ctx, metrics)
		if err != nil {
			return err
		}
		utils.LoggerFromContext(rt.ctx).InfoContext(rt.ctx, "highlights detected",
			slog.Int("metrics", len(metrics)), slog.Int("highlights", len(highlights)))

		return writeJson(rt.out, pure_utils.Map(highlights, dto.AdaptHighlightDto))
	})
}
