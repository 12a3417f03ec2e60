package usecases

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/usecases/kpi_highlights"
	"github.com/checkmarble/marble-kpi/utils"
)

type KpiHighlightsUsecase struct {
	lookbackWindow int
	maxConcurrency int
}

func (usecase KpiHighlightsUsecase) DetectHighlights(ctx context.Context, series models.KpiSeries) []models.HighlightResult {
	highlights := kpi_highlights.DetectHighlights(series.Series, series.MetricName, usecase.lookbackWindow)
	usecase.record(ctx, series, highlights)
	return highlights
}

// DetectAllHighlights runs the detection of every metric concurrently and merges the results,
// most recent first. The only possible error is the cancellation of ctx.
func (usecase KpiHighlightsUsecase) DetectAllHighlights(ctx context.Context, metrics []models.KpiSeries) ([]models.HighlightResult, error) {
	start := time.Now()
	perMetric := make([][]models.HighlightResult, len(metrics))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(usecase.maxConcurrency, 1))

	for i, metric := range metrics {
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return errors.Wrapf(ctx.Err(),
					"context cancelled before detecting highlights of %s", metric.MetricName)
			default:
			}

			perMetric[i] = usecase.DetectHighlights(ctx, metric)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	highlights := make([]models.HighlightResult, 0)
	for _, metricHighlights := range perMetric {
		highlights = append(highlights, metricHighlights...)
	}
	kpi_highlights.SortHighlights(highlights)

	utils.MetricHighlightDetectionLatency.Observe(time.Since(start).Seconds())
	return highlights, nil
}

func (usecase KpiHighlightsUsecase) record(ctx context.Context, series models.KpiSeries, highlights []models.HighlightResult) {
	for _, highlight := range highlights {
		utils.MetricHighlightCount.WithLabelValues(string(highlight.Severity)).Inc()
	}
	utils.LoggerFromContext(ctx).DebugContext(ctx, "detected highlights",
		slog.String("metric", series.MetricName),
		slog.Int("points", len(series.Series)),
		slog.Int("highlights", len(highlights)))
}
