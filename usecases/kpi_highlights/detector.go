package kpi_highlights

import (
	"cmp"
	"math"
	"slices"

	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/pure_utils"
)

// DetectHighlights flags the days of a metric that deviate from the mean of the lookback window
// by more than 2 (warning) or 3 (critical) standard deviations. The series must be sorted by
// ascending date; null values are ignored and only the most recent lookbackWindow valid points
// are considered (a non positive lookbackWindow means the default window).
// Samples too small or without any variance yield no highlight.
func DetectHighlights(series []models.KpiDataPoint, metricName string, lookbackWindow int) []models.HighlightResult {
	if lookbackWindow <= 0 {
		lookbackWindow = models.DEFAULT_HIGHLIGHTS_LOOKBACK_WINDOW
	}

	validPoints := pure_utils.Filter(series, func(p models.KpiDataPoint) bool { return p.Value.Valid })
	window := pure_utils.Last(validPoints, lookbackWindow)
	if len(window) < models.MIN_HIGHLIGHTS_SAMPLE_SIZE {
		return []models.HighlightResult{}
	}

	stats := ComputeStatistics(pure_utils.Map(window, func(p models.KpiDataPoint) float64 { return p.Value.Float64 }))
	if stats.StdDev == 0 {
		return []models.HighlightResult{}
	}

	highlights := make([]models.HighlightResult, 0)
	for _, point := range window {
		value := point.Value.Float64
		severity, flagged := classify(math.Abs(value-stats.Mean), stats.StdDev)
		if !flagged {
			continue
		}
		highlights = append(highlights, models.HighlightResult{
			Date:          point.Date,
			MetricName:    metricName,
			Value:         value,
			Mean:          stats.Mean,
			StdDev:        stats.StdDev,
			ChangePercent: changePercent(value, stats.Mean),
			Severity:      severity,
		})
	}
	return highlights
}

// DetectAllHighlights runs DetectHighlights on every metric independently and merges the results,
// most recent date first and critical before warning on the same date.
func DetectAllHighlights(metrics []models.KpiSeries, lookbackWindow int) []models.HighlightResult {
	highlights := pure_utils.FlatMap(metrics, func(m models.KpiSeries) []models.HighlightResult {
		return DetectHighlights(m.Series, m.MetricName, lookbackWindow)
	})
	SortHighlights(highlights)
	return highlights
}

// SortHighlights sorts in place by descending date, then by severity, then by metric name.
func SortHighlights(highlights []models.HighlightResult) {
	slices.SortStableFunc(highlights, func(a, b models.HighlightResult) int {
		return cmp.Or(
			cmp.Compare(b.Date, a.Date),
			cmp.Compare(a.Severity.Rank(), b.Severity.Rank()),
			cmp.Compare(a.MetricName, b.MetricName),
		)
	})
}

func classify(deviation, stdDev float64) (models.HighlightSeverity, bool) {
	switch {
	case deviation > models.CRITICAL_STD_DEV_THRESHOLD*stdDev:
		return models.HighlightSeverityCritical, true
	case deviation > models.WARNING_STD_DEV_THRESHOLD*stdDev:
		return models.HighlightSeverityWarning, true
	default:
		return "", false
	}
}

func changePercent(value, mean float64) float64 {
	if mean == 0 {
		return 0
	}
	return (value - mean) / mean * 100
}
