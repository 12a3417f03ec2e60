package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmarble/marble-kpi/models"
)

func helperKpiSeries(metricName string, values ...float64) models.KpiSeries {
	series := models.KpiSeries{MetricName: metricName, Series: make([]models.KpiDataPoint, len(values))}
	for i, v := range values {
		series.Series[i] = models.KpiDataPoint{
			Date:  fmt.Sprintf("2024-01-%02d", i+1),
			Value: null.FloatFrom(v),
		}
	}
	return series
}

func TestKpiHighlightsUsecase_DetectAllHighlights(t *testing.T) {
	usecases := NewUsecases(WithHighlightsMaxConcurrency(2))
	usecase := usecases.NewKpiHighlightsUsecase()

	metrics := []models.KpiSeries{
		helperKpiSeries("Revenue", 1000, 1010, 990, 1005, 5000, 995, 1000, 1010, 990, 1000,
			1005, 995, 1000, 1010, 990, 1000, 1005, 995, 1000, 1000),
		helperKpiSeries("CPA", 10, 11, 9, 10, 10, 11, 9, 10, 10, 11,
			9, 10, 10, 11, 60, 10, 9, 10, 11, 10),
		helperKpiSeries("CTR", 2, 2, 2, 2, 2, 2),
		helperKpiSeries("Clicks", 1, 900),
	}

	highlights, err := usecase.DetectAllHighlights(context.Background(), metrics)
	require.NoError(t, err)

	require.Len(t, highlights, 2)
	assert.Equal(t, "CPA", highlights[0].MetricName)
	assert.Equal(t, "2024-01-15", highlights[0].Date)
	assert.Equal(t, "Revenue", highlights[1].MetricName)
	assert.Equal(t, "2024-01-05", highlights[1].Date)
}

func TestKpiHighlightsUsecase_DetectAllHighlights_empty(t *testing.T) {
	usecases := NewUsecases()
	usecase := usecases.NewKpiHighlightsUsecase()

	highlights, err := usecase.DetectAllHighlights(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, highlights)
	assert.Empty(t, highlights)
}

func TestKpiHighlightsUsecase_DetectAllHighlights_cancelled(t *testing.T) {
	usecases := NewUsecases()
	usecase := usecases.NewKpiHighlightsUsecase()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := usecase.DetectAllHighlights(ctx, []models.KpiSeries{helperKpiSeries("CPA", 1, 2, 3, 4, 5)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKpiHighlightsUsecase_lookback_window(t *testing.T) {
	// the spike is out of a 5 points window
	series := helperKpiSeries("CPA", 10, 10, 500, 10, 11, 9, 10, 11)

	usecases := NewUsecases(WithHighlightsLookbackWindow(5))
	usecase := usecases.NewKpiHighlightsUsecase()
	assert.Empty(t, usecase.DetectHighlights(context.Background(), series))
}
