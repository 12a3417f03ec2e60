package repositories

import (
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmarble/marble-kpi/models"
)

func TestParseKpiSeries(t *testing.T) {
	repo := KpiSeriesRepositoryJson{}

	series, err := repo.ParseKpiSeries([]byte(`{"metrics": [
		{"metric_name": "CPA", "series": [
			{"date": "2024-01-01", "value": 12.5},
			{"date": "2024-01-02", "value": null},
			{"date": "2024-01-03", "value": "13"}
		]},
		{"metric_name": "Revenue", "series": []}
	]}`))
	require.NoError(t, err)
	assert.Equal(t, []models.KpiSeries{
		{MetricName: "CPA", Series: []models.KpiDataPoint{
			{Date: "2024-01-01", Value: null.FloatFrom(12.5)},
			{Date: "2024-01-02", Value: null.Float{}},
			{Date: "2024-01-03", Value: null.FloatFrom(13)},
		}},
		{MetricName: "Revenue", Series: []models.KpiDataPoint{}},
	}, series)
}

func TestParseKpiSeries_invalid(t *testing.T) {
	repo := KpiSeriesRepositoryJson{}

	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{"metrics": [`},
		{"no metrics", `{"series": []}`},
		{"no metric name", `{"metrics": [{"series": []}]}`},
		{"no date", `{"metrics": [{"metric_name": "CPA", "series": [{"value": 1}]}]}`},
		{"missing value", `{"metrics": [{"metric_name": "CPA", "series": [{"date": "2024-01-01"}]}]}`},
		{"boolean value", `{"metrics": [{"metric_name": "CPA", "series": [{"date": "2024-01-01", "value": true}]}]}`},
		{"text value", `{"metrics": [{"metric_name": "CPA", "series": [{"date": "2024-01-01", "value": "twelve"}]}]}`},
		{"nan value", `{"metrics": [{"metric_name": "CPA", "series": [{"date": "2024-01-01", "value": "NaN"}]}]}`},
		{"infinite value", `{"metrics": [{"metric_name": "CPA", "series": [{"date": "2024-01-01", "value": "-Inf"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.ParseKpiSeries([]byte(tt.content))
			assert.ErrorIs(t, err, models.ErrInvalidKpiInput)
			assert.ErrorIs(t, err, models.BadParameterError)
		})
	}
}

func TestParseKpiRows(t *testing.T) {
	repo := KpiSeriesRepositoryJson{}

	rows, err := repo.ParseKpiRows([]byte(`[
		{"date": "2024-03-01", "Cost": 100, "Revenue": null},
		{"date": "2024-03-02", "Cost": 90}
	]`))
	require.NoError(t, err)
	assert.Equal(t, []models.KpiRow{
		{Date: "2024-03-01", Variables: map[string]null.Float{"Cost": null.FloatFrom(100), "Revenue": {}}},
		{Date: "2024-03-02", Variables: map[string]null.Float{"Cost": null.FloatFrom(90)}},
	}, rows)

	_, err = repo.ParseKpiRows([]byte(`[{"Cost": 100}]`))
	assert.ErrorIs(t, err, models.ErrInvalidKpiInput)

	_, err = repo.ParseKpiRows([]byte(`[{"date": "2024-03-01", "Cost": [1]}]`))
	assert.ErrorIs(t, err, models.ErrInvalidKpiInput)
	assert.ErrorContains(t, err, "field Cost")

	_, err = repo.ParseKpiRows([]byte(`[{"date": "2024-03-01", "Cost": "NaN", "Conversions": "Inf"}]`))
	assert.ErrorIs(t, err, models.ErrInvalidKpiInput)

	_, err = repo.ParseKpiRows([]byte(`{"date": "2024-03-01"}`))
	assert.ErrorIs(t, err, models.ErrInvalidKpiInput)
}
