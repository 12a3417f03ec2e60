package usecases

import (
	"context"
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmarble/marble-kpi/models"
)

func TestKpiUsecase_EvaluateKpis(t *testing.T) {
	usecases := NewUsecases()
	usecase := usecases.NewKpiUsecase()

	definitions := []models.KpiDefinition{
		{Name: "roas", Formula: "Revenue / Cost"},
		{Name: "cpa", Formula: "Cost / Conversions"},
	}
	rows := []models.KpiRow{
		{Date: "2024-03-01", Variables: map[string]null.Float{
			"Revenue": null.FloatFrom(300), "Cost": null.FloatFrom(100), "Conversions": null.FloatFrom(4),
		}},
		{Date: "2024-03-02", Variables: map[string]null.Float{
			"Revenue": {}, "Cost": null.FloatFrom(50), "Conversions": null.FloatFrom(0),
		}},
	}

	results, err := usecase.EvaluateKpis(context.Background(), definitions, rows)
	require.NoError(t, err)
	assert.Equal(t, []models.KpiRowResult{
		{Date: "2024-03-01", KpiName: "roas", Value: null.FloatFrom(3)},
		{Date: "2024-03-01", KpiName: "cpa", Value: null.FloatFrom(25)},
		{Date: "2024-03-02", KpiName: "roas", Value: null.Float{}},
		{Date: "2024-03-02", KpiName: "cpa", Value: null.Float{}},
	}, results)

	series := KpiSeries("cpa", results)
	assert.Equal(t, "cpa", series.MetricName)
	assert.Equal(t, []models.KpiDataPoint{
		{Date: "2024-03-01", Value: null.FloatFrom(25)},
		{Date: "2024-03-02", Value: null.Float{}},
	}, series.Series)
}

func TestKpiUsecase_EvaluateKpis_invalid_formula(t *testing.T) {
	usecases := NewUsecases()
	usecase := usecases.NewKpiUsecase()

	_, err := usecase.EvaluateKpis(context.Background(),
		[]models.KpiDefinition{{Name: "broken", Formula: "Cost >"}},
		[]models.KpiRow{{Date: "2024-03-01", Variables: map[string]null.Float{"Cost": null.FloatFrom(1)}}})
	assert.ErrorIs(t, err, models.BadParameterError)
	assert.ErrorContains(t, err, "kpi broken")
}
