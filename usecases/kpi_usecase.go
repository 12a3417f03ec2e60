package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/checkmarble/marble-kpi/models"
)

// KpiUsecase computes user defined KPIs over rows of input columns.
type KpiUsecase struct {
	formulaUsecase FormulaUsecase
}

// EvaluateKpis returns one result per definition and row, rows first. A definition whose
// formula does not parse fails the whole call: a broken formula must never be silently skipped.
func (usecase KpiUsecase) EvaluateKpis(ctx context.Context, definitions []models.KpiDefinition, rows []models.KpiRow) ([]models.KpiRowResult, error) {
	perDefinition := make([][]models.KpiRowResult, 0, len(definitions))
	for _, definition := range definitions {
		results, err := usecase.formulaUsecase.PreviewFormula(ctx, definition.Name, definition.Formula, rows)
		if err != nil {
			return nil, errors.Wrapf(err, "kpi %s", definition.Name)
		}
		perDefinition = append(perDefinition, results)
	}

	results := make([]models.KpiRowResult, 0, len(definitions)*len(rows))
	for i := range rows {
		for _, definitionResults := range perDefinition {
			results = append(results, definitionResults[i])
		}
	}
	return results, nil
}

// KpiSeries turns the results of one KPI into a series that can be fed to the anomaly detector.
func KpiSeries(kpiName string, results []models.KpiRowResult) models.KpiSeries {
	series := models.KpiSeries{MetricName: kpiName, Series: make([]models.KpiDataPoint, 0)}
	for _, result := range results {
		if result.KpiName == kpiName {
			series.Series = append(series.Series, models.KpiDataPoint{Date: result.Date, Value: result.Value})
		}
	}
	return series
}
