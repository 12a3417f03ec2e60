package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"

	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/pure_utils"
)

const rowDateField = "date"

type KpiSeriesRepository interface {
	ListKpiSeries(ctx context.Context, path string) ([]models.KpiSeries, error)
	ParseKpiSeries(data []byte) ([]models.KpiSeries, error)
	ListKpiRows(ctx context.Context, path string) ([]models.KpiRow, error)
	ParseKpiRows(data []byte) ([]models.KpiRow, error)
}

// KpiSeriesRepositoryJson reads metric series and input rows from json documents.
//
// Series: {"metrics": [{"metric_name": "CPA", "series": [{"date": "2024-01-01", "value": 12.5}]}]}
//
// Rows: [{"date": "2024-01-01", "Cost": 100, "Revenue": null}]. Every field other than "date" is a
// variable. A null field is a variable with a null value, an absent field is an unknown variable.
type KpiSeriesRepositoryJson struct{}

func (repo *KpiSeriesRepositoryJson) ListKpiSeries(ctx context.Context, path string) ([]models.KpiSeries, error) {
	data, err := readInputFile(path)
	if err != nil {
		return nil, err
	}
	series, err := repo.ParseKpiSeries(data)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return series, nil
}

func (repo *KpiSeriesRepositoryJson) ParseKpiSeries(data []byte) ([]models.KpiSeries, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(models.ErrInvalidKpiInput, "json is invalid")
	}

	metrics := gjson.GetBytes(data, "metrics")
	if !metrics.IsArray() {
		return nil, errors.Wrap(models.ErrInvalidKpiInput, "'metrics' must be an array")
	}

	return pure_utils.MapErr(metrics.Array(), func(metric gjson.Result) (models.KpiSeries, error) {
		name := metric.Get("metric_name")
		if name.Type != gjson.String || name.String() == "" {
			return models.KpiSeries{}, errors.Wrap(models.ErrInvalidKpiInput, "metric_name is required")
		}

		points := metric.Get("series")
		if !points.IsArray() {
			return models.KpiSeries{}, errors.Wrapf(models.ErrInvalidKpiInput,
				"series of %s must be an array", name.String())
		}

		series, err := pure_utils.MapErr(points.Array(), parseDataPoint)
		if err != nil {
			return models.KpiSeries{}, errors.Wrapf(err, "metric %s", name.String())
		}
		return models.KpiSeries{MetricName: name.String(), Series: series}, nil
	})
}

func parseDataPoint(point gjson.Result) (models.KpiDataPoint, error) {
	date := point.Get(rowDateField)
	if date.Type != gjson.String || date.String() == "" {
		return models.KpiDataPoint{}, errors.Wrap(models.ErrInvalidKpiInput, "date is required")
	}

	value := point.Get("value")
	if !value.Exists() {
		return models.KpiDataPoint{}, errors.Wrapf(models.ErrInvalidKpiInput,
			"value is missing on %s, use null for an unknown value", date.String())
	}
	parsed, err := parseNullableNumber(value)
	if err != nil {
		return models.KpiDataPoint{}, errors.Wrapf(err, "on %s", date.String())
	}
	return models.KpiDataPoint{Date: date.String(), Value: parsed}, nil
}

func (repo *KpiSeriesRepositoryJson) ListKpiRows(ctx context.Context, path string) ([]models.KpiRow, error) {
	data, err := readInputFile(path)
	if err != nil {
		return nil, err
	}
	rows, err := repo.ParseKpiRows(data)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return rows, nil
}

func (repo *KpiSeriesRepositoryJson) ParseKpiRows(data []byte) ([]models.KpiRow, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(models.ErrInvalidKpiInput, "json is invalid")
	}
	result := gjson.ParseBytes(data)
	if !result.IsArray() {
		return nil, errors.Wrap(models.ErrInvalidKpiInput, "rows must be an array")
	}

	return pure_utils.MapErr(result.Array(), parseRow)
}

func parseRow(object gjson.Result) (models.KpiRow, error) {
	if !object.IsObject() {
		return models.KpiRow{}, errors.Wrap(models.ErrInvalidKpiInput, "a row must be an object")
	}
	row := models.KpiRow{Variables: make(map[string]null.Float)}

	var err error
	object.ForEach(func(key, value gjson.Result) bool {
		if key.String() == rowDateField {
			row.Date = value.String()
			return true
		}
		var parsed null.Float
		parsed, err = parseNullableNumber(value)
		if err != nil {
			err = errors.Wrapf(err, "field %s", key.String())
			return false
		}
		row.Variables[key.String()] = parsed
		return true
	})
	if err != nil {
		return models.KpiRow{}, err
	}
	if row.Date == "" {
		return models.KpiRow{}, errors.Wrap(models.ErrInvalidKpiInput, "date is required")
	}
	return row, nil
}

// parseNullableNumber accepts json numbers, null, and numbers written as strings.
func parseNullableNumber(value gjson.Result) (null.Float, error) {
	switch value.Type {
	case gjson.Null:
		return null.Float{}, nil
	case gjson.Number:
		return null.FloatFrom(value.Float()), nil
	case gjson.String:
		parsed, err := pure_utils.ParseNullFloat(value.String())
		if err != nil {
			return null.Float{}, errors.Wrap(models.ErrInvalidKpiInput, err.Error())
		}
		return parsed, nil
	default:
		return null.Float{}, errors.Wrapf(models.ErrInvalidKpiInput,
			"expected a number or null, got %s", value.Raw)
	}
}
