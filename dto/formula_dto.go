package dto

import (
	"github.com/guregu/null/v5"
	"golang.org/x/text/language"

	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/pure_utils"
)

type FormulaResultDto struct {
	Formula string     `json:"formula"`
	Value   null.Float `json:"value"`
	// Display is the value as shown on a dashboard, "—" when the value is null.
	Display string `json:"display"`
}

func AdaptFormulaResultDto(formula string, value null.Float, decimals int, tag language.Tag) FormulaResultDto {
	return FormulaResultDto{
		Formula: formula,
		Value:   value,
		Display: pure_utils.FormatMetricValue(value, decimals, tag),
	}
}

type KpiRowResultDto struct {
	Date    string     `json:"date"`
	KpiName string     `json:"kpi_name"`
	Value   null.Float `json:"value"`
	Display string     `json:"display"`
}

func AdaptKpiRowResultDto(result models.KpiRowResult, decimals int, tag language.Tag) KpiRowResultDto {
	return KpiRowResultDto{
		Date:    result.Date,
		KpiName: result.KpiName,
		Value:   result.Value,
		Display: pure_utils.FormatMetricValue(result.Value, decimals, tag),
	}
}
