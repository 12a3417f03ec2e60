package dto

import (
	"github.com/checkmarble/marble-kpi/models"
)

type HighlightDto struct {
	Date          string  `json:"date"`
	MetricName    string  `json:"metric_name"`
	Value         float64 `json:"value"`
	Mean          float64 `json:"mean"`
	StdDev        float64 `json:"std_dev"`
	ChangePercent float64 `json:"change_percent"`
	Severity      string  `json:"severity"`
}

func AdaptHighlightDto(highlight models.HighlightResult) HighlightDto {
	return HighlightDto{
		Date:          highlight.Date,
		MetricName:    highlight.MetricName,
		Value:         highlight.Value,
		Mean:          highlight.Mean,
		StdDev:        highlight.StdDev,
		ChangePercent: highlight.ChangePercent,
		Severity:      string(highlight.Severity),
	}
}
