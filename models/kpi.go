package models

import "github.com/guregu/null/v5"

const (
	DEFAULT_HIGHLIGHTS_LOOKBACK_WINDOW = 30
	// Below this number of non null points, no anomaly can be told apart.
	MIN_HIGHLIGHTS_SAMPLE_SIZE = 5

	WARNING_STD_DEV_THRESHOLD  = 2.0
	CRITICAL_STD_DEV_THRESHOLD = 3.0
)

// KpiDataPoint is the value of a metric on one calendar day. Date is an ISO date (YYYY-MM-DD),
// so that the lexical order is the chronological order.
type KpiDataPoint struct {
	Date  string
	Value null.Float
}

type KpiSeries struct {
	MetricName string
	Series     []KpiDataPoint
}

type HighlightSeverity string

const (
	HighlightSeverityWarning  HighlightSeverity = "warning"
	HighlightSeverityCritical HighlightSeverity = "critical"
)

// Rank orders severities, the most severe first.
func (s HighlightSeverity) Rank() int {
	switch s {
	case HighlightSeverityCritical:
		return 0
	case HighlightSeverityWarning:
		return 1
	default:
		return 2
	}
}

type HighlightResult struct {
	Date          string
	MetricName    string
	Value         float64
	Mean          float64
	StdDev        float64
	ChangePercent float64
	Severity      HighlightSeverity
}
