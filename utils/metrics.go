package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MetricsRegistry = prometheus.NewRegistry()

var (
	MetricFormulaParseCount = promauto.With(MetricsRegistry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "marble_kpi_formula_parse_total",
			Help: "Number of formulas parsed, by outcome",
		},
		[]string{"status"},
	)
	MetricFormulaEvaluationCount = promauto.With(MetricsRegistry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "marble_kpi_formula_evaluation_total",
			Help: "Number of formula evaluations, by result kind",
		},
		[]string{"result"},
	)
	MetricHighlightCount = promauto.With(MetricsRegistry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "marble_kpi_highlight_total",
			Help: "Number of anomalies detected, by severity",
		},
		[]string{"severity"},
	)
	MetricHighlightDetectionLatency = promauto.With(MetricsRegistry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marble_kpi_highlight_detection_seconds",
			Help:    "Time spent detecting anomalies over a batch of metrics",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)
)

func init() {
	MetricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
