package usecases

import (
	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/usecases/ast_eval"
)

const (
	DEFAULT_FORMULA_CACHE_SIZE         = 256
	DEFAULT_HIGHLIGHTS_MAX_CONCURRENCY = 4
)

type Usecases struct {
	formulaCacheSize         int
	highlightsLookbackWindow int
	highlightsMaxConcurrency int
}

type Option func(*options)

func WithFormulaCacheSize(size int) Option {
	return func(o *options) {
		o.formulaCacheSize = size
	}
}

func WithHighlightsLookbackWindow(window int) Option {
	return func(o *options) {
		o.highlightsLookbackWindow = window
	}
}

func WithHighlightsMaxConcurrency(concurrency int) Option {
	return func(o *options) {
		o.highlightsMaxConcurrency = concurrency
	}
}

type options struct {
	formulaCacheSize         int
	highlightsLookbackWindow int
	highlightsMaxConcurrency int
}

func NewUsecases(opts ...Option) Usecases {
	o := options{
		formulaCacheSize:         DEFAULT_FORMULA_CACHE_SIZE,
		highlightsLookbackWindow: models.DEFAULT_HIGHLIGHTS_LOOKBACK_WINDOW,
		highlightsMaxConcurrency: DEFAULT_HIGHLIGHTS_MAX_CONCURRENCY,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return Usecases{
		formulaCacheSize:         o.formulaCacheSize,
		highlightsLookbackWindow: o.highlightsLookbackWindow,
		highlightsMaxConcurrency: o.highlightsMaxConcurrency,
	}
}

func (usecases *Usecases) NewFormulaUsecase() FormulaUsecase {
	return NewFormulaUsecase(ast_eval.NewAstEvaluationEnvironment(), usecases.formulaCacheSize)
}

func (usecases *Usecases) NewKpiHighlightsUsecase() KpiHighlightsUsecase {
	return KpiHighlightsUsecase{
		lookbackWindow: usecases.highlightsLookbackWindow,
		maxConcurrency: usecases.highlightsMaxConcurrency,
	}
}

func (usecases *Usecases) NewKpiUsecase() KpiUsecase {
	return KpiUsecase{
		formulaUsecase: usecases.NewFormulaUsecase(),
	}
}
