package cmd

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/text/language"

	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/usecases"
	"github.com/checkmarble/marble-kpi/utils"
)

type CompiledConfig struct {
	Version string
}

type CliConfig struct {
	env                      string
	loggingFormat            string
	sentryDsn                string
	locale                   string
	metricsFile              string
	formulaCacheSize         int
	highlightsLookbackWindow int
	highlightsMaxConcurrency int
}

func NewCliConfigFromEnv() CliConfig {
	return CliConfig{
		env:                      utils.GetEnv("ENV", "development"),
		loggingFormat:            utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:                utils.GetEnv("SENTRY_DSN", ""),
		locale:                   utils.GetEnv("LOCALE", "en"),
		metricsFile:              utils.GetEnv("METRICS_FILE", ""),
		formulaCacheSize:         utils.GetEnv("FORMULA_CACHE_SIZE", usecases.DEFAULT_FORMULA_CACHE_SIZE),
		highlightsLookbackWindow: utils.GetEnv("HIGHLIGHTS_LOOKBACK_WINDOW", models.DEFAULT_HIGHLIGHTS_LOOKBACK_WINDOW),
		highlightsMaxConcurrency: utils.GetEnv("HIGHLIGHTS_MAX_CONCURRENCY", usecases.DEFAULT_HIGHLIGHTS_MAX_CONCURRENCY),
	}
}

func (config CliConfig) Validate() error {
	if config.loggingFormat != "text" && config.loggingFormat != "json" {
		return errors.Newf("LOGGING_FORMAT must be 'text' or 'json', got '%s'", config.loggingFormat)
	}
	if config.formulaCacheSize <= 0 {
		return errors.New("FORMULA_CACHE_SIZE must be positive")
	}
	if config.highlightsLookbackWindow < models.MIN_HIGHLIGHTS_SAMPLE_SIZE {
		return errors.Newf("HIGHLIGHTS_LOOKBACK_WINDOW must be at least %d", models.MIN_HIGHLIGHTS_SAMPLE_SIZE)
	}
	if config.highlightsMaxConcurrency <= 0 {
		return errors.New("HIGHLIGHTS_MAX_CONCURRENCY must be positive")
	}
	if _, err := language.Parse(config.locale); err != nil {
		return errors.Wrapf(err, "LOCALE '%s' is not a valid language tag", config.locale)
	}
	return nil
}

func (config CliConfig) language() language.Tag {
	tag, err := language.Parse(config.locale)
	if err != nil {
		return language.English
	}
	return tag
}

func (config CliConfig) usecaseOptions() []usecases.Option {
	return []usecases.Option{
		usecases.WithFormulaCacheSize(config.formulaCacheSize),
		usecases.WithHighlightsLookbackWindow(config.highlightsLookbackWindow),
		usecases.WithHighlightsMaxConcurrency(config.highlightsMaxConcurrency),
	}
}
