package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/checkmarble/marble-kpi/dto"
	"github.com/checkmarble/marble-kpi/infra"
	"github.com/checkmarble/marble-kpi/models"
	"github.com/checkmarble/marble-kpi/repositories"
	"github.com/checkmarble/marble-kpi/usecases"
	"github.com/checkmarble/marble-kpi/utils"
)

type commandRuntime struct {
	ctx          context.Context
	config       CliConfig
	repositories *repositories.Repositories
	usecases     usecases.Usecases
	out          io.Writer
}

// run sets up the logger, sentry and the usecases, then runs the command. User errors are
// written to out as a json error, other errors are logged and reported to sentry.
func run(compiledConfig CompiledConfig, config CliConfig, scope utils.CommandScope, out io.Writer, command func(rt commandRuntime) error) error {
	if err := config.Validate(); err != nil {
		return err
	}

	logger := utils.NewLogger(config.loggingFormat, os.Stderr)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)
	ctx = utils.StoreCommandScopeInContext(ctx, scope)

	infra.SetupSentry(config.sentryDsn, config.env, compiledConfig.Version)
	defer sentry.Flush(3 * time.Second)

	rt := commandRuntime{
		ctx:          ctx,
		config:       config,
		repositories: repositories.NewRepositories(),
		usecases:     usecases.NewUsecases(config.usecaseOptions()...),
		out:          out,
	}

	err := command(rt)
	if config.metricsFile != "" {
		if metricsErr := prometheus.WriteToTextfile(config.metricsFile, utils.MetricsRegistry); metricsErr != nil {
			logger.WarnContext(ctx, "could not write metrics", slog.String("error", metricsErr.Error()))
		}
	}
	if err == nil {
		return nil
	}

	if errors.Is(err, models.BadParameterError) || errors.Is(err, models.NotFoundError) {
		if writeErr := writeJson(out, dto.AdaptAPIErrorResponse(err)); writeErr != nil {
			return writeErr
		}
		return err
	}
	utils.LogAndReportSentryError(ctx, err)
	return err
}

func writeJson(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(value), "error writing output")
}
