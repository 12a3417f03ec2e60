package utils

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
)

// LogAndReportSentryError logs err with the command scope of ctx, and reports it to sentry
// tagged with the same scope. Canceled commands are logged but not reported.
func LogAndReportSentryError(ctx context.Context, err error) {
	fields := CommandScopeFromContext(ctx).fields()

	attrs := make([]slog.Attr, 0, len(fields))
	for _, field := range fields {
		attrs = append(attrs, slog.String(field.key, field.value))
	}
	LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelError, fmt.Sprintf("%+v", err), attrs...)

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for _, field := range fields {
			scope.SetTag("kpi."+field.key, field.value)
		}
		hub.CaptureException(err)
	})
}
