package utils

import (
	"context"
	"log/slog"
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

// LoggerFromContext returns the logger stored in the context, or the default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found || logger == nil {
		return slog.Default()
	}
	return logger
}

// CommandScope names what a command works on. Error logs and sentry reports carry it.
type CommandScope struct {
	Command string
	Formula string
	Input   string
}

type scopeField struct {
	key   string
	value string
}

// fields returns the non empty fields, in a stable order.
func (s CommandScope) fields() []scopeField {
	fields := make([]scopeField, 0, 3)
	for _, field := range []scopeField{
		{"command", s.Command},
		{"formula", s.Formula},
		{"input", s.Input},
	} {
		if field.value != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

func StoreCommandScopeInContext(ctx context.Context, scope CommandScope) context.Context {
	return context.WithValue(ctx, ContextKeyCommandScope, scope)
}

func CommandScopeFromContext(ctx context.Context) CommandScope {
	scope, _ := ctx.Value(ContextKeyCommandScope).(CommandScope)
	return scope
}
