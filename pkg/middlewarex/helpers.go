package middlewarex

import (
	"context"
	"log/slog"

	"outlet_margin/pkg/contextx"
)

func logger(ctx context.Context) *slog.Logger {
	return contextx.LoggerFromContextOrDefault(ctx)
}
