package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger builds the slog handler/logger pair that components store.
// A nil handler falls back to a text handler on stdout grouped under the
// component name, and the fallback is announced once through the new logger.
// When group is non-empty the returned logger is additionally grouped under
// it, so component internals log under their own prefix while sharing the
// caller's handler.
func SetupLogger(handler slog.Handler, component string, group string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		defaultHandler := slog.NewTextHandler(os.Stdout, nil)
		handler = defaultHandler.WithGroup(component)
		defaultLogger := slog.New(handler)
		defaultLogger.Warn("Handler is nil, using the default logger configuration.")
	}

	var logger *slog.Logger
	if group != "" {
		logger = slog.New(handler.WithGroup(group))
	} else {
		logger = slog.New(handler)
	}

	return handler, logger
}
