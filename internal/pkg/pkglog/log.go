package pkglog

import (
	"log/slog"
	"os"
)

// InitLogging installs a JSON slog handler as the default logger.
func InitLogging() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
