package app

import (
	"log/slog"
	"os"

	"github.com/flighttrack/goflighttrack/internal/tracker"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.flight-tracker.enabled") {
		if err := tracker.New(tracker.Dependency{
			Config: a.config,
			Router: a.router,
		}); err != nil {
			slog.Error("failed to init module flight-tracker", "error", err)
			os.Exit(1)
		}
	}
}
