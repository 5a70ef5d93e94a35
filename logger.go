package cleartype

import (
	"log/slog"

	"github.com/gogpu/cleartype/internal/logging"
)

// SetLogger configures the logger for cleartype and all its sub-packages.
// By default, cleartype produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by cleartype:
//   - [slog.LevelDebug]: table builds, coverage bounds, buffer sizes, mean ink
//   - [slog.LevelWarn]: unreadable host preferences, skipped draws
//
// Example:
//
//	cleartype.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by cleartype.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
