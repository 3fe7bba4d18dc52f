package logger

import (
	"log/slog"
	"os"
)

// Setup installs a JSON slog default logger tagged with the component
// name. Setting the DEBUG environment variable enables debug output.
func Setup(component string) {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler).With("component", component))
}
