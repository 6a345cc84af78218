// Package logger provides structured logging for the application: a JSON
// slog logger configured from the server settings, plus helpers for carrying
// a request-scoped logger through context.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/taskwell/taskwell-api/internal/config"
)

// Setup initializes the application's logging system from the provided
// configuration. It creates a structured JSON logger with the configured
// level, sets it as the process default, and returns it.
func Setup(cfg config.ServerConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		tmp := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmp.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler)
	slog.SetDefault(log)

	return log
}
