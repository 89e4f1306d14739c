// Package logger provides the service's logging subsystem.
package logger

import (
	"log/slog"

	"github.com/JaimeStill/route-docs/pkg/logging"
)

// System provides access to the configured logger instance.
type System interface {
	Logger() *slog.Logger
	Module(name string) *slog.Logger
}

type logger struct {
	logger *slog.Logger
}

// New creates a logger system writing to stdout with the specified configuration.
func New(cfg *logging.Config) System {
	return &logger{
		logger: logging.New(cfg, nil),
	}
}

// Logger returns the configured slog.Logger instance.
func (l *logger) Logger() *slog.Logger {
	return l.logger
}

// Module returns a logger tagged with the module name.
func (l *logger) Module(name string) *slog.Logger {
	return l.logger.With("module", name)
}
