package logger

import (
	"io"

	"github.com/aleister1102/sashunter/internal/config"
	"github.com/rs/zerolog"
)

// Logger is the process-wide log destination. It is created once at startup
// and its zerolog instance is handed to every component.
type Logger struct {
	zerolog zerolog.Logger
	config  LoggerConfig
	closer  io.Closer
}

// GetZerolog returns the underlying zerolog instance
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zerolog
}

// FilePath returns the log file path, or "" when file logging is off
func (l *Logger) FilePath() string {
	if !l.config.EnableFile {
		return ""
	}
	return l.config.FilePath
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// New creates a new logger instance from application config
func New(cfg config.LogConfig) (*Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
