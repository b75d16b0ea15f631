package logger

import (
	"github.com/aleister1102/sashunter/internal/config"
	"github.com/rs/zerolog"
)

// LoggerConfig is the resolved form of config.LogConfig.
// File output is on only when FilePath is set.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// LogFormat is the log_format value of the config file.
type LogFormat string

const (
	FormatJSON    LogFormat = "json"
	FormatConsole LogFormat = "console"
	// FormatPlain is the console layout without color codes.
	FormatPlain LogFormat = "text"
)

// DefaultLoggerConfig logs colored console output at info level to stderr only.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:         zerolog.InfoLevel,
		Format:        FormatConsole,
		EnableConsole: true,
		MaxSizeMB:     config.DefaultMaxLogSizeMB,
		MaxBackups:    config.DefaultMaxLogBackups,
	}
}
