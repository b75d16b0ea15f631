package logger

import (
	"strings"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// LogLevelParser handles parsing of log levels
type LogLevelParser struct{}

// NewLogLevelParser creates a new log level parser
func NewLogLevelParser() *LogLevelParser {
	return &LogLevelParser{}
}

// ParseLevel parses string log level to zerolog.Level.
// An empty string maps to info.
func (llp *LogLevelParser) ParseLevel(levelStr string) (zerolog.Level, error) {
	if levelStr == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel, errorwrapper.WrapError(err, "invalid log level")
	}
	return level, nil
}

// LogFormatParser handles parsing of log formats
type LogFormatParser struct{}

// NewLogFormatParser creates a new log format parser
func NewLogFormatParser() *LogFormatParser {
	return &LogFormatParser{}
}

// ParseFormat maps a log_format value to a LogFormat, defaulting to console.
func (lfp *LogFormatParser) ParseFormat(formatStr string) LogFormat {
	switch format := LogFormat(strings.ToLower(strings.TrimSpace(formatStr))); format {
	case FormatJSON, FormatConsole, FormatPlain:
		return format
	default:
		return FormatConsole
	}
}
