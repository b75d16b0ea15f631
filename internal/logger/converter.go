package logger

import (
	"github.com/aleister1102/sashunter/internal/config"
	"github.com/rs/zerolog"
)

// ConfigConverter converts config.LogConfig to LoggerConfig
type ConfigConverter struct {
	levelParser  *LogLevelParser
	formatParser *LogFormatParser
}

// NewConfigConverter creates a new config converter
func NewConfigConverter() *ConfigConverter {
	return &ConfigConverter{
		levelParser:  NewLogLevelParser(),
		formatParser: NewLogFormatParser(),
	}
}

// ConvertConfig converts application config to logger config.
// An unparseable level falls back to info and is reported through the returned error.
func (cc *ConfigConverter) ConvertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	level, err := cc.levelParser.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return LoggerConfig{
		Level:         level,
		Format:        cc.formatParser.ParseFormat(cfg.LogFormat),
		EnableConsole: true,
		EnableFile:    cfg.LogFile != "",
		FilePath:      cfg.LogFile,
		MaxSizeMB:     cc.getMaxSizeMB(cfg.MaxLogSizeMB),
		MaxBackups:    cc.getMaxBackups(cfg.MaxLogBackups),
	}, err
}

func (cc *ConfigConverter) getMaxSizeMB(maxSize int) int {
	if maxSize <= 0 {
		return config.DefaultMaxLogSizeMB
	}
	return maxSize
}

func (cc *ConfigConverter) getMaxBackups(maxBackups int) int {
	if maxBackups <= 0 {
		return config.DefaultMaxLogBackups
	}
	return maxBackups
}
