package logger

import (
	"io"
	stdlog "log" // Standard Go log package, aliased to avoid conflict with zerolog field

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"github.com/aleister1102/sashunter/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config    LoggerConfig
	factory   *WriterFactory
	converter *ConfigConverter
	extra     []io.Writer
	convErr   error
}

// NewLoggerBuilder creates a new logger builder
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config:    DefaultLoggerConfig(),
		factory:   NewWriterFactory(),
		converter: NewConfigConverter(),
	}
}

// WithConfig sets the logger configuration
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	lb.config, lb.convErr = lb.converter.ConvertConfig(cfg)
	return lb
}

// WithConsole toggles the stderr writer
func (lb *LoggerBuilder) WithConsole(enabled bool) *LoggerBuilder {
	lb.config.EnableConsole = enabled
	return lb
}

// WithConsoleOutput redirects console output, mainly for tests
func (lb *LoggerBuilder) WithConsoleOutput(w io.Writer) *LoggerBuilder {
	lb.factory.console = w
	return lb
}

// WithWriter adds a raw writer receiving the same events
func (lb *LoggerBuilder) WithWriter(w io.Writer) *LoggerBuilder {
	lb.extra = append(lb.extra, w)
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (*Logger, error) {
	if err := lb.validateConfig(); err != nil {
		return nil, err
	}

	writers, closer, err := lb.createWriters()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to open log file")
	}
	if len(writers) == 0 {
		return nil, errorwrapper.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	zerologInstance := zerolog.New(multiWriter).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	lb.configureStandardLog(zerologInstance)

	if lb.convErr != nil {
		zerologInstance.Warn().Err(lb.convErr).Msg("Falling back to info log level")
	}

	return &Logger{
		zerolog: zerologInstance,
		config:  lb.config,
		closer:  closer,
	}, nil
}

func (lb *LoggerBuilder) validateConfig() error {
	if lb.config.EnableFile && lb.config.FilePath == "" {
		return errorwrapper.NewValidationError("file_path", lb.config.FilePath, "file path required when file logging enabled")
	}

	if lb.config.MaxSizeMB <= 0 {
		return errorwrapper.NewValidationError("max_size_mb", lb.config.MaxSizeMB, "max size must be positive")
	}

	return nil
}

func (lb *LoggerBuilder) createWriters() ([]io.Writer, io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer

	if lb.config.EnableConsole {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.config.Format))
	}

	if lb.config.EnableFile {
		fileWriter, c, err := lb.factory.CreateFileWriter(lb.config)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, fileWriter)
		closer = c
	}

	writers = append(writers, lb.extra...)
	return writers, closer, nil
}

// configureStandardLog routes the standard library logger through zerolog
func (lb *LoggerBuilder) configureStandardLog(logger zerolog.Logger) {
	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)
}
