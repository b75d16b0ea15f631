package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig normalizes enum-like values in place, then validates the
// GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	normalizeConfig(cfg)
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("reportformat", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case ReportFormatText, ReportFormatJSON, ReportFormatParquet:
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("validationmode", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "loose", "strict":
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var validationErrorMessages []string
			for _, e := range errs {
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				if e.Value() != nil && e.Value() != "" {
					msg += fmt.Sprintf(", actual: '%v'", e.Value())
				}
				validationErrorMessages = append(validationErrorMessages, msg)
			}
			return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(validationErrorMessages, "\n  "))
		}
		return fmt.Errorf("configuration validation error: %w", err)
	}
	return nil
}

// normalizeConfig lowercases the values consumers compare verbatim.
func normalizeConfig(cfg *GlobalConfig) {
	for i, format := range cfg.ReporterConfig.Formats {
		cfg.ReporterConfig.Formats[i] = normalizeEnum(format)
	}
	cfg.ScanConfig.ValidationMode = normalizeEnum(cfg.ScanConfig.ValidationMode)
	cfg.LogConfig.LogLevel = normalizeEnum(cfg.LogConfig.LogLevel)
	cfg.LogConfig.LogFormat = normalizeEnum(cfg.LogConfig.LogFormat)
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
