package secretscanner

import (
	"github.com/rs/zerolog"
)

// Detector runs extraction followed by validation over file content.
type Detector struct {
	matcher   *Matcher
	validator *Validator
	logger    zerolog.Logger
}

// NewDetector creates a Detector from a matcher and validator.
func NewDetector(matcher *Matcher, validator *Validator, logger zerolog.Logger) *Detector {
	if matcher == nil {
		matcher = NewMatcher()
	}
	if validator == nil {
		validator = NewValidator(ValidationModeLoose)
	}
	return &Detector{
		matcher:   matcher,
		validator: validator,
		logger:    logger.With().Str("component", "SecretDetector").Logger(),
	}
}

// Detect returns the candidates in content that pass validation, in extraction order.
func (d *Detector) Detect(content string) []string {
	candidates := d.matcher.Extract(content)
	if len(candidates) == 0 {
		return nil
	}

	var tokens []string
	for _, candidate := range candidates {
		if !d.validator.IsValid(candidate) {
			d.logger.Debug().Int("length", len(candidate)).Msg("Discarded candidate failing validation")
			continue
		}
		tokens = append(tokens, candidate)
	}
	return tokens
}
