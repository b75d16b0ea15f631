package secretscanner

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationMode selects how parameter presence is checked.
type ValidationMode string

const (
	// ValidationModeLoose checks for "sv" and "sig" anywhere in the rendered
	// parameter map, so a value containing "sig" also counts.
	ValidationModeLoose ValidationMode = "loose"
	// ValidationModeStrict requires "sv" and "sig" as parameter names.
	ValidationModeStrict ValidationMode = "strict"
)

var requiredParams = []string{"sv", "sig"}

// Validator decides whether a candidate looks like a usable SAS token.
type Validator struct {
	mode ValidationMode
}

// NewValidator creates a validator. Unknown modes fall back to loose.
func NewValidator(mode ValidationMode) *Validator {
	if mode != ValidationModeStrict {
		mode = ValidationModeLoose
	}
	return &Validator{mode: mode}
}

// Mode returns the active validation mode.
func (v *Validator) Mode() ValidationMode {
	return v.mode
}

// IsValid reports whether candidate carries both the sv and sig parameters.
// Candidates starting with "http" are parsed as URLs and their query is used;
// a URL that does not parse is never valid.
func (v *Validator) IsValid(candidate string) bool {
	params, err := parseParams(candidate)
	if err != nil {
		return false
	}

	if v.mode == ValidationModeStrict {
		for _, name := range requiredParams {
			if _, ok := params[name]; !ok {
				return false
			}
		}
		return true
	}

	rendered := fmt.Sprint(map[string][]string(params))
	for _, name := range requiredParams {
		if !strings.Contains(rendered, name) {
			return false
		}
	}
	return true
}

func parseParams(candidate string) (url.Values, error) {
	rawQuery := candidate
	if strings.HasPrefix(candidate, "http") {
		u, err := url.Parse(candidate)
		if err != nil {
			return nil, err
		}
		rawQuery = u.RawQuery
	}
	return splitQuery(rawQuery), nil
}

// splitQuery parses a query string without rejecting odd input: ';' stays
// part of the value and a bad percent escape keeps its raw text.
// Fields without '=' and blank values are dropped.
func splitQuery(rawQuery string) url.Values {
	values := make(url.Values)
	for _, field := range strings.Split(rawQuery, "&") {
		key, value, ok := strings.Cut(field, "=")
		if !ok || value == "" {
			continue
		}
		values.Add(unescapeLenient(key), unescapeLenient(value))
	}
	return values
}

func unescapeLenient(s string) string {
	if unescaped, err := url.QueryUnescape(s); err == nil {
		return unescaped
	}
	return strings.ReplaceAll(s, "+", " ")
}
