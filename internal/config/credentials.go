package config

import (
	"errors"
	"os"
	"strings"
)

// ErrMissingCredential is returned when the API token environment variable is unset or blank.
var ErrMissingCredential = errors.New("missing API credential")

// LoadCredential reads the bearer credential from the named environment variable.
func LoadCredential(envName string) (string, error) {
	if envName == "" {
		envName = DefaultGitHubTokenEnv
	}
	token := strings.TrimSpace(os.Getenv(envName))
	if token == "" {
		return "", ErrMissingCredential
	}
	return token, nil
}
