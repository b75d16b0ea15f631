package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"gopkg.in/yaml.v3"
)

const (
	// GitHub Defaults
	DefaultGitHubAPIBaseURL = "https://api.github.com"
	DefaultGitHubTokenEnv   = "GITHUB_TOKEN"
	DefaultGitHubPerPage    = 100

	// Scan Defaults
	DefaultScanMaxResultsPerQuery = 100
	DefaultScanValidationMode     = "loose"

	// HTTP Client Defaults
	DefaultHTTPClientTimeoutSecs = 30
	DefaultHTTPClientUserAgent   = "sashunter/1.0"
	DefaultHTTPClientEnableHTTP2 = true

	// Reporter Defaults
	DefaultReporterOutputDir   = "."
	DefaultReporterReportTitle = "Azure Storage SAS Token Exposure Report"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = "sas_scan.log"
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	maxConfigFileSize = 10 * 1024 * 1024
)

// DefaultQueries are the code search queries run when none are configured.
var DefaultQueries = []string{
	"blob.core.windows.net sig=",
	"sv= sp= sig= blob.core.windows.net",
}

type GlobalConfig struct {
	GitHubConfig     GitHubConfig     `json:"github,omitempty" yaml:"github,omitempty"`
	HTTPClientConfig HTTPClientConfig `json:"http_client,omitempty" yaml:"http_client,omitempty"`
	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ReporterConfig   ReporterConfig   `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	RetryConfig      RetryConfig      `json:"retry,omitempty" yaml:"retry,omitempty"`
	ScanConfig       ScanConfig       `json:"scan,omitempty" yaml:"scan,omitempty"`
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		GitHubConfig:     NewDefaultGitHubConfig(),
		HTTPClientConfig: NewDefaultHTTPClientConfig(),
		LogConfig:        NewDefaultLogConfig(),
		ReporterConfig:   NewDefaultReporterConfig(),
		RetryConfig:      NewDefaultRetryConfig(),
		ScanConfig:       NewDefaultScanConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath, supports both JSON and YAML formats.
// YAML is used if the file extension is .yaml or .yml.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" && !fileExists(providedPath) {
		return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := loadConfigFileContent(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	cfg.GitHubConfig.PerPage = DefaultGitHubPerPage
	return cfg, nil
}

// Queries returns the configured search queries, or DefaultQueries when none are set.
func (c *GlobalConfig) Queries() []string {
	if len(c.GitHubConfig.Queries) == 0 {
		return append([]string(nil), DefaultQueries...)
	}
	return append([]string(nil), c.GitHubConfig.Queries...)
}

func loadConfigFileContent(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file exceeds 10MB")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
