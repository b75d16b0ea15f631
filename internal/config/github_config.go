package config

// GitHubConfig defines how the code search API is reached.
type GitHubConfig struct {
	APIBaseURL string   `json:"api_base_url,omitempty" yaml:"api_base_url,omitempty" validate:"required,url"`
	TokenEnv   string   `json:"token_env,omitempty" yaml:"token_env,omitempty" validate:"required"`
	PerPage    int      `json:"-" yaml:"-"`
	Queries    []string `json:"queries,omitempty" yaml:"queries,omitempty" validate:"omitempty,dive,required"`
}

// NewDefaultGitHubConfig creates default GitHub configuration
func NewDefaultGitHubConfig() GitHubConfig {
	return GitHubConfig{
		APIBaseURL: DefaultGitHubAPIBaseURL,
		TokenEnv:   DefaultGitHubTokenEnv,
		PerPage:    DefaultGitHubPerPage,
		Queries:    []string{},
	}
}

// ScanConfig controls per-query budgets and token validation.
type ScanConfig struct {
	MaxResultsPerQuery int `json:"max_results_per_query,omitempty" yaml:"max_results_per_query,omitempty" validate:"min=1"`
	// "loose" keeps the substring presence check; "strict" requires sv and sig as real keys.
	ValidationMode string `json:"validation_mode,omitempty" yaml:"validation_mode,omitempty" validate:"omitempty,validationmode"`
}

// NewDefaultScanConfig creates default scan configuration
func NewDefaultScanConfig() ScanConfig {
	return ScanConfig{
		MaxResultsPerQuery: DefaultScanMaxResultsPerQuery,
		ValidationMode:     DefaultScanValidationMode,
	}
}

// HTTPClientConfig defines the outbound HTTP client settings shared by search and content requests.
type HTTPClientConfig struct {
	TimeoutSecs        int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
	UserAgent          string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	Proxy              string `json:"proxy,omitempty" yaml:"proxy,omitempty" validate:"omitempty,url"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	EnableHTTP2        bool   `json:"enable_http2" yaml:"enable_http2"`
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		TimeoutSecs:        DefaultHTTPClientTimeoutSecs,
		UserAgent:          DefaultHTTPClientUserAgent,
		InsecureSkipVerify: false,
		EnableHTTP2:        DefaultHTTPClientEnableHTTP2,
	}
}
