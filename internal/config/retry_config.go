package config

// RetryConfig defines configuration for HTTP request retries.
// Retries are off unless MaxRetries is raised above zero.
type RetryConfig struct {
	// Maximum number of retry attempts per request
	MaxRetries int `json:"max_retries,omitempty" yaml:"max_retries,omitempty" validate:"omitempty,min=0,max=10"`
	// Base delay in milliseconds for exponential backoff
	BaseDelayMs int `json:"base_delay_ms,omitempty" yaml:"base_delay_ms,omitempty" validate:"omitempty,min=1,max=60000"`
	// Maximum delay in milliseconds for exponential backoff
	MaxDelayMs int `json:"max_delay_ms,omitempty" yaml:"max_delay_ms,omitempty" validate:"omitempty,min=1,max=600000"`
	// Enable jitter to randomize delays slightly
	EnableJitter bool `json:"enable_jitter" yaml:"enable_jitter"`
	// HTTP status codes that should trigger retries
	RetryStatusCodes []int `json:"retry_status_codes,omitempty" yaml:"retry_status_codes,omitempty" validate:"omitempty,dive,min=400,max=599"`
}

// NewDefaultRetryConfig creates default retry configuration
func NewDefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:       0,
		BaseDelayMs:      1000,
		MaxDelayMs:       30000,
		EnableJitter:     true,
		RetryStatusCodes: []int{502, 503, 504},
	}
}
