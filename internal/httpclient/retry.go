package httpclient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// RetryHandler handles HTTP request retries with exponential backoff
type RetryHandler struct {
	maxRetries       int
	baseDelay        time.Duration
	maxDelay         time.Duration
	enableJitter     bool
	retryStatusCodes map[int]bool
	logger           zerolog.Logger
}

// RetryHandlerConfig configuration for retry handler
type RetryHandlerConfig struct {
	MaxRetries       int           `json:"max_retries"`
	BaseDelay        time.Duration `json:"base_delay"`
	MaxDelay         time.Duration `json:"max_delay"`
	EnableJitter     bool          `json:"enable_jitter"`
	RetryStatusCodes []int         `json:"retry_status_codes"`
}

// NewRetryHandler creates a new retry handler
func NewRetryHandler(config RetryHandlerConfig, logger zerolog.Logger) *RetryHandler {
	statusCodeMap := make(map[int]bool)
	for _, code := range config.RetryStatusCodes {
		statusCodeMap[code] = true
	}

	return &RetryHandler{
		maxRetries:       config.MaxRetries,
		baseDelay:        config.BaseDelay,
		maxDelay:         config.MaxDelay,
		enableJitter:     config.EnableJitter,
		retryStatusCodes: statusCodeMap,
		logger:           logger.With().Str("component", "RetryHandler").Logger(),
	}
}

// ShouldRetry determines if a request should be retried based on status code
func (rh *RetryHandler) ShouldRetry(statusCode int, attempt int) bool {
	if attempt >= rh.maxRetries {
		return false
	}
	return rh.retryStatusCodes[statusCode]
}

// CalculateDelay calculates the delay for the next retry attempt using exponential backoff
func (rh *RetryHandler) CalculateDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return rh.baseDelay
	}

	delay := rh.baseDelay * time.Duration(math.Pow(2, float64(attempt)))
	if rh.maxDelay > 0 && delay > rh.maxDelay {
		delay = rh.maxDelay
	}

	if rh.enableJitter {
		if spread := delay.Milliseconds() / 10; spread > 0 {
			delay += time.Duration(rand.Int63n(spread)) * time.Millisecond
		}
	}

	return delay
}

// WaitForRetry waits for the calculated delay before retrying
func (rh *RetryHandler) WaitForRetry(ctx context.Context, attempt int, reason string, url string) error {
	delay := rh.CalculateDelay(attempt)

	rh.logger.Warn().
		Str("url", url).
		Str("reason", reason).
		Int("attempt", attempt+1).
		Int("max_retries", rh.maxRetries).
		Dur("delay", delay).
		Msg("Request failed, waiting before retry")

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DoWithRetry executes an HTTP request with retry logic. Cancellation of ctx is never retried.
func (rh *RetryHandler) DoWithRetry(ctx context.Context, doFunc func(*HTTPRequest) (*HTTPResponse, error), req *HTTPRequest) (*HTTPResponse, error) {
	var lastResp *HTTPResponse
	var lastErr error

	for attempt := 0; attempt <= rh.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := doFunc(req)
		if err != nil {
			lastErr = err
			lastResp = nil

			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil, err
			}
			if attempt < rh.maxRetries {
				if werr := rh.WaitForRetry(ctx, attempt, err.Error(), req.URL); werr != nil {
					return nil, werr
				}
				continue
			}
			break
		}

		lastResp = resp
		lastErr = nil

		if rh.retryStatusCodes[resp.StatusCode] && attempt < rh.maxRetries {
			if err := rh.WaitForRetry(ctx, attempt, fmt.Sprintf("status %d", resp.StatusCode), req.URL); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	if lastErr != nil {
		return nil, WrapError(lastErr, "all retry attempts failed")
	}

	if lastResp != nil && rh.retryStatusCodes[lastResp.StatusCode] {
		err := NewHTTPErrorWithURL(lastResp.StatusCode, string(lastResp.Body), req.URL)
		return lastResp, WrapError(err, "all retry attempts failed")
	}

	return lastResp, nil
}
