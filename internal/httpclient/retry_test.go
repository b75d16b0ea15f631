package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRetryingClient(t *testing.T, cfg RetryHandlerConfig) *HTTPClient {
	t.Helper()
	client, err := NewHTTPClientBuilder(zerolog.Nop()).WithRetry(cfg).Build()
	require.NoError(t, err)
	return client
}

func TestRetryHandler(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requestCount, 1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newRetryingClient(t, RetryHandlerConfig{
		MaxRetries:       3,
		BaseDelay:        1 * time.Millisecond,
		MaxDelay:         10 * time.Millisecond,
		RetryStatusCodes: []int{http.StatusBadGateway},
	})

	resp, err := client.Do(&HTTPRequest{URL: server.URL, Method: "GET"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requestCount))
}

func TestRetryHandler_MaxRetriesExceeded(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newRetryingClient(t, RetryHandlerConfig{
		MaxRetries:       2,
		BaseDelay:        1 * time.Millisecond,
		MaxDelay:         10 * time.Millisecond,
		RetryStatusCodes: []int{http.StatusServiceUnavailable},
	})

	resp, err := client.Do(&HTTPRequest{URL: server.URL, Method: "GET"})
	require.Error(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requestCount)) // Initial call + 2 retries
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
}

func TestRetryHandler_NonRetryableStatus(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := newRetryingClient(t, RetryHandlerConfig{
		MaxRetries:       3,
		BaseDelay:        1 * time.Millisecond,
		RetryStatusCodes: []int{http.StatusServiceUnavailable},
	})

	resp, err := client.Do(&HTTPRequest{URL: server.URL, Method: "GET"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount))
}

func TestRetryHandler_ContextCancelledDuringWait(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newRetryingClient(t, RetryHandlerConfig{
		MaxRetries:       5,
		BaseDelay:        time.Second,
		MaxDelay:         time.Second,
		RetryStatusCodes: []int{http.StatusServiceUnavailable},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Do(&HTTPRequest{URL: server.URL, Method: "GET", Context: ctx})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetryHandler_CalculateDelay(t *testing.T) {
	rh := NewRetryHandler(RetryHandlerConfig{
		MaxRetries: 5,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   500 * time.Millisecond,
	}, zerolog.Nop())

	assert.Equal(t, 100*time.Millisecond, rh.CalculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, rh.CalculateDelay(1))
	assert.Equal(t, 400*time.Millisecond, rh.CalculateDelay(2))
	assert.Equal(t, 500*time.Millisecond, rh.CalculateDelay(3))

	assert.False(t, rh.ShouldRetry(http.StatusOK, 0))
}

func TestRetryHandler_JitterSmallDelay(t *testing.T) {
	rh := NewRetryHandler(RetryHandlerConfig{
		MaxRetries:   1,
		BaseDelay:    time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		EnableJitter: true,
	}, zerolog.Nop())

	assert.NotPanics(t, func() { rh.CalculateDelay(1) })
}
