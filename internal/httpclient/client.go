package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// HTTPClient wraps net/http.Client with default headers, body buffering and optional retries
type HTTPClient struct {
	client       *http.Client
	config       HTTPClientConfig
	logger       zerolog.Logger
	retryHandler *RetryHandler
	bufferPool   sync.Pool
}

// NewHTTPClient creates a new HTTP client with the given configuration using net/http
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	transport := &http.Transport{
		MaxIdleConns:          config.MaxIdleConns,
		MaxIdleConnsPerHost:   config.MaxIdleConnsPerHost,
		MaxConnsPerHost:       config.MaxConnsPerHost,
		IdleConnTimeout:       config.IdleConnTimeout,
		TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
		ExpectContinueTimeout: config.ExpectContinueTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		} else {
			logger.Debug().Msg("HTTP/2 support enabled")
		}
	}

	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil {
			return nil, WrapError(err, "failed to parse proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		logger.Info().Str("proxy", config.Proxy).Msg("HTTP client configured with proxy")
	} else {
		transport.Proxy = http.ProxyFromEnvironment
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if config.MaxRedirects > 0 {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= config.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", config.MaxRedirects)
			}
			return nil
		}
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("insecure_skip_verify", config.InsecureSkipVerify).
		Bool("follow_redirects", config.FollowRedirects).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		client: client,
		config: config,
		logger: logger,
		bufferPool: sync.Pool{
			New: func() interface{} {
				b := make([]byte, 32*1024)
				return &b
			},
		},
	}, nil
}

// Do performs an HTTP request, with retries if a retry handler is configured.
// Only transport failures are returned as errors; any status code is a response.
func (c *HTTPClient) Do(req *HTTPRequest) (*HTTPResponse, error) {
	if c.retryHandler != nil {
		ctx := req.Context
		if ctx == nil {
			ctx = context.Background()
		}
		return c.retryHandler.DoWithRetry(ctx, c.do, req)
	}
	return c.do(req)
}

// Get performs a GET request and treats non-2xx responses as *HTTPError.
// The response is returned alongside an HTTPError so callers can inspect headers.
func (c *HTTPClient) Get(ctx context.Context, rawURL string, headers map[string]string) (*HTTPResponse, error) {
	resp, err := c.Do(&HTTPRequest{
		URL:     rawURL,
		Method:  http.MethodGet,
		Headers: headers,
		Context: ctx,
	})
	if err != nil {
		return resp, err
	}

	if !resp.IsSuccess() {
		c.logger.Debug().Str("url", rawURL).Int("status_code", resp.StatusCode).Msg("Received non-2xx HTTP status")
		return resp, NewHTTPErrorWithURL(resp.StatusCode, string(resp.Body), rawURL)
	}
	return resp, nil
}

func (c *HTTPClient) do(req *HTTPRequest) (*HTTPResponse, error) {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, req.Body)
	if err != nil {
		return nil, WrapError(err, "failed to create HTTP request")
	}

	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}
	// Request headers override the configured defaults.
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if c.config.UserAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "*/*")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, NewNetworkError(req.URL, "request failed", err)
	}
	defer resp.Body.Close()

	bufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(bufPtr)
	buf := bytes.NewBuffer((*bufPtr)[:0])

	var reader io.Reader = resp.Body
	if c.config.MaxContentSize > 0 {
		reader = io.LimitReader(resp.Body, int64(c.config.MaxContentSize))
	}
	if _, err := io.Copy(buf, reader); err != nil {
		return nil, NewNetworkError(req.URL, "failed to read response body", err)
	}

	// Copy out so the pooled buffer can be reused.
	body := make([]byte, buf.Len())
	copy(body, buf.Bytes())

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header.Clone(),
		Body:       body,
	}, nil
}
