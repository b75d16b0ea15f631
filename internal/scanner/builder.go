package scanner

import (
	"time"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"github.com/aleister1102/sashunter/internal/config"
	"github.com/aleister1102/sashunter/internal/github"
	"github.com/aleister1102/sashunter/internal/httpclient"
	"github.com/aleister1102/sashunter/internal/reporter"
	"github.com/aleister1102/sashunter/internal/secretscanner"
	"github.com/rs/zerolog"
)

// NewFromConfig wires the HTTP client, search client and reporters described by cfg.
func NewFromConfig(cfg *config.GlobalConfig, token string, logger zerolog.Logger) (*Scanner, error) {
	client, err := BuildHTTPClient(cfg, logger)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create HTTP client")
	}

	detector := secretscanner.NewDetector(
		secretscanner.NewMatcher(),
		secretscanner.NewValidator(secretscanner.ValidationMode(cfg.ScanConfig.ValidationMode)),
		logger,
	)

	searchClient := github.NewSearchClient(client, github.SearchClientConfig{
		BaseURL: cfg.GitHubConfig.APIBaseURL,
		Token:   token,
		PerPage: cfg.GitHubConfig.PerPage,
	}, github.NewContentFetcher(client, token, logger), detector, logger)

	reports, err := reporter.NewReportManager(cfg.ReporterConfig, logger)
	if err != nil {
		return nil, err
	}

	return NewScanner(searchClient, reports, cfg.ScanConfig.MaxResultsPerQuery, logger), nil
}

// BuildHTTPClient creates the API client from the http_client and retry sections.
func BuildHTTPClient(cfg *config.GlobalConfig, logger zerolog.Logger) (*httpclient.HTTPClient, error) {
	httpCfg := cfg.HTTPClientConfig
	retryCfg := cfg.RetryConfig
	if httpCfg.TimeoutSecs <= 0 {
		httpCfg.TimeoutSecs = config.DefaultHTTPClientTimeoutSecs
	}

	return httpclient.NewHTTPClientBuilder(logger).
		WithTimeout(time.Duration(httpCfg.TimeoutSecs) * time.Second).
		WithUserAgent(httpCfg.UserAgent).
		WithProxy(httpCfg.Proxy).
		WithInsecureSkipVerify(httpCfg.InsecureSkipVerify).
		WithHTTP2(httpCfg.EnableHTTP2).
		WithRetry(httpclient.RetryHandlerConfig{
			MaxRetries:       retryCfg.MaxRetries,
			BaseDelay:        time.Duration(retryCfg.BaseDelayMs) * time.Millisecond,
			MaxDelay:         time.Duration(retryCfg.MaxDelayMs) * time.Millisecond,
			EnableJitter:     retryCfg.EnableJitter,
			RetryStatusCodes: retryCfg.RetryStatusCodes,
		}).
		Build()
}
