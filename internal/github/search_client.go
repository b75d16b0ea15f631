package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aleister1102/sashunter/internal/httpclient"
	"github.com/aleister1102/sashunter/internal/models"
	"github.com/aleister1102/sashunter/internal/secretscanner"
	"github.com/rs/zerolog"
)

// SearchClientConfig holds the search endpoint settings.
type SearchClientConfig struct {
	BaseURL string
	Token   string
	PerPage int
}

// SearchClient pages through code search results and turns matching files into findings.
type SearchClient struct {
	client   *httpclient.HTTPClient
	baseURL  string
	perPage  int
	headers  map[string]string
	fetcher  *ContentFetcher
	detector *secretscanner.Detector
	logger   zerolog.Logger
}

// NewSearchClient creates a SearchClient. A nil fetcher is built from the same client and token.
func NewSearchClient(
	client *httpclient.HTTPClient,
	cfg SearchClientConfig,
	fetcher *ContentFetcher,
	detector *secretscanner.Detector,
	logger zerolog.Logger,
) *SearchClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	perPage := cfg.PerPage
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if fetcher == nil {
		fetcher = NewContentFetcher(client, cfg.Token, logger)
	}
	if detector == nil {
		detector = secretscanner.NewDetector(nil, nil, logger)
	}

	return &SearchClient{
		client:   client,
		baseURL:  baseURL,
		perPage:  perPage,
		headers:  APIHeaders(cfg.Token),
		fetcher:  fetcher,
		detector: detector,
		logger:   logger.With().Str("component", "SearchClient").Logger(),
	}
}

// Search collects findings for query until maxResults is reached, a page is
// empty, a request fails or the rate limit is exhausted (a page without a
// remaining-quota header counts as exhausted). The budget is
// checked before each page, so the last page may overshoot it.
func (s *SearchClient) Search(ctx context.Context, query string, maxResults int) []models.Finding {
	var findings []models.Finding

	for page := 1; len(findings) < maxResults; page++ {
		if ctx.Err() != nil {
			s.logger.Warn().Str("query", query).Int("page", page).Msg("Search cancelled")
			break
		}

		resp, err := s.client.Get(ctx, s.pageURL(query, page), s.headers)
		if err != nil {
			s.logger.Error().Err(err).Str("query", query).Int("page", page).Msg("Error searching GitHub")
			var httpErr *httpclient.HTTPError
			if resp != nil && errors.As(err, &httpErr) {
				// Only a reported quota explains a failed page.
				if rl := ParseRateLimit(resp.Headers); rl.Present {
					s.warnIfExhausted(rl)
				}
			}
			break
		}

		var result models.SearchResponse
		if err := json.Unmarshal(resp.Body, &result); err != nil {
			s.logger.Error().Err(err).Str("query", query).Int("page", page).Msg("Error decoding search results")
			break
		}

		if len(result.Items) == 0 {
			s.logger.Debug().Str("query", query).Int("page", page).Msg("No more search results")
			break
		}

		s.logger.Debug().
			Str("query", query).
			Int("page", page).
			Int("items", len(result.Items)).
			Int("total_count", result.TotalCount).
			Msg("Fetched search results page")

		for _, item := range result.Items {
			if ctx.Err() != nil {
				break
			}
			findings = append(findings, s.scanItem(ctx, item)...)
		}

		if s.warnIfExhausted(ParseRateLimit(resp.Headers)) {
			break
		}
	}

	return findings
}

func (s *SearchClient) scanItem(ctx context.Context, item models.SearchItem) []models.Finding {
	content, ok := s.fetcher.Fetch(ctx, item.URL)
	if !ok {
		return nil
	}

	var findings []models.Finding
	for _, token := range s.detector.Detect(content) {
		findings = append(findings, models.NewFinding(item.Repository.FullName, item.Path, item.HTMLURL, token))
		s.logger.Warn().
			Str("repository", item.Repository.FullName).
			Str("path", item.Path).
			Msg("Found potential SAS token")
	}
	return findings
}

func (s *SearchClient) warnIfExhausted(rl models.RateLimit) bool {
	if !rl.Exhausted() {
		return false
	}
	s.logger.Warn().
		Str("reset_at", rl.Reset.Format(time.RFC3339)).
		Int("limit", rl.Limit).
		Msg("GitHub API rate limit reached")
	return true
}

func (s *SearchClient) pageURL(query string, page int) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(s.perPage))
	params.Set("page", strconv.Itoa(page))
	return s.baseURL + "/search/code?" + params.Encode()
}
