package github

import (
	"context"
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/sashunter/internal/httpclient"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

var newlineStripper = strings.NewReplacer("\n", "", "\r", "")

// ContentFetcher downloads and decodes a file through the contents API.
type ContentFetcher struct {
	client  *httpclient.HTTPClient
	headers map[string]string
	logger  zerolog.Logger
}

// NewContentFetcher creates a fetcher that authenticates with token.
func NewContentFetcher(client *httpclient.HTTPClient, token string, logger zerolog.Logger) *ContentFetcher {
	return &ContentFetcher{
		client:  client,
		headers: APIHeaders(token),
		logger:  logger.With().Str("component", "ContentFetcher").Logger(),
	}
}

// Fetch returns the decoded text of the file at locator. Any failure is
// logged and reported as ok == false.
func (f *ContentFetcher) Fetch(ctx context.Context, locator string) (string, bool) {
	resp, err := f.client.Get(ctx, locator, f.headers)
	if err != nil {
		f.logger.Error().Err(err).Str("url", locator).Msg("Error getting file content")
		return "", false
	}

	if !gjson.ValidBytes(resp.Body) {
		f.logger.Error().Str("url", locator).Msg("Error getting file content: response is not valid JSON")
		return "", false
	}

	field := gjson.GetBytes(resp.Body, "content")
	if !field.Exists() {
		f.logger.Error().Str("url", locator).Msg("Error getting file content: response has no content field")
		return "", false
	}
	if field.String() == "" {
		f.logger.Debug().Str("url", locator).Msg("File content is empty")
		return "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(newlineStripper.Replace(field.String()))
	if err != nil {
		f.logger.Error().Err(err).Str("url", locator).Msg("Error getting file content: invalid base64")
		return "", false
	}

	if !utf8.Valid(decoded) {
		f.logger.Error().Str("url", locator).Msg("Error getting file content: content is not valid UTF-8")
		return "", false
	}

	return string(decoded), true
}
