package scanner

import (
	"context"
	"time"

	"github.com/aleister1102/sashunter/internal/models"
	"github.com/aleister1102/sashunter/internal/reporter"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Scanner runs queries in order, collects their findings and writes the reports.
type Scanner struct {
	searcher   Searcher
	reports    ReportGenerator
	maxResults int
	logger     zerolog.Logger
	now        func() time.Time
}

// NewScanner creates a Scanner. maxResults is the per-query finding budget.
func NewScanner(searcher Searcher, reports ReportGenerator, maxResults int, logger zerolog.Logger) *Scanner {
	return &Scanner{
		searcher:   searcher,
		reports:    reports,
		maxResults: maxResults,
		logger:     logger.With().Str("component", "Scanner").Logger(),
		now:        time.Now,
	}
}

// ScanAndReport searches every query, then writes the reports for all findings.
// A cancelled context stops the query loop but reports are still written for
// what was found. The only error returned is a report failure, in which case
// the result still carries the findings.
func (s *Scanner) ScanAndReport(ctx context.Context, queries []string) (*ScanResult, error) {
	startTime := s.now()
	scanSessionID := uuid.NewString()

	logger := s.logger.With().Str("scan_session_id", scanSessionID).Logger()
	logger.Info().Int("queries", len(queries)).Int("max_results_per_query", s.maxResults).Msg("Starting scan")

	summary := models.NewScanSummaryBuilder().
		WithScanSessionID(scanSessionID).
		WithStartTime(startTime)

	var findings []models.Finding
	status := models.ScanStatusCompleted

	for _, query := range queries {
		if ctx.Err() != nil {
			logger.Warn().Msg("Scan interrupted, skipping remaining queries")
			status = models.ScanStatusInterrupted
			break
		}

		logger.Info().Str("query", query).Msg("Scanning for query")
		queryFindings := s.searcher.Search(ctx, query, s.maxResults)
		findings = append(findings, queryFindings...)
		summary.WithQueryResult(query, len(queryFindings))

		logger.Info().Str("query", query).Int("findings", len(queryFindings)).Msg("Query finished")
	}
	if status == models.ScanStatusCompleted && ctx.Err() != nil {
		status = models.ScanStatusInterrupted
	}

	result := &ScanResult{Findings: findings}

	paths, err := s.reports.GenerateReports(ctx, reporter.ReportData{
		ScanSessionID: scanSessionID,
		ScanDate:      startTime,
		Findings:      findings,
	})
	result.ReportPaths = paths
	if err != nil {
		logger.Error().Err(err).Msg("Failed to write report")
		status = models.ScanStatusFailed
	}

	result.Summary = summary.
		WithStatus(status).
		WithReportPaths(paths...).
		Finish(s.now()).
		Build()

	logger.Info().
		Int("total_findings", len(findings)).
		Str("status", string(status)).
		Dur("duration", result.Summary.Duration).
		Msg("Scan finished")

	return result, err
}
