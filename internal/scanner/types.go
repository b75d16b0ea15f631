package scanner

import (
	"context"

	"github.com/aleister1102/sashunter/internal/models"
	"github.com/aleister1102/sashunter/internal/reporter"
)

// Searcher runs one code search query and returns its validated findings.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) []models.Finding
}

// ReportGenerator writes the reports for a finished scan.
type ReportGenerator interface {
	GenerateReports(ctx context.Context, data reporter.ReportData) ([]string, error)
}

// ScanResult is what ScanAndReport hands back to the caller.
type ScanResult struct {
	Findings    []models.Finding
	Summary     models.ScanSummary
	ReportPaths []string
}
