package reporter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"github.com/aleister1102/sashunter/internal/config"
	"github.com/aleister1102/sashunter/internal/models"
	"github.com/rs/zerolog"
)

type jsonReport struct {
	ScanSessionID string           `json:"scan_session_id"`
	ScanDate      time.Time        `json:"scan_date"`
	TotalFindings int              `json:"total_findings"`
	Findings      []models.Finding `json:"findings"`
}

// JSONReporter writes findings as a single JSON document.
type JSONReporter struct {
	outputDir string
	logger    zerolog.Logger
}

// NewJSONReporter creates a JSONReporter.
func NewJSONReporter(outputDir string, logger zerolog.Logger) *JSONReporter {
	return &JSONReporter{outputDir: outputDir, logger: logger}
}

// Format returns the format name.
func (r *JSONReporter) Format() string {
	return config.ReportFormatJSON
}

// Generate writes the report to a new file and returns its path.
func (r *JSONReporter) Generate(_ context.Context, data ReportData) (string, error) {
	findings := data.Findings
	if findings == nil {
		findings = []models.Finding{}
	}

	payload, err := json.MarshalIndent(jsonReport{
		ScanSessionID: data.ScanSessionID,
		ScanDate:      data.ScanDate,
		TotalFindings: len(findings),
		Findings:      findings,
	}, "", "  ")
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to encode JSON report")
	}

	path := ReportPath(r.outputDir, data.ScanDate, "json")
	file, err := createReportFile(path)
	if err != nil {
		return "", err
	}

	if _, err := file.Write(append(payload, '\n')); err != nil {
		_ = file.Close()
		return "", errorwrapper.WrapError(err, "failed to write JSON report")
	}
	if err := file.Close(); err != nil {
		return "", errorwrapper.WrapError(err, "failed to close JSON report")
	}

	r.logger.Info().Str("path", path).Int("findings", len(findings)).Msg("Report generated")
	return path, nil
}
