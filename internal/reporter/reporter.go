package reporter

import (
	"context"
	"time"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"github.com/aleister1102/sashunter/internal/config"
	"github.com/aleister1102/sashunter/internal/datastore"
	"github.com/aleister1102/sashunter/internal/models"
	"github.com/rs/zerolog"
)

// ReportData is everything a report renders.
type ReportData struct {
	ScanSessionID string
	ScanDate      time.Time
	Findings      []models.Finding
}

// Reporter writes one report format.
type Reporter interface {
	Format() string
	Generate(ctx context.Context, data ReportData) (string, error)
}

// ReportManager runs every configured reporter for a scan.
type ReportManager struct {
	outputDir  string
	reporters  []Reporter
	dirManager *DirectoryManager
	logger     zerolog.Logger
}

// NewReportManager builds reporters for cfg.Formats. Text is used when no format is set.
func NewReportManager(cfg config.ReporterConfig, logger zerolog.Logger) (*ReportManager, error) {
	logger = logger.With().Str("component", "Reporter").Logger()

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = config.DefaultReporterOutputDir
	}

	formats := cfg.Formats
	if len(formats) == 0 {
		formats = []string{config.ReportFormatText}
	}

	seen := make(map[string]bool)
	var reporters []Reporter
	for _, format := range formats {
		if seen[format] {
			continue
		}
		seen[format] = true

		switch format {
		case config.ReportFormatText:
			reporters = append(reporters, NewTextReporter(outputDir, cfg.ReportTitle, logger))
		case config.ReportFormatJSON:
			reporters = append(reporters, NewJSONReporter(outputDir, logger))
		case config.ReportFormatParquet:
			exporter := datastore.NewFindingsExporter(datastore.DefaultParquetWriterConfig(), logger)
			reporters = append(reporters, NewParquetReporter(outputDir, exporter, logger))
		default:
			return nil, errorwrapper.NewValidationError("reporter_config.formats", format, "unsupported report format")
		}
	}

	return &ReportManager{
		outputDir:  outputDir,
		reporters:  reporters,
		dirManager: NewDirectoryManager(logger),
		logger:     logger,
	}, nil
}

// GenerateReports writes every report and returns their paths.
// It stops at the first failure, returning the paths written so far.
func (m *ReportManager) GenerateReports(ctx context.Context, data ReportData) ([]string, error) {
	if err := m.dirManager.EnsureOutputDirectories(m.outputDir); err != nil {
		return nil, err
	}

	var paths []string
	for _, r := range m.reporters {
		path, err := r.Generate(ctx, data)
		if err != nil {
			return paths, errorwrapper.WrapError(err, "failed to generate "+r.Format()+" report")
		}
		paths = append(paths, path)
	}
	return paths, nil
}
