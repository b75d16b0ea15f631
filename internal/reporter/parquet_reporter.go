package reporter

import (
	"context"
	"errors"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"github.com/aleister1102/sashunter/internal/config"
	"github.com/aleister1102/sashunter/internal/datastore"
	"github.com/rs/zerolog"
)

// ParquetReporter exports findings through a datastore.FindingsExporter.
type ParquetReporter struct {
	outputDir string
	exporter  *datastore.FindingsExporter
	logger    zerolog.Logger
}

// NewParquetReporter creates a ParquetReporter.
func NewParquetReporter(outputDir string, exporter *datastore.FindingsExporter, logger zerolog.Logger) *ParquetReporter {
	return &ParquetReporter{outputDir: outputDir, exporter: exporter, logger: logger}
}

// Format returns the format name.
func (r *ParquetReporter) Format() string {
	return config.ReportFormatParquet
}

// Generate writes the Parquet export and returns its path.
// The export runs even when the scan was interrupted so partial results survive.
func (r *ParquetReporter) Generate(_ context.Context, data ReportData) (string, error) {
	path := ReportPath(r.outputDir, data.ScanDate, "parquet")
	if _, err := r.exporter.Export(context.Background(), path, data.ScanSessionID, data.Findings); err != nil {
		if errors.Is(err, datastore.ErrFileExists) {
			return "", errorwrapper.WrapError(errorwrapper.ErrReportExists, path)
		}
		return "", err
	}
	r.logger.Info().Str("path", path).Int("findings", len(data.Findings)).Msg("Report generated")
	return path, nil
}
