package datastore

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"github.com/aleister1102/sashunter/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// FindingsExporter writes one scan's findings to a standalone Parquet file.
// Files are never appended to or overwritten.
type FindingsExporter struct {
	logger       zerolog.Logger
	writerConfig ParquetWriterConfig
}

// NewFindingsExporter creates a new FindingsExporter.
func NewFindingsExporter(writerConfig ParquetWriterConfig, logger zerolog.Logger) *FindingsExporter {
	if writerConfig.BatchSize <= 0 {
		writerConfig.BatchSize = DefaultParquetWriterConfig().BatchSize
	}
	return &FindingsExporter{
		logger:       logger.With().Str("component", "FindingsExporter").Logger(),
		writerConfig: writerConfig,
	}
}

// Export writes findings to filePath and returns the number of rows written.
// It fails with ErrFileExists if filePath is already present.
func (fe *FindingsExporter) Export(ctx context.Context, filePath string, scanSessionID string, findings []models.Finding) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errorwrapper.WrapError(err, "parquet export cancelled")
	}

	rows := make([]models.ParquetFinding, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, f.ToParquet(scanSessionID))
	}

	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return 0, errorwrapper.WrapError(ErrFileExists, filePath)
		}
		return 0, errorwrapper.WrapError(err, "failed to create findings parquet file: "+filePath)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[models.ParquetFinding](file, fe.compressionOption())

	written, err := writer.Write(rows)
	if err != nil {
		_ = writer.Close()
		return 0, errorwrapper.WrapError(err, "failed to write findings to parquet file")
	}
	if err := writer.Close(); err != nil {
		return 0, errorwrapper.WrapError(err, "failed to finalize findings parquet file")
	}

	fe.logger.Info().Str("file_path", filePath).Int("records_written", written).Msg("Successfully wrote findings to Parquet file")
	return written, nil
}

// Load reads every row from a findings Parquet file.
func (fe *FindingsExporter) Load(ctx context.Context, filePath string) ([]models.ParquetFinding, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to open findings parquet file: "+filePath)
	}
	defer file.Close()

	reader := parquet.NewGenericReader[models.ParquetFinding](file)
	defer reader.Close()

	rows := make([]models.ParquetFinding, 0, reader.NumRows())
	for {
		if err := ctx.Err(); err != nil {
			return nil, errorwrapper.WrapError(err, "parquet load cancelled")
		}

		batch := make([]models.ParquetFinding, fe.writerConfig.BatchSize)
		n, err := reader.Read(batch)
		rows = append(rows, batch[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errorwrapper.WrapError(err, "failed to read findings from parquet file")
		}
		if n == 0 {
			break
		}
	}

	return rows, nil
}

func (fe *FindingsExporter) compressionOption() parquet.WriterOption {
	switch fe.writerConfig.CompressionType {
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	default:
		return parquet.Compression(&parquet.Zstd)
	}
}
