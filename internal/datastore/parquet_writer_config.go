package datastore

// ParquetWriterConfig holds configuration for the findings exporter
type ParquetWriterConfig struct {
	CompressionType string
	BatchSize       int
}

// DefaultParquetWriterConfig returns default configuration
func DefaultParquetWriterConfig() ParquetWriterConfig {
	return ParquetWriterConfig{
		CompressionType: "zstd",
		BatchSize:       100,
	}
}
