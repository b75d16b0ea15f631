package config

// Report formats understood by the reporter.
const (
	ReportFormatText    = "text"
	ReportFormatJSON    = "json"
	ReportFormatParquet = "parquet"
)

// ReporterConfig defines configuration for generating reports
type ReporterConfig struct {
	OutputDir   string   `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	Formats     []string `json:"formats,omitempty" yaml:"formats,omitempty" validate:"omitempty,dive,reportformat"`
	ReportTitle string   `json:"report_title,omitempty" yaml:"report_title,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir:   DefaultReporterOutputDir,
		Formats:     []string{ReportFormatText},
		ReportTitle: DefaultReporterReportTitle,
	}
}
