package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"github.com/aleister1102/sashunter/internal/config"
	"github.com/rs/zerolog"
)

// TextReporter writes the plain-text findings report.
type TextReporter struct {
	outputDir string
	title     string
	logger    zerolog.Logger
}

// NewTextReporter creates a TextReporter. An empty title uses DefaultReportTitle.
func NewTextReporter(outputDir, title string, logger zerolog.Logger) *TextReporter {
	if title == "" {
		title = DefaultReportTitle
	}
	return &TextReporter{outputDir: outputDir, title: title, logger: logger}
}

// Format returns the format name.
func (r *TextReporter) Format() string {
	return config.ReportFormatText
}

// Generate writes the report to a new file and returns its path.
func (r *TextReporter) Generate(_ context.Context, data ReportData) (string, error) {
	path := ReportPath(r.outputDir, data.ScanDate, "txt")
	file, err := createReportFile(path)
	if err != nil {
		return "", err
	}

	if err := r.Render(file, data); err != nil {
		_ = file.Close()
		return "", errorwrapper.WrapError(err, "failed to write text report")
	}
	if err := file.Close(); err != nil {
		return "", errorwrapper.WrapError(err, "failed to close text report")
	}

	r.logger.Info().Str("path", path).Int("findings", len(data.Findings)).Msg("Report generated")
	return path, nil
}

// Render writes the report body to w.
func (r *TextReporter) Render(w io.Writer, data ReportData) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n", r.title)
	fmt.Fprintf(bw, "%s\n\n", titleUnderline)
	fmt.Fprintf(bw, "Scan Date: %s\n", data.ScanDate.Format(time.RFC3339))
	fmt.Fprintf(bw, "Total Findings: %d\n\n", len(data.Findings))

	for i, f := range data.Findings {
		fmt.Fprintf(bw, "Finding #%d\n", i+1)
		fmt.Fprintf(bw, "Repository: %s\n", f.Repository)
		fmt.Fprintf(bw, "File: %s\n", f.FilePath)
		fmt.Fprintf(bw, "URL: %s\n", f.FileURL)
		fmt.Fprintf(bw, "Token: %s\n", f.Token)
		fmt.Fprintf(bw, "Discovered: %s\n", f.DiscoveredAt.Format(time.RFC3339))
		fmt.Fprintf(bw, "%s\n", findingSeparator)
	}

	return bw.Flush()
}
