package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
	"github.com/aleister1102/sashunter/internal/config"
	"github.com/aleister1102/sashunter/internal/datastore"
	"github.com/aleister1102/sashunter/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scanDate = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

func threeFindings() []models.Finding {
	at := scanDate.Add(time.Minute)
	return []models.Finding{
		{Repository: "octo/a", FilePath: "a.env", FileURL: "https://github.com/octo/a/blob/main/a.env", Token: "sv=2020-01-01&sig=aaa", DiscoveredAt: at},
		{Repository: "octo/a", FilePath: "b.env", FileURL: "https://github.com/octo/a/blob/main/b.env", Token: "sv=2020-01-01&sig=bbb", DiscoveredAt: at},
		{Repository: "octo/c", FilePath: "deploy/app.yaml", FileURL: "https://github.com/octo/c/blob/main/deploy/app.yaml", Token: "https://x.blob.core.windows.net/c/f?sv=1&sig=ccc", DiscoveredAt: at},
	}
}

func TestReportPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "sas_scan_report_20240305_140709.txt"), ReportPath("out", scanDate, "txt"))
}

func TestTextReporter_Generate(t *testing.T) {
	dir := t.TempDir()
	reporter := NewTextReporter(dir, "", zerolog.Nop())

	path, err := reporter.Generate(context.Background(), ReportData{ScanDate: scanDate, Findings: threeFindings()})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sas_scan_report_20240305_140709.txt"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	assert.True(t, strings.HasPrefix(content, "Azure Storage SAS Token Exposure Report\n=====================================\n\n"))
	assert.Contains(t, content, "Scan Date: 2024-03-05T14:07:09Z\n")
	assert.Contains(t, content, "Total Findings: 3\n\n")
	assert.Equal(t, 3, strings.Count(content, "Finding #"))
	assert.Equal(t, 3, strings.Count(content, strings.Repeat("-", 50)+"\n"))
	for i, f := range threeFindings() {
		block := strings.Join([]string{
			"Finding #" + string(rune('1'+i)),
			"Repository: " + f.Repository,
			"File: " + f.FilePath,
			"URL: " + f.FileURL,
			"Token: " + f.Token,
			"Discovered: " + f.DiscoveredAt.Format(time.RFC3339),
		}, "\n")
		assert.Contains(t, content, block)
	}
}

func TestTextReporter_EmptyFindings(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewTextReporter("", "", zerolog.Nop())

	require.NoError(t, reporter.Render(&buf, ReportData{ScanDate: scanDate}))
	assert.Contains(t, buf.String(), "Total Findings: 0\n")
	assert.NotContains(t, buf.String(), "Finding #")
}

func TestTextReporter_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	reporter := NewTextReporter(dir, "", zerolog.Nop())
	data := ReportData{ScanDate: scanDate, Findings: threeFindings()}

	path, err := reporter.Generate(context.Background(), data)
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = reporter.Generate(context.Background(), ReportData{ScanDate: scanDate})
	require.ErrorIs(t, err, errorwrapper.ErrReportExists)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTextReporter_UnwritableDirectory(t *testing.T) {
	reporter := NewTextReporter(filepath.Join(t.TempDir(), "missing", "dir"), "", zerolog.Nop())
	_, err := reporter.Generate(context.Background(), ReportData{ScanDate: scanDate})
	require.Error(t, err)
}

func TestJSONReporter_Generate(t *testing.T) {
	dir := t.TempDir()
	reporter := NewJSONReporter(dir, zerolog.Nop())

	path, err := reporter.Generate(context.Background(), ReportData{ScanSessionID: "id-1", ScanDate: scanDate, Findings: threeFindings()})
	require.NoError(t, err)
	assert.Equal(t, ".json", filepath.Ext(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		ScanSessionID string           `json:"scan_session_id"`
		TotalFindings int              `json:"total_findings"`
		Findings      []models.Finding `json:"findings"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "id-1", decoded.ScanSessionID)
	assert.Equal(t, 3, decoded.TotalFindings)
	require.Len(t, decoded.Findings, 3)
	assert.Equal(t, "deploy/app.yaml", decoded.Findings[2].FilePath)
	assert.Contains(t, string(raw), `"discovered_at": "2024-03-05T14:08:09Z"`)
}

func TestJSONReporter_EmptyFindingsIsArray(t *testing.T) {
	reporter := NewJSONReporter(t.TempDir(), zerolog.Nop())
	path, err := reporter.Generate(context.Background(), ReportData{ScanDate: scanDate})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"findings": []`)
}

func TestReportManager_AllFormats(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	manager, err := NewReportManager(config.ReporterConfig{
		OutputDir: dir,
		Formats:   []string{"text", "json", "parquet", "text"},
	}, zerolog.Nop())
	require.NoError(t, err)

	paths, err := manager.GenerateReports(context.Background(), ReportData{ScanSessionID: "id-1", ScanDate: scanDate, Findings: threeFindings()})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, p := range paths {
		assert.FileExists(t, p)
	}

	rows, err := datastore.NewFindingsExporter(datastore.DefaultParquetWriterConfig(), zerolog.Nop()).Load(context.Background(), paths[2])
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	// Same scan timestamp again must not clobber anything.
	_, err = manager.GenerateReports(context.Background(), ReportData{ScanDate: scanDate})
	assert.ErrorIs(t, err, errorwrapper.ErrReportExists)
}

func TestReportManager_ParquetExists(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewReportManager(config.ReporterConfig{OutputDir: dir, Formats: []string{"parquet"}}, zerolog.Nop())
	require.NoError(t, err)

	_, err = manager.GenerateReports(context.Background(), ReportData{ScanDate: scanDate})
	require.NoError(t, err)
	_, err = manager.GenerateReports(context.Background(), ReportData{ScanDate: scanDate})
	assert.ErrorIs(t, err, errorwrapper.ErrReportExists)
}

func TestNewReportManager_UnknownFormat(t *testing.T) {
	_, err := NewReportManager(config.ReporterConfig{Formats: []string{"html"}}, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidConfiguration)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	summary := models.NewScanSummaryBuilder().
		WithQueryResult("blob.core.windows.net sig=", 3).
		WithStatus(models.ScanStatusCompleted).
		Build()

	require.NoError(t, PrintSummary(&buf, summary, threeFindings()))
	out := buf.String()

	assert.Contains(t, out, "octo/a")
	assert.Contains(t, out, "octo/c")
	assert.Contains(t, out, "Findings: 3")
	assert.Contains(t, out, "Status: COMPLETED")
	assert.NotContains(t, out, "sig=ccc", "tokens are masked")
	assert.Less(t, strings.Index(out, "octo/a"), strings.Index(out, "octo/c"))
}

func TestPrintSummary_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, models.ScanSummary{}, nil))
	assert.Contains(t, buf.String(), "No SAS tokens found")
}
