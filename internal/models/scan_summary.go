package models

import "time"

// ScanStatus defines the possible states of a scan.
type ScanStatus string

const (
	ScanStatusStarted     ScanStatus = "STARTED"
	ScanStatusCompleted   ScanStatus = "COMPLETED"
	ScanStatusInterrupted ScanStatus = "INTERRUPTED"
	ScanStatusFailed      ScanStatus = "FAILED"
)

// ScanSummary describes one scan session.
type ScanSummary struct {
	ScanSessionID   string         `json:"scan_session_id"`
	StartTime       time.Time      `json:"start_time"`
	EndTime         time.Time      `json:"end_time"`
	Duration        time.Duration  `json:"duration"`
	Queries         []string       `json:"queries"`
	FindingsByQuery map[string]int `json:"findings_by_query"`
	TotalFindings   int            `json:"total_findings"`
	Status          ScanStatus     `json:"status"`
	ReportPaths     []string       `json:"report_paths"`
}

// ScanSummaryBuilder helps in constructing ScanSummary objects.
type ScanSummaryBuilder struct {
	summary ScanSummary
}

// NewScanSummaryBuilder creates a builder with a STARTED summary.
func NewScanSummaryBuilder() *ScanSummaryBuilder {
	return &ScanSummaryBuilder{
		summary: ScanSummary{
			Queries:         []string{},
			FindingsByQuery: map[string]int{},
			Status:          ScanStatusStarted,
		},
	}
}

// WithScanSessionID sets the session ID.
func (b *ScanSummaryBuilder) WithScanSessionID(id string) *ScanSummaryBuilder {
	b.summary.ScanSessionID = id
	return b
}

// WithStartTime sets the start time.
func (b *ScanSummaryBuilder) WithStartTime(t time.Time) *ScanSummaryBuilder {
	b.summary.StartTime = t
	return b
}

// WithQueryResult records the finding count for one query. Repeated queries accumulate.
func (b *ScanSummaryBuilder) WithQueryResult(query string, findings int) *ScanSummaryBuilder {
	if _, seen := b.summary.FindingsByQuery[query]; !seen {
		b.summary.Queries = append(b.summary.Queries, query)
	}
	b.summary.FindingsByQuery[query] += findings
	b.summary.TotalFindings += findings
	return b
}

// WithStatus sets the status.
func (b *ScanSummaryBuilder) WithStatus(status ScanStatus) *ScanSummaryBuilder {
	b.summary.Status = status
	return b
}

// WithReportPaths appends report paths.
func (b *ScanSummaryBuilder) WithReportPaths(paths ...string) *ScanSummaryBuilder {
	b.summary.ReportPaths = append(b.summary.ReportPaths, paths...)
	return b
}

// Finish sets the end time and derives the duration.
func (b *ScanSummaryBuilder) Finish(end time.Time) *ScanSummaryBuilder {
	b.summary.EndTime = end
	if !b.summary.StartTime.IsZero() {
		b.summary.Duration = end.Sub(b.summary.StartTime)
	}
	return b
}

// Build returns the ScanSummary.
func (b *ScanSummaryBuilder) Build() ScanSummary {
	return b.summary
}
