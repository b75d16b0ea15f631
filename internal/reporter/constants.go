package reporter

const (
	// ReportFilePrefix starts every report file name.
	ReportFilePrefix = "sas_scan_report_"
	// ReportTimestampLayout formats the scan start time in report file names.
	ReportTimestampLayout = "20060102_150405"

	DefaultReportTitle = "Azure Storage SAS Token Exposure Report"
	titleUnderline     = "====================================="
	findingSeparator   = "--------------------------------------------------"

	// File permissions
	DirPermissions  = 0755
	FilePermissions = 0644
)
