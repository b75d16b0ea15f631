package models

// ParquetFinding is the row schema for the parquet findings export.
// Timestamps are stored as Unix milliseconds.
type ParquetFinding struct {
	ScanSessionID string  `parquet:"scan_session_id"`
	Repository    string  `parquet:"repository"`
	FilePath      string  `parquet:"file_path"`
	FileURL       *string `parquet:"file_url,optional"`
	Token         string  `parquet:"token"`
	DiscoveredAt  int64   `parquet:"discovered_at"`
}

// ToParquet converts a Finding into its parquet row.
func (f Finding) ToParquet(scanSessionID string) ParquetFinding {
	row := ParquetFinding{
		ScanSessionID: scanSessionID,
		Repository:    f.Repository,
		FilePath:      f.FilePath,
		Token:         f.Token,
		DiscoveredAt:  TimeToUnixMilli(f.DiscoveredAt),
	}
	if f.FileURL != "" {
		u := f.FileURL
		row.FileURL = &u
	}
	return row
}

// ToFinding converts a parquet row back into a Finding.
func (p ParquetFinding) ToFinding() Finding {
	f := Finding{
		Repository:   p.Repository,
		FilePath:     p.FilePath,
		Token:        p.Token,
		DiscoveredAt: UnixMilliToTimeOptional(&p.DiscoveredAt),
	}
	if p.FileURL != nil {
		f.FileURL = *p.FileURL
	}
	return f
}
