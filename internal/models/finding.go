package models

import "time"

// Finding is a single validated SAS token occurrence in one file.
// The same token found in two files yields two findings.
type Finding struct {
	Repository   string    `json:"repository"`
	FilePath     string    `json:"file_path"`
	FileURL      string    `json:"file_url"`
	Token        string    `json:"token"`
	DiscoveredAt time.Time `json:"discovered_at"`
}

// NewFinding stamps a finding with the current time.
func NewFinding(repository, filePath, fileURL, token string) Finding {
	return Finding{
		Repository:   repository,
		FilePath:     filePath,
		FileURL:      fileURL,
		Token:        token,
		DiscoveredAt: time.Now(),
	}
}

// MaskedToken returns the token with everything past the first 12 and before the last 4 characters hidden.
func (f Finding) MaskedToken() string {
	const head, tail = 12, 4
	runes := []rune(f.Token)
	if len(runes) <= head+tail {
		return f.Token
	}
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}
