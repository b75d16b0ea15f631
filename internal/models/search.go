package models

import "time"

// SearchResponse is one page of the code search API.
type SearchResponse struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []SearchItem `json:"items"`
}

// SearchItem is a single file hit. URL is the API locator used to fetch content.
type SearchItem struct {
	Name       string           `json:"name"`
	Path       string           `json:"path"`
	SHA        string           `json:"sha"`
	URL        string           `json:"url"`
	HTMLURL    string           `json:"html_url"`
	Repository SearchRepository `json:"repository"`
}

// SearchRepository identifies the repository that owns a SearchItem.
type SearchRepository struct {
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

// RateLimit is the quota state reported by the API on a response.
// Present is set when X-RateLimit-Remaining was sent at all; Known when it
// also parsed as a number.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
	Present   bool
	Known     bool
}

// Exhausted reports whether paging must stop: the remaining header is
// missing, or it reports no requests left.
func (r RateLimit) Exhausted() bool {
	if !r.Present {
		return true
	}
	return r.Known && r.Remaining <= 0
}
