// Package github talks to the GitHub REST API: code search and file contents.
package github

import "fmt"

const (
	// DefaultAPIBaseURL is the public GitHub REST endpoint.
	DefaultAPIBaseURL = "https://api.github.com"
	// AcceptHeader pins the v3 media type.
	AcceptHeader = "application/vnd.github.v3+json"
	// MaxPerPage is the largest page size the search API accepts.
	MaxPerPage = 100
)

// APIHeaders returns the headers sent with every API request.
func APIHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("token %s", token),
		"Accept":        AcceptHeader,
	}
}
