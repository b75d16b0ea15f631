package secretscanner

import "regexp"

// RegexRule defines a rule for detecting SAS token candidates.
type RegexRule struct {
	ID          string
	Description string
	Regex       *regexp.Regexp
}

const (
	RuleSASURL   = "sas_url"
	RuleSASQuery = "sas_query"
)

// DefaultRules matches Azure blob SAS URLs and bare SAS query strings.
var DefaultRules = []RegexRule{
	{
		ID:          RuleSASURL,
		Description: "Azure Blob Storage URL carrying a SAS query",
		Regex:       regexp.MustCompile(`(?i)https?://[^/]+\.blob\.core\.windows\.net/[^?\s]+\?[^=\s]+=[^&\s]+&?(?:sig=|sv=|sp=)[^&\s]+`),
	},
	{
		ID:          RuleSASQuery,
		Description: "SAS query parameters (sig, sv, sp, st, se, sr)",
		Regex:       regexp.MustCompile(`(?i)(?:sig|sv|sp|st|se|sr)=[^&\s]+(?:&(?:sig|sv|sp|st|se|sr)=[^&\s]+)*`),
	},
}
