package secretscanner

// Matcher extracts SAS token candidates from text.
type Matcher struct {
	rules []RegexRule
}

// NewMatcher creates a matcher with the default rules.
func NewMatcher() *Matcher {
	return NewMatcherWithRules(DefaultRules)
}

// NewMatcherWithRules creates a matcher over a custom rule list.
func NewMatcherWithRules(rules []RegexRule) *Matcher {
	return &Matcher{rules: rules}
}

// Extract returns every distinct substring of text matched by any rule.
// Results are ordered by rule, then by position. Overlapping matches from
// different rules are all kept.
func (m *Matcher) Extract(text string) []string {
	var candidates []string
	seen := make(map[string]bool)

	for _, rule := range m.rules {
		for _, match := range rule.Regex.FindAllString(text, -1) {
			if match == "" || seen[match] {
				continue
			}
			seen[match] = true
			candidates = append(candidates, match)
		}
	}

	return candidates
}
