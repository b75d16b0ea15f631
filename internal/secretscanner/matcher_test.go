package secretscanner

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sasURL = "https://acct.blob.core.windows.net/container/file.txt?sv=2020-01-01&sig=abc123&se=2099-01-01"

func TestMatcher_Extract(t *testing.T) {
	matcher := NewMatcher()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "No candidates in unrelated text",
			content: "var x = 'hello world'; console.log(x);",
			want:    nil,
		},
		{
			name:    "SAS URL yields URL and query candidates",
			content: sasURL,
			want: []string{
				"https://acct.blob.core.windows.net/container/file.txt?sv=2020-01-01&sig=abc123",
				"sv=2020-01-01&sig=abc123&se=2099-01-01",
			},
		},
		{
			name:    "Bare query in config file",
			content: "AZURE_SAS=\"sp=r&st=2021-01-01&sig=Zm9v%3D\"\n",
			want:    []string{"sp=r&st=2021-01-01&sig=Zm9v%3D\""},
		},
		{
			name:    "Case-insensitive keys",
			content: "token: SV=2019-12-12&SIG=ABC",
			want:    []string{"SV=2019-12-12&SIG=ABC"},
		},
		{
			name:    "Duplicates collapse",
			content: "a sv=1&sig=x\nb sv=1&sig=x\n",
			want:    []string{"sv=1&sig=x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Extract(tt.content))
		})
	}
}

func TestMatcher_ExtractContainsBlobURL(t *testing.T) {
	inputs := []string{
		"see https://store1.blob.core.windows.net/backups/db.bak?sv=2021-06-08&sp=r&sig=q1w2e3 for the dump",
		"url: 'http://x.blob.core.windows.net/c/d/e.json?sp=rl&sv=2020-02-10&sig=zzz'",
		"https://acct.BLOB.core.windows.net/c/f?se=2030-01-01&sig=AbC&sv=2020-08-04",
	}

	matcher := NewMatcher()
	for _, input := range inputs {
		candidates := matcher.Extract(input)
		require.NotEmpty(t, candidates, input)

		found := false
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c), ".blob.core.windows.net/") {
				found = true
				break
			}
		}
		assert.True(t, found, "expected a URL-shaped candidate for %q, got %v", input, candidates)
	}
}

func TestMatcher_Idempotent(t *testing.T) {
	matcher := NewMatcher()
	content := sasURL + "\nother sr=b&sp=w&sig=xyz\n"

	first := matcher.Extract(content)
	second := matcher.Extract(content)
	assert.Equal(t, first, second)
}

func TestMatcher_CustomRules(t *testing.T) {
	matcher := NewMatcherWithRules([]RegexRule{
		{ID: "digits", Regex: regexp.MustCompile(`\d{4}`)},
	})
	assert.Equal(t, []string{"1234", "5678"}, matcher.Extract("a1234 b5678 c1234"))
	assert.Empty(t, matcher.Extract("no digits"))
}
