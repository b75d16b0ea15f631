package github

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aleister1102/sashunter/internal/httpclient"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testToken = "ghp_test"

// fakeAPI serves canned search pages and file contents.
type fakeAPI struct {
	t      *testing.T
	server *httptest.Server

	mu             sync.Mutex
	pages          map[int]string      // page number -> JSON body
	pageHeaders    map[int]http.Header // page number -> quota headers, defaulting to remaining quota
	pageStatus     map[int]int
	contents       map[string]string // path -> raw body
	contentStatus  map[string]int
	searchRequests []string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{
		t:             t,
		pages:         map[int]string{},
		pageHeaders:   map[int]http.Header{},
		pageStatus:    map[int]int{},
		contents:      map[string]string{},
		contentStatus: map[string]int{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "token "+testToken || r.Header.Get("Accept") != AcceptHeader {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if r.URL.Path == "/search/code" {
		f.searchRequests = append(f.searchRequests, r.URL.RawQuery)
		var page int
		_, _ = fmt.Sscanf(r.URL.Query().Get("page"), "%d", &page)
		headers, ok := f.pageHeaders[page]
		if !ok {
			headers = http.Header{"X-Ratelimit-Remaining": {"29"}, "X-Ratelimit-Limit": {"30"}}
		}
		for k, vals := range headers {
			for _, v := range vals {
				w.Header().Add(k, v)
			}
		}
		if status, ok := f.pageStatus[page]; ok {
			w.WriteHeader(status)
			return
		}
		body, ok := f.pages[page]
		if !ok {
			body = `{"total_count":0,"items":[]}`
		}
		_, _ = w.Write([]byte(body))
		return
	}

	if status, ok := f.contentStatus[r.URL.Path]; ok {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		return
	}
	body, ok := f.contents[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, _ = w.Write([]byte(body))
}

// item renders a search item whose content lives at path on the fake server.
func (f *fakeAPI) item(repo, path string) string {
	return fmt.Sprintf(`{"name":%q,"path":%q,"url":%q,"html_url":%q,"repository":{"full_name":%q}}`,
		path, path, f.server.URL+"/repos/"+repo+"/contents/"+path,
		"https://github.com/"+repo+"/blob/main/"+path, repo)
}

func (f *fakeAPI) setPage(page int, items ...string) {
	f.pages[page] = fmt.Sprintf(`{"total_count":%d,"incomplete_results":false,"items":[%s]}`, len(items), strings.Join(items, ","))
}

func (f *fakeAPI) setContent(repo, path, text string) {
	f.contents["/repos/"+repo+"/contents/"+path] = contentBody(text)
}

func (f *fakeAPI) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searchRequests)
}

// contentBody wraps text the way the contents API does, with line-broken base64.
func contentBody(text string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	var wrapped strings.Builder
	for i := 0; i < len(encoded); i += 60 {
		end := i + 60
		if end > len(encoded) {
			end = len(encoded)
		}
		wrapped.WriteString(encoded[i:end])
		wrapped.WriteString("\n")
	}
	return fmt.Sprintf(`{"encoding":"base64","content":%q}`, wrapped.String())
}

func newTestHTTPClient(t *testing.T) *httpclient.HTTPClient {
	t.Helper()
	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)
	return client
}

func newBufferLogger() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf).Level(zerolog.InfoLevel), &buf
}

func countLevel(logs, level string) int {
	return strings.Count(logs, fmt.Sprintf(`"level":"%s"`, level))
}

func newTestSearchClient(t *testing.T, api *fakeAPI, logger zerolog.Logger) *SearchClient {
	t.Helper()
	return NewSearchClient(newTestHTTPClient(t), SearchClientConfig{
		BaseURL: api.server.URL,
		Token:   testToken,
	}, nil, nil, logger)
}
