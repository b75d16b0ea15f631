package github

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aleister1102/sashunter/internal/models"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

// ParseRateLimit reads the quota headers of a response. A response without
// a remaining header counts as exhausted with a reset at the Unix epoch; a
// remaining value that is not a number leaves the quota unknown.
func ParseRateLimit(headers http.Header) models.RateLimit {
	rl := models.RateLimit{Reset: time.Unix(0, 0)}
	if headers == nil {
		return rl
	}

	if strings.TrimSpace(headers.Get(HeaderRateLimitRemaining)) != "" {
		rl.Present = true
	}
	if remaining, ok := headerInt(headers, HeaderRateLimitRemaining); ok {
		rl.Remaining = remaining
		rl.Known = true
	}
	if limit, ok := headerInt(headers, HeaderRateLimitLimit); ok {
		rl.Limit = limit
	}
	if reset, ok := headerInt(headers, HeaderRateLimitReset); ok {
		rl.Reset = time.Unix(int64(reset), 0)
	}
	return rl
}

func headerInt(headers http.Header, name string) (int, bool) {
	raw := strings.TrimSpace(headers.Get(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
