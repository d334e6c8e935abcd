// Package ratelimit extracts quota information from Sec4Dev API response
// headers.
package ratelimit

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Header names consumed from responses. http.Header lookups are
// case-insensitive.
const (
	HeaderLimit      = "X-RateLimit-Limit"
	HeaderRemaining  = "X-RateLimit-Remaining"
	HeaderReset      = "X-RateLimit-Reset"
	HeaderRetryAfter = "Retry-After"
)

// DefaultRetryAfter is used when a 429 carries no usable retry-after value.
const DefaultRetryAfter = 60

// Info is a snapshot of the quota reported by the most recent response.
type Info struct {
	Limit        int `json:"limit"`
	Remaining    int `json:"remaining"`
	ResetSeconds int `json:"reset_seconds"`
}

// FromHeader parses the x-ratelimit-* headers. Each field falls back to 0
// independently when missing, unparsable or negative.
func FromHeader(h http.Header) Info {
	return Info{
		Limit:        intHeader(h, HeaderLimit),
		Remaining:    intHeader(h, HeaderRemaining),
		ResetSeconds: intHeader(h, HeaderReset),
	}
}

// RetryAfter returns the retry-after header in whole seconds.
// Integer seconds and HTTP-dates are accepted; anything else yields
// DefaultRetryAfter.
func RetryAfter(h http.Header) int {
	return retryAfterAt(h, time.Now())
}

func retryAfterAt(h http.Header, now time.Time) int {
	val := strings.TrimSpace(h.Get(HeaderRetryAfter))
	if val == "" {
		return DefaultRetryAfter
	}
	if n, err := strconv.Atoi(val); err == nil {
		if n < 0 {
			return DefaultRetryAfter
		}
		return n
	}
	if t, err := http.ParseTime(val); err == nil {
		d := t.Sub(now)
		if d <= 0 {
			return 0
		}
		// round up so the server-side window has elapsed
		return int((d + time.Second - 1) / time.Second)
	}
	return DefaultRetryAfter
}

func intHeader(h http.Header, name string) int {
	if h == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(h.Get(name)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
