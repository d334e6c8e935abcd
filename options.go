package sec4dev

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultBaseURL    = "https://api.sec4.dev/api/v1"
	defaultTimeout    = 30 * time.Second
	defaultRetries    = 3
	defaultRetryDelay = time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	retries     int
	retryDelay  time.Duration
	onRateLimit func(RateLimitInfo)
	logger      *log.Logger

	// Client-side throttling, disabled when rps <= 0.
	rps   float64
	burst int
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL:    defaultBaseURL,
		timeout:    defaultTimeout,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
		burst:      1,
	}
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. A trailing slash is stripped.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the timeout applied to each attempt.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries after the first attempt.
// Negative values are treated as 0.
// Default: 3
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryDelay sets the base delay for exponential backoff. The delay
// before retry n is delay * 2^n plus up to 100ms of jitter. 429 responses
// wait for the server's Retry-After instead.
// Default: 1 second
func WithRetryDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = delay
	}
}

// WithOnRateLimit registers a callback invoked with the rate-limit snapshot
// of every response, including responses that get retried. It runs on the
// calling goroutine and must not block.
func WithOnRateLimit(fn func(RateLimitInfo)) Option {
	return func(c *clientConfig) {
		c.onRateLimit = fn
	}
}

// WithLogger sets the logger used for debug output. By default nothing is
// logged.
func WithLogger(logger *log.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRateLimit throttles outgoing attempts client-side with a token bucket
// of rps requests per second and the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *clientConfig) {
		c.rps = rps
		if burst > 0 {
			c.burst = burst
		}
	}
}
