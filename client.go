package sec4dev

import (
	"strings"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/sec4dev/sec4dev-go/internal/api"
	"github.com/sec4dev/sec4dev-go/internal/apierrors"
	"github.com/sec4dev/sec4dev-go/internal/ratelimit"
)

// apiKeyPrefix is required on every Sec4Dev API key.
const apiKeyPrefix = "sec4_"

// RateLimitInfo is the quota reported by the most recent response.
// Fields are 0 when the server did not send the corresponding header.
type RateLimitInfo = ratelimit.Info

// Stats holds request counters for a client.
type Stats = api.Stats

// Client is the main Sec4Dev client. It is safe for concurrent use.
type Client struct {
	apiClient *api.Client
	email     *EmailService
	ip        *IPService

	// rateLimit is overwritten after every attempt; concurrent calls race
	// and the last writer wins.
	rateLimit   atomic.Pointer[RateLimitInfo]
	onRateLimit func(RateLimitInfo)
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig, observe func(ratelimit.Info)) (*api.Client, error) {
	apiCfg := api.Config{
		BaseURL:     cfg.baseURL,
		APIKey:      apiKey,
		HTTPClient:  cfg.httpClient,
		Timeout:     cfg.timeout,
		MaxRetries:  cfg.retries,
		RetryDelay:  cfg.retryDelay,
		UserAgent:   UserAgent,
		Logger:      cfg.logger,
		OnRateLimit: observe,
	}
	if cfg.rps > 0 {
		apiCfg.Limiter = rate.NewLimiter(rate.Limit(cfg.rps), cfg.burst)
	}
	return api.NewClient(apiCfg)
}

// New creates a new Sec4Dev client with the given API key. The key must
// start with "sec4_"; otherwise a Validation *APIError is returned.
func New(apiKey string, opts ...Option) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" || !strings.HasPrefix(key, apiKeyPrefix) {
		return nil, apierrors.NewValidationError("API key must start with " + apiKeyPrefix)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.baseURL = strings.TrimSuffix(cfg.baseURL, "/")

	c := &Client{onRateLimit: cfg.onRateLimit}
	c.rateLimit.Store(&RateLimitInfo{})

	apiClient, err := buildAPIClient(key, cfg, c.captureRateLimit)
	if err != nil {
		return nil, err
	}

	c.apiClient = apiClient
	c.email = &EmailService{api: apiClient}
	c.ip = &IPService{api: apiClient}
	return c, nil
}

// captureRateLimit stores the latest snapshot, then notifies the user
// callback.
func (c *Client) captureRateLimit(info ratelimit.Info) {
	c.rateLimit.Store(&info)
	if c.onRateLimit != nil {
		c.onRateLimit(info)
	}
}

// Email returns the email check service.
func (c *Client) Email() *EmailService {
	return c.email
}

// IP returns the IP check service.
func (c *Client) IP() *IPService {
	return c.ip
}

// RateLimit returns a copy of the most recently observed rate-limit
// snapshot. It is all zeros until the first response arrives.
func (c *Client) RateLimit() RateLimitInfo {
	return *c.rateLimit.Load()
}

// Stats returns a snapshot of request counters.
func (c *Client) Stats() Stats {
	return c.apiClient.Stats()
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}
