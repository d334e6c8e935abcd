package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/sec4dev/sec4dev-go/internal/apierrors"
	"github.com/sec4dev/sec4dev-go/internal/ratelimit"
)

// Default client settings.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
	DefaultUserAgent  = "sec4dev-go"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 10 << 20

// Config holds the settings for NewClient.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	// Timeout bounds each attempt independently.
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	UserAgent  string

	// Limiter, when set, is waited on before every attempt.
	Limiter *rate.Limiter
	Logger  *log.Logger

	// OnRateLimit is called synchronously with the snapshot parsed from
	// every response, including responses that are retried.
	OnRateLimit func(ratelimit.Info)
}

// Stats holds request counters.
type Stats struct {
	Calls       uint64
	Attempts    uint64
	Retries     uint64
	RateLimited uint64
}

// Client is the HTTP API client. It is safe for concurrent use.
type Client struct {
	baseURL     string
	apiKey      string
	userAgent   string
	httpClient  *http.Client
	timeout     time.Duration
	retry       *RetryConfig
	limiter     *rate.Limiter
	logger      *log.Logger
	onRateLimit func(ratelimit.Info)

	sleep func(ctx context.Context, d time.Duration) error

	calls       atomic.Uint64
	attempts    atomic.Uint64
	retries     atomic.Uint64
	rateLimited atomic.Uint64
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	retry := DefaultRetryConfig()
	retry.MaxRetries = max(cfg.MaxRetries, 0)
	retry.BaseDelay = max(cfg.RetryDelay, 0)

	c := &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		userAgent:   cfg.UserAgent,
		httpClient:  cfg.HTTPClient,
		timeout:     cfg.Timeout,
		retry:       retry,
		limiter:     cfg.Limiter,
		logger:      cfg.Logger,
		onRateLimit: cfg.OnRateLimit,
		sleep:       sleepContext,
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.httpClient == nil {
		// no client-level timeout; each attempt carries its own deadline
		c.httpClient = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	return c, nil
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Stats returns a snapshot of request counters.
func (c *Client) Stats() Stats {
	return Stats{
		Calls:       c.calls.Load(),
		Attempts:    c.attempts.Load(),
		Retries:     c.retries.Load(),
		RateLimited: c.rateLimited.Load(),
	}
}

// response is a fully read HTTP response.
type response struct {
	status int
	header http.Header
	body   []byte
}

// Do performs one logical call: up to MaxRetries+1 sequential attempts, each
// bounded by the client timeout. On success the JSON body is decoded into
// result. It returns the rate-limit snapshot of the last completed attempt.
//
// Failures are either an *apierrors.APIError (a status code was obtained) or
// an *apierrors.NetworkError (timeout, connection failure, undecodable
// success body).
func (c *Client) Do(ctx context.Context, method, path string, body, result any) (ratelimit.Info, error) {
	var info ratelimit.Info

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return info, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	url := c.baseURL + path
	c.calls.Add(1)

	for attempt := 0; ; attempt++ {
		if err := c.throttle(ctx); err != nil {
			return info, &apierrors.NetworkError{Err: err, URL: url, Attempt: attempt + 1}
		}

		c.attempts.Add(1)
		c.logger.Debug("sending request", "method", method, "url", url, "attempt", attempt+1)

		resp, err := c.roundTrip(ctx, method, url, payload)
		if err != nil {
			netErr := &apierrors.NetworkError{Err: err, URL: url, Attempt: attempt + 1}
			if ctx.Err() != nil {
				netErr.Err = ctx.Err()
				return info, netErr
			}
			if !c.retry.CanRetry(attempt) {
				return info, netErr
			}
			if err := c.backoff(ctx, attempt, c.retry.Delay(attempt), netErr); err != nil {
				return info, &apierrors.NetworkError{Err: err, URL: url, Attempt: attempt + 1}
			}
			continue
		}

		info = ratelimit.FromHeader(resp.header)
		c.observe(info)

		if resp.status == http.StatusTooManyRequests {
			c.rateLimited.Add(1)
			if c.retry.CanRetry(attempt) {
				wait := time.Duration(ratelimit.RetryAfter(resp.header)) * time.Second
				if err := c.backoff(ctx, attempt, wait, errors.New("rate limited")); err != nil {
					return info, &apierrors.NetworkError{Err: err, URL: url, Attempt: attempt + 1}
				}
				continue
			}
			return info, apierrors.FromResponse(resp.status, apierrors.DecodeBody(resp.body), resp.header)
		}

		if resp.status < 200 || resp.status >= 300 {
			apiErr := apierrors.FromResponse(resp.status, apierrors.DecodeBody(resp.body), resp.header)
			if !c.retry.ShouldRetry(attempt, resp.status) {
				return info, apiErr
			}
			if err := c.backoff(ctx, attempt, c.retry.Delay(attempt), apiErr); err != nil {
				return info, &apierrors.NetworkError{Err: err, URL: url, Attempt: attempt + 1}
			}
			continue
		}

		if result == nil {
			return info, nil
		}
		if err := json.Unmarshal(resp.body, result); err != nil {
			netErr := &apierrors.NetworkError{
				Err:     fmt.Errorf("failed to decode response: %w", err),
				URL:     url,
				Attempt: attempt + 1,
			}
			if !c.retry.CanRetry(attempt) {
				return info, netErr
			}
			if err := c.backoff(ctx, attempt, c.retry.Delay(attempt), netErr); err != nil {
				return info, &apierrors.NetworkError{Err: err, URL: url, Attempt: attempt + 1}
			}
			continue
		}
		return info, nil
	}
}

// roundTrip issues a single attempt under its own timeout and reads the
// whole body before the deadline is released.
func (c *Client) roundTrip(ctx context.Context, method, url string, payload []byte) (*response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &response{
		status: resp.StatusCode,
		header: resp.Header,
		body:   data,
	}, nil
}

// backoff sleeps before the next attempt. It fails only when ctx is done.
func (c *Client) backoff(ctx context.Context, attempt int, d time.Duration, cause error) error {
	c.retries.Add(1)
	c.logger.Debug("retrying request", "attempt", attempt+1, "delay", d, "cause", cause)
	return c.sleep(ctx, d)
}

func (c *Client) throttle(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *Client) observe(info ratelimit.Info) {
	c.logger.Debug("rate limit", "limit", info.Limit, "remaining", info.Remaining, "reset", info.ResetSeconds)
	if c.onRateLimit != nil {
		c.onRateLimit(info)
	}
}
