package sec4dev

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDefaultConstants(t *testing.T) {
	if defaultBaseURL != "https://api.sec4.dev/api/v1" {
		t.Errorf("defaultBaseURL = %s, want https://api.sec4.dev/api/v1", defaultBaseURL)
	}
	if defaultTimeout != 30*time.Second {
		t.Errorf("defaultTimeout = %v, want 30s", defaultTimeout)
	}
	if defaultRetries != 3 {
		t.Errorf("defaultRetries = %d, want 3", defaultRetries)
	}
	if defaultRetryDelay != time.Second {
		t.Errorf("defaultRetryDelay = %v, want 1s", defaultRetryDelay)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.baseURL != defaultBaseURL {
		t.Errorf("baseURL = %s, want %s", cfg.baseURL, defaultBaseURL)
	}
	if cfg.timeout != defaultTimeout || cfg.retries != defaultRetries || cfg.retryDelay != defaultRetryDelay {
		t.Errorf("defaultConfig() = %+v", cfg)
	}
	if cfg.rps != 0 {
		t.Errorf("rps = %v, want 0 (no throttling)", cfg.rps)
	}
}

func TestWithBaseURL(t *testing.T) {
	cfg := &clientConfig{}
	WithBaseURL("https://custom.example.com")(cfg)
	if cfg.baseURL != "https://custom.example.com" {
		t.Errorf("baseURL = %s, want https://custom.example.com", cfg.baseURL)
	}
}

func TestWithHTTPClient(t *testing.T) {
	cfg := &clientConfig{}
	customClient := &http.Client{Timeout: 99 * time.Second}
	WithHTTPClient(customClient)(cfg)
	if cfg.httpClient != customClient {
		t.Error("httpClient was not set")
	}
}

func TestWithTimeout(t *testing.T) {
	cfg := &clientConfig{}
	WithTimeout(5 * time.Second)(cfg)
	if cfg.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.timeout)
	}
}

func TestWithRetries(t *testing.T) {
	cfg := &clientConfig{}
	WithRetries(5)(cfg)
	if cfg.retries != 5 {
		t.Errorf("retries = %d, want 5", cfg.retries)
	}
}

func TestWithRetryDelay(t *testing.T) {
	cfg := &clientConfig{}
	WithRetryDelay(250 * time.Millisecond)(cfg)
	if cfg.retryDelay != 250*time.Millisecond {
		t.Errorf("retryDelay = %v, want 250ms", cfg.retryDelay)
	}
}

func TestWithOnRateLimit(t *testing.T) {
	cfg := &clientConfig{}
	called := false
	WithOnRateLimit(func(RateLimitInfo) { called = true })(cfg)
	if cfg.onRateLimit == nil {
		t.Fatal("onRateLimit was not set")
	}
	cfg.onRateLimit(RateLimitInfo{})
	if !called {
		t.Error("onRateLimit was not the provided callback")
	}
}

func TestWithLogger(t *testing.T) {
	cfg := &clientConfig{}
	logger := log.New(io.Discard)
	WithLogger(logger)(cfg)
	if cfg.logger != logger {
		t.Error("logger was not set")
	}
}

func TestWithRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		rps       float64
		burst     int
		wantBurst int
	}{
		{"explicit burst", 5, 3, 3},
		{"zero burst keeps default", 5, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			WithRateLimit(tt.rps, tt.burst)(cfg)
			if cfg.rps != tt.rps {
				t.Errorf("rps = %v, want %v", cfg.rps, tt.rps)
			}
			if cfg.burst != tt.wantBurst {
				t.Errorf("burst = %d, want %d", cfg.burst, tt.wantBurst)
			}
		})
	}
}
