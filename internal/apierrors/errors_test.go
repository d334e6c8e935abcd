package apierrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{401, KindAuthentication},
		{402, KindPaymentRequired},
		{403, KindForbidden},
		{404, KindNotFound},
		{422, KindValidation},
		{429, KindRateLimit},
		{500, KindServer},
		{503, KindServer},
		{599, KindServer},
		{400, KindGeneric},
		{409, KindGeneric},
		{302, KindGeneric},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			if got := KindForStatus(tt.status); got != tt.want {
				t.Errorf("KindForStatus(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestFromResponse_Message(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{"string detail", map[string]any{"detail": "Invalid API key"}, "Invalid API key"},
		{"numeric detail", map[string]any{"detail": float64(42)}, "42"},
		{"object detail", map[string]any{"detail": map[string]any{"field": "ip"}}, `{"field":"ip"}`},
		{"no detail", map[string]any{"error": "x"}, DefaultMessage},
		{"raw text", "Bad Gateway", DefaultMessage},
		{"nil body", nil, DefaultMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FromResponse(http.StatusBadRequest, tt.body, nil)
			if e.Message != tt.want {
				t.Errorf("Message = %q, want %q", e.Message, tt.want)
			}
			if e.Kind != KindGeneric {
				t.Errorf("Kind = %v, want generic", e.Kind)
			}
		})
	}
}

func TestFromResponse_PreservesBody(t *testing.T) {
	body := map[string]any{"detail": "missing", "code": "E404"}
	e := FromResponse(http.StatusNotFound, body, nil)

	got, ok := e.ResponseBody.(map[string]any)
	if !ok || got["code"] != "E404" {
		t.Errorf("ResponseBody = %v, want decoded body", e.ResponseBody)
	}
	if e.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", e.StatusCode)
	}
}

func TestFromResponse_RateLimit(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "12")
	h.Set("X-RateLimit-Limit", "50")
	h.Set("X-RateLimit-Remaining", "0")

	e := FromResponse(http.StatusTooManyRequests, map[string]any{"detail": "quota"}, h)

	if e.Kind != KindRateLimit {
		t.Fatalf("Kind = %v, want rate_limit", e.Kind)
	}
	if e.RetryAfter != 12 || e.Limit != 50 || e.Remaining != 0 {
		t.Errorf("RetryAfter/Limit/Remaining = %d/%d/%d, want 12/50/0", e.RetryAfter, e.Limit, e.Remaining)
	}
	if e.Message != "quota" {
		t.Errorf("Message = %q, want quota", e.Message)
	}
}

func TestFromResponse_RateLimitDefaults(t *testing.T) {
	e := FromResponse(http.StatusTooManyRequests, "", http.Header{})

	if e.RetryAfter != 60 {
		t.Errorf("RetryAfter = %d, want 60", e.RetryAfter)
	}
	if e.Message != DefaultRateLimitMessage {
		t.Errorf("Message = %q, want %q", e.Message, DefaultRateLimitMessage)
	}
}

func TestDecodeBody(t *testing.T) {
	if got, ok := DecodeBody([]byte(`{"detail":"x"}`)).(map[string]any); !ok || got["detail"] != "x" {
		t.Errorf("DecodeBody(json) = %v", got)
	}
	if got := DecodeBody([]byte("oops")); got != "oops" {
		t.Errorf("DecodeBody(text) = %v, want oops", got)
	}
	if got := DecodeBody(nil); got != "" {
		t.Errorf("DecodeBody(nil) = %v, want empty string", got)
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "with message",
			err:      &APIError{Kind: KindAuthentication, StatusCode: 401, Message: "Invalid API key"},
			expected: "API error 401: Invalid API key",
		},
		{
			name:     "without message",
			err:      &APIError{Kind: KindServer, StatusCode: 500},
			expected: "API error 500",
		},
		{
			name:     "rate limit",
			err:      &APIError{Kind: KindRateLimit, StatusCode: 429, Message: "slow down", RetryAfter: 30},
			expected: "API error 429: slow down (retry after 30s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	sentinels := []error{
		ErrGeneric, ErrAuthentication, ErrPaymentRequired, ErrForbidden,
		ErrNotFound, ErrValidation, ErrRateLimited, ErrServer,
	}

	tests := []struct {
		kind   Kind
		target error
	}{
		{KindGeneric, ErrGeneric},
		{KindAuthentication, ErrAuthentication},
		{KindPaymentRequired, ErrPaymentRequired},
		{KindForbidden, ErrForbidden},
		{KindNotFound, ErrNotFound},
		{KindValidation, ErrValidation},
		{KindRateLimit, ErrRateLimited},
		{KindServer, ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &APIError{Kind: tt.kind})
			for _, s := range sentinels {
				want := s == tt.target
				if got := errors.Is(err, s); got != want {
					t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.kind, s, got, want)
				}
			}
		})
	}
}

func TestAPIError_Retryable(t *testing.T) {
	for _, code := range []int{429, 500, 502, 503, 504} {
		if !(&APIError{StatusCode: code}).Retryable() {
			t.Errorf("Retryable() = false for %d", code)
		}
	}
	for _, code := range []int{0, 400, 401, 402, 403, 404, 422, 501, 505} {
		if (&APIError{StatusCode: code}).Retryable() {
			t.Errorf("Retryable() = true for %d", code)
		}
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Invalid email format")

	if err.Kind != KindValidation || err.StatusCode != 422 {
		t.Errorf("NewValidationError() = %+v", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false")
	}
}

func TestNetworkError(t *testing.T) {
	err := &NetworkError{Err: context.DeadlineExceeded, URL: "https://example.com/ip/check", Attempt: 2}

	if err.Error() != "network error: context deadline exceeded" {
		t.Errorf("Error() = %s", err.Error())
	}
	if err.StatusCode() != 0 {
		t.Errorf("StatusCode() = %d, want 0", err.StatusCode())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("errors.Is() should match underlying error")
	}

	var netErr *NetworkError
	if !errors.As(fmt.Errorf("call: %w", err), &netErr) {
		t.Error("errors.As() should match NetworkError")
	}
}

func TestKind_String(t *testing.T) {
	if KindRateLimit.String() != "rate_limit" {
		t.Errorf("String() = %s, want rate_limit", KindRateLimit.String())
	}
	if Kind(99).String() != "generic" {
		t.Errorf("String() = %s, want generic", Kind(99).String())
	}
}
