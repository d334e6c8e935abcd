// Package apierrors provides the error taxonomy shared by the Sec4Dev client
// packages.
package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sec4dev/sec4dev-go/internal/ratelimit"
)

// Sentinel errors for errors.Is() checks. Each one matches every *APIError
// of the corresponding Kind.
var (
	// ErrGeneric matches API errors whose status has no dedicated kind.
	ErrGeneric = errors.New("sec4dev API error")

	// ErrAuthentication is returned when the API key is invalid or expired.
	ErrAuthentication = errors.New("authentication failed")

	// ErrPaymentRequired is returned when the account has no remaining credit.
	ErrPaymentRequired = errors.New("payment required")

	// ErrForbidden is returned when the key is not allowed to call an endpoint.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for invalid input, whether rejected locally
	// or by the API.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned for 5xx responses.
	ErrServer = errors.New("server error")
)

// Kind identifies the variant of an APIError.
type Kind int

const (
	KindGeneric Kind = iota
	KindAuthentication
	KindPaymentRequired
	KindForbidden
	KindNotFound
	KindValidation
	KindRateLimit
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindPaymentRequired:
		return "payment_required"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	default:
		return "generic"
	}
}

// sentinel returns the sentinel error matched by errors of kind k.
func (k Kind) sentinel() error {
	switch k {
	case KindAuthentication:
		return ErrAuthentication
	case KindPaymentRequired:
		return ErrPaymentRequired
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindValidation:
		return ErrValidation
	case KindRateLimit:
		return ErrRateLimited
	case KindServer:
		return ErrServer
	default:
		return ErrGeneric
	}
}

// DefaultMessage is used when the response body carries no detail field.
const DefaultMessage = "Unknown error"

// DefaultRateLimitMessage is the detail substituted for an empty 429 body.
const DefaultRateLimitMessage = "Rate limit exceeded"

// APIError is a classified failure. StatusCode is the HTTP status, or 422 for
// input rejected locally. RetryAfter, Limit and Remaining are only set for
// KindRateLimit.
type APIError struct {
	Kind         Kind
	Message      string
	StatusCode   int
	ResponseBody any

	RetryAfter int
	Limit      int
	Remaining  int
}

func (e *APIError) Error() string {
	if e.Kind == KindRateLimit {
		return fmt.Sprintf("API error %d: %s (retry after %ds)", e.StatusCode, e.Message, e.RetryAfter)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Retryable reports whether the status that produced e is eligible for
// another attempt.
func (e *APIError) Retryable() bool {
	return IsRetryableStatus(e.StatusCode)
}

// Sec4DevError implements the Sec4DevError interface.
func (e *APIError) Sec4DevError() {}

// NewValidationError returns a Validation error for input rejected before any
// request is made.
func NewValidationError(message string) *APIError {
	return &APIError{
		Kind:       KindValidation,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

// IsRetryableStatus reports whether an HTTP status should be retried.
func IsRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// KindForStatus maps an HTTP status code onto an error kind.
func KindForStatus(statusCode int) Kind {
	switch {
	case statusCode == http.StatusUnauthorized:
		return KindAuthentication
	case statusCode == http.StatusPaymentRequired:
		return KindPaymentRequired
	case statusCode == http.StatusForbidden:
		return KindForbidden
	case statusCode == http.StatusNotFound:
		return KindNotFound
	case statusCode == http.StatusUnprocessableEntity:
		return KindValidation
	case statusCode == http.StatusTooManyRequests:
		return KindRateLimit
	case statusCode >= 500:
		return KindServer
	default:
		return KindGeneric
	}
}

// FromResponse classifies a non-2xx response. body is the decoded JSON body,
// or the raw text when decoding failed. For 429 the retry-after header and
// the rate-limit headers are attached.
func FromResponse(statusCode int, body any, header http.Header) *APIError {
	kind := KindForStatus(statusCode)
	if kind == KindRateLimit && isEmptyBody(body) {
		body = map[string]any{"detail": DefaultRateLimitMessage}
	}

	e := &APIError{
		Kind:         kind,
		Message:      detailMessage(body),
		StatusCode:   statusCode,
		ResponseBody: body,
	}

	if kind == KindRateLimit {
		info := ratelimit.FromHeader(header)
		e.RetryAfter = ratelimit.RetryAfter(header)
		e.Limit = info.Limit
		e.Remaining = info.Remaining
	}
	return e
}

// DecodeBody decodes raw as JSON, falling back to the raw text.
func DecodeBody(raw []byte) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

func detailMessage(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return DefaultMessage
	}
	detail, ok := obj["detail"]
	if !ok {
		return DefaultMessage
	}
	if s, ok := detail.(string); ok {
		return s
	}
	data, err := json.Marshal(detail)
	if err != nil {
		return fmt.Sprint(detail)
	}
	return string(data)
}

func isEmptyBody(body any) bool {
	switch b := body.(type) {
	case nil:
		return true
	case string:
		return b == ""
	}
	return false
}

// NetworkError represents a failure before a status code was obtained:
// timeouts, connection errors and undecodable success bodies.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusCode is always 0; no HTTP status was obtained.
func (e *NetworkError) StatusCode() int {
	return 0
}

// Sec4DevError implements the Sec4DevError interface.
func (e *NetworkError) Sec4DevError() {}
