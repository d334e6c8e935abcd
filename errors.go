package sec4dev

import (
	"errors"

	"github.com/sec4dev/sec4dev-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrGeneric matches API errors whose status has no dedicated kind.
	ErrGeneric = apierrors.ErrGeneric

	// ErrAuthentication is returned when the API key is invalid or expired (401).
	ErrAuthentication = apierrors.ErrAuthentication

	// ErrPaymentRequired is returned when the account has run out of credit (402).
	ErrPaymentRequired = apierrors.ErrPaymentRequired

	// ErrForbidden is returned when the key may not call the endpoint (403).
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound is returned when the resource does not exist (404).
	ErrNotFound = apierrors.ErrNotFound

	// ErrValidation is returned for invalid input, locally or from the API (422).
	ErrValidation = apierrors.ErrValidation

	// ErrRateLimited is returned when the API rate limit is exceeded (429).
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer is returned for 5xx responses.
	ErrServer = apierrors.ErrServer
)

// Sec4DevError is implemented by all SDK errors.
type Sec4DevError interface {
	error
	Sec4DevError() // marker method
}

// ErrorKind identifies the variant of an APIError.
type ErrorKind = apierrors.Kind

// Error kinds.
const (
	KindGeneric         = apierrors.KindGeneric
	KindAuthentication  = apierrors.KindAuthentication
	KindPaymentRequired = apierrors.KindPaymentRequired
	KindForbidden       = apierrors.KindForbidden
	KindNotFound        = apierrors.KindNotFound
	KindValidation      = apierrors.KindValidation
	KindRateLimit       = apierrors.KindRateLimit
	KindServer          = apierrors.KindServer
)

// APIError is a classified failure carrying the HTTP status code and the
// decoded response body. Switch on Kind for exhaustive handling.
type APIError = apierrors.APIError

// NetworkError represents a failure where no HTTP status was obtained.
type NetworkError = apierrors.NetworkError

var (
	_ Sec4DevError = (*APIError)(nil)
	_ Sec4DevError = (*NetworkError)(nil)
)

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
