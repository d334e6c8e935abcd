// Package api provides HTTP client functionality for communicating with the
// Sec4Dev security checks API. It handles authentication, request/response
// serialization, rate-limit bookkeeping and retries.
//
// # Retry Behavior
//
// Each logical call makes up to MaxRetries+1 sequential attempts, each with
// its own timeout window. Retries happen for:
//
//   - 429 Too Many Requests, after the advertised Retry-After (default 60s)
//   - 500, 502, 503 and 504, after BaseDelay * 2^attempt plus up to 100ms jitter
//   - transport failures (timeouts, connection errors, undecodable success
//     bodies), on the same exponential schedule
//
// Every other status is returned immediately without consuming retry budget.
//
// # Error Handling
//
// Failures with a status code are returned as *apierrors.APIError, classified
// by status. Failures without one are returned as *apierrors.NetworkError
// wrapping the cause. Use errors.Is with the apierrors sentinels:
//
//	if errors.Is(err, apierrors.ErrRateLimited) {
//	    // Back off
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
