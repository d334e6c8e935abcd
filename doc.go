// Package sec4dev provides a Go client SDK for the Sec4Dev security checks
// API: disposable email detection and IP reputation lookups.
//
// Basic usage:
//
//	client, err := sec4dev.New("sec4_your_api_key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Check an email address
//	disposable, err := client.Email().IsDisposable(ctx, "user@tempmail.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Check an IP address
//	result, err := client.IP().Check(ctx, "203.0.113.42")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Classification:", result.Classification)
//
// Requests are retried on 429, 500, 502, 503, 504 and transport failures.
// Failed calls return an *APIError (classified by status code, check with
// errors.Is against ErrAuthentication, ErrRateLimited, ...) or a
// *NetworkError when no status code was obtained.
package sec4dev
