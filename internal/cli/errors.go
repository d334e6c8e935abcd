package cli

import "errors"

// Sentinel errors returned by commands before any request is made.
var (
	ErrAPIKeyMissing = errors.New("API key not set (use --api-key or " + EnvAPIKey + ")")
	ErrUnknownSignal = errors.New("unknown signal")
)
