package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Provider failures are typed so the retry layer can tell transient from
// permanent and the HTTP layer can pick a status code without string
// matching.

// ErrRateLimit reports a 429 from the vendor. RetryAfter carries the
// vendor's requested hold-off when one was supplied, zero otherwise.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider rate limit, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("provider rate limit: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that failed schema validation.
// Content keeps the offending output so the event log and the fallback
// path can record what the model actually said.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("model output failed validation: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports that the vendor could not serve the
// request at all: network failure, 5xx, or an exhausted mock in tests.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "generation provider unavailable"
	}
	return fmt.Sprintf("generation provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports output cut off by the request's MaxTokens
// budget. Content holds the partial output for diagnostics.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model output truncated by the MaxTokens budget"
}
