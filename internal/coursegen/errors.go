package coursegen

import "fmt"

// ErrInvalidURL indicates the input did not match any recognized
// YouTube link shape. User-correctable; reported as a 4xx upstream.
type ErrInvalidURL struct {
	URL string
}

func (e *ErrInvalidURL) Error() string {
	return fmt.Sprintf("invalid YouTube URL: %q", e.URL)
}

// ErrGeneration indicates the text-generation call itself failed.
// Reported as a 5xx upstream with a generic message.
type ErrGeneration struct {
	Err error
}

func (e *ErrGeneration) Error() string {
	return fmt.Sprintf("course generation failed: %v", e.Err)
}

func (e *ErrGeneration) Unwrap() error { return e.Err }
