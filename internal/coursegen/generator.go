// Package coursegen turns a YouTube video URL into a validated course:
// build a prompt, call the text-generation provider, extract the JSON
// object from the raw response, validate it, and fall back to a
// deterministic minimal course when the model's output cannot be used.
package coursegen

import (
	"context"

	"github.com/jfuginay/courseforge-ai/internal/course"
)

// Generator produces a course for a video URL.
type Generator interface {
	// Generate returns a validated course for the given video URL.
	// It fails with *ErrInvalidURL before any provider call when the URL
	// is not a recognized YouTube link, and with *ErrGeneration when the
	// provider call itself fails. A provider response that cannot be
	// parsed or validated is replaced by the fallback course — parse
	// failures never reach the caller.
	Generate(ctx context.Context, videoURL string) (*course.Course, error)
}
