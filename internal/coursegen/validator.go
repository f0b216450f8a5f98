package coursegen

import (
	"fmt"

	"github.com/jfuginay/courseforge-ai/internal/course"
)

// Validator checks a parsed course for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, for error
	// messages and logging, e.g. "structural", "timeline".
	Name() string

	// Validate checks the course and returns nil if it passes.
	Validate(c *course.Course) *ValidationError
}

// ValidationError describes why a generated course failed validation.
type ValidationError struct {
	Validator string // name of the validator that failed
	Message   string // human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
