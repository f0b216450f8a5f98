package coursegen

import "github.com/jfuginay/courseforge-ai/internal/course"

// StructuralValidator enforces the course invariants playback relies
// on: required fields, non-empty segments, non-empty concepts and
// questions per segment, exactly four options, and in-range correct
// indices.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c *course.Course) *ValidationError {
	if err := c.Validate(); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
		}
	}
	return nil
}

// TimelineValidator checks that segment timestamps are parseable and
// non-decreasing, so playback triggers fire in segment order.
type TimelineValidator struct{}

func (v *TimelineValidator) Name() string { return "timeline" }

func (v *TimelineValidator) Validate(c *course.Course) *ValidationError {
	prev := -1
	for _, seg := range c.Segments {
		secs := seg.StartSeconds()
		if secs < prev {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "segment timestamps must be non-decreasing",
			}
		}
		prev = secs
	}
	return nil
}
