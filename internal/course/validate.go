package course

import "fmt"

// ValidationError describes why a course failed structural validation.
type ValidationError struct {
	Field   string // dotted path to the offending field, e.g. "segments[2].questions[0].correct"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("course validation: %s: %s", e.Field, e.Message)
}

// Validate checks the structural invariants the playback layer relies on:
// required top-level fields, a non-empty segment list, and for every
// segment non-empty concepts and questions with exactly four options and
// an in-range correct index.
func (c *Course) Validate() error {
	if c.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if c.Description == "" {
		return &ValidationError{Field: "description", Message: "is required"}
	}
	if c.Duration == "" {
		return &ValidationError{Field: "duration", Message: "is required"}
	}
	if len(c.Segments) == 0 {
		return &ValidationError{Field: "segments", Message: "must be non-empty"}
	}

	for i, seg := range c.Segments {
		if err := seg.validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (s *Segment) validate(idx int) error {
	at := func(field string) string { return fmt.Sprintf("segments[%d].%s", idx, field) }

	if s.Title == "" {
		return &ValidationError{Field: at("title"), Message: "is required"}
	}
	if s.Timestamp == "" {
		return &ValidationError{Field: at("timestamp"), Message: "is required"}
	}
	if len(s.Concepts) == 0 {
		return &ValidationError{Field: at("concepts"), Message: "must be non-empty"}
	}
	if len(s.Questions) == 0 {
		return &ValidationError{Field: at("questions"), Message: "must be non-empty"}
	}

	for qi, q := range s.Questions {
		qat := func(field string) string {
			return fmt.Sprintf("segments[%d].questions[%d].%s", idx, qi, field)
		}
		if q.Prompt == "" {
			return &ValidationError{Field: qat("question"), Message: "is required"}
		}
		if len(q.Options) != OptionCount {
			return &ValidationError{
				Field:   qat("options"),
				Message: fmt.Sprintf("must have exactly %d options, got %d", OptionCount, len(q.Options)),
			}
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return &ValidationError{
				Field:   qat("correct"),
				Message: fmt.Sprintf("index %d out of range [0,%d]", q.Correct, len(q.Options)-1),
			}
		}
		if q.Explanation == "" {
			return &ValidationError{Field: qat("explanation"), Message: "is required"}
		}
	}
	return nil
}
