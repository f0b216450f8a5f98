package coursegen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators run on every parsed
	// course. They execute in order; the first failure triggers the
	// fallback course.
	Validators []Validator

	// MinSegments and MaxSegments bound the segment count requested in
	// the prompt.
	MinSegments int
	MaxSegments int

	// MaxTokens is the token budget for the model response. Course JSON
	// runs long, so this is generous.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&TimelineValidator{},
		},
		MinSegments: 5,
		MaxSegments: 8,
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
