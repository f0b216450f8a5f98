// Package llm abstracts the text-generation services the course pipeline
// calls. A Provider takes one prompt and returns one text blob; when a
// Schema is attached to the request the provider asks for structured JSON
// output and validates it before returning.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the boundary to a text-generation service.
type Provider interface {
	// Generate sends a single prompt and returns the model's response.
	// Blocking; honors ctx cancellation and deadlines. Callers must not
	// hold shared locks while waiting on it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request is a single-turn generation request. Course generation never
// needs conversation history, so there is none.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user instruction.
	Prompt string

	// Schema, when set, switches the provider to its native structured
	// output mechanism and validates the response against it. When nil
	// the response Content is whatever text the model produced.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero value means
	// provider default.
	Temperature float64
}

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "course-data".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated text. With a Schema on the request this
	// is validated JSON; otherwise it is raw model text and may contain
	// code fences or surrounding prose.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
