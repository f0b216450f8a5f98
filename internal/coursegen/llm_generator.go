package coursegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jfuginay/courseforge-ai/internal/course"
	"github.com/jfuginay/courseforge-ai/internal/llm"
	"github.com/jfuginay/courseforge-ai/internal/logger"
)

// LLMGenerator implements Generator using a text-generation provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      *logger.Logger
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, log *logger.Logger) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, log: log}
}

// Generate produces a validated course for the given video URL.
//
// URL validation happens before the provider call; a provider failure
// propagates as *ErrGeneration. Anything wrong with the response itself
// — fenced output, malformed JSON, schema violations, out-of-range
// indices — is logged and replaced with the fallback course so the
// caller is never left with nothing.
func (g *LLMGenerator) Generate(ctx context.Context, videoURL string) (*course.Course, error) {
	if _, ok := ExtractVideoID(videoURL); !ok {
		return nil, &ErrInvalidURL{URL: videoURL}
	}

	ctx = llm.WithPurpose(ctx, "course-gen")

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(videoURL, g.config),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ErrGeneration{Err: err}
	}

	c, err := g.parse(resp.Content)
	if err != nil {
		g.log.Warn("model output rejected, serving fallback course",
			"url", videoURL,
			"reason", err,
		)
		return FallbackCourse(), nil
	}

	return c, nil
}

// parse extracts, schema-checks, unmarshals, and validates the model
// output. Any error here means "use the fallback".
func (g *LLMGenerator) parse(raw json.RawMessage) (*course.Course, error) {
	span, err := ExtractJSON(string(raw))
	if err != nil {
		return nil, err
	}

	if err := CourseSchema.Validate(span); err != nil {
		return nil, err
	}

	var c course.Course
	if err := json.Unmarshal(span, &c); err != nil {
		return nil, fmt.Errorf("unmarshal course: %w", err)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(&c); verr != nil {
			return nil, verr
		}
	}

	return &c, nil
}
