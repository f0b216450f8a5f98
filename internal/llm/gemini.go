package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider serves generation requests through the Gemini API. It
// is the default backend: the flash tier is cheap enough to run a full
// course generation per user request.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiProvider{
		client: client,
		model:  resolveModel(cfg.Model, geminiModels),
	}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	config := &genai.GenerateContentConfig{MaxOutputTokens: int32(req.MaxTokens)}
	if req.Temperature > 0 {
		t := float32(req.Temperature)
		config.Temperature = &t
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = toGeminiSchema(req.Schema.Definition)
	}

	contents := []*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: req.Prompt}}}}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyAPIError(apiErr.Code, err)
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}

	content := json.RawMessage(result.Text())
	if req.Schema != nil {
		if err := req.Schema.Validate(content); err != nil {
			return nil, err
		}
	}

	resp := &Response{
		Content:    content,
		Model:      p.model,
		StopReason: geminiStopReason(result),
	}
	if u := result.UsageMetadata; u != nil {
		resp.Usage = Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return resp, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

func geminiStopReason(result *genai.GenerateContentResponse) string {
	if len(result.Candidates) == 0 {
		return "end"
	}
	return normalizeStopReason(string(result.Candidates[0].FinishReason))
}

// toGeminiSchema translates the subset of JSON Schema the course schema
// uses (object/array/scalar types, required, enum, description) into
// the request schema type Gemini wants instead of raw JSON Schema.
func toGeminiSchema(def map[string]any) *genai.Schema {
	s := &genai.Schema{}
	if t, ok := def["type"].(string); ok {
		s.Type = geminiType(t)
	}
	if d, ok := def["description"].(string); ok {
		s.Description = d
	}
	if props, ok := def["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if sub, ok := raw.(map[string]any); ok {
				s.Properties[name] = toGeminiSchema(sub)
			}
		}
	}
	if required, ok := def["required"].([]any); ok {
		for _, r := range required {
			if name, ok := r.(string); ok {
				s.Required = append(s.Required, name)
			}
		}
	}
	if enum, ok := def["enum"].([]any); ok {
		for _, e := range enum {
			if v, ok := e.(string); ok {
				s.Enum = append(s.Enum, v)
			}
		}
	}
	if items, ok := def["items"].(map[string]any); ok {
		s.Items = toGeminiSchema(items)
	}
	return s
}

func geminiType(t string) genai.Type {
	switch t {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
