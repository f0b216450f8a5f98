package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all generation provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "gemini", "openai", "anthropic", "mock"
	Provider string

	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Retry     RetryConfig

	// Timeout is the maximum duration for a single generation request,
	// retries included. Default: 60s.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// default backend since it is what course generation was built against.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. COURSEFORGE_* variables take priority,
// then the providers' conventional key variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("COURSEFORGE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := firstEnv("COURSEFORGE_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_AI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("COURSEFORGE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := firstEnv("COURSEFORGE_OPENAI_API_KEY", "OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("COURSEFORGE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("COURSEFORGE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := firstEnv("COURSEFORGE_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("COURSEFORGE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic) and returns a Config for the first
// provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := firstEnv("GEMINI_API_KEY", "GOOGLE_AI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("COURSEFORGE_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("COURSEFORGE_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("COURSEFORGE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown generation provider: %q", c.Provider)
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
