package llm

import (
	"context"
	"fmt"

	"github.com/jfuginay/courseforge-ai/internal/logger"
	"github.com/jfuginay/courseforge-ai/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown generation provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, log, events)
	return WithRetry(logged, cfg.Retry), nil
}
