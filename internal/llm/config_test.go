package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"COURSEFORGE_LLM_PROVIDER",
		"COURSEFORGE_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_AI_API_KEY",
		"COURSEFORGE_OPENAI_API_KEY", "OPENAI_API_KEY",
		"COURSEFORGE_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("default gemini model = %q", cfg.Gemini.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default max attempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("COURSEFORGE_LLM_PROVIDER", "anthropic")
	t.Setenv("COURSEFORGE_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("COURSEFORGE_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("model = %q", cfg.Anthropic.Model)
	}
}

func TestConfigFromEnv_ConventionalKeyFallback(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("gemini key = %q, want g-key", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("discovery should fail with no keys set")
	}

	t.Setenv("OPENAI_API_KEY", "o-key")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("discovery failed with OPENAI_API_KEY set")
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "o-key" {
		t.Errorf("discovered %q / %q", cfg.Provider, cfg.OpenAI.APIKey)
	}

	// Gemini outranks OpenAI.
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Errorf("expected gemini to win discovery, got %q", cfg.Provider)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("gemini without API key should fail validation")
	}

	cfg.Gemini.APIKey = "g-key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider should not need a key: %v", err)
	}

	cfg.Provider = "watson"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider should fail validation")
	}
}
