package llm

import "net/http"

// Model aliases let config name a model by capability tier instead of a
// dated vendor ID. Unknown names pass through untouched, so a full
// vendor ID in config also works.
var (
	geminiModels = map[string]string{
		"gemini-flash": "gemini-2.0-flash",
		"gemini-pro":   "gemini-2.0-pro",
	}

	openaiModels = map[string]string{
		"gpt-4o":      "gpt-4o",
		"gpt-4o-mini": "gpt-4o-mini",
	}

	anthropicModels = map[string]string{
		"claude-sonnet": "claude-sonnet-4-20250514",
		"claude-haiku":  "claude-haiku-4-5-20251001",
	}
)

func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

// normalizeStopReason folds each vendor's finish label into the two
// values Response promises: "end" or "max_tokens". Only the truncation
// labels matter; everything else counts as a normal stop.
func normalizeStopReason(vendor string) string {
	switch vendor {
	case "MAX_TOKENS", "length", "max_tokens":
		return "max_tokens"
	default:
		return "end"
	}
}

// classifyAPIError buckets a vendor HTTP error by status code: 429
// becomes a rate limit, everything else an outage. Finer distinctions
// would not change what the retry layer does with them.
func classifyAPIError(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
