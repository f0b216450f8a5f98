package coursegen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls the first balanced JSON object out of raw model
// text. It strips surrounding markdown code fences, then scans for the
// first '{' and its matching close brace, respecting strings and escape
// sequences. Returns an error when no balanced object is found.
func ExtractJSON(text string) (json.RawMessage, error) {
	cleaned := stripCodeFences(strings.TrimSpace(text))

	start := strings.IndexByte(cleaned, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(cleaned); i++ {
		c := cleaned[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return json.RawMessage(cleaned[start : i+1]), nil
			}
		}
	}

	return nil, fmt.Errorf("unbalanced JSON object in response")
}

// stripCodeFences removes a leading ```json (or bare ```) fence and a
// trailing ``` fence when present.
func stripCodeFences(text string) string {
	if strings.HasPrefix(text, "```") {
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			text = text[idx+1:]
		} else {
			text = strings.TrimPrefix(text, "```json")
			text = strings.TrimPrefix(text, "```")
		}
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
