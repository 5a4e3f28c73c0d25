package intent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseCandidate decodes the model's textual response into a candidate
// record. It first tries the whole response as JSON, then falls back to the
// first balanced brace-delimited span (models often wrap the object in prose
// or markdown fences).
func parseCandidate(response string) (*candidate, error) {
	trimmed := strings.TrimSpace(response)

	if strings.HasPrefix(trimmed, "{") {
		var c candidate
		if err := json.Unmarshal([]byte(trimmed), &c); err == nil {
			return &c, nil
		}
	}

	span := extractJSON(trimmed)
	if span == "" {
		return nil, fmt.Errorf("no JSON object found in model response")
	}

	var c candidate
	if err := json.Unmarshal([]byte(span), &c); err != nil {
		return nil, fmt.Errorf("failed to parse extracted JSON: %w", err)
	}
	return &c, nil
}

// extractJSON returns the first balanced top-level {...} span in s, or ""
// when no balanced span exists.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
