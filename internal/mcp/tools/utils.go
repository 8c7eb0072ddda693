package tools

import (
	"encoding/json"
	"strings"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

func argString(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return strings.TrimSpace(value)
}

func argBool(args map[string]any, key string, fallback bool) bool {
	if value, ok := args[key].(bool); ok {
		return value
	}
	return fallback
}

// argInt reads a JSON number argument, clamping it to [min, max].
func argInt(args map[string]any, key string, fallback, min, max int) int {
	value := fallback
	if raw, ok := args[key].(float64); ok {
		value = int(raw)
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}

func argStringSlice(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				values = append(values, trimmed)
			}
		}
	}
	return values
}

func responseFormat(args map[string]any) string {
	if argString(args, "response_format") == formatJSON {
		return formatJSON
	}
	return formatMarkdown
}

func mustMarshalIndent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(b)
}
