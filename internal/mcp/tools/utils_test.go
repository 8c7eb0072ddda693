package tools

import (
	"reflect"
	"testing"
)

func TestArgString(t *testing.T) {
	args := map[string]any{"title": "  Standup  ", "limit": float64(5)}
	if got := argString(args, "title"); got != "Standup" {
		t.Fatalf("expected trimmed string, got %q", got)
	}
	if got := argString(args, "limit"); got != "" {
		t.Fatalf("non-string argument yields %q", got)
	}
	if got := argString(args, "missing"); got != "" {
		t.Fatalf("missing argument yields %q", got)
	}
}

func TestArgBool(t *testing.T) {
	args := map[string]any{"is_todo": true, "title": "x"}
	if !argBool(args, "is_todo", false) {
		t.Fatal("explicit true lost")
	}
	if !argBool(args, "missing", true) {
		t.Fatal("fallback not applied")
	}
	if argBool(args, "title", false) {
		t.Fatal("non-bool argument must fall back")
	}
}

func TestArgIntClamping(t *testing.T) {
	cases := []struct {
		name string
		args map[string]any
		want int
	}{
		{"missing uses fallback", map[string]any{}, 50},
		{"in range", map[string]any{"limit": float64(25)}, 25},
		{"above max", map[string]any{"limit": float64(500)}, 100},
		{"below min", map[string]any{"limit": float64(0)}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := argInt(tc.args, "limit", 50, 1, 100); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestArgStringSlice(t *testing.T) {
	args := map[string]any{
		"tags": []any{"work", "  urgent  ", "", 7},
	}
	got := argStringSlice(args, "tags")
	want := []string{"work", "urgent"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if argStringSlice(args, "missing") != nil {
		t.Fatal("missing argument must yield nil")
	}
}

func TestResponseFormat(t *testing.T) {
	if got := responseFormat(map[string]any{}); got != formatMarkdown {
		t.Fatalf("default format %q", got)
	}
	if got := responseFormat(map[string]any{"response_format": "json"}); got != formatJSON {
		t.Fatalf("json format %q", got)
	}
	if got := responseFormat(map[string]any{"response_format": "yaml"}); got != formatMarkdown {
		t.Fatalf("unknown format must fall back, got %q", got)
	}
}
