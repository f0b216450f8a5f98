package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var personSchema = &Schema{
	Name: "test-person",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "integer", "minimum": 0},
		},
		"required": []any{"name", "age"},
	},
}

func TestSchemaValidate_OK(t *testing.T) {
	raw := json.RawMessage(`{"name": "Ada", "age": 36}`)
	if err := personSchema.Validate(raw); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
}

func TestSchemaValidate_Failures(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "hello there"},
		{"missing required", `{"name": "Ada"}`},
		{"wrong type", `{"name": "Ada", "age": "old"}`},
		{"constraint violation", `{"name": "Ada", "age": -1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := personSchema.Validate(json.RawMessage(tc.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected *ErrInvalidResponse, got %T", err)
			}
			if string(inv.Content) != tc.raw {
				t.Error("error does not carry the offending content")
			}
		})
	}
}

func TestSchemaValidate_CachesCompiledSchema(t *testing.T) {
	raw := json.RawMessage(`{"name": "Ada", "age": 1}`)
	for range 3 {
		if err := personSchema.Validate(raw); err != nil {
			t.Fatalf("repeat validation failed: %v", err)
		}
	}
	if _, ok := schemaCache.Load(personSchema.Name); !ok {
		t.Error("compiled schema was not cached")
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(t.Context(), "course-gen")
	if got := PurposeFrom(ctx); got != "course-gen" {
		t.Errorf("PurposeFrom = %q, want course-gen", got)
	}
	if got := PurposeFrom(t.Context()); got != "unknown" {
		t.Errorf("PurposeFrom without purpose = %q, want unknown", got)
	}
}
