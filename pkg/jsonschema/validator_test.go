package jsonschema

import (
	"strings"
	"testing"
)

const itemSchema = `{
	"type": "object",
	"required": ["id", "name"],
	"properties": {
		"id": {"type": "integer"},
		"name": {"type": "string", "minLength": 1}
	}
}`

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		document string
		valid    bool
	}{
		{"conforming document", `{"id": 1, "name": "widget"}`, true},
		{"missing required field", `{"id": 1}`, false},
		{"wrong type", `{"id": "one", "name": "widget"}`, false},
		{"empty name", `{"id": 1, "name": ""}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errs := Validate(tt.document, itemSchema)
			if valid != tt.valid {
				t.Errorf("Validate = %v (errors: %v), want %v", valid, errs, tt.valid)
			}
			if !tt.valid && len(errs) == 0 {
				t.Error("Expected at least one violation for an invalid document")
			}
		})
	}
}

func TestValidate_BadInputs(t *testing.T) {
	if valid, errs := Validate(`{]`, itemSchema); valid || len(errs) == 0 {
		t.Error("Expected a failure for malformed JSON")
	}
	if valid, errs := Validate(`{}`, `{"type": 42}`); valid || len(errs) == 0 {
		t.Error("Expected a failure for a malformed schema")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	_, errs := Validate(`{"id": "one"}`, itemSchema)
	message := errs.Error()
	if message == "" {
		t.Fatal("Expected a non-empty combined message")
	}
	if len(errs) > 1 && !strings.Contains(message, "; ") {
		t.Errorf("Expected violations joined with a separator, got %q", message)
	}
}
