// Package jsonschema validates JSON documents against JSON Schema
// definitions, wrapping santhosh-tekuri/jsonschema.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors collects the individual violations found during a
// validation run.
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "; ")
}

// Validate checks a JSON document against a schema. It returns false with
// a list of violations when the document does not conform; a malformed
// schema or document is reported the same way.
func Validate(document, schema string) (bool, ValidationErrors) {
	compiled, err := compile(schema)
	if err != nil {
		return false, ValidationErrors{err}
	}

	var value interface{}
	if err := json.Unmarshal([]byte(document), &value); err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid JSON: %w", err)}
	}

	if err := compiled.Validate(value); err != nil {
		return false, flatten(err)
	}
	return true, nil
}

func compile(schema string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return compiled, nil
}

// flatten turns the library's nested cause tree into a flat list of
// leaf violations, which read better in CLI output.
func flatten(err error) ValidationErrors {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return ValidationErrors{err}
	}
	if len(verr.Causes) == 0 {
		location := verr.InstanceLocation
		if location == "" {
			location = "$"
		}
		return ValidationErrors{fmt.Errorf("%s: %s", location, verr.Message)}
	}

	var errs ValidationErrors
	for _, cause := range verr.Causes {
		errs = append(errs, flatten(cause)...)
	}
	return errs
}
