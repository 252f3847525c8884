package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration file structure.
type Config struct {
	// Environments defines target environments with base URLs and default headers
	Environments map[string]Environment `json:"environments" yaml:"environments"`

	// Requests defines HTTP request templates
	Requests map[string]Request `json:"requests" yaml:"requests"`

	// Suites defines ordered collections of requests to run together
	Suites map[string]Suite `json:"suites,omitempty" yaml:"suites,omitempty"`
}

// Environment represents a target environment.
type Environment struct {
	// BaseURL is the base URL for all requests in this environment
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Headers are default headers added to all requests in this environment
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Vars are variables available to request templates as {{name}}
	Vars map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// Request represents an HTTP request template.
type Request struct {
	// URL is the request path or absolute URL (may include {{variables}})
	URL string `json:"url" yaml:"url"`

	// Method is the HTTP method (GET, POST, PUT, DELETE)
	Method string `json:"method" yaml:"method"`

	// Headers are request-specific headers
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// QueryParams are URL query parameters
	QueryParams map[string]string `json:"queryParams,omitempty" yaml:"queryParams,omitempty"`

	// Body is the request body, sent as JSON when it is a map or list
	Body interface{} `json:"body,omitempty" yaml:"body,omitempty"`

	// Gzip compresses the request body
	Gzip bool `json:"gzip,omitempty" yaml:"gzip,omitempty"`

	// Timeout overrides the client timeout for this request, e.g. "10s"
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// Extract defines variables to pull out of the response with JSONPath
	Extract map[string]string `json:"extract,omitempty" yaml:"extract,omitempty"`

	// Validate is a JSON Schema the response body must conform to
	Validate map[string]interface{} `json:"validate,omitempty" yaml:"validate,omitempty"`
}

// Suite represents an ordered run of named requests.
type Suite struct {
	// Requests lists request names in execution order
	Requests []string `json:"requests" yaml:"requests"`

	// Vars are suite-level variables, merged over environment variables
	Vars map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// Load reads a configuration file. YAML and JSON are both accepted; the
// extension decides which parser runs.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return &config, nil
}

// ExpandVars substitutes {{name}} placeholders in input with values from
// vars. Unknown placeholders are left in place.
func ExpandVars(input string, vars map[string]string) string {
	result := input
	for name, value := range vars {
		result = strings.ReplaceAll(result, "{{"+name+"}}", value)
	}
	return result
}

// ExpandVarsInMap substitutes placeholders in every value of input.
func ExpandVarsInMap(input, vars map[string]string) map[string]string {
	result := make(map[string]string, len(input))
	for key, value := range input {
		result[key] = ExpandVars(value, vars)
	}
	return result
}
