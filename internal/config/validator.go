package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

var validMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"DELETE": true,
}

// Validate checks the configuration for structural problems and returns
// every violation found.
func Validate(config *Config) []ValidationError {
	var errors []ValidationError

	if len(config.Environments) == 0 {
		errors = append(errors, ValidationError{
			Path:    "environments",
			Message: "at least one environment is required",
		})
	}

	for name, env := range config.Environments {
		if env.BaseURL == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("environments.%s.baseUrl", name),
				Message: "baseUrl is required",
			})
		}
	}

	if len(config.Requests) == 0 {
		errors = append(errors, ValidationError{
			Path:    "requests",
			Message: "at least one request is required",
		})
	}

	for name, req := range config.Requests {
		if req.Method == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("requests.%s.method", name),
				Message: "method is required",
			})
		} else if !validMethods[strings.ToUpper(req.Method)] {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("requests.%s.method", name),
				Message: fmt.Sprintf("unsupported method %q", req.Method),
			})
		}
	}

	for name, suite := range config.Suites {
		if len(suite.Requests) == 0 {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("suites.%s.requests", name),
				Message: "at least one request is required",
			})
		}
		for i, requestName := range suite.Requests {
			if _, ok := config.Requests[requestName]; !ok {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("suites.%s.requests[%d]", name, i),
					Message: fmt.Sprintf("unknown request %q", requestName),
				})
			}
		}
	}

	return errors
}

// ValidateEnvironment checks that the named environment exists.
func ValidateEnvironment(config *Config, name string) error {
	if _, ok := config.Environments[name]; !ok {
		return fmt.Errorf("environment %q not found in config", name)
	}
	return nil
}

// ValidateRequest checks that the named request exists.
func ValidateRequest(config *Config, name string) error {
	if _, ok := config.Requests[name]; !ok {
		return fmt.Errorf("request %q not found in config", name)
	}
	return nil
}

// ValidateSuite checks that the named suite exists.
func ValidateSuite(config *Config, name string) error {
	if _, ok := config.Suites[name]; !ok {
		return fmt.Errorf("suite %q not found in config", name)
	}
	return nil
}
