package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Environments: map[string]Environment{
			"dev": {BaseURL: "http://localhost:8080"},
		},
		Requests: map[string]Request{
			"ping": {Method: "GET", URL: "/ping"},
		},
		Suites: map[string]Suite{
			"smoke": {Requests: []string{"ping"}},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if errs := Validate(validConfig()); len(errs) != 0 {
		t.Errorf("Expected no validation errors, got %v", errs)
	}
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		pathHas string
	}{
		{
			name:    "no environments",
			mutate:  func(c *Config) { c.Environments = nil },
			pathHas: "environments",
		},
		{
			name: "missing baseUrl",
			mutate: func(c *Config) {
				c.Environments["dev"] = Environment{}
			},
			pathHas: "baseUrl",
		},
		{
			name:    "no requests",
			mutate:  func(c *Config) { c.Requests = nil },
			pathHas: "requests",
		},
		{
			name: "missing method",
			mutate: func(c *Config) {
				c.Requests["ping"] = Request{URL: "/ping"}
			},
			pathHas: "requests.ping.method",
		},
		{
			name: "unsupported method",
			mutate: func(c *Config) {
				c.Requests["ping"] = Request{Method: "PATCH", URL: "/ping"}
			},
			pathHas: "requests.ping.method",
		},
		{
			name: "suite references unknown request",
			mutate: func(c *Config) {
				c.Suites["smoke"] = Suite{Requests: []string{"nope"}}
			},
			pathHas: "suites.smoke.requests[0]",
		},
		{
			name: "empty suite",
			mutate: func(c *Config) {
				c.Suites["smoke"] = Suite{}
			},
			pathHas: "suites.smoke.requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			errs := Validate(cfg)
			if len(errs) == 0 {
				t.Fatal("Expected validation errors")
			}

			found := false
			for _, err := range errs {
				if strings.Contains(err.Path, tt.pathHas) {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected an error at path containing %q, got %v", tt.pathHas, errs)
			}
		})
	}
}

func TestValidateNamedEntries(t *testing.T) {
	cfg := validConfig()

	if err := ValidateEnvironment(cfg, "dev"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := ValidateEnvironment(cfg, "prod"); err == nil {
		t.Error("Expected an error for an unknown environment")
	}
	if err := ValidateRequest(cfg, "nope"); err == nil {
		t.Error("Expected an error for an unknown request")
	}
	if err := ValidateSuite(cfg, "nope"); err == nil {
		t.Error("Expected an error for an unknown suite")
	}
}
