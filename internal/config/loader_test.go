package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
environments:
  staging:
    baseUrl: https://staging.example.com
    headers:
      X-Env: staging
    variables:
      userId: "42"

requests:
  getUser:
    method: GET
    url: /users/{{userId}}
    queryParams:
      full: "true"
    extract:
      userName: $.name
  createItem:
    method: POST
    url: /items
    gzip: true
    body:
      name: widget

suites:
  smoke:
    requests:
      - getUser
      - createItem
`

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Error writing temp config: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", sampleYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	env, ok := cfg.Environments["staging"]
	if !ok {
		t.Fatal("Expected the staging environment")
	}
	if env.BaseURL != "https://staging.example.com" {
		t.Errorf("Unexpected baseUrl %q", env.BaseURL)
	}
	if env.Vars["userId"] != "42" {
		t.Errorf("Unexpected variables %v", env.Vars)
	}

	req, ok := cfg.Requests["createItem"]
	if !ok {
		t.Fatal("Expected the createItem request")
	}
	if req.Method != "POST" || !req.Gzip {
		t.Errorf("Unexpected request %+v", req)
	}

	if len(cfg.Suites["smoke"].Requests) != 2 {
		t.Errorf("Unexpected suite %+v", cfg.Suites["smoke"])
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"environments": {"dev": {"baseUrl": "http://localhost:8080"}},
		"requests": {"ping": {"method": "GET", "url": "/ping"}}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Environments["dev"].BaseURL != "http://localhost:8080" {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}

	path := writeTempConfig(t, "bad.yaml", "requests: [not: a: map")
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}

func TestExpandVars(t *testing.T) {
	vars := map[string]string{"userId": "42", "token": "abc"}

	if got := ExpandVars("/users/{{userId}}", vars); got != "/users/42" {
		t.Errorf("ExpandVars = %q", got)
	}
	if got := ExpandVars("{{unknown}}", vars); got != "{{unknown}}" {
		t.Errorf("Unknown placeholders should stay put, got %q", got)
	}

	expanded := ExpandVarsInMap(map[string]string{"Authorization": "Bearer {{token}}"}, vars)
	if expanded["Authorization"] != "Bearer abc" {
		t.Errorf("ExpandVarsInMap = %v", expanded)
	}
}
