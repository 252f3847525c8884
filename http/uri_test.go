package http

import (
	"testing"
	"time"
)

func TestBuildAbsolutePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		params   map[string]string
		expected string
	}{
		{
			name:     "bare path without params",
			path:     "users",
			expected: "/users",
		},
		{
			name:     "leading slash preserved",
			path:     "/users",
			expected: "/users",
		},
		{
			name:     "empty path",
			path:     "",
			expected: "/",
		},
		{
			name:     "single param",
			path:     "search",
			params:   map[string]string{"text": "hi"},
			expected: "/search?text=hi",
		},
		{
			name:     "params are sorted and escaped",
			path:     "search",
			params:   map[string]string{"text": "a b", "page": "2"},
			expected: "/search?page=2&text=a+b",
		},
		{
			name:     "path already has a query fragment",
			path:     "items?sort=asc",
			params:   map[string]string{"page": "2"},
			expected: "/items?sort=asc&page=2",
		},
		{
			name:     "query fragment without extra params",
			path:     "items?sort=asc",
			expected: "/items?sort=asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAbsolutePath(tt.path, tt.params)
			if got != tt.expected {
				t.Errorf("BuildAbsolutePath(%q, %v) = %q, want %q", tt.path, tt.params, got, tt.expected)
			}
		})
	}
}

func TestBuildURI(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		path     string
		params   map[string]string
		expected string
	}{
		{
			name:     "host and path joined with a single slash",
			host:     "https://api.example.com",
			path:     "users",
			expected: "https://api.example.com/users",
		},
		{
			name:     "trailing slash on host",
			host:     "https://api.example.com/",
			path:     "/users",
			expected: "https://api.example.com/users",
		},
		{
			name:     "with params",
			host:     "https://api.example.com",
			path:     "users",
			params:   map[string]string{"id": "42"},
			expected: "https://api.example.com/users?id=42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildURI(tt.host, tt.path, tt.params)
			if got != tt.expected {
				t.Errorf("BuildURI(%q, %q, %v) = %q, want %q", tt.host, tt.path, tt.params, got, tt.expected)
			}
		})
	}
}

func TestFormatParamValue(t *testing.T) {
	moment := time.Date(2024, 3, 15, 10, 30, 0, 0, time.FixedZone("CET", 3600))

	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"string", "hi", "hi"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int64", int64(1 << 40), "1099511627776"},
		{"uint", uint(42), "42"},
		// Decimal separator is always ".", whatever the system locale says.
		{"float", 3.14, "3.14"},
		{"float without trailing zeros", 2.50, "2.5"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		// Times normalize to UTC RFC 3339.
		{"time", moment, "2024-03-15T09:30:00Z"},
		{"duration", 1500 * time.Millisecond, "1.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatParamValue(tt.value)
			if got != tt.expected {
				t.Errorf("FormatParamValue(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}
