// Package jsonpath extracts values from JSON documents using JSONPath
// expressions, translated onto gjson's dotted path syntax.
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract returns the value at the given JSONPath expression as a string.
// Supported syntax is the common subset: $.a.b, $.items[0].name, $['key'],
// and $[0]. A missing path is an error.
func Extract(document, path string) (string, error) {
	if document == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}

	result := gjson.Get(document, toGjsonPath(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// ExtractAll resolves a map of name→JSONPath expressions against the
// document. Every resolvable path lands in the result; if any path fails,
// the partial result is returned together with an error naming the
// failures.
func ExtractAll(document string, paths map[string]string) (map[string]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no JSONPath expressions provided")
	}

	values := make(map[string]string, len(paths))
	var failed []string

	for name, path := range paths {
		value, err := Extract(document, path)
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		values[name] = value
	}

	if len(failed) > 0 {
		return values, fmt.Errorf("extraction failed for: %s", strings.Join(failed, "; "))
	}
	return values, nil
}

// toGjsonPath rewrites a JSONPath expression into gjson's path syntax:
// $.users[0].name becomes users.0.name.
func toGjsonPath(path string) string {
	path = strings.TrimPrefix(path, "$")
	if path == "" {
		return "@this"
	}

	// Bracket notation: ['key'] and ["key"] collapse to plain keys,
	// [0] becomes .0.
	replacer := strings.NewReplacer(
		"['", ".", "']", "",
		`["`, ".", `"]`, "",
		"[", ".", "]", "",
	)
	path = replacer.Replace(path)

	path = strings.TrimPrefix(path, ".")
	// Collapse doubled dots left behind by adjacent separators.
	for strings.Contains(path, "..") {
		path = strings.ReplaceAll(path, "..", ".")
	}
	return path
}
