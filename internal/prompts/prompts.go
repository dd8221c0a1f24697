// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompts loads named text templates and fills their placeholders.
// Templates live one per file as <name>.txt and use {placeholder} markers
// substituted by exact-match replacement.
package prompts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrTemplateNotFound is returned when a named template file does not exist.
var ErrTemplateNotFound = errors.New("prompt template not found")

// ErrMissingPlaceholder is returned when a template placeholder has no
// value after substitution.
var ErrMissingPlaceholder = errors.New("missing placeholder value")

// placeholderPattern matches {snake_case} placeholders left in a rendered
// template.
var placeholderPattern = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)

// Load reads the template file <name>.txt from dir and returns its content.
func Load(dir, name string) (string, error) {
	path := filepath.Join(dir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}

// Render substitutes every {key} marker in template with params[key]. A
// placeholder still present after substitution means the caller omitted a
// required parameter; the first such placeholder is reported by name.
func Render(template string, params map[string]string) (string, error) {
	out := template
	for key, value := range params {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	if m := placeholderPattern.FindStringSubmatch(out); m != nil {
		return "", fmt.Errorf("%w: {%s}", ErrMissingPlaceholder, m[1])
	}
	return out, nil
}

// Build loads the named template from dir and renders it in one step.
func Build(dir, name string, params map[string]string) (string, error) {
	tmpl, err := Load(dir, name)
	if err != nil {
		return "", err
	}
	return Render(tmpl, params)
}
