// Package template holds the embedded catalogue of generated-file templates
// and the strict renderer that executes them.
package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template is not in the catalogue.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates a required context value was missing.
	ErrMissingTemplateKey = errors.New("template: missing required key")

	// ErrUnexpandedToken indicates a {{...}} token survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")
)

// TemplateError reports a failure to render one catalogue template.
type TemplateError struct {
	Template string
	Field    string // empty when the failure is not tied to one context field
	Err      error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("render %s: field %s: %v", e.Template, e.Field, e.Err)
	}
	return fmt.Sprintf("render %s: %v", e.Template, e.Err)
}

// Unwrap returns the underlying error.
func (e *TemplateError) Unwrap() error {
	return e.Err
}

func missingField(tmpl, field string) *TemplateError {
	return &TemplateError{Template: tmpl, Field: field, Err: ErrMissingTemplateKey}
}
