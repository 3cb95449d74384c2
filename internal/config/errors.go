// Package config reads, validates and writes the project manifest
// (.framework-config.yml) and loads the tool's own settings.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration operations.
var (
	// ErrConfigNotFound indicates no manifest exists at the project root.
	ErrConfigNotFound = errors.New("config: .framework-config.yml not found")

	// ErrInvalidConfig indicates the manifest content is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in a configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	if e.Wrapped == nil {
		return ErrInvalidConfig
	}
	return e.Wrapped
}

func invalid(field, message string, value any) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value, Wrapped: ErrInvalidConfig}
}
