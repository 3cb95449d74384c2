// Package project generates pytest automation projects: the initial tree
// written by Initialize and the page objects and tests added afterwards.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrDirectoryConflict indicates the target directory exists and is not empty.
	ErrDirectoryConflict = errors.New("project: target directory exists and is not empty")

	// ErrFeatureDisabled indicates an artifact needs a feature the project did not enable.
	ErrFeatureDisabled = errors.New("project: feature not enabled")

	// ErrInvalidOptions indicates missing or malformed generation options.
	ErrInvalidOptions = errors.New("project: invalid options")
)

// ConflictError reports the path that blocked generation.
type ConflictError struct {
	Path string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("directory %q already exists and is not empty; use --force to overwrite", e.Path)
}

// Unwrap returns ErrDirectoryConflict.
func (e *ConflictError) Unwrap() error {
	return ErrDirectoryConflict
}
