package configkit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingFiles indicates the first instantiation for a type was
	// attempted without both file paths.
	ErrMissingFiles = errors.New("first instantiation requires json file and schema file")

	// ErrNotInitialized indicates an operation that needs a live instance
	// (such as reload) ran before first construction.
	ErrNotInitialized = errors.New("configuration not initialized")

	// ErrKeyNotFound indicates a dot-notation path did not resolve and no
	// default was supplied.
	ErrKeyNotFound = errors.New("configuration key not found")

	// ErrParse indicates a document or schema file held malformed content.
	ErrParse = errors.New("configuration parse failed")

	// ErrValidation indicates schema validation rejected a document.
	// ValidationError values match it via errors.Is.
	ErrValidation = errors.New("configuration does not match schema")

	// ErrReload wraps any failure during an explicit reload. The
	// previously published configuration stays intact.
	ErrReload = errors.New("configuration reload failed")

	// ErrFileSize indicates a file exceeded the configured size limit.
	ErrFileSize = errors.New("configuration file exceeds maximum size")
)

// Violation describes one schema violation at a document location.
type Violation struct {
	Path    string // JSON pointer into the document ("" for the root)
	Message string
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// ValidationError carries the full set of violations from one schema
// validation run.
type ValidationError struct {
	File       string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	descs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		descs[i] = v.String()
	}
	return fmt.Sprintf("configuration '%s' does not match schema: %s", e.File, strings.Join(descs, "; "))
}

// Is reports ErrValidation so callers can classify without unwrapping
// the violation list.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
