// Package errors provides custom error types for the doclint system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
var As = errors.As

// Common sentinel errors for the doclint system
var (
	// ErrNoDocuments indicates that the scanner found nothing to lint
	ErrNoDocuments = errors.New("no documents found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPattern indicates a glob or regex pattern failed to compile
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidConfig indicates the configuration file could not be used
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownFormat indicates an unrecognized output format name
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownRule indicates an unrecognized checker rule name
	ErrUnknownRule = errors.New("unknown rule")
)

// ParseError represents a failure to parse one document. The engine logs
// these and drops the document; they never abort a run.
type ParseError struct {
	Document string
	Err      error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Document, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(document string, err error) *ParseError {
	return &ParseError{Document: document, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// PatternError represents a pattern that failed to compile
type PatternError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// NewPatternError creates a new PatternError
func NewPatternError(pattern string, err error) *PatternError {
	return &PatternError{Pattern: pattern, Err: err}
}
