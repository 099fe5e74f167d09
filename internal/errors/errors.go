// Package apperrors provides domain-specific error types for the datecalc application.
// These error types include contextual information to aid debugging and error reporting.
package apperrors

import "fmt"

// ConfigurationError represents configuration-related errors.
// It includes the configuration file path and specific key that caused the error.
type ConfigurationError struct {
	ConfigPath string // Path to the configuration file
	Key        string // Configuration key that caused the error
	Err        error  // Underlying error
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration error in %s (key: %s): %v", e.ConfigPath, e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %v", e.ConfigPath, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ParseError represents a date string whose year, month or day part could not
// be read as an unsigned decimal integer.
type ParseError struct {
	Input string // Raw date string as given on the command line
	Field string // Date part that failed ("year", "month" or "day")
	Err   error  // Underlying error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("cannot parse date %q (field: %s): %v", e.Input, e.Field, e.Err)
	}
	return fmt.Sprintf("cannot parse date %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError is returned by the opt-in strict checks when an input is
// well-formed enough to read but breaks a documented input assumption.
type ValidationError struct {
	Input  string // Offending input (a date string or a "from - till" pair)
	Reason string // Human readable reason
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}
