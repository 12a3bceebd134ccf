package cli

import (
	"fmt"
	"strings"
)

// CLIError represents a user-friendly error with context and suggestions.
type CLIError struct {
	Message    string
	Suggestion string
	Cause      error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString("\n\nSuggestion: ")
		sb.WriteString(e.Suggestion)
	}
	return sb.String()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a new CLIError with a message and suggestion.
func NewCLIError(message, suggestion string) *CLIError {
	return &CLIError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// WrapError wraps an existing error with additional context.
func WrapError(cause error, message, suggestion string) *CLIError {
	return &CLIError{
		Message:    message,
		Suggestion: suggestion,
		Cause:      cause,
	}
}

// =============================================================================
// Common CLI Errors
// =============================================================================

// ErrServerConnectionFailed returns an error when the server cannot be reached.
func ErrServerConnectionFailed(cause error) *CLIError {
	return &CLIError{
		Message:    "Cannot connect to the Spool server",
		Suggestion: "Is the server running? Start it with 'spoold', or pass --addr if it listens elsewhere",
		Cause:      cause,
	}
}

// ErrConfigInvalid returns an error for unreadable or invalid configuration.
func ErrConfigInvalid(cause error) *CLIError {
	return &CLIError{
		Message:    "Configuration file is invalid",
		Suggestion: "Check the file for syntax errors, or delete it and run 'spool init' to recreate",
		Cause:      cause,
	}
}

// ErrNothingToFormat returns an error when no content or images were given.
func ErrNothingToFormat() *CLIError {
	return &CLIError{
		Message:    "Nothing to format: no content or images were provided",
		Suggestion: "Pass content as an argument, use --file, pipe it on stdin, or attach --image descriptors",
	}
}

// ErrFileUnreadable returns an error when a content file cannot be read.
func ErrFileUnreadable(path string, cause error) *CLIError {
	return &CLIError{
		Message:    fmt.Sprintf("Failed to read %s", path),
		Suggestion: "Check that the file exists and is readable",
		Cause:      cause,
	}
}
