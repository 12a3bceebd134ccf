package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents a structured error response from the Spool API.
// It provides clear information about what went wrong, why it might have happened,
// and how to fix it.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Details    string `json:"details,omitempty"`
}

// Error implements the error interface for APIError.
func (e APIError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s. %s", e.Code, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetails returns a copy of the error with additional details.
func (e APIError) WithDetails(details string) APIError {
	e.Details = details
	return e
}

// =============================================================================
// Request Errors
// =============================================================================

var (
	// ErrEmptyRequest is returned when a request carries neither content nor images.
	ErrEmptyRequest = APIError{
		Code:       "EMPTY_REQUEST",
		Message:    "Nothing to format: content and images are both empty",
		Suggestion: "Provide content text, one or more image descriptors, or both",
	}

	// ErrInvalidJSON is returned when the request body contains invalid JSON.
	ErrInvalidJSON = APIError{
		Code:       "INVALID_JSON",
		Message:    "Request body contains invalid JSON",
		Suggestion: "Check your JSON syntax and ensure all strings are properly quoted",
	}

	// ErrBodyTooLarge is returned when the request body exceeds the configured cap.
	ErrBodyTooLarge = APIError{
		Code:       "BODY_TOO_LARGE",
		Message:    "Request body exceeds the maximum allowed size",
		Suggestion: "Split very long drafts and format them separately, or raise server.max_body_bytes",
	}

	// ErrFormatFailed is returned when thread composition fails unexpectedly.
	ErrFormatFailed = APIError{
		Code:       "FORMAT_FAILED",
		Message:    "Failed to compose the thread",
		Suggestion: "This may be a temporary issue. Try again",
	}
)

// =============================================================================
// HTTP Response Helpers
// =============================================================================

// WriteError writes an APIError as a JSON response with the appropriate status code.
func WriteError(w http.ResponseWriter, statusCode int, err APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(err)
}

// WriteBadRequest writes a 400 Bad Request response with the given error.
func WriteBadRequest(w http.ResponseWriter, err APIError) {
	WriteError(w, http.StatusBadRequest, err)
}

// WritePayloadTooLarge writes a 413 Request Entity Too Large response with the given error.
func WritePayloadTooLarge(w http.ResponseWriter, err APIError) {
	WriteError(w, http.StatusRequestEntityTooLarge, err)
}

// WriteInternalError writes a 500 Internal Server Error response with the given error.
func WriteInternalError(w http.ResponseWriter, err APIError) {
	WriteError(w, http.StatusInternalServerError, err)
}

// NewError creates a custom APIError with the given code, message, and suggestion.
func NewError(code, message, suggestion string) APIError {
	return APIError{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}
