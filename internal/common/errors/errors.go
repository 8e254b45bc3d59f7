// Package errors provides standardized error handling for backend calls
// and client-side gating.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Backend call failures. All three collapse into the fail-open
	// fallback at the client boundary.
	ErrCodeNetworkUnreachable ErrorCode = "NETWORK_UNREACHABLE"
	ErrCodeBadStatus          ErrorCode = "BAD_STATUS"
	ErrCodeMalformedBody      ErrorCode = "MALFORMED_BODY"

	// Client-side gating errors surfaced directly to the user.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeNotConnected     ErrorCode = "NOT_CONNECTED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewNetworkUnreachableError creates a retryable transport-level error
// (no response received at all).
func NewNetworkUnreachableError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNetworkUnreachable,
		Message:   "Backend unreachable",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBadStatusError creates a retryable error for a non-2xx response.
func NewBadStatusError(operation string, statusCode int, body string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBadStatus,
		Message:   fmt.Sprintf("Backend returned status %d", statusCode),
		Details:   fmt.Sprintf("operation: %s, body: %s", operation, body),
		Retryable: true,
		Metadata:  map[string]interface{}{"statusCode": statusCode},
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedBodyError creates a non-retryable error for a response body
// that could not be parsed as the expected shape.
func NewMalformedBodyError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedBody,
		Message:   "Backend response body is not valid JSON",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable input validation error.
// The message is user-facing.
func NewValidationFailedError(message, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotConnectedError creates the connectivity-gating error raised when a
// submission is attempted while the monitor reports disconnected.
func NewNotConnectedError(mode string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotConnected,
		Message:   "Backend is not connected",
		Details:   fmt.Sprintf("mode: %s", mode),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsBackendFailure reports whether the error is one of the three backend
// call failures that trigger the fail-open fallback.
func IsBackendFailure(err error) bool {
	stdErr, ok := err.(*StandardError)
	if !ok {
		return false
	}
	switch stdErr.Code {
	case ErrCodeNetworkUnreachable, ErrCodeBadStatus, ErrCodeMalformedBody:
		return true
	default:
		return false
	}
}

// CodeOf extracts the error code, or empty for foreign errors.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Code
	}
	return ""
}
