// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"context"
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// UpstreamError represents a failed response from the parking data
// upstream. Transient marks statuses that are worth retrying (429 and the
// usual 5xx gateway family); everything else is a hard failure surfaced
// immediately with the response body attached.
type UpstreamError struct {
	URL        string
	StatusCode int
	Body       string
	Transient  bool
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error from %s: %d - %s", e.URL, e.StatusCode, e.Body)
}

// ShapeError represents an upstream payload that is not the expected
// JSON array. It is never retried.
type ShapeError struct {
	URL    string
	Detail string
}

// Error implements the error interface
func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected upstream payload from %s: %s", e.URL, e.Detail)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsShape checks if an error is a ShapeError
func IsShape(err error) bool {
	var shapeErr *ShapeError
	return errors.As(err, &shapeErr)
}

// IsCancellation checks if an error stems from context cancellation or an
// expired deadline, regardless of wrapping.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
