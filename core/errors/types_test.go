package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "lat", Message: "must be between -90 and 90"}

	expected := "validation error on field 'lat': must be between -90 and 90"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestUpstreamError_Error(t *testing.T) {
	err := &UpstreamError{
		URL:        "https://example.com/facilities",
		StatusCode: 500,
		Body:       "internal error",
		Transient:  true,
	}

	expected := "upstream error from https://example.com/facilities: 500 - internal error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestShapeError_Error(t *testing.T) {
	err := &ShapeError{URL: "https://example.com/availability", Detail: "expected JSON array"}

	expected := "unexpected upstream payload from https://example.com/availability: expected JSON array"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestIsUpstream(t *testing.T) {
	upstreamErr := &UpstreamError{URL: "u", StatusCode: 404, Body: "missing"}

	if !IsUpstream(upstreamErr) {
		t.Error("IsUpstream should return true for UpstreamError")
	}
	if !IsUpstream(fmt.Errorf("fetch failed: %w", upstreamErr)) {
		t.Error("IsUpstream should see through wrapping")
	}
	if IsUpstream(errors.New("other")) {
		t.Error("IsUpstream should return false for other errors")
	}
}

func TestIsShape(t *testing.T) {
	shapeErr := &ShapeError{URL: "u", Detail: "not an array"}

	if !IsShape(shapeErr) {
		t.Error("IsShape should return true for ShapeError")
	}
	if IsShape(&UpstreamError{}) {
		t.Error("IsShape should return false for UpstreamError")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "radius"}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(errors.New("other")) {
		t.Error("IsValidation should return false for other errors")
	}
}

func TestIsCancellation(t *testing.T) {
	if !IsCancellation(context.Canceled) {
		t.Error("IsCancellation should return true for context.Canceled")
	}
	if !IsCancellation(fmt.Errorf("fetch: %w", context.DeadlineExceeded)) {
		t.Error("IsCancellation should see through wrapping of DeadlineExceeded")
	}
	if IsCancellation(errors.New("other")) {
		t.Error("IsCancellation should return false for other errors")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("base")
	wrapped := WrapError(base, "fetching facilities")
	if wrapped.Error() != "fetching facilities: base" {
		t.Errorf("WrapError produced %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to base")
	}
}
