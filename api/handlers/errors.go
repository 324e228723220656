// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"parkradar-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	// A request that ran out its overall deadline while waiting for the
	// upstream maps to a gateway timeout.
	if errors.IsCancellation(err) {
		return huma.Error504GatewayTimeout("Upstream request timed out", err)
	}

	if errors.IsShape(err) {
		return huma.Error502BadGateway("Upstream returned an unexpected payload", err)
	}

	var upstreamErr *errors.UpstreamError
	if stderrors.As(err, &upstreamErr) {
		if upstreamErr.Transient {
			return huma.Error503ServiceUnavailable("Upstream temporarily unavailable", err)
		}
		return huma.Error502BadGateway("Upstream request failed", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
