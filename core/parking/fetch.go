// ABOUTME: Shared upstream fetch helper for the parking caches
// ABOUTME: Decodes upstream responses and enforces the JSON-array contract

package parking

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	coreerrors "parkradar-api/core/errors"
	"parkradar-api/core/interfaces"
)

// fetchArray GETs url through the injected HTTP client and decodes the
// body as a JSON array. Both the facilities and availability endpoints
// serve arrays; anything else is a hard ShapeError, never retried here.
func fetchArray(ctx context.Context, deps interfaces.Dependencies, url string) ([]interface{}, error) {
	if deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "reading upstream response")
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &coreerrors.ShapeError{URL: url, Detail: "response is not valid JSON"}
	}

	records, ok := payload.([]interface{})
	if !ok {
		return nil, &coreerrors.ShapeError{URL: url, Detail: "expected a JSON array"}
	}

	return records, nil
}
