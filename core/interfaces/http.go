package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests against the
// parking data upstream. This abstraction allows for easy mocking in tests
// and switching between client implementations (retrying, plain, etc.)
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Implementations only ever return a Response for 2xx results: retry
	// exhaustion, hard upstream statuses and transport failures all
	// surface as errors.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses, allowing client
// implementations to provide their own response types.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller is responsible for
	// closing it.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or an empty
	// string if absent. Header names are case-insensitive.
	Header(key string) string
}
