// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Provides HTTP functionality with exponential backoff for resilient upstream calls

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	coreerrors "parkradar-api/core/errors"
	"parkradar-api/core/interfaces"
)

const (
	defaultMaxAttempts = 3
	baseBackoff        = 200 * time.Millisecond
	userAgent          = "ParkRadarAPI/1.0"
)

// retryableStatuses are upstream statuses worth another attempt. Any
// other non-2xx status fails immediately with the response body attached.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// StandardHTTPClient implements the HTTPClient interface using the
// standard library, with bounded retries and exponential backoff.
type StandardHTTPClient struct {
	client      *http.Client
	maxAttempts int
	logger      interfaces.Logger
}

// NewStandardHTTPClient creates a client whose individual attempts are
// bounded by timeout. The caller-supplied context cancels independently;
// whichever fires first aborts the attempt. logger may be nil.
func NewStandardHTTPClient(timeout time.Duration, logger interfaces.Logger) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxAttempts: defaultMaxAttempts,
		logger:      logger,
	}
}

// Get performs an HTTP GET request with retries. Transport errors,
// per-attempt timeouts and retryable statuses are retried with backoff
// delays of 200ms, 400ms, 800ms, ... up to the attempt cap, after which
// the last error is surfaced. External cancellation pre-empts retries and
// surfaces the context's error. A Response is only ever returned for 2xx.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := baseBackoff << (attempt - 2)
			c.logRetry(attempt, url, delay, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			// External cancellation wins over further retries.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return &httpResponse{
				statusCode: resp.StatusCode,
				body:       resp.Body,
				headers:    resp.Header,
			}, nil
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		upstreamErr := &coreerrors.UpstreamError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Transient:  retryableStatuses[resp.StatusCode],
		}
		if !upstreamErr.Transient {
			return nil, upstreamErr
		}
		lastErr = upstreamErr
	}

	return nil, lastErr
}

func (c *StandardHTTPClient) logRetry(attempt int, url string, delay time.Duration, cause error) {
	if c.logger == nil {
		return
	}
	c.logger.Info("retrying upstream request", map[string]interface{}{
		"attempt": attempt,
		"url":     url,
		"delay":   delay.String(),
		"cause":   fmt.Sprintf("%v", cause),
	})
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
