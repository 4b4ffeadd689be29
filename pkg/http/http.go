package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	DefaultMaxRetries       = 3
	DefaultRateLimitBackoff = time.Second
	DefaultErrorBackoff     = time.Millisecond * 500
)

// RetryingClient wraps an HTTPClient with retries for 429 responses and
// transient transport failures. Rate limits back off linearly per attempt;
// transport errors retry after a short fixed delay.
type RetryingClient struct {
	client           HTTPClient
	rateLimitBackoff time.Duration
	errorBackoff     time.Duration
	maxRetries       int
}

// ClientOption is a function that can be used to configure a RetryingClient
type ClientOption func(*RetryingClient)

// NewRetryingClient creates a new RetryingClient that respects 429 status codes.
// The client can be used concurrently.
func NewRetryingClient(opts ...ClientOption) *RetryingClient {
	c := &RetryingClient{
		client:           http.DefaultClient,
		maxRetries:       DefaultMaxRetries,
		rateLimitBackoff: DefaultRateLimitBackoff,
		errorBackoff:     DefaultErrorBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithMaxRetries sets the maximum number of attempts for the client
func WithMaxRetries(maxRetries int) ClientOption {
	return func(c *RetryingClient) {
		c.maxRetries = maxRetries
	}
}

// WithRateLimitBackoff sets the base backoff applied to 429 responses
func WithRateLimitBackoff(backoff time.Duration) ClientOption {
	return func(c *RetryingClient) {
		c.rateLimitBackoff = backoff
	}
}

// WithErrorBackoff sets the delay applied before retrying a transport error
func WithErrorBackoff(backoff time.Duration) ClientOption {
	return func(c *RetryingClient) {
		c.errorBackoff = backoff
	}
}

// WithHTTPClient sets the http client to use for the client
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *RetryingClient) {
		c.client = client
	}
}

// Do executes the HTTP request, retrying rate limits and transport errors.
// This is a blocking call until a request completes or the attempts are exhausted.
// If the maximum number of attempts is reached on rate limits, the last response is returned.
func (c *RetryingClient) Do(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		resp, err = c.client.Do(req)
		if err != nil {
			if attempt == c.maxRetries-1 {
				return nil, err
			}
			sleep(c.errorBackoff)
			continue
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		retryAfter := c.getRetryAfter(resp, attempt)
		resp.Body.Close()
		sleep(retryAfter)
	}

	if err != nil {
		return nil, err
	}

	return resp, fmt.Errorf("rate limit exceeded after %d attempts", c.maxRetries)
}

// getRetryAfter calculates the appropriate retry delay for a 429 response.
// A Retry-After header wins; otherwise back off linearly with the attempt number.
func (c *RetryingClient) getRetryAfter(resp *http.Response, attempt int) time.Duration {
	retryAfterHeader := resp.Header.Get("Retry-After")

	if retryAfterHeader != "" {
		seconds, err := strconv.Atoi(retryAfterHeader)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	return time.Duration(attempt+1) * c.rateLimitBackoff
}

func sleep(d time.Duration) {
	ticker := time.NewTicker(d)
	<-ticker.C
	ticker.Stop()
}
