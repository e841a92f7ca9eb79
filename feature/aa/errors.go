package aa

import (
	"errors"
	"fmt"
)

// ErrInvalidAPIKey is returned on a 401 response.
var ErrInvalidAPIKey = errors.New(
	"invalid API key. Check the configured profile or " +
		"set a valid key with 'which-llm profile create'")

// RateLimitError is returned on a 429 response.
type RateLimitError struct {
	// RetryAfter is the raw Retry-After header value, if any.
	RetryAfter string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter == "" {
		return "rate limit exceeded, try again later"
	}
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// ServerError is returned on any 5xx response.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (HTTP %d), the API may be temporarily unavailable", e.Status)
}

// APIError is returned for any other non-success response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected API response (HTTP %d): %s", e.Status, e.Body)
}
