package extractor

import (
	"errors"
	"fmt"
)

// Sentinel errors for the extraction failure taxonomy.
var (
	// ErrMissingAPIKey indicates that no credential for the model service
	// is configured. It is returned before any network call is attempted.
	ErrMissingAPIKey = errors.New("model service api key is missing")

	// ErrEmptyResponse indicates that the model call succeeded but carried
	// no text payload.
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrUnknownProvider indicates an unrecognized EXTRACTOR_PROVIDER value.
	ErrUnknownProvider = errors.New("unknown extractor provider")
)

// RequestError wraps a transport or service failure from the model call.
type RequestError struct {
	Provider string
	Err      error
}

// Error returns a formatted error message for the failed request.
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s api error: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *RequestError) Unwrap() error { return e.Err }

// ParseError indicates that the model's payload was not valid JSON matching
// the expected five-field shape. Raw carries the offending payload for logs.
type ParseError struct {
	Raw string
	Err error
}

// Error returns a formatted error message for the malformed payload.
func (e *ParseError) Error() string {
	return fmt.Sprintf("model response is not a valid event payload: %v", e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *ParseError) Unwrap() error { return e.Err }

// failureKind classifies an extraction error for metrics labels.
func failureKind(err error) string {
	var parseErr *ParseError
	var reqErr *RequestError
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return "config"
	case errors.Is(err, ErrEmptyResponse):
		return "empty"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &reqErr):
		return "request"
	default:
		return "other"
	}
}
