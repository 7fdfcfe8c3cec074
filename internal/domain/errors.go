package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")

	// ErrUpstream marks any failure talking to the external FormDesign API
	ErrUpstream = errors.New("upstream request failed")

	// ErrUnrecognizedShape means the upstream payload matched none of the known shapes
	ErrUnrecognizedShape = errors.New("unrecognized response shape")

	// ErrMissingDesignID is returned before any network call when a selected
	// design carries no id-like field
	ErrMissingDesignID = errors.New("selected design has no formDesignId, id or designId")
)

// ValidationError indicates invalid input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string   { return e.Message }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match against ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UpstreamError is a non-2xx answer from the external API
type UpstreamError struct {
	Endpoint   string // Relative endpoint path that was called
	Status     int    // HTTP status code returned upstream
	StatusText string // Reason phrase returned upstream
	Body       string // Response body, truncated
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("External API responded with %d: %s", e.Status, e.StatusText)
}

// Is allows errors.Is() to match against ErrUpstream
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
