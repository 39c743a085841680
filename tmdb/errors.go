package tmdb

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// ErrMalformedURL indicates the request URL could not be constructed
	ErrMalformedURL = errors.New("malformed request URL")
	// ErrTimeout indicates the transport deadline was exceeded
	ErrTimeout = errors.New("request timed out")
	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("unauthorized: invalid API key or session")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrServerError indicates the service failed to handle the request
	ErrServerError = errors.New("tmdb server error")
	// ErrUnknown covers every other failure
	ErrUnknown = errors.New("unknown tmdb error")

	// ErrNoPayload is returned when the payload of a failed envelope is accessed
	ErrNoPayload = errors.New("response has no payload")
	// ErrConfigurationNotLoaded indicates the service configuration has not been loaded
	ErrConfigurationNotLoaded = errors.New("configuration not loaded")
	// ErrImageSizeNotSupported indicates the requested rendition is not in the loaded catalog
	ErrImageSizeNotSupported = errors.New("image size not supported")
	// ErrPartialParse indicates one or more mandatory fields were missing during materialization
	ErrPartialParse = errors.New("partial parse")
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb client configuration")
	// ErrNoSession indicates an account operation without a session id
	ErrNoSession = errors.New("session id is required for account operations")
)

// sentinelFor returns the sentinel error matching a Status
func sentinelFor(s Status) error {
	switch s {
	case StatusMalformedURL:
		return ErrMalformedURL
	case StatusTimeout:
		return ErrTimeout
	case StatusUnauthorized:
		return ErrUnauthorized
	case StatusNotFound:
		return ErrNotFound
	case StatusServerError:
		return ErrServerError
	case StatusUnknownError:
		return ErrUnknown
	default:
		return nil
	}
}

// StatusError represents a failed API call
type StatusError struct {
	Status   Status
	Endpoint string
	// Code and Message carry the service's status_code and status_message when it sent them
	Code    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *StatusError) Error() string {
	var sb strings.Builder
	sb.WriteString("tmdb: ")
	if e.Endpoint != "" {
		sb.WriteString(e.Endpoint)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Status.String())
	if e.Code != 0 {
		fmt.Fprintf(&sb, " (code %d)", e.Code)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Is matches the sentinel error of the Status
func (e *StatusError) Is(target error) bool {
	return target == sentinelFor(e.Status)
}

// Unwrap returns the underlying transport error, if any
func (e *StatusError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response
func (e *StatusError) IsNotFound() bool {
	return e.Status == StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *StatusError) IsUnauthorized() bool {
	return e.Status == StatusUnauthorized
}

// ParseError lists the mandatory fields that were missing while materializing an entity.
// The entity returned alongside it holds every field that could be parsed.
type ParseError struct {
	Entity  string
	Missing []string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("partial parse of %s: missing %s", e.Entity, strings.Join(e.Missing, ", "))
}

// Is reports ErrPartialParse
func (e *ParseError) Is(target error) bool {
	return target == ErrPartialParse
}

// ImageSizeError is returned when a rendition size is absent from the kind's catalog
type ImageSizeError struct {
	Kind      ImageKind
	Size      string
	Supported []string
}

// Error implements the error interface
func (e *ImageSizeError) Error() string {
	return fmt.Sprintf("%s size %q not supported (available: %s)", e.Kind, e.Size, strings.Join(e.Supported, ", "))
}

// Is reports ErrImageSizeNotSupported
func (e *ImageSizeError) Is(target error) bool {
	return target == ErrImageSizeNotSupported
}
