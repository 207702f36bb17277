package spotify

import (
	"errors"
	"fmt"
)

// Common catalog errors that can be checked with errors.Is.
var (
	// ErrAuth is returned when the client-credentials exchange fails or
	// yields no usable token. Callers must not retry silently.
	ErrAuth = errors.New("spotify: authentication failed")

	// ErrNotFound is returned when an identifier does not resolve to a
	// track or playlist, or the API rejected the request.
	ErrNotFound = errors.New("spotify: resource not found")

	// ErrEmptyPlaylist is returned when a playlist contains no usable tracks.
	ErrEmptyPlaylist = errors.New("spotify: playlist has no tracks")

	// ErrResolve is returned when a shortened link cannot be expanded.
	ErrResolve = errors.New("spotify: short link resolution failed")

	// ErrUnrecognizedLink is returned when an expanded link still matches
	// no known catalog pattern.
	ErrUnrecognizedLink = errors.New("spotify: unrecognized link")
)

// CatalogError wraps an error with the resource and identifier that caused it,
// so handlers can log context while matching the underlying sentinel with
// errors.Is.
type CatalogError struct {
	Resource string
	ID       string
	Err      error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("spotify: %s %s: %v", e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("spotify: %s: %v", e.Resource, e.Err)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

func newNotFound(resource, id string) error {
	return &CatalogError{Resource: resource, ID: id, Err: ErrNotFound}
}
