package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNoExample indicates no example name was given
	ErrNoExample = errors.New("no example provided")

	// ErrExampleNotFound indicates the example is not present at the branch
	ErrExampleNotFound = errors.New("example not found")

	// ErrDirectoryFailed indicates the destination could not be created
	ErrDirectoryFailed = errors.New("failed to create directory")

	// ErrDownloadFailed indicates the archive could not be downloaded
	ErrDownloadFailed = errors.New("download failed")

	// ErrExtractFailed indicates the example could not be extracted
	ErrExtractFailed = errors.New("extract failed")

	// ErrEmptySubtree indicates the archive held no entry under the example prefix
	ErrEmptySubtree = errors.New("no files matched the example subtree")

	// ErrCacheMiss indicates a cache miss
	ErrCacheMiss = errors.New("cache miss")

	// ErrTimeout indicates a timeout occurred
	ErrTimeout = errors.New("timeout")

	// ErrRateLimited indicates the remote host throttled the request
	ErrRateLimited = errors.New("rate limited")
)

// AbortError terminates a pipeline run. It names the stage and the status
// token that caused the abort and unwraps to the stage's sentinel error.
type AbortError struct {
	Stage  Stage
	Status string
	Err    error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("%s stage aborted (%s): %v", e.Stage, e.Status, e.Err)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

// NewAbortError creates a new AbortError
func NewAbortError(stage Stage, status fmt.Stringer, err error) *AbortError {
	return &AbortError{
		Stage:  stage,
		Status: status.String(),
		Err:    err,
	}
}

// FetchError represents an unexpected HTTP response
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// IsRetryable checks if an error is worth retrying the whole stage for
func IsRetryable(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.StatusCode {
		case 0, 429, 502, 503, 504:
			return true
		}
		return false
	}

	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTimeout)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
