package platform

import (
	"errors"
	"fmt"
)

// ErrSessionExpired marks an upstream 401. The caller's session has already
// been invalidated by the time this surfaces.
var ErrSessionExpired = errors.New("platform: session expired")

// NotFoundError reports a referenced vehicle or booking the platform no
// longer knows about.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("platform: %s not found", e.Resource)
	}
	return fmt.Sprintf("platform: %s %s not found", e.Resource, e.ID)
}

// NetworkError wraps transport failures: DNS, refused connections, timeouts.
// The previous UI state is preserved; nothing is retried automatically.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("platform: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx platform response that is neither a 401 nor a 404,
// or a 2xx envelope with success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform: upstream error (status %d): %s", e.StatusCode, e.Message)
}
