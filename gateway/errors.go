package gateway

import "fmt"

// NetworkError means no response reached us at all — the request never
// made it to the backend or the transport died mid-flight.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response from the backend, carrying the
// server-provided message when one was present.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: %d", e.Status)
}

// AuthError is a 401. By the time the caller sees it the session has
// already been invalidated; the only sensible reaction is a redirect
// to login, not a retry.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return "authentication failed: " + e.Message
	}
	return "authentication failed"
}
