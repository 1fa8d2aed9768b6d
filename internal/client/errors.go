package client

import "fmt"

// NetworkError is a transport-level failure reaching the backend.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching chunks for %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// BackendError means the backend was reachable but returned a failure status.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// MalformedResponseError means the response body violates the extract
// contract (missing or wrong-shaped text_chunks).
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed extract response: " + e.Reason
}
