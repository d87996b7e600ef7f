package api

import "fmt"

// Error types for the api package
type (
	// RequestError represents a non-2xx response from the backend. Detail
	// carries the human-readable message from the `{"detail": ...}` error
	// body when the backend supplied one.
	RequestError struct {
		StatusCode int
		Detail     string
	}

	// ConnectionError represents a request that never completed, such as a
	// refused connection or a timeout.
	ConnectionError struct {
		Message string
		Err     error
	}

	// DecodingError represents a 2xx response whose body could not be
	// decoded.
	DecodingError struct {
		Message string
		Err     error
	}
)

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to reach backend: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("failed to reach backend: %s", e.Message)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *DecodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode backend response: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("failed to decode backend response: %s", e.Message)
}

func (e *DecodingError) Unwrap() error { return e.Err }
