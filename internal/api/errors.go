package api

import "fmt"

// RemoteError is a 4xx/5xx the API answered with an {"error": "..."}
// payload. Message is surfaced verbatim to the user (it arrives already
// localized, e.g. "Stock insuficiente").
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// TransportError wraps a failure to reach the API at all: DNS, refused
// connection, timeout, or an open circuit breaker.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("api unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError means the API answered 2xx but the body did not
// decode into the expected schema. Untyped data never leaves this package.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed api response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
