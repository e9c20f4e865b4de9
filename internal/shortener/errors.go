package shortener

import (
	"errors"
	"fmt"
)

// ErrNoClient is wrapped in a TransportError when Shorten has no client.
var ErrNoClient = errors.New("client is nil")

// APIError is a non-success response that carried a structured message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
}

// TransportError covers every failure without a usable backend message: no
// response, an undecodable body, or a missing token.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
