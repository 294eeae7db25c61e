package api

import (
	"errors"
	"fmt"
)

// ErrStatus marks a non-200 upstream response.
var ErrStatus = errors.New("unexpected status")

// TransportError wraps any failure reaching or decoding an upstream
// endpoint. An empty but well-formed response is not a TransportError.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err came from the transport layer.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
