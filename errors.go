package darksky

import (
	"errors"
	"fmt"
)

var (
	// ErrURI marks a request string that could not be parsed into a
	// valid request target.
	ErrURI = errors.New("invalid request uri")
	// ErrTransport marks a failed network call, including timeouts,
	// cancellation, and failures while reading the response body.
	ErrTransport = errors.New("transport failure")
	// ErrDecode marks a response body that is not a valid forecast.
	ErrDecode = errors.New("decoding forecast")
	// ErrFormat marks a failure while writing the request uri.
	ErrFormat = errors.New("formatting request uri")
)

// Error is the single error type returned by the forecast pipeline.
// Kind is always one of ErrURI, ErrTransport, ErrDecode or ErrFormat,
// and Err carries the originating failure.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to [errors.Is] and [errors.As].
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// TransportError wraps err as an [ErrTransport] failure. Adapters use it
// for every network and body read failure. A nil err returns nil.
func TransportError(err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: ErrTransport, Err: err}
}
