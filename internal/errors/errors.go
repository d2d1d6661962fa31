package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return these instead of HTTP status codes; the API layer checks them
// with `errors.Is()` and maps them to the right response. This keeps business
// logic decoupled from the transport.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation. Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream signifies that the inference API returned a failure or
	// could not be reached. Mapped to 502 Bad Gateway.
	ErrUpstream = errors.New("upstream request failed")

	// ErrInternal signifies an unexpected error on the server. Used to avoid
	// leaking implementation details to the client. Mapped to 500.
	ErrInternal = errors.New("internal server error")
)
