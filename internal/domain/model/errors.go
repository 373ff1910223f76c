package model

import "errors"

// Error classes returned by the driven ports. Adapters wrap one of these
// together with the underlying cause so callers can classify with errors.Is.
var (
	// ErrNetwork marks a transport failure reaching the upstream API (DNS,
	// connect, timeout, cancellation).
	ErrNetwork = errors.New("network error")
	// ErrProtocol marks an unexpected response: non-success status,
	// unparsable body, or missing required fields.
	ErrProtocol = errors.New("protocol error")
	// ErrEmptyResult marks a successful call that yielded no usable content.
	ErrEmptyResult = errors.New("no posts")
)
