// Package common defines shared constants and sentinel errors used across
// the portale client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport never reached the server (DNS, refused connection, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// The server rejected the credentials or the session is no longer valid.
	ErrUnauthorized = errors.New("unauthorized")

	// The response body could not be decoded into the expected shape.
	ErrBadPayload = errors.New("unexpected response payload")
)
