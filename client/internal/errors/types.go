// Package errors provides the typed error returned by every SDK call.
// A Kind separates server-reported failures from session expiry, transport
// failures and undecodable responses.
package errors

import (
	"errors"
	"fmt"
)

// Kind determines how a caller should react to an error.
type Kind int

const (
	// KindServer is a non-2xx response with a parseable envelope.
	KindServer Kind = iota

	// KindSessionExpired is a 401 response. The session-expired hook has
	// already run by the time the caller sees it.
	KindSessionExpired

	// KindTransport covers failures before a response arrived (DNS, refused
	// connection, TLS, context cancellation).
	KindTransport

	// KindDecode is a response whose body was not a valid envelope.
	KindDecode
)

// String returns a human-readable representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindServer:
		return "Server"
	case KindSessionExpired:
		return "SessionExpired"
	case KindTransport:
		return "Transport"
	case KindDecode:
		return "Decode"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Sentinels matched by APIError.Is, so callers can use errors.Is without
// inspecting Kind.
var (
	ErrSessionExpired = errors.New("session expired")
	ErrTransport      = errors.New("transport failure")
	ErrDecode         = errors.New("malformed response")
)

// APIError carries the envelope message, the envelope error code and the HTTP
// status of a failed call.
type APIError struct {
	Kind    Kind
	Message string
	Code    string // envelope error.code, empty when absent
	Status  int    // HTTP status code (0 when no response was received)
	Cause   error  // original failure for transport/decode errors
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Code)
	}
	if e.Status > 0 {
		msg = fmt.Sprintf("HTTP %d: %s", e.Status, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for e's kind.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrSessionExpired:
		return e.Kind == KindSessionExpired
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

// As extracts an *APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
