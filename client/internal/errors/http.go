package errors

import "net/http"

const (
	// FallbackMessage is used when a failed envelope carries no message.
	FallbackMessage = "An error occurred"

	// NetworkMessage is the user-facing message for transport and decode
	// failures. The original error stays reachable through Unwrap.
	NetworkMessage = "Network error. Please check your connection."
)

// NewHTTPError builds the error for a non-2xx response whose envelope was
// decoded. message and code come from the envelope and may be empty.
func NewHTTPError(statusCode int, message, code string) *APIError {
	kind := KindServer
	if statusCode == http.StatusUnauthorized {
		kind = KindSessionExpired
	}
	if message == "" {
		message = FallbackMessage
	}
	return &APIError{
		Kind:    kind,
		Message: message,
		Code:    code,
		Status:  statusCode,
	}
}

// NewNetworkError wraps a failure that happened before a response arrived.
func NewNetworkError(err error) *APIError {
	return &APIError{
		Kind:    KindTransport,
		Message: NetworkMessage,
		Cause:   err,
	}
}

// NewDecodeError wraps a body that could not be decoded as an envelope.
// statusCode is kept so callers can still see what the server answered.
func NewDecodeError(statusCode int, err error) *APIError {
	return &APIError{
		Kind:    KindDecode,
		Message: NetworkMessage,
		Status:  statusCode,
		Cause:   err,
	}
}
