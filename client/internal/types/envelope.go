package types

import (
	"errors"
	"fmt"

	apierrors "github.com/channelgate/channelgate-go/client/internal/errors"
)

// ErrorBody is the optional error object carried by a failed envelope.
type ErrorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Envelope is the uniform response wrapper returned by every endpoint.
// Data is nil when the backend sent `null` or omitted it.
type Envelope[T any] struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *T         `json:"data"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrNoData is returned by Result when a successful envelope carries no payload.
var ErrNoData = errors.New("envelope has no data")

// Result returns the payload of a successful envelope. The client never calls
// it; it exists for callers that want the data or an error in one step.
func (e *Envelope[T]) Result() (T, error) {
	var zero T
	if e == nil {
		return zero, ErrNoData
	}
	if !e.Success {
		msg := e.Message
		if msg == "" {
			msg = apierrors.FallbackMessage
		}
		if e.Error != nil && e.Error.Code != "" {
			return zero, fmt.Errorf("%s (%s)", msg, e.Error.Code)
		}
		return zero, errors.New(msg)
	}
	if e.Data == nil {
		return zero, ErrNoData
	}
	return *e.Data, nil
}
