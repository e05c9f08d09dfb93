package client

import (
	"errors"

	apierrors "github.com/channelgate/channelgate-go/client/internal/errors"
	"github.com/channelgate/channelgate-go/client/internal/types"
)

// APIError is the error type returned by every call that reached the
// request stage.
type APIError = apierrors.APIError

// ErrorKind classifies an APIError.
type ErrorKind = apierrors.Kind

const (
	KindServer         = apierrors.KindServer
	KindSessionExpired = apierrors.KindSessionExpired
	KindTransport      = apierrors.KindTransport
	KindDecode         = apierrors.KindDecode
)

// Sentinels usable with errors.Is.
var (
	ErrSessionExpired = apierrors.ErrSessionExpired
	ErrTransport      = apierrors.ErrTransport
	ErrDecode         = apierrors.ErrDecode
	ErrNoData         = types.ErrNoData
)

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) { return apierrors.As(err) }

// IsSessionExpired reports whether err came from a 401 response.
func IsSessionExpired(err error) bool { return errors.Is(err, ErrSessionExpired) }
