package client

import (
	"context"
	"path"
	"strings"

	"github.com/channelgate/channelgate-go/client/internal/api"
)

// LoginRoute is where a host application should send the user once the
// session ends.
const LoginRoute = "/login"

// Navigator moves the host application to a route. Browsers redirect,
// CLIs print a hint, servers may do nothing.
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, route string)

// Navigate calls f.
func (f NavigatorFunc) Navigate(ctx context.Context, route string) { f(ctx, route) }

// ResolveRoute places route under basePath, e.g. ("/app", "/login") gives
// "/app/login". An empty basePath leaves route rooted at "/".
func ResolveRoute(basePath, route string) string {
	joined := path.Join("/", basePath, route)
	if strings.HasSuffix(route, "/") && joined != "/" {
		joined += "/"
	}
	return joined
}

// WithBasePath returns a Navigator that resolves routes under basePath
// before handing them to next.
func WithBasePath(basePath string, next Navigator) Navigator {
	return NavigatorFunc(func(ctx context.Context, route string) {
		next.Navigate(ctx, ResolveRoute(basePath, route))
	})
}

// SessionExpiredEvent describes the call that received a 401.
type SessionExpiredEvent struct {
	Method   string
	Endpoint string
	Status   int
}

// IsLoginAttempt reports whether the 401 came from the login endpoint, i.e.
// the credentials were rejected rather than an existing session expiring.
func (e SessionExpiredEvent) IsLoginAttempt() bool {
	return e.Endpoint == api.LoginPath
}

// SessionExpiredHandler reacts to a 401. It runs synchronously, once per
// failing call, before the call returns ErrSessionExpired.
type SessionExpiredHandler func(ctx context.Context, ev SessionExpiredEvent)
