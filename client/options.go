package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/channelgate/channelgate-go/session"
)

// Option configures a Client during construction in New.
//
// Options run in order. The debug transport is installed after all options,
// so WithHTTPClient and WithDebugLogging can be given in any order.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net. Zero disables it.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("http timeout must be >= 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the http.Client. The client is used as is; a
// non-zero Timeout on it is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped at debug level when enabled is true.
//
// Do not enable this option in production environments: dumps include the
// Authorization header and request bodies with credentials.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithSessionStore sets where credentials are read from and written to.
func WithSessionStore(s session.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return errors.New("session store cannot be nil")
		}
		c.store = s
		return nil
	}
}

// WithNavigator sets the navigator used by Logout and by the default
// session-expired handling.
func WithNavigator(n Navigator) Option {
	return func(c *Client) error {
		c.nav = n
		return nil
	}
}

// WithSessionExpiredHandler replaces the default 401 handling (clear the
// session, navigate to LoginRoute). The handler owns the whole reaction:
// the session is not cleared unless it does so.
func WithSessionExpiredHandler(h SessionExpiredHandler) Option {
	return func(c *Client) error {
		c.onExpired = h
		return nil
	}
}

// WithLogger sets the logger for request and session events. The default is
// the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}
