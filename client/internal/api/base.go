package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apierrors "github.com/channelgate/channelgate-go/client/internal/errors"
	"github.com/channelgate/channelgate-go/client/internal/types"
	"github.com/channelgate/channelgate-go/session"
)

// RequestIDHeader carries a per-request UUID for log correlation.
const RequestIDHeader = "X-Request-ID"

// UnauthorizedEvent describes the call that received a 401.
type UnauthorizedEvent struct {
	Method   string
	Endpoint string
	Status   int
}

// Observer receives the outcome of every round trip. code is the HTTP status
// or 0 when no response arrived.
type Observer func(method string, code int, elapsed time.Duration)

// Requester issues JSON requests against BaseURL and normalizes responses
// into envelopes. It is safe for concurrent use if its fields are not
// mutated after construction.
type Requester struct {
	BaseURL string
	HTTP    types.HTTPClient
	Session session.Store
	Logger  zerolog.Logger

	// OnUnauthorized runs once per 401 response, before the error is returned.
	OnUnauthorized func(ctx context.Context, ev UnauthorizedEvent)
	// Observe is optional.
	Observe Observer
}

// Get issues a GET and decodes the envelope.
func Get[T any](ctx context.Context, r *Requester, endpoint string) (*types.Envelope[T], error) {
	return do[T](ctx, r, http.MethodGet, endpoint, nil)
}

// Post issues a POST; body is JSON-encoded unless it is nil.
func Post[T any](ctx context.Context, r *Requester, endpoint string, body any) (*types.Envelope[T], error) {
	return do[T](ctx, r, http.MethodPost, endpoint, body)
}

// Put issues a PUT; body is JSON-encoded unless it is nil.
func Put[T any](ctx context.Context, r *Requester, endpoint string, body any) (*types.Envelope[T], error) {
	return do[T](ctx, r, http.MethodPut, endpoint, body)
}

// Delete issues a DELETE and decodes the envelope.
func Delete[T any](ctx context.Context, r *Requester, endpoint string) (*types.Envelope[T], error) {
	return do[T](ctx, r, http.MethodDelete, endpoint, nil)
}

func do[T any](ctx context.Context, r *Requester, method, endpoint string, body any) (*types.Envelope[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, apierrors.NewNetworkError(err)
	}

	var reader io.Reader
	if !isNilBody(body) {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, r.BaseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%s %s: build request: %w", method, endpoint, err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)
	if err := r.authorize(ctx, httpReq); err != nil {
		return nil, err
	}

	logger := r.Logger.With().
		Str("method", method).
		Str("endpoint", endpoint).
		Str("request_id", requestID).
		Logger()

	start := time.Now()
	resp, err := r.HTTP.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		r.observe(method, 0, elapsed)
		logger.Debug().Err(err).Dur("elapsed", elapsed).Msg("request failed")
		return nil, apierrors.NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()
	r.observe(method, resp.StatusCode, elapsed)
	logger.Debug().Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("request completed")

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, r.unauthorized(ctx, method, endpoint, resp)
	}

	if resp.StatusCode == http.StatusNoContent {
		return &types.Envelope[T]{Success: true}, nil
	}

	var env types.Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, apierrors.NewDecodeError(resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierrors.NewHTTPError(resp.StatusCode, env.Message, errorCode(env.Error))
	}
	return &env, nil
}

// authorize attaches the bearer token when the session holds one. With no
// token the header is left unset, never sent empty.
func (r *Requester) authorize(ctx context.Context, req *http.Request) error {
	if r.Session == nil {
		return nil
	}
	token, err := r.Session.Get(ctx, session.KeyAccessToken)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func (r *Requester) unauthorized(ctx context.Context, method, endpoint string, resp *http.Response) error {
	var env types.Envelope[json.RawMessage]
	// A 401 body is best effort; the session expires either way.
	_ = json.NewDecoder(resp.Body).Decode(&env)

	r.Logger.Warn().
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("session expired")

	if r.OnUnauthorized != nil {
		r.OnUnauthorized(ctx, UnauthorizedEvent{Method: method, Endpoint: endpoint, Status: resp.StatusCode})
	}
	return apierrors.NewHTTPError(resp.StatusCode, env.Message, errorCode(env.Error))
}

func (r *Requester) observe(method string, code int, elapsed time.Duration) {
	if r.Observe != nil {
		r.Observe(method, code, elapsed)
	}
}

func errorCode(b *types.ErrorBody) string {
	if b == nil {
		return ""
	}
	return b.Code
}

// isNilBody reports whether body should be sent as "no body". A typed nil
// pointer, map or slice counts as absent so callers can pass optional
// payloads without a separate branch.
func isNilBody(body any) bool {
	if body == nil {
		return true
	}
	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// ErrEmptyID is returned when a path parameter is blank.
var ErrEmptyID = errors.New("id cannot be empty")
