// Package session holds the credentials a seller session needs between
// requests: the bearer access token, the refresh token, the token type and
// the API key issued at registration.
//
// A Store is a non-durable cache, not a system of record. Clear drops every
// key the store holds, not just the ones named here.
package session

import "context"

// Keys written by login and registration.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyTokenType    = "token_type"
	KeyAPIKey       = "api_key"
)

// Store is the key-value session context injected into the client.
//
// Get returns "" with a nil error for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}
