package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/channelgate/channelgate-go/client/internal/types"
	"github.com/channelgate/channelgate-go/session"
)

const (
	pathRegister   = "/api/sellers/register"
	pathLogin      = "/api/sellers/login"
	pathProfile    = "/api/sellers/me"
	pathStats      = "/api/sellers/stats"
	pathStripeKeys = "/api/sellers/stripe-keys"
)

// LoginPath is the endpoint whose 401 means "bad credentials" rather than
// "session expired". Exposed so the session-expired hook can tell them apart.
const LoginPath = pathLogin

// Register creates a seller account. On success only the API key is
// persisted; registration does not establish a session.
func Register(ctx context.Context, r *Requester, req types.RegisterRequest) (*types.Envelope[types.RegistrationData], error) {
	env, err := Post[types.RegistrationData](ctx, r, pathRegister, req)
	if err != nil {
		return nil, err
	}
	if env.Success && env.Data != nil {
		if err := r.Session.Set(ctx, session.KeyAPIKey, env.Data.APIKey); err != nil {
			return env, fmt.Errorf("register: persist api key: %w", err)
		}
	}
	return env, nil
}

// Login authenticates a seller and persists the access token, refresh token
// and token type. Other session keys are left untouched.
func Login(ctx context.Context, r *Requester, req types.LoginRequest) (*types.Envelope[types.AuthTokens], error) {
	env, err := Post[types.AuthTokens](ctx, r, pathLogin, req)
	if err != nil {
		return nil, err
	}
	if env.Success && env.Data != nil {
		kv := [][2]string{
			{session.KeyAccessToken, env.Data.AccessToken},
			{session.KeyRefreshToken, env.Data.RefreshToken},
			{session.KeyTokenType, env.Data.TokenType},
		}
		for _, p := range kv {
			if err := r.Session.Set(ctx, p[0], p[1]); err != nil {
				return env, fmt.Errorf("login: persist %s: %w", p[0], err)
			}
		}
	}
	return env, nil
}

// IsAuthenticated reports whether the session holds an access token. It does
// not check the token's validity.
func IsAuthenticated(ctx context.Context, store session.Store) (bool, error) {
	token, err := store.Get(ctx, session.KeyAccessToken)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// GetProfile returns the authenticated seller.
func GetProfile(ctx context.Context, r *Requester) (*types.Envelope[types.Seller], error) {
	return Get[types.Seller](ctx, r, pathProfile)
}

// GetStats returns channel, member and revenue totals.
func GetStats(ctx context.Context, r *Requester) (*types.Envelope[types.SellerStats], error) {
	return Get[types.SellerStats](ctx, r, pathStats)
}

// UpdateStripeKeys stores the seller's own Stripe credentials.
func UpdateStripeKeys(ctx context.Context, r *Requester, req types.StripeKeysRequest) (*types.Envelope[json.RawMessage], error) {
	return Post[json.RawMessage](ctx, r, pathStripeKeys, req)
}
