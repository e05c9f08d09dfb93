package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/channelgate/channelgate-go/client/internal/api"
	"github.com/channelgate/channelgate-go/internal/config"
	"github.com/channelgate/channelgate-go/session"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the channelgate backend. Every call returns the backend's
// envelope unmodified; checking Success is the caller's job.
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	logger  zerolog.Logger
	debug   bool

	nav       Navigator
	onExpired SessionExpiredHandler

	req *api.Requester
}

// New constructs a Client for baseURL. An empty baseURL is read from
// CHANNELGATE_API_BASE_URL, falling back to http://localhost:8001.
// Without WithSessionStore the session lives in memory.
func New(baseURL string, opts ...Option) (*Client, error) {
	timeout := 30 * time.Second
	if baseURL == "" {
		cfg, err := config.New()
		if err != nil {
			return nil, err
		}
		baseURL = cfg.BaseURL
		timeout = cfg.HTTPTimeout
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  log.Logger,
		debug:   debugLoggingRequested(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.store == nil {
		c.store = session.NewMemoryStore()
	}
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport}
	}

	c.req = &api.Requester{
		BaseURL:        c.baseURL,
		HTTP:           c.http,
		Session:        c.store,
		Logger:         c.logger,
		OnUnauthorized: c.sessionExpired,
		Observe:        observeRequest,
	}
	return c, nil
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// Session returns the store holding the seller's credentials.
func (c *Client) Session() session.Store { return c.store }

// sessionExpired reacts to a 401. A configured handler replaces the default
// of clearing the session and navigating to the login route.
func (c *Client) sessionExpired(ctx context.Context, ev api.UnauthorizedEvent) {
	sessionExpiredTotal.Inc()
	event := SessionExpiredEvent{Method: ev.Method, Endpoint: ev.Endpoint, Status: ev.Status}
	if c.onExpired != nil {
		c.onExpired(ctx, event)
		return
	}
	if err := c.endSession(ctx); err != nil {
		c.logger.Error().Err(err).Str("endpoint", ev.Endpoint).Msg("clear session after 401 failed")
	}
}

// endSession clears every session key, then navigates to the login route.
// Navigation happens even when clearing fails.
func (c *Client) endSession(ctx context.Context) error {
	// The request context may already be done; cleanup must still run.
	ctx = context.WithoutCancel(ctx)
	err := c.store.Clear(ctx)
	if c.nav != nil {
		c.nav.Navigate(ctx, LoginRoute)
	}
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// --------------------------------------------------------------------
// Generic requests
// --------------------------------------------------------------------

// Get issues an authenticated GET against endpoint (a path such as
// "/api/sellers/me") and decodes the envelope.
func Get[T any](ctx context.Context, c *Client, endpoint string) (*Envelope[T], error) {
	return api.Get[T](ctx, c.req, endpoint)
}

// Post issues an authenticated POST. A nil body sends no body at all.
func Post[T any](ctx context.Context, c *Client, endpoint string, body any) (*Envelope[T], error) {
	return api.Post[T](ctx, c.req, endpoint, body)
}

// Put issues an authenticated PUT. A nil body sends no body at all.
func Put[T any](ctx context.Context, c *Client, endpoint string, body any) (*Envelope[T], error) {
	return api.Put[T](ctx, c.req, endpoint, body)
}

// Delete issues an authenticated DELETE.
func Delete[T any](ctx context.Context, c *Client, endpoint string) (*Envelope[T], error) {
	return api.Delete[T](ctx, c.req, endpoint)
}

// --------------------------------------------------------------------
// Auth and seller operations - delegated to internal/api
// --------------------------------------------------------------------

// Register creates a seller account and stores the returned API key.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Envelope[RegistrationData], error) {
	return api.Register(ctx, c.req, req)
}

// Login authenticates and stores access token, refresh token and token type.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Envelope[AuthTokens], error) {
	return api.Login(ctx, c.req, req)
}

// Logout clears the whole session store, not only auth keys, and navigates
// to the login route when a Navigator is configured.
func (c *Client) Logout(ctx context.Context) error {
	return c.endSession(ctx)
}

// IsAuthenticated reports whether an access token is stored.
func (c *Client) IsAuthenticated(ctx context.Context) (bool, error) {
	return api.IsAuthenticated(ctx, c.store)
}

// GetProfile returns the authenticated seller.
func (c *Client) GetProfile(ctx context.Context) (*Envelope[Seller], error) {
	return api.GetProfile(ctx, c.req)
}

// GetStats returns channel, member and revenue totals.
func (c *Client) GetStats(ctx context.Context) (*Envelope[SellerStats], error) {
	return api.GetStats(ctx, c.req)
}

// UpdateStripeKeys stores the seller's own Stripe credentials.
func (c *Client) UpdateStripeKeys(ctx context.Context, req StripeKeysRequest) (*Envelope[json.RawMessage], error) {
	return api.UpdateStripeKeys(ctx, c.req, req)
}

// --------------------------------------------------------------------
// Channel operations
// --------------------------------------------------------------------

// ListChannels returns the seller's channels.
func (c *Client) ListChannels(ctx context.Context) (*Envelope[[]Channel], error) {
	return api.ListChannels(ctx, c.req)
}

// AddChannel registers a Telegram chat for sale.
func (c *Client) AddChannel(ctx context.Context, req AddChannelRequest) (*Envelope[AddChannelResponse], error) {
	return api.AddChannel(ctx, c.req, req)
}

// UpdateChannel updates an existing channel.
func (c *Client) UpdateChannel(ctx context.Context, req AddChannelRequest) (*Envelope[AddChannelResponse], error) {
	return api.UpdateChannel(ctx, c.req, req)
}

// --------------------------------------------------------------------
// Member operations
// --------------------------------------------------------------------

// ListMembers returns memberships matching f. A zero ChatID and a Status of
// "" or "all" do not filter.
func (c *Client) ListMembers(ctx context.Context, f MemberFilter) (*Envelope[[]MemberDetails], error) {
	return api.ListMembers(ctx, c.req, f)
}

// RemoveMember force-removes a user from a chat.
func (c *Client) RemoveMember(ctx context.Context, req RemoveMemberRequest) (*Envelope[json.RawMessage], error) {
	return api.RemoveMember(ctx, c.req, req)
}

// GrantAccess grants a user timed access to chats.
func (c *Client) GrantAccess(ctx context.Context, req GrantAccessRequest) (*Envelope[GrantAccessResponse], error) {
	return api.GrantAccess(ctx, c.req, req)
}

// --------------------------------------------------------------------
// Payment operations
// --------------------------------------------------------------------

// ListPayments returns up to limit payments. A zero limit means 100. Other
// values, including negative ones, are sent unchanged and the backend answers
// a negative limit with a 400.
func (c *Client) ListPayments(ctx context.Context, limit int) (*Envelope[[]Payment], error) {
	return api.ListPayments(ctx, c.req, limit)
}

// CreateCheckout starts a hosted checkout session.
func (c *Client) CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (*Envelope[CheckoutSessionResponse], error) {
	return api.CreateCheckout(ctx, c.req, req)
}

// --------------------------------------------------------------------
// Webhook operations
// --------------------------------------------------------------------

// ListWebhooks returns the seller's webhooks.
func (c *Client) ListWebhooks(ctx context.Context) (*Envelope[[]Webhook], error) {
	return api.ListWebhooks(ctx, c.req)
}

// CreateWebhook subscribes a URL to events.
func (c *Client) CreateWebhook(ctx context.Context, req CreateWebhookRequest) (*Envelope[Webhook], error) {
	return api.CreateWebhook(ctx, c.req, req)
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (*Envelope[DeleteWebhookResult], error) {
	return api.DeleteWebhook(ctx, c.req, webhookID)
}
