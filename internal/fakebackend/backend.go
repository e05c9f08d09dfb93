// Package fakebackend is an in-memory stand-in for the channelgate HTTP API.
// It speaks the same envelope format and bearer-token auth as the real
// backend and is meant for tests and local CLI demos only.
package fakebackend

import (
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/channelgate/channelgate-go/client"
)

// TokenTTL is the lifetime stamped into issued access tokens.
const TokenTTL = time.Hour

// Backend holds every seller and their resources behind one mutex.
type Backend struct {
	mu       sync.Mutex
	sellers  map[string]*seller // by email
	sessions map[string]string  // access token -> email
	secret   []byte
	now      func() time.Time
	validate *validator.Validate
	router   *mux.Router
}

type seller struct {
	profile  client.Seller
	password string
	apiKey   string
	stripe   *client.StripeKeysRequest
	channels map[int64]*client.Channel
	users    map[string]*client.User // by ext_user_id
	members  []*client.MemberDetails
	payments []client.Payment
	webhooks []client.Webhook
}

// Option configures a Backend.
type Option func(*Backend)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

// New returns an empty backend with its routes registered.
func New(opts ...Option) *Backend {
	b := &Backend{
		sellers:  make(map[string]*seller),
		sessions: make(map[string]string),
		secret:   []byte(uuid.NewString()),
		now:      time.Now,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.router = b.routes()
	return b
}

// ServeHTTP makes Backend an http.Handler.
func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

func (b *Backend) routes() *mux.Router {
	root := mux.NewRouter()
	// Webhook ids arrive path-escaped.
	root.UseEncodedPath()
	root.Use(Recover)

	// Sellers
	root.HandleFunc("/api/sellers/register", b.register).Methods("POST")
	root.HandleFunc("/api/sellers/login", b.login).Methods("POST")
	root.HandleFunc("/api/sellers/me", b.profile).Methods("GET")
	root.HandleFunc("/api/sellers/stats", b.stats).Methods("GET")
	root.HandleFunc("/api/sellers/stripe-keys", b.stripeKeys).Methods("POST")

	// Channels
	root.HandleFunc("/api/sellers/channels", b.listChannels).Methods("GET")
	root.HandleFunc("/api/sellers/channels", b.updateChannel).Methods("POST")
	root.HandleFunc("/api/telegram/channels", b.addChannel).Methods("POST")

	// Members
	root.HandleFunc("/api/sellers/members", b.listMembers).Methods("GET")
	root.HandleFunc("/api/telegram/force-remove", b.forceRemove).Methods("POST")
	root.HandleFunc("/api/telegram/grant-access", b.grantAccess).Methods("POST")

	// Payments
	root.HandleFunc("/api/sellers/payments", b.listPayments).Methods("GET")
	root.HandleFunc("/api/payments/checkout", b.checkout).Methods("POST")

	// Webhooks
	root.HandleFunc("/api/sellers/webhooks", b.listWebhooks).Methods("GET")
	root.HandleFunc("/api/sellers/webhooks", b.createWebhook).Methods("POST")
	root.HandleFunc("/api/sellers/webhooks/{webhookId}", b.deleteWebhook).Methods("DELETE")

	// Health
	root.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, http.StatusOK, "ok", map[string]string{"status": "healthy"})
	}).Methods("GET")

	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFail(w, http.StatusNotFound, "Not found", "not_found")
	})
	root.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFail(w, http.StatusMethodNotAllowed, "Method not allowed", "method_not_allowed")
	})
	return root
}

// ExpireSessions revokes every issued access token, so the next
// authenticated call answers 401.
func (b *Backend) ExpireSessions() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions = make(map[string]string)
}

// SeedPayment records a payment for the seller registered under email.
// It returns false when no such seller exists.
func (b *Backend) SeedPayment(email string, p client.Payment) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sellers[email]
	if !ok {
		return false
	}
	if p.ID == "" {
		p.ID = "pay_" + uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = client.Timestamp{Time: b.now().UTC()}
	}
	s.payments = append(s.payments, p)
	return true
}

// issueToken signs a JWT for s and registers it as a live session. Caller
// holds b.mu.
func (b *Backend) issueToken(s *seller) (string, error) {
	now := b.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   s.profile.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
	if err != nil {
		return "", err
	}
	b.sessions[signed] = s.profile.Email
	return signed, nil
}

// authenticate resolves the bearer token to a seller or writes a 401.
// On success the caller holds b.mu and must call b.mu.Unlock.
func (b *Backend) authenticate(w http.ResponseWriter, r *http.Request) (*seller, bool) {
	token, err := extractBearer(r)
	if err != nil {
		writeFail(w, http.StatusUnauthorized, "Not authenticated", "unauthorized")
		return nil, false
	}
	if _, err := jwt.Parse(token, func(*jwt.Token) (any, error) { return b.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(b.now)); err != nil {
		writeFail(w, http.StatusUnauthorized, "Session expired", "token_invalid")
		return nil, false
	}

	b.mu.Lock()
	email, ok := b.sessions[token]
	if !ok {
		b.mu.Unlock()
		writeFail(w, http.StatusUnauthorized, "Session expired", "token_revoked")
		return nil, false
	}
	return b.sellers[email], true
}

// sortedChannels returns the seller's channels ordered by chat id.
func (s *seller) sortedChannels() []client.Channel {
	out := make([]client.Channel, 0, len(s.channels))
	for _, ch := range s.channels {
		out = append(out, *ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChatID < out[j].ChatID })
	return out
}

// recount refreshes per-channel member totals after membership changes.
func (s *seller) recount() {
	for _, ch := range s.channels {
		ch.TotalMembers, ch.ActiveMembers = 0, 0
	}
	for _, m := range s.members {
		ch, ok := s.channels[m.Membership.ChatID]
		if !ok {
			continue
		}
		ch.TotalMembers++
		if m.Membership.Status == client.MembershipActive {
			ch.ActiveMembers++
		}
	}
}

func chatKey(id int64) string { return strconv.FormatInt(id, 10) }
