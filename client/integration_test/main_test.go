package client_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/channelgate/channelgate-go/client"
	"github.com/channelgate/channelgate-go/internal/fakebackend"
	"github.com/channelgate/channelgate-go/session"
)

const (
	testEmail    = "seller@example.com"
	testPassword = "password123"
)

// routeRecorder is a Navigator that remembers every route it was sent to.
type routeRecorder struct {
	mu     sync.Mutex
	routes []string
}

func (r *routeRecorder) Navigate(_ context.Context, route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func (r *routeRecorder) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.routes...)
}

// newBackend starts a fake backend and returns it with its URL.
func newBackend(t *testing.T) (*fakebackend.Backend, string) {
	t.Helper()
	b := fakebackend.New()
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	return b, srv.URL
}

// newClient builds a client against url with a fresh memory store.
func newClient(t *testing.T, url string, opts ...client.Option) (*client.Client, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	c, err := client.New(url, append([]client.Option{client.WithSessionStore(store)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, store
}

// loggedIn registers and logs in the test seller.
func loggedIn(t *testing.T, c *client.Client) {
	t.Helper()
	ctx := context.Background()
	if _, err := c.Register(ctx, client.RegisterRequest{Email: testEmail, Password: testPassword}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := c.Login(ctx, client.LoginRequest{Email: testEmail, Password: testPassword}); err != nil {
		t.Fatalf("Login: %v", err)
	}
}
