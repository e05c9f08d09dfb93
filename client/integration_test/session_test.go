package client_test

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"slices"
	"testing"

	"github.com/channelgate/channelgate-go/client"
	"github.com/channelgate/channelgate-go/session"
)

func TestRegisterAndLoginPersistCredentials(t *testing.T) {
	_, url := newBackend(t)
	c, store := newClient(t, url)
	ctx := context.Background()

	reg, err := c.Register(ctx, client.RegisterRequest{Email: testEmail, Password: testPassword, CompanyName: "Acme"})
	if err != nil || !reg.Success {
		t.Fatalf("Register: %+v %v", reg, err)
	}
	if store.Len() != 1 {
		t.Fatalf("register stored %d keys, want only the api key", store.Len())
	}
	apiKey, err := store.Get(ctx, session.KeyAPIKey)
	if err != nil || apiKey != reg.Data.APIKey {
		t.Fatalf("stored api key = %q, %v", apiKey, err)
	}

	authed, err := c.IsAuthenticated(ctx)
	if err != nil || authed {
		t.Fatalf("IsAuthenticated before login = %v, %v", authed, err)
	}

	login, err := c.Login(ctx, client.LoginRequest{Email: testEmail, Password: testPassword})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if store.Len() != 4 {
		t.Fatalf("store has %d keys after login", store.Len())
	}
	if token, _ := store.Get(ctx, session.KeyAccessToken); token != login.Data.AccessToken {
		t.Fatalf("stored access token = %q", token)
	}

	authed, err = c.IsAuthenticated(ctx)
	if err != nil || !authed {
		t.Fatalf("IsAuthenticated after login = %v, %v", authed, err)
	}

	me, err := c.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if me.Data.Email != testEmail || me.Data.CompanyName != "Acme" {
		t.Fatalf("GetProfile = %+v", me.Data)
	}
	if me.Data.CreatedAt.IsZero() || me.Data.LastLogin == nil {
		t.Fatalf("profile timestamps not decoded: %+v", me.Data)
	}
}

func TestSessionExpiryClearsStoreAndNavigatesOnce(t *testing.T) {
	backend, url := newBackend(t)
	nav := &routeRecorder{}
	c, store := newClient(t, url, client.WithNavigator(client.WithBasePath("/dashboard", nav)))
	loggedIn(t, c)
	ctx := context.Background()

	backend.ExpireSessions()
	env, err := c.GetProfile(ctx)
	if env != nil {
		t.Fatalf("expected nil envelope, got %+v", env)
	}
	if !client.IsSessionExpired(err) || !errors.Is(err, client.ErrSessionExpired) {
		t.Fatalf("expected session expiry, got %v", err)
	}
	if apiErr := apiError(t, err); apiErr.Status != http.StatusUnauthorized || apiErr.Kind != client.KindSessionExpired {
		t.Fatalf("GetProfile error = %+v", apiErr)
	}

	if store.Len() != 0 {
		t.Fatalf("store still has %d keys", store.Len())
	}
	if routes := nav.Routes(); !slices.Equal(routes, []string{"/dashboard/login"}) {
		t.Fatalf("routes = %v", routes)
	}

	// Without a token the next call is still a 401 and redirects again.
	_, err = c.GetStats(ctx)
	if !client.IsSessionExpired(err) {
		t.Fatalf("expected session expiry, got %v", err)
	}
	if n := len(nav.Routes()); n != 2 {
		t.Fatalf("navigated %d times", n)
	}
}

func TestCustomSessionExpiredHandlerReplacesDefault(t *testing.T) {
	backend, url := newBackend(t)
	nav := &routeRecorder{}
	var events []client.SessionExpiredEvent
	c, store := newClient(t, url,
		client.WithNavigator(nav),
		client.WithSessionExpiredHandler(func(_ context.Context, ev client.SessionExpiredEvent) {
			events = append(events, ev)
		}))
	loggedIn(t, c)

	backend.ExpireSessions()
	if _, err := c.ListChannels(context.Background()); !client.IsSessionExpired(err) {
		t.Fatalf("expected session expiry, got %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("handler ran %d times", len(events))
	}
	ev := events[0]
	if ev.Method != http.MethodGet || ev.Endpoint != "/api/sellers/channels" || ev.IsLoginAttempt() {
		t.Fatalf("event = %+v", ev)
	}
	if store.Len() != 4 {
		t.Fatalf("custom handler owns clearing, store has %d keys", store.Len())
	}
	if routes := nav.Routes(); len(routes) != 0 {
		t.Fatalf("default navigation ran: %v", routes)
	}
}

func TestFailedLoginFiresSessionExpired(t *testing.T) {
	_, url := newBackend(t)
	var events []client.SessionExpiredEvent
	c, _ := newClient(t, url, client.WithSessionExpiredHandler(func(_ context.Context, ev client.SessionExpiredEvent) {
		events = append(events, ev)
	}))

	_, err := c.Login(context.Background(), client.LoginRequest{Email: "nobody@example.com", Password: "wrong-password"})
	if !client.IsSessionExpired(err) {
		t.Fatalf("expected session expiry, got %v", err)
	}
	if apiErr := apiError(t, err); apiErr.Message != "Invalid email or password" {
		t.Fatalf("Login error = %+v", apiErr)
	}
	if len(events) != 1 || !events[0].IsLoginAttempt() {
		t.Fatalf("events = %+v", events)
	}
}

func TestLogoutClearsEverythingAndNavigates(t *testing.T) {
	_, url := newBackend(t)
	nav := &routeRecorder{}
	c, store := newClient(t, url, client.WithNavigator(nav))
	loggedIn(t, c)
	ctx := context.Background()
	if err := store.Set(ctx, "unrelated", "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := c.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("store still has %d keys", store.Len())
	}
	if routes := nav.Routes(); !slices.Equal(routes, []string{client.LoginRoute}) {
		t.Fatalf("routes = %v", routes)
	}

	authed, err := c.IsAuthenticated(ctx)
	if err != nil || authed {
		t.Fatalf("IsAuthenticated after logout = %v, %v", authed, err)
	}
}

func TestFileStoreSurvivesNewClient(t *testing.T) {
	_, url := newBackend(t)
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	first, err := client.New(url, client.WithSessionStore(session.NewFileStore(path)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	loggedIn(t, first)

	second, err := client.New(url, client.WithSessionStore(session.NewFileStore(path)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	me, err := second.GetProfile(ctx)
	if err != nil || me.Data.Email != testEmail {
		t.Fatalf("GetProfile: %+v %v", me, err)
	}
}
