package client

import (
	"context"
	"testing"

	"github.com/channelgate/channelgate-go/client/internal/api"
)

func TestResolveRoute(t *testing.T) {
	cases := []struct{ base, route, want string }{
		{"", LoginRoute, "/login"},
		{"/", LoginRoute, "/login"},
		{"/dashboard", LoginRoute, "/dashboard/login"},
		{"dashboard/", "login", "/dashboard/login"},
		{"/app", "/login/", "/app/login/"},
	}
	for _, c := range cases {
		if got := ResolveRoute(c.base, c.route); got != c.want {
			t.Fatalf("ResolveRoute(%q, %q) = %q, want %q", c.base, c.route, got, c.want)
		}
	}
}

func TestWithBasePath(t *testing.T) {
	var got string
	nav := WithBasePath("/seller", NavigatorFunc(func(_ context.Context, route string) { got = route }))
	nav.Navigate(context.Background(), LoginRoute)
	if got != "/seller/login" {
		t.Fatalf("navigated to %q", got)
	}
}

func TestSessionExpiredEvent_IsLoginAttempt(t *testing.T) {
	if !(SessionExpiredEvent{Endpoint: api.LoginPath}).IsLoginAttempt() {
		t.Fatal("login endpoint not detected")
	}
	if (SessionExpiredEvent{Endpoint: "/api/sellers/me"}).IsLoginAttempt() {
		t.Fatal("profile endpoint reported as login")
	}
}

func TestSessionExpired_DefaultUsesUncancelledContext(t *testing.T) {
	c, err := New("http://example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	_ = c.Session().Set(ctx, "access_token", "t")

	var navigated int
	c.nav = NavigatorFunc(func(context.Context, string) { navigated++ })

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	c.sessionExpired(cancelled, api.UnauthorizedEvent{Method: "GET", Endpoint: "/api/sellers/me", Status: 401})

	if v, _ := c.Session().Get(ctx, "access_token"); v != "" {
		t.Fatalf("access_token = %q after expiry", v)
	}
	if navigated != 1 {
		t.Fatalf("navigated %d times", navigated)
	}
}
