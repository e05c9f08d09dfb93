package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/channelgate/channelgate-go/session"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPClientAndDebugLogging(t *testing.T) {
	// timeout option sets http timeout
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}

	// debug logging wraps whichever transport the client ends up with
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c2, err := New("http://example.com", WithDebugLogging(true), WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dt, ok := c2.http.Transport.(*debugTransport)
	if !ok {
		t.Fatalf("expected debugTransport, got %T", c2.http.Transport)
	}
	if dt.base == nil {
		t.Fatalf("debug transport lost the injected base transport")
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c2.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestOptionErrors(t *testing.T) {
	if _, err := New("http://example.com", WithHTTPTimeout(-time.Second)); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
	if _, err := New("http://example.com", WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil http client")
	}
	if _, err := New("http://example.com", WithSessionStore(nil)); err == nil {
		t.Fatalf("expected error for nil session store")
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("CHANNELGATE_DEBUG", "")
	t.Setenv("DEBUG", "")
	c, err := New("http://example.com/")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "http://example.com" {
		t.Fatalf("trailing slash not trimmed: %q", c.BaseURL())
	}
	if c.http.Timeout != 30*time.Second {
		t.Fatalf("default timeout = %v", c.http.Timeout)
	}
	if _, ok := c.Session().(*session.MemoryStore); !ok {
		t.Fatalf("default store = %T, want *session.MemoryStore", c.Session())
	}
	if c.http.Transport != nil {
		t.Fatalf("unexpected transport %T without debug", c.http.Transport)
	}
}

func TestNew_BaseURLFromEnv(t *testing.T) {
	t.Setenv("CHANNELGATE_API_BASE_URL", "https://api.channelgate.test")
	t.Setenv("CHANNELGATE_HTTP_TIMEOUT", "5s")
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "https://api.channelgate.test" {
		t.Fatalf("base url = %q", c.BaseURL())
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", c.http.Timeout)
	}
}

func TestWithSessionStoreAndLogger(t *testing.T) {
	store := session.NewMemoryStore()
	var buf strings.Builder
	l := zerolog.New(&buf)
	c, err := New("http://example.com", WithSessionStore(store), WithLogger(l))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Session() != store {
		t.Fatalf("store not applied")
	}
}
