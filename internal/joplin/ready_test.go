package joplin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ping" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte("JoplinClipperServer"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPingNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	err := c.Ping(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Fatalf("unexpected status %d", apiErr.StatusCode)
	}
}

func TestWaitReadyEventuallySucceeds(t *testing.T) {
	var probes int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&probes, 1) < 3 {
			http.Error(w, "starting", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("JoplinClipperServer"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	if !c.WaitReady(context.Background(), 2*time.Second) {
		t.Fatal("expected readiness before the deadline")
	}
	if got := atomic.LoadInt32(&probes); got != 3 {
		t.Fatalf("expected 3 probes, got %d", got)
	}
}

func TestWaitReadyTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "starting", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	start := time.Now()
	if c.WaitReady(context.Background(), 100*time.Millisecond) {
		t.Fatal("expected timeout")
	}
	if time.Since(start) > time.Second {
		t.Fatal("wait ran far past its deadline")
	}
}

func TestWaitReadyCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "starting", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	if c.WaitReady(ctx, 5*time.Second) {
		t.Fatal("expected cancellation to end the wait")
	}
}
