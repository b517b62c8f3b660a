//go:build !resend_blocking

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sendkit/resend-go/internal/apierrors"
)

func TestCompiledMode_NonBlocking(t *testing.T) {
	if CompiledMode != ModeNonBlocking {
		t.Errorf("CompiledMode = %q, want %q", CompiledMode, ModeNonBlocking)
	}
}

func TestClient_Do_CancelWhileWaitingForAdmission(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, APIKey: "k", RateLimit: 1, RateWindow: time.Hour})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if err := client.Do(context.Background(), http.MethodGet, "/emails", nil, nil); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err = client.Do(ctx, http.MethodGet, "/emails", nil, nil)
	if !errors.Is(err, apierrors.ErrRateLimited) {
		t.Errorf("error = %v, want ErrRateLimited", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want wrapped context.Canceled", err)
	}
}

func TestClient_Do_CancelInFlight(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client, err := NewClient(Config{BaseURL: server.URL, APIKey: "k"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = client.Do(ctx, http.MethodGet, "/emails", nil, nil)
	if !errors.Is(err, apierrors.ErrTransport) {
		t.Errorf("error = %v, want ErrTransport", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want wrapped context.DeadlineExceeded", err)
	}
}
