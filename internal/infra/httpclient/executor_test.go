package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

func TestExecutorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	exec := NewExecutor(WithClient(New(cfg)))

	resp, err := exec.Get(context.Background(), server.URL, nil)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if resp.Duration <= 0 {
		t.Fatalf("expected duration to be set")
	}
}

func TestExecutorSendsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("expected accept header, got %q", got)
		}
		w.Header().Set("X-Test", "1")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	exec := NewExecutor()
	resp, err := exec.Get(context.Background(), server.URL, http.Header{"Accept": {"application/json"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", resp.Status)
	}
	if string(resp.Body) != `{"ok":true}` {
		t.Fatalf("unexpected body %q", resp.Body)
	}
	if resp.Headers.Get("X-Test") != "1" {
		t.Fatalf("expected header X-Test=1")
	}
}

func TestExecutorTruncatesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 4096)))
	}))
	defer server.Close()

	exec := NewExecutor(WithMaxBodyBytes(1024))
	resp, err := exec.Get(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Truncated {
		t.Fatalf("expected truncated=true")
	}
	if len(resp.Body) != 1024 {
		t.Fatalf("expected body len=1024, got=%d", len(resp.Body))
	}
}

func TestFromUpstreamCapsHeaderTimeout(t *testing.T) {
	cfg := FromUpstream(domainUpstream(2 * time.Second))
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("expected timeout 2s, got %s", cfg.Timeout)
	}
	if cfg.ResponseHeader != 2*time.Second {
		t.Fatalf("expected response header timeout capped, got %s", cfg.ResponseHeader)
	}
}

func domainUpstream(timeout time.Duration) domain.UpstreamConfig {
	return domain.UpstreamConfig{Timeout: timeout}
}
