package references

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestValidatorIsLive(t *testing.T) {
	var gotRange, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.Header.Get("Range")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html>hello</html>"))
	}))
	defer server.Close()

	v := NewValidator(server.Client(), 0, time.Second)
	status, live := v.IsLive(context.Background(), server.URL)

	if !live {
		t.Error("live = false, want true")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotRange != "bytes=0-512" {
		t.Errorf("Range = %q, want bytes=0-512", gotRange)
	}
	if gotUA != browserUserAgent {
		t.Errorf("User-Agent = %q, want browser default", gotUA)
	}
}

func TestValidatorPartialContentIsLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Range", "bytes 0-512/4096")
		w.WriteHeader(http.StatusPartialContent)
		w.Write([]byte("partial body"))
	}))
	defer server.Close()

	v := NewValidator(server.Client(), 0, time.Second)
	status, live := v.IsLive(context.Background(), server.URL)

	if !live {
		t.Error("live = false for 206, want true")
	}
	if status != http.StatusPartialContent {
		t.Errorf("status = %d, want 206", status)
	}
}

func TestValidatorDeadStatuses(t *testing.T) {
	for _, code := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusMovedPermanently, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		client := server.Client()
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}

		v := NewValidator(client, 0, time.Second)
		status, live := v.IsLive(context.Background(), server.URL)
		if live {
			t.Errorf("live = true for HTTP %d, want false", code)
		}
		if status != code {
			t.Errorf("status = %d, want %d", status, code)
		}
		server.Close()
	}
}

func TestValidatorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	v := NewValidator(server.Client(), 0, 50*time.Millisecond)
	status, live := v.IsLive(context.Background(), server.URL)

	if live {
		t.Error("live = true for stalled host, want false")
	}
	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
}

func TestValidatorUnreachableHost(t *testing.T) {
	v := NewValidator(&http.Client{}, 0, time.Second)
	status, live := v.IsLive(context.Background(), "http://127.0.0.1:1")

	if live {
		t.Error("live = true for unreachable host, want false")
	}
	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
}

func TestValidatorCustomUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	v := NewValidator(server.Client(), 0, time.Second)
	v.UserAgent = "custom/1.0"
	v.IsLive(context.Background(), server.URL)

	if gotUA != "custom/1.0" {
		t.Errorf("User-Agent = %q, want custom/1.0", gotUA)
	}
}

func TestValidatorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The rate limiter wait observes cancellation before any request is made.
	v := NewValidator(&http.Client{}, 1, time.Second)
	if _, live := v.IsLive(ctx, "http://example.com"); live {
		t.Error("live = true after cancelled context, want false")
	}
}
