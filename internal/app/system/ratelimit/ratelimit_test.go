package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/system/ratelimit"
)

func TestLimiter_AllowsBurstThenBlocks(t *testing.T) {
	l := ratelimit.New(3, time.Hour)
	for i := 0; i < 3; i++ {
		if !l.Allow("k") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("k") {
		t.Error("4th attempt should be blocked")
	}
	if l.Remaining("k") != 0 {
		t.Errorf("Remaining: got %d", l.Remaining("k"))
	}
	if l.RetryAfter("k") <= 0 {
		t.Error("expected positive RetryAfter")
	}
	if !l.Allow("other") {
		t.Error("keys must be independent")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := ratelimit.New(1, time.Hour)
	l.Allow("k")
	if l.Allow("k") {
		t.Fatal("expected block")
	}
	l.Reset("k")
	if !l.Allow("k") {
		t.Error("expected allow after reset")
	}
	if l.Remaining("unknown") != 1 {
		t.Error("unknown key should have full budget")
	}
}

func TestMiddleware_Returns429(t *testing.T) {
	l := ratelimit.New(1, time.Hour)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/api/stats", nil)
		req.RemoteAddr = "203.0.113.9:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	if rec := send(); rec.Code != http.StatusOK {
		t.Fatalf("first: got %d", rec.Code)
	}
	rec := send()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second: got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, "10.0.0.2:1", "198.51.100.1"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.2 "}, "10.0.0.2:1", "198.51.100.2"},
		{"remote addr", nil, "192.0.2.7:443", "192.0.2.7"},
		{"remote no port", nil, "192.0.2.8", "192.0.2.8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ratelimit.ClientIP(r); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginLimiter_EmailBudgetIsCaseInsensitive(t *testing.T) {
	ll := ratelimit.NewLoginLimiterWithConfig(100, time.Minute, 2, time.Hour)
	r := httptest.NewRequest("POST", "/login", nil)

	for _, e := range []string{"Ada@BigKoko.com", "ada@bigkoko.com "} {
		if ok, _ := ll.Check(r, e); !ok {
			t.Fatalf("attempt for %q should pass", e)
		}
	}
	ok, reason := ll.Check(r, "ADA@bigkoko.com")
	if ok || reason == "" {
		t.Fatal("third attempt should be blocked with a reason")
	}

	ll.ResetEmail("ada@bigkoko.com")
	if ok, _ := ll.Check(r, "ada@bigkoko.com"); !ok {
		t.Error("expected allow after ResetEmail")
	}
}
