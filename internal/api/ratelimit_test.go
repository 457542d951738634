package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 60, BurstSize: 2})
	defer rl.Close()
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/passages", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := do("192.0.2.1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}

	rec := do("192.0.2.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "1" {
		t.Errorf("Retry-After = %q, want 1", got)
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "60" {
		t.Errorf("X-RateLimit-Limit = %q, want 60", got)
	}

	if rec := do("192.0.2.2"); rec.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", rec.Code)
	}
}

func TestRateLimiterDefaultBurst(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 1})
	defer rl.Close()
	rl.Close()

	allowed := 0
	for i := 0; i < 20; i++ {
		if rl.Allow("198.51.100.7") {
			allowed++
		}
	}
	if allowed != 10 {
		t.Errorf("allowed = %d, want the default burst of 10", allowed)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "203.0.113.5:4000", nil, "203.0.113.5"},
		{"forwarded leftmost", "10.0.0.1:4000", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.2"}, "203.0.113.9"},
		{"invalid forwarded", "10.0.0.1:4000", map[string]string{"X-Forwarded-For": "not-an-ip"}, "10.0.0.1"},
		{"real ip", "10.0.0.1:4000", map[string]string{"X-Real-IP": " 2001:db8::1 "}, "2001:db8::1"},
		{"bare remote addr", "203.0.113.5", nil, "203.0.113.5"},
		{"garbage", "garbage", nil, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
