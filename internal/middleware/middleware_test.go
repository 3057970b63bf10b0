// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminRedirectsAnonymous(t *testing.T) {
	sm := scs.New()
	handler := sm.LoadAndSave(Admin(sm)(okHandler()))

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestAdminAllowsAuthenticated(t *testing.T) {
	sm := scs.New()

	var token string
	login := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sm.Put(r.Context(), SessionKeyAdmin, true)
	}))
	w := httptest.NewRecorder()
	login.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	for _, c := range w.Result().Cookies() {
		if c.Name == sm.Cookie.Name {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("no session cookie issued")
	}

	handler := sm.LoadAndSave(Admin(sm)(okHandler()))
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(&http.Cookie{Name: sm.Cookie.Name, Value: token})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestSecurityHeaders(t *testing.T) {
	cfg := DefaultSecurityHeadersConfig(false)
	handler := SecurityHeaders(cfg)(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := w.Header().Get("Strict-Transport-Security"); !strings.Contains(got, "max-age=31536000") {
		t.Errorf("Strict-Transport-Security = %q", got)
	}
	csp := w.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "img-src 'self' data: blob: https:") {
		t.Errorf("CSP missing img-src allowances: %q", csp)
	}
}

func TestSecurityHeadersDevSkipsHSTS(t *testing.T) {
	handler := SecurityHeaders(DefaultSecurityHeadersConfig(true))(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS set in development: %q", got)
	}
}

func TestRequestPath(t *testing.T) {
	var got string
	handler := RequestPath(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = GetRequestPath(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/contact", nil))

	if got != "/contact" {
		t.Errorf("GetRequestPath() = %q, want /contact", got)
	}
}

func TestIPRateLimiter(t *testing.T) {
	rl := NewIPRateLimiter(1, 2)
	handler := rl.Middleware()(okHandler())

	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
	}

	r := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("burst exceeded: status = %d, want 429", w.Code)
	}

	// A different IP gets its own bucket.
	r = httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	r.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("independent ip: status = %d, want 200", w.Code)
	}
}

func TestLoginProtectionLockout(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	ip := "10.0.0.9"

	for i := 0; i < 2; i++ {
		locked, _ := lp.RecordFailedAttempt(ip)
		if locked {
			t.Fatalf("locked after %d attempts", i+1)
		}
	}
	if got := lp.RemainingAttempts(ip); got != 1 {
		t.Errorf("RemainingAttempts = %d, want 1", got)
	}

	locked, dur := lp.RecordFailedAttempt(ip)
	if !locked {
		t.Fatal("not locked after max attempts")
	}
	if dur != time.Minute {
		t.Errorf("lock duration = %v, want 1m", dur)
	}

	if locked, _ := lp.IsLocked(ip); !locked {
		t.Error("IsLocked = false for locked ip")
	}

	lp.RecordSuccessfulLogin(ip)
	if locked, _ := lp.IsLocked(ip); locked {
		t.Error("still locked after successful login")
	}
}

func TestLoginProtectionMiddlewareIgnoresGet(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{IPRateLimit: 0.001, IPBurst: 1})
	handler := lp.Middleware()(okHandler())

	for i := 0; i < 5; i++ {
		r := httptest.NewRequest(http.MethodGet, "/login", nil)
		r.RemoteAddr = "10.0.0.3:1"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %d: status = %d", i, w.Code)
		}
	}
}

func TestGetClientIPHeaders(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:5000"

	if got := getClientIP(r); got != "192.0.2.1:5000" {
		t.Errorf("getClientIP = %q", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	if got := getClientIP(r); got != "203.0.113.7" {
		t.Errorf("getClientIP = %q, want forwarded address", got)
	}

	r.Header.Set("X-Real-IP", "198.51.100.2")
	if got := getClientIP(r); got != "198.51.100.2" {
		t.Errorf("getClientIP = %q, want real-ip header", got)
	}
}
