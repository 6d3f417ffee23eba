package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func serveSecure(opt SecurityOptions, mutate func(*http.Request)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders(opt))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	w := serveSecure(SecurityOptions{}, nil)
	h := w.Header()
	for k, v := range map[string]string{
		"X-Content-Type-Options":        "nosniff",
		"X-Frame-Options":               "DENY",
		"Referrer-Policy":               "no-referrer",
		"Access-Control-Expose-Headers": "X-Request-ID",
	} {
		if h.Get(k) != v {
			t.Errorf("%s = %q; want %q", k, h.Get(k), v)
		}
	}
	if h.Get("Strict-Transport-Security") != "" || h.Get("Cache-Control") != "" {
		t.Errorf("unexpected optional headers: %v", h)
	}
}

func TestSecurityHeaders_HSTSOnlyOverHTTPS(t *testing.T) {
	opt := SecurityOptions{EnableHSTS: true, HSTSMaxAge: time.Hour, NoStore: true}

	if got := serveSecure(opt, nil).Header().Get("Strict-Transport-Security"); got != "" {
		t.Fatalf("HSTS on plain HTTP: %q", got)
	}
	w := serveSecure(opt, func(r *http.Request) { r.TLS = &tls.ConnectionState{} })
	if got := w.Header().Get("Strict-Transport-Security"); got != "max-age=3600; includeSubDomains" {
		t.Fatalf("HSTS over TLS = %q", got)
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("NoStore not applied")
	}
	w = serveSecure(opt, func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "HTTPS") })
	if w.Header().Get("Strict-Transport-Security") == "" {
		t.Fatalf("HSTS via X-Forwarded-Proto missing")
	}
}
