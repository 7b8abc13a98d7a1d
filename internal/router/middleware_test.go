package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if got := w.Header().Get(requestIDHeader); got != "req-123" {
		t.Fatalf("incoming request id should echo back, got %s", got)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body["request_id"] != "req-123" {
		t.Fatalf("handler should see the request id, got %s", body["request_id"])
	}

	// Without the header a fresh id is generated.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("missing request id should be generated")
	}
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(JWTAuthMiddleware("test-secret", nil))
	r.GET("/me", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Missing header.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: status want 401 got %d", w.Code)
	}

	// Malformed header.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("malformed header: status want 401 got %d", w.Code)
	}

	// Wrong signing key.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"staff_id": 1,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad signature: status want 401 got %d", w.Code)
	}
}

func TestIssuedAfterInvalidBefore(t *testing.T) {
	now := time.Now()

	if !isIssuedAfterInvalidBefore(jwt.NewNumericDate(now), nil) {
		t.Fatal("nil invalid-before must pass")
	}
	if isIssuedAfterInvalidBefore(nil, &now) {
		t.Fatal("missing issued-at with a cutoff must fail")
	}
	earlier := now.Add(-time.Minute)
	if isIssuedAfterInvalidBefore(jwt.NewNumericDate(earlier), &now) {
		t.Fatal("token issued before the cutoff must fail")
	}
	later := now.Add(time.Minute)
	if !isIssuedAfterInvalidBefore(jwt.NewNumericDate(later), &now) {
		t.Fatal("token issued after the cutoff must pass")
	}

	if !isIssuedAfterInvalidBeforeUnix(jwt.NewNumericDate(earlier), 0) {
		t.Fatal("zero cutoff must pass")
	}
	if isIssuedAfterInvalidBeforeUnix(jwt.NewNumericDate(earlier), now.Unix()) {
		t.Fatal("token issued before the unix cutoff must fail")
	}
	if !isIssuedAfterInvalidBeforeUnix(jwt.NewNumericDate(later), now.Unix()) {
		t.Fatal("token issued after the unix cutoff must pass")
	}
}
