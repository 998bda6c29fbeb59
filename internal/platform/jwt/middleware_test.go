package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

// TestMain switches Gin to test mode before running the tests.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// signToken builds a signed token with the given claims for test use.
func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// TestAuthRequired_MissingBearerToken verifies 401 when the header is
// absent or not a bearer token.
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			handler := AuthRequired(testSecret)
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestAuthRequired_InvalidToken verifies 401 for malformed, expired,
// not-yet-valid and wrongly signed tokens.
func TestAuthRequired_InvalidToken(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not.a.jwt"},
		{
			"wrong secret",
			signToken(t, "other-secret", jwt.MapClaims{
				"sub": 1, "email": "a@b.com", "exp": now.Add(15 * time.Minute).Unix(),
			}),
		},
		{
			"expired token",
			signToken(t, testSecret, jwt.MapClaims{
				"sub": 1, "email": "a@b.com", "exp": now.Add(-time.Minute).Unix(),
			}),
		},
		{
			"not yet valid",
			signToken(t, testSecret, jwt.MapClaims{
				"sub": 1, "email": "a@b.com",
				"exp": now.Add(time.Hour).Unix(), "nbf": now.Add(30 * time.Minute).Unix(),
			}),
		},
		{
			"missing sub claim",
			signToken(t, testSecret, jwt.MapClaims{
				"email": "a@b.com", "exp": now.Add(15 * time.Minute).Unix(),
			}),
		},
		{
			"non-numeric sub claim",
			signToken(t, testSecret, jwt.MapClaims{
				"sub": "abc", "email": "a@b.com", "exp": now.Add(15 * time.Minute).Unix(),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+tt.token)

			handler := AuthRequired(testSecret)
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestAuthRequired_ValidToken verifies the caller identity ends up in the
// request context.
func TestAuthRequired_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   uint(42),
		"email": "user@example.com",
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"nbf":   time.Now().Unix(),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	handler := AuthRequired(testSecret)
	handler(c)

	if c.IsAborted() {
		t.Fatalf("expected request to pass, got status %d", w.Code)
	}

	id, ok := CallerID(c)
	if !ok {
		t.Fatal("expected userID in context")
	}
	if id != 42 {
		t.Errorf("expected userID 42, got %d", id)
	}
	if email := c.GetString(ContextEmail); email != "user@example.com" {
		t.Errorf("expected email in context, got %q", email)
	}
}

// TestCallerID_NotSet verifies CallerID reports absence when the guard did
// not run.
func TestCallerID_NotSet(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if _, ok := CallerID(c); ok {
		t.Error("expected CallerID to report absence")
	}
}
