package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewGenerator verifies the generator is built with the given settings.
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", 15 * time.Minute},
		{"long expiration", "secret", 24 * time.Hour},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if gen == nil {
				t.Fatal("expected generator to be non-nil")
			}
			if string(gen.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(gen.secret))
			}
			if gen.expiration != tt.expiration {
				t.Errorf("expected expiration %v, got %v", tt.expiration, gen.expiration)
			}
		})
	}
}

// TestGenerator_GenerateToken verifies the token parses with the same
// secret and carries the expected claims.
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
		email  string
	}{
		{"basic user", 1, "user@example.com"},
		{"user with special email", 42, "user+tag@example.com"},
		{"large user id", 999999, "test@test.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", 15*time.Minute)

			signed, err := gen.GenerateToken(tt.userID, tt.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			if err != nil {
				t.Fatalf("failed to parse token: %v", err)
			}
			if !token.Valid {
				t.Fatal("expected token to be valid")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				t.Fatal("expected MapClaims")
			}
			if sub, _ := claims["sub"].(float64); uint(sub) != tt.userID {
				t.Errorf("expected sub %d, got %v", tt.userID, claims["sub"])
			}
			if email, _ := claims["email"].(string); email != tt.email {
				t.Errorf("expected email %q, got %v", tt.email, claims["email"])
			}
		})
	}
}

// TestGenerator_GenerateToken_Expiry verifies exp and nbf are anchored to
// issuance time.
func TestGenerator_GenerateToken_Expiry(t *testing.T) {
	t.Parallel()

	ttl := 15 * time.Minute
	gen := NewGenerator("test-secret", ttl)

	before := time.Now()
	signed, err := gen.GenerateToken(1, "user@example.com")
	after := time.Now()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	nbf := time.Unix(int64(claims["nbf"].(float64)), 0)

	if exp.Before(before.Add(ttl).Truncate(time.Second)) || exp.After(after.Add(ttl).Add(time.Second)) {
		t.Errorf("exp %v is not issuance+%v", exp, ttl)
	}
	if nbf.After(after.Add(time.Second)) || nbf.Before(before.Truncate(time.Second)) {
		t.Errorf("nbf %v is not issuance time", nbf)
	}
}

// TestGenerator_GenerateToken_WrongSecret verifies a token does not parse
// with a different secret.
func TestGenerator_GenerateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("correct-secret", 15*time.Minute)

	signed, err := gen.GenerateToken(1, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Fatal("expected parse to fail with the wrong secret")
	}
}
