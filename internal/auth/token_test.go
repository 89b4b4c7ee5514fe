package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fieldserve/backoffice/internal/models"
)

func TestSignAndVerify(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	user := &models.User{ID: "user-1", Email: "dana@example.com"}

	signed, err := tokens.Sign(user)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "user-1" || claims.Email != "dana@example.com" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected an expiry claim")
	}
}

func TestZeroTTLOmitsExpiry(t *testing.T) {
	tokens := NewTokens("secret", 0)
	signed, err := tokens.Sign(&models.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("unexpected expiry: %v", claims.ExpiresAt)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	// Sign handles only forward-looking TTLs, so back-date a token by hand
	// with the same secret.
	claims := Claims{
		Email: "dana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokens("secret", time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokens("secret-a", time.Hour).Sign(&models.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := NewTokens("secret-b", time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Verify(bad); err != ErrInvalidToken {
			t.Fatalf("Verify(%q) = %v, want ErrInvalidToken", bad, err)
		}
	}
}
