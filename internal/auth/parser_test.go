package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestParse_ValidToken(t *testing.T) {
	parser := NewParser("secret")

	claims := Claims{
		Email: "admin@example.com",
		Role:  "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	principal, err := parser.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if principal.UserID != "admin-1" || principal.Email != "admin@example.com" || !principal.IsAdmin() {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	parser := NewParser("secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := parser.Parse(token); err == nil {
		t.Fatal("expected error for token signed with wrong secret")
	}
}

func TestParse_ExpiredToken(t *testing.T) {
	parser := NewParser("secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := parser.Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParse_Garbage(t *testing.T) {
	parser := NewParser("secret")
	if _, err := parser.Parse("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
