package service

import (
	"strings"
	"testing"

	"github.com/martshop-next/internal/config"
	"github.com/martshop-next/internal/models"
)

func newAuthTestConfig() *config.Config {
	return &config.Config{
		UserJWT: config.JWTConfig{
			SecretKey:   "unit-test-secret-key-0123456789abcdef",
			ExpireHours: 1,
		},
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	auth := NewAuthService(newAuthTestConfig())

	hash, err := auth.HashPassword("p")
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	if hash == "p" {
		t.Fatalf("hash must not equal plaintext")
	}
	if err := auth.VerifyPassword(hash, "p"); err != nil {
		t.Fatalf("verify password failed: %v", err)
	}
	if err := auth.VerifyPassword(hash, "wrong"); err == nil {
		t.Fatalf("expected verify failure for wrong password")
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	auth := NewAuthService(newAuthTestConfig())
	user := &models.User{ID: 42, Email: "a@example.com"}

	token, expiresAt, err := auth.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}
	if expiresAt.IsZero() {
		t.Fatalf("expected non-zero expiry")
	}

	claims, err := auth.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse jwt failed: %v", err)
	}
	uid, err := claims.ResolveUserID()
	if err != nil {
		t.Fatalf("resolve user id failed: %v", err)
	}
	if uid != user.ID {
		t.Fatalf("expected user id %d, got %d", user.ID, uid)
	}
	if claims.Email != user.Email {
		t.Fatalf("expected email %s, got %s", user.Email, claims.Email)
	}
}

func TestParseJWTRejectsTamperedToken(t *testing.T) {
	auth := NewAuthService(newAuthTestConfig())
	user := &models.User{ID: 7, Email: "b@example.com"}

	token, _, err := auth.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format")
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]
	if _, err := auth.ParseJWT(tampered); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	auth := NewAuthService(newAuthTestConfig())
	user := &models.User{ID: 9, Email: "c@example.com"}

	token, _, err := auth.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}

	otherCfg := newAuthTestConfig()
	otherCfg.UserJWT.SecretKey = "another-secret-key-fedcba9876543210"
	other := NewAuthService(otherCfg)
	if _, err := other.ParseJWT(token); err == nil {
		t.Fatalf("expected token signed with different secret to be rejected")
	}
}
