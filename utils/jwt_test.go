package utils

import (
	"testing"
	"time"

	"github.com/GoodHedi/trackinglife/config"
)

func setTokenConfig(secret string, ttl time.Duration) {
	config.Envs.JWTSecret = secret
	config.Envs.TokenTTL = ttl
}

func TestGenerateAndValidateJWT(t *testing.T) {
	setTokenConfig("test-secret", time.Hour)

	token, err := GenerateJWT(42, "alice")
	if err != nil {
		t.Fatalf("GenerateJWT() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateJWT() returned empty string")
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT() unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("ValidateJWT() UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("ValidateJWT() Username = %q, want %q", claims.Username, "alice")
	}
}

func TestValidateJWTMalformed(t *testing.T) {
	setTokenConfig("test-secret", time.Hour)

	if _, err := ValidateJWT("not-a-valid-token"); err == nil {
		t.Error("ValidateJWT() expected error for malformed token")
	}
}

func TestValidateJWTWrongSecret(t *testing.T) {
	setTokenConfig("correct-secret", time.Hour)
	token, err := GenerateJWT(42, "alice")
	if err != nil {
		t.Fatalf("GenerateJWT() unexpected error: %v", err)
	}

	setTokenConfig("wrong-secret", time.Hour)
	if _, err := ValidateJWT(token); err == nil {
		t.Error("ValidateJWT() expected error for wrong secret")
	}
}

func TestValidateJWTExpired(t *testing.T) {
	setTokenConfig("test-secret", -time.Minute)

	token, err := GenerateJWT(42, "alice")
	if err != nil {
		t.Fatalf("GenerateJWT() unexpected error: %v", err)
	}

	if _, err := ValidateJWT(token); err == nil {
		t.Error("ValidateJWT() expected error for expired token")
	}
}
