package auth

import (
	"errors"
	"testing"
	"time"

	"xplorium/internal/shared/config"
)

func testService(secret string) *service {
	return &service{
		config: &config.Config{
			JWT: config.JWTConfig{
				Secret:           secret,
				JWTExpiresIn:     15 * time.Minute,
				RefreshExpiresIn: 7 * 24 * time.Hour,
			},
		},
	}
}

func TestTokenPairRoundTrip(t *testing.T) {
	s := testService("test-secret")

	pair, err := s.generateTokenPair("user-123", "kid@example.com", "USER")
	if err != nil {
		t.Fatalf("generateTokenPair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatal("access and refresh tokens must differ")
	}
	if pair.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("ExpiresIn = %d, want %d", pair.ExpiresIn, int64((15 * time.Minute).Seconds()))
	}

	claims, err := s.ValidateToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken(access): %v", err)
	}
	if claims.UserID != "user-123" || claims.Email != "kid@example.com" || claims.Role != "USER" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Type != "access" {
		t.Errorf("Type = %q, want access", claims.Type)
	}

	refreshClaims, err := s.ValidateToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("ValidateToken(refresh): %v", err)
	}
	if refreshClaims.Type != "refresh" {
		t.Errorf("Type = %q, want refresh", refreshClaims.Type)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := testService("secret-one")
	pair, err := s.generateTokenPair("user-123", "kid@example.com", "USER")
	if err != nil {
		t.Fatalf("generateTokenPair: %v", err)
	}

	other := testService("secret-two")
	if _, err := other.ValidateToken(pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	s := testService("test-secret")
	s.config.JWT.JWTExpiresIn = -time.Minute

	pair, err := s.generateTokenPair("user-123", "kid@example.com", "USER")
	if err != nil {
		t.Fatalf("generateTokenPair: %v", err)
	}

	if _, err := s.ValidateToken(pair.AccessToken); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	s := testService("test-secret")
	if _, err := s.ValidateToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
