package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Database.Name != "xplorium_db" {
		t.Errorf("expected default db name xplorium_db, got %s", cfg.Database.Name)
	}
	if cfg.RateLimit.WindowDuration != 60*time.Second {
		t.Errorf("expected 60s rate limit window, got %s", cfg.RateLimit.WindowDuration)
	}
	if cfg.RateLimit.StrictRequests >= cfg.RateLimit.AuthRequests {
		t.Error("strict budget should be tighter than the auth budget")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_BOOKING_REQUESTS", "5")
	t.Setenv("JWT_EXPIRES_IN", "900")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("PORT override not applied, got %s", cfg.Port)
	}
	if cfg.RateLimit.BookingRequests != 5 {
		t.Errorf("booking rate limit override not applied, got %d", cfg.RateLimit.BookingRequests)
	}
	if cfg.JWT.JWTExpiresIn != 15*time.Minute {
		t.Errorf("JWT_EXPIRES_IN seconds not converted, got %s", cfg.JWT.JWTExpiresIn)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "broker2:9092" {
		t.Errorf("KAFKA_BROKERS not split correctly, got %v", cfg.Kafka.Brokers)
	}
}

func TestBuildDatabaseDSN(t *testing.T) {
	dsn := buildDatabaseDSN(DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", Name: "n", SSLMode: "require",
	})
	want := "host=db port=5433 user=u password=p dbname=n sslmode=require"
	if dsn != want {
		t.Errorf("DSN mismatch:\n got %s\nwant %s", dsn, want)
	}
}

func TestModeHelpers(t *testing.T) {
	cfg := &Config{GinMode: "release"}
	if !cfg.IsProduction() || cfg.IsDevelopment() {
		t.Error("release mode should be production")
	}

	cfg = &Config{GinMode: "debug", APIPrefix: "/api", APIVersion: "v1"}
	if cfg.GetAPIBasePath() != "/api/v1" {
		t.Errorf("unexpected API base path %s", cfg.GetAPIBasePath())
	}
}
