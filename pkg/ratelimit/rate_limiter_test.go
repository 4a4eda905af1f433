package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testLimiter(t *testing.T, cfg *Config) *RateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRateLimiter(client, cfg)
}

func TestIsAllowedEnforcesLimit(t *testing.T) {
	rl := testLimiter(t, &Config{
		Enabled:        true,
		WindowDuration: time.Minute,
		AuthRequests:   2,
	})
	ctx := context.Background()

	for i, wantRemaining := range []int{1, 0} {
		result, err := rl.IsAllowed(ctx, "10.0.0.1", RateLimitTypeAuth)
		if err != nil {
			t.Fatalf("request %d: %v", i+1, err)
		}
		if !result.Allowed {
			t.Fatalf("request %d: expected allowed", i+1)
		}
		if result.Remaining != wantRemaining {
			t.Errorf("request %d: Remaining = %d, want %d", i+1, result.Remaining, wantRemaining)
		}
		if result.Limit != 2 {
			t.Errorf("request %d: Limit = %d, want 2", i+1, result.Limit)
		}
	}

	for i := 3; i <= 5; i++ {
		result, err := rl.IsAllowed(ctx, "10.0.0.1", RateLimitTypeAuth)
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if result.Allowed {
			t.Fatalf("request %d: allowed despite limit of 2 in window", i)
		}
		if result.Remaining != 0 {
			t.Errorf("request %d: Remaining = %d, want 0", i, result.Remaining)
		}
		if result.RetryAfter != time.Minute {
			t.Errorf("request %d: RetryAfter = %s, want %s", i, result.RetryAfter, time.Minute)
		}
	}
}

func TestIsAllowedSameSecondRequests(t *testing.T) {
	rl := testLimiter(t, &Config{
		Enabled:        true,
		WindowDuration: time.Minute,
		StrictRequests: 1,
	})
	ctx := context.Background()

	first, err := rl.IsAllowed(ctx, "10.0.0.2", RateLimitTypeStrict)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Allowed {
		t.Fatal("first request should be allowed")
	}

	// Back-to-back requests land in the same second; each must still count
	second, err := rl.IsAllowed(ctx, "10.0.0.2", RateLimitTypeStrict)
	if err != nil {
		t.Fatal(err)
	}
	if second.Allowed {
		t.Error("second request allowed despite limit of 1")
	}
}

func TestIsAllowedWindowSlides(t *testing.T) {
	rl := testLimiter(t, &Config{
		Enabled:        true,
		WindowDuration: 50 * time.Millisecond,
		AuthRequests:   1,
	})
	ctx := context.Background()

	if result, err := rl.IsAllowed(ctx, "10.0.0.3", RateLimitTypeAuth); err != nil || !result.Allowed {
		t.Fatalf("first request: allowed=%v err=%v", result != nil && result.Allowed, err)
	}
	if result, err := rl.IsAllowed(ctx, "10.0.0.3", RateLimitTypeAuth); err != nil || result.Allowed {
		t.Fatalf("second request: allowed=%v err=%v", result != nil && result.Allowed, err)
	}

	time.Sleep(60 * time.Millisecond)

	result, err := rl.IsAllowed(ctx, "10.0.0.3", RateLimitTypeAuth)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Allowed {
		t.Error("request after window elapsed should be allowed")
	}
}

func TestIsAllowedSeparateIdentifiers(t *testing.T) {
	rl := testLimiter(t, &Config{
		Enabled:        true,
		WindowDuration: time.Minute,
		AuthRequests:   1,
	})
	ctx := context.Background()

	result, err := rl.IsAllowed(ctx, "alice@example.com", RateLimitTypeAuth)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Allowed {
		t.Fatal("alice's first request should be allowed")
	}

	result, err = rl.IsAllowed(ctx, "bob@example.com", RateLimitTypeAuth)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Allowed {
		t.Error("bob's budget must be independent of alice's")
	}
}

func TestIsAllowedDisabled(t *testing.T) {
	rl := NewRateLimiter(nil, &Config{
		Enabled:      false,
		AuthRequests: 1,
	})

	for i := 0; i < 3; i++ {
		result, err := rl.IsAllowed(context.Background(), "10.0.0.4", RateLimitTypeAuth)
		if err != nil {
			t.Fatal(err)
		}
		if !result.Allowed {
			t.Fatal("disabled limiter must allow everything")
		}
	}
}
