package ratelimit

import "testing"

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		path string
		want RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/metrics", RateLimitTypeHealth},
		{"/api/v1/auth/login", RateLimitTypeAuth},
		{"/api/v1/auth/reset", RateLimitTypeStrict},
		{"/api/v1/auth/change-password", RateLimitTypeStrict},
		{"/api/v1/bookings", RateLimitTypeBooking},
		{"/api/v1/admin/bookings/:id/status", RateLimitTypeBooking},
		{"/api/v1/analytics/admin/dashboard", RateLimitTypeReport},
		{"/api/v1/admin/content/:slug", RateLimitTypeAdmin},
		{"/api/v1/events", RateLimitTypePublic},
		{"/api/v1/packages", RateLimitTypePublic},
		{"/api/v1/content/:slug", RateLimitTypePublic},
		{"/api/v1/somewhere-else", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		if got := getRateLimitType(tt.path); got != tt.want {
			t.Errorf("getRateLimitType(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestGetLimitPerClass(t *testing.T) {
	rl := NewRateLimiter(nil, &Config{
		DefaultRequests: 60,
		PublicRequests:  100,
		AuthRequests:    10,
		StrictRequests:  3,
		BookingRequests: 20,
		AdminRequests:   200,
		ReportRequests:  30,
		HealthRequests:  120,
	})

	tests := []struct {
		class RateLimitType
		want  int
	}{
		{RateLimitTypeDefault, 60},
		{RateLimitTypePublic, 100},
		{RateLimitTypeAuth, 10},
		{RateLimitTypeStrict, 3},
		{RateLimitTypeBooking, 20},
		{RateLimitTypeAdmin, 200},
		{RateLimitTypeReport, 30},
		{RateLimitTypeHealth, 120},
		{RateLimitType("unknown"), 60},
	}

	for _, tt := range tests {
		if got := rl.getLimit(tt.class); got != tt.want {
			t.Errorf("getLimit(%s) = %d, want %d", tt.class, got, tt.want)
		}
	}
}
