package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"xplorium/internal/shared/utils/response"
	"xplorium/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Middleware enforces per-class budgets on every route. Authenticated
// requests are keyed by account email so limits follow the user across IPs.
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := getIdentifier(c)
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), identifier, limitType)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusInternalServerError,
				"Rate limit check failed", nil, nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			metrics.RateLimitRejectionsTotal.Inc()
			retryAfter := int(result.RetryAfter.Seconds())
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded", nil, map[string]interface{}{
					"limit":       result.Limit,
					"reset_time":  result.ResetTime,
					"retry_after": retryAfter,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}

// getRateLimitType maps a route to its request class
func getRateLimitType(path string) RateLimitType {
	switch {
	// Health/monitoring endpoints
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"),
		strings.HasPrefix(path, "/status"),
		strings.HasPrefix(path, "/metrics"):
		return RateLimitTypeHealth

	// Password reset and other credential-sensitive flows
	case strings.Contains(path, "/auth/reset"),
		strings.Contains(path, "/auth/change-password"):
		return RateLimitTypeStrict

	// Authentication endpoints
	case strings.Contains(path, "/auth/"):
		return RateLimitTypeAuth

	// Dashboard and report endpoints
	case strings.Contains(path, "/analytics"):
		return RateLimitTypeReport

	// Booking creation and status changes, wherever they are mounted; checked
	// before the admin catch-all so admin booking moderation stays in the
	// booking class
	case strings.Contains(path, "/bookings"):
		return RateLimitTypeBooking

	// Admin back-office (catch-all for admin)
	case strings.Contains(path, "/admin/"):
		return RateLimitTypeAdmin

	// Public browsing endpoints
	case strings.Contains(path, "/events"),
		strings.Contains(path, "/packages"),
		strings.Contains(path, "/content"):
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}

// getIdentifier prefers the authenticated email, falling back to client IP
func getIdentifier(c *gin.Context) string {
	if email, exists := c.Get("user_email"); exists {
		if s, ok := email.(string); ok && s != "" {
			return s
		}
	}
	return getClientIP(c)
}

// getClientIP extracts the real client IP
func getClientIP(c *gin.Context) string {
	xForwardedFor := c.GetHeader("X-Forwarded-For")
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	xRealIP := c.GetHeader("X-Real-IP")
	if xRealIP != "" {
		if net.ParseIP(xRealIP) != nil {
			return xRealIP
		}
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}

	return ip
}
