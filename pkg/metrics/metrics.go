package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xplorium_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	BookingsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xplorium_bookings_created_total",
		Help: "Bookings created by type",
	}, []string{"type"})

	BookingStatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xplorium_booking_status_changes_total",
		Help: "Booking status transitions",
	}, []string{"to"})

	DashboardBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "xplorium_dashboard_build_duration_seconds",
		Help:    "Dashboard stats assembly duration",
		Buckets: prometheus.DefBuckets,
	})

	RateLimitRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xplorium_rate_limit_rejections_total",
		Help: "Requests rejected by the rate limiter",
	})

	NotificationsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xplorium_notifications_published_total",
		Help: "Notifications published to Kafka",
	}, []string{"type"})
)
