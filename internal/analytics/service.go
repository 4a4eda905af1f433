package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"xplorium/internal/bookings"
	"xplorium/internal/shared/constants"
	"xplorium/pkg/cache"
	"xplorium/pkg/metrics"
)

// revenueHistoryMonths is how far back the forecast input reaches
const revenueHistoryMonths = 12

// lookbackDays is the bookings-over-time histogram window
const lookbackDays = 30

// Service defines the analytics service interface
type Service interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	GetDailyStats(ctx context.Context, days int) ([]DailyStats, error)
	GetForecast(ctx context.Context) (*RevenueForecast, error)
	SetCacheService(cacheService cache.Service)
}

// service implements the Service interface
type service struct {
	repo         Repository
	cacheService cache.Service
}

// NewService creates a new analytics service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// GetDashboardStats assembles the full admin dashboard. The result is a pure
// function of the store at query time; nothing is written back. Assembled
// dashboards are cached briefly since every admin page load hits this path.
func (s *service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	cacheKey := constants.CACHE_KEY_ANALYTICS_DASHBOARD

	if s.cacheService != nil {
		var cached DashboardStats
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	started := time.Now()
	stats, err := s.buildDashboardStats(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	metrics.DashboardBuildDuration.Observe(time.Since(started).Seconds())

	// Cache failures degrade to uncached reads, never to errors
	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, stats, constants.TTL_ANALYTICS_DASHBOARD)
	}

	return stats, nil
}

// buildDashboardStats fans the independent reads out, then runs the pure
// engines over the snapshot. now is a parameter so the window math is
// deterministic under test.
func (s *service) buildDashboardStats(ctx context.Context, now time.Time) (*DashboardStats, error) {
	var (
		records        []BookingRecord
		revenueHistory []RevenueMonthPoint
		totalRevenue   float64
		totalEvents    int64
		publishedCount int64
		totalUsers     int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.repo.GetBookingRecords(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		revenueHistory, err = s.repo.GetRevenueByMonth(gctx, revenueHistoryMonths)
		return err
	})
	g.Go(func() error {
		var err error
		totalRevenue, err = s.repo.GetTotalRevenue(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalEvents, err = s.repo.CountEvents(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		publishedCount, err = s.repo.CountPublishedEvents(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalUsers, err = s.repo.CountUsers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to assemble dashboard stats: %w", err)
	}

	statusCounts := CountByStatus(records)
	typeCounts := CountByType(records)

	weekStart := now.AddDate(0, 0, -7)
	prevWeekStart := now.AddDate(0, 0, -14)
	monthStart := now.AddDate(0, 0, -30)
	prevMonthStart := now.AddDate(0, 0, -60)

	thisWeek := CountCreatedBetween(records, weekStart, now)
	lastWeek := CountCreatedBetween(records, prevWeekStart, weekStart)
	thisMonth := CountCreatedBetween(records, monthStart, now)
	lastMonth := CountCreatedBetween(records, prevMonthStart, monthStart)

	// Visits use the visit date, not the creation date: from the start of
	// today through the next seven days.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	visitsThisWeek := CountOccurringBetween(records, today, today.AddDate(0, 0, 7))

	stats := &DashboardStats{
		Overview: OverviewMetrics{
			TotalBookings:       len(records),
			PendingBookings:     statusCounts[bookings.StatusPending],
			ApprovedBookings:    statusCounts[bookings.StatusApproved],
			BookingsThisWeek:    thisWeek,
			WeekOverWeekTrend:   PercentTrend(thisWeek, lastWeek),
			BookingsThisMonth:   thisMonth,
			MonthOverMonthTrend: PercentTrend(thisMonth, lastMonth),
			VisitsThisWeek:      visitsThisWeek,
			TotalRevenue:        totalRevenue,
			TotalEvents:         int(totalEvents),
			PublishedEvents:     int(publishedCount),
			TotalUsers:          int(totalUsers),
		},
		StatusBreakdown:  statusBreakdown(statusCounts),
		TypeBreakdown:    typeBreakdown(typeCounts),
		BookingsOverTime: BookingsOverTime(records, lookbackDays, now),
		PeakDays:         PeakDaysOfWeek(records),
		PeakHours:        PeakHours(records),
		RevenueByMonth:   revenueHistory,
		GeneratedAt:      now,
	}

	forecast, err := ForecastRevenue(revenueHistory)
	switch {
	case err == nil:
		stats.Forecast = forecast.Points
	case errors.Is(err, ErrNotEnoughData):
		// A young venue simply gets an empty forecast section
		stats.Forecast = []ForecastPoint{}
	default:
		return nil, fmt.Errorf("failed to forecast revenue: %w", err)
	}

	return stats, nil
}

// GetDailyStats returns per-day booking counts over the trailing window
func (s *service) GetDailyStats(ctx context.Context, days int) ([]DailyStats, error) {
	if days < 1 || days > 365 {
		days = lookbackDays
	}

	records, err := s.repo.GetBookingRecords(ctx)
	if err != nil {
		return nil, err
	}

	buckets := BookingsOverTime(records, days, time.Now())
	stats := make([]DailyStats, 0, len(buckets))
	for _, b := range buckets {
		stats = append(stats, DailyStats{Date: b.Date, Bookings: b.Count})
	}
	return stats, nil
}

// GetForecast returns the standalone revenue forecast, cached like the
// dashboard. ErrNotEnoughData passes through for the controller to map.
func (s *service) GetForecast(ctx context.Context) (*RevenueForecast, error) {
	cacheKey := constants.CACHE_KEY_ANALYTICS_FORECAST

	if s.cacheService != nil {
		var cached RevenueForecast
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	history, err := s.repo.GetRevenueByMonth(ctx, revenueHistoryMonths)
	if err != nil {
		return nil, err
	}

	forecast, err := ForecastRevenue(history)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, forecast, constants.TTL_ANALYTICS_FORECAST)
	}

	return forecast, nil
}

func statusBreakdown(counts map[bookings.Status]int) map[string]int {
	out := make(map[string]int, len(counts))
	for status, count := range counts {
		out[status.String()] = count
	}
	return out
}

func typeBreakdown(counts map[bookings.Type]int) map[string]int {
	out := make(map[string]int, len(counts))
	for bookingType, count := range counts {
		out[bookingType.String()] = count
	}
	return out
}
