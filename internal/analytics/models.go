package analytics

import "time"

// DashboardStats is the aggregate read-model behind the admin dashboard.
// It is assembled fresh on every (uncached) request as a pure function of
// the booking and package records at query time; nothing is written back.
type DashboardStats struct {
	Overview         OverviewMetrics     `json:"overview"`
	StatusBreakdown  map[string]int      `json:"status_breakdown"`
	TypeBreakdown    map[string]int      `json:"type_breakdown"`
	BookingsOverTime []DateCount         `json:"bookings_over_time"`
	PeakDays         []DayOfWeekCount    `json:"peak_days"`
	PeakHours        []HourCount         `json:"peak_hours"`
	RevenueByMonth   []RevenueMonthPoint `json:"revenue_by_month"`
	Forecast         []ForecastPoint     `json:"forecast"`
	GeneratedAt      time.Time           `json:"generated_at"`
}

// OverviewMetrics are the headline dashboard cards
type OverviewMetrics struct {
	TotalBookings       int     `json:"total_bookings"`
	PendingBookings     int     `json:"pending_bookings"`
	ApprovedBookings    int     `json:"approved_bookings"`
	BookingsThisWeek    int     `json:"bookings_this_week"`
	WeekOverWeekTrend   int     `json:"week_over_week_trend"`
	BookingsThisMonth   int     `json:"bookings_this_month"`
	MonthOverMonthTrend int     `json:"month_over_month_trend"`
	VisitsThisWeek      int     `json:"visits_this_week"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalEvents         int     `json:"total_events"`
	PublishedEvents     int     `json:"published_events"`
	TotalUsers          int     `json:"total_users"`
}

// DailyStats is one row of the daily bookings report
type DailyStats struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
}
