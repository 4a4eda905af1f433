package analytics

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"xplorium/internal/bookings"
	"xplorium/internal/events"
	"xplorium/internal/users"
)

// Repository defines the analytics repository interface
type Repository interface {
	GetBookingRecords(ctx context.Context) ([]BookingRecord, error)
	GetRevenueByMonth(ctx context.Context, months int) ([]RevenueMonthPoint, error)
	GetTotalRevenue(ctx context.Context) (float64, error)
	CountEvents(ctx context.Context) (int64, error)
	CountPublishedEvents(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
}

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new analytics repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetBookingRecords loads the flat read-model the aggregation engine
// consumes. All rows are fetched; the engines slice the windows themselves
// so every metric is computed from the same snapshot.
func (r *repository) GetBookingRecords(ctx context.Context) ([]BookingRecord, error) {
	var records []BookingRecord
	err := r.db.WithContext(ctx).
		Model(&bookings.Booking{}).
		Select("status, type, date, time, created_at").
		Order("created_at ASC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load booking records: %w", err)
	}
	return records, nil
}

// GetRevenueByMonth sums package prices of approved/completed bookings per
// visit month over the trailing window, oldest month first.
func (r *repository) GetRevenueByMonth(ctx context.Context, months int) ([]RevenueMonthPoint, error) {
	var points []RevenueMonthPoint
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("to_char(bookings.date, 'YYYY-MM') AS month, COALESCE(SUM(packages.price), 0) AS revenue").
		Joins("JOIN packages ON packages.id = bookings.package_id").
		Where("bookings.status IN ?", []string{
			bookings.StatusApproved.String(),
			bookings.StatusCompleted.String(),
		}).
		Where("bookings.date >= date_trunc('month', CURRENT_DATE) - make_interval(months => ?)", months-1).
		Group("to_char(bookings.date, 'YYYY-MM')").
		Order("month ASC").
		Scan(&points).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load revenue by month: %w", err)
	}
	return points, nil
}

// GetTotalRevenue sums package prices over all approved/completed bookings
func (r *repository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("COALESCE(SUM(packages.price), 0)").
		Joins("JOIN packages ON packages.id = bookings.package_id").
		Where("bookings.status IN ?", []string{
			bookings.StatusApproved.String(),
			bookings.StatusCompleted.String(),
		}).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute total revenue: %w", err)
	}
	return total, nil
}

func (r *repository) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&events.Event{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

func (r *repository) CountPublishedEvents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&events.Event{}).
		Where("status = ?", events.StatusPublished).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count published events: %w", err)
	}
	return count, nil
}

func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&users.User{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
