package notifications

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository persists notification opt-out preferences
type Repository interface {
	IsOptedOut(ctx context.Context, email string, notType NotificationType) (bool, error)
	OptOut(ctx context.Context, email string, notType NotificationType) error
	OptIn(ctx context.Context, email string, notType NotificationType) error
	ListOptOuts(ctx context.Context, email string) ([]Preference, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new notifications repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) IsOptedOut(ctx context.Context, email string, notType NotificationType) (bool, error) {
	var pref Preference
	err := r.db.WithContext(ctx).
		First(&pref, "email = ? AND type = ?", email, notType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check notification preference: %w", err)
	}
	return true, nil
}

func (r *repository) OptOut(ctx context.Context, email string, notType NotificationType) error {
	optedOut, err := r.IsOptedOut(ctx, email, notType)
	if err != nil {
		return err
	}
	if optedOut {
		return nil
	}

	pref := &Preference{Email: email, Type: notType}
	if err := r.db.WithContext(ctx).Create(pref).Error; err != nil {
		return fmt.Errorf("failed to record opt-out: %w", err)
	}
	return nil
}

func (r *repository) OptIn(ctx context.Context, email string, notType NotificationType) error {
	err := r.db.WithContext(ctx).
		Delete(&Preference{}, "email = ? AND type = ?", email, notType).Error
	if err != nil {
		return fmt.Errorf("failed to remove opt-out: %w", err)
	}
	return nil
}

func (r *repository) ListOptOuts(ctx context.Context, email string) ([]Preference, error) {
	var prefs []Preference
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("type ASC").
		Find(&prefs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list opt-outs: %w", err)
	}
	return prefs, nil
}
