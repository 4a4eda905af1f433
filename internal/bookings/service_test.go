package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeRepository struct {
	created     []*Booking
	recentCount int64
}

func (f *fakeRepository) Create(ctx context.Context, booking *Booking) error {
	booking.ID = uuid.New()
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	for _, b := range f.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (f *fakeRepository) List(ctx context.Context, query *ListQuery) (*PaginatedBookings, error) {
	return &PaginatedBookings{}, nil
}

func (f *fakeRepository) Save(ctx context.Context, booking *Booking) error {
	return nil
}

func (f *fakeRepository) CountByEmailSince(ctx context.Context, email string, since time.Time) (int64, error) {
	return f.recentCount, nil
}

func validCreateRequest() *CreateBookingRequest {
	return &CreateBookingRequest{
		CustomerName:  "Sam Parker",
		CustomerEmail: "sam.parker@example.com",
		Type:          string(TypePlayground),
		Date:          time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:          "10:00",
		PartySize:     3,
	}
}

func TestCreateBookingDailyEmailCap(t *testing.T) {
	repo := &fakeRepository{recentCount: 5}
	svc := NewService(repo)

	_, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if !errors.Is(err, ErrTooManyBookings) {
		t.Fatalf("expected ErrTooManyBookings, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("capped request must not create a booking, created %d", len(repo.created))
	}
}

func TestCreateBookingUnderDailyEmailCap(t *testing.T) {
	repo := &fakeRepository{recentCount: 4}
	svc := NewService(repo)

	booking, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.Status != string(StatusPending) {
		t.Errorf("Status = %s, want %s", booking.Status, StatusPending)
	}
	if len(repo.created) != 1 {
		t.Errorf("expected 1 created booking, got %d", len(repo.created))
	}
}

func TestCreateBookingPastDate(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo)

	req := validCreateRequest()
	req.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	if _, err := svc.CreateBooking(context.Background(), req); !errors.Is(err, ErrDateInPast) {
		t.Fatalf("expected ErrDateInPast, got %v", err)
	}
}
