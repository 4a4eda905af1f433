package analytics

import (
	"testing"
	"time"

	"xplorium/internal/bookings"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

func TestCountByStatus(t *testing.T) {
	records := []BookingRecord{
		{Status: bookings.StatusPending},
		{Status: bookings.StatusPending},
		{Status: bookings.StatusApproved},
	}

	counts := CountByStatus(records)

	if len(counts) != len(bookings.AllStatuses) {
		t.Fatalf("expected all %d statuses present, got %d", len(bookings.AllStatuses), len(counts))
	}
	if counts[bookings.StatusPending] != 2 {
		t.Errorf("PENDING = %d, want 2", counts[bookings.StatusPending])
	}
	if counts[bookings.StatusApproved] != 1 {
		t.Errorf("APPROVED = %d, want 1", counts[bookings.StatusApproved])
	}
	if counts[bookings.StatusRejected] != 0 {
		t.Errorf("REJECTED = %d, want 0 (zero-initialized)", counts[bookings.StatusRejected])
	}

	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != len(records) {
		t.Errorf("status counts sum to %d, want %d", sum, len(records))
	}
}

func TestCountByTypeSumsToTotal(t *testing.T) {
	records := []BookingRecord{
		{Type: bookings.TypeCafe},
		{Type: bookings.TypeParty},
		{Type: bookings.TypeParty},
		{Type: bookings.TypeSensoryRoom},
	}

	counts := CountByType(records)

	if len(counts) != len(bookings.AllTypes) {
		t.Fatalf("expected all %d types present, got %d", len(bookings.AllTypes), len(counts))
	}
	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != len(records) {
		t.Errorf("type counts sum to %d, want %d", sum, len(records))
	}
	if counts[bookings.TypeParty] != 2 {
		t.Errorf("PARTY = %d, want 2", counts[bookings.TypeParty])
	}
}

func TestCountCreatedVsOccurringAreDistinct(t *testing.T) {
	// Created last week, visiting next month: the two windows must not
	// see the same booking.
	created := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	visit := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	records := []BookingRecord{{CreatedAt: created, Date: visit}}

	weekStart := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	if got := CountCreatedBetween(records, weekStart, weekEnd); got != 1 {
		t.Errorf("CountCreatedBetween = %d, want 1", got)
	}
	if got := CountOccurringBetween(records, weekStart, weekEnd); got != 0 {
		t.Errorf("CountOccurringBetween = %d, want 0", got)
	}
}

func TestCountBetweenWindowBounds(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)
	records := []BookingRecord{
		{CreatedAt: start},                     // inclusive start
		{CreatedAt: end},                       // exclusive end
		{CreatedAt: start.Add(72 * time.Hour)}, // inside
	}

	if got := CountCreatedBetween(records, start, end); got != 2 {
		t.Errorf("CountCreatedBetween = %d, want 2 (inclusive start, exclusive end)", got)
	}
}

func TestPercentTrend(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     int
	}{
		{"zero over zero", 0, 0, 100},
		{"growth from zero", 5, 0, 100},
		{"doubling", 20, 10, 100},
		{"halving", 5, 10, -50},
		{"flat", 10, 10, 0},
		{"rounds half up", 3, 2, 50},
		{"rounds fractional", 7, 3, 133},
		{"drop to zero", 0, 4, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentTrend(tt.current, tt.previous); got != tt.want {
				t.Errorf("PercentTrend(%d, %d) = %d, want %d", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestPeakDaysOfWeek(t *testing.T) {
	// 2026-08-24 is a Monday. Three Saturday visits, two Monday, one Friday.
	records := []BookingRecord{
		{Date: mustDate(t, "2026-08-29")}, // Saturday
		{Date: mustDate(t, "2026-08-29")},
		{Date: mustDate(t, "2026-09-05")}, // Saturday
		{Date: mustDate(t, "2026-08-24")}, // Monday
		{Date: mustDate(t, "2026-08-31")}, // Monday
		{Date: mustDate(t, "2026-08-28")}, // Friday
	}

	got := PeakDaysOfWeek(records)

	if len(got) != 7 {
		t.Fatalf("expected all 7 days, got %d", len(got))
	}
	if got[0].Day != "Saturday" || got[0].Count != 3 {
		t.Errorf("top day = %s(%d), want Saturday(3)", got[0].Day, got[0].Count)
	}
	if got[1].Day != "Monday" || got[1].Count != 2 {
		t.Errorf("second day = %s(%d), want Monday(2)", got[1].Day, got[1].Count)
	}
	if got[2].Day != "Friday" || got[2].Count != 1 {
		t.Errorf("third day = %s(%d), want Friday(1)", got[2].Day, got[2].Count)
	}
	// Remaining zero-count days tie; natural Sunday..Saturday order breaks it
	wantTail := []string{"Sunday", "Tuesday", "Wednesday", "Thursday"}
	for i, want := range wantTail {
		if got[3+i].Day != want || got[3+i].Count != 0 {
			t.Errorf("position %d = %s(%d), want %s(0)", 3+i, got[3+i].Day, got[3+i].Count, want)
		}
	}
}

func TestPeakHoursSkipsUnparsableTimes(t *testing.T) {
	records := []BookingRecord{
		{Time: "10:00"},
		{Time: "10:30"},
		{Time: "14:00"},
		{Time: "garbage"},
		{Time: ""},
		{Time: "25:00"},
	}

	got := PeakHours(records)

	if len(got) != 2 {
		t.Fatalf("expected 2 hour buckets, got %d", len(got))
	}
	if got[0].Hour != 10 || got[0].Count != 2 {
		t.Errorf("top hour = %d(%d), want 10(2)", got[0].Hour, got[0].Count)
	}
	if got[1].Hour != 14 || got[1].Count != 1 {
		t.Errorf("second hour = %d(%d), want 14(1)", got[1].Hour, got[1].Count)
	}
}

func TestPeakHoursCapsAtTen(t *testing.T) {
	var records []BookingRecord
	for hour := 8; hour < 20; hour++ { // 12 distinct hours
		records = append(records, BookingRecord{Time: time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("15:04")})
	}

	got := PeakHours(records)

	if len(got) != 10 {
		t.Fatalf("expected top 10 hours, got %d", len(got))
	}
	// All counts tie at 1, so ties resolve by ascending hour
	for i := 1; i < len(got); i++ {
		if got[i].Hour <= got[i-1].Hour {
			t.Errorf("hours not ascending on tie: %d after %d", got[i].Hour, got[i-1].Hour)
		}
	}
}

func TestBookingsOverTime(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	records := []BookingRecord{
		{Date: mustDate(t, "2026-08-10")},
		{Date: mustDate(t, "2026-08-10")},
		{Date: mustDate(t, "2026-08-20")},
		{Date: mustDate(t, "2026-08-25")},
		{Date: mustDate(t, "2026-06-01")}, // outside the 30-day window
	}

	got := BookingsOverTime(records, 30, now)

	if len(got) != 3 {
		t.Fatalf("expected 3 distinct days, got %d", len(got))
	}
	want := []DateCount{
		{Date: "2026-08-10", Count: 2},
		{Date: "2026-08-20", Count: 1},
		{Date: "2026-08-25", Count: 1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBookingsOverTimeEmptyInput(t *testing.T) {
	got := BookingsOverTime(nil, 30, time.Now())
	if len(got) != 0 {
		t.Errorf("expected no buckets for empty input, got %d", len(got))
	}
}
