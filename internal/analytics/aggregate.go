package analytics

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"xplorium/internal/bookings"
)

// BookingRecord is the flat read-model the aggregation engine consumes.
// Date is the day the visit occurs; CreatedAt is when the booking was made.
// The two drive different metrics and must never be conflated.
type BookingRecord struct {
	Status    bookings.Status `json:"status"`
	Type      bookings.Type   `json:"type"`
	Date      time.Time       `json:"date"`
	Time      string          `json:"time"` // "HH:MM" slot start
	CreatedAt time.Time       `json:"created_at"`
}

// DayOfWeekCount is one bucket of the day-of-week peak analysis
type DayOfWeekCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`

	weekday time.Weekday
}

// HourCount is one bucket of the hour-of-day peak analysis
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// DateCount is one bucket of the bookings-over-time histogram
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CountByStatus tallies records per booking status. Every status appears in
// the result, zero-initialized, so the values always sum to len(records).
func CountByStatus(records []BookingRecord) map[bookings.Status]int {
	counts := make(map[bookings.Status]int, len(bookings.AllStatuses))
	for _, s := range bookings.AllStatuses {
		counts[s] = 0
	}
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}

// CountByType tallies records per booking type, zero-initialized like
// CountByStatus.
func CountByType(records []BookingRecord) map[bookings.Type]int {
	counts := make(map[bookings.Type]int, len(bookings.AllTypes))
	for _, t := range bookings.AllTypes {
		counts[t] = 0
	}
	for _, r := range records {
		counts[r.Type]++
	}
	return counts
}

// CountCreatedBetween counts bookings MADE in [start, end) using CreatedAt.
func CountCreatedBetween(records []BookingRecord, start, end time.Time) int {
	n := 0
	for _, r := range records {
		if !r.CreatedAt.Before(start) && r.CreatedAt.Before(end) {
			n++
		}
	}
	return n
}

// CountOccurringBetween counts bookings whose visit Date falls in [start, end).
func CountOccurringBetween(records []BookingRecord, start, end time.Time) int {
	n := 0
	for _, r := range records {
		if !r.Date.Before(start) && r.Date.Before(end) {
			n++
		}
	}
	return n
}

// PercentTrend reports the rounded percentage change between two bucketed
// counts. A zero previous bucket reports 100; the dashboard relies on that
// convention.
func PercentTrend(current, previous int) int {
	if previous == 0 {
		return 100
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// PeakDaysOfWeek buckets records by the weekday of their visit date and
// returns all seven days sorted descending by count. Ties keep natural
// Sunday..Saturday order as a stable secondary sort.
func PeakDaysOfWeek(records []BookingRecord) []DayOfWeekCount {
	buckets := make([]DayOfWeekCount, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		buckets[wd] = DayOfWeekCount{Day: wd.String(), weekday: wd}
	}
	for _, r := range records {
		buckets[r.Date.Weekday()].Count++
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].weekday < buckets[j].weekday
	})
	return buckets
}

// PeakHours buckets records by the leading hour of their time slot and
// returns the top 10 hours descending by count. Records with an unparsable
// time field are skipped; one bad row never fails the batch.
func PeakHours(records []BookingRecord) []HourCount {
	counts := make(map[int]int)
	for _, r := range records {
		hour, ok := parseHour(r.Time)
		if !ok {
			continue
		}
		counts[hour]++
	}

	result := make([]HourCount, 0, len(counts))
	for hour, count := range counts {
		result = append(result, HourCount{Hour: hour, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Hour < result[j].Hour
	})

	if len(result) > 10 {
		result = result[:10]
	}
	return result
}

// parseHour extracts the leading hour component from an "HH:MM" string
func parseHour(value string) (int, bool) {
	head, _, found := strings.Cut(value, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// BookingsOverTime groups records by visit date within the lookback window
// ending at now and returns per-day counts ascending by date. Only days with
// at least one booking appear.
func BookingsOverTime(records []BookingRecord, lookbackDays int, now time.Time) []DateCount {
	cutoff := now.AddDate(0, 0, -lookbackDays)

	counts := make(map[string]int)
	for _, r := range records {
		if r.Date.Before(cutoff) || r.Date.After(now) {
			continue
		}
		counts[r.Date.Format("2006-01-02")]++
	}

	result := make([]DateCount, 0, len(counts))
	for date, count := range counts {
		result = append(result, DateCount{Date: date, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}
