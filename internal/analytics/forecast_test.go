package analytics

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func monthlyHistory(start string, revenues ...float64) []RevenueMonthPoint {
	points := make([]RevenueMonthPoint, 0, len(revenues))
	for i, revenue := range revenues {
		points = append(points, RevenueMonthPoint{
			Month:   nextMonthLabel(start, i),
			Revenue: revenue,
		})
	}
	return points
}

func TestForecastRevenueLinearSeries(t *testing.T) {
	// revenue = 1000, 2000, ..., 12000 fits exactly
	revenues := make([]float64, 12)
	for i := range revenues {
		revenues[i] = float64((i + 1) * 1000)
	}
	history := monthlyHistory("2025-09", revenues...)

	forecast, err := ForecastRevenue(history)
	if err != nil {
		t.Fatalf("ForecastRevenue: %v", err)
	}

	if math.Abs(forecast.RSquared-1.0) > 1e-9 {
		t.Errorf("R² = %v, want 1.0", forecast.RSquared)
	}
	if forecast.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %s, want high", forecast.Confidence)
	}

	want := []struct {
		month   string
		revenue float64
	}{
		{"2026-09", 13000},
		{"2026-10", 14000},
		{"2026-11", 15000},
	}
	if len(forecast.Points) != len(want) {
		t.Fatalf("expected %d forecast points, got %d", len(want), len(forecast.Points))
	}
	for i, w := range want {
		p := forecast.Points[i]
		if p.Month != w.month {
			t.Errorf("point %d month = %s, want %s", i, p.Month, w.month)
		}
		if math.Abs(p.ForecastedRevenue-w.revenue) > 1e-6 {
			t.Errorf("point %d revenue = %v, want %v", i, p.ForecastedRevenue, w.revenue)
		}
		if p.Confidence != ConfidenceHigh {
			t.Errorf("point %d confidence = %s, want high", i, p.Confidence)
		}
	}
}

func TestForecastRevenueConstantSeries(t *testing.T) {
	history := monthlyHistory("2026-01", 5000, 5000, 5000, 5000, 5000, 5000)

	forecast, err := ForecastRevenue(history)
	if err != nil {
		t.Fatalf("ForecastRevenue: %v", err)
	}

	if forecast.Slope != 0 {
		t.Errorf("slope = %v, want 0", forecast.Slope)
	}
	if forecast.RSquared != 0 {
		t.Errorf("R² = %v, want 0", forecast.RSquared)
	}
	if forecast.Confidence != ConfidenceLow {
		t.Errorf("confidence = %s, want low", forecast.Confidence)
	}
	for i, p := range forecast.Points {
		if math.IsNaN(p.ForecastedRevenue) || math.IsInf(p.ForecastedRevenue, 0) {
			t.Fatalf("point %d revenue is not finite: %v", i, p.ForecastedRevenue)
		}
		if math.Abs(p.ForecastedRevenue-5000) > 1e-6 {
			t.Errorf("point %d revenue = %v, want flat 5000", i, p.ForecastedRevenue)
		}
	}
}

func TestForecastRevenueNotEnoughData(t *testing.T) {
	cases := [][]RevenueMonthPoint{
		nil,
		{},
		monthlyHistory("2026-05", 4000),
	}
	for _, history := range cases {
		t.Run(fmt.Sprintf("%d_points", len(history)), func(t *testing.T) {
			forecast, err := ForecastRevenue(history)
			if !errors.Is(err, ErrNotEnoughData) {
				t.Fatalf("err = %v, want ErrNotEnoughData", err)
			}
			if forecast != nil {
				t.Errorf("expected nil forecast, got %+v", forecast)
			}
		})
	}
}

func TestForecastRevenueNoisySeries(t *testing.T) {
	// Upward trend with noise: fit is imperfect but bounded
	history := monthlyHistory("2026-01", 1000, 2400, 1800, 3500, 3100, 4200)

	forecast, err := ForecastRevenue(history)
	if err != nil {
		t.Fatalf("ForecastRevenue: %v", err)
	}

	if forecast.RSquared <= 0 || forecast.RSquared >= 1 {
		t.Errorf("R² = %v, want strictly between 0 and 1", forecast.RSquared)
	}
	if forecast.Slope <= 0 {
		t.Errorf("slope = %v, want positive for an upward series", forecast.Slope)
	}
	for i, p := range forecast.Points {
		if math.IsNaN(p.ForecastedRevenue) {
			t.Fatalf("point %d revenue is NaN", i)
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		rSquared float64
		want     Confidence
	}{
		{1.0, ConfidenceHigh},
		{0.7, ConfidenceHigh},
		{0.69, ConfidenceMedium},
		{0.4, ConfidenceMedium},
		{0.39, ConfidenceLow},
		{0.0, ConfidenceLow},
	}
	for _, tt := range tests {
		if got := tierFor(tt.rSquared); got != tt.want {
			t.Errorf("tierFor(%v) = %s, want %s", tt.rSquared, got, tt.want)
		}
	}
}

func TestNextMonthLabel(t *testing.T) {
	tests := []struct {
		last   string
		offset int
		want   string
	}{
		{"2026-08", 1, "2026-09"},
		{"2026-12", 1, "2027-01"},
		{"2026-11", 3, "2027-02"},
		{"not-a-month", 1, ""},
	}
	for _, tt := range tests {
		if got := nextMonthLabel(tt.last, tt.offset); got != tt.want {
			t.Errorf("nextMonthLabel(%q, %d) = %q, want %q", tt.last, tt.offset, got, tt.want)
		}
	}
}
