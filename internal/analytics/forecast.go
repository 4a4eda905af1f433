package analytics

import (
	"errors"
	"time"
)

// ErrNotEnoughData is returned when a forecast is requested with fewer than
// two historical points; a regression over a single point is undefined.
var ErrNotEnoughData = errors.New("not enough historical data to fit a forecast")

// Confidence is the qualitative tier derived from the regression fit quality
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// forecastMonths is how far the revenue projection extends
const forecastMonths = 3

// RevenueMonthPoint is one month of historical revenue, derived per request
// from approved/completed bookings joined with their package price.
type RevenueMonthPoint struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
}

// ForecastPoint is one projected month of revenue
type ForecastPoint struct {
	Month             string     `json:"month"`
	ForecastedRevenue float64    `json:"forecasted_revenue"`
	Confidence        Confidence `json:"confidence"`
}

// RevenueForecast is the full output of the forecast engine
type RevenueForecast struct {
	Points     []ForecastPoint `json:"points"`
	Slope      float64         `json:"slope"`
	Intercept  float64         `json:"intercept"`
	RSquared   float64         `json:"r_squared"`
	Confidence Confidence      `json:"confidence"`
}

// ForecastRevenue fits an ordinary least-squares line over (monthIndex,
// revenue) pairs in chronological order and projects the next three months.
//
// A constant series has zero total variance, which leaves R² undefined; that
// case is special-cased to a flat projection with low confidence instead of
// letting NaN leak into the output.
func ForecastRevenue(history []RevenueMonthPoint) (*RevenueForecast, error) {
	n := len(history)
	if n < 2 {
		return nil, ErrNotEnoughData
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, p := range history {
		x := float64(i)
		sumX += x
		sumY += p.Revenue
		sumXY += x * p.Revenue
		sumXX += x * x
	}

	fn := float64(n)
	mean := sumY / fn

	// Month indexes are distinct, so the denominator is never zero for n >= 2
	denom := fn*sumXX - sumX*sumX
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	var ssTot, ssRes float64
	for i, p := range history {
		fitted := intercept + slope*float64(i)
		ssTot += (p.Revenue - mean) * (p.Revenue - mean)
		ssRes += (p.Revenue - fitted) * (p.Revenue - fitted)
	}

	var rSquared float64
	confidence := ConfidenceLow
	if ssTot == 0 {
		// All-identical history: force an exactly flat line
		slope = 0
		intercept = mean
		rSquared = 0
	} else {
		rSquared = 1 - ssRes/ssTot
		confidence = tierFor(rSquared)
	}

	points := make([]ForecastPoint, 0, forecastMonths)
	for k := 0; k < forecastMonths; k++ {
		points = append(points, ForecastPoint{
			Month:             nextMonthLabel(history[n-1].Month, k+1),
			ForecastedRevenue: intercept + slope*float64(n+k),
			Confidence:        confidence,
		})
	}

	return &RevenueForecast{
		Points:     points,
		Slope:      slope,
		Intercept:  intercept,
		RSquared:   rSquared,
		Confidence: confidence,
	}, nil
}

// tierFor maps an R² value to its confidence tier
func tierFor(rSquared float64) Confidence {
	switch {
	case rSquared >= 0.7:
		return ConfidenceHigh
	case rSquared >= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// nextMonthLabel shifts a YYYY-MM label forward. A label that does not parse
// yields an empty month rather than failing the whole forecast.
func nextMonthLabel(lastMonth string, offset int) string {
	t, err := time.Parse("2006-01", lastMonth)
	if err != nil {
		return ""
	}
	return t.AddDate(0, offset, 0).Format("2006-01")
}
