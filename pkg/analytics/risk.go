package analytics

import (
	"fmt"
	"math"
	"time"
)

// RiskBand classifies an acute:chronic workload ratio.
type RiskBand string

const (
	RiskSafe    RiskBand = "safe"
	RiskCaution RiskBand = "caution"
	RiskHigh    RiskBand = "high"
)

// ACWR returns the acute:chronic workload ratio. A zero chronic baseline
// yields 0 rather than an undefined ratio; the value is never NaN or Inf.
func ACWR(weeklyLoad float64, chronicLoad float64) float64 {
	if chronicLoad <= 0 {
		return 0
	}
	return weeklyLoad / chronicLoad
}

// BandFor maps an ACWR value onto its risk band. Boundary values belong to
// the band listed first: exactly 0.8 and 1.3 are safe, exactly 0.6 and 1.5
// are caution.
func BandFor(acwr float64) RiskBand {
	switch {
	case acwr >= 0.8 && acwr <= 1.3:
		return RiskSafe
	case acwr >= 0.6 && acwr < 0.8:
		return RiskCaution
	case acwr > 1.3 && acwr <= 1.5:
		return RiskCaution
	default:
		return RiskHigh
	}
}

// Compliance returns the percentage of the trailing 28 days ending at refDate
// on which at least one session was logged.
func Compliance(sessionDates []time.Time, refDate time.Time) float64 {
	ref := DateOf(refDate)
	from := ref.AddDate(0, 0, -27)

	seen := make(map[time.Time]struct{})
	for _, d := range sessionDates {
		day := DateOf(d)
		if day.Before(from) || day.After(ref) {
			continue
		}
		seen[day] = struct{}{}
	}
	return float64(len(seen)) / 28 * 100
}

// SummarizeWeek computes the weekly aggregate statistics over exactly the 7
// daily points of one week window. Missing days must already be present as
// zero points. The standard deviation uses the population formula; a
// perfectly uniform week (including an all-zero one) has monotony 0 so the
// ratio never degenerates.
func SummarizeWeek(days []DailyLoadPoint) WeeklySummary {
	if len(days) != 7 {
		panic(fmt.Sprintf("analytics: week summary expects 7 daily points, got %d", len(days)))
	}

	weeklyLoad := 0.0
	for _, d := range days {
		weeklyLoad += d.DailyLoad
	}
	mean := weeklyLoad / 7

	sumSquares := 0.0
	for _, d := range days {
		diff := d.DailyLoad - mean
		sumSquares += diff * diff
	}
	stdDev := math.Sqrt(sumSquares / 7)

	monotony := 0.0
	if stdDev > 0 {
		monotony = mean / stdDev
	}

	return WeeklySummary{
		WeeklyLoad:       weeklyLoad,
		MeanDailyLoad:    mean,
		StdDevDailyLoad:  stdDev,
		TrainingMonotony: monotony,
		Strain:           weeklyLoad * monotony,
	}
}
