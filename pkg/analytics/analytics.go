package analytics

import (
	"fmt"
	"time"
)

// DailyLoadPoint is the summed training load of one calendar day.
type DailyLoadPoint struct {
	Date      time.Time
	DailyLoad float64
}

// LoadReportPoint is one row of the ACWR trend series, keyed by the end date
// of the week it summarizes.
type LoadReportPoint struct {
	Date        time.Time
	DailyLoad   float64
	WeeklyLoad  float64
	ChronicLoad float64
	ACWR        float64
	Compliance  float64
}

// WeeklySummary aggregates the 7 daily loads of one week window.
type WeeklySummary struct {
	WeeklyLoad       float64
	MeanDailyLoad    float64
	StdDevDailyLoad  float64
	TrainingMonotony float64
	Strain           float64
}

// SlotEntry is the rendered content of one AM/PM table cell.
type SlotEntry struct {
	TrainingType string
	RPE          int
	DurationMin  int
	UnitLoad     float64
}

// DayRow is one table row: a calendar day with its two slots. A nil slot
// means nothing was logged there; the slot itself is always present.
type DayRow struct {
	Date      time.Time
	AM        *SlotEntry
	PM        *SlotEntry
	DailyLoad float64
}

// WeeklyTable is the full per-slot view of one week plus its summary.
type WeeklyTable struct {
	Window  WeekWindow
	Days    []DayRow // always 7, Monday through Sunday
	Summary WeeklySummary
}

// WeekWindow is a Monday-to-Sunday span. End is inclusive and always equals
// Start plus 6 days.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// WindowContaining returns the Monday-aligned week window that contains date.
func WindowContaining(date time.Time) WeekWindow {
	d := DateOf(date)
	delta := (int(d.Weekday()) - int(time.Monday) + 7) % 7
	start := d.AddDate(0, 0, -delta)
	return WeekWindow{Start: start, End: start.AddDate(0, 0, 6)}
}

// Next returns the window shifted forward by 7 days.
func (w WeekWindow) Next() WeekWindow {
	return WeekWindow{Start: w.Start.AddDate(0, 0, 7), End: w.End.AddDate(0, 0, 7)}
}

// Prev returns the window shifted backward by 7 days.
func (w WeekWindow) Prev() WeekWindow {
	return WeekWindow{Start: w.Start.AddDate(0, 0, -7), End: w.End.AddDate(0, 0, -7)}
}

// Contains reports whether date falls inside the window.
func (w WeekWindow) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Valid reports whether the window spans exactly 7 days.
func (w WeekWindow) Valid() bool {
	return w.End.Equal(w.Start.AddDate(0, 0, 6))
}

// mustBeValid panics on a malformed window. A window whose end is not
// start+6d is a violated precondition, not a runtime condition.
func (w WeekWindow) mustBeValid() {
	if !w.Valid() {
		panic(fmt.Sprintf("analytics: invalid week window %s - %s",
			w.Start.Format("2006-01-02"), w.End.Format("2006-01-02")))
	}
}

// DateOf truncates t to its calendar day at midnight UTC. All aggregation is
// keyed on these normalized values.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from time.Time, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}
