package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/athlion/athlion/internal/utils"
	"github.com/athlion/athlion/pkg/session"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// reportWeeks is the length of the ACWR trend series: one point per week,
// ending at the active window's end date.
const reportWeeks = 5

// initialScanDays is how far back CurrentWindow looks for the most recent
// session when picking the starting week.
const initialScanDays = 30

// supersetDays is the history fetched for one report call. The oldest of the
// 5 reference dates lies 28 days before the window end and its chronic
// baseline reaches back another 27 days, so a single fetch of 55 trailing
// days covers every downstream aggregate.
const supersetDays = 55

type Service interface {
	// CurrentWindow resolves the initial reporting week for an athlete.
	CurrentWindow(ctx context.Context, athleteId uuid.UUID) (WeekWindow, error)
	// Navigate steps the window forward or backward by one week. A forward
	// step into a week without sessions keeps the current window.
	Navigate(ctx context.Context, athleteId uuid.UUID, current WeekWindow, direction Direction) (WeekWindow, error)
	// ComputeWeeklyTable builds the per-slot week table plus summary stats.
	ComputeWeeklyTable(ctx context.Context, athleteId uuid.UUID, window WeekWindow) (WeeklyTable, error)
	// ComputeLoadReport builds the trailing 5-week ACWR trend series ending
	// at the window's end date, ascending by date.
	ComputeLoadReport(ctx context.Context, athleteId uuid.UUID, window WeekWindow) ([]LoadReportPoint, error)
}

type ServiceImpl struct {
	sessions session.Repository
	clock    utils.Clock
}

func NewService(sessions session.Repository) *ServiceImpl {
	return &ServiceImpl{
		sessions: sessions,
		clock:    &utils.SystemClock{},
	}
}

func (s *ServiceImpl) CurrentWindow(ctx context.Context, athleteId uuid.UUID) (WeekWindow, error) {
	today := DateOf(s.clock.Now())
	recent, err := s.sessions.FindByDateRange(ctx, athleteId, today.AddDate(0, 0, -initialScanDays), today)
	if err != nil {
		log.Errorf("failed to scan recent sessions for athlete %s: %v", athleteId, err)
		return WeekWindow{}, fmt.Errorf("failed to fetch recent sessions: %w", err)
	}
	return InitialWindow(recent, today), nil
}

func (s *ServiceImpl) Navigate(ctx context.Context, athleteId uuid.UUID, current WeekWindow, direction Direction) (WeekWindow, error) {
	current.mustBeValid()
	switch direction {
	case DirectionPrev:
		return PrevWindow(current), nil
	case DirectionNext:
		candidate := current.Next()
		destination, err := s.sessions.FindByDateRange(ctx, athleteId, candidate.Start, candidate.End)
		if err != nil {
			return WeekWindow{}, fmt.Errorf("failed to fetch sessions for next week: %w", err)
		}
		return NextWindow(current, destination), nil
	default:
		return WeekWindow{}, ErrUnknownDirection
	}
}

func (s *ServiceImpl) ComputeWeeklyTable(ctx context.Context, athleteId uuid.UUID, window WeekWindow) (WeeklyTable, error) {
	window.mustBeValid()

	weekSessions, err := s.sessions.FindByDateRange(ctx, athleteId, window.Start, window.End)
	if err != nil {
		log.Errorf("failed to fetch week sessions for athlete %s: %v", athleteId, err)
		return WeeklyTable{}, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	return BuildWeeklyTable(weekSessions, window), nil
}

// BuildWeeklyTable assembles the 7-day, 14-slot table for one window from
// the sessions inside it. Every slot is present; empty slots stay nil.
func BuildWeeklyTable(weekSessions []session.TrainingSession, window WeekWindow) WeeklyTable {
	window.mustBeValid()

	dailyPoints := DailyLoads(weekSessions, window.Start, window.End)

	slots := make(map[time.Time]map[session.Slot]*SlotEntry, 7)
	for _, ts := range weekSessions {
		day := DateOf(ts.Date)
		if !window.Contains(day) {
			continue
		}
		if slots[day] == nil {
			slots[day] = make(map[session.Slot]*SlotEntry, 2)
		}
		// At most one session per slot is expected; a double-booked slot
		// keeps the latest entry while the daily load still sums both.
		slots[day][ts.Slot] = &SlotEntry{
			TrainingType: ts.TrainingType,
			RPE:          ts.RPE,
			DurationMin:  ts.DurationMin,
			UnitLoad:     ts.UnitLoad,
		}
	}

	days := make([]DayRow, 0, 7)
	for _, p := range dailyPoints {
		days = append(days, DayRow{
			Date:      p.Date,
			AM:        slots[p.Date][session.SlotAM],
			PM:        slots[p.Date][session.SlotPM],
			DailyLoad: p.DailyLoad,
		})
	}

	return WeeklyTable{
		Window:  window,
		Days:    days,
		Summary: SummarizeWeek(dailyPoints),
	}
}

func (s *ServiceImpl) ComputeLoadReport(ctx context.Context, athleteId uuid.UUID, window WeekWindow) ([]LoadReportPoint, error) {
	window.mustBeValid()

	end := window.End
	from := end.AddDate(0, 0, -supersetDays)
	history, err := s.sessions.FindByDateRange(ctx, athleteId, from, end)
	if err != nil {
		log.Errorf("failed to fetch session history for athlete %s: %v", athleteId, err)
		return nil, fmt.Errorf("failed to fetch session history: %w", err)
	}

	return BuildLoadReport(history, end), nil
}

// BuildLoadReport derives the 5-point trend series from a single in-memory
// session history reaching back far enough to cover every point's chronic
// window. Reference dates step back 7 days at a time from end; the result is
// ascending by date. An empty history yields 5 zero points.
func BuildLoadReport(history []session.TrainingSession, end time.Time) []LoadReportPoint {
	end = DateOf(end)
	from := end.AddDate(0, 0, -supersetDays)

	series := DailyLoads(history, from, end)
	loadByDate := make(map[time.Time]float64, len(series))
	for _, p := range series {
		loadByDate[p.Date] = p.DailyLoad
	}
	sessionDates := make([]time.Time, 0, len(history))
	for _, ts := range history {
		sessionDates = append(sessionDates, ts.Date)
	}

	points := make([]LoadReportPoint, 0, reportWeeks)
	for i := reportWeeks - 1; i >= 0; i-- {
		refDate := end.AddDate(0, 0, -7*i)

		weeklyLoad := 0.0
		for d := 0; d < 7; d++ {
			weeklyLoad += loadByDate[refDate.AddDate(0, 0, -d)]
		}
		chronicLoad := ChronicLoad(series, refDate)

		points = append(points, LoadReportPoint{
			Date:        refDate,
			DailyLoad:   loadByDate[refDate],
			WeeklyLoad:  weeklyLoad,
			ChronicLoad: chronicLoad,
			ACWR:        ACWR(weeklyLoad, chronicLoad),
			Compliance:  Compliance(sessionDates, refDate),
		})
	}
	return points
}
