package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/athlion/athlion/internal/utils"
	"github.com/athlion/athlion/pkg/session"
	"github.com/stretchr/testify/assert"
)

var sessionRepoStub = session.NewRepositoryStub()
var clock = &utils.MockClock{FixedNow: time.Date(2024, 4, 28, 12, 0, 0, 0, time.UTC)}

func setup(t *testing.T) (Service, context.Context, func()) {
	service := &ServiceImpl{
		sessions: sessionRepoStub,
		clock:    clock,
	}
	return service, context.Background(), func() {
		t.Log("Teardown after test")
		sessionRepoStub.Reset()
		clock.SetNow(time.Date(2024, 4, 28, 12, 0, 0, 0, time.UTC))
	}
}

func storeAll(t *testing.T, sessions []session.TrainingSession) {
	t.Helper()
	for _, s := range sessions {
		_, err := sessionRepoStub.Store(context.Background(), s)
		assert.NoError(t, err)
	}
}

func TestServiceImpl_ComputeLoadReport(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	// given: one 100-load session per weekday for 4 consecutive weeks
	sunday := time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC)
	storeAll(t, weekdaySessions(sunday, 4, 100))
	window := WindowContaining(sunday)

	// when
	points, err := service.ComputeLoadReport(ctx, testAthleteId, window)

	// then
	assert.NoError(t, err)
	assert.Len(t, points, 5)

	// series ascends and ends at the window's end date
	assert.Equal(t, sunday, points[4].Date)
	for i := 1; i < len(points); i++ {
		assert.Equal(t, points[i-1].Date.AddDate(0, 0, 7), points[i].Date)
	}

	// most recent point: 4 equal weeks give an ACWR of exactly 1
	current := points[4]
	assert.Equal(t, 500.0, current.WeeklyLoad)
	assert.Equal(t, 500.0, current.ChronicLoad)
	assert.Equal(t, 1.0, current.ACWR)
	assert.Equal(t, RiskSafe, BandFor(current.ACWR))
	assert.Equal(t, 0.0, current.DailyLoad, "window ends on a rest Sunday")
	assert.InDelta(t, 20.0/28*100, current.Compliance, 1e-9)

	// one week earlier only 3 of the 4 chronic blocks hold data
	previous := points[3]
	assert.Equal(t, 500.0, previous.WeeklyLoad)
	assert.Equal(t, 375.0, previous.ChronicLoad)
	assert.InDelta(t, 500.0/375.0, previous.ACWR, 1e-9)
	assert.Equal(t, RiskCaution, BandFor(previous.ACWR))
}

func TestServiceImpl_ComputeLoadReport_NoSessionsEver(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	// given: an athlete with no logged sessions at all
	window := WindowContaining(time.Date(2024, 4, 24, 0, 0, 0, 0, time.UTC))

	// when
	points, err := service.ComputeLoadReport(ctx, testAthleteId, window)

	// then: 5 zeroed points, no error
	assert.NoError(t, err)
	assert.Len(t, points, 5)
	for _, p := range points {
		assert.Equal(t, 0.0, p.DailyLoad)
		assert.Equal(t, 0.0, p.WeeklyLoad)
		assert.Equal(t, 0.0, p.ChronicLoad)
		assert.Equal(t, 0.0, p.ACWR)
		assert.Equal(t, 0.0, p.Compliance)
	}
}

func TestServiceImpl_ComputeLoadReport_Idempotent(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	// given
	sunday := time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC)
	storeAll(t, weekdaySessions(sunday, 3, 80))
	window := WindowContaining(sunday)

	// when
	first, err1 := service.ComputeLoadReport(ctx, testAthleteId, window)
	second, err2 := service.ComputeLoadReport(ctx, testAthleteId, window)

	// then
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestServiceImpl_ComputeLoadReport_RepositoryFailure(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	// given
	repoErr := errors.New("connection refused")
	sessionRepoStub.SetError(repoErr)
	window := WindowContaining(time.Date(2024, 4, 24, 0, 0, 0, 0, time.UTC))

	// when
	points, err := service.ComputeLoadReport(ctx, testAthleteId, window)

	// then: the failure surfaces whole, no partial report
	assert.Nil(t, points)
	assert.ErrorIs(t, err, repoErr)
}

func TestServiceImpl_ComputeWeeklyTable(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	// given
	monday := time.Date(2024, 4, 22, 0, 0, 0, 0, time.UTC)
	am := sessionOn(monday, session.SlotAM, 300)
	am.TrainingType = "strength"
	am.DurationMin = 60
	pm := sessionOn(monday, session.SlotPM, 150)
	pm.TrainingType = "conditioning"
	pm.DurationMin = 30
	storeAll(t, []session.TrainingSession{am, pm})
	window := WindowContaining(monday)

	// when
	table, err := service.ComputeWeeklyTable(ctx, testAthleteId, window)

	// then
	assert.NoError(t, err)
	assert.Len(t, table.Days, 7)

	// both Monday slots are filled
	assert.NotNil(t, table.Days[0].AM)
	assert.NotNil(t, table.Days[0].PM)
	assert.Equal(t, "strength", table.Days[0].AM.TrainingType)
	assert.Equal(t, 300.0, table.Days[0].AM.UnitLoad)
	assert.Equal(t, 450.0, table.Days[0].DailyLoad)

	// all other slots are present but empty
	for i := 1; i < 7; i++ {
		assert.Nil(t, table.Days[i].AM)
		assert.Nil(t, table.Days[i].PM)
		assert.Equal(t, 0.0, table.Days[i].DailyLoad)
	}

	assert.Equal(t, 450.0, table.Summary.WeeklyLoad)
	assert.Greater(t, table.Summary.TrainingMonotony, 0.0)
}

func TestServiceImpl_CurrentWindow(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	// given: most recent session 10 days before today (2024-04-28)
	sessionDate := time.Date(2024, 4, 18, 0, 0, 0, 0, time.UTC) // a Thursday
	storeAll(t, []session.TrainingSession{sessionOn(sessionDate, session.SlotAM, 100)})

	// when
	window, err := service.CurrentWindow(ctx, testAthleteId)

	// then: the week containing that Thursday
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), window.Start)
}

func TestServiceImpl_CurrentWindow_NoRecentData(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	// when: no sessions in the trailing 30 days
	window, err := service.CurrentWindow(ctx, testAthleteId)

	// then: the week containing today
	assert.NoError(t, err)
	assert.True(t, window.Contains(clock.Now()))
}

func TestServiceImpl_Navigate(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	// given: data in the current week only
	monday := time.Date(2024, 4, 22, 0, 0, 0, 0, time.UTC)
	storeAll(t, []session.TrainingSession{sessionOn(monday, session.SlotAM, 100)})
	current := WindowContaining(monday)

	// when: next week is empty
	afterNext, err := service.Navigate(ctx, testAthleteId, current, DirectionNext)
	assert.NoError(t, err)

	// then: window did not advance
	assert.Equal(t, current, afterNext)

	// when: prev always advances, into empty history too
	afterPrev, err := service.Navigate(ctx, testAthleteId, current, DirectionPrev)
	assert.NoError(t, err)
	assert.Equal(t, current.Prev(), afterPrev)
}

func TestServiceImpl_Navigate_NextWithData(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	// given: data in the following week
	monday := time.Date(2024, 4, 22, 0, 0, 0, 0, time.UTC)
	storeAll(t, []session.TrainingSession{sessionOn(monday.AddDate(0, 0, 8), session.SlotPM, 100)})
	current := WindowContaining(monday)

	// when
	result, err := service.Navigate(ctx, testAthleteId, current, DirectionNext)

	// then
	assert.NoError(t, err)
	assert.Equal(t, current.Next(), result)
}

func TestServiceImpl_Navigate_UnknownDirection(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	current := WindowContaining(time.Date(2024, 4, 22, 0, 0, 0, 0, time.UTC))

	_, err := service.Navigate(ctx, testAthleteId, current, Direction("sideways"))

	assert.ErrorIs(t, err, ErrUnknownDirection)
}
