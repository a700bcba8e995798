package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/athlion/athlion/internal/test_utils"
	"github.com/athlion/athlion/pkg/athlete"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

var db *pgxpool.Pool

func TestMain(m *testing.M) {
	container, openDb := test_utils.TestWithDB()
	db = openDb()
	code := m.Run()
	db.Close()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func setupTestRepository(t *testing.T) (context.Context, Repository, uuid.UUID) {
	ctx := context.Background()
	repository := NewRepository(db)

	owner, err := athlete.NewRepository(db).Create(ctx, athlete.Athlete{
		Id:        uuid.New(),
		Name:      "Test Athlete",
		Sport:     "rowing",
		CreatedAt: time.Now().UTC(),
	})
	assert.NoError(t, err)
	return ctx, repository, owner.Id
}

func newSession(athleteId uuid.UUID, date time.Time, slot Slot) TrainingSession {
	return TrainingSession{
		Id:           uuid.New(),
		AthleteId:    athleteId,
		Date:         date,
		Slot:         slot,
		TrainingType: "endurance",
		RPE:          6,
		DurationMin:  60,
		UnitLoad:     360,
	}
}

func TestRepositoryImpl_StoreAndFind(t *testing.T) {
	// given
	ctx, repo, athleteId := setupTestRepository(t)
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	// when
	stored, err := repo.Store(ctx, newSession(athleteId, day, SlotAM))
	assert.NoError(t, err)

	// then
	found, err := repo.FindByDateRange(ctx, athleteId, day, day)
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, stored.Id, found[0].Id)
	assert.Equal(t, day, found[0].Date)
	assert.Equal(t, SlotAM, found[0].Slot)
	assert.Equal(t, 360.0, found[0].UnitLoad)
}

func TestRepositoryImpl_FindByDateRange_Ordering(t *testing.T) {
	// given
	ctx, repo, athleteId := setupTestRepository(t)
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	_, err := repo.Store(ctx, newSession(athleteId, day.AddDate(0, 0, 1), SlotAM))
	assert.NoError(t, err)
	_, err = repo.Store(ctx, newSession(athleteId, day, SlotPM))
	assert.NoError(t, err)
	_, err = repo.Store(ctx, newSession(athleteId, day, SlotAM))
	assert.NoError(t, err)

	// when
	found, err := repo.FindByDateRange(ctx, athleteId, day, day.AddDate(0, 0, 7))

	// then: ordered by date, then slot
	assert.NoError(t, err)
	assert.Len(t, found, 3)
	assert.Equal(t, SlotAM, found[0].Slot)
	assert.Equal(t, SlotPM, found[1].Slot)
	assert.Equal(t, day.AddDate(0, 0, 1), found[2].Date)
}

func TestRepositoryImpl_FindByDateRange_ExcludesOtherAthletes(t *testing.T) {
	// given
	ctx, repo, athleteId := setupTestRepository(t)
	_, otherRepo, otherAthleteId := setupTestRepository(t)
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	_, err := repo.Store(ctx, newSession(athleteId, day, SlotAM))
	assert.NoError(t, err)
	_, err = otherRepo.Store(ctx, newSession(otherAthleteId, day, SlotAM))
	assert.NoError(t, err)

	// when
	found, err := repo.FindByDateRange(ctx, athleteId, day, day)

	// then
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, athleteId, found[0].AthleteId)
}

func TestRepositoryImpl_Update(t *testing.T) {
	// given
	ctx, repo, athleteId := setupTestRepository(t)
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	stored, err := repo.Store(ctx, newSession(athleteId, day, SlotAM))
	assert.NoError(t, err)

	// when
	stored.RPE = 9
	stored.UnitLoad = 540
	updated, err := repo.Update(ctx, stored)

	// then
	assert.NoError(t, err)
	assert.Equal(t, 9, updated.RPE)
	assert.Equal(t, 540.0, updated.UnitLoad)
}

func TestRepositoryImpl_Update_NotFound(t *testing.T) {
	// given
	ctx, repo, athleteId := setupTestRepository(t)
	missing := newSession(athleteId, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), SlotAM)

	// when
	_, err := repo.Update(ctx, missing)

	// then
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepositoryImpl_Delete(t *testing.T) {
	// given
	ctx, repo, athleteId := setupTestRepository(t)
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	stored, err := repo.Store(ctx, newSession(athleteId, day, SlotAM))
	assert.NoError(t, err)

	// when
	err = repo.Delete(ctx, athleteId, stored.Id)

	// then
	assert.NoError(t, err)
	found, err := repo.FindByDateRange(ctx, athleteId, day, day)
	assert.NoError(t, err)
	assert.Empty(t, found)

	// deleting again reports not found
	assert.ErrorIs(t, repo.Delete(ctx, athleteId, stored.Id), ErrSessionNotFound)
}
