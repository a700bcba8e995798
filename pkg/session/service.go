package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidRPE = errors.New("rpe must be between 1 and 10")
var ErrInvalidDuration = errors.New("duration must not be negative")
var ErrInvalidSlot = errors.New("slot must be AM or PM")

type Service interface {
	LogSession(ctx context.Context, s TrainingSession) (TrainingSession, error)
	UpdateSession(ctx context.Context, s TrainingSession) (TrainingSession, error)
	DeleteSession(ctx context.Context, athleteId uuid.UUID, id uuid.UUID) error
	ListSessions(ctx context.Context, athleteId uuid.UUID, from time.Time, to time.Time) ([]TrainingSession, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) LogSession(ctx context.Context, ts TrainingSession) (TrainingSession, error) {
	ts, err := normalize(ts)
	if err != nil {
		return TrainingSession{}, err
	}
	ts.Id = uuid.New()
	stored, err := s.repo.Store(ctx, ts)
	if err != nil {
		log.Errorf("failed to store training session for athlete %s: %v", ts.AthleteId, err)
		return TrainingSession{}, fmt.Errorf("failed to store training session: %w", err)
	}
	return stored, nil
}

func (s *ServiceImpl) UpdateSession(ctx context.Context, ts TrainingSession) (TrainingSession, error) {
	ts, err := normalize(ts)
	if err != nil {
		return TrainingSession{}, err
	}
	updated, err := s.repo.Update(ctx, ts)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return TrainingSession{}, ErrSessionNotFound
		}
		log.Errorf("failed to update training session %s: %v", ts.Id, err)
		return TrainingSession{}, fmt.Errorf("failed to update training session: %w", err)
	}
	return updated, nil
}

func (s *ServiceImpl) DeleteSession(ctx context.Context, athleteId uuid.UUID, id uuid.UUID) error {
	return s.repo.Delete(ctx, athleteId, id)
}

func (s *ServiceImpl) ListSessions(ctx context.Context, athleteId uuid.UUID, from time.Time, to time.Time) ([]TrainingSession, error) {
	sessions, err := s.repo.FindByDateRange(ctx, athleteId, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list training sessions: %w", err)
	}
	return sessions, nil
}

// normalize validates the session and truncates its date to a calendar day.
// When the client does not supply a unit load, the conventional RPE x duration
// value is filled in at logging time; it is treated as opaque afterwards.
func normalize(ts TrainingSession) (TrainingSession, error) {
	if ts.RPE < 1 || ts.RPE > 10 {
		return TrainingSession{}, ErrInvalidRPE
	}
	if ts.DurationMin < 0 {
		return TrainingSession{}, ErrInvalidDuration
	}
	if !ts.Slot.Valid() {
		return TrainingSession{}, ErrInvalidSlot
	}
	ts.Date = time.Date(ts.Date.Year(), ts.Date.Month(), ts.Date.Day(), 0, 0, 0, 0, time.UTC)
	if ts.UnitLoad == 0 {
		ts.UnitLoad = float64(ts.RPE * ts.DurationMin)
	}
	return ts, nil
}
