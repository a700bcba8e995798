package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type RepositoryStub struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]TrainingSession
	err      error
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		sessions: make(map[uuid.UUID]TrainingSession),
	}
}

func (r *RepositoryStub) Store(ctx context.Context, s TrainingSession) (TrainingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return TrainingSession{}, r.err
	}
	if s.Id == uuid.Nil {
		s.Id = uuid.New()
	}
	r.sessions[s.Id] = s
	return s, nil
}

func (r *RepositoryStub) Update(ctx context.Context, s TrainingSession) (TrainingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return TrainingSession{}, r.err
	}
	existing, ok := r.sessions[s.Id]
	if !ok || existing.AthleteId != s.AthleteId {
		return TrainingSession{}, ErrSessionNotFound
	}
	r.sessions[s.Id] = s
	return s, nil
}

func (r *RepositoryStub) Delete(ctx context.Context, athleteId uuid.UUID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	existing, ok := r.sessions[id]
	if !ok || existing.AthleteId != athleteId {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *RepositoryStub) FindByDateRange(ctx context.Context, athleteId uuid.UUID, from time.Time, to time.Time) ([]TrainingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	var result []TrainingSession
	for _, s := range r.sessions {
		if s.AthleteId != athleteId {
			continue
		}
		if s.Date.Before(from) || s.Date.After(to) {
			continue
		}
		result = append(result, s)
	}
	// Sort by date then slot (simple insertion sort for small slices)
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && before(result[j], result[j-1]); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result, nil
}

func before(a, b TrainingSession) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.Slot < b.Slot
}

// SetError makes every subsequent call fail with err (useful for testing
// repository failure propagation).
func (r *RepositoryStub) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *RepositoryStub) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = make(map[uuid.UUID]TrainingSession)
	r.err = nil
}
