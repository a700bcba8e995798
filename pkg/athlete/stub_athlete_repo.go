package athlete

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type RepositoryStub struct {
	mu       sync.RWMutex
	athletes map[uuid.UUID]Athlete
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{athletes: make(map[uuid.UUID]Athlete)}
}

func (r *RepositoryStub) Create(ctx context.Context, a Athlete) (Athlete, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.Id == uuid.Nil {
		a.Id = uuid.New()
	}
	r.athletes[a.Id] = a
	return a, nil
}

func (r *RepositoryStub) Get(ctx context.Context, id uuid.UUID) (Athlete, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.athletes[id]
	if !ok {
		return Athlete{}, ErrAthleteNotFound
	}
	return a, nil
}

func (r *RepositoryStub) List(ctx context.Context) ([]Athlete, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Athlete, 0, len(r.athletes))
	for _, a := range r.athletes {
		result = append(result, a)
	}
	return result, nil
}

func (r *RepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.athletes[id]; !ok {
		return ErrAthleteNotFound
	}
	delete(r.athletes, id)
	return nil
}

func (r *RepositoryStub) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.athletes = make(map[uuid.UUID]Athlete)
}
