package athlete

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrMissingName = errors.New("athlete name must not be empty")

type Service interface {
	Register(ctx context.Context, a Athlete) (Athlete, error)
	Get(ctx context.Context, id uuid.UUID) (Athlete, error)
	List(ctx context.Context) ([]Athlete, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Register(ctx context.Context, a Athlete) (Athlete, error) {
	if a.Name == "" {
		return Athlete{}, ErrMissingName
	}
	a.Id = uuid.New()
	a.CreatedAt = time.Now().UTC()
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return Athlete{}, fmt.Errorf("failed to register athlete: %w", err)
	}
	return created, nil
}

func (s *ServiceImpl) Get(ctx context.Context, id uuid.UUID) (Athlete, error) {
	return s.repo.Get(ctx, id)
}

func (s *ServiceImpl) List(ctx context.Context) ([]Athlete, error) {
	return s.repo.List(ctx)
}

func (s *ServiceImpl) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
