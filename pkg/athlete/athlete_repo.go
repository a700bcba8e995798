package athlete

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrAthleteNotFound = errors.New("athlete not found")

type Repository interface {
	Create(ctx context.Context, a Athlete) (Athlete, error)
	Get(ctx context.Context, id uuid.UUID) (Athlete, error)
	List(ctx context.Context) ([]Athlete, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, a Athlete) (Athlete, error) {
	query := `INSERT INTO athlete (id, name, sport, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, name, sport, created_at`
	var created Athlete
	err := r.db.QueryRow(ctx, query, a.Id, a.Name, a.Sport, a.CreatedAt).Scan(
		&created.Id, &created.Name, &created.Sport, &created.CreatedAt,
	)
	if err != nil {
		return Athlete{}, fmt.Errorf("could not create athlete: %w", err)
	}
	return created, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id uuid.UUID) (Athlete, error) {
	query := `SELECT id, name, sport, created_at FROM athlete WHERE id = $1`
	var a Athlete
	err := r.db.QueryRow(ctx, query, id).Scan(&a.Id, &a.Name, &a.Sport, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Athlete{}, ErrAthleteNotFound
		}
		return Athlete{}, fmt.Errorf("could not get athlete: %w", err)
	}
	return a, nil
}

func (r *repositoryImpl) List(ctx context.Context) ([]Athlete, error) {
	query := `SELECT id, name, sport, created_at FROM athlete ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list athletes: %w", err)
	}
	defer rows.Close()

	var athletes []Athlete
	for rows.Next() {
		var a Athlete
		if err := rows.Scan(&a.Id, &a.Name, &a.Sport, &a.CreatedAt); err != nil {
			return nil, err
		}
		athletes = append(athletes, a)
	}
	return athletes, rows.Err()
}

func (r *repositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM athlete WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete athlete: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAthleteNotFound
	}
	return nil
}
