package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSessionNotFound = errors.New("training session not found")

type Repository interface {
	Store(ctx context.Context, s TrainingSession) (TrainingSession, error)
	Update(ctx context.Context, s TrainingSession) (TrainingSession, error)
	Delete(ctx context.Context, athleteId uuid.UUID, id uuid.UUID) error
	// FindByDateRange returns all sessions of the athlete with a date in [from, to],
	// ordered by date and slot.
	FindByDateRange(ctx context.Context, athleteId uuid.UUID, from time.Time, to time.Time) ([]TrainingSession, error)
}

type repositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Store(ctx context.Context, s TrainingSession) (TrainingSession, error) {
	query := `INSERT INTO training_session (id, athlete_id, date, slot, training_type, rpe, duration_min, unit_load)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, athlete_id, date, slot, training_type, rpe, duration_min, unit_load`
	row := r.db.QueryRow(ctx, query,
		s.Id, s.AthleteId, s.Date, string(s.Slot), s.TrainingType, s.RPE, s.DurationMin, s.UnitLoad,
	)
	stored, err := scanSession(row)
	if err != nil {
		return TrainingSession{}, fmt.Errorf("could not store training session: %w", err)
	}
	return stored, nil
}

func (r *repositoryImpl) Update(ctx context.Context, s TrainingSession) (TrainingSession, error) {
	query := `UPDATE training_session
			  SET date = $1, slot = $2, training_type = $3, rpe = $4, duration_min = $5, unit_load = $6
			  WHERE athlete_id = $7 AND id = $8
			  RETURNING id, athlete_id, date, slot, training_type, rpe, duration_min, unit_load`
	row := r.db.QueryRow(ctx, query,
		s.Date, string(s.Slot), s.TrainingType, s.RPE, s.DurationMin, s.UnitLoad, s.AthleteId, s.Id,
	)
	updated, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TrainingSession{}, ErrSessionNotFound
		}
		return TrainingSession{}, fmt.Errorf("could not update training session: %w", err)
	}
	return updated, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, athleteId uuid.UUID, id uuid.UUID) error {
	query := `DELETE FROM training_session WHERE athlete_id = $1 AND id = $2`
	result, err := r.db.Exec(ctx, query, athleteId, id)
	if err != nil {
		return fmt.Errorf("could not delete training session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *repositoryImpl) FindByDateRange(ctx context.Context, athleteId uuid.UUID, from time.Time, to time.Time) ([]TrainingSession, error) {
	query := `SELECT id, athlete_id, date, slot, training_type, rpe, duration_min, unit_load
			  FROM training_session
			  WHERE athlete_id = $1 AND date >= $2 AND date <= $3
			  ORDER BY date, slot`
	rows, err := r.db.Query(ctx, query, athleteId, from, to)
	if err != nil {
		return nil, fmt.Errorf("could not query training sessions: %w", err)
	}
	defer rows.Close()

	var sessions []TrainingSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func scanSession(row pgx.Row) (TrainingSession, error) {
	var s TrainingSession
	var slot string
	err := row.Scan(
		&s.Id,
		&s.AthleteId,
		&s.Date,
		&slot,
		&s.TrainingType,
		&s.RPE,
		&s.DurationMin,
		&s.UnitLoad,
	)
	if err != nil {
		return TrainingSession{}, err
	}
	s.Slot = Slot(slot)
	// Dates are stored as DATE; normalize the scanned value to midnight UTC.
	s.Date = time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, time.UTC)
	return s, nil
}
