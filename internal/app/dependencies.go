package app

import (
	"github.com/athlion/athlion/pkg/analytics"
	"github.com/athlion/athlion/pkg/athlete"
	"github.com/athlion/athlion/pkg/session"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	AthleteRepo    athlete.Repository
	AthleteService *athlete.ServiceImpl
	AthleteHandler *athlete.Handler

	SessionRepo    session.Repository
	SessionService *session.ServiceImpl
	SessionHandler *session.Handler

	AnalyticsService *analytics.ServiceImpl
	AnalyticsHandler *analytics.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool) *Dependencies {
	deps := &Dependencies{}

	deps.AthleteRepo = athlete.NewRepository(db)
	deps.AthleteService = athlete.NewService(deps.AthleteRepo)
	deps.AthleteHandler = athlete.NewHandler(deps.AthleteService)

	deps.SessionRepo = session.NewRepository(db)
	deps.SessionService = session.NewService(deps.SessionRepo)
	deps.SessionHandler = session.NewHandler(deps.SessionService)

	deps.AnalyticsService = analytics.NewService(deps.SessionRepo)
	deps.AnalyticsHandler = analytics.NewHandler(deps.AnalyticsService)

	return deps
}
