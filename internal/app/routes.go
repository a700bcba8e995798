package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Athletes
	r.HandleFunc("/api/athlete", deps.AthleteHandler.Register).Methods("POST")
	r.HandleFunc("/api/athlete", deps.AthleteHandler.List).Methods("GET")
	r.HandleFunc("/api/athlete/{athleteId}", deps.AthleteHandler.Get).Methods("GET")
	r.HandleFunc("/api/athlete/{athleteId}", deps.AthleteHandler.Delete).Methods("DELETE")

	// Training sessions
	r.HandleFunc("/api/session", deps.SessionHandler.LogSession).Methods("POST")
	r.HandleFunc("/api/session", deps.SessionHandler.ListSessions).
		Queries("athleteId", "{athleteId}", "from", "{from}", "to", "{to}").Methods("GET")
	r.HandleFunc("/api/session/{sessionId}", deps.SessionHandler.UpdateSession).Methods("PUT")
	r.HandleFunc("/api/session/{sessionId}", deps.SessionHandler.DeleteSession).
		Queries("athleteId", "{athleteId}").Methods("DELETE")

	// Training load analytics
	r.HandleFunc("/api/analytics/report", deps.AnalyticsHandler.GetLoadReport).
		Queries("athleteId", "{athleteId}", "date", "{date}").Methods("GET")
	r.HandleFunc("/api/analytics/week", deps.AnalyticsHandler.GetWeeklyTable).
		Queries("athleteId", "{athleteId}", "date", "{date}").Methods("GET")
	r.HandleFunc("/api/analytics/week/current", deps.AnalyticsHandler.GetCurrentWindow).
		Queries("athleteId", "{athleteId}").Methods("GET")
	r.HandleFunc("/api/analytics/week/navigate", deps.AnalyticsHandler.Navigate).
		Queries("athleteId", "{athleteId}", "date", "{date}", "direction", "{direction}").Methods("POST")
}
