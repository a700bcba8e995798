package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/athlion/athlion/internal/rest"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TrainingSessionDTO struct {
	Id           string  `json:"id"`
	AthleteId    string  `json:"athleteId"`
	Date         string  `json:"date"`
	Slot         string  `json:"slot"`
	TrainingType string  `json:"trainingType"`
	RPE          int     `json:"rpe"`
	DurationMin  int     `json:"durationMin"`
	UnitLoad     float64 `json:"unitLoad"`
}

const dateLayout = "2006-01-02"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) LogSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ts, ok := decodeSession(w, r)
	if !ok {
		return
	}
	stored, err := h.service.LogSession(r.Context(), ts)
	if err != nil {
		if isValidationError(err) {
			writeBadRequest(w, "Invalid training session", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sessionId, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		writeBadRequest(w, "Invalid session id", "sessionId must be a UUID")
		return
	}
	ts, ok := decodeSession(w, r)
	if !ok {
		return
	}
	ts.Id = sessionId
	updated, err := h.service.UpdateSession(r.Context(), ts)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "training session not found", http.StatusNotFound)
			return
		}
		if isValidationError(err) {
			writeBadRequest(w, "Invalid training session", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(toDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionId, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		writeBadRequest(w, "Invalid session id", "sessionId must be a UUID")
		return
	}
	athleteId, err := uuid.Parse(r.URL.Query().Get("athleteId"))
	if err != nil {
		writeBadRequest(w, "Invalid athlete id", "athleteId must be a UUID")
		return
	}
	if err := h.service.DeleteSession(r.Context(), athleteId, sessionId); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "training session not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	athleteId, err := uuid.Parse(r.URL.Query().Get("athleteId"))
	if err != nil {
		writeBadRequest(w, "Invalid athlete id", "athleteId must be a UUID")
		return
	}
	from, err := time.Parse(dateLayout, r.URL.Query().Get("from"))
	if err != nil {
		writeBadRequest(w, "Incorrect from date", "from must be in YYYY-MM-DD format")
		return
	}
	to, err := time.Parse(dateLayout, r.URL.Query().Get("to"))
	if err != nil {
		writeBadRequest(w, "Incorrect to date", "to must be in YYYY-MM-DD format")
		return
	}

	sessions, err := h.service.ListSessions(r.Context(), athleteId, from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]TrainingSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, toDTO(s))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func decodeSession(w http.ResponseWriter, r *http.Request) (TrainingSession, bool) {
	var dto TrainingSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "Invalid request body", err.Error())
		return TrainingSession{}, false
	}
	athleteId, err := uuid.Parse(dto.AthleteId)
	if err != nil {
		writeBadRequest(w, "Invalid athlete id", "athleteId must be a UUID")
		return TrainingSession{}, false
	}
	date, err := time.Parse(dateLayout, dto.Date)
	if err != nil {
		writeBadRequest(w, "Incorrect date format", "date must be in YYYY-MM-DD format")
		return TrainingSession{}, false
	}
	return TrainingSession{
		AthleteId:    athleteId,
		Date:         date,
		Slot:         Slot(dto.Slot),
		TrainingType: dto.TrainingType,
		RPE:          dto.RPE,
		DurationMin:  dto.DurationMin,
		UnitLoad:     dto.UnitLoad,
	}, true
}

func toDTO(s TrainingSession) TrainingSessionDTO {
	return TrainingSessionDTO{
		Id:           s.Id.String(),
		AthleteId:    s.AthleteId.String(),
		Date:         s.Date.Format(dateLayout),
		Slot:         string(s.Slot),
		TrainingType: s.TrainingType,
		RPE:          s.RPE,
		DurationMin:  s.DurationMin,
		UnitLoad:     s.UnitLoad,
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRPE) || errors.Is(err, ErrInvalidDuration) || errors.Is(err, ErrInvalidSlot)
}

func writeBadRequest(w http.ResponseWriter, message string, details string) {
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}
