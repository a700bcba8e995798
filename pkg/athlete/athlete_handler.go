package athlete

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/athlion/athlion/internal/rest"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AthleteDTO struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Sport     string    `json:"sport"`
	CreatedAt time.Time `json:"createdAt"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto AthleteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "Invalid request body", err.Error())
		return
	}
	created, err := h.service.Register(r.Context(), Athlete{Name: dto.Name, Sport: dto.Sport})
	if err != nil {
		if errors.Is(err, ErrMissingName) {
			writeBadRequest(w, "Invalid athlete", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := uuid.Parse(mux.Vars(r)["athleteId"])
	if err != nil {
		writeBadRequest(w, "Invalid athlete id", "athleteId must be a UUID")
		return
	}
	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAthleteNotFound) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(toDTO(a)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	athletes, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]AthleteDTO, 0, len(athletes))
	for _, a := range athletes {
		dtos = append(dtos, toDTO(a))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["athleteId"])
	if err != nil {
		writeBadRequest(w, "Invalid athlete id", "athleteId must be a UUID")
		return
	}
	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, ErrAthleteNotFound) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDTO(a Athlete) AthleteDTO {
	return AthleteDTO{
		Id:        a.Id.String(),
		Name:      a.Name,
		Sport:     a.Sport,
		CreatedAt: a.CreatedAt,
	}
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
