package analytics

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/athlion/athlion/internal/rest"
	"github.com/google/uuid"
)

type WeekWindowDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type LoadReportPointDTO struct {
	Date        string  `json:"date"`
	DailyLoad   float64 `json:"dailyLoad"`
	WeeklyLoad  float64 `json:"weeklyLoad"`
	ChronicLoad float64 `json:"chronicLoad"`
	ACWR        float64 `json:"acwr"`
	RiskBand    string  `json:"riskBand"`
	Compliance  float64 `json:"compliance"`
}

type SlotEntryDTO struct {
	TrainingType string  `json:"trainingType"`
	RPE          int     `json:"rpe"`
	DurationMin  int     `json:"durationMin"`
	UnitLoad     float64 `json:"unitLoad"`
}

type DayRowDTO struct {
	Date      string        `json:"date"`
	AM        *SlotEntryDTO `json:"am"`
	PM        *SlotEntryDTO `json:"pm"`
	DailyLoad float64       `json:"dailyLoad"`
}

type WeeklySummaryDTO struct {
	WeeklyLoad       float64 `json:"weeklyLoad"`
	MeanDailyLoad    float64 `json:"meanDailyLoad"`
	StdDevDailyLoad  float64 `json:"stdDevDailyLoad"`
	TrainingMonotony float64 `json:"trainingMonotony"`
	Strain           float64 `json:"strain"`
}

type WeeklyTableDTO struct {
	Window  WeekWindowDTO    `json:"window"`
	Days    []DayRowDTO      `json:"days"`
	Summary WeeklySummaryDTO `json:"summary"`
}

const dateLayout = "2006-01-02"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetLoadReport returns the trailing 5-week ACWR trend for the week
// containing the requested date.
func (h *Handler) GetLoadReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	athleteId, window, ok := parseAthleteAndWindow(w, r)
	if !ok {
		return
	}
	points, err := h.service.ComputeLoadReport(r.Context(), athleteId, window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]LoadReportPointDTO, 0, len(points))
	for _, p := range points {
		dtos = append(dtos, LoadReportPointDTO{
			Date:        p.Date.Format(dateLayout),
			DailyLoad:   p.DailyLoad,
			WeeklyLoad:  p.WeeklyLoad,
			ChronicLoad: p.ChronicLoad,
			ACWR:        p.ACWR,
			RiskBand:    string(BandFor(p.ACWR)),
			Compliance:  p.Compliance,
		})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetWeeklyTable returns the per-slot table of the week containing the
// requested date.
func (h *Handler) GetWeeklyTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	athleteId, window, ok := parseAthleteAndWindow(w, r)
	if !ok {
		return
	}
	table, err := h.service.ComputeWeeklyTable(r.Context(), athleteId, window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(tableToDTO(table)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetCurrentWindow resolves the initial reporting week for an athlete.
func (h *Handler) GetCurrentWindow(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	athleteId, err := uuid.Parse(r.URL.Query().Get("athleteId"))
	if err != nil {
		writeBadRequest(w, "Invalid athlete id", "athleteId must be a UUID")
		return
	}
	window, err := h.service.CurrentWindow(r.Context(), athleteId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(windowToDTO(window)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Navigate steps the reporting week forward or backward.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	athleteId, window, ok := parseAthleteAndWindow(w, r)
	if !ok {
		return
	}
	direction := Direction(r.URL.Query().Get("direction"))
	next, err := h.service.Navigate(r.Context(), athleteId, window, direction)
	if err != nil {
		if errors.Is(err, ErrUnknownDirection) {
			writeBadRequest(w, "Invalid direction", "direction must be next or prev")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(windowToDTO(next)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseAthleteAndWindow(w http.ResponseWriter, r *http.Request) (uuid.UUID, WeekWindow, bool) {
	athleteId, err := uuid.Parse(r.URL.Query().Get("athleteId"))
	if err != nil {
		writeBadRequest(w, "Invalid athlete id", "athleteId must be a UUID")
		return uuid.Nil, WeekWindow{}, false
	}
	// Can be any day of the requested week
	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		writeBadRequest(w, "Incorrect date format", "date must be in YYYY-MM-DD format")
		return uuid.Nil, WeekWindow{}, false
	}
	return athleteId, WindowContaining(date), true
}

func windowToDTO(window WeekWindow) WeekWindowDTO {
	return WeekWindowDTO{
		Start: window.Start.Format(dateLayout),
		End:   window.End.Format(dateLayout),
	}
}

func tableToDTO(table WeeklyTable) WeeklyTableDTO {
	days := make([]DayRowDTO, 0, len(table.Days))
	for _, day := range table.Days {
		days = append(days, DayRowDTO{
			Date:      day.Date.Format(dateLayout),
			AM:        slotToDTO(day.AM),
			PM:        slotToDTO(day.PM),
			DailyLoad: day.DailyLoad,
		})
	}
	return WeeklyTableDTO{
		Window: windowToDTO(table.Window),
		Days:   days,
		Summary: WeeklySummaryDTO{
			WeeklyLoad:       table.Summary.WeeklyLoad,
			MeanDailyLoad:    table.Summary.MeanDailyLoad,
			StdDevDailyLoad:  table.Summary.StdDevDailyLoad,
			TrainingMonotony: table.Summary.TrainingMonotony,
			Strain:           table.Summary.Strain,
		},
	}
}

func slotToDTO(entry *SlotEntry) *SlotEntryDTO {
	if entry == nil {
		return nil
	}
	return &SlotEntryDTO{
		TrainingType: entry.TrainingType,
		RPE:          entry.RPE,
		DurationMin:  entry.DurationMin,
		UnitLoad:     entry.UnitLoad,
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
