package view

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/naptar/naptar/internal/rest"
	log "github.com/sirupsen/logrus"
)

type StateDTO struct {
	CurrentDate     time.Time `json:"currentDate"`
	SelectorVisible bool      `json:"selectorVisible"`
}

type SetDateDTO struct {
	Date time.Time `json:"date"`
}

type Handler struct {
	view Service
}

func NewHandler(view Service) *Handler {
	return &Handler{view: view}
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting view state")
	h.writeState(w, h.view.Current(r.Context()))
}

func (h *Handler) SetDate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting view date")

	var dto SetDateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid request body format",
			Details: "'date' must be in RFC3339 format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	h.writeState(w, h.view.SetCurrentDate(r.Context(), dto.Date))
}

func (h *Handler) NextMonth(w http.ResponseWriter, r *http.Request) {
	log.Debug("Advancing view to next month")
	h.writeState(w, h.view.NextMonth(r.Context()))
}

func (h *Handler) PreviousMonth(w http.ResponseWriter, r *http.Request) {
	log.Debug("Moving view to previous month")
	h.writeState(w, h.view.PreviousMonth(r.Context()))
}

func (h *Handler) ToggleSelector(w http.ResponseWriter, r *http.Request) {
	log.Debug("Toggling user selector panel")
	h.writeState(w, h.view.ToggleSelector(r.Context()))
}

func (h *Handler) writeState(w http.ResponseWriter, state State) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stateToDTO(state)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func stateToDTO(state State) StateDTO {
	return StateDTO{
		CurrentDate:     state.CurrentDate,
		SelectorVisible: state.SelectorVisible,
	}
}
