package calendar

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/naptar/naptar/internal/rest"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type Handler struct {
	events EventService
}

type EventDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	CreatedBy   string    `json:"createdBy"`
	Color       string    `json:"color"`
}

// EventPatchDTO carries a partial update; absent fields are left unchanged.
type EventPatchDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Color       *string    `json:"color"`
}

func NewHandler(events EventService) *Handler {
	return &Handler{events: events}
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Creating calendar event")

	var eventDTO EventDTO
	if err := json.NewDecoder(r.Body).Decode(&eventDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := h.events.CreateEvent(r.Context(), EventDraft{
		Title:       eventDTO.Title,
		Description: eventDTO.Description,
		Start:       eventDTO.Start,
		End:         eventDTO.End,
		Color:       eventDTO.Color,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	log.Tracef("Created event: %s", created.ID)

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(eventToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Updating calendar event")

	vars := mux.Vars(r)
	eventId := vars["eventId"]

	var patchDTO EventPatchDTO
	if err := json.NewDecoder(r.Body).Decode(&patchDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	updated, err := h.events.UpdateEvent(r.Context(), eventId, EventPatch{
		Title:       patchDTO.Title,
		Description: patchDTO.Description,
		Start:       patchDTO.Start,
		End:         patchDTO.End,
		Color:       patchDTO.Color,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(eventToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Deleting calendar event")

	vars := mux.Vars(r)
	eventId := vars["eventId"]
	if err := h.events.DeleteEvent(r.Context(), eventId); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Getting calendar events for a day")

	dateString := r.URL.Query().Get("date")
	date, err := time.Parse(dateLayout, dateString)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date format",
			Details: "'date' must be in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	events, err := h.events.EventsOn(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Sign in to manage events"})
	case errors.Is(err, ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Only the creator or an admin can manage this event"})
	case errors.Is(err, ErrEventNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Event not found"})
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		CreatedBy:   e.CreatedBy,
		Color:       e.Color,
	}
}
