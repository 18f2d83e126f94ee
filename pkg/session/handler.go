package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/naptar/naptar/internal/rest"
	log "github.com/sirupsen/logrus"
)

type CredentialsDTO struct {
	UserId   string `json:"userId"`
	Password string `json:"password"`
}

type SessionUserDTO struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	IsAdmin bool   `json:"isAdmin"`
}

type Handler struct {
	sessions Service
}

func NewHandler(sessions Service) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Logging in")

	var credentials CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	sessionUser, err := h.sessions.Login(r.Context(), credentials.UserId, credentials.Password)
	if err != nil {
		if errors.Is(err, ErrAuthenticationFailed) {
			w.WriteHeader(http.StatusUnauthorized)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Invalid user or password",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(sessionUserToDTO(sessionUser)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Getting current session")

	sessionUser, ok := h.sessions.Current(r.Context())
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sessionUserToDTO(sessionUser)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log.Debug("Logging out")
	h.sessions.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func sessionUserToDTO(u SessionUser) SessionUserDTO {
	return SessionUserDTO{
		Id:      u.Id,
		Name:    u.Name,
		Color:   u.Color,
		IsAdmin: u.IsAdmin,
	}
}
