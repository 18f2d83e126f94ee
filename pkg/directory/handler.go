package directory

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// UserDTO is the public roster entry served to the login selector. The
// password is deliberately absent.
type UserDTO struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	IsAdmin bool   `json:"isAdmin"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Listing roster users")

	users := h.store.All()
	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, userToDTO(u))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func userToDTO(u User) UserDTO {
	return UserDTO{
		Id:      u.Id,
		Name:    u.Name,
		Color:   u.Color,
		IsAdmin: u.IsAdmin,
	}
}
