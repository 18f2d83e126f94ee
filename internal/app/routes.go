package app

import (
	"github.com/gorilla/mux"
	"github.com/naptar/naptar/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Roster
	r.HandleFunc("/api/user", deps.DirectoryHandler.ListUsers).Methods("GET")

	// Session
	r.HandleFunc("/api/session", deps.SessionHandler.Login).Methods("POST")
	r.HandleFunc("/api/session", deps.SessionHandler.CurrentSession).Methods("GET")
	r.HandleFunc("/api/session", deps.SessionHandler.Logout).Methods("DELETE")

	// Calendar events
	r.HandleFunc("/api/calendar/event", deps.EventHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/calendar/event", deps.EventHandler.GetEvents).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/calendar/event/{eventId}", deps.EventHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/calendar/event/{eventId}", deps.EventHandler.DeleteEvent).Methods("DELETE")

	// View state
	r.HandleFunc("/api/view", deps.ViewHandler.GetState).Methods("GET")
	r.HandleFunc("/api/view/date", deps.ViewHandler.SetDate).Methods("PUT")
	r.HandleFunc("/api/view/date/next", deps.ViewHandler.NextMonth).Methods("POST")
	r.HandleFunc("/api/view/date/previous", deps.ViewHandler.PreviousMonth).Methods("POST")
	r.HandleFunc("/api/view/selector/toggle", deps.ViewHandler.ToggleSelector).Methods("POST")
}
