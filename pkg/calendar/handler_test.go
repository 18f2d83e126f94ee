package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/naptar/naptar/internal/event_bus"
	"github.com/naptar/naptar/pkg/directory"
	"github.com/naptar/naptar/pkg/session"
	"github.com/stretchr/testify/assert"
)

type handlerFixture struct {
	sessions *session.SessionServiceImpl
	handler  *Handler
}

func setupHandlerTest(t *testing.T) *handlerFixture {
	store, err := directory.NewStaticStore([]directory.User{
		{Id: "a", Name: "Kovács János", Color: "#FF5733", Password: "pw1"},
		{Id: "m", Name: "Rendszergazda", Color: "#9333FF", Password: "pw3", IsAdmin: true},
	})
	assert.NoError(t, err)

	bus := event_bus.NewEventBus()
	sessions := session.NewSessionService(store, bus)
	service := NewEventService(NewInMemoryEventRepository(), sessions, bus)
	return &handlerFixture{sessions: sessions, handler: NewHandler(service)}
}

func createEvent(t *testing.T, handler *Handler, dto EventDTO) EventDTO {
	body, err := json.Marshal(dto)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/calendar/event", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.CreateEvent(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created EventDTO
	err = json.NewDecoder(w.Body).Decode(&created)
	assert.NoError(t, err)
	return created
}

func TestCreateEventHandler(t *testing.T) {
	start := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("401 without a session", func(t *testing.T) {
		f := setupHandlerTest(t)
		body, err := json.Marshal(EventDTO{Title: "Meeting", Start: start})
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/calendar/event", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		f.handler.CreateEvent(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("creates the event for the signed-in user", func(t *testing.T) {
		f := setupHandlerTest(t)
		_, err := f.sessions.Login(context.Background(), "a", "pw1")
		assert.NoError(t, err)

		created := createEvent(t, f.handler, EventDTO{
			Title:       "Meeting",
			Description: "Quarterly review",
			Start:       start,
			End:         start.Add(time.Hour),
		})
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "a", created.CreatedBy)
		assert.Equal(t, "#FF5733", created.Color)
	})
}

func TestGetEventsHandler(t *testing.T) {
	start := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("400 on a malformed date", func(t *testing.T) {
		f := setupHandlerTest(t)
		req := httptest.NewRequest(http.MethodGet, "/api/calendar/event?date=not-a-date", nil)
		w := httptest.NewRecorder()
		f.handler.GetEvents(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var errResponse struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		err := json.NewDecoder(w.Body).Decode(&errResponse)
		assert.NoError(t, err)
		assert.Contains(t, errResponse.Error, "Invalid date format")
		assert.Contains(t, errResponse.Details, "YYYY-MM-DD")
	})

	t.Run("returns the day's events", func(t *testing.T) {
		f := setupHandlerTest(t)
		_, err := f.sessions.Login(context.Background(), "a", "pw1")
		assert.NoError(t, err)

		created := createEvent(t, f.handler, EventDTO{Title: "Meeting", Start: start, End: start.Add(time.Hour)})
		createEvent(t, f.handler, EventDTO{Title: "Other day", Start: start.AddDate(0, 0, 1)})

		req := httptest.NewRequest(http.MethodGet, "/api/calendar/event?date=2024-03-15", nil)
		w := httptest.NewRecorder()
		f.handler.GetEvents(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var dtos []EventDTO
		err = json.NewDecoder(w.Body).Decode(&dtos)
		assert.NoError(t, err)
		assert.Len(t, dtos, 1)
		assert.Equal(t, created.ID, dtos[0].ID)
		assert.Equal(t, "Meeting", dtos[0].Title)
	})

	t.Run("empty array for a day without events", func(t *testing.T) {
		f := setupHandlerTest(t)
		req := httptest.NewRequest(http.MethodGet, "/api/calendar/event?date=2024-03-15", nil)
		w := httptest.NewRecorder()
		f.handler.GetEvents(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var dtos []EventDTO
		err := json.NewDecoder(w.Body).Decode(&dtos)
		assert.NoError(t, err)
		assert.Empty(t, dtos)
	})
}

func TestUpdateEventHandler(t *testing.T) {
	start := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("updates only the sent fields", func(t *testing.T) {
		f := setupHandlerTest(t)
		_, err := f.sessions.Login(context.Background(), "a", "pw1")
		assert.NoError(t, err)
		created := createEvent(t, f.handler, EventDTO{Title: "Original", Description: "Keep", Start: start})

		body := bytes.NewBufferString(`{"title":"Renamed"}`)
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/calendar/event/%s", created.ID), body)
		req = mux.SetURLVars(req, map[string]string{"eventId": created.ID})
		w := httptest.NewRecorder()
		f.handler.UpdateEvent(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var updated EventDTO
		err = json.NewDecoder(w.Body).Decode(&updated)
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "Keep", updated.Description)
		assert.Equal(t, created.CreatedBy, updated.CreatedBy)
	})

	t.Run("404 for an unknown event", func(t *testing.T) {
		f := setupHandlerTest(t)
		_, err := f.sessions.Login(context.Background(), "a", "pw1")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/api/calendar/event/missing", bytes.NewBufferString(`{"title":"X"}`))
		req = mux.SetURLVars(req, map[string]string{"eventId": "missing"})
		w := httptest.NewRecorder()
		f.handler.UpdateEvent(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteEventHandler(t *testing.T) {
	start := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("admin deletes another user's event", func(t *testing.T) {
		f := setupHandlerTest(t)
		ctx := context.Background()
		_, err := f.sessions.Login(ctx, "a", "pw1")
		assert.NoError(t, err)
		created := createEvent(t, f.handler, EventDTO{Title: "E", Start: start})

		f.sessions.Logout(ctx)
		_, err = f.sessions.Login(ctx, "m", "pw3")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/calendar/event/%s", created.ID), nil)
		req = mux.SetURLVars(req, map[string]string{"eventId": created.ID})
		w := httptest.NewRecorder()
		f.handler.DeleteEvent(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)

		getReq := httptest.NewRequest(http.MethodGet, "/api/calendar/event?date=2024-03-15", nil)
		getW := httptest.NewRecorder()
		f.handler.GetEvents(getW, getReq)
		var dtos []EventDTO
		err = json.NewDecoder(getW.Body).Decode(&dtos)
		assert.NoError(t, err)
		assert.Empty(t, dtos)
	})

	t.Run("401 without a session", func(t *testing.T) {
		f := setupHandlerTest(t)
		req := httptest.NewRequest(http.MethodDelete, "/api/calendar/event/some-id", nil)
		req = mux.SetURLVars(req, map[string]string{"eventId": "some-id"})
		w := httptest.NewRecorder()
		f.handler.DeleteEvent(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
