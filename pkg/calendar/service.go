package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/naptar/naptar/internal/event_bus"
	"github.com/naptar/naptar/pkg/session"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("operation not allowed")
)

type EventService interface {
	CreateEvent(ctx context.Context, draft EventDraft) (Event, error)
	UpdateEvent(ctx context.Context, id string, patch EventPatch) (Event, error)
	DeleteEvent(ctx context.Context, id string) error
	EventsOn(ctx context.Context, date time.Time) ([]Event, error)
}

// EventServiceImpl is the mutation boundary of the event store: creation
// requires an authenticated session, updates and deletes require the session
// user to be the event's creator or an admin. Reads are not gated; the month
// grid is visible to everyone.
type EventServiceImpl struct {
	repo     EventRepository
	sessions session.Provider
	bus      *event_bus.EventBus
}

func NewEventService(repo EventRepository, sessions session.Provider, bus *event_bus.EventBus) *EventServiceImpl {
	return &EventServiceImpl{repo: repo, sessions: sessions, bus: bus}
}

// CreateEvent stores a new event owned by the current session user. The event
// id is a fresh uuid; the color falls back to the creator's color when the
// draft leaves it empty.
func (s *EventServiceImpl) CreateEvent(ctx context.Context, draft EventDraft) (Event, error) {
	current, ok := s.sessions.Current(ctx)
	if !ok {
		return Event{}, ErrNotAuthenticated
	}

	event := Event{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Start:       draft.Start,
		End:         draft.End,
		CreatedBy:   current.Id,
		Color:       draft.Color,
	}
	if event.Color == "" {
		event.Color = current.Color
	}

	if err := s.repo.StoreEvent(ctx, event); err != nil {
		return Event{}, fmt.Errorf("failed to store event: %w", err)
	}

	s.bus.Publish(event_bus.NewEvent(ctx, event_bus.CalendarEventCreatedType, event_bus.CalendarEventCreated{
		Id:        event.ID,
		Title:     event.Title,
		CreatedBy: event.CreatedBy,
		Start:     event.Start,
		End:       event.End,
	}))

	return event, nil
}

// UpdateEvent merges the patch into the event with the given id. The creator
// and id are never changed.
func (s *EventServiceImpl) UpdateEvent(ctx context.Context, id string, patch EventPatch) (Event, error) {
	current, ok := s.sessions.Current(ctx)
	if !ok {
		return Event{}, ErrNotAuthenticated
	}

	existing, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return Event{}, fmt.Errorf("failed to update event %s: %w", id, err)
	}
	if !current.CanManage(existing.CreatedBy) {
		return Event{}, ErrForbidden
	}

	updated := applyPatch(existing, patch)
	if err := s.repo.UpdateEvent(ctx, updated); err != nil {
		return Event{}, fmt.Errorf("failed to update event %s: %w", id, err)
	}

	s.bus.Publish(event_bus.NewEvent(ctx, event_bus.CalendarEventUpdatedType, event_bus.CalendarEventUpdated{
		Id:        updated.ID,
		UpdatedBy: current.Id,
	}))

	return updated, nil
}

// DeleteEvent removes the event with the given id. Deleting an unknown id is
// a no-op, so a repeated delete never fails.
func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	current, ok := s.sessions.Current(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	existing, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			log.Debugf("no event %s to delete", id)
			return nil
		}
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	if !current.CanManage(existing.CreatedBy) {
		return ErrForbidden
	}

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}

	s.bus.Publish(event_bus.NewEvent(ctx, event_bus.CalendarEventDeletedType, event_bus.CalendarEventDeleted{
		Id:        id,
		DeletedBy: current.Id,
	}))

	return nil
}

// EventsOn returns the events starting on the same calendar day as date, in
// the order they were created. No secondary sort is applied.
func (s *EventServiceImpl) EventsOn(ctx context.Context, date time.Time) ([]Event, error) {
	return s.repo.EventsOn(ctx, date)
}

func applyPatch(event Event, patch EventPatch) Event {
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Start != nil {
		event.Start = *patch.Start
	}
	if patch.End != nil {
		event.End = *patch.End
	}
	if patch.Color != nil {
		event.Color = *patch.Color
	}
	return event
}
