package calendar

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	StoreEvent(ctx context.Context, event Event) error
	GetEvent(ctx context.Context, id string) (Event, error)
	UpdateEvent(ctx context.Context, event Event) error
	DeleteEvent(ctx context.Context, id string) error
	EventsOn(ctx context.Context, date time.Time) ([]Event, error)
}

// InMemoryEventRepository keeps events in insertion order for the lifetime of
// the process. Nothing is persisted; a restart starts from an empty
// collection.
type InMemoryEventRepository struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryEventRepository() *InMemoryEventRepository {
	return &InMemoryEventRepository{}
}

func (r *InMemoryEventRepository) StoreEvent(ctx context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *InMemoryEventRepository) GetEvent(ctx context.Context, id string) (Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, ErrEventNotFound
}

// UpdateEvent replaces the stored event with the same id, keeping its
// position in the collection.
func (r *InMemoryEventRepository) UpdateEvent(ctx context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == event.ID {
			r.events[i] = event
			return nil
		}
	}
	return ErrEventNotFound
}

// DeleteEvent removes the event with the given id. Deleting an unknown id is
// a no-op.
func (r *InMemoryEventRepository) DeleteEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return nil
}

// EventsOn returns all events whose start falls on the same calendar day as
// date, in insertion order. Days are compared in the query date's location.
func (r *InMemoryEventRepository) EventsOn(ctx context.Context, date time.Time) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Event, 0)
	for _, e := range r.events {
		if sameDay(e.Start, date) {
			result = append(result, e)
		}
	}
	return result, nil
}

func sameDay(t time.Time, date time.Time) bool {
	y1, m1, d1 := t.In(date.Location()).Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
