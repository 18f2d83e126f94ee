package event_bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventType is an identifier for events.
type EventType string

// Event is the generic envelope used by the bus. Data is kept as any so
// different payload types can share one bus.
type Event struct {
	ctx       context.Context
	Type      EventType
	Timestamp time.Time
	Data      any
}

// NewEvent creates a new Event with the given context, type, and data.
func NewEvent(ctx context.Context, eventType EventType, data any) Event {
	return Event{
		ctx:       ctx,
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// Context returns the context associated with this event.
func (e Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

type handler func(Event) error

// EventBus is a concurrency-safe synchronous event dispatcher. Handlers run
// sequentially during Publish, in registration order.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[EventType][]handler
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[EventType][]handler),
	}
}

// Subscribe registers a handler for the given eventType.
func (eb *EventBus) Subscribe(eventType EventType, h func(Event) error) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler(h))
}

// SubscribeTyped registers a handler expecting a payload of type T. Events
// whose payload is not a T are skipped. It is a free function because Go does
// not allow type parameters on methods.
func SubscribeTyped[T any](eb *EventBus, eventType EventType, h func(ctx context.Context, data T) error) {
	eb.Subscribe(eventType, func(e Event) error {
		payload, ok := e.Data.(T)
		if !ok {
			log.Debugf("EventBus: type mismatch for event %s: expected %T, got %T", eventType, *new(T), e.Data)
			return nil
		}
		return h(e.Context(), payload)
	})
}

// Publish sends the event to all handlers registered for event.Type. Handler
// errors and panics are logged; they do not stop the remaining handlers.
func (eb *EventBus) Publish(e Event) {
	eb.mu.RLock()
	handlers := make([]handler, len(eb.subscribers[e.Type]))
	copy(handlers, eb.subscribers[e.Type])
	eb.mu.RUnlock()

	for _, h := range handlers {
		err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("handler panic for event %s: %v", e.Type, r)
				}
			}()
			return h(e)
		}()
		if err != nil {
			log.Errorf("EventBus: handler error for event %s: %v", e.Type, err)
		}
	}
}
