package event_bus

import "time"

const (
	SessionStartedType       EventType = "session.started"
	SessionEndedType         EventType = "session.ended"
	CalendarEventCreatedType EventType = "calendar.event.created"
	CalendarEventUpdatedType EventType = "calendar.event.updated"
	CalendarEventDeletedType EventType = "calendar.event.deleted"
)

type SessionStarted struct {
	UserId  string
	Name    string
	IsAdmin bool
}

type SessionEnded struct {
	UserId string
}

type CalendarEventCreated struct {
	Id        string
	Title     string
	CreatedBy string
	Start     time.Time
	End       time.Time
}

type CalendarEventUpdated struct {
	Id        string
	UpdatedBy string
}

type CalendarEventDeleted struct {
	Id        string
	DeletedBy string
}
