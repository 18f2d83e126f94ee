package calendar

import "time"

// Event is a single calendar entry. CreatedBy references the roster user who
// created it and never changes after creation. Start and End are stored as
// given; the store does not require Start <= End.
type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	CreatedBy   string
	Color       string
}

// EventDraft carries the caller-supplied fields of a new event. The id,
// creator, and (when Color is empty) the creator's color are filled in by the
// service.
type EventDraft struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       string
}

// EventPatch merges only its non-nil fields into an existing event. The id
// and creator are not patchable.
type EventPatch struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	Color       *string
}
