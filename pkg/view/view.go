package view

import "time"

// State is the calendar view cursor: the date whose month is displayed and
// whether the user selector panel is open.
type State struct {
	CurrentDate     time.Time
	SelectorVisible bool
}
