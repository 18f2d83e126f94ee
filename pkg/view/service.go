package view

import (
	"context"
	"sync"
	"time"

	"github.com/naptar/naptar/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Current(ctx context.Context) State
	SetCurrentDate(ctx context.Context, date time.Time) State
	NextMonth(ctx context.Context) State
	PreviousMonth(ctx context.Context) State
	ToggleSelector(ctx context.Context) State
	HideSelector(ctx context.Context) State
}

// ViewServiceImpl holds the process-wide view state. The cursor starts at the
// clock's current time with the selector panel hidden.
type ViewServiceImpl struct {
	mu    sync.RWMutex
	state State
}

func NewViewService(clock utils.Clock) *ViewServiceImpl {
	return &ViewServiceImpl{
		state: State{CurrentDate: clock.Now()},
	}
}

func (s *ViewServiceImpl) Current(ctx context.Context) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *ViewServiceImpl) SetCurrentDate(ctx context.Context, date time.Time) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentDate = date
	return s.state
}

func (s *ViewServiceImpl) NextMonth(ctx context.Context) State {
	return s.shiftMonths(1)
}

func (s *ViewServiceImpl) PreviousMonth(ctx context.Context) State {
	return s.shiftMonths(-1)
}

func (s *ViewServiceImpl) ToggleSelector(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectorVisible = !s.state.SelectorVisible
	return s.state
}

// HideSelector closes the selector panel. Unlike ToggleSelector it is
// idempotent, so it is safe to call from session event handlers.
func (s *ViewServiceImpl) HideSelector(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SelectorVisible {
		log.Debug("hiding user selector panel")
	}
	s.state.SelectorVisible = false
	return s.state
}

func (s *ViewServiceImpl) shiftMonths(months int) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentDate = addMonths(s.state.CurrentDate, months)
	return s.state
}

// addMonths moves t by the given number of calendar months. The day-of-month
// is clamped to the last valid day of the target month, so January 31 plus
// one month is February 28 (29 in leap years). Time of day and location are
// preserved.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := time.Date(firstOfTarget.Year(), firstOfTarget.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}
	hour, minute, sec := t.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}
