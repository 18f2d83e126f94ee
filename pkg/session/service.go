package session

import (
	"context"
	"errors"
	"sync"

	"github.com/naptar/naptar/internal/event_bus"
	"github.com/naptar/naptar/pkg/directory"
	log "github.com/sirupsen/logrus"
)

var ErrAuthenticationFailed = errors.New("authentication failed")

// Provider is the narrow read side of the session, for components that only
// need to know who is signed in.
type Provider interface {
	Current(ctx context.Context) (SessionUser, bool)
}

type Service interface {
	Login(ctx context.Context, id string, password string) (SessionUser, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) (SessionUser, bool)
	CanManage(ctx context.Context, createdBy string) bool
}

// SessionServiceImpl tracks at most one authenticated user at a time.
type SessionServiceImpl struct {
	directory directory.Store
	bus       *event_bus.EventBus

	mu      sync.RWMutex
	current *SessionUser
}

func NewSessionService(store directory.Store, bus *event_bus.EventBus) *SessionServiceImpl {
	return &SessionServiceImpl{directory: store, bus: bus}
}

// Login authenticates by exact password equality against the roster entry.
// On failure the current session is left untouched. On success any prior
// session is replaced unconditionally.
func (s *SessionServiceImpl) Login(ctx context.Context, id string, password string) (SessionUser, error) {
	u, err := s.directory.Get(id)
	if err != nil {
		log.Debugf("login failed: unknown user %q", id)
		return SessionUser{}, ErrAuthenticationFailed
	}
	if u.Password != password {
		log.Debugf("login failed: wrong password for user %q", id)
		return SessionUser{}, ErrAuthenticationFailed
	}

	sessionUser := stripPassword(u)
	s.mu.Lock()
	s.current = &sessionUser
	s.mu.Unlock()
	log.Infof("user %s signed in", sessionUser.Id)

	s.bus.Publish(event_bus.NewEvent(ctx, event_bus.SessionStartedType, event_bus.SessionStarted{
		UserId:  sessionUser.Id,
		Name:    sessionUser.Name,
		IsAdmin: sessionUser.IsAdmin,
	}))

	return sessionUser, nil
}

// Logout clears the current session. Calling it with no active session is a
// no-op.
func (s *SessionServiceImpl) Logout(ctx context.Context) {
	s.mu.Lock()
	ended := s.current
	s.current = nil
	s.mu.Unlock()

	if ended == nil {
		log.Debug("logout with no active session")
		return
	}
	log.Infof("user %s signed out", ended.Id)
	s.bus.Publish(event_bus.NewEvent(ctx, event_bus.SessionEndedType, event_bus.SessionEnded{
		UserId: ended.Id,
	}))
}

func (s *SessionServiceImpl) Current(ctx context.Context) (SessionUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return SessionUser{}, false
	}
	return *s.current, true
}

// CanManage reports whether the currently signed-in user may manage an event
// created by createdBy. False when nobody is signed in.
func (s *SessionServiceImpl) CanManage(ctx context.Context, createdBy string) bool {
	current, ok := s.Current(ctx)
	if !ok {
		return false
	}
	return current.CanManage(createdBy)
}

func stripPassword(u directory.User) SessionUser {
	return SessionUser{
		Id:      u.Id,
		Name:    u.Name,
		Color:   u.Color,
		IsAdmin: u.IsAdmin,
	}
}
