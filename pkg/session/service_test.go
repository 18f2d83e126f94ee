package session

import (
	"context"
	"testing"

	"github.com/naptar/naptar/internal/event_bus"
	"github.com/naptar/naptar/pkg/directory"
	"github.com/stretchr/testify/assert"
)

func testDirectory(t *testing.T) directory.Store {
	store, err := directory.NewStaticStore([]directory.User{
		{Id: "1", Name: "Kovács János", Color: "#FF5733", Password: "janos123"},
		{Id: "2", Name: "Nagy Éva", Color: "#33FF57", Password: "eva123"},
		{Id: "admin", Name: "Rendszergazda", Color: "#9333FF", Password: "admin123", IsAdmin: true},
	})
	assert.NoError(t, err)
	return store
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds for every roster user and strips the password", func(t *testing.T) {
		store := testDirectory(t)
		service := NewSessionService(store, event_bus.NewEventBus())

		for _, u := range store.All() {
			sessionUser, err := service.Login(ctx, u.Id, u.Password)
			assert.NoError(t, err)
			assert.Equal(t, u.Id, sessionUser.Id)
			assert.Equal(t, u.Name, sessionUser.Name)
			assert.Equal(t, u.Color, sessionUser.Color)
			assert.Equal(t, u.IsAdmin, sessionUser.IsAdmin)

			current, ok := service.Current(ctx)
			assert.True(t, ok)
			assert.Equal(t, sessionUser, current)
		}
	})

	t.Run("fails on wrong password and leaves session unchanged", func(t *testing.T) {
		service := NewSessionService(testDirectory(t), event_bus.NewEventBus())

		_, err := service.Login(ctx, "1", "janos123")
		assert.NoError(t, err)

		_, err = service.Login(ctx, "2", "wrong")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)

		current, ok := service.Current(ctx)
		assert.True(t, ok)
		assert.Equal(t, "1", current.Id)
	})

	t.Run("fails for unknown user", func(t *testing.T) {
		service := NewSessionService(testDirectory(t), event_bus.NewEventBus())

		_, err := service.Login(ctx, "missing", "anything")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)

		_, ok := service.Current(ctx)
		assert.False(t, ok)
	})

	t.Run("replaces any prior session unconditionally", func(t *testing.T) {
		service := NewSessionService(testDirectory(t), event_bus.NewEventBus())

		_, err := service.Login(ctx, "1", "janos123")
		assert.NoError(t, err)
		_, err = service.Login(ctx, "2", "eva123")
		assert.NoError(t, err)

		current, ok := service.Current(ctx)
		assert.True(t, ok)
		assert.Equal(t, "2", current.Id)
	})

	t.Run("publishes a session started event", func(t *testing.T) {
		bus := event_bus.NewEventBus()
		var started []event_bus.SessionStarted
		event_bus.SubscribeTyped(bus, event_bus.SessionStartedType,
			func(ctx context.Context, data event_bus.SessionStarted) error {
				started = append(started, data)
				return nil
			})
		service := NewSessionService(testDirectory(t), bus)

		_, err := service.Login(ctx, "admin", "admin123")
		assert.NoError(t, err)
		assert.Len(t, started, 1)
		assert.Equal(t, "admin", started[0].UserId)
		assert.True(t, started[0].IsAdmin)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the current session", func(t *testing.T) {
		service := NewSessionService(testDirectory(t), event_bus.NewEventBus())

		_, err := service.Login(ctx, "1", "janos123")
		assert.NoError(t, err)

		service.Logout(ctx)
		_, ok := service.Current(ctx)
		assert.False(t, ok)
	})

	t.Run("is a no-op with no active session", func(t *testing.T) {
		bus := event_bus.NewEventBus()
		var ended int
		event_bus.SubscribeTyped(bus, event_bus.SessionEndedType,
			func(ctx context.Context, _ event_bus.SessionEnded) error {
				ended++
				return nil
			})
		service := NewSessionService(testDirectory(t), bus)

		service.Logout(ctx)
		service.Logout(ctx)
		assert.Equal(t, 0, ended)
	})
}

func TestCanManage(t *testing.T) {
	ctx := context.Background()

	t.Run("false when nobody is signed in", func(t *testing.T) {
		service := NewSessionService(testDirectory(t), event_bus.NewEventBus())
		assert.False(t, service.CanManage(ctx, "1"))
	})

	t.Run("true for the creator", func(t *testing.T) {
		service := NewSessionService(testDirectory(t), event_bus.NewEventBus())
		_, err := service.Login(ctx, "1", "janos123")
		assert.NoError(t, err)
		assert.True(t, service.CanManage(ctx, "1"))
	})

	t.Run("false for another ordinary user", func(t *testing.T) {
		service := NewSessionService(testDirectory(t), event_bus.NewEventBus())
		_, err := service.Login(ctx, "2", "eva123")
		assert.NoError(t, err)
		assert.False(t, service.CanManage(ctx, "1"))
	})

	t.Run("true for an admin regardless of creator", func(t *testing.T) {
		service := NewSessionService(testDirectory(t), event_bus.NewEventBus())
		_, err := service.Login(ctx, "admin", "admin123")
		assert.NoError(t, err)
		assert.True(t, service.CanManage(ctx, "1"))
		assert.True(t, service.CanManage(ctx, "2"))
	})
}

func TestSessionUserCanManage(t *testing.T) {
	owner := SessionUser{Id: "1"}
	other := SessionUser{Id: "2"}
	admin := SessionUser{Id: "admin", IsAdmin: true}

	assert.True(t, owner.CanManage("1"))
	assert.False(t, other.CanManage("1"))
	assert.True(t, admin.CanManage("1"))
}
