package app

import (
	"context"

	"github.com/naptar/naptar/internal/config"
	"github.com/naptar/naptar/internal/event_bus"
	"github.com/naptar/naptar/internal/utils"
	"github.com/naptar/naptar/pkg/calendar"
	"github.com/naptar/naptar/pkg/directory"
	"github.com/naptar/naptar/pkg/session"
	"github.com/naptar/naptar/pkg/view"
)

// Dependencies holds all stores, services, and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	Directory        directory.Store
	DirectoryHandler *directory.Handler

	SessionService session.Service
	SessionHandler *session.Handler

	EventRepository calendar.EventRepository
	EventService    calendar.EventService
	EventHandler    *calendar.Handler

	ViewService view.Service
	ViewHandler *view.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	store, err := directory.NewStaticStore(rosterFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	deps.Directory = store
	deps.DirectoryHandler = directory.NewHandler(store)

	deps.SessionService = session.NewSessionService(store, deps.Bus)
	deps.SessionHandler = session.NewHandler(deps.SessionService)

	deps.EventRepository = calendar.NewInMemoryEventRepository()
	deps.EventService = calendar.NewEventService(deps.EventRepository, deps.SessionService, deps.Bus)
	deps.EventHandler = calendar.NewHandler(deps.EventService)

	viewService := view.NewViewService(deps.Clock)
	deps.ViewService = viewService
	deps.ViewHandler = view.NewHandler(viewService)

	// The selector panel closes after a successful login or a logout.
	event_bus.SubscribeTyped(deps.Bus, event_bus.SessionStartedType,
		func(ctx context.Context, _ event_bus.SessionStarted) error {
			viewService.HideSelector(ctx)
			return nil
		})
	event_bus.SubscribeTyped(deps.Bus, event_bus.SessionEndedType,
		func(ctx context.Context, _ event_bus.SessionEnded) error {
			viewService.HideSelector(ctx)
			return nil
		})

	return deps, nil
}

func rosterFromConfig(cfg config.Application) []directory.User {
	users := make([]directory.User, 0, len(cfg.Users))
	for _, u := range cfg.Users {
		users = append(users, directory.User{
			Id:       u.Id,
			Name:     u.Name,
			Color:    u.Color,
			Password: u.Password,
			IsAdmin:  u.Admin,
		})
	}
	return users
}
