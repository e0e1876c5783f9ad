package router

import (
	"slotpoll/core/middleware"
	"slotpoll/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

// NewEventRouter creates a new router
func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes. Everything is public: polls are joined
// by code, there are no accounts.
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	public := v1.Group("/public")

	events := public.Group("/events")
	events.POST("", r.EventController.CreateEvent)
	events.GET("/:code", r.EventController.GetEvent)
	events.PUT("/:code/participants", r.EventController.JoinEvent)
}
