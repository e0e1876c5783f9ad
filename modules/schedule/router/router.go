package router

import (
	"slotpoll/core/middleware"
	"slotpoll/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

// ScheduleRouter handles schedule routes
type ScheduleRouter struct {
	ScheduleController *controller.ScheduleController
}

// NewScheduleRouter creates a new router
func NewScheduleRouter(scheduleController *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{
		ScheduleController: scheduleController,
	}
}

// Setup registers schedule routes
func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	public := v1.Group("/public")

	events := public.Group("/events")
	events.GET("/:code/schedule", r.ScheduleController.GetDaySchedule)
	events.GET("/:code/recommendation", r.ScheduleController.GetRecommendation)
}
