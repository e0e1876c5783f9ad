package event

import (
	"slotpoll/core/database"
	"slotpoll/core/middleware"
	"slotpoll/modules/event/controller"
	"slotpoll/modules/event/repository"
	"slotpoll/modules/event/router"
	"slotpoll/modules/event/service"
	scheduleService "slotpoll/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes. queue may be
// nil when no background worker is configured.
func Init(e *echo.Echo, db database.IDatabase, queue service.ScheduleQueue, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, scheduleService.NewEnumerator(), queue)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
}
