package schedule

import (
	"slotpoll/core/database"
	"slotpoll/core/middleware"
	"slotpoll/modules/event/repository"
	"slotpoll/modules/schedule/controller"
	"slotpoll/modules/schedule/router"
	"slotpoll/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the schedule module and registers routes. The
// returned service is also consumed by the background worker. cache may
// be nil when redis is not configured.
func Init(e *echo.Echo, db database.IDatabase, cache service.RecommendationCache, mw *middleware.Middleware) service.ScheduleServiceInterface {
	repo := repository.NewEventRepository(db)
	svc := service.NewScheduleService(repo, cache, service.NewEnumerator())
	ctrl := controller.NewScheduleController(svc)
	rtr := router.NewScheduleRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
