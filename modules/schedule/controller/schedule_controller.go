package controller

import (
	"slotpoll/core/controller"
	"slotpoll/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// ScheduleController handles schedule HTTP requests
type ScheduleController struct {
	controller.BaseController
	ScheduleService service.ScheduleServiceInterface
}

// NewScheduleController creates a new controller
func NewScheduleController(svc service.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		BaseController:  controller.NewBaseController(),
		ScheduleService: svc,
	}
}

// GetDaySchedule handles GET /public/events/:code/schedule
// @Summary Poll results for one date
// @Description Common and popular slots for a date, with each participant's selection and gap nudge
// @Tags Schedule
// @Produce json
// @Param code path string true "Event code"
// @Param date query string false "Date (YYYY-MM-DD), defaults to the range start"
// @Success 200 {object} dto.DayScheduleResponse
// @Failure 404 {object} errors.AppError
// @Router /public/events/{code}/schedule [get]
func (c *ScheduleController) GetDaySchedule(ctx echo.Context) error {
	result, appErr := c.ScheduleService.GetDaySchedule(
		ctx.Request().Context(), ctx.Param("code"), ctx.QueryParam("date"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Schedule computed successfully")
}

// GetRecommendation handles GET /public/events/:code/recommendation
// @Summary Optimal meeting recommendation
// @Description The best date and slot set across the event's whole date range
// @Tags Schedule
// @Produce json
// @Param code path string true "Event code"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 404 {object} errors.AppError
// @Router /public/events/{code}/recommendation [get]
func (c *ScheduleController) GetRecommendation(ctx echo.Context) error {
	result, appErr := c.ScheduleService.GetRecommendation(ctx.Request().Context(), ctx.Param("code"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Recommendation computed successfully")
}
