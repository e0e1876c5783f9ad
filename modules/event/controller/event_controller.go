package controller

import (
	"slotpoll/core/controller"
	"slotpoll/core/errors"
	"slotpoll/modules/event/dto"
	"slotpoll/modules/event/service"

	"github.com/labstack/echo/v4"
)

// EventController handles event HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

// NewEventController creates a new controller
func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// CreateEvent handles POST /public/events
// @Summary Create a poll
// @Description Create a meeting-time poll over a date range and daily time window
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Router /public/events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body",
			controller.NewValidationError("body", err.Error()))
	}

	result, appErr := c.EventService.CreateEvent(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event created successfully")
}

// GetEvent handles GET /public/events/:code
// @Summary Look up a poll
// @Description Resolve an event by its short code (case-insensitive)
// @Tags Event
// @Produce json
// @Param code path string true "Event code"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /public/events/{code} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	result, appErr := c.EventService.GetEvent(ctx.Request().Context(), ctx.Param("code"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event retrieved successfully")
}

// JoinEvent handles PUT /public/events/:code/participants
// @Summary Submit availability
// @Description Join a poll or edit an earlier submission under the same name
// @Tags Event
// @Accept json
// @Produce json
// @Param code path string true "Event code"
// @Param request body dto.JoinEventRequest true "Participant availability"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /public/events/{code}/participants [put]
func (c *EventController) JoinEvent(ctx echo.Context) error {
	var req dto.JoinEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body",
			controller.NewValidationError("body", err.Error()))
	}

	result, appErr := c.EventService.JoinEvent(ctx.Request().Context(), ctx.Param("code"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Availability saved successfully")
}
