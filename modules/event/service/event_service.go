package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"slotpoll/core/constants"
	"slotpoll/core/errors"
	"slotpoll/core/logger"
	"slotpoll/core/utils"
	"slotpoll/modules/event/dto"
	"slotpoll/modules/event/entity"
	"slotpoll/modules/event/repository"
	scheduleService "slotpoll/modules/schedule/service"

	"github.com/lib/pq"
)

// avatar palette carried over from the original client, assigned at
// random when a participant does not pick one
var avatarColors = []string{
	"bg-red-500", "bg-pink-500", "bg-purple-500", "bg-indigo-500", "bg-blue-500",
	"bg-cyan-500", "bg-teal-500", "bg-green-500", "bg-lime-500", "bg-amber-500",
}

const maxCodeAttempts = 5

// ScheduleQueue enqueues background schedule recomputation after a
// submission changes an event.
type ScheduleQueue interface {
	EnqueueRefresh(ctx context.Context, code string) error
}

// EventService handles event creation and the join flow
type EventService struct {
	repo  repository.EventRepositoryInterface
	enum  *scheduleService.Enumerator
	queue ScheduleQueue
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetEvent(ctx context.Context, code string) (*dto.EventResponse, *errors.AppError)
	JoinEvent(ctx context.Context, code string, req *dto.JoinEventRequest) (*dto.EventResponse, *errors.AppError)
}

// NewEventService creates a new event service. queue may be nil when no
// background worker is configured.
func NewEventService(repo repository.EventRepositoryInterface, enum *scheduleService.Enumerator, queue ScheduleQueue) EventServiceInterface {
	return &EventService{
		repo:  repo,
		enum:  enum,
		queue: queue,
	}
}

// NormalizeCode upper-cases a user-supplied event code; codes are
// matched case-insensitively.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CreateEvent validates organizer input and persists a new poll
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event name is required", nil)
	}

	if !canonicalDate(req.DateStart) || !canonicalDate(req.DateEnd) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Dates must use the YYYY-MM-DD format", nil)
	}
	dateStart, _ := time.Parse(constants.DateLayout, req.DateStart)
	dateEnd, _ := time.Parse(constants.DateLayout, req.DateEnd)
	if dateEnd.Before(dateStart) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "End date must not be before start date", nil)
	}

	if !canonicalClock(req.TimeStart) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Start time must use the HH:MM format", nil)
	}
	if !canonicalClock(req.TimeEnd) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "End time must use the HH:MM format", nil)
	}
	if req.TimeStart >= req.TimeEnd {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "End time must be after start time", nil)
	}

	var allowed pq.StringArray
	for _, n := range req.AllowedParticipants {
		if trimmed := strings.TrimSpace(n); trimmed != "" {
			allowed = append(allowed, trimmed)
		}
	}

	code, appErr := s.uniqueCode(ctx)
	if appErr != nil {
		return nil, appErr
	}

	event := &entity.Event{
		Code:                code,
		Name:                name,
		Description:         strings.TrimSpace(req.Description),
		DateStart:           req.DateStart,
		DateEnd:             req.DateEnd,
		TimeStart:           req.TimeStart,
		TimeEnd:             req.TimeEnd,
		AllowedParticipants: allowed,
		Participants:        entity.ParticipantList{},
	}

	// The organizer joins immediately with an empty selection so the
	// results page lists them from the start.
	if organizer := strings.TrimSpace(req.OrganizerName); organizer != "" {
		event.Participants = append(event.Participants, entity.Participant{
			Name:         organizer,
			AvatarColor:  randomAvatarColor(),
			Availability: entity.Availability{},
		})
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	logger.Info("EventService:CreateEvent", "code", created.Code, "name", created.Name)
	return s.toResponse(created), nil
}

// GetEvent resolves an event by its public code
func (s *EventService) GetEvent(ctx context.Context, code string) (*dto.EventResponse, *errors.AppError) {
	event, appErr := s.loadEvent(ctx, code)
	if appErr != nil {
		return nil, appErr
	}
	return s.toResponse(event), nil
}

// JoinEvent records a participant's availability, replacing any earlier
// submission under the same name
func (s *EventService) JoinEvent(ctx context.Context, code string, req *dto.JoinEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, appErr := s.loadEvent(ctx, code)
	if appErr != nil {
		return nil, appErr
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Participant name is required", nil)
	}

	if !event.IsNameAllowed(name) {
		return nil, errors.NewAppError(errors.ErrForbidden, "This name is not on the invite list", nil)
	}

	existing := event.FindParticipant(name)
	if existing != nil && !req.Edit {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "This name is already taken", nil)
	}

	availability := s.normalizeAvailability(event, req.Availability)
	if countSlots(availability) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Select at least one time slot", nil)
	}

	color := strings.TrimSpace(req.AvatarColor)
	if color == "" {
		if existing != nil {
			color = existing.AvatarColor
		} else {
			color = randomAvatarColor()
		}
	}

	event.UpsertParticipant(entity.Participant{
		Name:         name,
		AvatarColor:  color,
		Availability: availability,
	})

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
	}

	if s.queue != nil {
		if err := s.queue.EnqueueRefresh(ctx, event.Code); err != nil {
			// The recommendation is recomputed on demand anyway, so a
			// failed enqueue is not fatal to the submission.
			logger.Warn("EventService:JoinEvent enqueue refresh failed", "code", event.Code, "error", err)
		}
	}

	logger.Info("EventService:JoinEvent", "code", event.Code, "participant", name)
	return s.toResponse(event), nil
}

// normalizeAvailability drops dates outside the event's range and slot
// labels outside the enumerated universe, deduplicating the rest.
func (s *EventService) normalizeAvailability(event *entity.Event, raw map[string][]string) entity.Availability {
	validDates := make(map[string]bool)
	for _, d := range s.enum.Dates(event.DateStart, event.DateEnd) {
		validDates[d] = true
	}
	validSlots := make(map[string]bool)
	for _, slot := range s.enum.Slots(event.TimeStart, event.TimeEnd) {
		validSlots[slot] = true
	}

	normalized := entity.Availability{}
	for date, slots := range raw {
		if !validDates[date] {
			continue
		}
		seen := make(map[string]bool)
		var kept []string
		for _, slot := range slots {
			if validSlots[slot] && !seen[slot] {
				seen[slot] = true
				kept = append(kept, slot)
			}
		}
		if len(kept) > 0 {
			normalized[date] = kept
		}
	}
	return normalized
}

func (s *EventService) loadEvent(ctx context.Context, code string) (*entity.Event, *errors.AppError) {
	event, err := s.repo.LoadByCode(ctx, NormalizeCode(code))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return event, nil
}

func (s *EventService) uniqueCode(ctx context.Context) (string, *errors.AppError) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := utils.GenerateEventCode()
		if code == "" {
			continue
		}
		existing, err := s.repo.LoadByCode(ctx, code)
		if err != nil {
			return "", errors.NewAppError(errors.ErrInternalServer, "Failed to generate event code", err)
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", errors.NewAppError(errors.ErrInternalServer, "Failed to generate a unique event code", nil)
}

func (s *EventService) toResponse(event *entity.Event) *dto.EventResponse {
	slots := s.enum.Slots(event.TimeStart, event.TimeEnd)
	dates := s.enum.Dates(event.DateStart, event.DateEnd)
	return dto.ToEventResponse(event, slots, dates)
}

func countSlots(a entity.Availability) int {
	total := 0
	for _, slots := range a {
		total += len(slots)
	}
	return total
}

func randomAvatarColor() string {
	return avatarColors[rand.Intn(len(avatarColors))]
}

// canonicalClock accepts only zero-padded HH:MM labels. time.Parse alone
// also admits "9:30", and a single-digit hour compares greater than every
// generated label, so slot enumeration over it would never terminate.
func canonicalClock(label string) bool {
	t, err := time.Parse(constants.ClockLayout, label)
	return err == nil && t.Format(constants.ClockLayout) == label
}

// canonicalDate accepts only zero-padded YYYY-MM-DD values, keeping the
// stored dates comparable with the enumerated ones.
func canonicalDate(date string) bool {
	t, err := time.Parse(constants.DateLayout, date)
	return err == nil && t.Format(constants.DateLayout) == date
}
