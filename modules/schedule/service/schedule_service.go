package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"slotpoll/core/constants"
	"slotpoll/core/errors"
	"slotpoll/core/logger"
	eventEntity "slotpoll/modules/event/entity"
	eventRepository "slotpoll/modules/event/repository"
	"slotpoll/modules/schedule/dto"
	"slotpoll/modules/schedule/entity"
)

// RecommendationCache stores computed recommendations. Keys are
// versioned by the event's update time, so a stale entry is never
// served after a new submission; orphaned keys expire by TTL.
type RecommendationCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// ScheduleService aggregates availability and serves recommendations
type ScheduleService struct {
	repo      eventRepository.EventRepositoryInterface
	cache     RecommendationCache
	enum      *Enumerator
	scheduler *Scheduler
}

// ScheduleServiceInterface defines the service contract
type ScheduleServiceInterface interface {
	GetDaySchedule(ctx context.Context, code, date string) (*dto.DayScheduleResponse, *errors.AppError)
	GetRecommendation(ctx context.Context, code string) (*dto.RecommendationResponse, *errors.AppError)
	RefreshRecommendation(ctx context.Context, code string) error
}

// NewScheduleService creates a new schedule service. cache may be nil,
// in which case every recommendation is computed on demand.
func NewScheduleService(repo eventRepository.EventRepositoryInterface, cache RecommendationCache, enum *Enumerator) ScheduleServiceInterface {
	return &ScheduleService{
		repo:      repo,
		cache:     cache,
		enum:      enum,
		scheduler: NewScheduler(),
	}
}

// GetDaySchedule aggregates one date of the poll: common and popular
// slots plus each participant's selection and gap nudge. An empty date
// defaults to the first day of the event's range.
func (s *ScheduleService) GetDaySchedule(ctx context.Context, code, date string) (*dto.DayScheduleResponse, *errors.AppError) {
	event, appErr := s.loadEvent(ctx, code)
	if appErr != nil {
		return nil, appErr
	}

	dates := s.enum.Dates(event.DateStart, event.DateEnd)
	if len(dates) == 0 {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Event has an invalid date range", nil)
	}
	if date == "" {
		date = dates[0]
	} else if !containsString(dates, date) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date is outside the event's range", nil)
	}

	slots := s.enum.Slots(event.TimeStart, event.TimeEnd)
	summary := s.scheduler.Aggregate(slots, event.Participants, date)

	resp := &dto.DayScheduleResponse{
		Code:              event.Code,
		Date:              date,
		Slots:             slots,
		Common:            summary.Common,
		Popular:           summary.Popular,
		TotalParticipants: len(event.Participants),
		Participants:      make([]dto.ParticipantDayDTO, len(event.Participants)),
	}

	for i, p := range event.Participants {
		available := append([]string{}, p.SlotsOn(date)...)
		sort.Strings(available)
		resp.Participants[i] = dto.ParticipantDayDTO{
			Name:        p.Name,
			AvatarColor: p.AvatarColor,
			Available:   available,
			Suggestion:  s.scheduler.GapRecommendation(p, summary.Popular, date),
		}
	}

	return resp, nil
}

// GetRecommendation returns the cross-date optimal recommendation,
// served from cache when a fresh entry exists.
func (s *ScheduleService) GetRecommendation(ctx context.Context, code string) (*dto.RecommendationResponse, *errors.AppError) {
	event, appErr := s.loadEvent(ctx, code)
	if appErr != nil {
		return nil, appErr
	}

	resp := &dto.RecommendationResponse{
		Code:              event.Code,
		TotalParticipants: len(event.Participants),
	}

	if cached, ok := s.cachedRecommendation(ctx, event); ok {
		resp.Recommendation = cached
		return resp, nil
	}

	resp.Recommendation = s.compute(event)
	s.storeRecommendation(ctx, event, resp.Recommendation)
	return resp, nil
}

// RefreshRecommendation recomputes and caches an event's recommendation.
// Called from the background worker after each submission.
func (s *ScheduleService) RefreshRecommendation(ctx context.Context, code string) error {
	event, err := s.repo.LoadByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return err
	}
	if event == nil {
		// The event disappeared between enqueue and processing; nothing
		// to warm.
		return nil
	}

	s.storeRecommendation(ctx, event, s.compute(event))
	logger.Info("ScheduleService:RefreshRecommendation", "code", event.Code)
	return nil
}

func (s *ScheduleService) compute(event *eventEntity.Event) *entity.Recommendation {
	dates := s.enum.Dates(event.DateStart, event.DateEnd)
	slots := s.enum.Slots(event.TimeStart, event.TimeEnd)
	return s.scheduler.Recommend(dates, slots, event.Participants)
}

func (s *ScheduleService) cachedRecommendation(ctx context.Context, event *eventEntity.Event) (*entity.Recommendation, bool) {
	if s.cache == nil {
		return nil, false
	}

	val, err := s.cache.Get(ctx, recommendationKey(event))
	if err != nil {
		logger.Warn("ScheduleService:cachedRecommendation", "code", event.Code, "error", err)
		return nil, false
	}
	if val == "" {
		return nil, false
	}

	var rec *entity.Recommendation
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		logger.Warn("ScheduleService:cachedRecommendation unmarshal", "code", event.Code, "error", err)
		return nil, false
	}
	return rec, true
}

func (s *ScheduleService) storeRecommendation(ctx context.Context, event *eventEntity.Event, rec *entity.Recommendation) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return
	}
	ttl := time.Duration(constants.RecommendationCacheTTL) * time.Minute
	if err := s.cache.Set(ctx, recommendationKey(event), string(payload), ttl); err != nil {
		logger.Warn("ScheduleService:storeRecommendation", "code", event.Code, "error", err)
	}
}

func (s *ScheduleService) loadEvent(ctx context.Context, code string) (*eventEntity.Event, *errors.AppError) {
	event, err := s.repo.LoadByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return event, nil
}

func recommendationKey(event *eventEntity.Event) string {
	return fmt.Sprintf(constants.RedisKeyRecommendation, event.Code, event.UpdatedAt.Unix())
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
