package dto

import (
	"fmt"
	"strings"

	"slotpoll/modules/event/entity"

	"github.com/gosimple/slug"
)

// ===================== Request DTOs =====================

// CreateEventRequest for creating a new poll
type CreateEventRequest struct {
	Name                string   `json:"name" validate:"required"`
	Description         string   `json:"description"`
	DateStart           string   `json:"date_start" validate:"required"` // YYYY-MM-DD
	DateEnd             string   `json:"date_end" validate:"required"`   // YYYY-MM-DD
	TimeStart           string   `json:"time_start" validate:"required"` // HH:MM
	TimeEnd             string   `json:"time_end" validate:"required"`   // HH:MM
	AllowedParticipants []string `json:"allowed_participants"`
	OrganizerName       string   `json:"organizer_name"`
}

// JoinEventRequest for submitting or editing availability
type JoinEventRequest struct {
	Name         string              `json:"name" validate:"required"`
	AvatarColor  string              `json:"avatar_color"`
	Availability map[string][]string `json:"availability"` // date -> slot labels
	Edit         bool                `json:"edit"`         // allow replacing an existing submission
}

// ===================== Response DTOs =====================

// ParticipantResponse for one submission
type ParticipantResponse struct {
	Name         string              `json:"name"`
	AvatarColor  string              `json:"avatar_color"`
	Availability map[string][]string `json:"availability"`
}

// EventResponse for event details, including the enumerated slot and
// date universes the UI renders selection grids from
type EventResponse struct {
	Code                string                `json:"code"`
	Name                string                `json:"name"`
	Description         string                `json:"description,omitempty"`
	DateRange           entity.DateRange      `json:"date_range"`
	TimeRange           entity.TimeRange      `json:"time_range"`
	AllowedParticipants []string              `json:"allowed_participants,omitempty"`
	Participants        []ParticipantResponse `json:"participants"`
	Slots               []string              `json:"slots"`
	Dates               []string              `json:"dates"`
	ShareLink           string                `json:"share_link"`
	CreatedAt           string                `json:"created_at"`
	UpdatedAt           string                `json:"updated_at"`
}

// ===================== Mapper Functions =====================

// ToEventResponse maps entity to DTO
func ToEventResponse(e *entity.Event, slots, dates []string) *EventResponse {
	resp := &EventResponse{
		Code:        e.Code,
		Name:        e.Name,
		Description: e.Description,
		DateRange:   e.DateRange(),
		TimeRange:   e.TimeRange(),
		Slots:       slots,
		Dates:       dates,
		ShareLink:   fmt.Sprintf("/e/%s/%s", strings.ToLower(e.Code), slug.Make(e.Name)),
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   e.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if e.AllowedParticipants != nil {
		resp.AllowedParticipants = []string(e.AllowedParticipants)
	}

	resp.Participants = make([]ParticipantResponse, len(e.Participants))
	for i, p := range e.Participants {
		resp.Participants[i] = ParticipantResponse{
			Name:         p.Name,
			AvatarColor:  p.AvatarColor,
			Availability: p.Availability,
		}
	}

	return resp
}
