package dto

import (
	"slotpoll/modules/schedule/entity"
)

// ParticipantDayDTO is one participant's standing for a single date
type ParticipantDayDTO struct {
	Name        string   `json:"name"`
	AvatarColor string   `json:"avatar_color"`
	Available   []string `json:"available"`
	// Suggestion is the best popular slot this participant is missing,
	// the targeted "if you could also do X" nudge
	Suggestion *entity.SlotCount `json:"suggestion,omitempty"`
}

// DayScheduleResponse is the aggregated poll result for one date
type DayScheduleResponse struct {
	Code              string              `json:"code"`
	Date              string              `json:"date"`
	Slots             []string            `json:"slots"`
	Common            []string            `json:"common"`
	Popular           []entity.SlotCount  `json:"popular"`
	Participants      []ParticipantDayDTO `json:"participants"`
	TotalParticipants int                 `json:"total_participants"`
}

// RecommendationResponse is the cross-date optimal recommendation.
// Recommendation is null while nobody has submitted availability or no
// slot clears the majority threshold.
type RecommendationResponse struct {
	Code              string                 `json:"code"`
	Recommendation    *entity.Recommendation `json:"recommendation"`
	TotalParticipants int                    `json:"total_participants"`
}
